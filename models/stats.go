package models

import "time"

// Stats is a summary of the live inventory, derived from the parts and
// transaction collections.
type Stats struct {
	TotalParts         int     `json:"totalParts"`
	Available          int     `json:"available"`
	CheckedOut         int     `json:"checkedOut"`
	OutOfStock         int     `json:"outOfStock"`
	TotalValue         float64 `json:"totalValue"`
	RecentTransactions int     `json:"recentTransactions"`
}

// Health is the observability view of the persistence layer. Status is
// "healthy" or "unhealthy"; Error carries the failure message in the
// unhealthy case instead of an HTTP-level error.
type Health struct {
	Status    string `json:"status"`
	Medium    string `json:"medium"`
	Stats     *Stats `json:"stats,omitempty"`
	CacheSize int    `json:"cacheSize"`
	Error     string `json:"error,omitempty"`
}

// Backup is a full point-in-time snapshot of all three collections.
type Backup struct {
	CreatedAt    time.Time        `json:"createdAt"`
	Parts        []Part           `json:"parts"`
	Shelves      map[string]Shelf `json:"shelves"`
	Transactions []Transaction    `json:"transactions"`
}
