package models

// Shelf is a storage location. The collection is a mapping of shelf code
// (e.g. "A-01") to shelf; the code itself is the identity and lives in the
// map key, not in the struct.
type Shelf struct {
	Name        string `json:"name" bson:"name"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
	Image       string `json:"image,omitempty" bson:"image,omitempty"`
	Capacity    int    `json:"capacity,omitempty" bson:"capacity,omitempty"`
}

// ShelfSummary is a shelf together with its derived occupancy, the sum of
// quantities of all parts referencing the shelf code.
type ShelfSummary struct {
	Code string `json:"code"`
	Shelf
	CurrentCount int `json:"currentCount"`
}
