package services

import (
	"math"
	"time"

	"github.com/inventoryhub/parts-service/models"
)

// recentWindow is the trailing period counted as recent activity.
const recentWindow = 30 * 24 * time.Hour

// ComputeStats derives the inventory summary from its inputs alone. The
// zero-stock count uses quantity == 0; low-stock thresholds (quantity vs
// minQuantity) are a caller-level policy and deliberately not counted here.
func ComputeStats(parts []models.Part, transactions []models.Transaction, now time.Time) models.Stats {
	stats := models.Stats{TotalParts: len(parts)}

	var value float64
	for _, p := range parts {
		switch p.Status {
		case models.StatusCheckedOut:
			stats.CheckedOut++
		default:
			stats.Available++
		}
		if p.Quantity == 0 {
			stats.OutOfStock++
		}
		value += p.Cost * float64(p.Quantity)
	}
	stats.TotalValue = math.Round(value*100) / 100

	cutoff := now.Add(-recentWindow)
	for _, t := range transactions {
		if t.Timestamp.After(cutoff) {
			stats.RecentTransactions++
		}
	}
	return stats
}
