package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/inventoryhub/parts-service/models"
)

func TestComputeStats(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	parts := []models.Part{
		{ID: 1, Status: models.StatusAvailable, Quantity: 3, Cost: 10.333},
		{ID: 2, Status: models.StatusCheckedOut, Quantity: 0, Cost: 5},
		{ID: 3, Status: models.StatusAvailable, Quantity: 0, Cost: 99},
	}
	transactions := []models.Transaction{
		{ID: 1, Timestamp: now.AddDate(0, 0, -1)},
		{ID: 2, Timestamp: now.AddDate(0, 0, -29)},
		{ID: 3, Timestamp: now.AddDate(0, 0, -31)},
	}

	stats := ComputeStats(parts, transactions, now)

	assert.Equal(t, 3, stats.TotalParts)
	assert.Equal(t, 2, stats.Available)
	assert.Equal(t, 1, stats.CheckedOut)
	assert.Equal(t, 2, stats.OutOfStock)
	// 3*10.333 = 30.999, rounded to two decimals.
	assert.Equal(t, 31.0, stats.TotalValue)
	assert.Equal(t, 2, stats.RecentTransactions)
}

func TestComputeStatsEmptyInputs(t *testing.T) {
	stats := ComputeStats(nil, nil, time.Now())
	assert.Equal(t, models.Stats{}, stats)
}
