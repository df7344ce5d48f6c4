package storage

import (
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/inventoryhub/parts-service/models"
)

// Cache is the process-wide per-collection snapshot consulted before the
// backing medium. Invalidation is write-driven only; there is no TTL.
// Values are cloned on the way in and out so callers can mutate their
// copies freely.
type Cache struct {
	mu sync.RWMutex

	parts   []models.Part
	partsOK bool
	partsAt time.Time

	shelves   map[string]models.Shelf
	shelvesOK bool
	shelvesAt time.Time

	transactions   []models.Transaction
	transactionsOK bool
	transactionsAt time.Time
}

// CacheSnapshot captures the full cache state so the transaction
// coordinator can restore it after a rollback.
type CacheSnapshot struct {
	parts   []models.Part
	partsOK bool
	partsAt time.Time

	shelves   map[string]models.Shelf
	shelvesOK bool
	shelvesAt time.Time

	transactions   []models.Transaction
	transactionsOK bool
	transactionsAt time.Time
}

func NewCache() *Cache {
	return &Cache{}
}

func (c *Cache) GetParts() ([]models.Part, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.partsOK {
		return nil, false
	}
	return slices.Clone(c.parts), true
}

func (c *Cache) PutParts(parts []models.Part) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.parts = slices.Clone(parts)
	c.partsOK = true
	c.partsAt = time.Now()
}

func (c *Cache) GetShelves() (map[string]models.Shelf, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.shelvesOK {
		return nil, false
	}
	return maps.Clone(c.shelves), true
}

func (c *Cache) PutShelves(shelves map[string]models.Shelf) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.shelves = maps.Clone(shelves)
	c.shelvesOK = true
	c.shelvesAt = time.Now()
}

func (c *Cache) GetTransactions() ([]models.Transaction, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.transactionsOK {
		return nil, false
	}
	return slices.Clone(c.transactions), true
}

func (c *Cache) PutTransactions(transactions []models.Transaction) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.transactions = slices.Clone(transactions)
	c.transactionsOK = true
	c.transactionsAt = time.Now()
}

// Invalidate drops a single collection's entry.
func (c *Cache) Invalidate(collection string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch collection {
	case CollectionParts:
		c.parts, c.partsOK = nil, false
	case CollectionShelves:
		c.shelves, c.shelvesOK = nil, false
	case CollectionTransactions:
		c.transactions, c.transactionsOK = nil, false
	}
}

// InvalidateAll drops every entry.
func (c *Cache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.parts, c.partsOK = nil, false
	c.shelves, c.shelvesOK = nil, false
	c.transactions, c.transactionsOK = nil, false
}

// Size is the number of populated entries, reported by health checks.
func (c *Cache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	n := 0
	for _, ok := range []bool{c.partsOK, c.shelvesOK, c.transactionsOK} {
		if ok {
			n++
		}
	}
	return n
}

// Snapshot copies the current cache state, including which entries are
// populated and their last-write timestamps.
func (c *Cache) Snapshot() CacheSnapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return CacheSnapshot{
		parts:   slices.Clone(c.parts),
		partsOK: c.partsOK,
		partsAt: c.partsAt,

		shelves:   maps.Clone(c.shelves),
		shelvesOK: c.shelvesOK,
		shelvesAt: c.shelvesAt,

		transactions:   slices.Clone(c.transactions),
		transactionsOK: c.transactionsOK,
		transactionsAt: c.transactionsAt,
	}
}

// Restore replaces the cache state with a previously taken snapshot.
func (c *Cache) Restore(snap CacheSnapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.parts, c.partsOK, c.partsAt = slices.Clone(snap.parts), snap.partsOK, snap.partsAt
	c.shelves, c.shelvesOK, c.shelvesAt = maps.Clone(snap.shelves), snap.shelvesOK, snap.shelvesAt
	c.transactions, c.transactionsOK, c.transactionsAt = slices.Clone(snap.transactions), snap.transactionsOK, snap.transactionsAt
}
