package storage

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/inventoryhub/parts-service/models"
)

// Store is the single entry point to the persistence layer: cached reads,
// replace-all writes, and multi-collection transactions with rollback. One
// mutex serializes every operation; the coordinator guarantees atomicity of
// a caller's operation sequence, not isolation, so concurrent callers are
// made safe by serialization.
type Store struct {
	mu     sync.Mutex
	medium Medium
	cache  *Cache
	log    *zap.Logger
}

func NewStore(medium Medium, log *zap.Logger) *Store {
	return &Store{medium: medium, cache: NewCache(), log: log}
}

// Medium reports the active backing medium identity.
func (s *Store) Medium() string { return s.medium.Name() }

// CacheSize reports how many collections are currently cached.
func (s *Store) CacheSize() int { return s.cache.Size() }

func (s *Store) Close(ctx context.Context) error { return s.medium.Close(ctx) }

func (s *Store) Parts(ctx context.Context) ([]models.Part, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readParts(ctx)
}

func (s *Store) SaveParts(ctx context.Context, parts []models.Part) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeParts(ctx, parts)
}

func (s *Store) Shelves(ctx context.Context) (map[string]models.Shelf, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readShelves(ctx)
}

func (s *Store) SaveShelves(ctx context.Context, shelves map[string]models.Shelf) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeShelves(ctx, shelves)
}

func (s *Store) Transactions(ctx context.Context) ([]models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readTransactions(ctx)
}

func (s *Store) SaveTransactions(ctx context.Context, transactions []models.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeTransactions(ctx, transactions)
}

// Tx is the handle passed to a transaction function. It exposes the same
// read/write operations as the Store; every write is durably applied
// immediately, and the coordinator undoes all of them if the function
// returns an error.
type Tx struct {
	s *Store
}

func (t *Tx) Parts(ctx context.Context) ([]models.Part, error) { return t.s.readParts(ctx) }
func (t *Tx) SaveParts(ctx context.Context, parts []models.Part) error {
	return t.s.writeParts(ctx, parts)
}
func (t *Tx) Shelves(ctx context.Context) (map[string]models.Shelf, error) {
	return t.s.readShelves(ctx)
}
func (t *Tx) SaveShelves(ctx context.Context, shelves map[string]models.Shelf) error {
	return t.s.writeShelves(ctx, shelves)
}
func (t *Tx) Transactions(ctx context.Context) ([]models.Transaction, error) {
	return t.s.readTransactions(ctx)
}
func (t *Tx) SaveTransactions(ctx context.Context, transactions []models.Transaction) error {
	return t.s.writeTransactions(ctx, transactions)
}

// RunTransaction snapshots all three collections and the cache, runs fn,
// and on any error restores every collection and the cache to the
// pre-transaction state before returning the original error. No commit
// step exists: each inner write is already durable, so success is a no-op.
//
// Rollback of one collection is attempted regardless of failures in the
// others; a failed rollback is logged and that collection's cache entry is
// invalidated so later reads see whatever actually persisted.
func (s *Store) RunTransaction(ctx context.Context, fn func(tx *Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	parts, err := s.readParts(ctx)
	if err != nil {
		return err
	}
	shelves, err := s.readShelves(ctx)
	if err != nil {
		return err
	}
	transactions, err := s.readTransactions(ctx)
	if err != nil {
		return err
	}
	cacheSnap := s.cache.Snapshot()

	opErr := fn(&Tx{s: s})
	if opErr == nil {
		return nil
	}

	s.cache.Restore(cacheSnap)
	if err := s.medium.WriteParts(ctx, parts); err != nil {
		s.log.Error("rollback failed for parts", zap.Error(err), zap.NamedError("cause", opErr))
		s.cache.Invalidate(CollectionParts)
	}
	if err := s.medium.WriteShelves(ctx, shelves); err != nil {
		s.log.Error("rollback failed for shelves", zap.Error(err), zap.NamedError("cause", opErr))
		s.cache.Invalidate(CollectionShelves)
	}
	if err := s.medium.WriteTransactions(ctx, transactions); err != nil {
		s.log.Error("rollback failed for transactions", zap.Error(err), zap.NamedError("cause", opErr))
		s.cache.Invalidate(CollectionTransactions)
	}
	return opErr
}

func (s *Store) readParts(ctx context.Context) ([]models.Part, error) {
	if parts, ok := s.cache.GetParts(); ok {
		return parts, nil
	}
	parts, err := s.medium.ReadParts(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.PutParts(parts)
	return parts, nil
}

func (s *Store) writeParts(ctx context.Context, parts []models.Part) error {
	if parts == nil {
		parts = []models.Part{}
	}
	if err := s.medium.WriteParts(ctx, parts); err != nil {
		return err
	}
	s.cache.PutParts(parts)
	return nil
}

func (s *Store) readShelves(ctx context.Context) (map[string]models.Shelf, error) {
	if shelves, ok := s.cache.GetShelves(); ok {
		return shelves, nil
	}
	shelves, err := s.medium.ReadShelves(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.PutShelves(shelves)
	return shelves, nil
}

func (s *Store) writeShelves(ctx context.Context, shelves map[string]models.Shelf) error {
	if shelves == nil {
		return fmt.Errorf("shelves must be a mapping: %w", ErrInvalidShape)
	}
	if err := s.medium.WriteShelves(ctx, shelves); err != nil {
		return err
	}
	s.cache.PutShelves(shelves)
	return nil
}

func (s *Store) readTransactions(ctx context.Context) ([]models.Transaction, error) {
	if transactions, ok := s.cache.GetTransactions(); ok {
		return transactions, nil
	}
	transactions, err := s.medium.ReadTransactions(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.PutTransactions(transactions)
	return transactions, nil
}

func (s *Store) writeTransactions(ctx context.Context, transactions []models.Transaction) error {
	if transactions == nil {
		transactions = []models.Transaction{}
	}
	if err := s.medium.WriteTransactions(ctx, transactions); err != nil {
		return err
	}
	s.cache.PutTransactions(transactions)
	return nil
}
