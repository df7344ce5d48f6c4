package storage

import (
	"context"
	"errors"

	"github.com/inventoryhub/parts-service/models"
)

// Collection names, shared by both media and the cache.
const (
	CollectionParts        = "parts"
	CollectionShelves      = "shelves"
	CollectionTransactions = "transactions"
)

var (
	// ErrNotFound means a referenced part or shelf does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrConflict means a uniqueness or business-rule violation.
	ErrConflict = errors.New("conflict")
	// ErrInvalidShape means a collection argument has the wrong shape,
	// e.g. a nil shelf mapping.
	ErrInvalidShape = errors.New("invalid collection shape")
)

// Medium is the durable get-all/replace-all primitive behind the Store.
// Reads never report not-found: a collection with no backing data yet is
// seeded with its deterministic default and the default is returned.
// A write to one collection never touches another.
type Medium interface {
	// Name identifies the backing technology for health checks.
	Name() string

	ReadParts(ctx context.Context) ([]models.Part, error)
	WriteParts(ctx context.Context, parts []models.Part) error

	ReadShelves(ctx context.Context) (map[string]models.Shelf, error)
	WriteShelves(ctx context.Context, shelves map[string]models.Shelf) error

	ReadTransactions(ctx context.Context) ([]models.Transaction, error)
	WriteTransactions(ctx context.Context, transactions []models.Transaction) error

	Close(ctx context.Context) error
}

// DefaultShelves is the seed layout written the first time the shelves
// collection is read on an empty medium. Parts and transactions seed empty.
func DefaultShelves() map[string]models.Shelf {
	return map[string]models.Shelf{
		"A-01": {Name: "Shelf A-01", Description: "General storage"},
		"A-02": {Name: "Shelf A-02", Description: "General storage"},
		"B-01": {Name: "Shelf B-01", Description: "Small components"},
		"B-02": {Name: "Shelf B-02", Description: "Small components"},
	}
}
