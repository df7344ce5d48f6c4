package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/inventoryhub/parts-service/models"
	"github.com/inventoryhub/parts-service/storage"
)

// InventoryService is the business layer over the persistence Store. Every
// mutating operation runs inside a store transaction so a mid-sequence
// failure rolls back all touched collections.
type InventoryService struct {
	store *storage.Store
	log   *zap.Logger
	now   func() time.Time
}

func NewInventoryService(store *storage.Store, log *zap.Logger) *InventoryService {
	return &InventoryService{store: store, log: log, now: time.Now}
}

// ---- direct collection accessors ----

func (s *InventoryService) GetParts(ctx context.Context) ([]models.Part, error) {
	return s.store.Parts(ctx)
}

func (s *InventoryService) SaveParts(ctx context.Context, parts []models.Part) error {
	return s.store.SaveParts(ctx, parts)
}

func (s *InventoryService) GetShelves(ctx context.Context) (map[string]models.Shelf, error) {
	return s.store.Shelves(ctx)
}

func (s *InventoryService) SaveShelves(ctx context.Context, shelves map[string]models.Shelf) error {
	return s.store.SaveShelves(ctx, shelves)
}

func (s *InventoryService) GetTransactions(ctx context.Context) ([]models.Transaction, error) {
	return s.store.Transactions(ctx)
}

func (s *InventoryService) SaveTransactions(ctx context.Context, transactions []models.Transaction) error {
	return s.store.SaveTransactions(ctx, transactions)
}

// RunTransaction exposes the store coordinator for callers composing their
// own multi-collection sequences.
func (s *InventoryService) RunTransaction(ctx context.Context, fn func(tx *storage.Tx) error) error {
	return s.store.RunTransaction(ctx, fn)
}

// ---- part operations ----

// GetPart returns a single part by id.
func (s *InventoryService) GetPart(ctx context.Context, id int) (models.Part, error) {
	parts, err := s.store.Parts(ctx)
	if err != nil {
		return models.Part{}, err
	}
	idx := findPart(parts, id)
	if idx < 0 {
		return models.Part{}, fmt.Errorf("part %d: %w", id, storage.ErrNotFound)
	}
	return parts[idx], nil
}

// AddPart stores a new part. The id is assigned from the current maximum;
// a duplicate part number (case-insensitive) is a conflict. A "created"
// audit record is appended in the same transaction.
func (s *InventoryService) AddPart(ctx context.Context, part models.Part, actor string) (models.Part, error) {
	if part.Quantity < 0 || part.MinQuantity < 0 {
		return models.Part{}, fmt.Errorf("quantity must not be negative: %w", storage.ErrConflict)
	}
	if part.PartNumber == "" {
		return models.Part{}, fmt.Errorf("part number is required: %w", storage.ErrInvalidShape)
	}

	err := s.store.RunTransaction(ctx, func(tx *storage.Tx) error {
		parts, err := tx.Parts(ctx)
		if err != nil {
			return err
		}
		for _, existing := range parts {
			if existing.SameNumber(part.PartNumber) {
				return fmt.Errorf("part number %q already exists: %w", part.PartNumber, storage.ErrConflict)
			}
		}
		if part.Shelf != "" {
			if err := s.requireShelfRoom(ctx, tx, parts, part.Shelf, 0, part.Quantity); err != nil {
				return err
			}
		}

		part.ID = nextPartID(parts)
		if part.Status == "" {
			part.Status = models.StatusAvailable
		}
		part.UpdatedAt = s.now()
		part.UpdatedBy = actor

		if err := tx.SaveParts(ctx, append(parts, part)); err != nil {
			return err
		}
		return s.appendRecord(ctx, tx, models.Transaction{
			Action:        models.ActionCreated,
			PartID:        part.ID,
			PartNumber:    part.PartNumber,
			Actor:         actor,
			QuantityAfter: intPtr(part.Quantity),
			LocationAfter: part.Shelf,
		})
	})
	if err != nil {
		return models.Part{}, err
	}
	return part, nil
}

// UpdatePart replaces an existing part's attributes. Checkout state is
// owned by CheckoutPart/CheckinPart and preserved here. The audit action
// reflects what changed: quantity, location, or a general update.
func (s *InventoryService) UpdatePart(ctx context.Context, updated models.Part, actor string) (models.Part, error) {
	if updated.Quantity < 0 || updated.MinQuantity < 0 {
		return models.Part{}, fmt.Errorf("quantity must not be negative: %w", storage.ErrConflict)
	}

	err := s.store.RunTransaction(ctx, func(tx *storage.Tx) error {
		parts, err := tx.Parts(ctx)
		if err != nil {
			return err
		}
		idx := findPart(parts, updated.ID)
		if idx < 0 {
			return fmt.Errorf("part %d: %w", updated.ID, storage.ErrNotFound)
		}
		for _, existing := range parts {
			if existing.ID != updated.ID && existing.SameNumber(updated.PartNumber) {
				return fmt.Errorf("part number %q already exists: %w", updated.PartNumber, storage.ErrConflict)
			}
		}
		if updated.Shelf != "" {
			if err := s.requireShelfRoom(ctx, tx, parts, updated.Shelf, updated.ID, updated.Quantity); err != nil {
				return err
			}
		}

		previous := parts[idx]
		updated.Status = previous.Status
		updated.CheckedOutBy = previous.CheckedOutBy
		updated.CheckedOutAt = previous.CheckedOutAt
		updated.UpdatedAt = s.now()
		updated.UpdatedBy = actor
		parts[idx] = updated

		if err := tx.SaveParts(ctx, parts); err != nil {
			return err
		}

		record := models.Transaction{
			Action:     models.ActionUpdated,
			PartID:     updated.ID,
			PartNumber: updated.PartNumber,
			Actor:      actor,
		}
		switch {
		case previous.Quantity != updated.Quantity:
			record.Action = models.ActionQuantityUpdate
			record.QuantityBefore = intPtr(previous.Quantity)
			record.QuantityAfter = intPtr(updated.Quantity)
		case previous.Shelf != updated.Shelf:
			record.Action = models.ActionLocationChange
			record.LocationBefore = previous.Shelf
			record.LocationAfter = updated.Shelf
		}
		return s.appendRecord(ctx, tx, record)
	})
	if err != nil {
		return models.Part{}, err
	}
	return updated, nil
}

// DeletePart removes a part. A checked-out part cannot be deleted.
func (s *InventoryService) DeletePart(ctx context.Context, id int) error {
	return s.store.RunTransaction(ctx, func(tx *storage.Tx) error {
		parts, err := tx.Parts(ctx)
		if err != nil {
			return err
		}
		idx := findPart(parts, id)
		if idx < 0 {
			return fmt.Errorf("part %d: %w", id, storage.ErrNotFound)
		}
		if parts[idx].Status == models.StatusCheckedOut {
			return fmt.Errorf("part %d is checked out: %w", id, storage.ErrConflict)
		}
		return tx.SaveParts(ctx, append(parts[:idx], parts[idx+1:]...))
	})
}

// CheckoutPart hands one unit of a part to someone: quantity drops by one,
// the part enters checked_out state, and a checkout audit record is
// appended in the same transaction.
func (s *InventoryService) CheckoutPart(ctx context.Context, id int, by, notes string) (models.Part, error) {
	var result models.Part
	err := s.store.RunTransaction(ctx, func(tx *storage.Tx) error {
		parts, err := tx.Parts(ctx)
		if err != nil {
			return err
		}
		idx := findPart(parts, id)
		if idx < 0 {
			return fmt.Errorf("part %d: %w", id, storage.ErrNotFound)
		}
		part := parts[idx]
		if part.Status == models.StatusCheckedOut {
			return fmt.Errorf("part %d is already checked out: %w", id, storage.ErrConflict)
		}
		if part.Quantity == 0 {
			return fmt.Errorf("part %d is out of stock: %w", id, storage.ErrConflict)
		}

		before := part.Quantity
		now := s.now()
		part.Quantity--
		part.Status = models.StatusCheckedOut
		part.CheckedOutBy = by
		part.CheckedOutAt = &now
		part.UpdatedAt = now
		part.UpdatedBy = by
		parts[idx] = part

		if err := tx.SaveParts(ctx, parts); err != nil {
			return err
		}
		if err := s.appendRecord(ctx, tx, models.Transaction{
			Action:         models.ActionCheckout,
			PartID:         part.ID,
			PartNumber:     part.PartNumber,
			Actor:          by,
			QuantityBefore: intPtr(before),
			QuantityAfter:  intPtr(part.Quantity),
			Notes:          notes,
		}); err != nil {
			return err
		}
		result = part
		return nil
	})
	if err != nil {
		return models.Part{}, err
	}
	return result, nil
}

// CheckinPart returns a checked-out part: quantity rises by one and the
// checkout fields are cleared.
func (s *InventoryService) CheckinPart(ctx context.Context, id int, actor, notes string) (models.Part, error) {
	var result models.Part
	err := s.store.RunTransaction(ctx, func(tx *storage.Tx) error {
		parts, err := tx.Parts(ctx)
		if err != nil {
			return err
		}
		idx := findPart(parts, id)
		if idx < 0 {
			return fmt.Errorf("part %d: %w", id, storage.ErrNotFound)
		}
		part := parts[idx]
		if part.Status != models.StatusCheckedOut {
			return fmt.Errorf("part %d is not checked out: %w", id, storage.ErrConflict)
		}

		before := part.Quantity
		part.Quantity++
		part.Status = models.StatusAvailable
		part.CheckedOutBy = ""
		part.CheckedOutAt = nil
		part.UpdatedAt = s.now()
		part.UpdatedBy = actor
		parts[idx] = part

		if err := tx.SaveParts(ctx, parts); err != nil {
			return err
		}
		if err := s.appendRecord(ctx, tx, models.Transaction{
			Action:         models.ActionCheckin,
			PartID:         part.ID,
			PartNumber:     part.PartNumber,
			Actor:          actor,
			QuantityBefore: intPtr(before),
			QuantityAfter:  intPtr(part.Quantity),
			Notes:          notes,
		}); err != nil {
			return err
		}
		result = part
		return nil
	})
	if err != nil {
		return models.Part{}, err
	}
	return result, nil
}

// MovePart relocates a part to another shelf (empty code unassigns it).
func (s *InventoryService) MovePart(ctx context.Context, id int, shelfCode, actor string) (models.Part, error) {
	var result models.Part
	err := s.store.RunTransaction(ctx, func(tx *storage.Tx) error {
		parts, err := tx.Parts(ctx)
		if err != nil {
			return err
		}
		idx := findPart(parts, id)
		if idx < 0 {
			return fmt.Errorf("part %d: %w", id, storage.ErrNotFound)
		}
		if shelfCode != "" {
			if err := s.requireShelfRoom(ctx, tx, parts, shelfCode, id, parts[idx].Quantity); err != nil {
				return err
			}
		}

		part := parts[idx]
		before := part.Shelf
		part.Shelf = shelfCode
		part.UpdatedAt = s.now()
		part.UpdatedBy = actor
		parts[idx] = part

		if err := tx.SaveParts(ctx, parts); err != nil {
			return err
		}
		if err := s.appendRecord(ctx, tx, models.Transaction{
			Action:         models.ActionLocationChange,
			PartID:         part.ID,
			PartNumber:     part.PartNumber,
			Actor:          actor,
			LocationBefore: before,
			LocationAfter:  shelfCode,
		}); err != nil {
			return err
		}
		result = part
		return nil
	})
	if err != nil {
		return models.Part{}, err
	}
	return result, nil
}

// SetQuantity overwrites a part's quantity. Raising the quantity from zero
// returns the part to available and clears any stale checkout; dropping it
// to zero does not flip status (low-stock policy stays with the caller).
func (s *InventoryService) SetQuantity(ctx context.Context, id, quantity int, actor string) (models.Part, error) {
	if quantity < 0 {
		return models.Part{}, fmt.Errorf("quantity must not be negative: %w", storage.ErrConflict)
	}
	var result models.Part
	err := s.store.RunTransaction(ctx, func(tx *storage.Tx) error {
		parts, err := tx.Parts(ctx)
		if err != nil {
			return err
		}
		idx := findPart(parts, id)
		if idx < 0 {
			return fmt.Errorf("part %d: %w", id, storage.ErrNotFound)
		}

		part := parts[idx]
		if part.Shelf != "" && quantity > part.Quantity {
			if err := s.requireShelfRoom(ctx, tx, parts, part.Shelf, part.ID, quantity); err != nil {
				return err
			}
		}

		before := part.Quantity
		part.Quantity = quantity
		if before == 0 && quantity > 0 && part.Status == models.StatusCheckedOut {
			part.Status = models.StatusAvailable
			part.CheckedOutBy = ""
			part.CheckedOutAt = nil
		}
		part.UpdatedAt = s.now()
		part.UpdatedBy = actor
		parts[idx] = part

		if err := tx.SaveParts(ctx, parts); err != nil {
			return err
		}
		if err := s.appendRecord(ctx, tx, models.Transaction{
			Action:         models.ActionQuantityUpdate,
			PartID:         part.ID,
			PartNumber:     part.PartNumber,
			Actor:          actor,
			QuantityBefore: intPtr(before),
			QuantityAfter:  intPtr(quantity),
		}); err != nil {
			return err
		}
		result = part
		return nil
	})
	if err != nil {
		return models.Part{}, err
	}
	return result, nil
}

// ImportResult summarizes a bulk import.
type ImportResult struct {
	Imported       int      `json:"imported"`
	Skipped        int      `json:"skipped"`
	SkippedNumbers []string `json:"skippedNumbers,omitempty"`
}

// ImportParts bulk-adds records, e.g. from a spreadsheet import. Rows that
// cannot be stored (missing part number, negative quantity, a number
// duplicating the store or an earlier row, a shelf without room) are
// skipped and reported rather than failing the batch. Blank-number rows
// bump the skip count but are left out of SkippedNumbers.
func (s *InventoryService) ImportParts(ctx context.Context, incoming []models.Part, actor string) (ImportResult, error) {
	var result ImportResult
	err := s.store.RunTransaction(ctx, func(tx *storage.Tx) error {
		parts, err := tx.Parts(ctx)
		if err != nil {
			return err
		}

		nextID := nextPartID(parts)
		for _, part := range incoming {
			ok, err := s.rowImportable(ctx, tx, parts, part)
			if err != nil {
				return err
			}
			if !ok {
				result.Skipped++
				if part.PartNumber != "" {
					result.SkippedNumbers = append(result.SkippedNumbers, part.PartNumber)
				}
				continue
			}
			part.ID = nextID
			nextID++
			if part.Status == "" {
				part.Status = models.StatusAvailable
			}
			part.UpdatedAt = s.now()
			part.UpdatedBy = actor
			parts = append(parts, part)
			result.Imported++
		}

		if err := tx.SaveParts(ctx, parts); err != nil {
			return err
		}
		for _, part := range parts[len(parts)-result.Imported:] {
			if err := s.appendRecord(ctx, tx, models.Transaction{
				Action:        models.ActionImport,
				PartID:        part.ID,
				PartNumber:    part.PartNumber,
				Actor:         actor,
				QuantityAfter: intPtr(part.Quantity),
				LocationAfter: part.Shelf,
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return ImportResult{}, err
	}
	return result, nil
}

// ---- shelf operations ----

// AddShelf registers a new shelf code.
func (s *InventoryService) AddShelf(ctx context.Context, code string, shelf models.Shelf) error {
	if code == "" {
		return fmt.Errorf("shelf code is required: %w", storage.ErrInvalidShape)
	}
	return s.store.RunTransaction(ctx, func(tx *storage.Tx) error {
		shelves, err := tx.Shelves(ctx)
		if err != nil {
			return err
		}
		if _, exists := shelves[code]; exists {
			return fmt.Errorf("shelf %q already exists: %w", code, storage.ErrConflict)
		}
		shelves[code] = shelf
		return tx.SaveShelves(ctx, shelves)
	})
}

// UpdateShelf replaces a shelf's attributes.
func (s *InventoryService) UpdateShelf(ctx context.Context, code string, shelf models.Shelf) error {
	return s.store.RunTransaction(ctx, func(tx *storage.Tx) error {
		shelves, err := tx.Shelves(ctx)
		if err != nil {
			return err
		}
		if _, exists := shelves[code]; !exists {
			return fmt.Errorf("shelf %q: %w", code, storage.ErrNotFound)
		}
		shelves[code] = shelf
		return tx.SaveShelves(ctx, shelves)
	})
}

// DeleteShelf removes a shelf. A shelf referenced by any part cannot be
// deleted; both collections stay untouched in that case.
func (s *InventoryService) DeleteShelf(ctx context.Context, code string) error {
	return s.store.RunTransaction(ctx, func(tx *storage.Tx) error {
		shelves, err := tx.Shelves(ctx)
		if err != nil {
			return err
		}
		if _, exists := shelves[code]; !exists {
			return fmt.Errorf("shelf %q: %w", code, storage.ErrNotFound)
		}
		parts, err := tx.Parts(ctx)
		if err != nil {
			return err
		}
		for _, p := range parts {
			if p.Shelf == code {
				return fmt.Errorf("shelf %q is referenced by part %q: %w", code, p.PartNumber, storage.ErrConflict)
			}
		}
		delete(shelves, code)
		return tx.SaveShelves(ctx, shelves)
	})
}

// RenameShelf changes a shelf code and cascade-updates every part that
// references it, all inside one transaction.
func (s *InventoryService) RenameShelf(ctx context.Context, oldCode, newCode string) error {
	if newCode == "" {
		return fmt.Errorf("shelf code is required: %w", storage.ErrInvalidShape)
	}
	return s.store.RunTransaction(ctx, func(tx *storage.Tx) error {
		shelves, err := tx.Shelves(ctx)
		if err != nil {
			return err
		}
		shelf, exists := shelves[oldCode]
		if !exists {
			return fmt.Errorf("shelf %q: %w", oldCode, storage.ErrNotFound)
		}
		if _, taken := shelves[newCode]; taken {
			return fmt.Errorf("shelf %q already exists: %w", newCode, storage.ErrConflict)
		}
		delete(shelves, oldCode)
		shelves[newCode] = shelf
		if err := tx.SaveShelves(ctx, shelves); err != nil {
			return err
		}

		parts, err := tx.Parts(ctx)
		if err != nil {
			return err
		}
		changed := false
		for i := range parts {
			if parts[i].Shelf == oldCode {
				parts[i].Shelf = newCode
				changed = true
			}
		}
		if !changed {
			return nil
		}
		return tx.SaveParts(ctx, parts)
	})
}

// ShelfCounts returns every shelf with its derived occupancy.
func (s *InventoryService) ShelfCounts(ctx context.Context) ([]models.ShelfSummary, error) {
	shelves, err := s.store.Shelves(ctx)
	if err != nil {
		return nil, err
	}
	parts, err := s.store.Parts(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(shelves))
	for _, p := range parts {
		if p.Shelf != "" {
			counts[p.Shelf] += p.Quantity
		}
	}
	summaries := make([]models.ShelfSummary, 0, len(shelves))
	for code, shelf := range shelves {
		summaries = append(summaries, models.ShelfSummary{
			Code:         code,
			Shelf:        shelf,
			CurrentCount: counts[code],
		})
	}
	sortSummaries(summaries)
	return summaries, nil
}

// ---- queries, stats, health, backup ----

func (s *InventoryService) SearchParts(ctx context.Context, query string, fields []string) ([]models.Part, error) {
	parts, err := s.store.Parts(ctx)
	if err != nil {
		return nil, err
	}
	return SearchParts(parts, query, fields), nil
}

func (s *InventoryService) FilterParts(ctx context.Context, spec FilterSpec) ([]models.Part, error) {
	parts, err := s.store.Parts(ctx)
	if err != nil {
		return nil, err
	}
	return FilterParts(parts, spec), nil
}

func (s *InventoryService) GetStats(ctx context.Context) (models.Stats, error) {
	parts, err := s.store.Parts(ctx)
	if err != nil {
		return models.Stats{}, err
	}
	transactions, err := s.store.Transactions(ctx)
	if err != nil {
		return models.Stats{}, err
	}
	return ComputeStats(parts, transactions, s.now()), nil
}

// HealthCheck never fails: a broken medium yields an unhealthy result
// carrying the error message.
func (s *InventoryService) HealthCheck(ctx context.Context) models.Health {
	health := models.Health{
		Status:    "healthy",
		Medium:    s.store.Medium(),
		CacheSize: s.store.CacheSize(),
	}
	stats, err := s.GetStats(ctx)
	if err != nil {
		health.Status = "unhealthy"
		health.Error = err.Error()
		return health
	}
	health.Stats = &stats
	return health
}

// CreateBackup snapshots all three collections under one lock so the copy
// is internally consistent.
func (s *InventoryService) CreateBackup(ctx context.Context) (models.Backup, error) {
	var backup models.Backup
	err := s.store.RunTransaction(ctx, func(tx *storage.Tx) error {
		parts, err := tx.Parts(ctx)
		if err != nil {
			return err
		}
		shelves, err := tx.Shelves(ctx)
		if err != nil {
			return err
		}
		transactions, err := tx.Transactions(ctx)
		if err != nil {
			return err
		}
		backup = models.Backup{
			CreatedAt:    s.now(),
			Parts:        parts,
			Shelves:      shelves,
			Transactions: transactions,
		}
		return nil
	})
	if err != nil {
		return models.Backup{}, err
	}
	return backup, nil
}

// RestoreBackup replaces all three collections with the snapshot's
// contents. A partial failure rolls every collection back.
func (s *InventoryService) RestoreBackup(ctx context.Context, backup models.Backup) error {
	if backup.Shelves == nil {
		return fmt.Errorf("backup shelves must be a mapping: %w", storage.ErrInvalidShape)
	}
	return s.store.RunTransaction(ctx, func(tx *storage.Tx) error {
		if err := tx.SaveParts(ctx, backup.Parts); err != nil {
			return err
		}
		if err := tx.SaveShelves(ctx, backup.Shelves); err != nil {
			return err
		}
		return tx.SaveTransactions(ctx, backup.Transactions)
	})
}

// ---- helpers ----

// requireShelfRoom verifies the shelf exists and that placing quantity
// units of part id on it keeps the derived occupancy within the shelf's
// capacity. Capacity 0 is unlimited.
func (s *InventoryService) requireShelfRoom(ctx context.Context, tx *storage.Tx, parts []models.Part, code string, id, quantity int) error {
	shelves, err := tx.Shelves(ctx)
	if err != nil {
		return err
	}
	shelf, exists := shelves[code]
	if !exists {
		return fmt.Errorf("shelf %q: %w", code, storage.ErrNotFound)
	}
	if shelf.Capacity == 0 {
		return nil
	}
	occupied := 0
	for _, p := range parts {
		if p.Shelf == code && p.ID != id {
			occupied += p.Quantity
		}
	}
	if occupied+quantity > shelf.Capacity {
		return fmt.Errorf("shelf %q holds %d of %d: %w", code, occupied, shelf.Capacity, storage.ErrConflict)
	}
	return nil
}

// rowImportable applies the per-row import rules. Shelf problems (unknown
// code, no room) disqualify the row; a medium failure aborts the batch.
func (s *InventoryService) rowImportable(ctx context.Context, tx *storage.Tx, parts []models.Part, part models.Part) (bool, error) {
	if part.PartNumber == "" || part.Quantity < 0 || duplicateNumber(parts, part.PartNumber) {
		return false, nil
	}
	if part.Shelf == "" {
		return true, nil
	}
	err := s.requireShelfRoom(ctx, tx, parts, part.Shelf, 0, part.Quantity)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, storage.ErrNotFound) || errors.Is(err, storage.ErrConflict):
		return false, nil
	default:
		return false, err
	}
}

// appendRecord assigns the next audit id and appends rec to the log. IDs
// are time-derived but always strictly greater than any existing id so the
// log keeps a stable order even under clock skew.
func (s *InventoryService) appendRecord(ctx context.Context, tx *storage.Tx, rec models.Transaction) error {
	transactions, err := tx.Transactions(ctx)
	if err != nil {
		return err
	}
	now := s.now()
	rec.ID = now.UnixMilli()
	for _, t := range transactions {
		if t.ID >= rec.ID {
			rec.ID = t.ID + 1
		}
	}
	rec.Timestamp = now
	return tx.SaveTransactions(ctx, append(transactions, rec))
}

func findPart(parts []models.Part, id int) int {
	for i, p := range parts {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func nextPartID(parts []models.Part) int {
	next := 1
	for _, p := range parts {
		if p.ID >= next {
			next = p.ID + 1
		}
	}
	return next
}

func duplicateNumber(parts []models.Part, number string) bool {
	for _, p := range parts {
		if p.SameNumber(number) {
			return true
		}
	}
	return false
}

func sortSummaries(summaries []models.ShelfSummary) {
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Code < summaries[j].Code
	})
}

func intPtr(v int) *int { return &v }
