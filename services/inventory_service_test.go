package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/inventoryhub/parts-service/models"
	"github.com/inventoryhub/parts-service/storage"
)

func newTestService(t *testing.T) *InventoryService {
	t.Helper()
	medium, err := storage.NewFileMedium(t.TempDir(), zap.NewNop())
	require.NoError(t, err)
	store := storage.NewStore(medium, zap.NewNop())
	return NewInventoryService(store, zap.NewNop())
}

func TestAddPartAssignsIDsAndAudits(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	first, err := svc.AddPart(ctx, models.Part{PartNumber: "T800-001", Quantity: 5}, "alice")
	require.NoError(t, err)
	second, err := svc.AddPart(ctx, models.Part{PartNumber: "T800-002", Quantity: 2}, "alice")
	require.NoError(t, err)

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)
	assert.Equal(t, models.StatusAvailable, first.Status)

	transactions, err := svc.GetTransactions(ctx)
	require.NoError(t, err)
	require.Len(t, transactions, 2)
	assert.Equal(t, models.ActionCreated, transactions[0].Action)
	assert.Equal(t, "alice", transactions[0].Actor)
	assert.Greater(t, transactions[1].ID, transactions[0].ID)
}

func TestAddPartDuplicateNumberIsConflict(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.AddPart(ctx, models.Part{PartNumber: "ABC-123", Quantity: 1}, "alice")
	require.NoError(t, err)

	_, err = svc.AddPart(ctx, models.Part{PartNumber: "abc-123", Quantity: 9}, "bob")
	assert.ErrorIs(t, err, storage.ErrConflict)

	parts, err := svc.GetParts(ctx)
	require.NoError(t, err)
	require.Len(t, parts, 1)
	assert.Equal(t, 1, parts[0].Quantity)
}

func TestDeleteCheckedOutPartIsConflict(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	part, err := svc.AddPart(ctx, models.Part{PartNumber: "P-1", Quantity: 1}, "alice")
	require.NoError(t, err)
	_, err = svc.CheckoutPart(ctx, part.ID, "bob", "")
	require.NoError(t, err)

	err = svc.DeletePart(ctx, part.ID)
	assert.ErrorIs(t, err, storage.ErrConflict)

	parts, err := svc.GetParts(ctx)
	require.NoError(t, err)
	assert.Len(t, parts, 1)
}

func TestCheckoutAndCheckinCycle(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	part, err := svc.AddPart(ctx, models.Part{PartNumber: "T800-001", Quantity: 5, MinQuantity: 2, Shelf: "A-01"}, "alice")
	require.NoError(t, err)

	out, err := svc.CheckoutPart(ctx, part.ID, "J. Doe", "field repair")
	require.NoError(t, err)
	assert.Equal(t, models.StatusCheckedOut, out.Status)
	assert.Equal(t, 4, out.Quantity)
	assert.Equal(t, "J. Doe", out.CheckedOutBy)
	require.NotNil(t, out.CheckedOutAt)

	// A second checkout of the same part is a conflict.
	_, err = svc.CheckoutPart(ctx, part.ID, "other", "")
	assert.ErrorIs(t, err, storage.ErrConflict)

	back, err := svc.CheckinPart(ctx, part.ID, "J. Doe", "")
	require.NoError(t, err)
	assert.Equal(t, models.StatusAvailable, back.Status)
	assert.Equal(t, 5, back.Quantity)
	assert.Empty(t, back.CheckedOutBy)
	assert.Nil(t, back.CheckedOutAt)

	transactions, err := svc.GetTransactions(ctx)
	require.NoError(t, err)
	var actions []models.TransactionAction
	for _, tr := range transactions {
		actions = append(actions, tr.Action)
	}
	assert.Equal(t, []models.TransactionAction{models.ActionCreated, models.ActionCheckout, models.ActionCheckin}, actions)
}

func TestCheckoutRollsBackOnMidSequenceFailure(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.AddPart(ctx, models.Part{PartNumber: "T800-001", Quantity: 5, MinQuantity: 2, Shelf: "A-01"}, "alice")
	require.NoError(t, err)
	auditBefore, err := svc.GetTransactions(ctx)
	require.NoError(t, err)

	boom := errors.New("boom")
	err = svc.RunTransaction(ctx, func(tx *storage.Tx) error {
		parts, err := tx.Parts(ctx)
		if err != nil {
			return err
		}
		now := time.Now()
		parts[0].Quantity--
		parts[0].Status = models.StatusCheckedOut
		parts[0].CheckedOutBy = "J. Doe"
		parts[0].CheckedOutAt = &now
		if err := tx.SaveParts(ctx, parts); err != nil {
			return err
		}
		// Fail after the quantity decrement, before the audit append.
		return boom
	})
	assert.ErrorIs(t, err, boom)

	parts, err := svc.GetParts(ctx)
	require.NoError(t, err)
	require.Len(t, parts, 1)
	assert.Equal(t, 5, parts[0].Quantity)
	assert.Equal(t, models.StatusAvailable, parts[0].Status)
	assert.Empty(t, parts[0].CheckedOutBy)

	auditAfter, err := svc.GetTransactions(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(auditBefore), len(auditAfter), "no checkout record may survive the rollback")
}

func TestSetQuantityFromZeroRestoresAvailability(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	part, err := svc.AddPart(ctx, models.Part{PartNumber: "P-1", Quantity: 1}, "alice")
	require.NoError(t, err)
	out, err := svc.CheckoutPart(ctx, part.ID, "J. Doe", "")
	require.NoError(t, err)
	require.Equal(t, 0, out.Quantity)
	require.Equal(t, models.StatusCheckedOut, out.Status)

	restocked, err := svc.SetQuantity(ctx, part.ID, 5, "alice")
	require.NoError(t, err)
	assert.Equal(t, 5, restocked.Quantity)
	assert.Equal(t, models.StatusAvailable, restocked.Status)
	assert.Empty(t, restocked.CheckedOutBy)
	assert.Nil(t, restocked.CheckedOutAt)
}

func TestAddPartOverShelfCapacityIsConflict(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	require.NoError(t, svc.AddShelf(ctx, "C-01", models.Shelf{Name: "Small bin", Capacity: 5}))

	_, err := svc.AddPart(ctx, models.Part{PartNumber: "P-1", Quantity: 3, Shelf: "C-01"}, "alice")
	require.NoError(t, err)

	_, err = svc.AddPart(ctx, models.Part{PartNumber: "P-2", Quantity: 3, Shelf: "C-01"}, "alice")
	assert.ErrorIs(t, err, storage.ErrConflict)

	// Capacity zero means unlimited.
	_, err = svc.AddPart(ctx, models.Part{PartNumber: "P-3", Quantity: 1000, Shelf: "A-01"}, "alice")
	require.NoError(t, err)
}

func TestMovePartOverShelfCapacityIsConflict(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	require.NoError(t, svc.AddShelf(ctx, "C-01", models.Shelf{Capacity: 4}))

	part, err := svc.AddPart(ctx, models.Part{PartNumber: "P-1", Quantity: 6, Shelf: "A-01"}, "alice")
	require.NoError(t, err)

	_, err = svc.MovePart(ctx, part.ID, "C-01", "alice")
	assert.ErrorIs(t, err, storage.ErrConflict)

	kept, err := svc.GetPart(ctx, part.ID)
	require.NoError(t, err)
	assert.Equal(t, "A-01", kept.Shelf)
}

func TestSetQuantityOverShelfCapacityIsConflict(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	require.NoError(t, svc.AddShelf(ctx, "C-01", models.Shelf{Capacity: 4}))

	part, err := svc.AddPart(ctx, models.Part{PartNumber: "P-1", Quantity: 2, Shelf: "C-01"}, "alice")
	require.NoError(t, err)

	_, err = svc.SetQuantity(ctx, part.ID, 5, "alice")
	assert.ErrorIs(t, err, storage.ErrConflict)

	grown, err := svc.SetQuantity(ctx, part.ID, 4, "alice")
	require.NoError(t, err)
	assert.Equal(t, 4, grown.Quantity)
}

func TestDeleteReferencedShelfIsConflict(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.AddPart(ctx, models.Part{PartNumber: "P-1", Quantity: 3, Shelf: "A-01"}, "alice")
	require.NoError(t, err)

	err = svc.DeleteShelf(ctx, "A-01")
	assert.ErrorIs(t, err, storage.ErrConflict)

	shelves, err := svc.GetShelves(ctx)
	require.NoError(t, err)
	assert.Contains(t, shelves, "A-01")
	parts, err := svc.GetParts(ctx)
	require.NoError(t, err)
	assert.Equal(t, "A-01", parts[0].Shelf)
}

func TestRenameShelfCascades(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.AddPart(ctx, models.Part{PartNumber: "P-1", Quantity: 3, Shelf: "A-01"}, "alice")
	require.NoError(t, err)
	_, err = svc.AddPart(ctx, models.Part{PartNumber: "P-2", Quantity: 1, Shelf: "B-01"}, "alice")
	require.NoError(t, err)

	require.NoError(t, svc.RenameShelf(ctx, "A-01", "C-07"))

	shelves, err := svc.GetShelves(ctx)
	require.NoError(t, err)
	assert.NotContains(t, shelves, "A-01")
	assert.Contains(t, shelves, "C-07")

	parts, err := svc.GetParts(ctx)
	require.NoError(t, err)
	assert.Equal(t, "C-07", parts[0].Shelf)
	assert.Equal(t, "B-01", parts[1].Shelf, "unrelated parts keep their shelf")
}

func TestRenameShelfToExistingCodeIsConflict(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	err := svc.RenameShelf(ctx, "A-01", "A-02")
	assert.ErrorIs(t, err, storage.ErrConflict)
}

func TestMovePartToUnknownShelf(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	part, err := svc.AddPart(ctx, models.Part{PartNumber: "P-1", Quantity: 1}, "alice")
	require.NoError(t, err)

	_, err = svc.MovePart(ctx, part.ID, "NOPE-99", "alice")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestImportSkipsDuplicates(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.AddPart(ctx, models.Part{PartNumber: "P-1", Quantity: 1}, "alice")
	require.NoError(t, err)

	result, err := svc.ImportParts(ctx, []models.Part{
		{PartNumber: "P-1", Quantity: 4}, // duplicates the store
		{PartNumber: "P-2", Quantity: 2},
		{PartNumber: "p-2", Quantity: 7}, // duplicates the batch
		{PartNumber: "P-3", Quantity: 1},
	}, "importer")
	require.NoError(t, err)

	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 2, result.Skipped)
	assert.Equal(t, []string{"P-1", "p-2"}, result.SkippedNumbers)

	parts, err := svc.GetParts(ctx)
	require.NoError(t, err)
	require.Len(t, parts, 3)
	assert.Equal(t, 2, parts[1].ID)
	assert.Equal(t, 3, parts[2].ID)

	transactions, err := svc.GetTransactions(ctx)
	require.NoError(t, err)
	imports := 0
	for _, tr := range transactions {
		if tr.Action == models.ActionImport {
			imports++
		}
	}
	assert.Equal(t, 2, imports)
}

func TestImportSkipsBlankAndOverCapacityRows(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	require.NoError(t, svc.AddShelf(ctx, "C-01", models.Shelf{Capacity: 3}))

	result, err := svc.ImportParts(ctx, []models.Part{
		{PartNumber: "", Quantity: 1},
		{PartNumber: "P-1", Quantity: 2, Shelf: "C-01"},
		{PartNumber: "P-2", Quantity: 2, Shelf: "C-01"}, // shelf already holds 2 of 3
		{PartNumber: "P-3", Quantity: 1, Shelf: "C-01"},
	}, "importer")
	require.NoError(t, err)

	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 2, result.Skipped)
	assert.Equal(t, []string{"P-2"}, result.SkippedNumbers, "blank rows are counted but not listed")
}

func TestAuditRecordIDMatchesItsTimestamp(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	// A clock that moves between calls exposes any double sampling.
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	tick := 0
	svc.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Millisecond)
	}

	_, err := svc.AddPart(ctx, models.Part{PartNumber: "P-1", Quantity: 1}, "alice")
	require.NoError(t, err)

	transactions, err := svc.GetTransactions(ctx)
	require.NoError(t, err)
	require.Len(t, transactions, 1)
	assert.Equal(t, transactions[0].Timestamp.UnixMilli(), transactions[0].ID)
}

func TestShelfCounts(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.AddPart(ctx, models.Part{PartNumber: "P-1", Quantity: 3, Shelf: "A-01"}, "alice")
	require.NoError(t, err)
	_, err = svc.AddPart(ctx, models.Part{PartNumber: "P-2", Quantity: 4, Shelf: "A-01"}, "alice")
	require.NoError(t, err)

	summaries, err := svc.ShelfCounts(ctx)
	require.NoError(t, err)
	byCode := map[string]int{}
	for _, s := range summaries {
		byCode[s.Code] = s.CurrentCount
	}
	assert.Equal(t, 7, byCode["A-01"])
	assert.Equal(t, 0, byCode["B-01"])
}

func TestRestoreBackupRejectsNilShelves(t *testing.T) {
	svc := newTestService(t)
	err := svc.RestoreBackup(context.Background(), models.Backup{Parts: []models.Part{}})
	assert.ErrorIs(t, err, storage.ErrInvalidShape)
}

func TestBackupRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.AddPart(ctx, models.Part{PartNumber: "P-1", Quantity: 3}, "alice")
	require.NoError(t, err)

	backup, err := svc.CreateBackup(ctx)
	require.NoError(t, err)
	require.Len(t, backup.Parts, 1)

	_, err = svc.AddPart(ctx, models.Part{PartNumber: "P-2", Quantity: 1}, "alice")
	require.NoError(t, err)

	require.NoError(t, svc.RestoreBackup(ctx, backup))

	parts, err := svc.GetParts(ctx)
	require.NoError(t, err)
	require.Len(t, parts, 1)
	assert.Equal(t, "P-1", parts[0].PartNumber)
}

func TestHealthCheckReportsMediumAndStats(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.AddPart(ctx, models.Part{PartNumber: "P-1", Quantity: 0}, "alice")
	require.NoError(t, err)

	health := svc.HealthCheck(ctx)
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, "files", health.Medium)
	require.NotNil(t, health.Stats)
	assert.Equal(t, 1, health.Stats.TotalParts)
	assert.Equal(t, 1, health.Stats.OutOfStock)
	assert.Greater(t, health.CacheSize, 0)
}
