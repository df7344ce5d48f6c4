package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"go.uber.org/zap"

	"github.com/inventoryhub/parts-service/models"
)

const (
	partsFile        = "parts.json"
	shelvesFile      = "shelves.json"
	transactionsFile = "transactions.json"

	lockTimeout = 3 * time.Second
)

// FileMedium stores each collection in its own JSON file under dir.
// Writes are crash-safe: the current file is copied to a .backup sibling,
// the new contents go to a .tmp sibling, and the tmp is renamed over the
// real path. Neither sibling is ever read as authoritative.
type FileMedium struct {
	dir   string
	log   *zap.Logger
	locks map[string]*flock.Flock

	// rename is os.Rename in production; tests inject failures here to
	// exercise the backup-restore path.
	rename func(oldpath, newpath string) error
}

// NewFileMedium creates the data directory if needed and prepares one
// advisory file lock per collection file.
func NewFileMedium(dir string, log *zap.Logger) (*FileMedium, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir %s: %w", dir, err)
	}
	m := &FileMedium{
		dir:    dir,
		log:    log,
		locks:  make(map[string]*flock.Flock),
		rename: os.Rename,
	}
	for _, name := range []string{partsFile, shelvesFile, transactionsFile} {
		path := filepath.Join(dir, name)
		m.locks[name] = flock.New(path + ".lock")
	}
	return m, nil
}

func (m *FileMedium) Name() string { return "files" }

func (m *FileMedium) Close(ctx context.Context) error { return nil }

func (m *FileMedium) ReadParts(ctx context.Context) ([]models.Part, error) {
	var parts []models.Part
	if err := m.read(ctx, partsFile, &parts, []models.Part{}); err != nil {
		return nil, err
	}
	if parts == nil {
		parts = []models.Part{}
	}
	return parts, nil
}

func (m *FileMedium) WriteParts(ctx context.Context, parts []models.Part) error {
	return m.write(ctx, partsFile, parts)
}

func (m *FileMedium) ReadShelves(ctx context.Context) (map[string]models.Shelf, error) {
	var shelves map[string]models.Shelf
	if err := m.read(ctx, shelvesFile, &shelves, DefaultShelves()); err != nil {
		return nil, err
	}
	if shelves == nil {
		shelves = map[string]models.Shelf{}
	}
	return shelves, nil
}

func (m *FileMedium) WriteShelves(ctx context.Context, shelves map[string]models.Shelf) error {
	if shelves == nil {
		return fmt.Errorf("shelves must be a mapping: %w", ErrInvalidShape)
	}
	return m.write(ctx, shelvesFile, shelves)
}

func (m *FileMedium) ReadTransactions(ctx context.Context) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := m.read(ctx, transactionsFile, &transactions, []models.Transaction{}); err != nil {
		return nil, err
	}
	if transactions == nil {
		transactions = []models.Transaction{}
	}
	return transactions, nil
}

func (m *FileMedium) WriteTransactions(ctx context.Context, transactions []models.Transaction) error {
	return m.write(ctx, transactionsFile, transactions)
}

// HasFile reports whether a collection file already exists on disk. The
// backend selector uses this to decide which collections to migrate
// without triggering default seeding.
func (m *FileMedium) HasFile(name string) bool {
	_, err := os.Stat(filepath.Join(m.dir, name))
	return err == nil
}

// read loads a collection file into v, seeding and persisting seed when the
// file does not exist yet. Seeding happens at most once; a later read finds
// the seeded file.
func (m *FileMedium) read(ctx context.Context, name string, v any, seed any) error {
	unlock, err := m.lock(ctx, name)
	if err != nil {
		return err
	}
	defer unlock()

	path := filepath.Join(m.dir, name)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) || (err == nil && len(data) == 0) {
		seeded, merr := json.MarshalIndent(seed, "", "  ")
		if merr != nil {
			return fmt.Errorf("marshal seed for %s: %w", name, merr)
		}
		if werr := m.atomicWrite(path, seeded); werr != nil {
			return werr
		}
		data = seeded
	} else if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func (m *FileMedium) write(ctx context.Context, name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", name, err)
	}
	unlock, err := m.lock(ctx, name)
	if err != nil {
		return err
	}
	defer unlock()
	return m.atomicWrite(filepath.Join(m.dir, name), data)
}

// atomicWrite replaces path with data without ever leaving a half-written
// file behind. On failure the pre-write backup is restored over the real
// path and the original error is returned; a failed restore is logged on
// top, never swallowed.
func (m *FileMedium) atomicWrite(path string, data []byte) error {
	backup := path + ".backup"
	tmp := path + ".tmp"

	hasBackup := false
	if _, err := os.Stat(path); err == nil {
		if err := copyFile(path, backup); err != nil {
			return fmt.Errorf("backup %s: %w", path, err)
		}
		hasBackup = true
	}

	err := os.WriteFile(tmp, data, 0o644)
	if err == nil {
		if rerr := m.rename(tmp, path); rerr != nil {
			err = fmt.Errorf("rename %s over %s: %w", tmp, path, rerr)
		}
	} else {
		err = fmt.Errorf("write %s: %w", tmp, err)
	}

	if err != nil {
		_ = os.Remove(tmp)
		if hasBackup {
			if rerr := copyFile(backup, path); rerr != nil {
				m.log.Error("failed to restore backup after write failure",
					zap.String("path", path), zap.Error(rerr))
			} else {
				_ = os.Remove(backup)
			}
		}
		return err
	}

	if hasBackup {
		_ = os.Remove(backup)
	}
	return nil
}

func (m *FileMedium) lock(ctx context.Context, name string) (func(), error) {
	fl := m.locks[name]
	lockCtx, cancel := context.WithTimeout(ctx, lockTimeout)
	defer cancel()
	locked, err := fl.TryLockContext(lockCtx, 100*time.Millisecond)
	if err != nil {
		return nil, fmt.Errorf("acquire lock for %s: %w", name, err)
	}
	if !locked {
		return nil, fmt.Errorf("could not acquire lock for %s", name)
	}
	return func() { _ = fl.Unlock() }, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
