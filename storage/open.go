package storage

import (
	"context"

	"go.uber.org/zap"

	"github.com/inventoryhub/parts-service/database"
)

// Config selects and parameterizes the backing medium.
type Config struct {
	// MongoURI enables the MongoDB medium when non-empty. A failed
	// connection falls back to flat files.
	MongoURI string
	// MongoDB is the database name, e.g. "inventory".
	MongoDB string
	// DataDir holds the flat-file collections.
	DataDir string
}

// Open decides the backing medium once for the process lifetime. With a
// configured and reachable MongoDB it performs a one-time migration of any
// pre-existing flat-file data into an empty database, then serves from
// MongoDB; otherwise it serves from flat files under DataDir.
func Open(ctx context.Context, cfg Config, log *zap.Logger) (*Store, error) {
	files, err := NewFileMedium(cfg.DataDir, log)
	if err != nil {
		return nil, err
	}

	if cfg.MongoURI == "" {
		log.Info("no MongoDB URI configured, using flat-file storage",
			zap.String("dir", cfg.DataDir))
		return NewStore(files, log), nil
	}

	client, db, err := database.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Warn("MongoDB connection failed, falling back to flat files", zap.Error(err))
		return NewStore(files, log), nil
	}

	mongoMedium := NewMongoMedium(client, db, log)
	if err := migrateFlatFiles(ctx, files, mongoMedium, log); err != nil {
		// Migration trouble does not change the medium decision; the
		// database stays active and the flat files stay untouched.
		log.Warn("flat-file migration skipped", zap.Error(err))
	}
	log.Info("using MongoDB storage", zap.String("database", cfg.MongoDB))
	return NewStore(mongoMedium, log), nil
}

// migrateFlatFiles imports pre-existing flat-file collections into MongoDB,
// once, and only if every database collection is still empty. Shelves are
// converted from their key→object mapping into keyed documents by the
// medium's write path.
func migrateFlatFiles(ctx context.Context, files *FileMedium, db *MongoMedium, log *zap.Logger) error {
	empty, err := db.Empty(ctx)
	if err != nil {
		return err
	}
	if !empty {
		return nil
	}

	if files.HasFile(partsFile) {
		parts, err := files.ReadParts(ctx)
		if err != nil {
			return err
		}
		if err := db.WriteParts(ctx, parts); err != nil {
			return err
		}
		log.Info("migrated parts to MongoDB", zap.Int("count", len(parts)))
	}
	if files.HasFile(shelvesFile) {
		shelves, err := files.ReadShelves(ctx)
		if err != nil {
			return err
		}
		if err := db.WriteShelves(ctx, shelves); err != nil {
			return err
		}
		log.Info("migrated shelves to MongoDB", zap.Int("count", len(shelves)))
	}
	if files.HasFile(transactionsFile) {
		transactions, err := files.ReadTransactions(ctx)
		if err != nil {
			return err
		}
		if err := db.WriteTransactions(ctx, transactions); err != nil {
			return err
		}
		log.Info("migrated transactions to MongoDB", zap.Int("count", len(transactions)))
	}
	return nil
}
