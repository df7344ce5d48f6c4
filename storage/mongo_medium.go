package storage

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/inventoryhub/parts-service/models"
)

// MongoMedium stores each collection in its own MongoDB collection. Writes
// follow the replace-all contract: delete everything, insert the new
// contents. Shelf documents carry their code as _id since the in-memory
// representation is a map keyed by code.
type MongoMedium struct {
	client *mongo.Client
	db     *mongo.Database
	log    *zap.Logger
}

// shelfDoc is a shelf flattened into a keyed document.
type shelfDoc struct {
	Code         string `bson:"_id"`
	models.Shelf `bson:",inline"`
}

func NewMongoMedium(client *mongo.Client, db *mongo.Database, log *zap.Logger) *MongoMedium {
	return &MongoMedium{client: client, db: db, log: log}
}

func (m *MongoMedium) Name() string { return "mongodb" }

func (m *MongoMedium) Close(ctx context.Context) error {
	if err := m.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("disconnect from MongoDB: %w", err)
	}
	return nil
}

func (m *MongoMedium) ReadParts(ctx context.Context) ([]models.Part, error) {
	coll := m.db.Collection(CollectionParts)
	cursor, err := coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find parts: %w", err)
	}
	defer cursor.Close(ctx)

	parts := []models.Part{}
	if err := cursor.All(ctx, &parts); err != nil {
		return nil, fmt.Errorf("decode parts: %w", err)
	}
	return parts, nil
}

func (m *MongoMedium) WriteParts(ctx context.Context, parts []models.Part) error {
	docs := make([]interface{}, len(parts))
	for i, p := range parts {
		docs[i] = p
	}
	return m.replaceAll(ctx, CollectionParts, docs)
}

func (m *MongoMedium) ReadShelves(ctx context.Context) (map[string]models.Shelf, error) {
	coll := m.db.Collection(CollectionShelves)

	count, err := coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("count shelves: %w", err)
	}
	if count == 0 {
		defaults := DefaultShelves()
		if err := m.WriteShelves(ctx, defaults); err != nil {
			return nil, err
		}
		return defaults, nil
	}

	cursor, err := coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find shelves: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []shelfDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode shelves: %w", err)
	}
	shelves := make(map[string]models.Shelf, len(docs))
	for _, d := range docs {
		shelves[d.Code] = d.Shelf
	}
	return shelves, nil
}

func (m *MongoMedium) WriteShelves(ctx context.Context, shelves map[string]models.Shelf) error {
	if shelves == nil {
		return fmt.Errorf("shelves must be a mapping: %w", ErrInvalidShape)
	}
	docs := make([]interface{}, 0, len(shelves))
	for code, s := range shelves {
		docs = append(docs, shelfDoc{Code: code, Shelf: s})
	}
	return m.replaceAll(ctx, CollectionShelves, docs)
}

func (m *MongoMedium) ReadTransactions(ctx context.Context) ([]models.Transaction, error) {
	coll := m.db.Collection(CollectionTransactions)
	cursor, err := coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find transactions: %w", err)
	}
	defer cursor.Close(ctx)

	transactions := []models.Transaction{}
	if err := cursor.All(ctx, &transactions); err != nil {
		return nil, fmt.Errorf("decode transactions: %w", err)
	}
	return transactions, nil
}

func (m *MongoMedium) WriteTransactions(ctx context.Context, transactions []models.Transaction) error {
	docs := make([]interface{}, len(transactions))
	for i, t := range transactions {
		docs[i] = t
	}
	return m.replaceAll(ctx, CollectionTransactions, docs)
}

// Empty reports whether all three collections hold no documents. The
// backend selector migrates flat-file data only into an untouched database.
func (m *MongoMedium) Empty(ctx context.Context) (bool, error) {
	for _, name := range []string{CollectionParts, CollectionShelves, CollectionTransactions} {
		count, err := m.db.Collection(name).CountDocuments(ctx, bson.M{})
		if err != nil {
			return false, fmt.Errorf("count %s: %w", name, err)
		}
		if count > 0 {
			return false, nil
		}
	}
	return true, nil
}

func (m *MongoMedium) replaceAll(ctx context.Context, collection string, docs []interface{}) error {
	coll := m.db.Collection(collection)
	if _, err := coll.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("clear %s: %w", collection, err)
	}
	if len(docs) == 0 {
		return nil
	}
	if _, err := coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("insert %s: %w", collection, err)
	}
	return nil
}
