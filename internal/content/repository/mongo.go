package repository

import (
	"context"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/saamcabins/cms-backend/internal/content"
)

const contentDocID = "content"

// MongoStore keeps the whole content document as a single record in a Mongo
// collection. It exposes the same Store surface as FileStore so deployments
// can move off the flat file without touching the service layer. The mutex
// mirrors the file store's single-writer discipline; the service still assumes
// at most one concurrent administrator.
type MongoStore struct {
	mu  sync.Mutex
	col *mongo.Collection
}

func NewMongoStore(col *mongo.Collection) *MongoStore {
	return &MongoStore{col: col}
}

type contentRecord struct {
	ID  string            `bson:"_id"`
	Doc *content.Document `bson:"doc"`
}

func (m *MongoStore) Load(ctx context.Context) (*content.Document, error) {
	var rec contentRecord
	err := m.col.FindOne(ctx, bson.M{"_id": contentDocID}).Decode(&rec)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			doc := &content.Document{}
			doc.Normalize()
			return doc, nil
		}
		return nil, fmt.Errorf("load content: %w", err)
	}
	rec.Doc.Normalize()
	return rec.Doc, nil
}

func (m *MongoStore) Replace(ctx context.Context, doc *content.Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.save(ctx, doc)
}

func (m *MongoStore) Mutate(ctx context.Context, fn func(doc *content.Document) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	doc, err := m.Load(ctx)
	if err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		return err
	}
	return m.save(ctx, doc)
}

func (m *MongoStore) save(ctx context.Context, doc *content.Document) error {
	rec := contentRecord{ID: contentDocID, Doc: doc}
	opts := options.Replace().SetUpsert(true)
	if _, err := m.col.ReplaceOne(ctx, bson.M{"_id": contentDocID}, rec, opts); err != nil {
		return fmt.Errorf("save content: %w", err)
	}
	return nil
}
