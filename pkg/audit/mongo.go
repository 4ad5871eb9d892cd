package audit

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// mongoStore is the production Store backend: one document per run in a
// single collection, newest-first via RecordedAt.
type mongoStore struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// NewMongoStore connects to uri and returns a Store writing into
// database.collection. The caller must eventually call Close.
func NewMongoStore(ctx context.Context, uri, database, collection string) (Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("audit: connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("audit: ping: %w", err)
	}
	return &mongoStore{
		client:     client,
		collection: client.Database(database).Collection(collection),
	}, nil
}

func (s *mongoStore) Record(ctx context.Context, rec Record) error {
	if rec.RecordedAt.IsZero() {
		rec.RecordedAt = time.Now()
	}
	_, err := s.collection.UpdateOne(ctx,
		bson.M{"run_id": rec.RunID},
		bson.M{"$set": rec},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("audit: record: %w", err)
	}
	return nil
}

func (s *mongoStore) Get(ctx context.Context, runID string) (Record, error) {
	var rec Record
	err := s.collection.FindOne(ctx, bson.M{"run_id": runID}).Decode(&rec)
	if err == mongo.ErrNoDocuments {
		return Record{}, ErrNotFound
	}
	if err != nil {
		return Record{}, fmt.Errorf("audit: get: %w", err)
	}
	return rec, nil
}

func (s *mongoStore) Recent(ctx context.Context, n int) ([]Record, error) {
	opts := options.Find().SetSort(bson.D{{Key: "recorded_at", Value: -1}})
	if n >= 0 {
		opts.SetLimit(int64(n))
	}
	cursor, err := s.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("audit: recent: %w", err)
	}
	defer cursor.Close(ctx)

	var records []Record
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("audit: recent: %w", err)
	}
	return records, nil
}

func (s *mongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

var _ Store = (*mongoStore)(nil)
