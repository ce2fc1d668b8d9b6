package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"gpsfeed/internal/nmea"
)

const opTimeout = 5 * time.Second

// Mongo persists documents to a MongoDB collection.
type Mongo struct {
	collection *mongo.Collection
}

// Connect establishes a MongoDB client and verifies it with a ping.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	if uri == "" {
		return nil, fmt.Errorf("store: mongo uri is empty")
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("store: connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("store: ping: %w", err)
	}
	return client, nil
}

func NewMongo(db *mongo.Database, collection string) *Mongo {
	if collection == "" {
		collection = "samples"
	}
	return &Mongo{collection: db.Collection(collection)}
}

func (s *Mongo) Save(ctx context.Context, sample nmea.Sample) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	_, err := s.collection.InsertOne(ctx, Document{
		Type:       sample.Kind(),
		ReceivedAt: time.Now().UTC(),
		Data:       sample,
	})
	return err
}

func (s *Mongo) Latest(ctx context.Context) (*Document, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	opts := options.FindOne().SetSort(bson.M{"received_at": -1})
	raw := struct {
		Type       string    `bson:"type"`
		ReceivedAt time.Time `bson:"received_at"`
		Data       bson.M    `bson:"data"`
	}{}
	if err := s.collection.FindOne(ctx, bson.M{}, opts).Decode(&raw); err != nil {
		return nil, err
	}
	// The sample comes back as a plain map; the typed record is not
	// reconstructed on the read path.
	return &Document{Type: raw.Type, ReceivedAt: raw.ReceivedAt}, nil
}

func (s *Mongo) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	return s.collection.CountDocuments(ctx, bson.M{})
}

// Consume lets a Mongo store act as a feed sink directly.
func (s *Mongo) Consume(ctx context.Context, sample nmea.Sample) error {
	return s.Save(ctx, sample)
}
