package database

import (
	"context"
	"fmt"

	"event-booking/pkg/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Mongo holds the process-wide client and the selected database.
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
}

func (m *Mongo) Collection(name string) *mongo.Collection {
	return m.db.Collection(name)
}

func (m *Mongo) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}

func (m *Mongo) Close() {
	m.client.Disconnect(context.Background())
}

// InitMongo connects to MongoDB and verifies the primary answers.
func InitMongo(ctx context.Context, config utils.DatabaseConfig) (*Mongo, error) {
	clientOpts := options.Client().
		ApplyURI(config.URI).
		SetConnectTimeout(config.Timeout).
		SetServerSelectionTimeout(config.Timeout)
	if config.MaxConns > 0 {
		clientOpts.SetMaxPoolSize(uint64(config.MaxConns))
	}

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	m := &Mongo{client: client, db: client.Database(config.Name)}

	pingCtx, cancel := context.WithTimeout(ctx, config.Timeout)
	defer cancel()

	if err := m.Ping(pingCtx); err != nil {
		m.Close()
		return nil, fmt.Errorf("ping mongo failed: %w", err)
	}

	return m, nil
}
