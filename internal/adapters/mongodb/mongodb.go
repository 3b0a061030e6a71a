// Package mongodb provides the document-store adapters behind the
// repository ports. One database handle is shared by all repositories.
package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type DB struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect dials the cluster and verifies it is reachable before returning.
func Connect(ctx context.Context, uri, dbName string) (*DB, error) {
	if uri == "" {
		return nil, fmt.Errorf("empty mongo uri")
	}
	if dbName == "" {
		return nil, fmt.Errorf("empty mongo database name")
	}

	dialCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(dialCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(dialCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	return &DB{client: client, db: client.Database(dbName)}, nil
}

func (d *DB) Collection(name string) *mongo.Collection {
	return d.db.Collection(name)
}

// Drop removes the whole database. Test cleanup only.
func (d *DB) Drop(ctx context.Context) error {
	return d.db.Drop(ctx)
}

func (d *DB) Close(ctx context.Context) error {
	return d.client.Disconnect(ctx)
}
