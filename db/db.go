package db

import (
	"context"
	"time"

	"pawmart/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	UserCollection    *mongo.Collection
	ProductCollection *mongo.Collection
	OrderCollection   *mongo.Collection
	CounterCollection *mongo.Collection
	Client            *mongo.Client
)

// Connect opens the MongoDB connection and binds the collection
// handles. A failed ping is returned to the caller; the process should
// not serve traffic without its store.
func Connect(ctx context.Context, cfg *config.Config) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURL))
	if err != nil {
		return err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return err
	}

	Client = client
	database := client.Database(cfg.MongoDB)
	UserCollection = database.Collection("users")
	ProductCollection = database.Collection("products")
	OrderCollection = database.Collection("orders")
	CounterCollection = database.Collection("counters")
	return nil
}

// Disconnect tears down the client, used during graceful shutdown.
func Disconnect(ctx context.Context) error {
	if Client == nil {
		return nil
	}
	return Client.Disconnect(ctx)
}
