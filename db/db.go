package db

import (
	"context"
	"fmt"
	"time"

	"vesture/config"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	Client *mongo.Client

	UserCollection          *mongo.Collection
	ProductsCollection      *mongo.Collection
	ClosetCollection        *mongo.Collection
	PostsCollection         *mongo.Collection
	WishlistCollection      *mongo.Collection
	NotificationsCollection *mongo.Collection
)

// Connect establishes the MongoDB connection and wires up the collection
// handles. Must be called once from main before any handler runs.
func Connect(cfg *config.Config) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	Client = client
	database := client.Database(cfg.MongoDB)

	UserCollection = database.Collection("users")
	ProductsCollection = database.Collection("products")
	ClosetCollection = database.Collection("closetitems")
	PostsCollection = database.Collection("ootdposts")
	WishlistCollection = database.Collection("wishlistitems")
	NotificationsCollection = database.Collection("notifications")

	return EnsureIndexes(ctx)
}

// EnsureIndexes creates the unique indexes the write paths rely on:
// user email uniqueness and the (name, brand) product identity backing
// the atomic upsert.
func EnsureIndexes(ctx context.Context) error {
	_, err := UserCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("users email index: %w", err)
	}

	_, err = ProductsCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}, {Key: "brand", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("products name+brand index: %w", err)
	}

	return nil
}

func Disconnect(ctx context.Context) error {
	if Client == nil {
		return nil
	}
	return Client.Disconnect(ctx)
}
