package db

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	UsersCollection = "users"
	TasksCollection = "tasks"
)

// ConnectToMongo initializes a MongoDB client and verifies the connection
func ConnectToMongo(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	log.Println("Connected to MongoDB")
	return client, nil
}

// EnsureIndexes creates the lookup indexes used by the repositories.
// The username index is not unique.
func EnsureIndexes(ctx context.Context, client *mongo.Client, dbName string) error {
	database := client.Database(dbName)

	_, err := database.Collection(UsersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "username", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create users index: %w", err)
	}

	_, err = database.Collection(TasksCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "ownerId", Value: 1}, {Key: "_id", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create tasks index: %w", err)
	}

	log.Println("MongoDB indexes ensured")
	return nil
}
