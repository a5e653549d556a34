package db

import (
	"context"
	"fmt"
	"taskboard/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ObjectIDs are time-ordered, so sorting on _id yields insertion order.
var insertionOrder = bson.D{{Key: "_id", Value: 1}}

// MongoUserRepository implements the UserRepository interface for MongoDB
type MongoUserRepository struct {
	client     *mongo.Client
	database   string
	collection string
}

// NewMongoUserRepository creates a new MongoUserRepository
func NewMongoUserRepository(client *mongo.Client, database, collection string) *MongoUserRepository {
	return &MongoUserRepository{
		client:     client,
		database:   database,
		collection: collection,
	}
}

func (r *MongoUserRepository) coll() *mongo.Collection {
	return r.client.Database(r.database).Collection(r.collection)
}

// Create inserts a new user
func (r *MongoUserRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if user.ID == "" {
		user.ID = primitive.NewObjectID().Hex()
	}

	_, err := r.coll().InsertOne(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("error inserting user: %w", err)
	}

	return user, nil
}

// FindByUsername finds the earliest-registered user with the given username
func (r *MongoUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	opts := options.FindOne().SetSort(insertionOrder)

	var user models.User
	err := r.coll().FindOne(ctx, bson.M{"username": username}, opts).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error finding user: %w", err)
	}

	return &user, nil
}

// MongoTaskRepository implements the TaskRepository interface for MongoDB
type MongoTaskRepository struct {
	client     *mongo.Client
	database   string
	collection string
}

// NewMongoTaskRepository creates a new MongoTaskRepository
func NewMongoTaskRepository(client *mongo.Client, database, collection string) *MongoTaskRepository {
	return &MongoTaskRepository{
		client:     client,
		database:   database,
		collection: collection,
	}
}

func (r *MongoTaskRepository) coll() *mongo.Collection {
	return r.client.Database(r.database).Collection(r.collection)
}

// Create inserts a new task
func (r *MongoTaskRepository) Create(ctx context.Context, task *models.Task) (*models.Task, error) {
	if task.ID == "" {
		task.ID = primitive.NewObjectID().Hex()
	}

	_, err := r.coll().InsertOne(ctx, task)
	if err != nil {
		return nil, fmt.Errorf("error inserting task: %w", err)
	}

	return task, nil
}

// FindByID finds a task by ID
func (r *MongoTaskRepository) FindByID(ctx context.Context, id string) (*models.Task, error) {
	var task models.Task
	err := r.coll().FindOne(ctx, bson.M{"_id": id}).Decode(&task)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error finding task: %w", err)
	}

	return &task, nil
}

// FindAllByOwner returns the owner's tasks in insertion order
func (r *MongoTaskRepository) FindAllByOwner(ctx context.Context, ownerID string) ([]*models.Task, error) {
	opts := options.Find().SetSort(insertionOrder)
	cursor, err := r.coll().Find(ctx, bson.M{"ownerId": ownerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("error finding tasks: %w", err)
	}
	defer cursor.Close(ctx)

	tasks := []*models.Task{}
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, fmt.Errorf("error decoding tasks: %w", err)
	}

	return tasks, nil
}

// DeleteByIDAndOwner deletes a task only when it belongs to ownerID
func (r *MongoTaskRepository) DeleteByIDAndOwner(ctx context.Context, id, ownerID string) error {
	result, err := r.coll().DeleteOne(ctx, bson.M{"_id": id, "ownerId": ownerID})
	if err != nil {
		return fmt.Errorf("error deleting task: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}

	return nil
}
