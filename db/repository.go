package db

import (
	"context"
	"database/sql"
	"errors"
	"taskboard/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrNotFound = errors.New("record not found")
)

// UserRepository defines the interface for user account operations.
// Usernames are not unique; FindByUsername returns the earliest-registered match.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
}

// TaskRepository defines the interface for task operations
type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) (*models.Task, error)
	FindByID(ctx context.Context, id string) (*models.Task, error)
	FindAllByOwner(ctx context.Context, ownerID string) ([]*models.Task, error)
	// DeleteByIDAndOwner removes the task only if ownerID owns it.
	// It returns ErrNotFound when nothing matched.
	DeleteByIDAndOwner(ctx context.Context, id, ownerID string) error
}

// RepositoryFactory creates repositories based on the database type
type RepositoryFactory struct {
	SQLiteDB    *sql.DB
	MongoClient *mongo.Client
	DBName      string
}

// NewRepositoryFactory creates a new repository factory
func NewRepositoryFactory(sqliteDB *sql.DB, mongoClient *mongo.Client, dbName string) *RepositoryFactory {
	return &RepositoryFactory{
		SQLiteDB:    sqliteDB,
		MongoClient: mongoClient,
		DBName:      dbName,
	}
}

// NewUserRepository creates a new user repository
func (f *RepositoryFactory) NewUserRepository() UserRepository {
	if f.SQLiteDB != nil {
		return NewSQLiteUserRepository(f.SQLiteDB)
	}
	return NewMongoUserRepository(f.MongoClient, f.DBName, UsersCollection)
}

// NewTaskRepository creates a new task repository
func (f *RepositoryFactory) NewTaskRepository() TaskRepository {
	if f.SQLiteDB != nil {
		return NewSQLiteTaskRepository(f.SQLiteDB)
	}
	return NewMongoTaskRepository(f.MongoClient, f.DBName, TasksCollection)
}

// Close releases the underlying connection shared by every repository
func (f *RepositoryFactory) Close(ctx context.Context) error {
	if f.SQLiteDB != nil {
		return f.SQLiteDB.Close()
	}
	if f.MongoClient != nil {
		return f.MongoClient.Disconnect(ctx)
	}
	return nil
}

// GenerateID generates a unique ID for a record
func GenerateID() string {
	return uuid.New().String()
}
