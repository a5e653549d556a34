package db

import (
	"context"
	"testing"

	"taskboard/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

const testDB = "taskboard_test"

func TestMongoUserRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("Create", func(mt *mtest.T) {
		repo := NewMongoUserRepository(mt.Client, testDB, UsersCollection)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		user, err := repo.Create(ctx, &models.User{Username: "alice", PasswordHash: "hash"})
		require.NoError(mt, err)
		assert.Len(mt, user.ID, 24)
	})

	mt.Run("Create storage error", func(mt *mtest.T) {
		repo := NewMongoUserRepository(mt.Client, testDB, UsersCollection)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    121,
			Message: "document failed validation",
		}))

		_, err := repo.Create(ctx, &models.User{Username: "alice", PasswordHash: "hash"})
		require.Error(mt, err)
		assert.Contains(mt, err.Error(), "error inserting user")
	})

	mt.Run("FindByUsername", func(mt *mtest.T) {
		repo := NewMongoUserRepository(mt.Client, testDB, UsersCollection)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, testDB+"."+UsersCollection, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "65a000000000000000000001"},
			{Key: "username", Value: "alice"},
			{Key: "password", Value: "hash"},
		}))

		user, err := repo.FindByUsername(ctx, "alice")
		require.NoError(mt, err)
		assert.Equal(mt, "65a000000000000000000001", user.ID)
		assert.Equal(mt, "alice", user.Username)
		assert.Equal(mt, "hash", user.PasswordHash)
	})

	mt.Run("FindByUsername not found", func(mt *mtest.T) {
		repo := NewMongoUserRepository(mt.Client, testDB, UsersCollection)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, testDB+"."+UsersCollection, mtest.FirstBatch))

		_, err := repo.FindByUsername(ctx, "nobody")
		assert.ErrorIs(mt, err, ErrNotFound)
	})
}

func TestMongoTaskRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()
	ns := testDB + "." + TasksCollection

	mt.Run("Create", func(mt *mtest.T) {
		repo := NewMongoTaskRepository(mt.Client, testDB, TasksCollection)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		task, err := repo.Create(ctx, &models.Task{Title: "buy milk", OwnerID: "owner-1"})
		require.NoError(mt, err)
		assert.Len(mt, task.ID, 24)
		assert.Equal(mt, "owner-1", task.OwnerID)
	})

	mt.Run("FindAllByOwner", func(mt *mtest.T) {
		repo := NewMongoTaskRepository(mt.Client, testDB, TasksCollection)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: "t1"}, {Key: "title", Value: "first"}, {Key: "ownerId", Value: "owner-1"}},
			bson.D{{Key: "_id", Value: "t2"}, {Key: "title", Value: "second"}, {Key: "ownerId", Value: "owner-1"}},
		))

		tasks, err := repo.FindAllByOwner(ctx, "owner-1")
		require.NoError(mt, err)
		require.Len(mt, tasks, 2)
		assert.Equal(mt, "first", tasks[0].Title)
		assert.Equal(mt, "second", tasks[1].Title)
	})

	mt.Run("FindAllByOwner empty", func(mt *mtest.T) {
		repo := NewMongoTaskRepository(mt.Client, testDB, TasksCollection)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		tasks, err := repo.FindAllByOwner(ctx, "owner-1")
		require.NoError(mt, err)
		assert.Empty(mt, tasks)
	})

	mt.Run("FindByID not found", func(mt *mtest.T) {
		repo := NewMongoTaskRepository(mt.Client, testDB, TasksCollection)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		_, err := repo.FindByID(ctx, "missing")
		assert.ErrorIs(mt, err, ErrNotFound)
	})

	mt.Run("DeleteByIDAndOwner", func(mt *mtest.T) {
		repo := NewMongoTaskRepository(mt.Client, testDB, TasksCollection)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		err := repo.DeleteByIDAndOwner(ctx, "t1", "owner-1")
		assert.NoError(mt, err)
	})

	mt.Run("DeleteByIDAndOwner no match", func(mt *mtest.T) {
		repo := NewMongoTaskRepository(mt.Client, testDB, TasksCollection)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		err := repo.DeleteByIDAndOwner(ctx, "t1", "someone-else")
		assert.ErrorIs(mt, err, ErrNotFound)
	})

	mt.Run("DeleteByIDAndOwner command error", func(mt *mtest.T) {
		repo := NewMongoTaskRepository(mt.Client, testDB, TasksCollection)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    2,
			Name:    "BadValue",
			Message: "boom",
		}))

		err := repo.DeleteByIDAndOwner(ctx, "t1", "owner-1")
		require.Error(mt, err)
		assert.NotErrorIs(mt, err, ErrNotFound)
	})
}
