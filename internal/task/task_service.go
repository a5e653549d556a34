package task

import (
	"context"
	"errors"
	"fmt"

	"taskboard/db"
	"taskboard/models"
)

var ErrForbidden = errors.New("task belongs to another user")

type TaskService struct {
	Repository db.TaskRepository
}

func NewTaskService(repo db.TaskRepository) *TaskService {
	return &TaskService{Repository: repo}
}

// ListTasks returns the caller's tasks in insertion order, never nil
func (s *TaskService) ListTasks(ctx context.Context, callerID string) ([]*models.Task, error) {
	tasks, err := s.Repository.FindAllByOwner(ctx, callerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	if tasks == nil {
		tasks = []*models.Task{}
	}
	return tasks, nil
}

// AddTask creates a task owned by the caller. Empty titles are accepted.
func (s *TaskService) AddTask(ctx context.Context, callerID, title string) (*models.Task, error) {
	task, err := s.Repository.Create(ctx, &models.Task{
		Title:   title,
		OwnerID: callerID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return task, nil
}

// DeleteTask removes a task the caller owns. Deleting a task that does not
// exist succeeds; deleting another user's task returns ErrForbidden.
func (s *TaskService) DeleteTask(ctx context.Context, callerID, taskID string) error {
	err := s.Repository.DeleteByIDAndOwner(ctx, taskID, callerID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, db.ErrNotFound) {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	// Nothing matched, find out whether the task exists under another owner
	existing, err := s.Repository.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to look up task: %w", err)
	}
	if existing.OwnerID != callerID {
		return ErrForbidden
	}

	return nil
}
