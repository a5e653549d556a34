package db

import (
	"context"
	"database/sql"
	"fmt"
	"taskboard/models"
)

// SQLiteUserRepository implements the UserRepository interface for SQLite
type SQLiteUserRepository struct {
	db *sql.DB
}

// NewSQLiteUserRepository creates a new SQLiteUserRepository
func NewSQLiteUserRepository(db *sql.DB) *SQLiteUserRepository {
	return &SQLiteUserRepository{db: db}
}

// Create inserts a new user, assigning an ID when none is set
func (r *SQLiteUserRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if user.ID == "" {
		user.ID = GenerateID()
	}

	query := `INSERT INTO users (id, username, password_hash) VALUES (?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, user.ID, user.Username, user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("error inserting user: %w", err)
	}

	return user, nil
}

// FindByUsername finds the earliest-registered user with the given username
func (r *SQLiteUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `SELECT id, username, password_hash FROM users WHERE username = ? ORDER BY rowid ASC LIMIT 1`
	row := r.db.QueryRowContext(ctx, query, username)

	var user models.User
	err := row.Scan(&user.ID, &user.Username, &user.PasswordHash)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error scanning user: %w", err)
	}

	return &user, nil
}

// SQLiteTaskRepository implements the TaskRepository interface for SQLite
type SQLiteTaskRepository struct {
	db *sql.DB
}

// NewSQLiteTaskRepository creates a new SQLiteTaskRepository
func NewSQLiteTaskRepository(db *sql.DB) *SQLiteTaskRepository {
	return &SQLiteTaskRepository{db: db}
}

// Create inserts a new task, assigning an ID when none is set
func (r *SQLiteTaskRepository) Create(ctx context.Context, task *models.Task) (*models.Task, error) {
	if task.ID == "" {
		task.ID = GenerateID()
	}

	query := `INSERT INTO tasks (id, title, owner_id) VALUES (?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, task.ID, task.Title, task.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("error inserting task: %w", err)
	}

	return task, nil
}

// FindByID finds a task by ID
func (r *SQLiteTaskRepository) FindByID(ctx context.Context, id string) (*models.Task, error) {
	query := `SELECT id, title, owner_id FROM tasks WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	var task models.Task
	err := row.Scan(&task.ID, &task.Title, &task.OwnerID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error scanning task: %w", err)
	}

	return &task, nil
}

// FindAllByOwner returns the owner's tasks in insertion order
func (r *SQLiteTaskRepository) FindAllByOwner(ctx context.Context, ownerID string) ([]*models.Task, error) {
	query := `SELECT id, title, owner_id FROM tasks WHERE owner_id = ? ORDER BY rowid ASC`
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("error querying tasks: %w", err)
	}
	defer rows.Close()

	tasks := []*models.Task{}
	for rows.Next() {
		var task models.Task
		if err := rows.Scan(&task.ID, &task.Title, &task.OwnerID); err != nil {
			return nil, fmt.Errorf("error scanning task: %w", err)
		}
		tasks = append(tasks, &task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tasks: %w", err)
	}

	return tasks, nil
}

// DeleteByIDAndOwner deletes a task only when it belongs to ownerID
func (r *SQLiteTaskRepository) DeleteByIDAndOwner(ctx context.Context, id, ownerID string) error {
	query := `DELETE FROM tasks WHERE id = ? AND owner_id = ?`
	result, err := r.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("error deleting task: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
