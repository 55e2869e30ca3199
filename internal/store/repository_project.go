// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Vetrov

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/avetrov/agencydesk/internal/logger"
	"github.com/avetrov/agencydesk/models"
)

// projectRepository is the PostgreSQL-backed implementation of
// [ProjectRepository].
type projectRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewProjectRepository constructs a [ProjectRepository] backed by the
// provided database connection and logger.
func NewProjectRepository(db *DB, logger *logger.Logger) ProjectRepository {
	logger.Debug().Msg("creating project repository")
	return &projectRepository{
		db:     db,
		logger: logger,
	}
}

// CreateProject inserts a new project. A foreign key violation on client_id
// maps to [ErrClientNotFound].
func (r *projectRepository) CreateProject(ctx context.Context, project models.Project) (models.Project, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createProject, project.Name, project.ClientID)

	var saved models.Project
	if err := row.Scan(&saved.ID, &saved.Name, &saved.ClientID, &saved.CreatedAt); err != nil {
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return models.Project{}, ErrClientNotFound
		}

		log.Err(err).Str("func", "*projectRepository.CreateProject").Msg("error: scanning created project")
		return models.Project{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return saved, nil
}

// ListProjects returns all projects in name order.
func (r *projectRepository) ListProjects(ctx context.Context) ([]models.Project, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listProjects)
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.ListProjects").Msg("error: executing list query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		var project models.Project
		if err = rows.Scan(&project.ID, &project.Name, &project.ClientID, &project.CreatedAt); err != nil {
			log.Err(err).Str("func", "*projectRepository.ListProjects").Msg("error: scanning project row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		projects = append(projects, project)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return projects, nil
}

// CreateTask inserts a new kanban card.
func (r *projectRepository) CreateTask(ctx context.Context, task models.Task) (models.Task, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createTask, task.ProjectID, task.Title, task.Status, task.Position)

	saved, err := scanTask(row.Scan)
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.CreateTask").Msg("error: scanning created task")
		return models.Task{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return saved, nil
}

// GetTask retrieves one kanban card. A miss maps to [ErrTaskNotFound].
func (r *projectRepository) GetTask(ctx context.Context, taskID int64) (models.Task, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, getTask, taskID)

	found, err := scanTask(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Task{}, ErrTaskNotFound
		}

		log.Err(err).Str("func", "*projectRepository.GetTask").Msg("error: scanning found task")
		return models.Task{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// ListTasks returns a project's cards in column and position order.
func (r *projectRepository) ListTasks(ctx context.Context, projectID int64) ([]models.Task, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listTasks, projectID)
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.ListTasks").Msg("error: executing list query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		task, scanErr := scanTask(rows.Scan)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*projectRepository.ListTasks").Msg("error: scanning task row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		tasks = append(tasks, task)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return tasks, nil
}

// MoveTask relocates a card to a column and position. A miss maps to
// [ErrTaskNotFound].
func (r *projectRepository) MoveTask(ctx context.Context, taskID int64, status models.TaskStatus, position int) (models.Task, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, moveTask, taskID, status, position)

	moved, err := scanTask(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Task{}, ErrTaskNotFound
		}

		log.Err(err).Str("func", "*projectRepository.MoveTask").Msg("error: scanning moved task")
		return models.Task{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return moved, nil
}

// DeleteTask removes one card. A miss maps to [ErrTaskNotFound].
func (r *projectRepository) DeleteTask(ctx context.Context, taskID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.execRetry(ctx, deleteTask, taskID)
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.DeleteTask").Msg("error: executing delete")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		return ErrTaskNotFound
	}

	return nil
}

func scanTask(scan func(dest ...any) error) (models.Task, error) {
	var task models.Task
	err := scan(
		&task.ID,
		&task.ProjectID,
		&task.Title,
		&task.Status,
		&task.Position,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		return models.Task{}, err
	}

	return task, nil
}
