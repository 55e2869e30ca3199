// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Vetrov

package service

import (
	"context"
	"fmt"

	"github.com/avetrov/agencydesk/internal/logger"
	"github.com/avetrov/agencydesk/internal/store"
	"github.com/avetrov/agencydesk/models"
)

// projectService is the concrete implementation of ProjectService.
type projectService struct {
	projects store.ProjectRepository
	logger   *logger.Logger
}

// NewProjectService constructs a ProjectService.
func NewProjectService(projects store.ProjectRepository, logger *logger.Logger) ProjectService {
	return &projectService{
		projects: projects,
		logger:   logger,
	}
}

// CreateProject persists a new project.
func (p *projectService) CreateProject(ctx context.Context, project models.Project) (models.Project, error) {
	if project.Name == "" {
		return models.Project{}, ErrInvalidDataProvided
	}

	created, err := p.projects.CreateProject(ctx, project)
	if err != nil {
		return models.Project{}, fmt.Errorf("project creation ended with error: %w", err)
	}

	return created, nil
}

// ListProjects returns all projects.
func (p *projectService) ListProjects(ctx context.Context) ([]models.Project, error) {
	projects, err := p.projects.ListProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("project list ended with error: %w", err)
	}

	return projects, nil
}

// CreateTask adds a card. An empty status lands in the backlog column.
func (p *projectService) CreateTask(ctx context.Context, task models.Task) (models.Task, error) {
	if task.Title == "" || task.ProjectID == 0 {
		return models.Task{}, ErrInvalidDataProvided
	}
	if task.Status == "" {
		task.Status = models.TaskStatusBacklog
	}
	if !task.Status.Valid() {
		return models.Task{}, ErrUnknownTaskStatus
	}

	created, err := p.projects.CreateTask(ctx, task)
	if err != nil {
		return models.Task{}, fmt.Errorf("task creation ended with error: %w", err)
	}

	return created, nil
}

// Board returns the project's tasks grouped into the four kanban columns in
// board order. Every column is present even when empty.
func (p *projectService) Board(ctx context.Context, projectID int64) ([]models.BoardColumn, error) {
	tasks, err := p.projects.ListTasks(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("task list ended with error: %w", err)
	}

	byStatus := make(map[models.TaskStatus][]models.Task, len(models.TaskStatuses))
	for _, task := range tasks {
		byStatus[task.Status] = append(byStatus[task.Status], task)
	}

	board := make([]models.BoardColumn, 0, len(models.TaskStatuses))
	for _, status := range models.TaskStatuses {
		board = append(board, models.BoardColumn{Status: status, Tasks: byStatus[status]})
	}

	return board, nil
}

// MoveTask relocates a card after validating the target column and
// position.
func (p *projectService) MoveTask(ctx context.Context, taskID int64, status models.TaskStatus, position int) (models.Task, error) {
	if !status.Valid() {
		return models.Task{}, ErrUnknownTaskStatus
	}
	if position < 0 {
		return models.Task{}, ErrInvalidPosition
	}

	moved, err := p.projects.MoveTask(ctx, taskID, status, position)
	if err != nil {
		return models.Task{}, fmt.Errorf("task move ended with error: %w", err)
	}

	return moved, nil
}

// DeleteTask removes a card.
func (p *projectService) DeleteTask(ctx context.Context, taskID int64) error {
	if err := p.projects.DeleteTask(ctx, taskID); err != nil {
		return fmt.Errorf("task delete ended with error: %w", err)
	}

	return nil
}
