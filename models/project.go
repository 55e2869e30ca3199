// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Vetrov

package models

import "time"

// TaskStatus is a kanban column identifier.
type TaskStatus string

const (
	TaskStatusBacklog    TaskStatus = "backlog"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusReview     TaskStatus = "review"
	TaskStatusDone       TaskStatus = "done"
)

// TaskStatuses lists all kanban columns in board order.
var TaskStatuses = []TaskStatus{
	TaskStatusBacklog,
	TaskStatusInProgress,
	TaskStatusReview,
	TaskStatusDone,
}

// Valid reports whether s is a known kanban column.
func (s TaskStatus) Valid() bool {
	for _, known := range TaskStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Project groups kanban tasks, optionally scoped to an agency client.
type Project struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	ClientID  *int64    `json:"client_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table backing Project.
func (p Project) TableName() string {
	return "projects"
}

// Task is one kanban card.
type Task struct {
	ID        int64      `json:"id"`
	ProjectID int64      `json:"project_id"`
	Title     string     `json:"title"`
	Status    TaskStatus `json:"status"`
	Position  int        `json:"position"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// TableName returns the name of the database table backing Task.
func (t Task) TableName() string {
	return "tasks"
}

// BoardColumn is one kanban column with its cards in position order.
type BoardColumn struct {
	Status TaskStatus `json:"status"`
	Tasks  []Task     `json:"tasks"`
}
