// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Vetrov

package http

import (
	"encoding/json"
	"net/http"

	"github.com/avetrov/agencydesk/internal/app"
	"github.com/avetrov/agencydesk/internal/utils"
	"github.com/avetrov/agencydesk/models"
)

func (h *Handler) createProject(w http.ResponseWriter, r *http.Request) {
	var project models.Project
	if err := json.NewDecoder(r.Body).Decode(&project); err != nil {
		http.Error(w, app.MsgInvalidJSONProvided, http.StatusBadRequest)
		return
	}

	created, err := h.services.ProjectService.CreateProject(r.Context(), project)
	if err != nil {
		respondError(w, r, err, "project creation failed")
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) listProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.services.ProjectService.ListProjects(r.Context())
	if err != nil {
		respondError(w, r, err, "project list failed")
		return
	}
	if projects == nil {
		projects = []models.Project{}
	}

	utils.WriteJSON(w, projects, http.StatusOK)
}

func (h *Handler) board(w http.ResponseWriter, r *http.Request) {
	projectID, ok := pathID(w, r, "projectID")
	if !ok {
		return
	}

	board, err := h.services.ProjectService.Board(r.Context(), projectID)
	if err != nil {
		respondError(w, r, err, "board fetch failed")
		return
	}

	utils.WriteJSON(w, board, http.StatusOK)
}

func (h *Handler) createTask(w http.ResponseWriter, r *http.Request) {
	projectID, ok := pathID(w, r, "projectID")
	if !ok {
		return
	}

	var task models.Task
	if err := json.NewDecoder(r.Body).Decode(&task); err != nil {
		http.Error(w, app.MsgInvalidJSONProvided, http.StatusBadRequest)
		return
	}
	task.ProjectID = projectID

	created, err := h.services.ProjectService.CreateTask(r.Context(), task)
	if err != nil {
		respondError(w, r, err, "task creation failed")
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) moveTask(w http.ResponseWriter, r *http.Request) {
	taskID, ok := pathID(w, r, "taskID")
	if !ok {
		return
	}

	var payload struct {
		Status   models.TaskStatus `json:"status"`
		Position int               `json:"position"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, app.MsgInvalidJSONProvided, http.StatusBadRequest)
		return
	}

	moved, err := h.services.ProjectService.MoveTask(r.Context(), taskID, payload.Status, payload.Position)
	if err != nil {
		respondError(w, r, err, "task move failed")
		return
	}

	utils.WriteJSON(w, moved, http.StatusOK)
}

func (h *Handler) deleteTask(w http.ResponseWriter, r *http.Request) {
	taskID, ok := pathID(w, r, "taskID")
	if !ok {
		return
	}

	if err := h.services.ProjectService.DeleteTask(r.Context(), taskID); err != nil {
		respondError(w, r, err, "task delete failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
