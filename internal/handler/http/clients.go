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

func (h *Handler) createClient(w http.ResponseWriter, r *http.Request) {
	var client models.Client
	if err := json.NewDecoder(r.Body).Decode(&client); err != nil {
		http.Error(w, app.MsgInvalidJSONProvided, http.StatusBadRequest)
		return
	}

	created, err := h.services.ClientService.CreateClient(r.Context(), client)
	if err != nil {
		respondError(w, r, err, "client creation failed")
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) getClient(w http.ResponseWriter, r *http.Request) {
	clientID, ok := pathID(w, r, "clientID")
	if !ok {
		return
	}

	client, err := h.services.ClientService.GetClient(r.Context(), clientID)
	if err != nil {
		respondError(w, r, err, "client lookup failed")
		return
	}

	utils.WriteJSON(w, client, http.StatusOK)
}

func (h *Handler) listClients(w http.ResponseWriter, r *http.Request) {
	status := models.ClientStatus(r.URL.Query().Get("status"))

	clients, err := h.services.ClientService.ListClients(r.Context(), status)
	if err != nil {
		respondError(w, r, err, "client list failed")
		return
	}
	if clients == nil {
		clients = []models.Client{}
	}

	utils.WriteJSON(w, clients, http.StatusOK)
}

func (h *Handler) updateClient(w http.ResponseWriter, r *http.Request) {
	clientID, ok := pathID(w, r, "clientID")
	if !ok {
		return
	}

	var client models.Client
	if err := json.NewDecoder(r.Body).Decode(&client); err != nil {
		http.Error(w, app.MsgInvalidJSONProvided, http.StatusBadRequest)
		return
	}
	client.ID = clientID

	updated, err := h.services.ClientService.UpdateClient(r.Context(), client)
	if err != nil {
		respondError(w, r, err, "client update failed")
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteClient(w http.ResponseWriter, r *http.Request) {
	clientID, ok := pathID(w, r, "clientID")
	if !ok {
		return
	}

	if err := h.services.ClientService.DeleteClient(r.Context(), clientID); err != nil {
		respondError(w, r, err, "client delete failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
