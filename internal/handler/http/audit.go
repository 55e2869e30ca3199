// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Vetrov

package http

import (
	"net/http"
	"strconv"

	"github.com/avetrov/agencydesk/internal/utils"
	"github.com/avetrov/agencydesk/models"
)

func (h *Handler) listAuditEvents(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	events, err := h.services.AuditService.ListAuditEvents(r.Context(), userID, limit)
	if err != nil {
		respondError(w, r, err, "audit list failed")
		return
	}
	if events == nil {
		events = []models.AuditEvent{}
	}

	utils.WriteJSON(w, events, http.StatusOK)
}
