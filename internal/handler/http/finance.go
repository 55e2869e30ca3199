// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Vetrov

package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/avetrov/agencydesk/internal/app"
	"github.com/avetrov/agencydesk/internal/utils"
	"github.com/avetrov/agencydesk/models"
)

// financePeriod reads the from/to query parameters as ISO dates. A missing
// period defaults to the current calendar month.
func financePeriod(r *http.Request) (time.Time, time.Time, error) {
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)

	if raw := r.URL.Query().Get("from"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		from = parsed
	}
	if raw := r.URL.Query().Get("to"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		to = parsed
	}

	return from, to, nil
}

func (h *Handler) createFinanceEntry(w http.ResponseWriter, r *http.Request) {
	var entry models.FinanceEntry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		http.Error(w, app.MsgInvalidJSONProvided, http.StatusBadRequest)
		return
	}

	created, err := h.services.FinanceService.CreateFinanceEntry(r.Context(), entry)
	if err != nil {
		respondError(w, r, err, "finance entry creation failed")
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) listFinanceEntries(w http.ResponseWriter, r *http.Request) {
	from, to, err := financePeriod(r)
	if err != nil {
		http.Error(w, "invalid period, expected YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	entries, err := h.services.FinanceService.ListFinanceEntries(r.Context(), from, to)
	if err != nil {
		respondError(w, r, err, "finance list failed")
		return
	}
	if entries == nil {
		entries = []models.FinanceEntry{}
	}

	utils.WriteJSON(w, entries, http.StatusOK)
}

func (h *Handler) deleteFinanceEntry(w http.ResponseWriter, r *http.Request) {
	entryID, ok := pathID(w, r, "entryID")
	if !ok {
		return
	}

	if err := h.services.FinanceService.DeleteFinanceEntry(r.Context(), entryID); err != nil {
		respondError(w, r, err, "finance entry delete failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) financeSummary(w http.ResponseWriter, r *http.Request) {
	from, to, err := financePeriod(r)
	if err != nil {
		http.Error(w, "invalid period, expected YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	summary, err := h.services.FinanceService.Summary(r.Context(), from, to)
	if err != nil {
		respondError(w, r, err, "finance summary failed")
		return
	}

	utils.WriteJSON(w, summary, http.StatusOK)
}
