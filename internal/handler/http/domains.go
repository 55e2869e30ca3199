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

func (h *Handler) createDomain(w http.ResponseWriter, r *http.Request) {
	var domain models.Domain
	if err := json.NewDecoder(r.Body).Decode(&domain); err != nil {
		http.Error(w, app.MsgInvalidJSONProvided, http.StatusBadRequest)
		return
	}

	created, err := h.services.DomainService.CreateDomain(r.Context(), domain)
	if err != nil {
		respondError(w, r, err, "domain creation failed")
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) listDomains(w http.ResponseWriter, r *http.Request) {
	domains, err := h.services.DomainService.ListDomains(r.Context())
	if err != nil {
		respondError(w, r, err, "domain list failed")
		return
	}
	if domains == nil {
		domains = []models.Domain{}
	}

	utils.WriteJSON(w, domains, http.StatusOK)
}

func (h *Handler) deleteDomain(w http.ResponseWriter, r *http.Request) {
	domainID, ok := pathID(w, r, "domainID")
	if !ok {
		return
	}

	if err := h.services.DomainService.DeleteDomain(r.Context(), domainID); err != nil {
		respondError(w, r, err, "domain delete failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// refreshDomains runs an on-demand RDAP sweep in addition to the periodic
// worker.
func (h *Handler) refreshDomains(w http.ResponseWriter, r *http.Request) {
	if err := h.services.DomainService.RefreshDomains(r.Context()); err != nil {
		respondError(w, r, err, "domain refresh failed")
		return
	}

	w.WriteHeader(http.StatusAccepted)
}
