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

// vaultSettingsResponse is the transport shape of the protection settings.
// The PIN digest and salt never leave the server through this endpoint; the
// entry surface only needs the flags and the configured length.
type vaultSettingsResponse struct {
	PINEnabled        bool `json:"pin_enabled"`
	PINLength         int  `json:"pin_length,omitempty"`
	BiometricsEnabled bool `json:"biometrics_enabled"`
}

func settingsResponse(settings *models.VaultSettings) vaultSettingsResponse {
	if settings == nil {
		return vaultSettingsResponse{}
	}
	return vaultSettingsResponse{
		PINEnabled:        settings.PINEnabled,
		PINLength:         settings.PINLength,
		BiometricsEnabled: settings.BiometricsEnabled,
	}
}

func (h *Handler) getVaultSettings(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	settings, err := h.services.SettingsService.GetVaultSettings(r.Context(), userID)
	if err != nil {
		respondError(w, r, err, "vault settings lookup failed")
		return
	}

	utils.WriteJSON(w, settingsResponse(settings), http.StatusOK)
}

// getVaultVerifier hands the full protection settings, salted PIN digest
// included, to the authenticated owner. The terminal client verifies PIN
// entry locally against this material; the clear PIN itself never crosses
// the wire in either direction.
func (h *Handler) getVaultVerifier(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	settings, err := h.services.SettingsService.GetVaultSettings(r.Context(), userID)
	if err != nil {
		respondError(w, r, err, "vault verifier lookup failed")
		return
	}
	if settings == nil {
		settings = &models.VaultSettings{}
	}

	utils.WriteJSON(w, settings, http.StatusOK)
}

func (h *Handler) setPIN(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var payload struct {
		PIN          string `json:"pin"`
		Confirmation string `json:"confirmation"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, app.MsgInvalidJSONProvided, http.StatusBadRequest)
		return
	}

	settings, err := h.services.SettingsService.SetPIN(r.Context(), userID, payload.PIN, payload.Confirmation)
	if err != nil {
		respondError(w, r, err, "pin update failed")
		return
	}

	utils.WriteJSON(w, settingsResponse(settings), http.StatusOK)
}

func (h *Handler) setBiometrics(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var payload struct {
		Enabled bool `json:"enabled"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, app.MsgInvalidJSONProvided, http.StatusBadRequest)
		return
	}

	settings, err := h.services.SettingsService.SetBiometrics(r.Context(), userID, payload.Enabled)
	if err != nil {
		respondError(w, r, err, "biometrics toggle failed")
		return
	}

	utils.WriteJSON(w, settingsResponse(settings), http.StatusOK)
}

func (h *Handler) disableProtection(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	if err := h.services.SettingsService.DisableProtection(r.Context(), userID); err != nil {
		respondError(w, r, err, "protection removal failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// recordUnlockFailure lands a client-reported failed unlock attempt in the
// audit trail.
func (h *Handler) recordUnlockFailure(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var payload struct {
		Attempts int `json:"attempts"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, app.MsgInvalidJSONProvided, http.StatusBadRequest)
		return
	}

	if err := h.services.SettingsService.RecordUnlockFailure(r.Context(), userID, payload.Attempts); err != nil {
		respondError(w, r, err, "unlock failure record failed")
		return
	}

	w.WriteHeader(http.StatusAccepted)
}
