// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Vetrov

package http

import (
	"net/http"

	"github.com/go-webauthn/webauthn/protocol"

	"github.com/avetrov/agencydesk/internal/logger"
	"github.com/avetrov/agencydesk/internal/utils"
	"github.com/avetrov/agencydesk/models"
)

// Platform-authenticator ceremony endpoints. The browser drives the
// WebAuthn API; these handlers run the relying-party side through the
// biometric gate. The gate only ever flips the vault session lock - keys
// and ciphertext are untouched by any outcome here.

func (h *Handler) authenticatorAvailable(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	available := h.biometrics != nil && h.biometrics.IsAvailable(r.Context(), userID)
	utils.WriteJSON(w, map[string]bool{"available": available}, http.StatusOK)
}

func (h *Handler) beginAuthenticatorRegistration(w http.ResponseWriter, r *http.Request) {
	user, ok := h.ceremonyUser(w, r)
	if !ok {
		return
	}

	creation, err := h.biometrics.BeginRegistration(r.Context(), user)
	if err != nil {
		respondError(w, r, err, "authenticator registration begin failed")
		return
	}

	utils.WriteJSON(w, creation, http.StatusOK)
}

func (h *Handler) finishAuthenticatorRegistration(w http.ResponseWriter, r *http.Request) {
	user, ok := h.ceremonyUser(w, r)
	if !ok {
		return
	}

	response, err := protocol.ParseCredentialCreationResponseBody(r.Body)
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("malformed attestation response")
		http.Error(w, "malformed attestation response", http.StatusBadRequest)
		return
	}

	if err = h.biometrics.FinishRegistration(r.Context(), user, response); err != nil {
		respondError(w, r, err, "authenticator registration finish failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) beginAuthenticatorVerify(w http.ResponseWriter, r *http.Request) {
	user, ok := h.ceremonyUser(w, r)
	if !ok {
		return
	}

	assertion, err := h.biometrics.BeginVerify(r.Context(), user)
	if err != nil {
		respondError(w, r, err, "authenticator verify begin failed")
		return
	}

	utils.WriteJSON(w, assertion, http.StatusOK)
}

// finishAuthenticatorVerify reports the assertion outcome as a verified
// flag. A failed or cancelled ceremony is a regular false answer, not an
// error: the client keeps the vault locked and falls back to the PIN.
func (h *Handler) finishAuthenticatorVerify(w http.ResponseWriter, r *http.Request) {
	user, ok := h.ceremonyUser(w, r)
	if !ok {
		return
	}

	response, err := protocol.ParseCredentialRequestResponseBody(r.Body)
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("malformed assertion response")
		http.Error(w, "malformed assertion response", http.StatusBadRequest)
		return
	}

	verified, err := h.biometrics.FinishVerify(r.Context(), user, response)
	if err != nil {
		respondError(w, r, err, "authenticator verify finish failed")
		return
	}

	utils.WriteJSON(w, map[string]bool{"verified": verified}, http.StatusOK)
}

// ceremonyUser resolves the authenticated user record for a WebAuthn
// ceremony. Answers 503 when no relying party is configured.
func (h *Handler) ceremonyUser(w http.ResponseWriter, r *http.Request) (models.User, bool) {
	if h.biometrics == nil {
		http.Error(w, "platform authenticator support is not configured", http.StatusServiceUnavailable)
		return models.User{}, false
	}

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return models.User{}, false
	}

	user, err := h.users.GetUserByID(r.Context(), userID)
	if err != nil {
		respondError(w, r, err, "ceremony user lookup failed")
		return models.User{}, false
	}

	return user, true
}
