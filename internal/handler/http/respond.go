// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Vetrov

package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/avetrov/agencydesk/internal/logger"
	"github.com/avetrov/agencydesk/internal/utils"
)

// userIDFromRequest pulls the authenticated user's ID out of the request
// context. A miss means the auth middleware did not run on this route; that
// is a wiring bug, answered with 401 rather than a panic.
func userIDFromRequest(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Error().Msg("no user id in authorised request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return 0, false
	}

	return userID, true
}

// pathID parses the named chi URL parameter as an int64 record identifier.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		http.Error(w, "invalid "+name, http.StatusBadRequest)
		return 0, false
	}

	return id, true
}

// respondError logs err and writes the mapped status with a generic body.
// Service errors carry their own message; everything unmapped reads as an
// internal error.
func respondError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	logger.FromRequest(r).Err(err).Msg(msg)

	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		http.Error(w, http.StatusText(status), status)
		return
	}
	http.Error(w, err.Error(), status)
}
