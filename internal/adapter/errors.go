// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Vetrov

package adapter

import "errors"

var (
	// ErrServerUnavailable wraps transport-level failures: connection
	// refused, DNS, timeouts.
	ErrServerUnavailable = errors.New("server is unavailable")

	// ErrUnauthorized is returned on 401 answers: wrong credentials or an
	// expired session token.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrConflict is returned on 409 answers, e.g. a taken login.
	ErrConflict = errors.New("conflict")

	// ErrNotFound is returned on 404 answers.
	ErrNotFound = errors.New("not found")

	// ErrBadRequest is returned on 400 answers.
	ErrBadRequest = errors.New("bad request")
)
