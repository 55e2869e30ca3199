// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Vetrov

package http

import (
	"errors"
	"net/http"

	"github.com/avetrov/agencydesk/internal/service"
	"github.com/avetrov/agencydesk/internal/store"
	"github.com/avetrov/agencydesk/internal/vault"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrAuthenticationRequired:  http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrUnknownCredentialType:   http.StatusBadRequest,
	service.ErrEmptySecretValue:        http.StatusBadRequest,
	service.ErrUnknownTaskStatus:       http.StatusBadRequest,
	service.ErrInvalidPosition:         http.StatusBadRequest,
	service.ErrInvalidPeriod:           http.StatusBadRequest,

	vault.ErrPINNotSet:            http.StatusConflict,
	vault.ErrPINLength:            http.StatusBadRequest,
	vault.ErrPINMismatch:          http.StatusBadRequest,
	vault.ErrBiometricUnavailable: http.StatusConflict,
	vault.ErrNoPendingCeremony:    http.StatusConflict,

	store.ErrLoginAlreadyExists:  http.StatusConflict,
	store.ErrNoUserWasFound:      http.StatusNotFound,
	store.ErrCredentialNotFound:  http.StatusNotFound,
	store.ErrClientNotFound:      http.StatusNotFound,
	store.ErrDomainAlreadyExists: http.StatusConflict,
	store.ErrDomainNotFound:      http.StatusNotFound,
	store.ErrEntryNotFound:       http.StatusNotFound,
	store.ErrTaskNotFound:        http.StatusNotFound,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
