// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Vetrov

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	// ErrAuthenticationRequired is returned when a vault mutation arrives
	// with no authenticated identity. The auth middleware makes this
	// unreachable over HTTP; the guard protects direct service callers.
	ErrAuthenticationRequired = errors.New("authentication required")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrUnknownCredentialType is returned when a credential write carries a
	// type outside the known set.
	ErrUnknownCredentialType = errors.New("unknown credential type")

	// ErrEmptySecretValue is returned when a credential create carries no
	// secret value at all.
	ErrEmptySecretValue = errors.New("credential value must not be empty")

	// ErrUnknownTaskStatus is returned when a kanban move targets a column
	// outside the board.
	ErrUnknownTaskStatus = errors.New("unknown task status")

	// ErrInvalidPosition is returned when a kanban move carries a negative
	// position.
	ErrInvalidPosition = errors.New("task position must not be negative")

	// ErrInvalidPeriod is returned when a finance query's from date is after
	// its to date.
	ErrInvalidPeriod = errors.New("period start must not be after its end")
)
