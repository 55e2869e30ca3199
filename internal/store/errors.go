// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Vetrov

package store

import "errors"

// Sentinel errors returned by repository methods. Callers match them with
// [errors.Is].
var (
	// ErrLoginAlreadyExists is returned when registering a user whose login
	// is already taken.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrNoUserWasFound is returned when a user lookup matches nothing.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrCredentialNotFound is returned when a credential lookup, update or
	// delete targets a record that does not exist for the given user.
	ErrCredentialNotFound = errors.New("credential was not found")

	// ErrClientNotFound is returned when an agency client lookup matches
	// nothing.
	ErrClientNotFound = errors.New("client was not found")

	// ErrDomainAlreadyExists is returned when creating a domain whose name
	// is already tracked.
	ErrDomainAlreadyExists = errors.New("domain is already tracked")

	// ErrDomainNotFound is returned when a domain update or delete targets
	// a record that does not exist.
	ErrDomainNotFound = errors.New("domain was not found")

	// ErrEntryNotFound is returned when a finance entry delete targets a
	// record that does not exist.
	ErrEntryNotFound = errors.New("finance entry was not found")

	// ErrTaskNotFound is returned when a task lookup, move or delete
	// targets a record that does not exist.
	ErrTaskNotFound = errors.New("task was not found")
)

// Low-level database operation errors, wrapped around driver failures before
// any domain logic applies.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
