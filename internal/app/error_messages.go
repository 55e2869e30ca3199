// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Vetrov

// Package app contains shared application-layer constants used across the
// AgencyDesk server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidJSONProvided is returned when the request body is not
	// syntactically valid JSON.
	MsgInvalidJSONProvided = "Invalid JSON was passed"

	// MsgInvalidDataProvided is returned when the request body decodes but
	// fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidLoginPassword is returned when the supplied login/password
	// combination does not match any existing user record.
	MsgInvalidLoginPassword = "invalid login/password"

	// MsgLoginAlreadyExists is returned when a registration attempt is
	// rejected because the requested login is already in use.
	MsgLoginAlreadyExists = "login already exists"
)
