// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Vetrov

// Package adapter implements the HTTP client the terminal application talks
// to the agencydesk server through. It owns the bearer token captured at
// login and maps transport failures to a small set of sentinel errors.
package adapter
