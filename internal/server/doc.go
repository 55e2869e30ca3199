// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Vetrov

// Package server wires and runs the application's HTTP transport.
//
// It owns the server lifecycle: startup, OS signal handling, and graceful
// shutdown with a drain window for in-flight requests.
package server
