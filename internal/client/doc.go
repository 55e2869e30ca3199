// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Vetrov

// Package client implements the terminal client application runtime.
//
// It wires the server adapter, the local metadata cache, the vault lock
// session, and the terminal UI into a single process lifecycle.
package client
