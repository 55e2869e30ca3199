// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Vetrov

// Package workers hosts the background jobs that run alongside the HTTP
// server. Currently that is the domain expiry refresher, which periodically
// re-probes tracked domains over RDAP.
package workers
