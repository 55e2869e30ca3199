// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Vetrov

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init wires the full route tree. Tracing, access logging, compression and
// panic recovery apply to every route; everything under the authorised group
// additionally passes the JWT middleware.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)
	router.Use(middleware.Recoverer)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/api/vault", func(r chi.Router) {
			r.Get("/credentials", h.listCredentials)
			r.Post("/credentials", h.createCredential)
			r.Get("/credentials/{credentialID}", h.getCredential)
			r.Put("/credentials/{credentialID}", h.updateCredential)
			r.Delete("/credentials/{credentialID}", h.deleteCredential)
			r.Post("/credentials/{credentialID}/reveal", h.revealCredential)

			r.Get("/settings", h.getVaultSettings)
			r.Get("/settings/verifier", h.getVaultVerifier)
			r.Put("/settings/pin", h.setPIN)
			r.Put("/settings/biometrics", h.setBiometrics)
			r.Delete("/settings", h.disableProtection)
			r.Post("/unlock-failures", h.recordUnlockFailure)

			r.Route("/authenticator", func(r chi.Router) {
				r.Get("/", h.authenticatorAvailable)
				r.Post("/register/begin", h.beginAuthenticatorRegistration)
				r.Post("/register/finish", h.finishAuthenticatorRegistration)
				r.Post("/verify/begin", h.beginAuthenticatorVerify)
				r.Post("/verify/finish", h.finishAuthenticatorVerify)
			})
		})

		r.Route("/api/clients", func(r chi.Router) {
			r.Get("/", h.listClients)
			r.Post("/", h.createClient)
			r.Get("/{clientID}", h.getClient)
			r.Put("/{clientID}", h.updateClient)
			r.Delete("/{clientID}", h.deleteClient)
		})

		r.Route("/api/domains", func(r chi.Router) {
			r.Get("/", h.listDomains)
			r.Post("/", h.createDomain)
			r.Delete("/{domainID}", h.deleteDomain)
			r.Post("/refresh", h.refreshDomains)
		})

		r.Route("/api/finance", func(r chi.Router) {
			r.Get("/entries", h.listFinanceEntries)
			r.Post("/entries", h.createFinanceEntry)
			r.Delete("/entries/{entryID}", h.deleteFinanceEntry)
			r.Get("/summary", h.financeSummary)
		})

		r.Route("/api/projects", func(r chi.Router) {
			r.Get("/", h.listProjects)
			r.Post("/", h.createProject)
			r.Get("/{projectID}/board", h.board)
			r.Post("/{projectID}/tasks", h.createTask)
		})
		r.Route("/api/tasks", func(r chi.Router) {
			r.Post("/{taskID}/move", h.moveTask)
			r.Delete("/{taskID}", h.deleteTask)
		})

		r.Get("/api/audit", h.listAuditEvents)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
