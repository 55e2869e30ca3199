// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Vetrov

package vault

import (
	"context"
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/go-webauthn/webauthn/protocol"
	"github.com/go-webauthn/webauthn/webauthn"

	"github.com/avetrov/agencydesk/internal/config"
	"github.com/avetrov/agencydesk/internal/logger"
	"github.com/avetrov/agencydesk/models"
)

// CredentialStore persists registered platform-authenticator credentials.
type CredentialStore interface {
	WebAuthnCredentials(ctx context.Context, userID int64) ([]models.WebAuthnCredential, error)
	AddWebAuthnCredential(ctx context.Context, credential *models.WebAuthnCredential) error
	UpdateWebAuthnSignCount(ctx context.Context, userID int64, credentialID []byte, signCount uint32) error
}

// BiometricGate runs the relying-party side of the platform-authenticator
// ceremonies. Registration binds an authenticator to the user; verification
// flips the session lock flag and nothing more — a lost or failed ceremony
// leaves credential values exactly as encrypted as before.
type BiometricGate struct {
	wa    *webauthn.WebAuthn
	store CredentialStore

	mu              sync.Mutex
	pendingRegister map[int64]*webauthn.SessionData
	pendingVerify   map[int64]*webauthn.SessionData
}

// NewBiometricGate builds the gate from the relying-party identity in the
// application configuration.
func NewBiometricGate(appConfig config.App, store CredentialStore) (*BiometricGate, error) {
	wa, err := webauthn.New(&webauthn.Config{
		RPDisplayName: "AgencyDesk Vault",
		RPID:          appConfig.WebAuthnRPID,
		RPOrigins:     []string{appConfig.WebAuthnRPOrigin},
	})
	if err != nil {
		return nil, fmt.Errorf("webauthn relying party: %w", err)
	}

	return &BiometricGate{
		wa:              wa,
		store:           store,
		pendingRegister: make(map[int64]*webauthn.SessionData),
		pendingVerify:   make(map[int64]*webauthn.SessionData),
	}, nil
}

// IsAvailable reports whether the user has at least one registered platform
// authenticator. It never fails: a storage error reads as unavailable so the
// PIN path stays usable.
func (g *BiometricGate) IsAvailable(ctx context.Context, userID int64) bool {
	credentials, err := g.store.WebAuthnCredentials(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Int64("user_id", userID).
			Msg("authenticator availability probe failed")
		return false
	}

	return len(credentials) > 0
}

// BeginRegistration starts the attestation ceremony for user and returns the
// creation options to hand to the browser. The challenge is held in memory
// until FinishRegistration.
func (g *BiometricGate) BeginRegistration(ctx context.Context, user models.User) (*protocol.CredentialCreation, error) {
	waUser, err := g.gateUser(ctx, user)
	if err != nil {
		return nil, err
	}

	creation, session, err := g.wa.BeginRegistration(waUser,
		webauthn.WithAuthenticatorSelection(protocol.AuthenticatorSelection{
			AuthenticatorAttachment: protocol.Platform,
			UserVerification:        protocol.VerificationRequired,
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("begin authenticator registration: %w", err)
	}

	g.mu.Lock()
	g.pendingRegister[user.UserID] = session
	g.mu.Unlock()

	return creation, nil
}

// FinishRegistration completes the attestation ceremony and persists the new
// credential. The pending challenge is consumed regardless of the outcome.
func (g *BiometricGate) FinishRegistration(ctx context.Context, user models.User, response *protocol.ParsedCredentialCreationData) error {
	g.mu.Lock()
	session, ok := g.pendingRegister[user.UserID]
	delete(g.pendingRegister, user.UserID)
	g.mu.Unlock()
	if !ok {
		return ErrNoPendingCeremony
	}

	waUser, err := g.gateUser(ctx, user)
	if err != nil {
		return err
	}

	credential, err := g.wa.CreateCredential(waUser, *session, response)
	if err != nil {
		return fmt.Errorf("finish authenticator registration: %w", err)
	}

	record := &models.WebAuthnCredential{
		UserID:       user.UserID,
		CredentialID: credential.ID,
		PublicKey:    credential.PublicKey,
		SignCount:    credential.Authenticator.SignCount,
		AAGUID:       credential.Authenticator.AAGUID,
	}
	if err = g.store.AddWebAuthnCredential(ctx, record); err != nil {
		return fmt.Errorf("store authenticator credential: %w", err)
	}

	logger.FromContext(ctx).Info().
		Int64("user_id", user.UserID).
		Msg("platform authenticator registered")

	return nil
}

// BeginVerify starts the assertion ceremony. Fails with
// ErrBiometricUnavailable when the user has no registered authenticator.
func (g *BiometricGate) BeginVerify(ctx context.Context, user models.User) (*protocol.CredentialAssertion, error) {
	waUser, err := g.gateUser(ctx, user)
	if err != nil {
		return nil, err
	}
	if len(waUser.credentials) == 0 {
		return nil, ErrBiometricUnavailable
	}

	assertion, session, err := g.wa.BeginLogin(waUser,
		webauthn.WithUserVerification(protocol.VerificationRequired),
	)
	if err != nil {
		return nil, fmt.Errorf("begin authenticator verification: %w", err)
	}

	g.mu.Lock()
	g.pendingVerify[user.UserID] = session
	g.mu.Unlock()

	return assertion, nil
}

// FinishVerify completes the assertion ceremony. A failed or cancelled
// assertion reads as (false, nil) — the caller keeps the vault locked and
// falls back to the PIN; only missing challenges and storage problems
// surface as errors.
func (g *BiometricGate) FinishVerify(ctx context.Context, user models.User, response *protocol.ParsedCredentialAssertionData) (bool, error) {
	g.mu.Lock()
	session, ok := g.pendingVerify[user.UserID]
	delete(g.pendingVerify, user.UserID)
	g.mu.Unlock()
	if !ok {
		return false, ErrNoPendingCeremony
	}

	waUser, err := g.gateUser(ctx, user)
	if err != nil {
		return false, err
	}

	credential, err := g.wa.ValidateLogin(waUser, *session, response)
	if err != nil {
		logger.FromContext(ctx).Info().Err(err).
			Int64("user_id", user.UserID).
			Msg("authenticator verification failed")
		return false, nil
	}

	err = g.store.UpdateWebAuthnSignCount(ctx, user.UserID, credential.ID, credential.Authenticator.SignCount)
	if err != nil {
		return false, fmt.Errorf("update authenticator sign count: %w", err)
	}

	return true, nil
}

// gateUser loads the user's registered credentials and wraps both in the
// shape the webauthn library expects.
func (g *BiometricGate) gateUser(ctx context.Context, user models.User) (*webAuthnUser, error) {
	credentials, err := g.store.WebAuthnCredentials(ctx, user.UserID)
	if err != nil {
		return nil, fmt.Errorf("load authenticator credentials: %w", err)
	}

	return &webAuthnUser{user: user, credentials: credentials}, nil
}

// webAuthnUser adapts models.User and its stored credentials to the
// webauthn.User interface.
type webAuthnUser struct {
	user        models.User
	credentials []models.WebAuthnCredential
}

func (u *webAuthnUser) WebAuthnID() []byte {
	id := make([]byte, 8)
	binary.BigEndian.PutUint64(id, uint64(u.user.UserID))

	return id
}

func (u *webAuthnUser) WebAuthnName() string {
	return u.user.Login
}

// WebAuthnIcon is deprecated in the WebAuthn spec; required by the
// webauthn.User interface in go-webauthn v0.10.x.
func (u *webAuthnUser) WebAuthnIcon() string {
	return ""
}

func (u *webAuthnUser) WebAuthnDisplayName() string {
	if u.user.Name != "" {
		return u.user.Name
	}

	return u.user.Login
}

func (u *webAuthnUser) WebAuthnCredentials() []webauthn.Credential {
	credentials := make([]webauthn.Credential, 0, len(u.credentials))
	for _, stored := range u.credentials {
		credentials = append(credentials, webauthn.Credential{
			ID:        stored.CredentialID,
			PublicKey: stored.PublicKey,
			Authenticator: webauthn.Authenticator{
				AAGUID:    stored.AAGUID,
				SignCount: stored.SignCount,
			},
		})
	}

	return credentials
}
