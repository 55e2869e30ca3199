package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/avetrov/agencydesk/internal/adapter"
	"github.com/avetrov/agencydesk/internal/config"
	"github.com/avetrov/agencydesk/internal/crypto"
	"github.com/avetrov/agencydesk/internal/logger"
	"github.com/avetrov/agencydesk/internal/store"
	"github.com/avetrov/agencydesk/internal/tui"
	"github.com/avetrov/agencydesk/internal/vault"
)

// App is the terminal client: sign in, then the vault main loop behind
// whatever protection the user configured.
type App struct {
	logger *logger.Logger
	client *adapter.VaultClient
	cache  store.ClientCache
	ui     *tui.TUI
}

func NewApp(cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	vaultClient := adapter.NewVaultClient(cfg.Adapter, log)

	cache, err := store.NewClientCache(context.Background(), cfg.Cache, log)
	if err != nil {
		return nil, fmt.Errorf("create credential cache: %w", err)
	}

	return &App{
		logger: log,
		client: vaultClient,
		cache:  cache,
		ui:     tui.New(vaultClient, cache, log),
	}, nil
}

func (a *App) Run() error {
	ctx := context.Background()

	if err := a.ui.LoginFlow(ctx); err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		return err
	}

	// Lock state is ephemeral: every run re-derives it from the stored
	// security settings. Locked exactly when a PIN is enabled.
	settings, err := a.client.VaultSettings(ctx)
	if err != nil {
		return fmt.Errorf("fetch vault settings: %w", err)
	}

	// No platform authenticator is reachable from a terminal session, so
	// the biometric unlock path short-circuits and the PIN stays the only
	// gate here.
	session := vault.NewSession(nil)
	session.Initialize(settings)
	gate := vault.NewPINGate(crypto.NewPINHasher(), vault.NewLockoutTracker(vault.DefaultLockoutPolicy), settings)

	logout, err := a.ui.MainLoop(ctx, session, gate)
	if err != nil {
		return err
	}
	if logout {
		a.client.Reset()
		return a.Run()
	}

	return nil
}

// Close releases the local cache. Safe to call once after Run returns.
func (a *App) Close() error {
	return a.cache.Close()
}
