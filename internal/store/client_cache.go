// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Vetrov

package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/avetrov/agencydesk/internal/config"
	"github.com/avetrov/agencydesk/internal/logger"
	"github.com/avetrov/agencydesk/models"
)

const createCredentialCacheTable = `
	CREATE TABLE IF NOT EXISTS credential_cache (
		id              INTEGER PRIMARY KEY,
		name            TEXT NOT NULL,
		credential_type TEXT NOT NULL,
		client_name     TEXT,
		updated_at      TIMESTAMP NOT NULL
	);`

const (
	replaceCachedCredentials = `INSERT INTO credential_cache (id, name, credential_type, client_name, updated_at)
    VALUES ($1, $2, $3, $4, $5);`

	clearCachedCredentials = `DELETE FROM credential_cache;`

	listCachedCredentials = `SELECT id, name, credential_type, client_name, updated_at
    FROM credential_cache
    ORDER BY updated_at DESC, id DESC;`
)

// ClientCache is the TUI's local list of credential metadata, kept so the
// vault list renders while the server is unreachable. Only metadata is
// cached: neither ciphertext nor plaintext values ever touch the client
// disk.
type ClientCache interface {
	ReplaceCredentials(ctx context.Context, credentials []models.Credential) error
	ListCredentials(ctx context.Context) ([]models.Credential, error)
	Close() error
}

type clientCache struct {
	logger *logger.Logger
	db     *sql.DB
}

// NewClientCache opens (creating if needed) the SQLite file at cfg.Path and
// ensures the cache schema exists. An empty path keeps the cache in memory
// for the duration of the run.
func NewClientCache(ctx context.Context, cfg config.ClientCache, log *logger.Logger) (ClientCache, error) {
	path := cfg.Path
	if path == "" {
		path = ":memory:"
	} else if err := createLocalDBFileIfNotExists(path); err != nil {
		log.Err(err).Str("func", "NewClientCache").Msg("error creating cache file")
		return nil, err
	}

	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		log.Err(err).Str("func", "NewClientCache").Msg("error opening cache database")
		return nil, fmt.Errorf("error opening connection to cache DB: %w", err)
	}

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewClientCache").Msg("error connecting cache database (ping)")
		return nil, err
	}

	if _, err = conn.ExecContext(ctx, createCredentialCacheTable); err != nil {
		return nil, fmt.Errorf("error creating cache schema: %w", err)
	}
	log.Debug().Str("func", "NewClientCache").Msg("credential cache ready")

	return &clientCache{db: conn, logger: log}, nil
}

// ReplaceCredentials swaps the cached list for the given snapshot in one
// transaction.
func (c *clientCache) ReplaceCredentials(ctx context.Context, credentials []models.Credential) error {
	log := logger.FromContext(ctx)

	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin cache transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, clearCachedCredentials); err != nil {
		return fmt.Errorf("clear cached credentials: %w", err)
	}

	for _, credential := range credentials {
		var clientName *string
		if credential.ClientName != nil {
			clientName = credential.ClientName
		}
		_, err = tx.ExecContext(ctx, replaceCachedCredentials,
			credential.ID, credential.Name, credential.Type, clientName, credential.UpdatedAt)
		if err != nil {
			log.Err(err).Str("func", "*clientCache.ReplaceCredentials").
				Int64("credential_id", credential.ID).
				Msg("failed to cache credential metadata")
			return fmt.Errorf("cache credential metadata: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit cache transaction: %w", err)
	}

	return nil
}

// ListCredentials returns the cached snapshot, most recently updated first,
// mirroring the server's list order as closely as the cache can.
func (c *clientCache) ListCredentials(ctx context.Context) ([]models.Credential, error) {
	log := logger.FromContext(ctx)

	rows, err := c.db.QueryContext(ctx, listCachedCredentials)
	if err != nil {
		log.Err(err).Str("func", "*clientCache.ListCredentials").Msg("error: executing cache list query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var credentials []models.Credential
	for rows.Next() {
		var credential models.Credential
		err = rows.Scan(&credential.ID, &credential.Name, &credential.Type, &credential.ClientName, &credential.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		credentials = append(credentials, credential)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return credentials, nil
}

// Close releases the underlying SQLite handle.
func (c *clientCache) Close() error {
	return c.db.Close()
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		if dir := filepath.Dir(dbFile); dir != "." {
			if err = os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("error creating DB directory: %w", err)
			}
		}
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	return nil
}
