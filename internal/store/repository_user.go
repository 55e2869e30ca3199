// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Vetrov

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/avetrov/agencydesk/internal/logger"
	"github.com/avetrov/agencydesk/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (UserID, CreatedAt).
//
// A PostgreSQL unique_violation (23505) on the login column maps to
// [ErrLoginAlreadyExists].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.Login, user.Name, user.PasswordHash)

	var saved models.User
	if err := row.Scan(&saved.UserID, &saved.Login, &saved.Name, &saved.PasswordHash, &saved.CreatedAt); err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.User{}, ErrLoginAlreadyExists
		}

		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning created user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return saved, nil
}

// FindUserByLogin retrieves the user whose login matches. An empty result
// set maps to [ErrNoUserWasFound].
func (r *userRepository) FindUserByLogin(ctx context.Context, login string) (models.User, error) {
	log := logger.FromContext(ctx)

	var found models.User
	row := r.db.QueryRowContext(ctx, findUserByLogin, login)
	if err := row.Scan(&found.UserID, &found.Login, &found.Name, &found.PasswordHash, &found.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*userRepository.FindUserByLogin").Msg("error: scanning found user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// GetUserByID retrieves a user by primary key. An empty result set maps to
// [ErrNoUserWasFound].
func (r *userRepository) GetUserByID(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	var found models.User
	row := r.db.QueryRowContext(ctx, getUserByID, userID)
	if err := row.Scan(&found.UserID, &found.Login, &found.Name, &found.PasswordHash, &found.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*userRepository.GetUserByID").Msg("error: scanning found user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}
