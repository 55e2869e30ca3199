// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Vetrov

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/avetrov/agencydesk/internal/logger"
	"github.com/avetrov/agencydesk/models"
)

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	return &DB{DB: conn, logger: logger.Nop(), errorClassifier: NewPostgresErrorClassifier()}, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestCreateUser_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewUserRepository(db, logger.Nop())

	now := time.Now()
	rows := sqlmock.
		NewRows([]string{"id", "login", "name", "password_hash", "created_at"}).
		AddRow(1, "owner@agency.dev", "Owner", "argon2id$hash", now)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("owner@agency.dev", "Owner", "argon2id$hash").
		WillReturnRows(rows)

	created, err := repo.CreateUser(context.Background(), models.User{
		Login:        "owner@agency.dev",
		Name:         "Owner",
		PasswordHash: "argon2id$hash",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.UserID != 1 {
		t.Errorf("expected UserID=1, got %d", created.UserID)
	}
	if created.Login != "owner@agency.dev" {
		t.Errorf("expected login owner@agency.dev, got %s", created.Login)
	}
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewUserRepository(db, logger.Nop())

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(context.Background(), models.User{Login: "owner@agency.dev"})
	if !errors.Is(err, ErrLoginAlreadyExists) {
		t.Fatalf("expected ErrLoginAlreadyExists, got %v", err)
	}
}

func TestFindUserByLogin_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewUserRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT id, login, name, password_hash, created_at").
		WithArgs("missing@agency.dev").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByLogin(context.Background(), "missing@agency.dev")
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}

func TestGetUserByID_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewUserRepository(db, logger.Nop())

	now := time.Now()
	rows := sqlmock.
		NewRows([]string{"id", "login", "name", "password_hash", "created_at"}).
		AddRow(7, "owner@agency.dev", "Owner", "argon2id$hash", now)

	mock.ExpectQuery("SELECT id, login, name, password_hash, created_at").
		WithArgs(int64(7)).
		WillReturnRows(rows)

	found, err := repo.GetUserByID(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.UserID != 7 {
		t.Errorf("expected UserID=7, got %d", found.UserID)
	}
}
