// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Vetrov

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avetrov/agencydesk/internal/service"
	"github.com/avetrov/agencydesk/internal/store"
	"github.com/avetrov/agencydesk/models"
)

func TestHandler_Register(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		register   func(ctx context.Context, user models.User) (models.User, error)
		wantStatus int
		wantBearer bool
	}{
		{
			name: "success answers with bearer token",
			body: `{"login":"ivetrova","password":"s3cret"}`,
			register: func(_ context.Context, user models.User) (models.User, error) {
				user.UserID = 1
				return user, nil
			},
			wantStatus: http.StatusOK,
			wantBearer: true,
		},
		{
			name: "duplicate login answers conflict",
			body: `{"login":"ivetrova","password":"s3cret"}`,
			register: func(_ context.Context, _ models.User) (models.User, error) {
				return models.User{}, store.ErrLoginAlreadyExists
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:       "malformed json answers bad request",
			body:       `{"login":`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &authServiceMock{
				registerUserFunc: tt.register,
				createTokenFunc: func(_ context.Context, _ models.User) (models.Token, error) {
					return models.Token{SignedString: "signed.jwt.token"}, nil
				},
			}
			h := newTestHandler(&service.Services{AuthService: auth})
			router := h.Init()

			request := httptest.NewRequest(http.MethodPost, "/api/user/register", strings.NewReader(tt.body))
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			if tt.wantBearer {
				assert.Equal(t, "Bearer signed.jwt.token", recorder.Header().Get("Authorization"))
			}
		})
	}
}

func TestHandler_Login(t *testing.T) {
	auth := &authServiceMock{
		loginFunc: func(_ context.Context, user models.User) (models.User, error) {
			if user.Password != "correct" {
				return models.User{}, service.ErrWrongPassword
			}
			return models.User{UserID: 1, Login: user.Login}, nil
		},
		createTokenFunc: func(_ context.Context, _ models.User) (models.Token, error) {
			return models.Token{SignedString: "signed.jwt.token"}, nil
		},
	}
	h := newTestHandler(&service.Services{AuthService: auth})
	router := h.Init()

	t.Run("valid credentials", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodPost, "/api/user/login",
			strings.NewReader(`{"login":"ivetrova","password":"correct"}`))
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, request)

		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "Bearer signed.jwt.token", recorder.Header().Get("Authorization"))
	})

	t.Run("wrong password", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodPost, "/api/user/login",
			strings.NewReader(`{"login":"ivetrova","password":"wrong"}`))
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Empty(t, recorder.Header().Get("Authorization"))
	})
}
