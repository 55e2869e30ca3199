// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Vetrov

package tui

import (
	"errors"
	"strings"

	"github.com/avetrov/agencydesk/internal/adapter"
)

// ErrUserQuit is returned by the flows when the user leaves the program
// without completing them.
var ErrUserQuit = errors.New("вышел из программы")

// errNotADigit rejects non-digit input in the PIN form fields.
var errNotADigit = errors.New("допустимы только цифры")

func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		return "Неверный логин или пароль"
	case errors.Is(err, adapter.ErrConflict):
		return "Пользователь с таким логином уже существует"
	case errors.Is(err, adapter.ErrNotFound):
		return "Запись не найдена"
	}

	s := strings.ToLower(err.Error())
	if errors.Is(err, adapter.ErrServerUnavailable) ||
		strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Отсутствует сеть или Сервер недоступен"
	}

	return err.Error()
}
