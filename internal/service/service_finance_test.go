// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Vetrov

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avetrov/agencydesk/internal/logger"
	"github.com/avetrov/agencydesk/models"
)

func financeDate(day int) time.Time {
	return time.Date(2026, time.August, day, 0, 0, 0, 0, time.UTC)
}

func TestFinanceService_Summary(t *testing.T) {
	repo := &financeRepositoryMock{entries: []models.FinanceEntry{
		{ID: 1, Kind: models.FinanceKindRevenue, Category: "retainers", AmountCents: 600_000, EntryDate: financeDate(3)},
		{ID: 2, Kind: models.FinanceKindRevenue, Category: "projects", AmountCents: 200_000, EntryDate: financeDate(10)},
		{ID: 3, Kind: models.FinanceKindExpense, Category: "salaries", AmountCents: 300_000, EntryDate: financeDate(5)},
		{ID: 4, Kind: models.FinanceKindExpense, Category: "tools", AmountCents: 100_000, EntryDate: financeDate(12)},
		// Outside the period, must not count.
		{ID: 5, Kind: models.FinanceKindExpense, Category: "tools", AmountCents: 999_999, EntryDate: financeDate(28)},
	}}
	financeSvc := NewFinanceService(repo, logger.Nop())

	summary, err := financeSvc.Summary(context.Background(), financeDate(1), financeDate(15))
	require.NoError(t, err)

	assert.Equal(t, int64(800_000), summary.RevenueCents)
	assert.Equal(t, int64(400_000), summary.ExpenseCents)
	assert.Equal(t, int64(400_000), summary.NetCents)

	require.Len(t, summary.Revenues, 2)
	assert.Equal(t, "retainers", summary.Revenues[0].Category)
	assert.InDelta(t, 75.0, summary.Revenues[0].Share, 0.001)
	assert.Equal(t, "projects", summary.Revenues[1].Category)
	assert.InDelta(t, 25.0, summary.Revenues[1].Share, 0.001)

	require.Len(t, summary.Expenses, 2)
	assert.Equal(t, "salaries", summary.Expenses[0].Category)
	assert.InDelta(t, 75.0, summary.Expenses[0].Share, 0.001)
}

func TestFinanceService_SummaryEmptyPeriod(t *testing.T) {
	financeSvc := NewFinanceService(&financeRepositoryMock{}, logger.Nop())

	summary, err := financeSvc.Summary(context.Background(), financeDate(1), financeDate(15))
	require.NoError(t, err)

	assert.Zero(t, summary.RevenueCents)
	assert.Zero(t, summary.NetCents)
	assert.Empty(t, summary.Expenses)
	assert.Empty(t, summary.Revenues)
}

func TestFinanceService_ListRejectsInvertedPeriod(t *testing.T) {
	financeSvc := NewFinanceService(&financeRepositoryMock{}, logger.Nop())

	_, err := financeSvc.ListFinanceEntries(context.Background(), financeDate(15), financeDate(1))
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestFinanceService_CreateValidation(t *testing.T) {
	financeSvc := NewFinanceService(&financeRepositoryMock{}, logger.Nop())

	tests := []struct {
		name  string
		entry models.FinanceEntry
	}{
		{name: "unknown kind", entry: models.FinanceEntry{Kind: "loan", Category: "x", AmountCents: 1}},
		{name: "missing category", entry: models.FinanceEntry{Kind: models.FinanceKindExpense, AmountCents: 1}},
		{name: "negative amount", entry: models.FinanceEntry{Kind: models.FinanceKindExpense, Category: "x", AmountCents: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := financeSvc.CreateFinanceEntry(context.Background(), tt.entry)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}
