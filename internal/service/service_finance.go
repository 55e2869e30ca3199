// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Vetrov

package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/avetrov/agencydesk/internal/logger"
	"github.com/avetrov/agencydesk/internal/store"
	"github.com/avetrov/agencydesk/models"
)

// financeService is the concrete implementation of FinanceService.
// Aggregation happens in memory over the period's entries; amounts stay in
// cents until presentation.
type financeService struct {
	finance store.FinanceRepository
	logger  *logger.Logger
}

// NewFinanceService constructs a FinanceService.
func NewFinanceService(finance store.FinanceRepository, logger *logger.Logger) FinanceService {
	return &financeService{
		finance: finance,
		logger:  logger,
	}
}

// CreateFinanceEntry records one expense or revenue line.
func (f *financeService) CreateFinanceEntry(ctx context.Context, entry models.FinanceEntry) (models.FinanceEntry, error) {
	if !entry.Kind.Valid() || entry.Category == "" || entry.AmountCents < 0 {
		return models.FinanceEntry{}, ErrInvalidDataProvided
	}
	if entry.EntryDate.IsZero() {
		entry.EntryDate = time.Now()
	}

	created, err := f.finance.CreateFinanceEntry(ctx, entry)
	if err != nil {
		return models.FinanceEntry{}, fmt.Errorf("finance entry creation ended with error: %w", err)
	}

	return created, nil
}

// ListFinanceEntries returns the period's entries, oldest first.
func (f *financeService) ListFinanceEntries(ctx context.Context, from, to time.Time) ([]models.FinanceEntry, error) {
	if from.After(to) {
		return nil, ErrInvalidPeriod
	}

	entries, err := f.finance.ListFinanceEntries(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("finance list ended with error: %w", err)
	}

	return entries, nil
}

// DeleteFinanceEntry removes one entry.
func (f *financeService) DeleteFinanceEntry(ctx context.Context, entryID int64) error {
	if err := f.finance.DeleteFinanceEntry(ctx, entryID); err != nil {
		return fmt.Errorf("finance entry delete ended with error: %w", err)
	}

	return nil
}

// Summary aggregates the period into totals, net, and per-category shares.
// Shares are percentages of the kind's own total, sorted largest first.
func (f *financeService) Summary(ctx context.Context, from, to time.Time) (models.FinanceSummary, error) {
	entries, err := f.ListFinanceEntries(ctx, from, to)
	if err != nil {
		return models.FinanceSummary{}, err
	}

	summary := models.FinanceSummary{From: from, To: to}
	expenseByCategory := make(map[string]int64)
	revenueByCategory := make(map[string]int64)

	for _, entry := range entries {
		switch entry.Kind {
		case models.FinanceKindExpense:
			summary.ExpenseCents += entry.AmountCents
			expenseByCategory[entry.Category] += entry.AmountCents
		case models.FinanceKindRevenue:
			summary.RevenueCents += entry.AmountCents
			revenueByCategory[entry.Category] += entry.AmountCents
		}
	}

	summary.NetCents = summary.RevenueCents - summary.ExpenseCents
	summary.Expenses = categoryShares(expenseByCategory, summary.ExpenseCents)
	summary.Revenues = categoryShares(revenueByCategory, summary.RevenueCents)

	return summary, nil
}

func categoryShares(byCategory map[string]int64, total int64) []models.CategoryShare {
	if len(byCategory) == 0 {
		return nil
	}

	shares := make([]models.CategoryShare, 0, len(byCategory))
	for category, amount := range byCategory {
		share := models.CategoryShare{Category: category, AmountCents: amount}
		if total > 0 {
			share.Share = float64(amount) / float64(total) * 100
		}
		shares = append(shares, share)
	}

	sort.Slice(shares, func(i, j int) bool {
		if shares[i].AmountCents != shares[j].AmountCents {
			return shares[i].AmountCents > shares[j].AmountCents
		}
		return shares[i].Category < shares[j].Category
	})

	return shares
}
