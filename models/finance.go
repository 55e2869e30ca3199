// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Vetrov

package models

import "time"

// FinanceKind discriminates expense and revenue entries.
type FinanceKind string

const (
	FinanceKindExpense FinanceKind = "expense"
	FinanceKindRevenue FinanceKind = "revenue"
)

// Valid reports whether k is a known finance entry kind.
func (k FinanceKind) Valid() bool {
	return k == FinanceKindExpense || k == FinanceKindRevenue
}

// FinanceEntry is one expense or revenue line. Amounts are stored in cents
// to keep arithmetic exact.
type FinanceEntry struct {
	ID          int64       `json:"id"`
	Kind        FinanceKind `json:"kind"`
	AmountCents int64       `json:"amount_cents"`
	Category    string      `json:"category"`
	Description string      `json:"description,omitempty"`
	ClientID    *int64      `json:"client_id,omitempty"`
	EntryDate   time.Time   `json:"entry_date"`
	CreatedAt   time.Time   `json:"created_at"`
}

// TableName returns the name of the database table backing FinanceEntry.
func (f FinanceEntry) TableName() string {
	return "finance_entries"
}

// CategoryShare is one category's slice of a finance summary.
type CategoryShare struct {
	Category    string  `json:"category"`
	AmountCents int64   `json:"amount_cents"`
	// Share is the category's fraction of its kind's total, in percent.
	Share float64 `json:"share"`
}

// FinanceSummary is the in-memory aggregate the dashboard renders: totals,
// net, and per-category percentage shares for a period.
type FinanceSummary struct {
	From         time.Time       `json:"from"`
	To           time.Time       `json:"to"`
	RevenueCents int64           `json:"revenue_cents"`
	ExpenseCents int64           `json:"expense_cents"`
	NetCents     int64           `json:"net_cents"`
	Expenses     []CategoryShare `json:"expenses"`
	Revenues     []CategoryShare `json:"revenues"`
}
