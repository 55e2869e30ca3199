// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Vetrov

package models

import "time"

// Domain is a registered domain name tracked by the agency. Expiry is
// re-probed periodically by the domain refresh worker via RDAP.
type Domain struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Registrar string     `json:"registrar,omitempty"`
	ClientID  *int64     `json:"client_id,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	AutoRenew bool       `json:"auto_renew"`
	CheckedAt *time.Time `json:"checked_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// TableName returns the name of the database table backing Domain.
func (d Domain) TableName() string {
	return "domains"
}

// DaysUntilExpiry returns the whole number of days between now and the
// domain's expiry, negative when the domain is already expired. The second
// return value is false when no expiry date is known.
func (d Domain) DaysUntilExpiry(now time.Time) (int, bool) {
	if d.ExpiresAt == nil {
		return 0, false
	}
	return int(d.ExpiresAt.Sub(now).Hours() / 24), true
}
