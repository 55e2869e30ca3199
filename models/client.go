// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Vetrov

package models

import "time"

// ClientStatus is the lifecycle state of an agency client.
type ClientStatus string

const (
	ClientStatusActive   ClientStatus = "active"
	ClientStatusPaused   ClientStatus = "paused"
	ClientStatusArchived ClientStatus = "archived"
)

// Valid reports whether s is one of the known client statuses.
func (s ClientStatus) Valid() bool {
	switch s {
	case ClientStatusActive, ClientStatusPaused, ClientStatusArchived:
		return true
	}
	return false
}

// Client is a customer of the agency. Credential records and projects may
// reference a client to scope them to that engagement.
type Client struct {
	ID          int64        `json:"id"`
	Company     string       `json:"company"`
	ContactName string       `json:"contact_name,omitempty"`
	Email       string       `json:"email,omitempty"`
	Status      ClientStatus `json:"status"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// TableName returns the name of the database table backing Client.
func (c Client) TableName() string {
	return "clients"
}
