// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Vetrov

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (login, name, password_hash)
    VALUES ($1, $2, $3)
    RETURNING id, login, name, password_hash, created_at;`

	findUserByLogin = `SELECT id, login, name, password_hash, created_at
    FROM users
    WHERE login = $1;`

	getUserByID = `SELECT id, login, name, password_hash, created_at
    FROM users
    WHERE id = $1;`

	getUserMetadata = `SELECT metadata
    FROM users
    WHERE id = $1;`

	updateUserMetadata = `UPDATE users
    SET metadata = $2
    WHERE id = $1;`

	createCredential = `INSERT INTO credentials (user_id, client_id, name, credential_type, value_kind, encrypted_value)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING id, user_id, client_id, name, credential_type, value_kind, encrypted_value, created_at, updated_at;`

	getCredential = `SELECT id, user_id, client_id, name, credential_type, value_kind, encrypted_value, created_at, updated_at
    FROM credentials
    WHERE user_id = $1 AND id = $2;`

	updateCredential = `UPDATE credentials
    SET client_id = $3, name = $4, credential_type = $5, value_kind = $6, encrypted_value = $7, updated_at = NOW()
    WHERE user_id = $1 AND id = $2
    RETURNING id, user_id, client_id, name, credential_type, value_kind, encrypted_value, created_at, updated_at;`

	updateCredentialMeta = `UPDATE credentials
    SET client_id = $3, name = $4, credential_type = $5, updated_at = NOW()
    WHERE user_id = $1 AND id = $2
    RETURNING id, user_id, client_id, name, credential_type, value_kind, encrypted_value, created_at, updated_at;`

	deleteCredential = `DELETE FROM credentials
    WHERE user_id = $1 AND id = $2;`

	createClient = `INSERT INTO clients (company, contact_name, email, status)
    VALUES ($1, $2, $3, $4)
    RETURNING id, company, contact_name, email, status, created_at, updated_at;`

	getClient = `SELECT id, company, contact_name, email, status, created_at, updated_at
    FROM clients
    WHERE id = $1;`

	listClients = `SELECT id, company, contact_name, email, status, created_at, updated_at
    FROM clients
    ORDER BY company;`

	listClientsByStatus = `SELECT id, company, contact_name, email, status, created_at, updated_at
    FROM clients
    WHERE status = $1
    ORDER BY company;`

	updateClient = `UPDATE clients
    SET company = $2, contact_name = $3, email = $4, status = $5, updated_at = NOW()
    WHERE id = $1
    RETURNING id, company, contact_name, email, status, created_at, updated_at;`

	deleteClient = `DELETE FROM clients
    WHERE id = $1;`

	createDomain = `INSERT INTO domains (name, registrar, client_id, expires_at, auto_renew)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING id, name, registrar, client_id, expires_at, auto_renew, checked_at, created_at;`

	listDomains = `SELECT id, name, registrar, client_id, expires_at, auto_renew, checked_at, created_at
    FROM domains
    ORDER BY expires_at NULLS LAST, name;`

	updateDomainExpiry = `UPDATE domains
    SET registrar = $2, expires_at = $3, checked_at = $4
    WHERE id = $1;`

	deleteDomain = `DELETE FROM domains
    WHERE id = $1;`

	createFinanceEntry = `INSERT INTO finance_entries (kind, amount_cents, category, description, client_id, entry_date)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING id, kind, amount_cents, category, description, client_id, entry_date, created_at;`

	listFinanceEntries = `SELECT id, kind, amount_cents, category, description, client_id, entry_date, created_at
    FROM finance_entries
    WHERE entry_date >= $1 AND entry_date <= $2
    ORDER BY entry_date, id;`

	deleteFinanceEntry = `DELETE FROM finance_entries
    WHERE id = $1;`

	createProject = `INSERT INTO projects (name, client_id)
    VALUES ($1, $2)
    RETURNING id, name, client_id, created_at;`

	listProjects = `SELECT id, name, client_id, created_at
    FROM projects
    ORDER BY name;`

	createTask = `INSERT INTO tasks (project_id, title, status, position)
    VALUES ($1, $2, $3, $4)
    RETURNING id, project_id, title, status, position, created_at, updated_at;`

	getTask = `SELECT id, project_id, title, status, position, created_at, updated_at
    FROM tasks
    WHERE id = $1;`

	listTasks = `SELECT id, project_id, title, status, position, created_at, updated_at
    FROM tasks
    WHERE project_id = $1
    ORDER BY status, position, id;`

	moveTask = `UPDATE tasks
    SET status = $2, position = $3, updated_at = NOW()
    WHERE id = $1
    RETURNING id, project_id, title, status, position, created_at, updated_at;`

	deleteTask = `DELETE FROM tasks
    WHERE id = $1;`

	appendAuditEvent = `INSERT INTO audit_events (user_id, action, target_type, target_id, details)
    VALUES ($1, $2, $3, $4, $5);`

	listAuditEvents = `SELECT id, user_id, action, target_type, target_id, details, created_at
    FROM audit_events
    WHERE user_id = $1
    ORDER BY created_at DESC, id DESC
    LIMIT $2;`

	getWebAuthnCredentials = `SELECT id, user_id, credential_id, public_key, sign_count, aaguid, created_at
    FROM webauthn_credentials
    WHERE user_id = $1
    ORDER BY id;`

	addWebAuthnCredential = `INSERT INTO webauthn_credentials (user_id, credential_id, public_key, sign_count, aaguid)
    VALUES ($1, $2, $3, $4, $5);`

	updateWebAuthnSignCount = `UPDATE webauthn_credentials
    SET sign_count = $3
    WHERE user_id = $1 AND credential_id = $2;`
)

// buildListCredentialsQuery assembles the dynamic credential list query.
// The clients join supplies the display name for records scoped to an
// agency client.
func buildListCredentialsQuery(filter CredentialFilter) (string, []any, error) {
	builder := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select(
			"c.id", "c.user_id", "c.client_id", "cl.company",
			"c.name", "c.credential_type", "c.value_kind", "c.encrypted_value",
			"c.created_at", "c.updated_at",
		).
		From("credentials c").
		LeftJoin("clients cl ON cl.id = c.client_id").
		Where(sq.Eq{"c.user_id": filter.UserID})

	if len(filter.Types) > 0 {
		builder = builder.Where(sq.Eq{"c.credential_type": filter.Types})
	}
	if filter.ClientID != nil {
		builder = builder.Where(sq.Eq{"c.client_id": *filter.ClientID})
	}
	if filter.Search != "" {
		builder = builder.Where(sq.ILike{"c.name": "%" + filter.Search + "%"})
	}

	query, args, err := builder.OrderBy("c.created_at DESC", "c.id DESC").ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
