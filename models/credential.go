// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Vetrov

package models

import (
	"encoding/json"
	"time"
)

// CredentialType classifies what kind of secret a credential record holds.
// The type is descriptive only; it never changes how the value is encrypted.
type CredentialType string

const (
	CredentialTypeAPIKey   CredentialType = "api_key"
	CredentialTypePassword CredentialType = "password"
	CredentialTypeSSHKey   CredentialType = "ssh_key"
	CredentialTypeToken    CredentialType = "token"
	CredentialTypeOther    CredentialType = "other"
)

// Valid reports whether t is one of the known credential types.
func (t CredentialType) Valid() bool {
	switch t {
	case CredentialTypeAPIKey, CredentialTypePassword, CredentialTypeSSHKey,
		CredentialTypeToken, CredentialTypeOther:
		return true
	}
	return false
}

// SecretKind discriminates the shape of a credential's secret value.
// It is decided at write time and stored beside the ciphertext, so readers
// never have to infer the shape from the decrypted payload.
type SecretKind string

const (
	// SecretKindSingle is a single opaque string (a password, an API key).
	SecretKindSingle SecretKind = "single"

	// SecretKindFields is an ordered list of named fields stored under one
	// record (e.g. an OAuth client id + secret pair).
	SecretKindFields SecretKind = "fields"
)

// CredentialField is one named entry of a multi-field secret.
type CredentialField struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// SecretValue is the decrypted form of a credential's value: either a single
// opaque string or a list of named fields. Exactly one of Single/Fields is
// meaningful, selected by Kind.
type SecretValue struct {
	Kind   SecretKind        `json:"kind"`
	Single string            `json:"value,omitempty"`
	Fields []CredentialField `json:"fields,omitempty"`
}

// SingleSecret builds a SecretValue holding one opaque string.
func SingleSecret(value string) SecretValue {
	return SecretValue{Kind: SecretKindSingle, Single: value}
}

// FieldsSecret builds a SecretValue holding a list of named fields.
func FieldsSecret(fields []CredentialField) SecretValue {
	return SecretValue{Kind: SecretKindFields, Fields: fields}
}

// Plaintext serializes the secret value to the string that gets encrypted.
// Single values are stored raw for compatibility with records written before
// the kind discriminator existed; field lists are stored as a JSON array.
func (v SecretValue) Plaintext() (string, error) {
	if v.Kind == SecretKindFields {
		raw, err := json.Marshal(v.Fields)
		if err != nil {
			return "", err
		}
		return string(raw), nil
	}
	return v.Single, nil
}

// ParseSecretPlaintext rebuilds a SecretValue from a decrypted payload.
//
// When kind carries a stored discriminator it is authoritative. Records
// written before the discriminator existed pass an empty kind; for those the
// legacy rule applies: a payload that parses as a JSON array in which every
// element has both a "key" and a "value" property is treated as a field list,
// anything else as a single opaque string.
func ParseSecretPlaintext(plaintext string, kind SecretKind) SecretValue {
	switch kind {
	case SecretKindSingle:
		return SingleSecret(plaintext)
	case SecretKindFields:
		var fields []CredentialField
		if err := json.Unmarshal([]byte(plaintext), &fields); err == nil {
			return FieldsSecret(fields)
		}
		// A fields record whose payload does not parse is handed back raw
		// rather than dropped.
		return SingleSecret(plaintext)
	}

	// Legacy sniff for undiscriminated records.
	var probe []map[string]json.RawMessage
	if err := json.Unmarshal([]byte(plaintext), &probe); err == nil && len(probe) > 0 {
		conforming := true
		for _, el := range probe {
			if _, ok := el["key"]; !ok {
				conforming = false
				break
			}
			if _, ok := el["value"]; !ok {
				conforming = false
				break
			}
		}
		if conforming {
			var fields []CredentialField
			if err := json.Unmarshal([]byte(plaintext), &fields); err == nil {
				return FieldsSecret(fields)
			}
		}
	}

	return SingleSecret(plaintext)
}

// Credential is one stored secret record. EncryptedValue is the only
// persisted form of the secret: it is produced exclusively by the vault
// cipher's Encrypt and consumed exclusively by its Decrypt.
type Credential struct {
	// ID is the server-assigned record identifier.
	ID int64 `json:"id"`

	// UserID is the owning user. Stamped from the authenticated identity on
	// insert; never taken from the request body.
	UserID int64 `json:"-"`

	// ClientID optionally associates the credential with an agency client.
	ClientID *int64 `json:"client_id,omitempty"`

	// ClientName is the display name of the associated agency client,
	// populated only by list queries that join the clients table.
	ClientName *string `json:"client_name,omitempty"`

	// Name is the human-readable label of the secret.
	Name string `json:"name"`

	// Type classifies the secret (api_key, password, ssh_key, token, other).
	Type CredentialType `json:"type"`

	// EncryptedValue is the base64 ciphertext blob. Never exposed over JSON;
	// plaintext leaves the server only through the reveal operation.
	EncryptedValue string `json:"-"`

	// ValueKind is the write-time shape discriminator of the secret value.
	// Empty for records written before the discriminator existed.
	ValueKind SecretKind `json:"value_kind,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table backing Credential.
func (c Credential) TableName() string {
	return "credentials"
}

// CredentialInput is the transport payload for creating or updating a
// credential. Value is plaintext on the wire (the API is the trust boundary);
// the service encrypts it before anything is persisted.
type CredentialInput struct {
	Name     string         `json:"name"`
	Type     CredentialType `json:"type"`
	ClientID *int64         `json:"client_id,omitempty"`
	Value    *SecretValue   `json:"value,omitempty"`
}

// RevealedCredential is the response shape of the reveal operation: the
// record's metadata plus its decrypted value.
type RevealedCredential struct {
	Credential
	Value SecretValue `json:"value"`
}
