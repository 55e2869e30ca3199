// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Vetrov

package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rdapDomainBody = `{
	"objectClassName": "domain",
	"ldhName": "example.com",
	"events": [
		{"eventAction": "registration", "eventDate": "1995-08-14T04:00:00Z"},
		{"eventAction": "expiration", "eventDate": "2027-08-13T04:00:00Z"}
	],
	"entities": [
		{
			"objectClassName": "entity",
			"roles": ["registrar"],
			"vcardArray": ["vcard", [
				["version", {}, "text", "4.0"],
				["fn", {}, "text", "RESERVED-Internet Assigned Numbers Authority"]
			]]
		}
	]
}`

func TestRDAPProber_Probe(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/domain/example.com", r.URL.Path)
		assert.Equal(t, "application/rdap+json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/rdap+json")
		_, _ = w.Write([]byte(rdapDomainBody))
	}))
	defer server.Close()

	prober := NewRDAPProber(server.URL, time.Second)

	probe, err := prober.Probe(context.Background(), "example.com")
	require.NoError(t, err)

	require.NotNil(t, probe.ExpiresAt)
	assert.Equal(t, time.Date(2027, time.August, 13, 4, 0, 0, 0, time.UTC), probe.ExpiresAt.UTC())
	assert.Equal(t, "RESERVED-Internet Assigned Numbers Authority", probe.Registrar)
}

func TestRDAPProber_ProbeNotRegistered(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"errorCode": 404}`, http.StatusNotFound)
	}))
	defer server.Close()

	prober := NewRDAPProber(server.URL, time.Second)

	_, err := prober.Probe(context.Background(), "definitely-free-name.example")
	assert.ErrorIs(t, err, ErrDomainNotRegistered)
}

func TestRDAPProber_ProbeUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	prober := NewRDAPProber(server.URL, time.Second)

	_, err := prober.Probe(context.Background(), "example.com")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrDomainNotRegistered)
}

func TestRDAPProber_ProbeWithoutRegistrarEntity(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/rdap+json")
		_, _ = w.Write([]byte(`{"events": [{"eventAction": "expiration", "eventDate": "2027-01-01T00:00:00Z"}]}`))
	}))
	defer server.Close()

	prober := NewRDAPProber(server.URL, time.Second)

	probe, err := prober.Probe(context.Background(), "example.com")
	require.NoError(t, err)
	assert.Empty(t, probe.Registrar)
	require.NotNil(t, probe.ExpiresAt)
}
