// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Vetrov

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON-friendly field
// types (durations as strings) for the optional config file source.
type StructuredJSONConfig struct {
	App struct {
		VaultCipherKey   string   `json:"vault_cipher_key"`
		TokenSignKey     string   `json:"token_sign_key"`
		TokenIssuer      string   `json:"token_issuer"`
		TokenDuration    Duration `json:"token_duration"`
		PINFailureWindow Duration `json:"pin_failure_window"`
		PINLockoutBase   Duration `json:"pin_lockout_base"`

		PINFailureThreshold int    `json:"pin_failure_threshold"`
		WebAuthnRPID        string `json:"webauthn_rp_id"`
		WebAuthnRPOrigin    string `json:"webauthn_rp_origin"`
		Version             string `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Cache struct {
			Path string `json:"path"`
		} `json:"cache,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		DomainRefreshInterval Duration `json:"domain_refresh_interval"`
		RDAPBaseURL           string   `json:"rdap_base_url"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			VaultCipherKey:      jsonCfg.App.VaultCipherKey,
			TokenSignKey:        jsonCfg.App.TokenSignKey,
			TokenIssuer:         jsonCfg.App.TokenIssuer,
			TokenDuration:       time.Duration(jsonCfg.App.TokenDuration),
			PINFailureThreshold: jsonCfg.App.PINFailureThreshold,
			PINFailureWindow:    time.Duration(jsonCfg.App.PINFailureWindow),
			PINLockoutBase:      time.Duration(jsonCfg.App.PINLockoutBase),
			WebAuthnRPID:        jsonCfg.App.WebAuthnRPID,
			WebAuthnRPOrigin:    jsonCfg.App.WebAuthnRPOrigin,
			Version:             jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Cache: Cache{
				Path: jsonCfg.Storage.Cache.Path,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Workers: Workers{
			DomainRefreshInterval: time.Duration(jsonCfg.Workers.DomainRefreshInterval),
			RDAPBaseURL:           jsonCfg.Workers.RDAPBaseURL,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
