// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Vetrov

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Note that the vault cipher key is deliberately NOT required here: its
// absence is a lazy configuration error raised on the first encrypt/decrypt
// call, so a deployment that never touches the vault can run without it.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration == 0 {
		return ErrInvalidAppConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
