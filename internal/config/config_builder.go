// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Vetrov

package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// configBuilder collects configuration layers and merges them by precedence.
// Sources are appended highest-priority first; mergo only fills fields the
// earlier layers left zero, so environment beats flags and flags beat the
// JSON file. Source errors accumulate in err and fail the final build.
type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

// merge folds the collected layers into a single StructuredConfig without
// validating it. build and buildClient apply their own validation on top.
func (b *configBuilder) merge() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, nil
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	config, err := b.merge()
	if err != nil {
		return nil, err
	}

	return config, config.validate()
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags() *configBuilder {
	b.configs = append(b.configs, ParseFlags())
	return b
}

// withJSON loads the file layer last: it only runs when an earlier source
// set a config file path, and its values fill whatever is still unset.
func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
		}
	}
	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, jsonCfg)
	return b
}
