// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration so it can be decoded from strings such as
// "30s" or "1h" in both JSON and YAML files.
type Duration struct {
	time.Duration
}

// UnmarshalJSON accepts a quoted duration string or a number of nanoseconds.
func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	return d.set(v)
}

// UnmarshalYAML accepts a duration string or an integer number of
// nanoseconds.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var v any
	if err := node.Decode(&v); err != nil {
		return err
	}
	return d.set(v)
}

func (d *Duration) set(v any) error {
	switch value := v.(type) {
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		d.Duration = parsed
	case float64:
		d.Duration = time.Duration(value)
	case int:
		d.Duration = time.Duration(value)
	default:
		return fmt.Errorf("invalid duration %v", v)
	}
	return nil
}

// StructuredFileConfig mirrors [StructuredConfig] with file-friendly tags.
type StructuredFileConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key" yaml:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer" yaml:"token_issuer"`
		TokenDuration Duration `json:"token_duration" yaml:"token_duration"`
		Version       string   `json:"version" yaml:"version"`
		LogLevel      string   `json:"log_level" yaml:"log_level"`
	} `json:"app" yaml:"app"`

	Storage struct {
		DB struct {
			Driver         string   `json:"driver" yaml:"driver"`
			DSN            string   `json:"dsn" yaml:"dsn"`
			MaxOpenConns   int      `json:"max_open_conns" yaml:"max_open_conns"`
			MaxIdleConns   int      `json:"max_idle_conns" yaml:"max_idle_conns"`
			AcquireTimeout Duration `json:"acquire_timeout" yaml:"acquire_timeout"`
		} `json:"db" yaml:"db"`
	} `json:"storage" yaml:"storage"`

	Server struct {
		HTTPAddress     string   `json:"http_address" yaml:"http_address"`
		RequestTimeout  Duration `json:"request_timeout" yaml:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout" yaml:"shutdown_timeout"`
	} `json:"server" yaml:"server"`
}

// parseFile decodes the config file at path. Files ending in .yaml or .yml
// are decoded as YAML, everything else as JSON.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var fileCfg StructuredFileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fileCfg)
	default:
		err = json.Unmarshal(data, &fileCfg)
	}
	if err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	return fileCfg.toStructured(), nil
}

func (f *StructuredFileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey:  f.App.TokenSignKey,
			TokenIssuer:   f.App.TokenIssuer,
			TokenDuration: f.App.TokenDuration.Duration,
			Version:       f.App.Version,
			LogLevel:      f.App.LogLevel,
		},
		Storage: Storage{
			DB: DB{
				Driver:         f.Storage.DB.Driver,
				DSN:            f.Storage.DB.DSN,
				MaxOpenConns:   f.Storage.DB.MaxOpenConns,
				MaxIdleConns:   f.Storage.DB.MaxIdleConns,
				AcquireTimeout: f.Storage.DB.AcquireTimeout.Duration,
			},
		},
		Server: Server{
			HTTPAddress:     f.Server.HTTPAddress,
			RequestTimeout:  f.Server.RequestTimeout.Duration,
			ShutdownTimeout: f.Server.ShutdownTimeout.Duration,
		},
	}
}
