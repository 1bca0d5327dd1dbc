/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package config loads the drest service configuration from the
// environment. Every middleware toggle is independent, so services enable
// exactly the conventions they need.
package config

import (
	"time"

	"github.com/spf13/viper"

	"dirpx.dev/drest/correlation"
	"dirpx.dev/drest/logging"
)

// Config is the full configuration surface of a drest service.
type Config struct {
	// Environment names the deployment environment ("development",
	// "staging", "production"). Detail leakage is hard-disabled in
	// production regardless of the ShowDetails toggle.
	Environment string

	Server      ServerConfig
	Correlation CorrelationConfig
	Errors      ErrorsConfig
	Scope       ScopeConfig
	Logging     logging.Config
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// CorrelationConfig toggles the correlation middleware.
type CorrelationConfig struct {
	// Enabled mounts the Correlation middleware.
	Enabled bool

	// Header is the correlation header name.
	Header string

	// Echo mirrors the resolved ID into the response header.
	Echo bool

	// Generate creates an ID when no source produced one.
	Generate bool
}

// ErrorsConfig toggles the exception-handling middleware.
type ErrorsConfig struct {
	// Enabled mounts the ErrorHandler middleware.
	Enabled bool

	// ShowDetails exposes full error text in responses. Honored only
	// outside production.
	ShowDetails bool

	// IncludeTrace adds the active trace ID to error responses.
	IncludeTrace bool
}

// ScopeConfig toggles the logging scope middleware.
type ScopeConfig struct {
	// Enabled mounts the LoggingScope middleware.
	Enabled bool
}

// IsProduction reports whether the service runs in production.
func (c *Config) IsProduction() bool { return c.Environment == "production" }

// Load reads the configuration from DREST_* environment variables, applying
// the documented defaults for anything unset.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("DREST_ENVIRONMENT", "development")
	v.SetDefault("DREST_SERVER_ADDR", ":8080")
	v.SetDefault("DREST_SERVER_READ_TIMEOUT", 30*time.Second)
	v.SetDefault("DREST_SERVER_WRITE_TIMEOUT", 30*time.Second)

	v.SetDefault("DREST_CORRELATION_ENABLED", true)
	v.SetDefault("DREST_CORRELATION_HEADER", correlation.Header)
	v.SetDefault("DREST_CORRELATION_ECHO", true)
	v.SetDefault("DREST_CORRELATION_GENERATE", true)

	v.SetDefault("DREST_ERRORS_ENABLED", true)
	v.SetDefault("DREST_ERRORS_SHOW_DETAILS", false)
	v.SetDefault("DREST_ERRORS_INCLUDE_TRACE", false)

	v.SetDefault("DREST_SCOPE_ENABLED", true)

	v.SetDefault("DREST_LOG_LEVEL", "info")
	v.SetDefault("DREST_LOG_PRETTY", false)

	v.AutomaticEnv()

	return &Config{
		Environment: v.GetString("DREST_ENVIRONMENT"),
		Server: ServerConfig{
			Addr:         v.GetString("DREST_SERVER_ADDR"),
			ReadTimeout:  v.GetDuration("DREST_SERVER_READ_TIMEOUT"),
			WriteTimeout: v.GetDuration("DREST_SERVER_WRITE_TIMEOUT"),
		},
		Correlation: CorrelationConfig{
			Enabled:  v.GetBool("DREST_CORRELATION_ENABLED"),
			Header:   v.GetString("DREST_CORRELATION_HEADER"),
			Echo:     v.GetBool("DREST_CORRELATION_ECHO"),
			Generate: v.GetBool("DREST_CORRELATION_GENERATE"),
		},
		Errors: ErrorsConfig{
			Enabled:      v.GetBool("DREST_ERRORS_ENABLED"),
			ShowDetails:  v.GetBool("DREST_ERRORS_SHOW_DETAILS"),
			IncludeTrace: v.GetBool("DREST_ERRORS_INCLUDE_TRACE"),
		},
		Scope: ScopeConfig{
			Enabled: v.GetBool("DREST_SCOPE_ENABLED"),
		},
		Logging: logging.Config{
			Level:  v.GetString("DREST_LOG_LEVEL"),
			Pretty: v.GetBool("DREST_LOG_PRETTY"),
		},
	}, nil
}
