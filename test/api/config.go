/*
Copyright 2024-2025 the Unikorn Authors.
Copyright 2026 Nscale.

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

package api

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var (
	ErrInvalidBaseURL = errors.New("invalid base URL")
	ErrInvalidTimeout = errors.New("invalid request timeout")
)

type TestConfig struct {
	// BaseURL is the fixed address every request path is appended to.
	// When empty the suites start an in-process fake service.
	BaseURL string
	// APIKey is sent as x-api-key when set, the public service
	// rate limits anonymous callers.
	APIKey         string
	RequestTimeout time.Duration
	// SchemaDir overrides the embedded schema documents.
	SchemaDir string
	// ReportPath is where a workbook summarising every request is
	// written after the suite, nothing is written when empty.
	ReportPath      string
	SkipIntegration bool
	LogResponses    bool
}

// DefaultTestConfig returns a configuration that does not consult the
// environment.
func DefaultTestConfig() *TestConfig {
	return &TestConfig{
		RequestTimeout: 30 * time.Second,
	}
}

// LoadTestConfig loads configuration from environment variables and .env files.
// Returns an error if configuration values are malformed.
func LoadTestConfig() (*TestConfig, error) {
	loadEnvFile()

	defaults := DefaultTestConfig()

	config := &TestConfig{
		BaseURL:         os.Getenv("API_BASE_URL"),
		APIKey:          os.Getenv("API_KEY"),
		RequestTimeout:  getDurationWithDefault("REQUEST_TIMEOUT", defaults.RequestTimeout),
		SchemaDir:       os.Getenv("SCHEMA_DIR"),
		ReportPath:      os.Getenv("REPORT_PATH"),
		SkipIntegration: getBoolWithDefault("SKIP_INTEGRATION", false),
		LogResponses:    getBoolWithDefault("LOG_RESPONSES", false),
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

// getDurationWithDefault gets a duration from environment variable or returns default.
func getDurationWithDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}

	return duration
}

// getBoolWithDefault gets a boolean from environment variable or returns default.
func getBoolWithDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}

	return boolValue
}

func loadEnvFile() {
	envPaths := []string{
		"../../../test/.env", // From test/api/suites directory
		"../../test/.env",    // From test/api directory
	}

	var envPath string

	for _, path := range envPaths {
		if _, err := os.Stat(path); err == nil {
			absPath, err := filepath.Abs(path)
			if err == nil {
				envPath = absPath
				break
			}
		}
	}

	if envPath == "" {
		// .env file not found - this is OK in CI/CD where env vars are set directly
		return
	}

	// Values already in the environment take precedence.
	if err := godotenv.Load(envPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env file from %s: %v\n", envPath, err)
	}
}

// validateConfig checks that configuration values are usable.
func validateConfig(config *TestConfig) error {
	if config.RequestTimeout <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidTimeout, config.RequestTimeout)
	}

	if config.BaseURL == "" {
		return nil
	}

	u, err := url.Parse(config.BaseURL)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}

	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %s must be an absolute http(s) URL", ErrInvalidBaseURL, config.BaseURL)
	}

	return nil
}
