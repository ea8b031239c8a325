/*
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

//nolint:paralleltest // environment variables are process wide
package api_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nscaledev/reqres-tests/test/api"
)

func clearEnv(t *testing.T) {
	t.Helper()

	for _, key := range []string{"API_BASE_URL", "API_KEY", "REQUEST_TIMEOUT", "SCHEMA_DIR", "REPORT_PATH", "SKIP_INTEGRATION", "LOG_RESPONSES"} {
		t.Setenv(key, "")
	}
}

func TestLoadTestConfigDefaults(t *testing.T) {
	clearEnv(t)

	config, err := api.LoadTestConfig()
	require.NoError(t, err)
	require.Empty(t, config.BaseURL)
	require.Equal(t, 30*time.Second, config.RequestTimeout)
	require.False(t, config.SkipIntegration)
	require.False(t, config.LogResponses)
}

func TestLoadTestConfigFromEnvironment(t *testing.T) {
	clearEnv(t)

	t.Setenv("API_BASE_URL", "https://reqres.in")
	t.Setenv("API_KEY", "reqres-free-v1")
	t.Setenv("REQUEST_TIMEOUT", "5s")
	t.Setenv("REPORT_PATH", "/tmp/report.xlsx")
	t.Setenv("LOG_RESPONSES", "true")
	t.Setenv("SKIP_INTEGRATION", "not-a-bool")

	config, err := api.LoadTestConfig()
	require.NoError(t, err)
	require.Equal(t, "https://reqres.in", config.BaseURL)
	require.Equal(t, "reqres-free-v1", config.APIKey)
	require.Equal(t, 5*time.Second, config.RequestTimeout)
	require.Equal(t, "/tmp/report.xlsx", config.ReportPath)
	require.True(t, config.LogResponses)
	require.False(t, config.SkipIntegration, "malformed values fall back to the default")
}

func TestLoadTestConfigRejectsBadValues(t *testing.T) {
	clearEnv(t)

	t.Setenv("API_BASE_URL", "reqres.in/api")

	_, err := api.LoadTestConfig()
	require.ErrorIs(t, err, api.ErrInvalidBaseURL)

	t.Setenv("API_BASE_URL", "")
	t.Setenv("REQUEST_TIMEOUT", "-1s")

	_, err = api.LoadTestConfig()
	require.ErrorIs(t, err, api.ErrInvalidTimeout)
}
