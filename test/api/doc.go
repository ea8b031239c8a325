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

// Package api provides integration test utilities for the ReqRes API.
//
// # Client
//
// APIClient wraps net/http with a fixed base URL.  It is constructed once per
// suite and handed to every spec, there is no package level session.  Every
// completed request, including those answered with an error status, is:
//   - logged with its status code and an equivalent curl command
//   - recorded as a report step named "METHOD /path -> status code: N"
//     carrying the curl command and the response body, pretty printed when
//     the body is JSON and verbatim when it is not
//
// Transport failures are returned to the caller untouched, nothing is
// retried.
//
// # Schemas
//
// Response shapes are described by JSON Schema documents under schemas/,
// compiled into the test binary and overridable with SCHEMA_DIR.  MatchSchema
// validates a response against one and reports every violated constraint.
//
// # Configuration
//
// See TestConfig.  With no API_BASE_URL the suites start the in-memory
// service from pkg/reqres and run hermetically.
package api
