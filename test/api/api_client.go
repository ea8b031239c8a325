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

//nolint:revive // naming conventions acceptable in test code
package api

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-logr/logr"
	"github.com/oapi-codegen/runtime"
)

type APIClient struct {
	baseURL   string
	client    *http.Client
	apiKey    string
	config    *TestConfig
	endpoints *Endpoints
	logger    logr.Logger
	reporter  Reporter
}

// ClientOption customises a client at construction time.
type ClientOption func(*APIClient)

// WithLogger sets where request summaries are logged.
func WithLogger(logger logr.Logger) ClientOption {
	return func(c *APIClient) {
		c.logger = logger
	}
}

// WithReporter sets where request steps and attachments are recorded.
func WithReporter(reporter Reporter) ClientOption {
	return func(c *APIClient) {
		c.reporter = reporter
	}
}

// WithHTTPClient replaces the underlying transport.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *APIClient) {
		c.client = client
	}
}

func NewAPIClient(baseURL string, opts ...ClientOption) *APIClient {
	config := DefaultTestConfig()
	config.BaseURL = baseURL

	return newAPIClientWithConfig(config, baseURL, opts...)
}

func NewAPIClientWithConfig(config *TestConfig, opts ...ClientOption) *APIClient {
	return newAPIClientWithConfig(config, config.BaseURL, opts...)
}

// common constructor logic.
func newAPIClientWithConfig(config *TestConfig, baseURL string, opts ...ClientOption) *APIClient {
	c := &APIClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client: &http.Client{
			Timeout: config.RequestTimeout,
		},
		apiKey:    config.APIKey,
		config:    config,
		endpoints: NewEndpoints(),
		logger:    logr.Discard(),
		reporter:  NopReporter{},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// BaseURL returns the fixed address requests are sent to.
func (c *APIClient) BaseURL() string {
	return c.baseURL
}

type requestOptions struct {
	query   url.Values
	header  http.Header
	body    any
	timeout time.Duration
}

// RequestOption customises a single request.
type RequestOption func(*requestOptions) error

// WithQuery adds a query parameter, styled as a form parameter the way
// generated OpenAPI clients do.
func WithQuery(name string, value any) RequestOption {
	return func(o *requestOptions) error {
		fragment, err := runtime.StyleParamWithLocation("form", true, name, runtime.ParamLocationQuery, value)
		if err != nil {
			return fmt.Errorf("styling query parameter %s: %w", name, err)
		}

		parsed, err := url.ParseQuery(fragment)
		if err != nil {
			return fmt.Errorf("parsing query parameter %s: %w", name, err)
		}

		for k, values := range parsed {
			for _, v := range values {
				o.query.Add(k, v)
			}
		}

		return nil
	}
}

// WithJSONBody sends v encoded as JSON.
func WithJSONBody(v any) RequestOption {
	return func(o *requestOptions) error {
		o.body = v
		return nil
	}
}

// WithHeader sets a request header.
func WithHeader(name, value string) RequestOption {
	return func(o *requestOptions) error {
		o.header.Set(name, value)
		return nil
	}
}

// WithTimeout bounds the request, on top of the client's own timeout.
func WithTimeout(timeout time.Duration) RequestOption {
	return func(o *requestOptions) error {
		o.timeout = timeout
		return nil
	}
}

// logError logs a generic error with trace context.
func (c *APIClient) logError(method, path string, duration time.Duration, traceParent string, err error, context string) {
	c.logger.Error(err, context, "method", method, "path", path, "duration", duration, "traceparent", traceParent)
	c.logTraceContext(traceParent)
}

// logTraceContext logs the trace context information.
func (c *APIClient) logTraceContext(traceParent string) {
	c.logger.Info("use the trace ID to search logs for this request", "traceID", extractTraceID(traceParent))
}

// generateTraceID creates a new W3C trace ID.
// we are using this to create a new trace ID for each request so if an error occurs we can find the request in the logs.
func generateTraceID() string {
	id := make([]byte, 16)
	_, _ = rand.Read(id)

	return hex.EncodeToString(id)
}

// generateSpanID creates a new W3C span ID.
func generateSpanID() string {
	id := make([]byte, 8)
	_, _ = rand.Read(id)

	return hex.EncodeToString(id)
}

// createTraceParent creates a W3C traceparent header value.
func createTraceParent() string {
	traceID := generateTraceID()
	spanID := generateSpanID()

	return fmt.Sprintf("00-%s-%s-01", traceID, spanID)
}

// extractTraceID extracts the trace ID from a traceparent header value.
func extractTraceID(traceParent string) string {
	parts := strings.Split(traceParent, "-")
	if len(parts) >= 2 {
		return parts[1]
	}

	return traceParent
}

// Do sends a request to the base URL joined with path.  Every completed
// exchange, whatever its status, is logged and recorded as a report step
// and the response is returned as is.  Transport failures are returned
// without anything being recorded.
//
//nolint:cyclop // test code complexity is acceptable
func (c *APIClient) Do(ctx context.Context, method, path string, opts ...RequestOption) (*Response, error) {
	options := &requestOptions{
		query:  url.Values{},
		header: http.Header{},
	}

	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, fmt.Errorf("applying request option: %w", err)
		}
	}

	if options.timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, options.timeout)
		defer cancel()
	}

	fullURL := c.baseURL + path
	if len(options.query) > 0 {
		fullURL += "?" + options.query.Encode()
	}

	var requestBody []byte

	if options.body != nil {
		data, err := json.Marshal(options.body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}

		requestBody = data
	}

	var body io.Reader
	if requestBody != nil {
		body = bytes.NewReader(requestBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	// Add W3C Trace Context headers
	traceParent := createTraceParent()
	req.Header.Set("Traceparent", traceParent)
	req.Header.Set("Tracestate", "test-automation=ginkgo")
	req.Header.Set("Accept", "application/json")

	if requestBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.apiKey != "" {
		req.Header.Set("X-Api-Key", c.apiKey)
	}

	for name, values := range options.header {
		req.Header[name] = values
	}

	start := time.Now()
	resp, err := c.client.Do(req)

	if err != nil {
		c.logError(method, path, time.Since(start), traceParent, err, "http request failed")
		return nil, fmt.Errorf("http request failed: %w", err)
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logError(method, path, time.Since(start), traceParent, err, "reading response body")
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	response := &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       respBody,
		Elapsed:    time.Since(start),
		Request:    req,
	}

	c.record(method, path, requestBody, response)

	return response, nil
}

// record logs the exchange and attaches it to the report.  A body that is
// not JSON falls back to a text attachment, exactly one of the two is made.
func (c *APIClient) record(method, path string, requestBody []byte, response *Response) {
	curl := Curl(response.Request, requestBody)

	c.logger.Info("request completed", "method", method, "path", path, "status", response.StatusCode, "duration", response.Elapsed, "curl", curl)

	if c.config.LogResponses && len(response.Body) > 0 {
		c.logger.Info("response body", "method", method, "path", path, "body", string(response.Body))
	}

	c.reporter.Step(fmt.Sprintf("%s %s -> status code: %d", method, path, response.StatusCode), func() {
		c.reporter.Attach(AttachmentRequestCurl, AttachmentText, []byte(curl))

		if pretty, ok := prettyJSON(response.Body); ok {
			c.reporter.Attach(AttachmentResponseJSON, AttachmentJSON, pretty)
			return
		}

		c.reporter.Attach(AttachmentResponseText, AttachmentText, response.Body)
	})
}

func (c *APIClient) Get(ctx context.Context, path string, opts ...RequestOption) (*Response, error) {
	return c.Do(ctx, http.MethodGet, path, opts...)
}

func (c *APIClient) Post(ctx context.Context, path string, opts ...RequestOption) (*Response, error) {
	return c.Do(ctx, http.MethodPost, path, opts...)
}

func (c *APIClient) Put(ctx context.Context, path string, opts ...RequestOption) (*Response, error) {
	return c.Do(ctx, http.MethodPut, path, opts...)
}

func (c *APIClient) Patch(ctx context.Context, path string, opts ...RequestOption) (*Response, error) {
	return c.Do(ctx, http.MethodPatch, path, opts...)
}

func (c *APIClient) Delete(ctx context.Context, path string, opts ...RequestOption) (*Response, error) {
	return c.Do(ctx, http.MethodDelete, path, opts...)
}
