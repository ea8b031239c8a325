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

package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Response is a fully read HTTP response.  It is never modified after
// being returned by the client.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
	// Elapsed covers sending the request and reading the whole body.
	Elapsed time.Duration
	// Request is the request this response answers.
	Request *http.Request
}

// Text returns the raw body.
func (r *Response) Text() string {
	return string(r.Body)
}

// JSON decodes the body into generic values.
func (r *Response) JSON() (any, error) {
	var value any

	if err := json.Unmarshal(r.Body, &value); err != nil {
		return nil, fmt.Errorf("decoding response body: %w", err)
	}

	return value, nil
}

// Decode decodes the body into v.
func (r *Response) Decode(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("decoding response body: %w", err)
	}

	return nil
}

// prettyJSON re-indents a JSON body, the boolean is false if the body
// is not JSON at all.
func prettyJSON(body []byte) ([]byte, bool) {
	var buf bytes.Buffer

	if err := json.Indent(&buf, body, "", "  "); err != nil {
		return nil, false
	}

	return buf.Bytes(), true
}
