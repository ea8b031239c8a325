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
	"encoding/json"
	"errors"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/onsi/gomega/format"
	"github.com/onsi/gomega/types"
)

var errNilResponse = errors.New("MatchSchema got a nil response")

// MatchSchema succeeds when the actual value conforms to the schema.  It
// accepts a *Response, a raw []byte or string body, or an already decoded
// value.
func MatchSchema(schema *openapi3.Schema) types.GomegaMatcher {
	return &schemaMatcher{
		schema: schema,
	}
}

type schemaMatcher struct {
	schema *openapi3.Schema
	err    error
}

func (m *schemaMatcher) Match(actual any) (bool, error) {
	body, err := bodyOf(actual)
	if err != nil {
		return false, err
	}

	m.err = ValidateJSON(m.schema, body)
	if errors.Is(m.err, ErrInvalidJSON) {
		return false, m.err
	}

	return m.err == nil, nil
}

func (m *schemaMatcher) FailureMessage(actual any) string {
	return fmt.Sprintf("Expected\n%s\nto conform to schema %q\n%v", describe(actual), m.schema.Title, m.err)
}

func (m *schemaMatcher) NegatedFailureMessage(actual any) string {
	return fmt.Sprintf("Expected\n%s\nnot to conform to schema %q", describe(actual), m.schema.Title)
}

// describe renders the body rather than the whole response.
func describe(actual any) string {
	body, err := bodyOf(actual)
	if err != nil {
		return format.Object(actual, 1)
	}

	return format.Object(string(body), 1)
}

func bodyOf(actual any) ([]byte, error) {
	switch t := actual.(type) {
	case *Response:
		if t == nil {
			return nil, errNilResponse
		}

		return t.Body, nil
	case []byte:
		return t, nil
	case string:
		return []byte(t), nil
	default:
		data, err := json.Marshal(actual)
		if err != nil {
			return nil, fmt.Errorf("MatchSchema cannot encode %T: %w", actual, err)
		}

		return data, nil
	}
}
