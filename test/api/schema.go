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
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
)

// Schema document names, one per response shape.
const (
	SchemaUserList       = "get_users_list.json"
	SchemaSingleUser     = "get_single_user.json"
	SchemaResourceList   = "get_resources_list.json"
	SchemaSingleResource = "get_single_resource.json"
	SchemaCreateUser     = "post_create_user.json"
	SchemaUpdateUser     = "put_update_user.json"
	SchemaRegister       = "post_register.json"
	SchemaLogin          = "post_login.json"
)

var (
	ErrSchemaNotFound = errors.New("schema not found")
	ErrInvalidSchema  = errors.New("invalid schema")
	ErrInvalidJSON    = errors.New("body is not valid JSON")
)

//go:embed schemas/*.json
var embeddedSchemas embed.FS

// SchemaLoader loads JSON Schema documents by name from a directory.
// Documents are parsed once and shared, callers must not modify them.
type SchemaLoader struct {
	fsys  fs.FS
	lock  sync.Mutex
	cache map[string]*openapi3.Schema
}

func NewSchemaLoader(fsys fs.FS) *SchemaLoader {
	return &SchemaLoader{
		fsys:  fsys,
		cache: map[string]*openapi3.Schema{},
	}
}

// DefaultSchemaLoader reads from SchemaDir when configured, and from the
// schemas compiled into the test binary otherwise.
func DefaultSchemaLoader(config *TestConfig) (*SchemaLoader, error) {
	if config.SchemaDir != "" {
		return NewSchemaLoader(os.DirFS(config.SchemaDir)), nil
	}

	fsys, err := fs.Sub(embeddedSchemas, "schemas")
	if err != nil {
		return nil, fmt.Errorf("opening embedded schemas: %w", err)
	}

	return NewSchemaLoader(fsys), nil
}

func (l *SchemaLoader) Load(name string) (*openapi3.Schema, error) {
	l.lock.Lock()
	defer l.lock.Unlock()

	if schema, ok := l.cache[name]; ok {
		return schema, nil
	}

	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSchemaNotFound, name)
		}

		return nil, fmt.Errorf("reading schema %s: %w", name, err)
	}

	schema := &openapi3.Schema{}

	if err := json.Unmarshal(data, schema); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidSchema, name, err)
	}

	l.cache[name] = schema

	return schema, nil
}

// ValidationError lists every constraint a document violated.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return "schema validation failed:\n  " + strings.Join(e.Violations, "\n  ")
}

// ValidateJSON checks a raw JSON body against a schema.
func ValidateJSON(schema *openapi3.Schema, body []byte) error {
	var value any

	if err := json.Unmarshal(body, &value); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	return Validate(schema, value)
}

// Validate checks a decoded JSON value against a schema, collecting all
// violations rather than stopping at the first.
func Validate(schema *openapi3.Schema, value any) error {
	err := schema.VisitJSON(value, openapi3.MultiErrors())
	if err == nil {
		return nil
	}

	return &ValidationError{
		Violations: violations(err),
	}
}

func violations(err error) []string {
	var multi openapi3.MultiError
	if errors.As(err, &multi) {
		var result []string

		for _, e := range multi {
			result = append(result, violations(e)...)
		}

		return result
	}

	var schemaErr *openapi3.SchemaError
	if errors.As(err, &schemaErr) {
		return []string{"/" + strings.Join(schemaErr.JSONPointer(), "/") + ": " + schemaErr.Reason}
	}

	return []string{err.Error()}
}
