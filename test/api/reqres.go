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
	"context"
	"errors"
	"fmt"
	"net/http"
)

var ErrUnsupportedMethod = errors.New("unsupported update method")

// ListParams are the optional query parameters of collection reads.
type ListParams struct {
	Page    *int
	PerPage *int
	// Delay asks the service to wait this many seconds before answering.
	Delay *int
}

func (p *ListParams) options() []RequestOption {
	if p == nil {
		return nil
	}

	var opts []RequestOption

	if p.Page != nil {
		opts = append(opts, WithQuery("page", *p.Page))
	}

	if p.PerPage != nil {
		opts = append(opts, WithQuery("per_page", *p.PerPage))
	}

	if p.Delay != nil {
		opts = append(opts, WithQuery("delay", *p.Delay))
	}

	return opts
}

// The helpers below return the raw response, the suites assert on status
// codes that are errors as often as not.

func (c *APIClient) ListUsers(ctx context.Context, params *ListParams, opts ...RequestOption) (*Response, error) {
	return c.Get(ctx, c.endpoints.ListUsers(), append(params.options(), opts...)...)
}

func (c *APIClient) GetUser(ctx context.Context, userID int, opts ...RequestOption) (*Response, error) {
	return c.Get(ctx, c.endpoints.GetUser(userID), opts...)
}

func (c *APIClient) CreateUser(ctx context.Context, user UserRequest, opts ...RequestOption) (*Response, error) {
	return c.Post(ctx, c.endpoints.CreateUser(), append([]RequestOption{WithJSONBody(user)}, opts...)...)
}

// UpdateUser replaces (PUT) or patches (PATCH) a user.
func (c *APIClient) UpdateUser(ctx context.Context, method string, userID int, user UserRequest, opts ...RequestOption) (*Response, error) {
	if method != http.MethodPut && method != http.MethodPatch {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMethod, method)
	}

	return c.Do(ctx, method, c.endpoints.UpdateUser(userID), append([]RequestOption{WithJSONBody(user)}, opts...)...)
}

func (c *APIClient) DeleteUser(ctx context.Context, userID int, opts ...RequestOption) (*Response, error) {
	return c.Delete(ctx, c.endpoints.DeleteUser(userID), opts...)
}

func (c *APIClient) ListResources(ctx context.Context, params *ListParams, opts ...RequestOption) (*Response, error) {
	return c.Get(ctx, c.endpoints.ListResources(), append(params.options(), opts...)...)
}

func (c *APIClient) GetResource(ctx context.Context, resourceID int, opts ...RequestOption) (*Response, error) {
	return c.Get(ctx, c.endpoints.GetResource(resourceID), opts...)
}

func (c *APIClient) Register(ctx context.Context, credentials Credentials, opts ...RequestOption) (*Response, error) {
	return c.Post(ctx, c.endpoints.Register(), append([]RequestOption{WithJSONBody(credentials)}, opts...)...)
}

func (c *APIClient) Login(ctx context.Context, credentials Credentials, opts ...RequestOption) (*Response, error) {
	return c.Post(ctx, c.endpoints.Login(), append([]RequestOption{WithJSONBody(credentials)}, opts...)...)
}
