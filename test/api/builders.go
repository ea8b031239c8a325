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
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"k8s.io/utils/ptr"
)

func generateRandomName(prefix string) string {
	suffix := make([]byte, 4) // 8 hex characters
	_, _ = rand.Read(suffix)

	return fmt.Sprintf("%s-%s", prefix, hex.EncodeToString(suffix))
}

// UserPayloadBuilder builds creation and update bodies.
type UserPayloadBuilder struct {
	payload UserRequest
}

// NewUserPayload creates a builder with a unique job so echoed values can
// be told apart between runs.
func NewUserPayload(name string) *UserPayloadBuilder {
	return &UserPayloadBuilder{
		payload: UserRequest{
			Name: name,
			Job:  generateRandomName("job"),
		},
	}
}

func (b *UserPayloadBuilder) WithJob(job string) *UserPayloadBuilder {
	b.payload.Job = job
	return b
}

func (b *UserPayloadBuilder) Build() UserRequest {
	return b.payload
}

// CredentialsBuilder builds registration and login bodies.
type CredentialsBuilder struct {
	credentials Credentials
}

func NewCredentials() *CredentialsBuilder {
	return &CredentialsBuilder{}
}

func (b *CredentialsBuilder) WithEmail(email string) *CredentialsBuilder {
	b.credentials.Email = ptr.To(email)
	return b
}

func (b *CredentialsBuilder) WithPassword(password string) *CredentialsBuilder {
	b.credentials.Password = ptr.To(password)
	return b
}

func (b *CredentialsBuilder) Build() Credentials {
	return b.credentials
}
