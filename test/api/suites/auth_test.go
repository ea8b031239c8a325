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

//nolint:testpackage,revive // test package in suites is standard for these tests
package suites

import (
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nscaledev/reqres-tests/test/api"
)

const (
	definedUserEmail = "eve.holt@reqres.in"
	expectedToken    = "QpwL5tke4Pnpja7X4"
)

var _ = Describe("Authentication", func() {
	Context("When registering", func() {
		It("should register a defined user", func() {
			schema := loadSchema(api.SchemaRegister)

			response, err := client.Register(ctx, api.NewCredentials().WithEmail(definedUserEmail).WithPassword("pistol").Build())
			api.ExpectStatus(response, err, http.StatusOK)
			Expect(response).To(api.MatchSchema(schema))

			registration := api.DecodeResponse[api.Registration](response)
			Expect(registration.Token).To(Equal(expectedToken))
		})

		It("should reject a missing password", func() {
			response, err := client.Register(ctx, api.NewCredentials().WithEmail("sydney@fife").Build())
			api.ExpectErrorResponse(response, err, http.StatusBadRequest, "Missing password")
		})

		It("should reject an undefined user", func() {
			response, err := client.Register(ctx, api.NewCredentials().WithEmail("sydney@fife").WithPassword("pistol").Build())
			api.ExpectErrorResponse(response, err, http.StatusBadRequest, "Note: Only defined users succeed registration")
		})
	})

	Context("When logging in", func() {
		It("should return a token", func() {
			schema := loadSchema(api.SchemaLogin)

			response, err := client.Login(ctx, api.NewCredentials().WithEmail(definedUserEmail).WithPassword("cityslicka").Build())
			api.ExpectStatus(response, err, http.StatusOK)
			Expect(response).To(api.MatchSchema(schema))

			login := api.DecodeResponse[api.Login](response)
			Expect(login.Token).To(Equal(expectedToken))
		})

		It("should reject a missing password", func() {
			response, err := client.Login(ctx, api.NewCredentials().WithEmail("peter@klaven").Build())
			api.ExpectErrorResponse(response, err, http.StatusBadRequest, "Missing password")
		})

		It("should reject an unknown user", func() {
			response, err := client.Login(ctx, api.NewCredentials().WithEmail("peter@klaven").WithPassword("cityslicka").Build())
			api.ExpectErrorResponse(response, err, http.StatusBadRequest, "user not found")
		})
	})
})
