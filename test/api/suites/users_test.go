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
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nscaledev/reqres-tests/test/api"

	"k8s.io/utils/ptr"
)

var _ = Describe("Users", func() {
	Context("When listing users", func() {
		It("should return the requested page", func() {
			response, err := client.ListUsers(ctx, &api.ListParams{Page: ptr.To(2)})
			api.ExpectStatus(response, err, http.StatusOK)

			list := api.DecodeResponse[api.UserList](response)
			Expect(list.Page).To(Equal(2))
		})

		It("should return six users by default", func() {
			response, err := client.ListUsers(ctx, nil)
			api.ExpectStatus(response, err, http.StatusOK)

			api.VerifyUserPage(api.DecodeResponse[api.UserList](response), 1, 6)
		})

		It("should conform to the user list schema", func() {
			schema := loadSchema(api.SchemaUserList)

			response, err := client.ListUsers(ctx, &api.ListParams{Page: ptr.To(2)})
			api.ExpectStatus(response, err, http.StatusOK)
			Expect(response).To(api.MatchSchema(schema))
		})

		It("should honour the delay parameter", func() {
			schema := loadSchema(api.SchemaUserList)

			response, err := client.ListUsers(ctx, &api.ListParams{Delay: ptr.To(3)})
			api.ExpectStatus(response, err, http.StatusOK)
			Expect(response.Elapsed).To(BeNumerically(">=", 3*time.Second))
			Expect(response).To(api.MatchSchema(schema))

			GinkgoWriter.Printf("Delayed list took %s\n", response.Elapsed)
		})

		It("should return identical results when repeated", func() {
			first, err := client.ListUsers(ctx, &api.ListParams{Page: ptr.To(2)})
			api.ExpectStatus(first, err, http.StatusOK)

			for range 3 {
				again, err := client.ListUsers(ctx, &api.ListParams{Page: ptr.To(2)})
				api.ExpectStatus(again, err, http.StatusOK)
				Expect(again.Text()).To(MatchJSON(first.Text()))
			}
		})
	})

	Context("When retrieving a single user", func() {
		DescribeTable("should return the requested user",
			func(userID int) {
				schema := loadSchema(api.SchemaSingleUser)

				response, err := client.GetUser(ctx, userID)
				api.ExpectStatus(response, err, http.StatusOK)
				Expect(response).To(api.MatchSchema(schema))

				user := api.DecodeResponse[api.SingleUser](response)
				Expect(user.Data.ID).To(Equal(userID))
			},
			Entry("user 1", 1),
			Entry("user 2", 2),
			Entry("user 3", 3),
			Entry("user 4", 4),
			Entry("user 5", 5),
		)

		It("should return an empty body for a missing user", func() {
			response, err := client.GetUser(ctx, 23)
			api.ExpectStatus(response, err, http.StatusNotFound)
			Expect(response.Text()).To(Equal("{}"))
		})

		It("should return the same user when repeated", func() {
			first, err := client.GetUser(ctx, 2)
			api.ExpectStatus(first, err, http.StatusOK)

			again, err := client.GetUser(ctx, 2)
			api.ExpectStatus(again, err, http.StatusOK)
			Expect(again.Text()).To(MatchJSON(first.Text()))
		})
	})

	Context("When creating a user", func() {
		It("should echo the new user", func() {
			schema := loadSchema(api.SchemaCreateUser)

			response, err := client.CreateUser(ctx, api.NewUserPayload("jane").WithJob("job").Build())
			api.ExpectStatus(response, err, http.StatusCreated)
			Expect(response).To(api.MatchSchema(schema))

			user := api.DecodeResponse[api.CreatedUser](response)
			Expect(user.Name).To(Equal("jane"))
			Expect(user.Job).To(Equal("job"))
		})

		It("should assign an identifier", func() {
			user := api.CreateUserWithCleanup(ctx, client, api.NewUserPayload("morpheus").Build())
			Expect(user.ID).NotTo(BeEmpty())
			Expect(user.CreatedAt).NotTo(BeEmpty())
		})
	})

	Context("When updating a user", func() {
		DescribeTable("should echo the updated fields",
			func(method string) {
				schema := loadSchema(api.SchemaUpdateUser)

				payload := api.NewUserPayload("morpheus").WithJob("zion resident").Build()

				response, err := client.UpdateUser(ctx, method, 2, payload)
				api.ExpectStatus(response, err, http.StatusOK)
				Expect(response).To(api.MatchSchema(schema))

				user := api.DecodeResponse[api.UpdatedUser](response)
				Expect(user.Name).To(Equal(payload.Name))
				Expect(user.Job).To(Equal(payload.Job))
				Expect(user.UpdatedAt).NotTo(BeEmpty())
			},
			Entry("with PUT", http.MethodPut),
			Entry("with PATCH", http.MethodPatch),
		)
	})

	Context("When deleting a user", func() {
		It("should return no content", func() {
			response, err := client.DeleteUser(ctx, 2)
			api.ExpectStatus(response, err, http.StatusNoContent)
			Expect(response.Body).To(BeEmpty())
		})
	})
})
