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

package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

// ExpectStatus asserts the request completed with the given status, the
// body is included in the failure to aid debugging.
func ExpectStatus(response *Response, err error, status int) {
	ginkgo.GinkgoHelper()

	gomega.Expect(err).NotTo(gomega.HaveOccurred())
	gomega.Expect(response).NotTo(gomega.BeNil())
	gomega.Expect(response.StatusCode).To(gomega.Equal(status), "unexpected status, body: %s", response.Text())
}

// DecodeResponse decodes a response body, failing the test if it is not
// what T describes.
func DecodeResponse[T any](response *Response) T {
	ginkgo.GinkgoHelper()

	var result T

	gomega.Expect(response.Decode(&result)).To(gomega.Succeed())

	return result
}

// ExpectErrorResponse asserts a rejected request with the given message.
func ExpectErrorResponse(response *Response, err error, status int, message string) {
	ginkgo.GinkgoHelper()

	ExpectStatus(response, err, status)
	gomega.Expect(DecodeResponse[ErrorResponse](response).Error).To(gomega.Equal(message))
}

// CreateUserWithCleanup creates a user and schedules its deletion.
func CreateUserWithCleanup(ctx context.Context, client *APIClient, payload UserRequest) CreatedUser {
	ginkgo.GinkgoHelper()

	response, err := client.CreateUser(ctx, payload)
	ExpectStatus(response, err, http.StatusCreated)

	user := DecodeResponse[CreatedUser](response)

	ginkgo.GinkgoWriter.Printf("Created user with ID: %s\n", user.ID)

	// Schedule cleanup - this runs whether the test passes or fails so we don't need to clean up manually
	ginkgo.DeferCleanup(func() {
		userID, err := strconv.Atoi(user.ID)
		if err != nil {
			ginkgo.GinkgoWriter.Printf("Warning: Not deleting user with non-numeric ID %q\n", user.ID)
			return
		}

		response, err := client.DeleteUser(ctx, userID)
		if err != nil {
			ginkgo.GinkgoWriter.Printf("Warning: Failed to delete user %d: %v\n", userID, err)
			return
		}

		ginkgo.GinkgoWriter.Printf("Deleted user %d, status %d\n", userID, response.StatusCode)
	})

	return user
}

// VerifyUserPage verifies the shape of a page of users.
func VerifyUserPage(list UserList, expectedPage, expectedLength int) {
	ginkgo.GinkgoHelper()

	gomega.Expect(list.Page).To(gomega.Equal(expectedPage))
	gomega.Expect(list.Data).To(gomega.HaveLen(expectedLength))

	for _, user := range list.Data {
		gomega.Expect(user.ID).To(gomega.BeNumerically(">", 0))
		gomega.Expect(user.Email).To(gomega.ContainSubstring("@"))
	}
}
