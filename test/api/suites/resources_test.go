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

	"k8s.io/utils/ptr"
)

var _ = Describe("Resources", func() {
	Context("When listing resources", func() {
		It("should return a page of resources", func() {
			schema := loadSchema(api.SchemaResourceList)

			response, err := client.ListResources(ctx, &api.ListParams{PerPage: ptr.To(4)})
			api.ExpectStatus(response, err, http.StatusOK)
			Expect(response).To(api.MatchSchema(schema))

			list := api.DecodeResponse[api.ResourceList](response)
			Expect(list.Page).To(Equal(1))
			Expect(list.PerPage).To(Equal(4))
			Expect(list.Data).To(HaveLen(4))
		})
	})

	Context("When retrieving a single resource", func() {
		DescribeTable("should return the requested resource",
			func(resourceID int) {
				schema := loadSchema(api.SchemaSingleResource)

				response, err := client.GetResource(ctx, resourceID)
				api.ExpectStatus(response, err, http.StatusOK)
				Expect(response).To(api.MatchSchema(schema))

				resource := api.DecodeResponse[api.SingleResource](response)
				Expect(resource.Data.ID).To(Equal(resourceID))
				Expect(resource.Data.Color).To(HavePrefix("#"))
			},
			Entry("resource 1", 1),
			Entry("resource 2", 2),
			Entry("resource 3", 3),
		)

		It("should return an empty body for a missing resource", func() {
			response, err := client.GetResource(ctx, 23)
			api.ExpectStatus(response, err, http.StatusNotFound)
			Expect(response.Text()).To(Equal("{}"))
		})
	})
})
