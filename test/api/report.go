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

//go:generate mockgen -source=report.go -destination=mock/reporter.go -package=mock

package api

import (
	"github.com/onsi/ginkgo/v2"
)

// AttachmentType is the media type of an attachment.
type AttachmentType string

const (
	AttachmentText AttachmentType = "text/plain"
	AttachmentJSON AttachmentType = "application/json"
)

// Attachment names recorded for every request.
const (
	AttachmentRequestCurl  = "Request curl"
	AttachmentResponseJSON = "Response json"
	AttachmentResponseText = "Response text"
)

// Reporter records named steps and attachments against the running test.
// Attachments are write-once, nothing is ever read back.
type Reporter interface {
	// Step runs fn as a named step, attachments made by fn belong to it.
	Step(name string, fn func())
	// Attach records a blob against the current step.
	Attach(name string, kind AttachmentType, body []byte)
}

// Attachment is the report entry value recorded by GinkgoReporter.
type Attachment struct {
	Type AttachmentType `json:"type"`
	Body string         `json:"body"`
}

// String is used by Ginkgo to render the entry.
func (a Attachment) String() string {
	return a.Body
}

// GinkgoReporter records steps with By and attachments as report entries
// on the current spec.  It must only be used from within a running spec.
type GinkgoReporter struct{}

func NewGinkgoReporter() *GinkgoReporter {
	return &GinkgoReporter{}
}

func (r *GinkgoReporter) Step(name string, fn func()) {
	ginkgo.By(name, fn)
}

func (r *GinkgoReporter) Attach(name string, kind AttachmentType, body []byte) {
	ginkgo.AddReportEntry(name, Attachment{Type: kind, Body: string(body)}, ginkgo.ReportEntryVisibilityFailureOrVerbose)
}

// NopReporter runs steps and discards attachments.
type NopReporter struct{}

func (NopReporter) Step(_ string, fn func()) {
	fn()
}

func (NopReporter) Attach(string, AttachmentType, []byte) {}
