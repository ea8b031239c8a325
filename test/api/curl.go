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
	"net/http"
	"sort"
	"strings"

	"github.com/alessio/shellescape"
)

// redactedHeaders never have their values rendered, the command ends up
// in logs and report workbooks.
//
//nolint:gochecknoglobals
var redactedHeaders = map[string]bool{
	"Authorization": true,
	"X-Api-Key":     true,
}

const redacted = "REDACTED"

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}

// Curl renders a shell command that reproduces the request.  Headers are
// emitted in name order so the output is stable, credentials are redacted.
func Curl(req *http.Request, body []byte) string {
	var b commandBuilder

	b.add("curl", "-X", req.Method)

	names := make([]string, 0, len(req.Header))
	for name := range req.Header {
		names = append(names, name)
	}

	sort.Strings(names)

	for _, name := range names {
		for _, value := range req.Header[name] {
			if redactedHeaders[name] {
				value = redacted
			}

			b.add("-H", name+": "+value)
		}
	}

	if len(body) > 0 {
		b.add("-d", string(body))
	}

	b.add(req.URL.String())

	return b.String()
}
