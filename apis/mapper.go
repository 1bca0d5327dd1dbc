/*
   Copyright 2025 The DIRPX Authors

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

package apis

import (
	"dirpx.dev/drest/code"
)

// Mapper is an immutable, concurrency-safe view of the classification rules.
// It resolves an arbitrary failure value into the transport projection that
// may be written to the client.
type Mapper interface {
	// Map classifies err and returns the HTTP status, wire code, and
	// external-safe message to use for it.
	//
	// Map is a pure function: deterministic, no I/O, no side effects.
	// Passing a nil error is a caller-contract violation and panics —
	// a nil error must never silently become a mapped response.
	Map(err error) Mapping

	// Explain returns a human-readable description of which rule matched.
	// Implementations may return an empty string in production builds.
	Explain(err error) string
}

// Mapping represents the resolved transport projection for a single error.
// It is the final output of the mapper and can be written directly to HTTP.
type Mapping struct {
	// HTTPStatus is the resolved HTTP status code (net/http compatible).
	HTTPStatus int

	// Code is the resolved wire error code from the closed drest/code set.
	Code code.Code

	// Message is the external-safe human-readable message. Depending on the
	// matched rule this is either a fixed safe string or the error's own
	// message (pass-through kinds only).
	Message string
}
