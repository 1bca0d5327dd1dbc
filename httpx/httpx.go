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

// Package httpx adapts drest errors to plain net/http responses.
//
// It is the framework-free sibling of package ginx: services that mount bare
// http.Handler chains use Writer directly, while gin services get the same
// behavior through the ginx middleware (which builds on this package).
package httpx

import (
	"encoding/json"
	"net/http"

	"dirpx.dev/drest/apis"
	"dirpx.dev/drest/envelope"
)

// Meta carries extra context the HTTP layer adds on top of the mapped error.
// All fields are optional and typically come from request context or the
// correlation middleware.
type Meta struct {
	// Correlation is the resolved correlation ID. Always emitted, even empty.
	Correlation string

	// TraceID is the distributed-tracing identifier, when enabled.
	TraceID string

	// Details carries the full internal error text. Populate only when
	// diagnostic mode is explicitly enabled outside production.
	Details string

	// Target names the offending field or parameter, when known.
	Target string

	// ValidationErrors is the ordered field-error list for validation
	// failures.
	ValidationErrors []envelope.ValidationError
}

// Writer turns a caught error into an ErrorResponse on a plain
// http.ResponseWriter, resolving status, code, and message via the Mapper.
type Writer struct {
	Mapper apis.Mapper
}

// WriteError maps err and writes the error envelope with the mapped status.
//
// The caller owns the has-started guard: once response bytes have been sent,
// neither a status code nor a body may be written, so WriteError must not be
// called (log the error instead).
func (w Writer) WriteError(rw http.ResponseWriter, err error, meta Meta) {
	m := w.Mapper.Map(err)

	resp := envelope.NewErrorResponse(meta.Correlation, envelope.ErrorView{
		Code:    m.Code,
		Message: m.Message,
		Details: meta.Details,
		Target:  meta.Target,
	})
	if len(meta.ValidationErrors) > 0 {
		resp = resp.WithValidationErrors(meta.ValidationErrors)
	}
	if meta.TraceID != "" {
		resp = resp.WithTrace(meta.TraceID)
	}

	WriteJSON(rw, m.HTTPStatus, resp)
}

// WriteJSON writes any payload as a JSON response with the given status.
// Serialization failures after WriteHeader cannot surface to the client and
// are swallowed; payloads here are envelope types that always marshal.
func WriteJSON(rw http.ResponseWriter, status int, payload any) {
	rw.Header().Set("Content-Type", "application/json; charset=utf-8")
	rw.WriteHeader(status)
	_ = json.NewEncoder(rw).Encode(payload)
}
