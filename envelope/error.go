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

package envelope

import (
	"time"

	"dirpx.dev/drest/code"
)

// ErrorView is the serializable description of a single failure.
//
// This is *not* the internal error type — it is the shape we are comfortable
// exposing over the wire. Message must always be safe for external callers;
// Details carries internal diagnostics and is only ever populated when the
// service explicitly opts into diagnostic mode outside production.
type ErrorView struct {
	// Code is the canonical wire error code from the closed drest/code set.
	Code code.Code `json:"code"`

	// Message is the human-readable, external-safe explanation.
	Message string `json:"message"`

	// Details optionally carries the full internal error text.
	// Populated only in non-production diagnostic mode.
	Details string `json:"details,omitempty"`

	// Target optionally names the offending field or parameter.
	Target string `json:"target,omitempty"`
}

// ValidationError is one field-level failure from model validation.
//
// The same field may appear multiple times with different messages; order is
// whatever the validation layer produced and is preserved on the wire.
type ValidationError struct {
	// Field is the failing field name or path, e.g. "email".
	Field string `json:"field"`

	// Message is the human-readable description of the failure.
	Message string `json:"message"`

	// Code optionally identifies the failed rule, e.g. "required" or "max".
	Code string `json:"code,omitempty"`
}

// ErrorResponse is the envelope the middleware writes for every failure.
//
// It is distinct from Result: the error envelope has no status discriminator
// (the HTTP status carries that) and the correlation ID is a required field —
// empty only when resolution never ran.
type ErrorResponse struct {
	// CorrelationID is always emitted, even when empty, so that clients can
	// rely on the field's presence when logging failures.
	CorrelationID string `json:"correlationId"`

	// Error describes the failure.
	Error ErrorView `json:"error"`

	// ValidationErrors lists field-level failures, present only for
	// validation outcomes. Order is preserved.
	ValidationErrors []ValidationError `json:"validationErrors,omitempty"`

	// TraceID is the distributed-tracing identifier, when enabled.
	TraceID string `json:"traceId,omitempty"`

	// Timestamp is the creation time of the envelope. Always present.
	Timestamp time.Time `json:"timestamp"`
}

// NewErrorResponse constructs an ErrorResponse with a fresh timestamp.
func NewErrorResponse(correlationID string, view ErrorView) ErrorResponse {
	return ErrorResponse{
		CorrelationID: correlationID,
		Error:         view,
		Timestamp:     time.Now().UTC(),
	}
}

// WithValidationErrors returns a copy of r carrying the given ordered list.
// The slice is stored as-is; callers hand over ownership.
func (r ErrorResponse) WithValidationErrors(list []ValidationError) ErrorResponse {
	r.ValidationErrors = list
	return r
}

// WithTrace returns a copy of r with the trace ID set.
func (r ErrorResponse) WithTrace(id string) ErrorResponse {
	r.TraceID = id
	return r
}
