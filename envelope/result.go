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

import "time"

// Result is the general-purpose response envelope without a payload.
//
// Invariant, maintained by the factories: Error is non-nil exactly when
// Status != StatusSuccess. Timestamp is always populated (UTC, creation
// time); the optional identifier fields are omitted from JSON when empty.
type Result struct {
	// Status is the outcome discriminator.
	Status Status `json:"status"`

	// CorrelationID links this response to the logical request across
	// service boundaries. Empty when resolution never happened.
	CorrelationID string `json:"correlationId,omitempty"`

	// TraceID is the distributed-tracing identifier, independent of and
	// orthogonal to the correlation ID.
	TraceID string `json:"traceId,omitempty"`

	// Error describes the failure when Status != StatusSuccess.
	Error *ErrorView `json:"error,omitempty"`

	// Timestamp is the creation time of the envelope. Always present.
	Timestamp time.Time `json:"timestamp"`
}

// TypedResult is a Result carrying a payload of type T.
//
// Data is present only on success; on failure it is omitted from the JSON
// form entirely (not emitted as null).
type TypedResult[T any] struct {
	Result

	// Data is the operation payload. Nil on any non-success result.
	Data *T `json:"data,omitempty"`
}

// OK constructs a success Result with a fresh timestamp.
func OK() Result {
	return Result{
		Status:    StatusSuccess,
		Timestamp: time.Now().UTC(),
	}
}

// Fail constructs a failure Result for the given status and error view.
// The status must not be StatusSuccess — a failure envelope always carries
// an error, and a success envelope never does.
func Fail(s Status, view ErrorView) Result {
	if s == StatusSuccess {
		s = StatusError
	}
	return Result{
		Status:    s,
		Error:     &view,
		Timestamp: time.Now().UTC(),
	}
}

// OKData constructs a success TypedResult wrapping the given payload.
func OKData[T any](data T) TypedResult[T] {
	return TypedResult[T]{
		Result: OK(),
		Data:   &data,
	}
}

// FailData constructs a failure TypedResult. The payload is always absent.
func FailData[T any](s Status, view ErrorView) TypedResult[T] {
	return TypedResult[T]{
		Result: Fail(s, view),
	}
}

// IsSuccess reports whether the envelope represents a completed operation.
func (r Result) IsSuccess() bool { return r.Status == StatusSuccess }

// WithCorrelation returns a copy of r with the correlation ID set.
// The original value is not modified.
func (r Result) WithCorrelation(id string) Result {
	r.CorrelationID = id
	return r
}

// WithTrace returns a copy of r with the trace ID set.
func (r Result) WithTrace(id string) Result {
	r.TraceID = id
	return r
}

// WithCorrelation returns a copy of r with the correlation ID set.
func (r TypedResult[T]) WithCorrelation(id string) TypedResult[T] {
	r.CorrelationID = id
	return r
}

// WithTrace returns a copy of r with the trace ID set.
func (r TypedResult[T]) WithTrace(id string) TypedResult[T] {
	r.TraceID = id
	return r
}
