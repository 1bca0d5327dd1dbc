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

// Package adapter converts transport envelopes from external messaging
// components into drest results.
//
// This is a one-way conversion helper exposed for collaborators that carry
// their own envelope shape (message bus consumers, kernel callbacks): given
// a correlation ID and an optional failure outcome, it produces the same
// Result the HTTP surface would have produced for that outcome.
package adapter

import (
	"dirpx.dev/drest/apis"
	"dirpx.dev/drest/envelope"
)

// Envelope is the minimal shape an external messaging component hands over:
// the correlation identifiers of the originating operation and its failure
// outcome, nil meaning success.
type Envelope struct {
	// CorrelationID links the message to the logical operation.
	CorrelationID string

	// TraceID is the distributed-tracing identifier, when known.
	TraceID string

	// Err is the failure outcome. Nil means the operation succeeded.
	Err error
}

// ToResult converts env into a Result, classifying a failure outcome
// through m exactly like the HTTP middleware would.
func ToResult(env Envelope, m apis.Mapper) envelope.Result {
	var r envelope.Result
	if env.Err == nil {
		r = envelope.OK()
	} else {
		p := m.Map(env.Err)
		r = envelope.Fail(
			envelope.StatusOf(p.HTTPStatus, p.Code),
			envelope.ErrorView{Code: p.Code, Message: p.Message},
		)
	}
	return r.WithCorrelation(env.CorrelationID).WithTrace(env.TraceID)
}

// ToTypedResult converts env into a TypedResult wrapping payload. The
// payload is attached only for success outcomes; on failure it is dropped,
// keeping the data-only-on-success invariant.
func ToTypedResult[T any](env Envelope, payload T, m apis.Mapper) envelope.TypedResult[T] {
	if env.Err == nil {
		return envelope.OKData(payload).WithCorrelation(env.CorrelationID).WithTrace(env.TraceID)
	}
	p := m.Map(env.Err)
	res := envelope.FailData[T](
		envelope.StatusOf(p.HTTPStatus, p.Code),
		envelope.ErrorView{Code: p.Code, Message: p.Message},
	)
	return res.WithCorrelation(env.CorrelationID).WithTrace(env.TraceID)
}
