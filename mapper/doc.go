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

// Package mapper provides deterministic, immutable mappings from arbitrary
// failure values to transport-level projections: an HTTP status, a wire error
// code (dirpx.dev/drest/code), and an external-safe message.
//
// # Overview
//
// In drest failures are classified by a high-level Kind
// (dirpx.dev/drest/kind) carried on the error value. Transport layers (HTTP
// middleware, gRPC interceptors) need to turn a caught error into a concrete
// response. Package mapper does that in a way that is:
//
//   - immutable — a Mapper is a snapshot, safe for concurrent reuse;
//   - overridable — callers can change the status, code, or message per Kind;
//   - closed — every failure lands on exactly one row of a fixed table, with
//     an explicit last row for anything unrecognized.
//
// # Classification model
//
// Map resolves an error in ordered, most-specific-first steps:
//
//  1. a kind-tagged error (anything implementing apis.KindedError, usually
//     *drest.Error) dispatches on its Kind;
//  2. model-validation failures (validator.ValidationErrors) dispatch as
//     kind.Validation;
//  3. unparseable request bodies (encoding/json syntax and type errors,
//     truncated reads, oversized bodies) dispatch as kind.Malformed;
//  4. cancellation (context.Canceled, context.DeadlineExceeded) dispatches
//     as kind.Canceled;
//  5. everything else dispatches as kind.Internal.
//
// A nil error is a caller-contract violation and panics: a nil error must
// never silently become a mapped response.
//
// # Message policy
//
// Each Kind carries one of three message policies, encoding the trust
// boundary between internal error text and external callers:
//
//   - fixed: a constant safe string, never the error's own text. Used for
//     every kind whose message may originate outside this codebase.
//   - passthrough: the error's own message, assumed safe because it is
//     authored by the same codebase (kind.InvalidArgument,
//     kind.InvalidOperation only).
//   - param: only the offending parameter name is surfaced, never the full
//     error text (kind.MissingArgument only).
//
// # Building a mapper
//
// A Mapper is created once and reused:
//
//	m, err := mapper.New(
//	    mapper.WithStatusOverride(kind.Canceled, http.StatusRequestTimeout),
//	)
//	if err != nil {
//	    // invalid kind, status out of range, etc.
//	}
//
//	p := m.Map(drest.E(kind.NotFound, "order 42 is gone"))
//	// p.HTTPStatus == 404, p.Code == code.NotFound
//
// # Diagnostics
//
// For debugging and tests, Mapper.Explain returns a human-readable trace of
// how a particular error was resolved: the classified kind, which tier each
// field came from (override or default), and the applied message policy.
// This is intended for inspection and logging, not for stable machine
// parsing.
//
// # Immutability
//
// All user-provided inputs are copied during New. After construction the
// Mapper does not observe further changes to the caller's values, making it
// safe to share a single instance across handlers, goroutines, and requests.
package mapper
