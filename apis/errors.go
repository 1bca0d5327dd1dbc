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

// KindedError represents an error that is classified into a well-defined,
// machine-readable failure *kind*.
//
// A kind denotes a broad category, such as:
//   - "invalid_argument" — a caller-supplied value is wrong,
//   - "not_found"        — a referenced object does not exist,
//   - "concurrency"      — concurrent modification or version mismatch,
//   - "internal"         — unexpected server-side failure.
//
// Kinds are stable and enumerable. They are the primary value the mapper
// uses to decide which HTTP status and wire code to return to the client.
//
// Implementations are expected to return a *canonicalized* kind string —
// normalized to the format enforced by the drest/kind package (lowercase,
// underscores, length limits). Adapters should treat unknown or empty kinds
// as internal/server errors.
type KindedError interface {
	error

	// ErrorKind returns the machine-readable failure classification.
	//
	// The returned value MUST be non-empty and MUST already be normalized
	// according to the rules of the drest/kind package. Callers should not
	// try to "fix" or "guess" the value here — if it's invalid, it should be
	// handled as an internal error at the boundary.
	ErrorKind() string
}

// TargetedError represents an error that can name the field or parameter it
// is about.
//
// While the kind answers "what class of failure is this?", the target answers
// "which input caused it?". For a missing-argument failure the target is the
// parameter name; for a field-level check it is the field path.
//
// Having a separate interface lets code gracefully degrade: if an error does
// not provide a target, the caller simply omits it from the response.
type TargetedError interface {
	error

	// ErrorTarget returns the offending field or parameter name.
	//
	// The returned value MAY be empty if the error is not about a specific
	// input. Callers should be prepared to handle the empty case.
	ErrorTarget() string
}
