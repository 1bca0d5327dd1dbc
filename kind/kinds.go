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

package kind

// Client-input failure kinds
//
// These kinds describe failures caused by the caller's input. Raised by the
// service's own argument checks or by the binding layer.
const (
	// InvalidArgument indicates that a supplied value violates a structural
	// or semantic constraint checked by the service's own code.
	// Because the message is authored inside the same codebase, it is
	// considered safe to surface verbatim.
	//
	// Maps to HTTP 400 / BAD_REQUEST with the error's own message.
	InvalidArgument Kind = "invalid_argument"

	// MissingArgument indicates that a required value, field, or parameter
	// was absent. The offending parameter name is carried on the error and
	// is the only part of it exposed to external callers.
	//
	// Maps to HTTP 400 / BAD_REQUEST naming the parameter.
	MissingArgument Kind = "missing_argument"

	// Malformed indicates that the request body or the HTTP request itself
	// could not be parsed at all (broken JSON, truncated payload, oversized
	// body). The parse error text never reaches the client.
	//
	// Maps to HTTP 400 / BAD_REQUEST with a fixed safe message.
	Malformed Kind = "malformed"

	// Validation indicates a validation failure reported by an upstream
	// library. Upstream text crosses a trust boundary and is replaced by a
	// fixed safe message on the wire.
	//
	// Maps to HTTP 400 / BAD_REQUEST with a fixed safe message.
	Validation Kind = "validation"
)

// State / conflict kinds
const (
	// InvalidOperation indicates the operation is not valid for the current
	// state of the target resource (e.g. cancelling an already-shipped
	// order). The message is authored locally and surfaces verbatim.
	//
	// Maps to HTTP 409 / CONFLICT with the error's own message.
	InvalidOperation Kind = "invalid_operation"

	// Concurrency indicates an optimistic-concurrency conflict reported by
	// an upstream library (version mismatch, concurrent update).
	//
	// Maps to HTTP 409 / CONFLICT with a fixed safe message.
	Concurrency Kind = "concurrency"

	// NotFound indicates that the requested entity does not exist in the
	// current domain scope, whether detected locally or upstream.
	//
	// Maps to HTTP 404 / NOT_FOUND with a fixed safe message.
	NotFound Kind = "not_found"
)

// Authentication / authorization kinds
//
// HTTP distinguishes 401 (authenticate first) from 403 (authenticated but
// not allowed); these kinds preserve that distinction.
const (
	// Unauthenticated indicates the caller's identity could not be
	// established. Used by the auth failure shaper for challenges.
	//
	// Maps to HTTP 401 / UNAUTHORIZED with a fixed safe message.
	Unauthenticated Kind = "unauthenticated"

	// AccessDenied indicates that the service's own authorization check
	// rejected an authenticated caller.
	//
	// Maps to HTTP 403 / FORBIDDEN with a fixed safe message.
	AccessDenied Kind = "access_denied"

	// Security indicates a security failure reported by an upstream
	// library. Its internal text never reaches the client.
	//
	// Maps to HTTP 403 / FORBIDDEN with a fixed safe message.
	Security Kind = "security"
)

// Operational kinds
const (
	// Dependency indicates that a required downstream dependency failed and
	// the operation could not complete.
	//
	// Maps to HTTP 503 / SERVICE_UNAVAILABLE with a fixed safe message.
	Dependency Kind = "dependency"

	// NotImplemented indicates that the requested operation exists in the
	// API surface but has no implementation behind it.
	//
	// Maps to HTTP 501 / NOT_IMPLEMENTED with a fixed safe message.
	NotImplemented Kind = "not_implemented"

	// Canceled indicates that the caller abandoned the request while it was
	// in flight. Context cancellation maps here automatically.
	//
	// Maps to HTTP 499 (nginx-style "client closed request") / GENERAL_ERROR.
	Canceled Kind = "canceled"

	// Internal indicates an internal, non-classified failure. This is the
	// fallback for anything the mapper does not recognize; its details are
	// never exposed unless diagnostic mode is explicitly enabled.
	//
	// Maps to HTTP 500 / INTERNAL_ERROR with a fixed safe message.
	Internal Kind = "internal"
)
