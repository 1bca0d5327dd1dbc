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

package mapper

import (
	"net/http"

	"dirpx.dev/drest/code"
	"dirpx.dev/drest/kind"
)

// StatusClientClosedRequest is the non-standard nginx status for "client
// closed request". It is the default for kind.Canceled; deployments behind
// infrastructure that rejects non-standard codes can override it to 408.
const StatusClientClosedRequest = 499

// Fixed safe messages. These are the only texts a trust-boundary kind is
// allowed to surface to external callers; internal error text stays in logs.
const (
	// MsgMalformed is returned for request bodies that cannot be parsed.
	MsgMalformed = "The request body could not be parsed."

	// MsgValidationFailed is returned for model-validation failures, both by
	// the mapper (kind.Validation) and by the ginx validation shaper.
	MsgValidationFailed = "One or more validation errors occurred."

	// MsgConflict is returned for concurrency conflicts.
	MsgConflict = "The request conflicts with the current state of the resource."

	// MsgNotFound is returned for missing resources.
	MsgNotFound = "The requested resource was not found."

	// MsgAuthenticationRequired is returned for unauthenticated callers.
	MsgAuthenticationRequired = "Authentication is required."

	// MsgPermissionDenied is returned for authenticated but disallowed callers.
	MsgPermissionDenied = "You do not have permission to access this resource."

	// MsgUnavailable is returned when a required dependency failed.
	MsgUnavailable = "A required dependency is currently unavailable."

	// MsgNotImplemented is returned for unimplemented operations.
	MsgNotImplemented = "The requested operation is not implemented."

	// MsgCanceled is returned when the operation was cancelled.
	MsgCanceled = "The operation was cancelled."

	// MsgInternal is the generic last-row message. Full detail is never
	// exposed unless diagnostic mode is explicitly enabled outside production.
	MsgInternal = "An unexpected error occurred while processing the request."

	// msgMissingParamFmt surfaces only the parameter name of a
	// missing-argument failure, never the raw error text.
	msgMissingParamFmt = "The required parameter '%s' was not provided."

	// msgMissingParamUnknown is used when a missing-argument failure carries
	// no parameter name at all.
	msgMissingParamUnknown = "A required parameter was not provided."
)

// policy selects how a rule produces its external message.
type policy int

const (
	// policyFixed emits the rule's constant safe string.
	policyFixed policy = iota

	// policyPassthrough emits the error's own message. Reserved for kinds
	// whose message text is authored by the same codebase.
	policyPassthrough

	// policyParam emits only the offending parameter name.
	policyParam
)

// String returns the policy name used by Explain.
func (p policy) String() string {
	switch p {
	case policyPassthrough:
		return "passthrough"
	case policyParam:
		return "param"
	default:
		return "fixed"
	}
}

// rule is one row of the classification table: the transport projection for
// a single kind, plus provenance markers for Explain.
type rule struct {
	status  int
	code    code.Code
	policy  policy
	message string // constant text; meaningful for policyFixed only

	// provenance, set when New layers overrides on the defaults
	statusSrc  string
	codeSrc    string
	messageSrc string
}

// defaultRules defines the built-in classification table, one row per kind.
//
// The message column encodes the trust boundary: pass-through rows surface
// the error's own text because that text is authored by the same codebase;
// every kind that can carry upstream or internal text gets a fixed string.
var defaultRules = map[kind.Kind]rule{
	// 400 class — client input.
	kind.InvalidArgument: {status: http.StatusBadRequest, code: code.BadRequest, policy: policyPassthrough},
	kind.MissingArgument: {status: http.StatusBadRequest, code: code.BadRequest, policy: policyParam},
	kind.Malformed:       {status: http.StatusBadRequest, code: code.BadRequest, policy: policyFixed, message: MsgMalformed},
	kind.Validation:      {status: http.StatusBadRequest, code: code.BadRequest, policy: policyFixed, message: MsgValidationFailed},

	// 409 — state conflicts.
	kind.InvalidOperation: {status: http.StatusConflict, code: code.Conflict, policy: policyPassthrough},
	kind.Concurrency:      {status: http.StatusConflict, code: code.Conflict, policy: policyFixed, message: MsgConflict},

	// 404 — missing resources.
	kind.NotFound: {status: http.StatusNotFound, code: code.NotFound, policy: policyFixed, message: MsgNotFound},

	// AuthN / AuthZ.
	kind.Unauthenticated: {status: http.StatusUnauthorized, code: code.Unauthorized, policy: policyFixed, message: MsgAuthenticationRequired},
	kind.AccessDenied:    {status: http.StatusForbidden, code: code.Forbidden, policy: policyFixed, message: MsgPermissionDenied},
	kind.Security:        {status: http.StatusForbidden, code: code.Forbidden, policy: policyFixed, message: MsgPermissionDenied},

	// Availability and lifecycle.
	kind.Dependency:     {status: http.StatusServiceUnavailable, code: code.ServiceUnavailable, policy: policyFixed, message: MsgUnavailable},
	kind.NotImplemented: {status: http.StatusNotImplemented, code: code.NotImplemented, policy: policyFixed, message: MsgNotImplemented},
	kind.Canceled:       {status: StatusClientClosedRequest, code: code.GeneralError, policy: policyFixed, message: MsgCanceled},

	// The explicit last row. Everything unrecognized lands here.
	kind.Internal: {status: http.StatusInternalServerError, code: code.InternalError, policy: policyFixed, message: MsgInternal},
}
