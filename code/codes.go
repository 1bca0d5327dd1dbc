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

package code

// Client-input error codes
//
// These codes cover everything the caller can fix by changing the request.
const (
	// BadRequest indicates that the request was malformed, carried an
	// invalid or missing argument, or failed an upstream validation check.
	// This is the broadest 400-class code; use ValidationFailed when a
	// structured per-field error list accompanies the response.
	//
	// Mapped to HTTP 400.
	BadRequest Code = "BAD_REQUEST"

	// ValidationFailed indicates that model binding produced one or more
	// field-level validation errors. Responses carrying this code always
	// include a validationErrors list.
	//
	// Mapped to HTTP 400.
	ValidationFailed Code = "VALIDATION_FAILED"
)

// Authentication / authorization error codes
const (
	// Unauthorized indicates that the caller must authenticate before the
	// request can be considered at all.
	//
	// Mapped to HTTP 401.
	Unauthorized Code = "UNAUTHORIZED"

	// Forbidden indicates that the caller is authenticated but is not
	// allowed to perform the target operation.
	//
	// Mapped to HTTP 403.
	Forbidden Code = "FORBIDDEN"
)

// Resource / state error codes
const (
	// NotFound indicates that the requested entity does not exist in the
	// current domain scope.
	//
	// Mapped to HTTP 404.
	NotFound Code = "NOT_FOUND"

	// Conflict indicates a domain-state conflict: the operation is not valid
	// for the resource's current state, or a concurrent update won.
	//
	// Mapped to HTTP 409.
	Conflict Code = "CONFLICT"
)

// Server-side error codes
const (
	// NotImplemented indicates that the operation exists in the API surface
	// but has no implementation behind it.
	//
	// Mapped to HTTP 501.
	NotImplemented Code = "NOT_IMPLEMENTED"

	// ServiceUnavailable indicates that a required downstream dependency
	// failed and the operation could not complete.
	//
	// Mapped to HTTP 503.
	ServiceUnavailable Code = "SERVICE_UNAVAILABLE"

	// GeneralError indicates a failure that is neither the server's fault
	// nor classifiable as client input, most notably a request the caller
	// abandoned mid-flight.
	//
	// Mapped to HTTP 499 (non-standard "client closed request").
	GeneralError Code = "GENERAL_ERROR"

	// InternalError indicates an internal, non-classified failure. This is
	// the fallback for anything unrecognized; internal details are never
	// attached unless diagnostic mode is explicitly enabled.
	//
	// Mapped to HTTP 500.
	InternalError Code = "INTERNAL_ERROR"
)
