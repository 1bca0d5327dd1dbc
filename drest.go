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

package drest

import (
	"fmt"

	"dirpx.dev/drest/kind"
)

// Error is the canonical rich error type for drest.
//
// It carries:
//   - Kind: high-level, normalized failure classification (required);
//   - Message: human-oriented description (what went wrong);
//   - Param: optional name of the offending field or parameter;
//   - Cause: wrapped underlying error for debugging / unwrapping.
//
// The Kind is the single value the transport mappers dispatch on; whether
// Message is safe to surface to external callers is a property of the Kind
// (see the mapper package), never of the error instance itself.
//
// All mutation helpers (WithX) return a shallow copy, so Error instances
// can be safely shared and modified in a functional style.
type Error struct {
	// Kind is the primary classification of the error, e.g. kind.NotFound,
	// kind.Concurrency. Must be a normalized kind from drest/kind.
	Kind kind.Kind

	// Message is a human-readable explanation. For pass-through kinds this is
	// what ends up in the "message" field of the HTTP error response; for
	// trust-boundary kinds it stays in logs only.
	Message string

	// Param optionally names the field or parameter that caused the failure,
	// e.g. "userId" or "pageSize". Surfaces as the error target on the wire.
	Param string

	// Cause holds the wrapped underlying error (if any). This is used for
	// errors.Is / errors.As and for debugging in lower layers.
	Cause error
}

// E is a convenience constructor for Error.
//
// Usage:
//
//	return drest.E(kind.Conflict, "order already shipped",
//	    drest.WithParamOption("orderId"),
//	)
//
// It always returns a *new* Error and applies all provided options in order.
func E(k kind.Kind, msg string, opts ...Option) *Error {
	e := &Error{Kind: k, Message: msg}
	for _, opt := range opts {
		e = opt(e)
	}
	return e
}

// Missing constructs a missing-required-argument error for the named
// parameter. The parameter name is the only part of this error that may be
// shown to external callers.
func Missing(param string) *Error {
	return &Error{
		Kind:    kind.MissingArgument,
		Message: fmt.Sprintf("required parameter %q was not provided", param),
		Param:   param,
	}
}

// Error implements the built-in error interface.
//
// The format is:
//
//	<kind>: <message>
//
// or, when Param is present:
//
//	<kind>[<param>]: <message>
//
// This makes the error both human- and machine-scannable in logs.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Param != "" {
		return fmt.Sprintf("%s[%s]: %s", e.Kind, e.Param, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying cause, enabling errors.Is / errors.As chains.
func (e *Error) Unwrap() error { return e.Cause }

// ErrorKind returns the machine-readable classification as a string.
// This satisfies apis.KindedError without importing the apis package.
func (e *Error) ErrorKind() string { return string(e.Kind) }

// ErrorTarget returns the offending field/parameter name, if any.
// This satisfies apis.TargetedError.
func (e *Error) ErrorTarget() string { return e.Param }

// WithKind returns a shallow copy of e with the given Kind set.
// The original error is not modified.
func (e *Error) WithKind(k kind.Kind) *Error {
	cp := *e
	cp.Kind = k
	return &cp
}

// WithMessage returns a shallow copy of e with a replaced human message.
// Useful when you want to keep the Kind/Param but present the message
// in a different language or context.
func (e *Error) WithMessage(msg string) *Error {
	cp := *e
	cp.Message = msg
	return &cp
}

// WithParam returns a shallow copy of e with the offending parameter name set.
func (e *Error) WithParam(p string) *Error {
	cp := *e
	cp.Param = p
	return &cp
}

// WithCause returns a shallow copy of e with the given underlying cause attached.
// If err is nil, the original error is returned unchanged.
func (e *Error) WithCause(err error) *Error {
	if err == nil {
		return e
	}
	cp := *e
	cp.Cause = err
	return &cp
}
