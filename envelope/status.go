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
	"bytes"
	"encoding"
	"errors"
	"net/http"

	"dirpx.dev/drest/code"
)

// Status is the envelope-level outcome discriminator.
//
// It serializes as a camelCase string ("success", "notFound", ...) — never as
// an integer — because clients switch on these values and renumbering an enum
// must not be able to break them.
type Status string

const (
	// StatusSuccess marks a completed operation with an optional payload.
	StatusSuccess Status = "success"

	// StatusFailed marks a generic client-side failure (bad request class)
	// that is not a structured validation failure.
	StatusFailed Status = "failed"

	// StatusUnauthorized marks a missing-authentication outcome.
	StatusUnauthorized Status = "unauthorized"

	// StatusForbidden marks an authenticated-but-not-allowed outcome.
	StatusForbidden Status = "forbidden"

	// StatusNotFound marks a missing-resource outcome.
	StatusNotFound Status = "notFound"

	// StatusConflict marks a domain-state conflict outcome.
	StatusConflict Status = "conflict"

	// StatusValidationFailed marks a failure with a per-field error list.
	StatusValidationFailed Status = "validationFailed"

	// StatusError marks a server-side or unclassified failure.
	StatusError Status = "error"
)

// ErrStatusInvalid is returned when a value is not a member of the closed
// status set.
var ErrStatusInvalid = errors.New("drest: invalid result status")

// statuses is the closed membership set. Unlike codes and kinds there is no
// format rule worth validating — the set is the contract.
var statuses = map[Status]struct{}{
	StatusSuccess:          {},
	StatusFailed:           {},
	StatusUnauthorized:     {},
	StatusForbidden:        {},
	StatusNotFound:         {},
	StatusConflict:         {},
	StatusValidationFailed: {},
	StatusError:            {},
}

// Ensure Status implements encoding.TextMarshaler / encoding.TextUnmarshaler.
var (
	_ encoding.TextMarshaler   = (*Status)(nil)
	_ encoding.TextUnmarshaler = (*Status)(nil)
)

// Validate checks whether s is a member of the closed status set.
func Validate(s Status) error {
	if _, ok := statuses[s]; !ok {
		return ErrStatusInvalid
	}
	return nil
}

// String returns the canonical wire representation of the status.
func (s Status) String() string { return string(s) }

// MarshalText implements encoding.TextMarshaler. It refuses to emit values
// outside the closed set.
func (s Status) MarshalText() ([]byte, error) {
	if err := Validate(s); err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Status) UnmarshalText(text []byte) error {
	v := Status(bytes.TrimSpace(text))
	if err := Validate(v); err != nil {
		return err
	}
	*s = v
	return nil
}

// StatusOf derives the envelope status for a resolved transport projection.
//
// The wire code disambiguates within the 400 class: a VALIDATION_FAILED code
// yields StatusValidationFailed, any other 400 yields StatusFailed. 5xx and
// the non-standard 499 both collapse to StatusError.
func StatusOf(httpStatus int, c code.Code) Status {
	switch httpStatus {
	case http.StatusUnauthorized:
		return StatusUnauthorized
	case http.StatusForbidden:
		return StatusForbidden
	case http.StatusNotFound:
		return StatusNotFound
	case http.StatusConflict:
		return StatusConflict
	case http.StatusBadRequest:
		if c == code.ValidationFailed {
			return StatusValidationFailed
		}
		return StatusFailed
	}
	if httpStatus >= 200 && httpStatus < 300 {
		return StatusSuccess
	}
	return StatusError
}
