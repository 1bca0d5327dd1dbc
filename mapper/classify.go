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
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"

	"dirpx.dev/drest"
	"dirpx.dev/drest/apis"
	"dirpx.dev/drest/kind"
)

// match is the result of classifying one error value: the resolved kind,
// the tier that produced it (for Explain), and the message-policy inputs.
type match struct {
	kind   kind.Kind
	source string // "tagged", "validator", "body", "context", "fallback"
	msg    string // candidate pass-through message
	param  string // offending parameter name, when known
}

// classify resolves an arbitrary non-nil error to a kind, most specific
// first. The order is part of the contract:
//
//  1. kind-tagged errors dispatch on their own tag, even when they wrap one
//     of the lower-tier errors;
//  2. model-validation failures;
//  3. unparseable or oversized request bodies;
//  4. cancellation;
//  5. the explicit last row, kind.Internal.
func classify(err error) match {
	// 1. Kind-tagged errors. The concrete *drest.Error is preferred because
	// it separates the message from the Error() string; any other
	// apis.KindedError falls back to the full error text.
	var de *drest.Error
	if errors.As(err, &de) {
		return match{kind: taggedKind(de.ErrorKind()), source: "tagged", msg: de.Message, param: de.Param}
	}
	var ke apis.KindedError
	if errors.As(err, &ke) {
		m := match{kind: taggedKind(ke.ErrorKind()), source: "tagged", msg: err.Error()}
		var te apis.TargetedError
		if errors.As(err, &te) {
			m.param = te.ErrorTarget()
		}
		return m
	}

	// 2. Framework model validation.
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return match{kind: kind.Validation, source: "validator", msg: err.Error()}
	}

	// 3. Unparseable request bodies: JSON decode failures, truncated reads,
	// and bodies rejected by http.MaxBytesReader.
	var (
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
		sizeErr   *http.MaxBytesError
	)
	switch {
	case errors.As(err, &syntaxErr),
		errors.As(err, &typeErr),
		errors.As(err, &sizeErr),
		errors.Is(err, io.ErrUnexpectedEOF),
		errors.Is(err, io.EOF):
		return match{kind: kind.Malformed, source: "body", msg: err.Error()}
	}

	// 4. Cancellation. A deadline blown server-side still presents to the
	// handler as a cancelled operation.
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return match{kind: kind.Canceled, source: "context", msg: err.Error()}
	}

	// 5. Everything else.
	return match{kind: kind.Internal, source: "fallback", msg: err.Error()}
}

// taggedKind parses a tag carried by a KindedError. A tag outside the closed
// kind set lands on the last row rather than failing classification.
func taggedKind(tag string) kind.Kind {
	k, err := kind.Parse(tag)
	if err != nil {
		return kind.Internal
	}
	return k
}
