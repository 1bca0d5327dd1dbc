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
	"fmt"
	"io"
	"net/http"
	"sync"
	"testing"

	"github.com/go-playground/validator/v10"

	"dirpx.dev/drest"
	"dirpx.dev/drest/apis"
	"dirpx.dev/drest/code"
	"dirpx.dev/drest/kind"
)

func mustNew(t *testing.T, opts ...Option) apis.Mapper {
	t.Helper()
	m, err := New(opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return m
}

func syntaxErr(t *testing.T) error {
	t.Helper()
	var v map[string]any
	err := json.Unmarshal([]byte("{"), &v)
	var se *json.SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("expected *json.SyntaxError, got %T", err)
	}
	return err
}

func typeErr(t *testing.T) error {
	t.Helper()
	var v struct {
		A int `json:"a"`
	}
	err := json.Unmarshal([]byte(`{"a":"x"}`), &v)
	var te *json.UnmarshalTypeError
	if !errors.As(err, &te) {
		t.Fatalf("expected *json.UnmarshalTypeError, got %T", err)
	}
	return err
}

func validationErrs(t *testing.T) error {
	t.Helper()
	type login struct {
		Email    string `validate:"required,email"`
		Password string `validate:"required,min=8"`
	}
	err := validator.New().Struct(login{})
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected validator.ValidationErrors, got %T", err)
	}
	return err
}

func TestMap_Table(t *testing.T) {
	m := mustNew(t)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   code.Code
		wantMsg    string
	}{
		{
			"invalid argument passes its message through",
			drest.E(kind.InvalidArgument, "page size must be positive"),
			http.StatusBadRequest, code.BadRequest, "page size must be positive",
		},
		{
			"missing argument surfaces only the parameter name",
			drest.Missing("tenant_id"),
			http.StatusBadRequest, code.BadRequest, "The required parameter 'tenant_id' was not provided.",
		},
		{
			"missing argument without a name",
			drest.E(kind.MissingArgument, "secret internal text"),
			http.StatusBadRequest, code.BadRequest, msgMissingParamUnknown,
		},
		{
			"json syntax error",
			syntaxErr(t),
			http.StatusBadRequest, code.BadRequest, MsgMalformed,
		},
		{
			"json type error",
			typeErr(t),
			http.StatusBadRequest, code.BadRequest, MsgMalformed,
		},
		{
			"truncated body",
			fmt.Errorf("reading body: %w", io.ErrUnexpectedEOF),
			http.StatusBadRequest, code.BadRequest, MsgMalformed,
		},
		{
			"empty body",
			io.EOF,
			http.StatusBadRequest, code.BadRequest, MsgMalformed,
		},
		{
			"oversized body",
			&http.MaxBytesError{Limit: 64},
			http.StatusBadRequest, code.BadRequest, MsgMalformed,
		},
		{
			"framework validation failure",
			validationErrs(t),
			http.StatusBadRequest, code.BadRequest, MsgValidationFailed,
		},
		{
			"upstream validation kind never echoes internal text",
			drest.E(kind.Validation, "column users.email violates constraint"),
			http.StatusBadRequest, code.BadRequest, MsgValidationFailed,
		},
		{
			"invalid operation passes its message through",
			drest.E(kind.InvalidOperation, "order already shipped"),
			http.StatusConflict, code.Conflict, "order already shipped",
		},
		{
			"concurrency conflict uses the fixed message",
			drest.E(kind.Concurrency, "version 5 != 7 on row 42"),
			http.StatusConflict, code.Conflict, MsgConflict,
		},
		{
			"not found",
			drest.E(kind.NotFound, "order 42 is gone"),
			http.StatusNotFound, code.NotFound, "The requested resource was not found.",
		},
		{
			"unauthenticated",
			drest.E(kind.Unauthenticated, "token expired"),
			http.StatusUnauthorized, code.Unauthorized, MsgAuthenticationRequired,
		},
		{
			"access denied",
			drest.E(kind.AccessDenied, "user 7 lacks role admin"),
			http.StatusForbidden, code.Forbidden, MsgPermissionDenied,
		},
		{
			"security kind",
			drest.E(kind.Security, "signature mismatch"),
			http.StatusForbidden, code.Forbidden, MsgPermissionDenied,
		},
		{
			"dependency failure",
			drest.E(kind.Dependency, "billing backend timed out"),
			http.StatusServiceUnavailable, code.ServiceUnavailable, MsgUnavailable,
		},
		{
			"not implemented",
			drest.E(kind.NotImplemented, "bulk export"),
			http.StatusNotImplemented, code.NotImplemented, MsgNotImplemented,
		},
		{
			"context canceled",
			context.Canceled,
			StatusClientClosedRequest, code.GeneralError, MsgCanceled,
		},
		{
			"wrapped cancellation",
			fmt.Errorf("query aborted: %w", context.Canceled),
			StatusClientClosedRequest, code.GeneralError, MsgCanceled,
		},
		{
			"deadline exceeded",
			context.DeadlineExceeded,
			StatusClientClosedRequest, code.GeneralError, MsgCanceled,
		},
		{
			"anything else",
			errors.New("boom"),
			http.StatusInternalServerError, code.InternalError, MsgInternal,
		},
		{
			"tag wins over wrapped cancellation",
			drest.E(kind.NotFound, "order 42", drest.WithCauseOption(context.Canceled)),
			http.StatusNotFound, code.NotFound, MsgNotFound,
		},
		{
			"unknown tag lands on the last row",
			drest.E(kind.MustParse("tea_brewing"), "short and stout"),
			http.StatusInternalServerError, code.InternalError, MsgInternal,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := m.Map(tt.err)
			if p.HTTPStatus != tt.wantStatus {
				t.Fatalf("status = %d, want %d", p.HTTPStatus, tt.wantStatus)
			}
			if p.Code != tt.wantCode {
				t.Fatalf("code = %q, want %q", p.Code, tt.wantCode)
			}
			if p.Message != tt.wantMsg {
				t.Fatalf("message = %q, want %q", p.Message, tt.wantMsg)
			}
		})
	}
}

func TestMap_NilPanics(t *testing.T) {
	m := mustNew(t)
	defer func() {
		if recover() == nil {
			t.Fatal("Map(nil) must panic")
		}
	}()
	m.Map(nil)
}

func TestExplain_NilPanics(t *testing.T) {
	m := mustNew(t)
	defer func() {
		if recover() == nil {
			t.Fatal("Explain(nil) must panic")
		}
	}()
	m.Explain(nil)
}

func TestMap_Overrides(t *testing.T) {
	m := mustNew(t,
		WithStatusOverride(kind.Canceled, http.StatusRequestTimeout),
		WithCodeOverride(kind.Dependency, code.MustParse("UPSTREAM_DOWN")),
		WithMessageOverride(kind.InvalidOperation, "The operation is not allowed in the current state."),
	)

	if p := m.Map(context.Canceled); p.HTTPStatus != http.StatusRequestTimeout {
		t.Fatalf("canceled status = %d, want 408", p.HTTPStatus)
	}
	if p := m.Map(drest.E(kind.Dependency, "x")); p.Code != "UPSTREAM_DOWN" {
		t.Fatalf("dependency code = %q, want UPSTREAM_DOWN", p.Code)
	}

	// message override disables pass-through
	p := m.Map(drest.E(kind.InvalidOperation, "internal detail"))
	if p.Message != "The operation is not allowed in the current state." {
		t.Fatalf("message = %q, override not applied", p.Message)
	}
	if p.HTTPStatus != http.StatusConflict {
		t.Fatalf("status = %d, override must not touch it", p.HTTPStatus)
	}
}

func TestNew_RejectsInvalidOverrides(t *testing.T) {
	if _, err := New(WithStatusOverride(kind.Kind("Not Valid"), 400)); err == nil {
		t.Fatal("invalid kind must fail")
	}
	if _, err := New(WithStatusOverride(kind.NotFound, 42)); err == nil {
		t.Fatal("out-of-range status must fail")
	}
	if _, err := New(WithCodeOverride(kind.NotFound, code.Code("lower_case"))); err == nil {
		t.Fatal("invalid code must fail")
	}
	if _, err := New(WithMessageOverride(kind.NotFound, "")); err == nil {
		t.Fatal("empty message must fail")
	}
}

func TestAuthStatusFor(t *testing.T) {
	if got := AuthStatusFor(true); got != http.StatusForbidden {
		t.Fatalf("authenticated = %d, want 403", got)
	}
	if got := AuthStatusFor(false); got != http.StatusUnauthorized {
		t.Fatalf("unauthenticated = %d, want 401", got)
	}
}

func TestMap_ConcurrentUse(t *testing.T) {
	m := mustNew(t)
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				if p := m.Map(drest.E(kind.NotFound, "x")); p.HTTPStatus != http.StatusNotFound {
					t.Errorf("status = %d, want 404", p.HTTPStatus)
					return
				}
				if p := m.Map(errors.New("boom")); p.Code != code.InternalError {
					t.Errorf("code = %q, want INTERNAL_ERROR", p.Code)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestDefault_SharedInstance(t *testing.T) {
	if Default() != Default() {
		t.Fatal("Default must return the same snapshot")
	}
	if p := Default().Map(errors.New("boom")); p.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", p.HTTPStatus)
	}
}
