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

// Package grpcx projects drest error classification onto gRPC.
//
// Services that expose both REST and gRPC surfaces share one mapper: the
// interceptor here resolves the same (status, code, message) projection as
// the HTTP middleware and translates the HTTP status to the canonical gRPC
// code, so a given failure classifies identically on both transports.
package grpcx

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gcodes "google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/durationpb"

	"dirpx.dev/drest/apis"
	"dirpx.dev/drest/mapper"
)

// Domain is the error-info domain attached to every mapped gRPC error.
const Domain = "drest.dirpx.dev"

// Extras holds optional metadata embedded into the error details.
type Extras struct {
	// CorrelationID links the failure to the logical request.
	CorrelationID string

	// RetryAfter, when positive, attaches a retry hint for the client.
	RetryAfter time.Duration
}

// MetaFn extracts Extras from the request context. It can return an empty
// Extras if nothing is available.
type MetaFn func(ctx context.Context) Extras

// UnaryServerInterceptor maps every handler error through m into a gRPC
// status with structured details: an ErrorInfo carrying the wire code and
// correlation ID, a BadRequest block for targeted errors, and a RetryInfo
// hint when Extras provides one.
//
// Errors that already carry a gRPC status are passed through untouched;
// everything else is classified exactly like on the HTTP surface.
func UnaryServerInterceptor(m apis.Mapper, metaFn MetaFn) grpc.UnaryServerInterceptor {
	if metaFn == nil {
		metaFn = func(context.Context) Extras { return Extras{} }
	}

	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}
		if _, ok := gstatus.FromError(err); ok && gstatus.Code(err) != gcodes.Unknown {
			// Already a status error — the handler made its own choice.
			return nil, err
		}

		p := m.Map(err)
		ex := metaFn(ctx)

		st := gstatus.New(CodeFor(p.HTTPStatus), p.Message)

		infoDetail := &errdetails.ErrorInfo{
			Reason: string(p.Code),
			Domain: Domain,
			Metadata: map[string]string{
				"httpStatus": strconv.Itoa(p.HTTPStatus),
			},
		}
		if ex.CorrelationID != "" {
			infoDetail.Metadata["correlationId"] = ex.CorrelationID
		}

		if with, derr := st.WithDetails(infoDetail); derr == nil {
			st = with
		}

		if target := targetOf(err); target != "" {
			br := &errdetails.BadRequest{FieldViolations: []*errdetails.BadRequest_FieldViolation{
				{Field: target, Description: p.Message},
			}}
			if with, derr := st.WithDetails(br); derr == nil {
				st = with
			}
		}

		if ex.RetryAfter > 0 {
			ri := &errdetails.RetryInfo{RetryDelay: durationpb.New(ex.RetryAfter)}
			if with, derr := st.WithDetails(ri); derr == nil {
				st = with
			}
		}

		return nil, st.Err()
	}
}

// CodeFor translates the mapper's HTTP status to the canonical gRPC code.
func CodeFor(httpStatus int) gcodes.Code {
	switch httpStatus {
	case http.StatusBadRequest:
		return gcodes.InvalidArgument
	case http.StatusUnauthorized:
		return gcodes.Unauthenticated
	case http.StatusForbidden:
		return gcodes.PermissionDenied
	case http.StatusNotFound:
		return gcodes.NotFound
	case http.StatusConflict:
		return gcodes.Aborted
	case mapper.StatusClientClosedRequest, http.StatusRequestTimeout:
		return gcodes.Canceled
	case http.StatusNotImplemented:
		return gcodes.Unimplemented
	case http.StatusServiceUnavailable:
		return gcodes.Unavailable
	default:
		return gcodes.Internal
	}
}

// ExtractErrorInfo pulls the drest ErrorInfo out of a gRPC error, if
// present. Useful in tests and client code.
func ExtractErrorInfo(err error) (*errdetails.ErrorInfo, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		if ei, ok := d.(*errdetails.ErrorInfo); ok && ei.GetDomain() == Domain {
			return ei, true
		}
	}
	return nil, false
}

// targetOf returns the offending field name carried by err, if any.
func targetOf(err error) string {
	var te apis.TargetedError
	if errors.As(err, &te) {
		return te.ErrorTarget()
	}
	return ""
}
