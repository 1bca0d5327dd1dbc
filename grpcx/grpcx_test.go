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

package grpcx

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gcodes "google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"

	"dirpx.dev/drest"
	"dirpx.dev/drest/kind"
	"dirpx.dev/drest/mapper"
)

func invoke(t *testing.T, metaFn MetaFn, handlerErr error) error {
	t.Helper()
	interceptor := UnaryServerInterceptor(mapper.Default(), metaFn)
	_, err := interceptor(context.Background(), nil,
		&grpc.UnaryServerInfo{FullMethod: "/orders.Orders/Get"},
		func(context.Context, any) (any, error) { return nil, handlerErr },
	)
	return err
}

func TestInterceptor_Success(t *testing.T) {
	interceptor := UnaryServerInterceptor(mapper.Default(), nil)
	resp, err := interceptor(context.Background(), nil,
		&grpc.UnaryServerInfo{FullMethod: "/orders.Orders/Get"},
		func(context.Context, any) (any, error) { return "payload", nil },
	)
	require.NoError(t, err)
	assert.Equal(t, "payload", resp)
}

func TestInterceptor_MapsKindedError(t *testing.T) {
	err := invoke(t, func(context.Context) Extras {
		return Extras{CorrelationID: "abc-123"}
	}, drest.E(kind.NotFound, "order 42 is gone"))

	st, ok := gstatus.FromError(err)
	require.True(t, ok)
	assert.Equal(t, gcodes.NotFound, st.Code())
	assert.Equal(t, "The requested resource was not found.", st.Message())

	ei, ok := ExtractErrorInfo(err)
	require.True(t, ok)
	assert.Equal(t, "NOT_FOUND", ei.GetReason())
	assert.Equal(t, Domain, ei.GetDomain())
	assert.Equal(t, "abc-123", ei.GetMetadata()["correlationId"])
	assert.Equal(t, "404", ei.GetMetadata()["httpStatus"])
}

func TestInterceptor_TargetedErrorGetsFieldViolation(t *testing.T) {
	err := invoke(t, nil, drest.Missing("tenant_id"))

	st, ok := gstatus.FromError(err)
	require.True(t, ok)
	assert.Equal(t, gcodes.InvalidArgument, st.Code())

	var br *errdetails.BadRequest
	for _, d := range st.Details() {
		if b, ok := d.(*errdetails.BadRequest); ok {
			br = b
		}
	}
	require.NotNil(t, br, "targeted errors must carry a BadRequest detail")
	require.Len(t, br.GetFieldViolations(), 1)
	assert.Equal(t, "tenant_id", br.GetFieldViolations()[0].GetField())
}

func TestInterceptor_RetryHint(t *testing.T) {
	err := invoke(t, func(context.Context) Extras {
		return Extras{RetryAfter: 2 * time.Second}
	}, drest.E(kind.Dependency, "billing down"))

	st, _ := gstatus.FromError(err)
	assert.Equal(t, gcodes.Unavailable, st.Code())

	var ri *errdetails.RetryInfo
	for _, d := range st.Details() {
		if r, ok := d.(*errdetails.RetryInfo); ok {
			ri = r
		}
	}
	require.NotNil(t, ri)
	assert.Equal(t, int64(2), ri.GetRetryDelay().GetSeconds())
}

func TestInterceptor_PassesStatusErrorsThrough(t *testing.T) {
	orig := gstatus.Error(gcodes.AlreadyExists, "duplicate")
	err := invoke(t, nil, orig)

	assert.Equal(t, orig, err) //nolint:testifylint // identity, not equality
	_, ok := ExtractErrorInfo(err)
	assert.False(t, ok)
}

func TestInterceptor_UnknownErrorIsInternal(t *testing.T) {
	err := invoke(t, nil, errors.New("boom"))

	st, _ := gstatus.FromError(err)
	assert.Equal(t, gcodes.Internal, st.Code())
	assert.Equal(t, mapper.MsgInternal, st.Message())
}

func TestCodeFor_Table(t *testing.T) {
	tests := []struct {
		status int
		want   gcodes.Code
	}{
		{http.StatusBadRequest, gcodes.InvalidArgument},
		{http.StatusUnauthorized, gcodes.Unauthenticated},
		{http.StatusForbidden, gcodes.PermissionDenied},
		{http.StatusNotFound, gcodes.NotFound},
		{http.StatusConflict, gcodes.Aborted},
		{mapper.StatusClientClosedRequest, gcodes.Canceled},
		{http.StatusRequestTimeout, gcodes.Canceled},
		{http.StatusNotImplemented, gcodes.Unimplemented},
		{http.StatusServiceUnavailable, gcodes.Unavailable},
		{http.StatusInternalServerError, gcodes.Internal},
		{http.StatusBadGateway, gcodes.Internal},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CodeFor(tt.status), "status %d", tt.status)
	}
}
