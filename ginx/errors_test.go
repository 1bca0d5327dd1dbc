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

package ginx

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"

	"dirpx.dev/drest"
	"dirpx.dev/drest/code"
	"dirpx.dev/drest/envelope"
	"dirpx.dev/drest/kind"
	"dirpx.dev/drest/mapper"
)

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) envelope.ErrorResponse {
	t.Helper()
	var resp envelope.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestErrorHandler_NotFound(t *testing.T) {
	r := gin.New()
	r.Use(Correlation(CorrelationConfig{Generate: true}))
	r.Use(ErrorHandler(ErrorHandlerConfig{}))
	r.GET("/orders/42", func(c *gin.Context) {
		Fail(c, drest.E(kind.NotFound, "order 42 is gone"))
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders/42", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	resp := decodeError(t, rec)
	assert.Equal(t, code.NotFound, resp.Error.Code)
	assert.Equal(t, "The requested resource was not found.", resp.Error.Message)
	assert.NotEmpty(t, resp.CorrelationID)
	assert.Empty(t, resp.Error.Details)
}

func TestErrorHandler_PanicBecomesInternalError(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	r := gin.New()
	r.Use(ErrorHandler(ErrorHandlerConfig{Logger: &logger}))
	r.GET("/boom", func(*gin.Context) { panic("unexpected state") })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	resp := decodeError(t, rec)
	assert.Equal(t, code.InternalError, resp.Error.Code)
	assert.Equal(t, mapper.MsgInternal, resp.Error.Message)
	assert.Contains(t, buf.String(), "unexpected state")
}

func TestErrorHandler_PartialWriteGuard(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	r := gin.New()
	r.Use(ErrorHandler(ErrorHandlerConfig{Logger: &logger}))
	r.GET("/stream", func(c *gin.Context) {
		c.String(http.StatusOK, "partial ")
		panic(errors.New("stream source failed"))
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/stream", nil))

	// already-sent status and body are preserved, no envelope is appended
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "partial ", rec.Body.String())

	// the original error is still logged at error level
	assert.Contains(t, buf.String(), "stream source failed")
	assert.Contains(t, buf.String(), `"level":"error"`)
}

func TestErrorHandler_DetailsOnlyOutsideProduction(t *testing.T) {
	run := func(showDetails, production bool) envelope.ErrorResponse {
		r := gin.New()
		r.Use(ErrorHandler(ErrorHandlerConfig{ShowDetails: showDetails, Production: production}))
		r.GET("/fail", func(c *gin.Context) {
			Fail(c, errors.New("pq: connection refused"))
		})
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fail", nil))
		return decodeError(t, rec)
	}

	assert.Equal(t, "pq: connection refused", run(true, false).Error.Details)
	assert.Empty(t, run(true, true).Error.Details, "production must never leak details")
	assert.Empty(t, run(false, false).Error.Details, "details are opt-in")
}

func TestErrorHandler_TraceIncludedWhenEnabled(t *testing.T) {
	traceID := trace.TraceID{0xaa, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}
	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID: traceID,
		SpanID:  trace.SpanID{1, 2, 3, 4, 5, 6, 7, 8},
	})

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Request = c.Request.WithContext(trace.ContextWithSpanContext(c.Request.Context(), sc))
	})
	r.Use(ErrorHandler(ErrorHandlerConfig{IncludeTrace: true}))
	r.GET("/fail", func(c *gin.Context) {
		Fail(c, drest.E(kind.Dependency, "billing down"))
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fail", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, traceID.String(), decodeError(t, rec).TraceID)
}

func TestErrorHandler_CancellationMapsToClientClosed(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler(ErrorHandlerConfig{}))
	r.GET("/slow", func(c *gin.Context) {
		Fail(c, context.Canceled)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/slow", nil))

	assert.Equal(t, mapper.StatusClientClosedRequest, rec.Code)
	assert.Equal(t, code.GeneralError, decodeError(t, rec).Error.Code)
}
