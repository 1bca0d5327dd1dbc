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
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/drest/correlation"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type staticProvider struct {
	op correlation.Operation
	ok bool
}

func (p staticProvider) Current(context.Context) (correlation.Operation, bool) { return p.op, p.ok }

func TestCorrelation_HeaderEchoed(t *testing.T) {
	r := gin.New()
	r.Use(Correlation(CorrelationConfig{Generate: true, Echo: true}))

	var seen string
	r.GET("/orders", func(c *gin.Context) {
		seen = CorrelationID(c)
		c.String(http.StatusOK, "ok")
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	req.Header.Set(correlation.Header, "abc-123")
	r.ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", seen)
	assert.Equal(t, "abc-123", rec.Header().Get(correlation.Header))
}

func TestCorrelation_UpstreamWinsAndWarnsOnce(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	r := gin.New()
	r.Use(Correlation(CorrelationConfig{
		Provider: staticProvider{op: correlation.Operation{CorrelationID: "kernel-456"}, ok: true},
		Generate: true,
		Echo:     true,
		Logger:   &logger,
	}))

	var seen string
	r.GET("/orders", func(c *gin.Context) {
		seen = CorrelationID(c)
		c.String(http.StatusOK, "ok")
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	req.Header.Set(correlation.Header, "header-123")
	r.ServeHTTP(rec, req)

	assert.Equal(t, "kernel-456", seen)
	assert.Equal(t, "kernel-456", rec.Header().Get(correlation.Header))

	out := buf.String()
	require.NotEmpty(t, out, "conflict must produce a warning")
	assert.Equal(t, 1, strings.Count(out, "\n"), "exactly one warning entry")
	assert.Contains(t, out, "kernel-456")
	assert.Contains(t, out, "header-123")
	assert.Contains(t, out, "/orders")
	assert.Contains(t, out, http.MethodGet)
}

func TestCorrelation_AgreementDoesNotWarn(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	r := gin.New()
	r.Use(Correlation(CorrelationConfig{
		Provider: staticProvider{op: correlation.Operation{CorrelationID: "abc-123"}, ok: true},
		Logger:   &logger,
	}))
	r.GET("/orders", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	req.Header.Set(correlation.Header, "abc-123")
	r.ServeHTTP(rec, req)

	assert.Empty(t, buf.String())
}

func TestCorrelation_GeneratedIDsDiffer(t *testing.T) {
	r := gin.New()
	r.Use(Correlation(CorrelationConfig{Generate: true, Echo: true}))
	r.GET("/orders", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	serve := func() string {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders", nil))
		return rec.Header().Get(correlation.Header)
	}

	first, second := serve(), serve()
	require.NotEmpty(t, first)
	require.NotEmpty(t, second)
	assert.NotEqual(t, first, second, "independent requests must get distinct IDs")
}

func TestCorrelation_EchoRespectsExistingHeader(t *testing.T) {
	r := gin.New()
	r.Use(Correlation(CorrelationConfig{Generate: true, Echo: true}))
	r.GET("/orders", func(c *gin.Context) {
		c.Header(correlation.Header, "handler-set")
		c.String(http.StatusOK, "ok")
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders", nil))

	assert.Equal(t, "handler-set", rec.Header().Get(correlation.Header))
}

func TestCorrelation_CustomHeaderName(t *testing.T) {
	r := gin.New()
	r.Use(Correlation(CorrelationConfig{Header: "X-Request-Id", Echo: true, Generate: false}))
	var seen string
	r.GET("/orders", func(c *gin.Context) {
		seen = CorrelationID(c)
		c.String(http.StatusOK, "ok")
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	req.Header.Set("X-Request-Id", "rid-1")
	r.ServeHTTP(rec, req)

	assert.Equal(t, "rid-1", seen)
	assert.Equal(t, "rid-1", rec.Header().Get("X-Request-Id"))
}

func TestCorrelation_ResolutionIsIdempotentWithinRequest(t *testing.T) {
	r := gin.New()
	r.Use(Correlation(CorrelationConfig{Generate: true}))
	var first, second string
	r.GET("/orders", func(c *gin.Context) {
		first = CorrelationID(c)
		second = CorrelationID(c)
		c.String(http.StatusOK, "ok")
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders", nil))

	require.NotEmpty(t, first)
	assert.Equal(t, first, second)
}
