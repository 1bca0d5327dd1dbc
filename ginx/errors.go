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
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/trace"

	"dirpx.dev/drest/apis"
	"dirpx.dev/drest/httpx"
	"dirpx.dev/drest/mapper"
)

// ErrorHandlerConfig configures the ErrorHandler middleware.
type ErrorHandlerConfig struct {
	// Mapper resolves caught errors to transport projections.
	// Nil means mapper.Default().
	Mapper apis.Mapper

	// Logger receives one Error-level entry per caught error. Nil disables
	// logging but never the response shaping.
	Logger *zerolog.Logger

	// ShowDetails opts into exposing the full error text in the response's
	// details field. Honored only outside production.
	ShowDetails bool

	// Production marks the deployment environment. When true, details are
	// never exposed regardless of ShowDetails.
	Production bool

	// IncludeTrace adds the active span's trace ID to the response and the
	// log entry.
	IncludeTrace bool
}

// ErrorHandler catches every unhandled error or panic in the downstream
// pipeline and writes the ErrorResponse envelope for it.
//
// Errors reach it two ways: handlers push them with Fail (or c.Error), and
// panics are recovered here. Either way the error is logged once at Error
// level with correlation and trace fields, mapped, and written — unless the
// response has already begun streaming, in which case writing anything would
// corrupt the output, so the error is only logged.
func ErrorHandler(cfg ErrorHandlerConfig) gin.HandlerFunc {
	m := cfg.Mapper
	if m == nil {
		m = mapper.Default()
	}
	w := httpx.Writer{Mapper: m}

	return func(c *gin.Context) {
		defer func() {
			var err error
			if r := recover(); r != nil {
				if r == http.ErrAbortHandler { //nolint:errorlint // sentinel, per net/http docs
					panic(r)
				}
				var ok bool
				if err, ok = r.(error); !ok {
					err = fmt.Errorf("panic: %v", r)
				}
				c.Abort()
			} else if len(c.Errors) > 0 {
				err = c.Errors.Last().Err
			}
			if err == nil {
				return
			}

			correlationID := CorrelationID(c)
			traceID := ""
			if cfg.IncludeTrace {
				if sc := trace.SpanContextFromContext(c.Request.Context()); sc.HasTraceID() {
					traceID = sc.TraceID().String()
				}
			}

			if cfg.Logger != nil {
				e := cfg.Logger.Error().
					Err(err).
					Str("correlationId", correlationID).
					Str("method", c.Request.Method).
					Str("path", c.Request.URL.Path)
				if traceID != "" {
					e = e.Str("traceId", traceID)
				}
				e.Msg("request failed")
			}

			// Has-started guard: once bytes are out, neither the status nor
			// a body can change.
			if c.Writer.Written() {
				return
			}

			details := ""
			if cfg.ShowDetails && !cfg.Production {
				details = err.Error()
			}
			w.WriteError(c.Writer, err, httpx.Meta{
				Correlation: correlationID,
				TraceID:     traceID,
				Details:     details,
			})
		}()

		c.Next()
	}
}

// Fail records err on the context and aborts the handler chain; the
// ErrorHandler middleware turns it into the error envelope.
func Fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
