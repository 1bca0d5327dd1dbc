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
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"dirpx.dev/drest/correlation"
)

// CorrelationConfig configures the Correlation middleware.
type CorrelationConfig struct {
	// Header is the correlation header name, inbound and outbound.
	// Empty means correlation.Header.
	Header string

	// Provider optionally exposes the upstream operation context (tier 1 of
	// the resolution order). Nil means no upstream source.
	Provider correlation.Provider

	// Generate enables generating an ID when no source produced one.
	Generate bool

	// Echo mirrors the resolved ID into the outgoing response header, set
	// just before the first byte, unless someone else already set it.
	Echo bool

	// Logger receives the conflict warning. Nil disables it.
	Logger *zerolog.Logger
}

// Correlation resolves the correlation ID for every request and makes it
// available downstream: on the request context (correlation.FromContext) and
// in the gin key-value store under correlation.Key.
//
// When both the upstream operation context and the inbound header carry
// differing non-blank IDs, exactly one warning entry is logged with both
// values, the method, and the path; the upstream value wins.
func Correlation(cfg CorrelationConfig) gin.HandlerFunc {
	header := cfg.Header
	if header == "" {
		header = correlation.Header
	}
	resolver := correlation.Resolver{Provider: cfg.Provider, Generate: cfg.Generate}

	return func(c *gin.Context) {
		res := resolver.Resolve(c.Request.Context(), c.GetHeader(header))

		if res.Conflicted && cfg.Logger != nil {
			cfg.Logger.Warn().
				Str("upstreamCorrelationId", res.UpstreamID).
				Str("headerCorrelationId", res.HeaderID).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Msg("correlation ID conflict between upstream context and header; upstream wins")
		}

		c.Request = c.Request.WithContext(correlation.NewContext(c.Request.Context(), res.ID))
		c.Set(correlation.Key, res.ID)

		if cfg.Echo && res.ID != "" {
			c.Writer = &echoWriter{ResponseWriter: c.Writer, header: header, id: res.ID}
		}

		c.Next()
	}
}

// echoWriter injects the correlation header just before the first byte of
// the response, unless the header was already set by other code.
type echoWriter struct {
	gin.ResponseWriter
	header string
	id     string
	done   bool
}

func (w *echoWriter) ensure() {
	if w.done {
		return
	}
	w.done = true
	if w.Header().Get(w.header) == "" {
		w.Header().Set(w.header, w.id)
	}
}

func (w *echoWriter) WriteHeader(statusCode int) {
	w.ensure()
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *echoWriter) WriteHeaderNow() {
	w.ensure()
	w.ResponseWriter.WriteHeaderNow()
}

func (w *echoWriter) Write(b []byte) (int, error) {
	w.ensure()
	return w.ResponseWriter.Write(b)
}

func (w *echoWriter) WriteString(s string) (int, error) {
	w.ensure()
	return w.ResponseWriter.WriteString(s)
}

// CorrelationID returns the resolved correlation ID for the request,
// generating a fresh one as a last resort so that no error response is ever
// un-traceable. Resolution order: request context, gin store, new UUID.
func CorrelationID(c *gin.Context) string {
	if id, ok := correlation.FromContext(c.Request.Context()); ok && id != "" {
		return id
	}
	if id := c.GetString(correlation.Key); id != "" {
		return id
	}
	return uuid.NewString()
}
