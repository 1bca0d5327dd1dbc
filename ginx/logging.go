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
	"github.com/rs/zerolog"

	"dirpx.dev/drest/correlation"
)

// LoggingScope attaches the request's correlation ID and, when an upstream
// operation context is registered, its operation and tenant fields to the
// zerolog logger carried by the request context.
//
// Downstream code retrieves the enriched logger with zerolog.Ctx(ctx); every
// entry it writes then carries the scope fields for the duration of the
// request. Mount after Correlation so the resolved ID is visible.
func LoggingScope(base zerolog.Logger, provider correlation.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		lc := base.With()
		if id, ok := correlation.FromContext(ctx); ok && id != "" {
			lc = lc.Str("correlationId", id)
		}
		if provider != nil {
			if op, ok := provider.Current(ctx); ok {
				if op.ID != "" {
					lc = lc.Str("operationId", op.ID)
				}
				if op.Name != "" {
					lc = lc.Str("operationName", op.Name)
				}
				if op.TenantID != "" {
					lc = lc.Str("tenantId", op.TenantID)
				}
			}
		}

		logger := lc.Logger()
		c.Request = c.Request.WithContext(logger.WithContext(ctx))
		c.Next()
	}
}
