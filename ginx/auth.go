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
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"dirpx.dev/drest/code"
	"dirpx.dev/drest/envelope"
	"dirpx.dev/drest/httpx"
	"dirpx.dev/drest/mapper"
)

// Decision is the authorization layer's terminal outcome for a request.
type Decision int

const (
	// DecisionAllow lets the request proceed to the handler.
	DecisionAllow Decision = iota

	// DecisionChallenge means authentication is required and missing.
	DecisionChallenge

	// DecisionForbid means the caller may not perform this operation.
	DecisionForbid
)

// IdentityState exposes whether the current caller is authenticated.
// Implementations are external; when registered they take precedence over
// the transport-level principal.
type IdentityState interface {
	Authenticated(ctx context.Context) bool
}

// Principal is the transport-level identity attached to a request by an
// authentication middleware. It is the fallback source of the authenticated
// flag when no IdentityState collaborator is registered.
type Principal struct {
	// Subject identifies the caller, e.g. a user or service account ID.
	Subject string

	// Authenticated reports whether credentials were presented and verified.
	Authenticated bool
}

// principalKey is the gin store key for the request principal.
const principalKey = "drest.principal"

// SetPrincipal attaches the transport-level principal to the request.
func SetPrincipal(c *gin.Context, p Principal) {
	c.Set(principalKey, p)
}

// PrincipalFrom returns the transport-level principal, if one was attached.
func PrincipalFrom(c *gin.Context) (Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return Principal{}, false
	}
	p, ok := v.(Principal)
	return p, ok
}

// AuthConfig configures the Authorize middleware.
type AuthConfig struct {
	// Identity optionally exposes the caller's authenticated state. Nil
	// falls back to the transport principal, then to "not authenticated".
	Identity IdentityState
}

// Authorize runs the given policy and shapes its terminal 401/403 outcomes
// as ErrorResponse envelopes instead of the framework defaults.
//
// DecisionChallenge ends the request with 401 UNAUTHORIZED. DecisionForbid
// classifies the caller's authenticated state via the identity collaborator
// (falling back to the transport principal) and ends the request with 403
// for authenticated callers or 401 for anonymous ones. DecisionAllow
// delegates onward unmodified.
func Authorize(policy func(*gin.Context) Decision, cfg AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		switch policy(c) {
		case DecisionChallenge:
			WriteChallenge(c)
		case DecisionForbid:
			WriteForbidden(c, cfg)
		default:
			c.Next()
		}
	}
}

// WriteChallenge ends the request with 401 UNAUTHORIZED.
func WriteChallenge(c *gin.Context) {
	writeAuthFailure(c, http.StatusUnauthorized)
}

// WriteForbidden ends the request with the status picked from the caller's
// authenticated state: 403 when authenticated, 401 when not.
func WriteForbidden(c *gin.Context, cfg AuthConfig) {
	authenticated := false
	switch {
	case cfg.Identity != nil:
		authenticated = cfg.Identity.Authenticated(c.Request.Context())
	default:
		if p, ok := PrincipalFrom(c); ok {
			authenticated = p.Authenticated
		}
	}
	writeAuthFailure(c, mapper.AuthStatusFor(authenticated))
}

func writeAuthFailure(c *gin.Context, status int) {
	// Same guard as the error middleware: never write over a started body.
	if c.Writer.Written() {
		c.Abort()
		return
	}

	view := envelope.ErrorView{Code: code.Unauthorized, Message: mapper.MsgAuthenticationRequired}
	if status == http.StatusForbidden {
		view = envelope.ErrorView{Code: code.Forbidden, Message: mapper.MsgPermissionDenied}
	}

	httpx.WriteJSON(c.Writer, status, envelope.NewErrorResponse(CorrelationID(c), view))
	c.Abort()
}
