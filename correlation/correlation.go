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

// Package correlation resolves and propagates the correlation ID of one
// logical request.
//
// The correlation ID is an opaque string linking one request across service
// boundaries for log and trace correlation. It is resolved exactly once near
// the start of the pipeline (see Resolver) and then carried on the request
// context, so every downstream component reads the same value and concurrent
// requests are fully isolated from one another.
package correlation

import "context"

// Header is the default name of the correlation header, both inbound and
// outbound. Deployments can configure a different name.
const Header = "X-Correlation-Id"

// Key is the well-known request-store key under which middleware mirrors the
// resolved ID, for components that receive a key-value store rather than a
// context (e.g. gin handlers using c.GetString).
const Key = "drest.correlationId"

// ctxKey is the private context key type. Values of other packages can never
// collide with it.
type ctxKey struct{}

// NewContext returns a copy of ctx carrying the resolved correlation ID.
// Written once per request by the Resolver middleware; the context's
// immutability is what keeps concurrent requests isolated.
func NewContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext returns the correlation ID carried by ctx. ok is false when no
// resolution has happened on this context.
func FromContext(ctx context.Context) (id string, ok bool) {
	id, ok = ctx.Value(ctxKey{}).(string)
	return id, ok
}
