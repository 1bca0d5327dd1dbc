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

package correlation

import "context"

// Operation describes the upstream operation context attached to a request
// by an external kernel/collaborator system. Only CorrelationID participates
// in resolution; the remaining fields enrich the logging scope.
type Operation struct {
	// CorrelationID is the upstream correlation ID. Wins over every other
	// source when non-blank.
	CorrelationID string

	// ID is the upstream operation identifier.
	ID string

	// Name is the upstream operation name, e.g. "orders.submit".
	Name string

	// TenantID identifies the tenant on whose behalf the operation runs.
	TenantID string
}

// Provider exposes the optional upstream operation context. Implementations
// are external; drest queries them read-only, once per request by the
// Resolver and once more by the logging scope middleware.
//
// A nil Provider (or ok == false) simply means no upstream context is
// registered for this request.
type Provider interface {
	Current(ctx context.Context) (op Operation, ok bool)
}
