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

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
)

// Source identifies which tier produced the resolved correlation ID.
type Source string

const (
	// SourceUpstream means the registered Provider supplied the ID.
	SourceUpstream Source = "upstream"

	// SourceHeader means the inbound correlation header supplied the ID.
	SourceHeader Source = "header"

	// SourceGenerated means the ID was generated (span ID or random token).
	SourceGenerated Source = "generated"

	// SourceNone means resolution produced nothing (generation disabled).
	SourceNone Source = "none"
)

// Resolution is the outcome of resolving one request's correlation ID.
type Resolution struct {
	// ID is the resolved correlation ID; empty only for SourceNone.
	ID string

	// Source names the winning tier.
	Source Source

	// UpstreamID and HeaderID record the candidate values that were
	// consulted, for conflict diagnostics. Blank candidates stay empty.
	UpstreamID string
	HeaderID   string

	// Conflicted reports that both the upstream context and the header
	// produced non-blank values and they differ. The upstream value wins;
	// callers should log exactly one warning carrying both values.
	Conflicted bool
}

// Resolver computes the correlation ID for a request from a fixed priority
// order of sources. It is stateless and safe for concurrent use.
type Resolver struct {
	// Provider optionally exposes the upstream operation context. Nil means
	// no upstream source is registered.
	Provider Provider

	// Generate enables tier 3: when neither the upstream context nor the
	// header produce a value, generate one. When false the resolved ID is
	// empty instead.
	Generate bool
}

// Resolve produces exactly one correlation ID for the request.
//
// Priority, highest first, each tier consulted only when the previous one
// produced nothing:
//
//  1. the upstream operation context, when a Provider is registered and
//     returns a non-blank CorrelationID;
//  2. the inbound correlation header value, when non-blank (accepted
//     verbatim, no format validation);
//  3. a generated identifier — the current trace span ID when a recording
//     span is active on ctx, otherwise a fresh random UUID. Only when
//     Generate is enabled.
//
// Resolution is deterministic given the same inputs: resolving twice within
// the same request without new input yields the same value (tier 3 aside,
// which runs at most once per request because the result is stored).
func (r Resolver) Resolve(ctx context.Context, header string) Resolution {
	res := Resolution{HeaderID: strings.TrimSpace(header)}

	if r.Provider != nil {
		if op, ok := r.Provider.Current(ctx); ok {
			res.UpstreamID = strings.TrimSpace(op.CorrelationID)
		}
	}

	switch {
	case res.UpstreamID != "":
		res.ID = res.UpstreamID
		res.Source = SourceUpstream
		res.Conflicted = res.HeaderID != "" && res.HeaderID != res.UpstreamID
	case res.HeaderID != "":
		res.ID = res.HeaderID
		res.Source = SourceHeader
	case r.Generate:
		res.ID = generate(ctx)
		res.Source = SourceGenerated
	default:
		res.Source = SourceNone
	}
	return res
}

// generate prefers the active span's ID so that logs, traces, and the
// correlation ID line up without an extra identifier in play.
func generate(ctx context.Context) string {
	if sc := trace.SpanContextFromContext(ctx); sc.HasSpanID() {
		return sc.SpanID().String()
	}
	return uuid.NewString()
}
