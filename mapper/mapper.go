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

package mapper

import (
	"fmt"
	"net/http"
	"strings"
	"sync"

	"dirpx.dev/drest/apis"
	"dirpx.dev/drest/kind"
)

// New constructs an immutable apis.Mapper snapshot.
//
// The resulting apis.Mapper is fully thread-safe and designed for long-lived
// reuse. Each build creates a self-contained mapper instance — no shared
// references to global state or user-provided structures remain.
//
// Build process overview:
//
//  1. Seed the builder with the library's built-in classification table.
//  2. Apply user-provided options (status, code, and message overrides).
//  3. Validate every override (kind membership, status range, code format).
//  4. Freeze the merged table into an immutable per-kind rule map.
//
// Errors returned from this function indicate invalid overrides.
func New(opts ...Option) (apis.Mapper, error) {
	b := newBuilder()

	for _, opt := range opts {
		opt(b)
	}
	if err := b.validate(); err != nil {
		return nil, err
	}

	// Freeze: merge overrides into a freshly allocated copy of the table,
	// recording per-field provenance for Explain.
	rules := make(map[kind.Kind]rule, len(defaultRules))
	for k, r := range defaultRules {
		r.statusSrc, r.codeSrc, r.messageSrc = "default", "default", "default"
		if s, ok := b.statusOverride[k]; ok {
			r.status, r.statusSrc = s, "override"
		}
		if c, ok := b.codeOverride[k]; ok {
			r.code, r.codeSrc = c, "override"
		}
		if msg, ok := b.messageOverride[k]; ok {
			r.message, r.policy, r.messageSrc = msg, policyFixed, "override"
		}
		rules[k] = r
	}
	// An override naming a kind outside the built-in table creates a new row
	// based on the last-row defaults.
	for k := range b.statusOverride {
		addCustomRow(rules, k, b)
	}
	for k := range b.codeOverride {
		addCustomRow(rules, k, b)
	}
	for k := range b.messageOverride {
		addCustomRow(rules, k, b)
	}

	return &mapper{rules: rules, fallback: rules[kind.Internal]}, nil
}

// addCustomRow materializes a table row for a kind the built-in table does
// not know, seeded from the internal row and patched with the overrides.
func addCustomRow(rules map[kind.Kind]rule, k kind.Kind, b *builder) {
	if _, ok := rules[k]; ok {
		return
	}
	r := defaultRules[kind.Internal]
	r.statusSrc, r.codeSrc, r.messageSrc = "default", "default", "default"
	if s, ok := b.statusOverride[k]; ok {
		r.status, r.statusSrc = s, "override"
	}
	if c, ok := b.codeOverride[k]; ok {
		r.code, r.codeSrc = c, "override"
	}
	if msg, ok := b.messageOverride[k]; ok {
		r.message, r.policy, r.messageSrc = msg, policyFixed, "override"
	}
	rules[k] = r
}

// Default returns the process-wide mapper built from the unmodified table.
// It is built once and shared; New with no options cannot fail.
var Default = sync.OnceValue(func() apis.Mapper {
	m, err := New()
	if err != nil {
		panic(fmt.Sprintf("mapper: default table invalid: %v", err))
	}
	return m
})

// AuthStatusFor classifies an authorization failure that has no concrete
// error value: an authenticated caller gets 403, an unauthenticated one 401.
func AuthStatusFor(authenticated bool) int {
	if authenticated {
		return http.StatusForbidden
	}
	return http.StatusUnauthorized
}

// mapper is an immutable classification table. Lookups are a single map
// access and safe for concurrent use once constructed.
type mapper struct {
	// rules holds the merged per-kind table.
	rules map[kind.Kind]rule

	// fallback is the explicit last row (kind.Internal), used for kinds the
	// table does not know.
	fallback rule
}

// Map classifies err and resolves its transport projection.
//
// Map is deterministic and side-effect free. A nil error panics: mapping
// nothing to a response is always a bug in the caller, never a case to
// absorb silently.
func (m *mapper) Map(err error) apis.Mapping {
	if err == nil {
		panic("drest/mapper: Map called with a nil error")
	}
	c := classify(err)
	r := m.ruleFor(c.kind)
	return apis.Mapping{
		HTTPStatus: r.status,
		Code:       r.code,
		Message:    messageFor(r, c),
	}
}

// ruleFor returns the table row for k, or the last row when k is unknown.
func (m *mapper) ruleFor(k kind.Kind) rule {
	if r, ok := m.rules[k]; ok {
		return r
	}
	return m.fallback
}

// messageFor applies the row's message policy to the classified error.
func messageFor(r rule, c match) string {
	switch r.policy {
	case policyPassthrough:
		return c.msg
	case policyParam:
		if c.param == "" {
			return msgMissingParamUnknown
		}
		return fmt.Sprintf(msgMissingParamFmt, c.param)
	default:
		return r.message
	}
}

// Explain produces a textual trace of how the mapper resolved err.
//
// Example output:
//
//	err="not_found: order 42 is gone"
//	kind="not_found" source=tagged
//	status: source=default -> 404
//	code: source=default -> NOT_FOUND
//	message: source=default policy=fixed -> "The requested resource was not found."
//
// Notes:
//   - source ∈ {tagged | validator | body | context | fallback} for the kind
//     line and {override | default} for the status and code lines;
//   - the message line shows the applied policy and the final text.
//
// Explain shares Map's nil contract and panics on a nil error.
func (m *mapper) Explain(err error) string {
	if err == nil {
		panic("drest/mapper: Explain called with a nil error")
	}
	c := classify(err)
	r := m.ruleFor(c.kind)

	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "err=%q\n", err.Error())
	_, _ = fmt.Fprintf(&b, "kind=%q source=%s\n", c.kind, c.source)
	_, _ = fmt.Fprintf(&b, "status: source=%s -> %d\n", r.statusSrc, r.status)
	_, _ = fmt.Fprintf(&b, "code: source=%s -> %s\n", r.codeSrc, r.code)
	_, _ = fmt.Fprintf(&b, "message: source=%s policy=%s -> %q\n", r.messageSrc, r.policy, messageFor(r, c))
	return strings.TrimSuffix(b.String(), "\n")
}
