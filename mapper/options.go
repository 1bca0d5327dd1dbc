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
	"dirpx.dev/drest/code"
	"dirpx.dev/drest/kind"
)

// Option configures the Mapper at build time.
// All options are applied to an internal builder and then frozen into
// an immutable Mapper.
type Option func(*builder)

// WithStatusOverride replaces the HTTP status for the given kind. The code
// and message policy of that kind's row are unaffected.
//
// The typical use is switching kind.Canceled from the non-standard 499 to
// 408 behind infrastructure that rewrites unknown status codes.
func WithStatusOverride(k kind.Kind, status int) Option {
	return func(b *builder) { b.statusOverride[k] = status }
}

// WithCodeOverride replaces the wire error code for the given kind. The
// replacement must be a valid code per code.Validate.
func WithCodeOverride(k kind.Kind, c code.Code) Option {
	return func(b *builder) { b.codeOverride[k] = c }
}

// WithMessageOverride replaces the external message for the given kind with
// a constant string. The kind's policy becomes fixed: pass-through and
// param-only behavior is disabled for it.
func WithMessageOverride(k kind.Kind, msg string) Option {
	return func(b *builder) { b.messageOverride[k] = msg }
}
