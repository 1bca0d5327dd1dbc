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

	"dirpx.dev/drest/code"
	"dirpx.dev/drest/kind"
)

type builder struct {
	// user-provided adjustments (applied on top of the built-in table)

	// statusOverride holds per-kind HTTP status replacements.
	statusOverride map[kind.Kind]int
	// codeOverride holds per-kind wire-code replacements.
	codeOverride map[kind.Kind]code.Code
	// messageOverride holds per-kind fixed-message replacements. Setting one
	// forces the kind's policy to fixed.
	messageOverride map[kind.Kind]string
}

// newBuilder creates an empty builder. Overrides are usually few, so the
// maps start unsized.
func newBuilder() *builder {
	return &builder{
		statusOverride:  make(map[kind.Kind]int),
		codeOverride:    make(map[kind.Kind]code.Code),
		messageOverride: make(map[kind.Kind]string),
	}
}

// validate checks every accumulated override before the table is frozen.
func (b *builder) validate() error {
	for k, s := range b.statusOverride {
		if err := kind.Validate(k); err != nil {
			return fmt.Errorf("mapper: status override for invalid kind %q: %w", k, err)
		}
		if s < 100 || s > 599 {
			return fmt.Errorf("mapper: status override %d for kind %q is out of range", s, k)
		}
	}
	for k, c := range b.codeOverride {
		if err := kind.Validate(k); err != nil {
			return fmt.Errorf("mapper: code override for invalid kind %q: %w", k, err)
		}
		if err := code.Validate(c); err != nil {
			return fmt.Errorf("mapper: code override %q for kind %q: %w", c, k, err)
		}
	}
	for k, msg := range b.messageOverride {
		if err := kind.Validate(k); err != nil {
			return fmt.Errorf("mapper: message override for invalid kind %q: %w", k, err)
		}
		if msg == "" {
			return fmt.Errorf("mapper: empty message override for kind %q", k)
		}
	}
	return nil
}
