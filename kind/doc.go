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

// Package kind defines the closed classification set for drest failures.
//
// A "kind" answers "what class of failure is this?" in a way that a transport
// mapper can dispatch on with a single ordered match: invalid_argument,
// not_found, concurrency, security, and so on. Kinds are deliberately a flat,
// closed set rather than an open type hierarchy — the mapper never has to
// reason about inheritance or wrapping order, only about one tag.
//
// Kinds also encode the trust boundary of the error message. Kinds raised by
// the service's own code (invalid_argument, invalid_operation) may surface
// their message verbatim; kinds that originate in upstream libraries
// (validation, concurrency, security, dependency) always map to fixed safe
// messages. That policy lives in the mapper package, keyed by these values.
//
// This package defines the canonical representation and the functions that
// convert arbitrary user input to that canonical form.
package kind
