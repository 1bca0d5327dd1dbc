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

// Package envelope defines the wire shapes of drest responses.
//
// Every response a drest-conventions service emits is one of two envelopes:
//
//   - Result / TypedResult[T] — the general-purpose envelope with a status
//     discriminator, correlation/trace identifiers, a timestamp, and (for
//     typed results) an optional data payload;
//   - ErrorResponse — the envelope the middleware writes for every failure,
//     carrying a single ErrorView and, for validation failures, an ordered
//     ValidationError list.
//
// All types here are immutable value objects: constructed fresh per response
// via the named factory functions, serialized once, and discarded. The
// factories are the only construction recipes that maintain the envelope
// invariants (error present iff the status is not success, data emitted only
// on success).
//
// JSON contract: field names are camelCase; optional fields are omitted
// entirely when absent — never emitted as null — except "timestamp", which is
// always present. Enum values serialize as camelCase strings, never integers.
package envelope
