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

// Package ginx wires the drest conventions into a gin request pipeline.
//
// Per-request control flow, in mount order:
//
//	Correlation → ErrorHandler → LoggingScope → routing/handler
//
// Correlation resolves the request's correlation ID and stores it on the
// request context; ErrorHandler catches every unhandled error or panic and
// writes the ErrorResponse envelope; LoggingScope attaches correlation and
// upstream operation fields to the zerolog logger carried by the context.
// BindJSON shapes model-validation failures before the handler body runs,
// and Authorize shapes the authorization layer's terminal 401/403 outcomes.
//
// Each middleware is independent: services enable exactly the subset they
// need (see the config package for the standard toggle surface).
package ginx
