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
	"net/http"

	"github.com/gin-gonic/gin"

	"dirpx.dev/drest/envelope"
	"dirpx.dev/drest/httpx"
)

// OK writes a 200 success envelope wrapping data, stamped with the request's
// correlation ID.
func OK[T any](c *gin.Context, data T) {
	httpx.WriteJSON(c.Writer, http.StatusOK, envelope.OKData(data).WithCorrelation(CorrelationID(c)))
}

// Created writes a 201 success envelope wrapping data.
func Created[T any](c *gin.Context, data T) {
	httpx.WriteJSON(c.Writer, http.StatusCreated, envelope.OKData(data).WithCorrelation(CorrelationID(c)))
}

// Accepted writes a 202 success envelope without a payload.
func Accepted(c *gin.Context) {
	httpx.WriteJSON(c.Writer, http.StatusAccepted, envelope.OK().WithCorrelation(CorrelationID(c)))
}
