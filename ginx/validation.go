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
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"dirpx.dev/drest/code"
	"dirpx.dev/drest/envelope"
	"dirpx.dev/drest/httpx"
	"dirpx.dev/drest/mapper"
)

// BindJSON binds the request body into T and short-circuits on failure.
//
// On success it returns (value, true) and the handler proceeds. On a
// model-validation failure it writes a 400 VALIDATION_FAILED envelope with
// the ordered field-error list and returns ok == false; the handler body
// must not run. Any other binding failure (unparseable body, wrong types)
// is recorded for the ErrorHandler middleware instead.
func BindJSON[T any](c *gin.Context) (v T, ok bool) {
	err := c.ShouldBindJSON(&v)
	if err == nil {
		return v, true
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		WriteValidationError(c, shapeFieldErrors(verrs))
		return v, false
	}

	Fail(c, err)
	return v, false
}

// shapeFieldErrors converts validator output into the wire list, preserving
// the validator's enumeration order. The same field may appear several times
// when several rules failed.
func shapeFieldErrors(verrs validator.ValidationErrors) []envelope.ValidationError {
	list := make([]envelope.ValidationError, 0, len(verrs))
	for _, fe := range verrs {
		list = append(list, envelope.ValidationError{
			Field:   fe.Field(),
			Message: fieldMessage(fe),
			Code:    fe.Tag(),
		})
	}
	return list
}

// fieldMessage renders a client-facing description of one failed rule.
// validator's own Error() text names Go struct internals and stays in logs.
func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed validation on the '%s' rule", fe.Field(), fe.Tag())
	}
}

// WriteValidationError short-circuits the request with HTTP 400, error code
// VALIDATION_FAILED, and the given ordered field-error list.
func WriteValidationError(c *gin.Context, list []envelope.ValidationError) {
	resp := envelope.NewErrorResponse(CorrelationID(c), envelope.ErrorView{
		Code:    code.ValidationFailed,
		Message: mapper.MsgValidationFailed,
	}).WithValidationErrors(list)

	httpx.WriteJSON(c.Writer, http.StatusBadRequest, resp)
	c.Abort()
}
