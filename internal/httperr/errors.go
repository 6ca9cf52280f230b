package httperr

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// DefaultDenial is the generic permission failure detail, used when the
// denial carries no actor/target context.
const DefaultDenial = "You do not have permission to perform this action."

// ValidationError maps field names to messages. Object-level failures
// use the "non_field_errors" key.
type ValidationError map[string]string

func (e ValidationError) Error() string {
	parts := make([]string, 0, len(e))
	for field, msg := range e {
		parts = append(parts, field+": "+msg)
	}
	return strings.Join(parts, "; ")
}

// Invalid builds a single-field ValidationError.
func Invalid(field, message string) ValidationError {
	return ValidationError{field: message}
}

type ForbiddenError struct {
	Detail string
}

func (e *ForbiddenError) Error() string { return e.Detail }

func ErrForbidden(detail string) error {
	if detail == "" {
		detail = DefaultDenial
	}
	return &ForbiddenError{Detail: detail}
}

type NotFoundError struct {
	Detail string
}

func (e *NotFoundError) Error() string { return e.Detail }

func ErrNotFound(detail string) error {
	return &NotFoundError{Detail: detail}
}

type UnauthorizedError struct {
	Detail string
}

func (e *UnauthorizedError) Error() string { return e.Detail }

func ErrUnauthorized(detail string) error {
	return &UnauthorizedError{Detail: detail}
}

// Respond translates an error from the usecase layer into the matching
// HTTP response. Unknown errors become a 500 with no internal detail.
func Respond(c *gin.Context, err error) {
	var ve ValidationError
	if errors.As(err, &ve) {
		c.JSON(http.StatusBadRequest, ve)
		return
	}

	var fe *ForbiddenError
	if errors.As(err, &fe) {
		Forbidden(c, fe.Detail)
		return
	}

	var nf *NotFoundError
	if errors.As(err, &nf) {
		NotFound(c, nf.Detail)
		return
	}

	var ue *UnauthorizedError
	if errors.As(err, &ue) {
		Unauthorized(c, ue.Detail)
		return
	}

	Internal(c)
}
