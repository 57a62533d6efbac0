package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgerrors "github.com/zeon9405/unikraft/internal/pkg/errors"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

// RespondDomainError maps the domain sentinels onto HTTP statuses so that
// handlers never string-match error messages.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, pkgerrors.ErrNotFound):
		RespondError(c, http.StatusNotFound, "not_found", err)
	case errors.Is(err, pkgerrors.ErrInvalidQuantity):
		RespondError(c, http.StatusBadRequest, "invalid_quantity", err)
	case errors.Is(err, pkgerrors.ErrEmptyOrder):
		RespondError(c, http.StatusBadRequest, "empty_order", err)
	case errors.Is(err, pkgerrors.ErrInsufficientStock):
		RespondError(c, http.StatusConflict, "insufficient_stock", err)
	case errors.Is(err, pkgerrors.ErrDuplicateCredential):
		RespondError(c, http.StatusConflict, "duplicate_credential", err)
	case errors.Is(err, pkgerrors.ErrConflictingUpdate):
		RespondError(c, http.StatusConflict, "conflicting_update", err)
	case errors.Is(err, pkgerrors.ErrUnauthorized):
		RespondError(c, http.StatusUnauthorized, "unauthorized", err)
	default:
		RespondError(c, http.StatusInternalServerError, "internal_error", err)
	}
}
