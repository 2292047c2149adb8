package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edulab/booklib-backend/internal/pkg/apperr"
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

// RespondAppError maps the service error taxonomy onto HTTP statuses:
// missing rows are 404, storage constraint rejections are 409, the rest 500.
func RespondAppError(c *gin.Context, err error) {
	switch {
	case apperr.IsNotFound(err):
		RespondError(c, http.StatusNotFound, "not_found", err)
	case apperr.IsConstraint(err):
		RespondError(c, http.StatusConflict, "constraint_violation", err)
	default:
		RespondError(c, http.StatusInternalServerError, "internal_error", err)
	}
}
