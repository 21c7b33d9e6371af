package httperr

import (
	"net/http"

	"daycare-waitlist/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// StatusOf maps the domain failure taxonomy onto an HTTP status and a public message.
// Anything outside the taxonomy, including consistency violations, is a 500.
func StatusOf(err error) (int, string) {
	switch {
	case errs.Is(err, errs.ErrNotFound):
		return http.StatusNotFound, "Resource not found"
	case errs.Is(err, errs.ErrValidation):
		return http.StatusBadRequest, "Invalid request"
	case errs.Is(err, errs.ErrCapacityExhausted):
		return http.StatusConflict, "No capacity left on placement"
	case errs.Is(err, errs.ErrDuplicatePending):
		return http.StatusConflict, "A pending offer already exists for this child and provider"
	case errs.Is(err, errs.ErrInvalidTransition):
		return http.StatusConflict, "Offer is no longer pending"
	case errs.Is(err, errs.ErrDuplicateAccount):
		return http.StatusConflict, "Account already registered"
	case errs.Is(err, errs.ErrUnauthorized):
		return http.StatusUnauthorized, "Invalid email or password"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

// AbortWithDomainError aborts with the status derived from err. Client-facing
// failures carry the error text as detail; 500s never leak it.
func AbortWithDomainError(c *gin.Context, err error) {
	status, msg := StatusOf(err)
	var detail any
	if status < http.StatusInternalServerError {
		detail = err.Error()
	}
	AbortWithError(c, status, err, msg, detail)
}
