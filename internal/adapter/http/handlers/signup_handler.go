package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "github.com/railflow/salesops/internal/adapter/http/dto/request"
	response "github.com/railflow/salesops/internal/adapter/http/dto/response"
	"github.com/railflow/salesops/internal/usecase"
	"github.com/railflow/salesops/pkg"
)

var errInvalidSignupPayload = pkg.NewDomainErrorSimple("INVALID_SIGNUP_INPUT", "Invalid signup payload", http.StatusBadRequest)

// SignupHandler exposes lead registration. Duplicate registrations return
// 200 with the existing contact; fresh leads return 201.
type SignupHandler struct {
	signup usecase.IContactSignup
}

func NewSignupHandler(signup usecase.IContactSignup) *SignupHandler {
	return &SignupHandler{signup: signup}
}

func (h *SignupHandler) CreateContact(c *gin.Context) {
	var payload request.SignupRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSignupPayload.HTTPStatus, errInvalidSignupPayload.ToHTTPError())
		return
	}

	result, err := h.signup.Signup(c.Request.Context(), payload.ToCommand())
	if err != nil {
		appErr := mapSignupError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	status := http.StatusCreated
	if result.Outcome == usecase.SignupDuplicate {
		status = http.StatusOK
	}
	c.JSON(status, response.FromSignupResult(result))
}

func mapSignupError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingEmail), errors.Is(err, usecase.ErrMissingCompany):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	default:
		return pkg.NewDomainError("COLLABORATOR_ERROR", "Upstream collaborator call failed", err, http.StatusBadGateway)
	}
}
