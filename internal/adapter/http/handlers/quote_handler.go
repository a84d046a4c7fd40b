package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "github.com/railflow/salesops/internal/adapter/http/dto/request"
	response "github.com/railflow/salesops/internal/adapter/http/dto/response"
	"github.com/railflow/salesops/internal/domain/entities"
	"github.com/railflow/salesops/internal/usecase"
	"github.com/railflow/salesops/pkg"
)

var errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)

// QuoteHandler exposes the quote-path endpoint.
type QuoteHandler struct {
	orchestrator usecase.IQuoteOrchestrator
}

func NewQuoteHandler(orchestrator usecase.IQuoteOrchestrator) *QuoteHandler {
	return &QuoteHandler{orchestrator: orchestrator}
}

func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	result, err := h.orchestrator.CreateQuote(c.Request.Context(), payload.ToCommand())
	if err != nil {
		appErr := mapPipelineError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuoteResult(result))
}

// mapPipelineError is the single translation point from pipeline errors to
// HTTP statuses. Validation and pricing failures are 400s, missing CRM
// records 404s; anything else is a collaborator failure.
func mapPipelineError(err error) *pkg.AppError {
	var pricingErr *entities.PricingError
	switch {
	case errors.Is(err, usecase.ErrMissingContactID),
		errors.Is(err, usecase.ErrMissingAccountID),
		errors.Is(err, usecase.ErrMissingNumUsers),
		errors.Is(err, usecase.ErrInvalidNumUsers),
		errors.Is(err, usecase.ErrInvalidQuoteLicenseYears),
		errors.Is(err, usecase.ErrInvalidInvoiceLicenseYears):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.As(err, &pricingErr):
		return pkg.NewDomainErrorSimple(string(pricingErr.Kind), pricingErr.Message, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrContactNotFound):
		return pkg.NewDomainErrorSimple("CONTACT_NOT_FOUND", "Contact does not exist", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAccountNotFound):
		return pkg.NewDomainErrorSimple("ACCOUNT_NOT_FOUND", "Account does not exist", http.StatusNotFound)
	default:
		return pkg.NewDomainError("COLLABORATOR_ERROR", "Upstream collaborator call failed", err, http.StatusBadGateway)
	}
}
