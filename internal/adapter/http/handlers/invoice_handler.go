package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	request "github.com/railflow/salesops/internal/adapter/http/dto/request"
	response "github.com/railflow/salesops/internal/adapter/http/dto/response"
	"github.com/railflow/salesops/internal/usecase"
	"github.com/railflow/salesops/pkg"
)

var errInvalidInvoicePayload = pkg.NewDomainErrorSimple("INVALID_INVOICE_INPUT", "Invalid invoice payload", http.StatusBadRequest)

// InvoiceHandler exposes the invoice-path endpoint.
type InvoiceHandler struct {
	orchestrator usecase.IInvoiceOrchestrator
}

func NewInvoiceHandler(orchestrator usecase.IInvoiceOrchestrator) *InvoiceHandler {
	return &InvoiceHandler{orchestrator: orchestrator}
}

func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var payload request.InvoiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInvoicePayload.HTTPStatus, errInvalidInvoicePayload.ToHTTPError())
		return
	}

	result, err := h.orchestrator.CreateInvoice(c.Request.Context(), payload.ToCommand())
	if err != nil {
		appErr := mapPipelineError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromInvoiceResult(result))
}
