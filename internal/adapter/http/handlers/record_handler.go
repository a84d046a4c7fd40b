package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	response "github.com/railflow/salesops/internal/adapter/http/dto/response"
	"github.com/railflow/salesops/internal/usecase"
	"github.com/railflow/salesops/pkg"
)

var errInvalidAccountID = pkg.NewDomainErrorSimple("INVALID_ACCOUNT_ID", "account id must be numeric", http.StatusBadRequest)

// RecordHandler exposes the audit trail of issued statements.
type RecordHandler struct {
	query usecase.IRecordQuery
}

func NewRecordHandler(query usecase.IRecordQuery) *RecordHandler {
	return &RecordHandler{query: query}
}

func (h *RecordHandler) GetRecord(c *gin.Context) {
	rec, err := h.query.GetRecord(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapRecordError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBillingRecord(rec))
}

func (h *RecordHandler) ListAccountRecords(c *gin.Context) {
	accountID, err := strconv.ParseInt(c.Param("account_id"), 10, 64)
	if err != nil {
		c.JSON(errInvalidAccountID.HTTPStatus, errInvalidAccountID.ToHTTPError())
		return
	}

	recs, err := h.query.ListAccountRecords(c.Request.Context(), accountID)
	if err != nil {
		appErr := mapRecordError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBillingRecords(recs))
}

func mapRecordError(err error) *pkg.AppError {
	if errors.Is(err, usecase.ErrRecordNotFound) {
		return pkg.NewDomainErrorSimple("RECORD_NOT_FOUND", "Billing record does not exist", http.StatusNotFound)
	}
	return pkg.NewDomainError("STORAGE_ERROR", "Billing record store call failed", err, http.StatusInternalServerError)
}
