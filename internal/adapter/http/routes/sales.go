package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/railflow/salesops/internal/adapter/http/handlers"
)

const (
	PathQuote    = "/quote"
	PathInvoice  = "/invoice"
	PathRegister = "/register"
)

func addSalesRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler, invoiceHandler *handlers.InvoiceHandler, signupHandler *handlers.SignupHandler) {
	rg.POST(PathQuote, quoteHandler.CreateQuote)
	rg.POST(PathInvoice, invoiceHandler.CreateInvoice)
	rg.POST(PathRegister, signupHandler.CreateContact)
}
