package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/railflow/salesops/internal/adapter/http/handlers"
)

const (
	PathRecord         = "/records/:id"
	PathAccountRecords = "/accounts/:account_id/records"
)

func addRecordRoutes(rg *gin.RouterGroup, recordHandler *handlers.RecordHandler) {
	rg.GET(PathRecord, recordHandler.GetRecord)
	rg.GET(PathAccountRecords, recordHandler.ListAccountRecords)
}
