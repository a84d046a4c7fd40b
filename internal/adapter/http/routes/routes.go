package routes

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/railflow/salesops/internal/adapter/http/handlers"
	"github.com/railflow/salesops/internal/adapter/persistence/repository"
	"github.com/railflow/salesops/internal/config"
	"github.com/railflow/salesops/internal/infrastructure/billing"
	"github.com/railflow/salesops/internal/infrastructure/crm"
	"github.com/railflow/salesops/internal/infrastructure/database"
	"github.com/railflow/salesops/internal/infrastructure/notification"
	"github.com/railflow/salesops/internal/usecase"
)

// Run wires every dependency from the parsed configuration and starts the
// server. Collaborator clients receive cfg by reference here, once; nothing
// below this point reads the environment.
func Run(cfg *config.Config, logger *zap.Logger) error {
	router := gin.New()
	router.Use(ginLogger(logger))
	router.Use(gin.Recovery())

	if err := registerRoutes(router, cfg, logger); err != nil {
		return err
	}

	logger.Info("starting sales-ops server", zap.String("addr", cfg.ListenAddr))
	return router.Run(cfg.ListenAddr)
}

func registerRoutes(router *gin.Engine, cfg *config.Config, logger *zap.Logger) error {
	ddb, err := database.NewDynamoDBClient(context.Background(), cfg)
	if err != nil {
		return fmt.Errorf("create dynamodb client: %w", err)
	}

	records := repository.NewBillingRecordDynamoRepository(ddb, cfg.BillingRecordsTable)
	crmGateway := crm.NewFreshsalesGateway(cfg.CRMBaseURL, cfg.CRMAPIKey)
	billingGateway := billing.NewHiveageGateway(cfg.BillingBaseURL, cfg.BillingAPIKey)
	notifier := notification.NewSlackWebhook(cfg.SlackWebhookURL)

	dispatcher := usecase.NewDeliveryDispatcher(billingGateway, cfg.BillingPortalURL, logger)
	reconciler := usecase.NewOpportunityReconciler(crmGateway, logger)

	quoteOrchestrator := usecase.NewQuoteOrchestrator(
		crmGateway, billingGateway, records, notifier, logger,
		cfg.CRMPortalURL, cfg.BillingPortalURL,
	)
	invoiceOrchestrator := usecase.NewInvoiceOrchestrator(
		crmGateway, billingGateway, records, notifier, dispatcher, reconciler, logger,
		cfg.CRMPortalURL, cfg.BillingPortalURL, cfg.InvoiceDealStageID,
	)
	signup := usecase.NewContactSignup(crmGateway, notifier, logger, cfg.CRMPortalURL)
	recordQuery := usecase.NewRecordQuery(records)

	api := router.Group("/api")
	addPingRoutes(api)
	addSalesRoutes(api,
		handlers.NewQuoteHandler(quoteOrchestrator),
		handlers.NewInvoiceHandler(invoiceOrchestrator),
		handlers.NewSignupHandler(signup),
	)
	addRecordRoutes(api, handlers.NewRecordHandler(recordQuery))
	return nil
}

func ginLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
		)
	}
}
