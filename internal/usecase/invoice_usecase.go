package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/railflow/salesops/internal/domain/entities"
	"github.com/railflow/salesops/internal/usecase/interfaces"
)

// InvoiceResult is returned to the handler on success.
type InvoiceResult struct {
	Link           string
	Ref            entities.StatementRef
	Delivery       entities.DeliveryResult
	Reconciliation entities.ReconcileResult
	Record         entities.BillingRecord
}

// IInvoiceOrchestrator is the invoice-path entry point.
type IInvoiceOrchestrator interface {
	CreateInvoice(ctx context.Context, cmd PipelineCommand) (InvoiceResult, error)
}

// InvoiceOrchestrator runs the full invoice pipeline: price, compose, create
// the hosted invoice, deliver it, reconcile the CRM deal against the billed
// total, record the audit row, then notes and team notification.
//
// Unlike the quote path it accepts licenseYears == 4 (perpetual). Steps run
// strictly in sequence and there is no rollback of completed steps.
type InvoiceOrchestrator struct {
	parties    partyResolver
	crm        interfaces.ICRMGateway
	billing    interfaces.IBillingGateway
	records    interfaces.IBillingRecordRepository
	notifier   interfaces.INotifier
	dispatcher *DeliveryDispatcher
	reconciler IOpportunityReconciler
	logger     *zap.Logger

	crmPortalURL       string
	billingPortalURL   string
	invoiceDealStageID int64
}

var _ IInvoiceOrchestrator = (*InvoiceOrchestrator)(nil)

func NewInvoiceOrchestrator(
	crm interfaces.ICRMGateway,
	billing interfaces.IBillingGateway,
	records interfaces.IBillingRecordRepository,
	notifier interfaces.INotifier,
	dispatcher *DeliveryDispatcher,
	reconciler IOpportunityReconciler,
	logger *zap.Logger,
	crmPortalURL, billingPortalURL string,
	invoiceDealStageID int64,
) *InvoiceOrchestrator {
	return &InvoiceOrchestrator{
		parties:            partyResolver{crm: crm, billing: billing, logger: logger},
		crm:                crm,
		billing:            billing,
		records:            records,
		notifier:           notifier,
		dispatcher:         dispatcher,
		reconciler:         reconciler,
		logger:             logger,
		crmPortalURL:       crmPortalURL,
		billingPortalURL:   billingPortalURL,
		invoiceDealStageID: invoiceDealStageID,
	}
}

func (o *InvoiceOrchestrator) CreateInvoice(ctx context.Context, cmd PipelineCommand) (InvoiceResult, error) {
	if err := cmd.validate(entities.PerpetualYears); err != nil {
		return InvoiceResult{}, err
	}

	parties, err := o.parties.resolve(ctx, cmd.ContactID, cmd.AccountID)
	if err != nil {
		return InvoiceResult{}, err
	}

	now := time.Now().UTC()
	quote, err := ComputePrice(entities.PricingRequest{
		LicenseType:  cmd.LicenseType,
		NumUsers:     *cmd.NumUsers,
		LicenseYears: cmd.LicenseYears,
	}, now)
	if err != nil {
		return InvoiceResult{}, err
	}

	doc := ComposeStatement(entities.BillingRecordInvoice, quote, parties.Network, now)
	ref, err := o.billing.CreateInvoice(ctx, doc)
	if err != nil {
		return InvoiceResult{}, fmt.Errorf("create invoice: %w", err)
	}
	o.logger.Info("invoice created",
		zap.String("statement_no", ref.StatementNo), zap.Int64("account_id", parties.Account.ID))

	delivery, err := o.dispatcher.Dispatch(ctx, ref, quote, parties.Contact, cmd.RecipientEmail, cmd.NotificationEmails)
	if err != nil {
		return InvoiceResult{}, err
	}

	draft := entities.OpportunityDraft{
		Name: fmt.Sprintf("%s: %s: %s License: %s Users",
			parties.Account.Name, quote.TypeLabel, quote.TermLabel, quote.UserBand),
		Amount:         ref.BilledTotal,
		SalesAccountID: parties.Account.ID,
		DealStageID:    o.invoiceDealStageID,
		ExpectedClose:  now.AddDate(0, 0, netTermsDays),
		ContactEmail:   parties.Contact.Email,
		AgentBand:      quote.UserBand,
	}
	reconciliation, err := o.reconciler.Reconcile(ctx, parties.Account, draft)
	if err != nil {
		return InvoiceResult{}, err
	}

	record, err := o.records.Create(ctx, entities.BillingRecord{
		ID:          uuid.NewString(),
		Kind:        entities.BillingRecordInvoice,
		AccountID:   parties.Account.ID,
		ContactID:   parties.Contact.ID,
		StatementNo: ref.StatementNo,
		HashKey:     ref.HashKey,
		Amount:      ref.BilledTotal,
		Summary:     doc.Summary,
		CreatedAt:   now,
	})
	if err != nil {
		return InvoiceResult{}, fmt.Errorf("record invoice: %w", err)
	}

	link := fmt.Sprintf("%s/invs/%s", o.billingPortalURL, ref.HashKey)
	if err := o.crm.CreateContactNote(ctx, parties.Contact.ID, "Invoice: "+link); err != nil {
		return InvoiceResult{}, fmt.Errorf("create contact note: %w", err)
	}
	if err := o.crm.CreateAccountNote(ctx, parties.Account.ID, "Invoice: "+link); err != nil {
		return InvoiceResult{}, fmt.Errorf("create account note: %w", err)
	}

	message := fmt.Sprintf("New Invoice: <%s/crm/sales/accounts/%d|%s> <%s|Invoice> :slightly_smiling_face:",
		o.crmPortalURL, parties.Account.ID, parties.Account.Name, link)
	if err := o.notifier.PostMessage(ctx, message); err != nil {
		o.logger.Warn("team notification failed", zap.Error(err))
	}

	return InvoiceResult{
		Link:           link,
		Ref:            ref,
		Delivery:       delivery,
		Reconciliation: reconciliation,
		Record:         record,
	}, nil
}
