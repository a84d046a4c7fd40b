package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/railflow/salesops/internal/domain/entities"
	"github.com/railflow/salesops/internal/usecase/interfaces"
)

var (
	ErrMissingContactID = errors.New("missing required parameter: contact_id")
	ErrMissingAccountID = errors.New("missing required parameter: account_id")
	ErrMissingNumUsers  = errors.New("missing required parameter: num_users")
	ErrInvalidNumUsers  = errors.New("invalid num_users: valid value is: 0-49")

	// The quote path deliberately rejects the perpetual sentinel (4) that the
	// invoice path accepts.
	ErrInvalidQuoteLicenseYears   = errors.New("invalid license_years: valid values are 1-3")
	ErrInvalidInvoiceLicenseYears = errors.New("invalid license_years: valid values are 1-4")
)

// PipelineCommand is the validated request both orchestrators consume.
// NumUsers is a pointer because "absent" and "zero" are different failures.
type PipelineCommand struct {
	ContactID    int64
	AccountID    int64
	NumUsers     *int
	LicenseType  string
	LicenseYears int

	// Invoice path only: explicit recipient switches delivery to the custom
	// channel; blind copies ride along independently.
	RecipientEmail     string
	NotificationEmails []string
}

func (c PipelineCommand) validate(maxYears int) error {
	if c.ContactID == 0 {
		return ErrMissingContactID
	}
	if c.AccountID == 0 {
		return ErrMissingAccountID
	}
	if c.NumUsers == nil {
		return ErrMissingNumUsers
	}
	if *c.NumUsers < 0 || *c.NumUsers > 49 {
		return ErrInvalidNumUsers
	}
	if c.LicenseYears < 1 || c.LicenseYears > maxYears {
		if maxYears == entities.PerpetualYears {
			return ErrInvalidInvoiceLicenseYears
		}
		return ErrInvalidQuoteLicenseYears
	}
	return nil
}

// QuoteResult is returned to the handler on success.
type QuoteResult struct {
	Link   string
	Ref    entities.StatementRef
	Record entities.BillingRecord
}

// IQuoteOrchestrator is the quote-path entry point.
type IQuoteOrchestrator interface {
	CreateQuote(ctx context.Context, cmd PipelineCommand) (QuoteResult, error)
}

// QuoteOrchestrator validates the request, resolves the CRM parties and the
// billing network, prices the license, creates the hosted estimate, records
// the audit row, links the estimate in CRM notes and pings the team channel.
//
// A collaborator failure aborts the remaining steps but nothing already done
// is compensated: sent notes and notifications stay sent.
type QuoteOrchestrator struct {
	parties  partyResolver
	crm      interfaces.ICRMGateway
	billing  interfaces.IBillingGateway
	records  interfaces.IBillingRecordRepository
	notifier interfaces.INotifier
	logger   *zap.Logger

	crmPortalURL     string
	billingPortalURL string
}

var _ IQuoteOrchestrator = (*QuoteOrchestrator)(nil)

func NewQuoteOrchestrator(
	crm interfaces.ICRMGateway,
	billing interfaces.IBillingGateway,
	records interfaces.IBillingRecordRepository,
	notifier interfaces.INotifier,
	logger *zap.Logger,
	crmPortalURL, billingPortalURL string,
) *QuoteOrchestrator {
	return &QuoteOrchestrator{
		parties:          partyResolver{crm: crm, billing: billing, logger: logger},
		crm:              crm,
		billing:          billing,
		records:          records,
		notifier:         notifier,
		logger:           logger,
		crmPortalURL:     crmPortalURL,
		billingPortalURL: billingPortalURL,
	}
}

func (o *QuoteOrchestrator) CreateQuote(ctx context.Context, cmd PipelineCommand) (QuoteResult, error) {
	if err := cmd.validate(3); err != nil {
		return QuoteResult{}, err
	}

	parties, err := o.parties.resolve(ctx, cmd.ContactID, cmd.AccountID)
	if err != nil {
		return QuoteResult{}, err
	}

	now := time.Now().UTC()
	quote, err := ComputePrice(entities.PricingRequest{
		LicenseType:  cmd.LicenseType,
		NumUsers:     *cmd.NumUsers,
		LicenseYears: cmd.LicenseYears,
	}, now)
	if err != nil {
		return QuoteResult{}, err
	}

	doc := ComposeStatement(entities.BillingRecordEstimate, quote, parties.Network, now)
	ref, err := o.billing.CreateEstimate(ctx, doc)
	if err != nil {
		return QuoteResult{}, fmt.Errorf("create estimate: %w", err)
	}
	o.logger.Info("estimate created",
		zap.String("statement_no", ref.StatementNo), zap.Int64("account_id", parties.Account.ID))

	record, err := o.records.Create(ctx, entities.BillingRecord{
		ID:          uuid.NewString(),
		Kind:        entities.BillingRecordEstimate,
		AccountID:   parties.Account.ID,
		ContactID:   parties.Contact.ID,
		StatementNo: ref.StatementNo,
		HashKey:     ref.HashKey,
		Amount:      ref.BilledTotal,
		Summary:     doc.Summary,
		CreatedAt:   now,
	})
	if err != nil {
		return QuoteResult{}, fmt.Errorf("record estimate: %w", err)
	}

	link := fmt.Sprintf("%s/estm/%s", o.billingPortalURL, ref.HashKey)
	if err := o.crm.CreateContactNote(ctx, parties.Contact.ID, "Quote: "+link); err != nil {
		return QuoteResult{}, fmt.Errorf("create contact note: %w", err)
	}
	if err := o.crm.CreateAccountNote(ctx, parties.Account.ID, "Quote: "+link); err != nil {
		return QuoteResult{}, fmt.Errorf("create account note: %w", err)
	}

	message := fmt.Sprintf("New Quote: <%s/crm/sales/accounts/%d|%s> <%s|Quote> :slightly_smiling_face:",
		o.crmPortalURL, parties.Account.ID, parties.Account.Name, link)
	if err := o.notifier.PostMessage(ctx, message); err != nil {
		o.logger.Warn("team notification failed", zap.Error(err))
	}

	return QuoteResult{Link: link, Ref: ref, Record: record}, nil
}
