package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/railflow/salesops/internal/domain/entities"
	"github.com/railflow/salesops/internal/usecase/interfaces"
)

var (
	ErrMissingEmail   = errors.New("missing required parameter: email")
	ErrMissingCompany = errors.New("missing required parameter: company")
)

// SignupOutcome distinguishes a fresh lead from a repeat registration.
type SignupOutcome string

const (
	SignupCreated   SignupOutcome = "created"
	SignupDuplicate SignupOutcome = "duplicate"
)

type SignupCommand struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	JobTitle  string
	Company   string
	Notify    *bool // nil means notify
}

type SignupResult struct {
	Outcome   SignupOutcome
	ContactID int64
	AccountID int64
	Company   string
}

// IContactSignup is the lead-registration entry point.
type IContactSignup interface {
	Signup(ctx context.Context, cmd SignupCommand) (SignupResult, error)
}

// ContactSignup de-duplicates leads by email lookup before creating anything:
// a known email short-circuits as a duplicate registration with no new
// records. New leads get their company account resolved or lazily created,
// the contact linked to it, and an optional team notification.
type ContactSignup struct {
	crm          interfaces.ICRMGateway
	notifier     interfaces.INotifier
	logger       *zap.Logger
	crmPortalURL string
}

var _ IContactSignup = (*ContactSignup)(nil)

func NewContactSignup(crm interfaces.ICRMGateway, notifier interfaces.INotifier, logger *zap.Logger, crmPortalURL string) *ContactSignup {
	return &ContactSignup{crm: crm, notifier: notifier, logger: logger, crmPortalURL: crmPortalURL}
}

func (s *ContactSignup) Signup(ctx context.Context, cmd SignupCommand) (SignupResult, error) {
	if cmd.Email == "" {
		return SignupResult{}, ErrMissingEmail
	}
	if cmd.Company == "" {
		return SignupResult{}, ErrMissingCompany
	}

	existing, err := s.crm.FindContactByEmail(ctx, cmd.Email)
	if err != nil {
		return SignupResult{}, fmt.Errorf("find contact by email: %w", err)
	}
	if existing.ID != 0 {
		s.logger.Info("duplicate registration",
			zap.String("email", cmd.Email), zap.Int64("contact_id", existing.ID))
		// The CRM stores the linked account id as a string custom field;
		// a blank or malformed value echoes as zero.
		accountID, _ := strconv.ParseInt(existing.CustomField.AccountID, 10, 64)
		return SignupResult{
			Outcome:   SignupDuplicate,
			ContactID: existing.ID,
			AccountID: accountID,
			Company:   existing.CustomField.Company,
		}, nil
	}

	account, err := s.crm.FindAccountByName(ctx, cmd.Company)
	if err != nil {
		return SignupResult{}, fmt.Errorf("find account by name: %w", err)
	}
	if account.ID == 0 {
		account, err = s.crm.CreateAccount(ctx, cmd.Company)
		if err != nil {
			return SignupResult{}, fmt.Errorf("create account %q: %w", cmd.Company, err)
		}
	}

	contact, err := s.crm.CreateContact(ctx, entities.Contact{
		FirstName: cmd.FirstName,
		LastName:  cmd.LastName,
		Email:     cmd.Email,
		Phone:     cmd.Phone,
		JobTitle:  cmd.JobTitle,
		CustomField: entities.ContactCustomField{
			Company:   cmd.Company,
			AccountID: strconv.FormatInt(account.ID, 10),
		},
	}, account.ID)
	if err != nil {
		return SignupResult{}, fmt.Errorf("create contact: %w", err)
	}

	if cmd.Notify == nil || *cmd.Notify {
		message := fmt.Sprintf("New lead sign up: %s: %s/crm/sales/contacts/%d",
			cmd.Company, s.crmPortalURL, contact.ID)
		if err := s.notifier.PostMessage(ctx, message); err != nil {
			s.logger.Warn("team notification failed", zap.Error(err))
		}
	}

	return SignupResult{
		Outcome:   SignupCreated,
		ContactID: contact.ID,
		AccountID: account.ID,
		Company:   cmd.Company,
	}, nil
}
