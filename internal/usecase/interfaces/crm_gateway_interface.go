package interfaces

import (
	"context"

	"github.com/railflow/salesops/internal/domain/entities"
)

// ICRMGateway abstracts the CRM collaborator (contacts, accounts, notes,
// opportunities). All calls are synchronous remote calls and may fail with a
// transport or validation error; failures are wrapped, never retried.
//
// Lookup methods return (zero value, nil) when the record does not exist, so
// callers can branch on presence without unwrapping provider status codes.
type ICRMGateway interface {
	GetContact(ctx context.Context, id int64) (entities.Contact, error)
	FindContactByEmail(ctx context.Context, email string) (entities.Contact, error)
	CreateContact(ctx context.Context, contact entities.Contact, primaryAccountID int64) (entities.Contact, error)

	GetAccount(ctx context.Context, id int64) (entities.Account, error)
	FindAccountByName(ctx context.Context, name string) (entities.Account, error)
	CreateAccount(ctx context.Context, name string) (entities.Account, error)
	UpdateAccountCustomField(ctx context.Context, id int64, patch entities.AccountCustomField) (entities.Account, error)

	CreateContactNote(ctx context.Context, contactID int64, text string) error
	CreateAccountNote(ctx context.Context, accountID int64, text string) error

	GetOpportunity(ctx context.Context, id int64) (entities.Opportunity, error)
	CreateOpportunity(ctx context.Context, draft entities.OpportunityDraft) (entities.Opportunity, error)
	UpdateOpportunityStage(ctx context.Context, id int64, dealStageID int64) (entities.Opportunity, error)
}
