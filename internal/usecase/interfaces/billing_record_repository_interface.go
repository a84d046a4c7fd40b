package interfaces

import (
	"context"

	"github.com/railflow/salesops/internal/domain/entities"
)

// IBillingRecordRepository abstracts DynamoDB persistence for the audit trail
// of issued estimates and invoices.
type IBillingRecordRepository interface {
	Create(ctx context.Context, rec entities.BillingRecord) (entities.BillingRecord, error)
	GetByID(ctx context.Context, id string) (entities.BillingRecord, error)
	ListByAccountID(ctx context.Context, accountID int64) ([]entities.BillingRecord, error)
}
