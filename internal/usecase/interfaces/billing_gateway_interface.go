package interfaces

import (
	"context"

	"github.com/railflow/salesops/internal/domain/entities"
)

// IBillingGateway abstracts the billing collaborator. Networks mirror CRM
// accounts on the billing side and must exist before statements can be
// created against them.
//
// DeliverInvoice with a nil payload uses the provider's default delivery
// channel; a non-nil payload sends the custom email. There is no fallback
// between the two; a failed custom delivery propagates.
type IBillingGateway interface {
	CreateNetwork(ctx context.Context, draft entities.NetworkDraft) (entities.Network, error)
	GetNetwork(ctx context.Context, hashKey string) (entities.Network, error)

	CreateEstimate(ctx context.Context, doc entities.InvoiceDocument) (entities.StatementRef, error)
	CreateInvoice(ctx context.Context, doc entities.InvoiceDocument) (entities.StatementRef, error)
	DeliverInvoice(ctx context.Context, hashKey string, payload *entities.DeliveryPayload) error
}
