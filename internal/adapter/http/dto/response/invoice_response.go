package response

import "github.com/railflow/salesops/internal/usecase"

type InvoiceResponse struct {
	Message          string `json:"message"`
	InvoiceLink      string `json:"invoice_link"`
	StatementNo      string `json:"statement_no"`
	BilledTotal      string `json:"billed_total"`
	DeliveryMode     string `json:"delivery_mode"`
	OpportunityID    int64  `json:"opportunity_id"`
	ReconcileOutcome string `json:"reconcile_outcome"`
	RecordID         string `json:"record_id"`
}

func FromInvoiceResult(res usecase.InvoiceResult) InvoiceResponse {
	return InvoiceResponse{
		Message:          "Invoice created",
		InvoiceLink:      res.Link,
		StatementNo:      res.Ref.StatementNo,
		BilledTotal:      res.Ref.BilledTotal.String(),
		DeliveryMode:     string(res.Delivery.Mode),
		OpportunityID:    res.Reconciliation.Opportunity.ID,
		ReconcileOutcome: string(res.Reconciliation.Outcome),
		RecordID:         res.Record.ID,
	}
}
