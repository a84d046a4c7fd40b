package usecase

import (
	"fmt"
	"time"

	"github.com/railflow/salesops/internal/domain/entities"
)

// Net-30: every statement is due 30 days after issue.
const netTermsDays = 30

// ComposeStatement assembles a priced quote into the write-once billing
// document. No validation happens here; the orchestrators and the pricing
// calculator have already rejected bad input.
//
// The summary's exact shape is an external contract: it is reused verbatim in
// CRM notes and delivery emails.
func ComposeStatement(kind entities.BillingRecordKind, quote entities.PriceQuote, network entities.Network, now time.Time) entities.InvoiceDocument {
	label := "Invoice"
	if kind == entities.BillingRecordEstimate {
		label = "Quote"
	}

	return entities.InvoiceDocument{
		ConnectionID:  network.ID,
		IssueDate:     now,
		DueDate:       now.AddDate(0, 0, netTermsDays),
		Summary:       fmt.Sprintf("Railflow %s %s: %s License: %s Users", quote.TypeLabel, label, quote.TermLabel, quote.UserBand),
		Note:          "Custom item note",
		SendReminders: false,
		LineItems:     quote.LineItems,
	}
}
