package response

import (
	"time"

	"github.com/railflow/salesops/internal/domain/entities"
)

type RecordResponse struct {
	ID          string `json:"id"`
	Kind        string `json:"kind"`
	AccountID   int64  `json:"account_id"`
	ContactID   int64  `json:"contact_id"`
	StatementNo string `json:"statement_no"`
	HashKey     string `json:"hash_key"`
	Amount      string `json:"amount"`
	Summary     string `json:"summary"`
	CreatedAt   string `json:"created_at"`
}

func FromBillingRecord(rec entities.BillingRecord) RecordResponse {
	return RecordResponse{
		ID:          rec.ID,
		Kind:        string(rec.Kind),
		AccountID:   rec.AccountID,
		ContactID:   rec.ContactID,
		StatementNo: rec.StatementNo,
		HashKey:     rec.HashKey,
		Amount:      rec.Amount.String(),
		Summary:     rec.Summary,
		CreatedAt:   rec.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func FromBillingRecords(recs []entities.BillingRecord) []RecordResponse {
	out := make([]RecordResponse, 0, len(recs))
	for _, rec := range recs {
		out = append(out, FromBillingRecord(rec))
	}
	return out
}
