package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/railflow/salesops/internal/domain/entities"
	"github.com/railflow/salesops/internal/usecase/interfaces"
)

var ErrRecordNotFound = errors.New("billing record does not exist")

// IRecordQuery is the audit-trail read path.
type IRecordQuery interface {
	GetRecord(ctx context.Context, id string) (entities.BillingRecord, error)
	ListAccountRecords(ctx context.Context, accountID int64) ([]entities.BillingRecord, error)
}

// RecordQuery serves the statements this service has issued. Read-only: the
// pipeline orchestrators are the only writers.
type RecordQuery struct {
	records interfaces.IBillingRecordRepository
}

var _ IRecordQuery = (*RecordQuery)(nil)

func NewRecordQuery(records interfaces.IBillingRecordRepository) *RecordQuery {
	return &RecordQuery{records: records}
}

func (q *RecordQuery) GetRecord(ctx context.Context, id string) (entities.BillingRecord, error) {
	rec, err := q.records.GetByID(ctx, id)
	if err != nil {
		return entities.BillingRecord{}, fmt.Errorf("get billing record %s: %w", id, err)
	}
	if rec.ID == "" {
		return entities.BillingRecord{}, ErrRecordNotFound
	}
	return rec, nil
}

func (q *RecordQuery) ListAccountRecords(ctx context.Context, accountID int64) ([]entities.BillingRecord, error) {
	recs, err := q.records.ListByAccountID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("list billing records for account %d: %w", accountID, err)
	}
	return recs, nil
}
