package usecase

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/railflow/salesops/internal/domain/entities"
	"github.com/railflow/salesops/internal/usecase/interfaces"
)

// IOpportunityReconciler keeps the CRM deal record in sync with the latest
// invoice amount for an account.
type IOpportunityReconciler interface {
	Reconcile(ctx context.Context, account entities.Account, draft entities.OpportunityDraft) (entities.ReconcileResult, error)
}

// OpportunityReconciler treats the stored opportunity as a remote cache keyed
// by amount:
//
//   - no stored id            -> create, persist the id on the account (Created)
//   - fetch fails or amount   -> create a new deal, overwrite the stored id;
//     differs from proposed      the old record is abandoned, not deleted (Replaced)
//   - amount matches          -> advance the stage of the existing deal
//     (StageAdvanced)
//
// Two invoices that compute the same amount for one account collapse into a
// single deal; that is the accepted approximation, not a content hash.
// The read-then-write of the stored id has no cross-request lock: concurrent
// requests for one account race and the last write wins.
type OpportunityReconciler struct {
	crm    interfaces.ICRMGateway
	logger *zap.Logger
}

var _ IOpportunityReconciler = (*OpportunityReconciler)(nil)

func NewOpportunityReconciler(crm interfaces.ICRMGateway, logger *zap.Logger) *OpportunityReconciler {
	return &OpportunityReconciler{crm: crm, logger: logger}
}

func (r *OpportunityReconciler) Reconcile(ctx context.Context, account entities.Account, draft entities.OpportunityDraft) (entities.ReconcileResult, error) {
	stored := account.CustomField.OpportunityID
	if stored == "" {
		opp, err := r.replace(ctx, account, draft)
		if err != nil {
			return entities.ReconcileResult{}, err
		}
		r.logger.Info("opportunity created", zap.Int64("account_id", account.ID), zap.Int64("opportunity_id", opp.ID))
		return entities.ReconcileResult{Outcome: entities.ReconcileCreated, Opportunity: opp}, nil
	}

	existing, stale := r.fetchStored(ctx, stored, draft)
	if stale {
		opp, err := r.replace(ctx, account, draft)
		if err != nil {
			return entities.ReconcileResult{}, err
		}
		r.logger.Info("opportunity replaced",
			zap.Int64("account_id", account.ID),
			zap.String("previous_opportunity_id", stored),
			zap.Int64("opportunity_id", opp.ID))
		return entities.ReconcileResult{Outcome: entities.ReconcileReplaced, Opportunity: opp}, nil
	}

	updated, err := r.crm.UpdateOpportunityStage(ctx, existing.ID, draft.DealStageID)
	if err != nil {
		return entities.ReconcileResult{}, fmt.Errorf("advance opportunity %d stage: %w", existing.ID, err)
	}
	r.logger.Info("opportunity moved to invoice column",
		zap.Int64("account_id", account.ID), zap.Int64("opportunity_id", existing.ID))
	return entities.ReconcileResult{Outcome: entities.ReconcileStageAdvanced, Opportunity: updated}, nil
}

// fetchStored loads the referenced deal and reports whether it should be
// treated as stale. A fetch failure is a staleness signal, never an error:
// an unreachable record is abandoned and a fresh deal takes its place.
func (r *OpportunityReconciler) fetchStored(ctx context.Context, stored string, draft entities.OpportunityDraft) (entities.Opportunity, bool) {
	id, err := strconv.ParseInt(stored, 10, 64)
	if err != nil {
		r.logger.Warn("stored opportunity id is not numeric", zap.String("opportunity_id", stored))
		return entities.Opportunity{}, true
	}
	existing, err := r.crm.GetOpportunity(ctx, id)
	if err != nil {
		r.logger.Warn("stored opportunity fetch failed", zap.Int64("opportunity_id", id), zap.Error(err))
		return entities.Opportunity{}, true
	}
	if existing.ID == 0 {
		return entities.Opportunity{}, true
	}
	// Amount mismatch means the deal scope changed (different band or term).
	return existing, !existing.Amount.Equal(draft.Amount)
}

func (r *OpportunityReconciler) replace(ctx context.Context, account entities.Account, draft entities.OpportunityDraft) (entities.Opportunity, error) {
	opp, err := r.crm.CreateOpportunity(ctx, draft)
	if err != nil {
		return entities.Opportunity{}, fmt.Errorf("create opportunity for account %d: %w", account.ID, err)
	}
	_, err = r.crm.UpdateAccountCustomField(ctx, account.ID, entities.AccountCustomField{
		OpportunityID: strconv.FormatInt(opp.ID, 10),
	})
	if err != nil {
		return entities.Opportunity{}, fmt.Errorf("store opportunity id on account %d: %w", account.ID, err)
	}
	return opp, nil
}
