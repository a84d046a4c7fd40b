package usecase

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/railflow/salesops/internal/domain/entities"
	"github.com/railflow/salesops/internal/usecase/interfaces"
)

var (
	ErrContactNotFound = errors.New("contact does not exist")
	ErrAccountNotFound = errors.New("account does not exist")
)

// partyResolver loads the CRM contact and account for a request and ensures
// the account has a billing network, creating one lazily from the contact's
// details when absent. The freshly minted network hash is written back onto
// the account so subsequent requests skip the creation.
type partyResolver struct {
	crm     interfaces.ICRMGateway
	billing interfaces.IBillingGateway
	logger  *zap.Logger
}

type pipelineParties struct {
	Contact entities.Contact
	Account entities.Account
	Network entities.Network
}

func (r partyResolver) resolve(ctx context.Context, contactID, accountID int64) (pipelineParties, error) {
	contact, err := r.crm.GetContact(ctx, contactID)
	if err != nil {
		return pipelineParties{}, fmt.Errorf("get contact %d: %w", contactID, err)
	}
	if contact.ID == 0 {
		return pipelineParties{}, ErrContactNotFound
	}

	account, err := r.crm.GetAccount(ctx, accountID)
	if err != nil {
		return pipelineParties{}, fmt.Errorf("get account %d: %w", accountID, err)
	}
	if account.ID == 0 {
		return pipelineParties{}, ErrAccountNotFound
	}

	network, err := r.ensureNetwork(ctx, account, contact)
	if err != nil {
		return pipelineParties{}, err
	}
	return pipelineParties{Contact: contact, Account: account, Network: network}, nil
}

func (r partyResolver) ensureNetwork(ctx context.Context, account entities.Account, contact entities.Contact) (entities.Network, error) {
	if hash := account.CustomField.NetworkHash; hash != "" {
		network, err := r.billing.GetNetwork(ctx, hash)
		if err != nil {
			return entities.Network{}, fmt.Errorf("get network %s: %w", hash, err)
		}
		if network.ID != 0 {
			return network, nil
		}
		r.logger.Warn("stored network hash resolves to nothing, recreating",
			zap.Int64("account_id", account.ID), zap.String("network_hash", hash))
	}

	draft := entities.NetworkDraft{
		Name:                    account.Name,
		FirstName:               contact.FirstName,
		LastName:                contact.LastName,
		Address:                 contact.Address,
		City:                    contact.City,
		StateName:               contact.State,
		ZipCode:                 contact.Zipcode,
		Country:                 contact.Country,
		BusinessEmail:           contact.Email,
		PrimaryContactFirstName: contact.FirstName,
		PrimaryContactLastName:  contact.LastName,
		Category:                "organization",
		Currency:                "USD",
		Language:                "en-us",
	}
	network, err := r.billing.CreateNetwork(ctx, draft)
	if err != nil {
		return entities.Network{}, fmt.Errorf("create network for account %d: %w", account.ID, err)
	}
	if _, err := r.crm.UpdateAccountCustomField(ctx, account.ID, entities.AccountCustomField{NetworkHash: network.HashKey}); err != nil {
		return entities.Network{}, fmt.Errorf("store network hash on account %d: %w", account.ID, err)
	}
	r.logger.Info("billing network created",
		zap.Int64("account_id", account.ID), zap.Int64("network_id", network.ID))
	return network, nil
}
