// Package crm implements the CRM collaborator gateway against a
// Freshsales-style REST API.
package crm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/railflow/salesops/internal/domain/entities"
	"github.com/railflow/salesops/internal/usecase/interfaces"
)

const requestTimeout = 10 * time.Second

// FreshsalesGateway talks to the CRM over JSON/HTTP with token-header auth.
// Every method is a single synchronous call; failures are wrapped and
// returned, never retried here.
type FreshsalesGateway struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

var _ interfaces.ICRMGateway = (*FreshsalesGateway)(nil)

func NewFreshsalesGateway(baseURL, apiKey string) *FreshsalesGateway {
	return &FreshsalesGateway{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

// Wire shapes. The CRM wraps every entity in a named envelope, and deal
// amounts arrive as either JSON numbers or strings; decimal handles both.

type contactEnvelope struct {
	Contact entities.Contact `json:"contact"`
}

type accountEnvelope struct {
	SalesAccount entities.Account `json:"sales_account"`
}

type dealDoc struct {
	ID             int64           `json:"id,omitempty"`
	Name           string          `json:"name"`
	Amount         decimal.Decimal `json:"amount"`
	SalesAccountID int64           `json:"sales_account_id"`
	DealStageID    int64           `json:"deal_stage_id"`
	ExpectedClose  string          `json:"expected_close,omitempty"`
	CustomField    dealCustomField `json:"custom_field,omitempty"`
}

type dealCustomField struct {
	ContactEmail   string `json:"cf_contact_email,omitempty"`
	NumberOfAgents string `json:"cf_number_of_agents,omitempty"`
}

type dealEnvelope struct {
	Deal dealDoc `json:"deal"`
}

func (g *FreshsalesGateway) GetContact(ctx context.Context, id int64) (entities.Contact, error) {
	var env contactEnvelope
	found, err := g.get(ctx, fmt.Sprintf("/api/contacts/%d", id), &env)
	if err != nil || !found {
		return entities.Contact{}, err
	}
	return env.Contact, nil
}

func (g *FreshsalesGateway) FindContactByEmail(ctx context.Context, email string) (entities.Contact, error) {
	var result struct {
		Contacts struct {
			Contacts []entities.Contact `json:"contacts"`
		} `json:"contacts"`
	}
	path := "/api/lookup?f=email&entities=contact&q=" + url.QueryEscape(email)
	if _, err := g.get(ctx, path, &result); err != nil {
		return entities.Contact{}, err
	}
	if len(result.Contacts.Contacts) == 0 {
		return entities.Contact{}, nil
	}
	return result.Contacts.Contacts[0], nil
}

func (g *FreshsalesGateway) CreateContact(ctx context.Context, contact entities.Contact, primaryAccountID int64) (entities.Contact, error) {
	body := struct {
		Contact struct {
			entities.Contact
			SalesAccounts []salesAccountLink `json:"sales_accounts,omitempty"`
		} `json:"contact"`
	}{}
	body.Contact.Contact = contact
	if primaryAccountID != 0 {
		body.Contact.SalesAccounts = []salesAccountLink{{ID: primaryAccountID, IsPrimary: true}}
	}

	var env contactEnvelope
	if err := g.post(ctx, "/api/contacts", body, &env); err != nil {
		return entities.Contact{}, err
	}
	return env.Contact, nil
}

type salesAccountLink struct {
	ID        int64 `json:"id"`
	IsPrimary bool  `json:"is_primary"`
}

func (g *FreshsalesGateway) GetAccount(ctx context.Context, id int64) (entities.Account, error) {
	var env accountEnvelope
	found, err := g.get(ctx, fmt.Sprintf("/api/sales_accounts/%d", id), &env)
	if err != nil || !found {
		return entities.Account{}, err
	}
	return env.SalesAccount, nil
}

func (g *FreshsalesGateway) FindAccountByName(ctx context.Context, name string) (entities.Account, error) {
	var result struct {
		SalesAccounts struct {
			SalesAccounts []entities.Account `json:"sales_accounts"`
		} `json:"sales_accounts"`
	}
	path := "/api/lookup?f=name&entities=sales_account&q=" + url.QueryEscape(name)
	if _, err := g.get(ctx, path, &result); err != nil {
		return entities.Account{}, err
	}
	if len(result.SalesAccounts.SalesAccounts) == 0 {
		return entities.Account{}, nil
	}
	return result.SalesAccounts.SalesAccounts[0], nil
}

func (g *FreshsalesGateway) CreateAccount(ctx context.Context, name string) (entities.Account, error) {
	body := accountEnvelope{SalesAccount: entities.Account{Name: name}}
	var env accountEnvelope
	if err := g.post(ctx, "/api/sales_accounts", body, &env); err != nil {
		return entities.Account{}, err
	}
	return env.SalesAccount, nil
}

func (g *FreshsalesGateway) UpdateAccountCustomField(ctx context.Context, id int64, patch entities.AccountCustomField) (entities.Account, error) {
	body := struct {
		SalesAccount struct {
			CustomField entities.AccountCustomField `json:"custom_field"`
		} `json:"sales_account"`
	}{}
	body.SalesAccount.CustomField = patch

	var env accountEnvelope
	if err := g.put(ctx, fmt.Sprintf("/api/sales_accounts/%d", id), body, &env); err != nil {
		return entities.Account{}, err
	}
	return env.SalesAccount, nil
}

func (g *FreshsalesGateway) CreateContactNote(ctx context.Context, contactID int64, text string) error {
	return g.createNote(ctx, "Contact", contactID, text)
}

func (g *FreshsalesGateway) CreateAccountNote(ctx context.Context, accountID int64, text string) error {
	return g.createNote(ctx, "SalesAccount", accountID, text)
}

func (g *FreshsalesGateway) createNote(ctx context.Context, targetableType string, targetableID int64, text string) error {
	body := struct {
		Note struct {
			Description    string `json:"description"`
			TargetableType string `json:"targetable_type"`
			TargetableID   int64  `json:"targetable_id"`
		} `json:"note"`
	}{}
	body.Note.Description = text
	body.Note.TargetableType = targetableType
	body.Note.TargetableID = targetableID
	return g.post(ctx, "/api/notes", body, nil)
}

func (g *FreshsalesGateway) GetOpportunity(ctx context.Context, id int64) (entities.Opportunity, error) {
	var env dealEnvelope
	found, err := g.get(ctx, fmt.Sprintf("/api/deals/%d", id), &env)
	if err != nil || !found {
		return entities.Opportunity{}, err
	}
	return dealToOpportunity(env.Deal), nil
}

func (g *FreshsalesGateway) CreateOpportunity(ctx context.Context, draft entities.OpportunityDraft) (entities.Opportunity, error) {
	body := dealEnvelope{Deal: dealDoc{
		Name:           draft.Name,
		Amount:         draft.Amount,
		SalesAccountID: draft.SalesAccountID,
		DealStageID:    draft.DealStageID,
		ExpectedClose:  draft.ExpectedClose.Format("2006-01-02"),
		CustomField: dealCustomField{
			ContactEmail:   draft.ContactEmail,
			NumberOfAgents: draft.AgentBand,
		},
	}}
	var env dealEnvelope
	if err := g.post(ctx, "/api/deals", body, &env); err != nil {
		return entities.Opportunity{}, err
	}
	return dealToOpportunity(env.Deal), nil
}

func (g *FreshsalesGateway) UpdateOpportunityStage(ctx context.Context, id int64, dealStageID int64) (entities.Opportunity, error) {
	body := struct {
		Deal struct {
			DealStageID int64 `json:"deal_stage_id"`
		} `json:"deal"`
	}{}
	body.Deal.DealStageID = dealStageID

	var env dealEnvelope
	if err := g.put(ctx, fmt.Sprintf("/api/deals/%d", id), body, &env); err != nil {
		return entities.Opportunity{}, err
	}
	return dealToOpportunity(env.Deal), nil
}

func dealToOpportunity(d dealDoc) entities.Opportunity {
	return entities.Opportunity{
		ID:             d.ID,
		Name:           d.Name,
		Amount:         d.Amount,
		SalesAccountID: d.SalesAccountID,
		DealStageID:    d.DealStageID,
	}
}

// get returns found=false on a 404 so callers can branch on presence.
func (g *FreshsalesGateway) get(ctx context.Context, path string, out any) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+path, nil)
	if err != nil {
		return false, fmt.Errorf("crm: create request: %w", err)
	}
	g.setHeaders(req)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("crm: GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return false, nil
	}
	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("crm: GET %s: unexpected status %d", path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return false, fmt.Errorf("crm: GET %s: decode response: %w", path, err)
	}
	return true, nil
}

func (g *FreshsalesGateway) post(ctx context.Context, path string, body, out any) error {
	return g.send(ctx, http.MethodPost, path, body, out)
}

func (g *FreshsalesGateway) put(ctx context.Context, path string, body, out any) error {
	return g.send(ctx, http.MethodPut, path, body, out)
}

func (g *FreshsalesGateway) send(ctx context.Context, method, path string, body, out any) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("crm: marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("crm: create request: %w", err)
	}
	g.setHeaders(req)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("crm: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("crm: %s %s: unexpected status %d", method, path, resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("crm: %s %s: decode response: %w", method, path, err)
	}
	return nil
}

func (g *FreshsalesGateway) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Token token="+g.apiKey)
}
