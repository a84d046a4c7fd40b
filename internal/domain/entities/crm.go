package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Contact is the CRM contact as returned by the CRM collaborator. Only the
// fields this service reads are modelled; the CRM remains the system of
// record.
type Contact struct {
	ID          int64  `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
	Phone       string `json:"mobile_number,omitempty"`
	JobTitle    string `json:"job_title,omitempty"`
	Address     string `json:"address,omitempty"`
	City        string `json:"city,omitempty"`
	State       string `json:"state,omitempty"`
	Zipcode     string `json:"zipcode,omitempty"`
	Country     string `json:"country,omitempty"`

	CustomField ContactCustomField `json:"custom_field"`
}

type ContactCustomField struct {
	Company       string `json:"cf_company,omitempty"`
	AccountID     string `json:"cf_account_id,omitempty"`
	LicenseStatus string `json:"cf_license_status,omitempty"`
}

// Account is the CRM sales account. CustomField carries the two external
// references this service owns: the billing network hash and the current
// opportunity id. Both are rewritten in place, never deleted.
type Account struct {
	ID          int64              `json:"id"`
	Name        string             `json:"name"`
	CustomField AccountCustomField `json:"custom_field"`
}

type AccountCustomField struct {
	NetworkHash   string `json:"cf_network_hash,omitempty"`
	OpportunityID string `json:"cf_opportunity_id,omitempty"`
}

// Network is the billing-side identity mirroring a CRM account. Estimates and
// invoices cannot be created until the account has one.
type Network struct {
	ID      int64  `json:"id"`
	HashKey string `json:"hash_key"`
	Name    string `json:"name"`
}

// NetworkDraft is the payload for lazily creating a billing network from the
// account and its primary contact.
type NetworkDraft struct {
	Name                    string `json:"name"`
	FirstName               string `json:"first_name,omitempty"`
	LastName                string `json:"last_name,omitempty"`
	Address                 string `json:"address,omitempty"`
	City                    string `json:"city,omitempty"`
	StateName               string `json:"state_name,omitempty"`
	ZipCode                 string `json:"zip_code,omitempty"`
	Country                 string `json:"country,omitempty"`
	BusinessEmail           string `json:"business_email"`
	PrimaryContactFirstName string `json:"primary_contact_first_name,omitempty"`
	PrimaryContactLastName  string `json:"primary_contact_last_name,omitempty"`
	Category                string `json:"category"`
	Currency                string `json:"currency"`
	Language                string `json:"language"`
}

// Opportunity is the CRM deal record reconciled against invoice amounts.
// The copy held by the CRM may be stale relative to a freshly computed
// invoice total; that staleness is the reconciler's dedup signal.
type Opportunity struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name"`
	Amount         decimal.Decimal `json:"amount"`
	SalesAccountID int64           `json:"sales_account_id"`
	DealStageID    int64           `json:"deal_stage_id"`
	ExpectedClose  time.Time       `json:"expected_close"`
}

// OpportunityDraft is the create document for a new deal.
type OpportunityDraft struct {
	Name           string          `json:"name"`
	Amount         decimal.Decimal `json:"amount"`
	SalesAccountID int64           `json:"sales_account_id"`
	DealStageID    int64           `json:"deal_stage_id"`
	ExpectedClose  time.Time       `json:"expected_close"`
	ContactEmail   string          `json:"cf_contact_email,omitempty"`
	AgentBand      string          `json:"cf_number_of_agents,omitempty"`
}

// ReconcileOutcome is the terminal state of one reconciliation pass.
type ReconcileOutcome string

const (
	ReconcileCreated       ReconcileOutcome = "created"
	ReconcileReplaced      ReconcileOutcome = "replaced"
	ReconcileStageAdvanced ReconcileOutcome = "stage_advanced"
)

// ReconcileResult pairs the outcome with the opportunity the account now
// points at.
type ReconcileResult struct {
	Outcome     ReconcileOutcome
	Opportunity Opportunity
}
