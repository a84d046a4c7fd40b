package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceDocument is the write-once billing document handed to the billing
// gateway. The same shape backs both estimates (quote path) and invoices
// (invoice path); estimates simply omit the due date on the provider side.
//
// Net-30 policy: DueDate is always IssueDate + 30 days.
type InvoiceDocument struct {
	ConnectionID  int64
	IssueDate     time.Time
	DueDate       time.Time
	Summary       string
	Note          string
	SendReminders bool
	LineItems     []LineItem
}

// StatementRef is the billing provider's handle for a created estimate or
// invoice. HashKey addresses the hosted document, StatementNo is the
// human-facing number printed on emails and notes.
type StatementRef struct {
	ID          int64
	StatementNo string
	HashKey     string
	BilledTotal decimal.Decimal
}

// DeliveryPayload customizes invoice delivery. A nil payload means the
// provider's default delivery channel.
type DeliveryPayload struct {
	Recipients  string   `json:"recipients"`
	BlindCopies []string `json:"blind_copies,omitempty"`
	Subject     string   `json:"subject"`
	Message     string   `json:"message"`
	Attachment  bool     `json:"attachment"`
}

// DeliveryMode records which channel an invoice went out on.
type DeliveryMode string

const (
	DeliveryModeDefault DeliveryMode = "default"
	DeliveryModeCustom  DeliveryMode = "custom"
)

// DeliveryResult is the dispatcher's terminal state for one invoice.
type DeliveryResult struct {
	Mode       DeliveryMode
	Recipients string
}

// BillingRecordKind distinguishes audit rows for estimates from invoices.
type BillingRecordKind string

const (
	BillingRecordEstimate BillingRecordKind = "estimate"
	BillingRecordInvoice  BillingRecordKind = "invoice"
)

// BillingRecord is the audit row persisted per issued statement.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (account_id-index): account_id
type BillingRecord struct {
	ID          string            `json:"id"`
	Kind        BillingRecordKind `json:"kind"`
	AccountID   int64             `json:"account_id"`
	ContactID   int64             `json:"contact_id"`
	StatementNo string            `json:"statement_no"`
	HashKey     string            `json:"hash_key"`
	Amount      decimal.Decimal   `json:"amount"`
	Summary     string            `json:"summary"`
	CreatedAt   time.Time         `json:"created_at"`
}
