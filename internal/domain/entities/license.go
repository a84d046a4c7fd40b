package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// LicenseType selects the pricing table for a quote or invoice.
//
// Incoming payloads may carry any casing ("Standard", "ENTERPRISE"); the
// pricing calculator normalizes before matching. Anything outside the two
// known values is rejected with a PricingError rather than a panic or a
// transport-level failure, because callers must render it as a 400.
type LicenseType string

const (
	LicenseTypeStandard   LicenseType = "standard"
	LicenseTypeEnterprise LicenseType = "enterprise"
)

// PerpetualYears is the sentinel term meaning a non-expiring license.
// It follows its own pricing formula instead of the multi-year discount table.
const PerpetualYears = 4

// PricingRequest is the categorical input of the pricing calculator.
// NumUsers and LicenseYears ranges are validated by the orchestrators before
// the calculator runs; the calculator still rejects an unknown license type.
type PricingRequest struct {
	LicenseType  string
	NumUsers     int
	LicenseYears int
}

// LineItem is one billing line on an estimate or invoice. Price is signed:
// the multi-year discount line carries a negative amount.
type LineItem struct {
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	Unit        string          `json:"unit,omitempty"`
}

// PriceQuote is the derived pricing result. It is computed once per request
// and never mutated afterwards; the display labels are carried alongside the
// numbers because their exact textual shape is an external contract (they are
// embedded verbatim in CRM notes, invoice summaries and delivery emails).
type PriceQuote struct {
	BasePrice    decimal.Decimal
	DiscountRate decimal.Decimal
	Tier         int
	LicenseYears int
	Perpetual    bool

	TypeLabel string // capitalized license type, e.g. "Standard"
	UserBand  string // "{20*tier}-{20*(tier+1)}"
	TermLabel string // "N Years" or "Perpetual (never expiring)"

	LineItems []LineItem
}

// Total returns the signed sum of all line items.
func (q PriceQuote) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range q.LineItems {
		total = total.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}

// PricingErrorKind tags the expected, user-facing pricing failures.
type PricingErrorKind string

const (
	PricingErrorInvalidLicenseType PricingErrorKind = "INVALID_LICENSE_TYPE"
)

// PricingError is returned as an ordinary error value from the pricing
// calculator. It is deliberately distinct from collaborator failures: the
// handler maps it to a 400 without aborting the pipeline with a 5xx.
type PricingError struct {
	Kind    PricingErrorKind
	Message string
}

func (e *PricingError) Error() string { return e.Message }
