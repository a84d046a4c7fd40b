package request

import "github.com/railflow/salesops/internal/usecase"

// QuoteRequest is the quote-path payload. NumUsers stays a pointer so the
// orchestrator can tell "absent" from a legitimate zero.
type QuoteRequest struct {
	ContactID    int64  `json:"contact_id"`
	AccountID    int64  `json:"account_id"`
	NumUsers     *int   `json:"num_users"`
	LicenseType  string `json:"license_type"`
	LicenseYears int    `json:"license_years"`
}

func (r QuoteRequest) ToCommand() usecase.PipelineCommand {
	return usecase.PipelineCommand{
		ContactID:    r.ContactID,
		AccountID:    r.AccountID,
		NumUsers:     r.NumUsers,
		LicenseType:  r.LicenseType,
		LicenseYears: r.LicenseYears,
	}
}
