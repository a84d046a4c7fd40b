package request

import "github.com/railflow/salesops/internal/usecase"

// InvoiceRequest is the invoice-path payload. An empty ContactEmail selects
// the billing provider's default delivery channel; NotificationEmails are
// blind copies and independent of the primary recipient.
type InvoiceRequest struct {
	ContactID    int64  `json:"contact_id"`
	AccountID    int64  `json:"account_id"`
	NumUsers     *int   `json:"num_users"`
	LicenseType  string `json:"license_type"`
	LicenseYears int    `json:"license_years"`

	ContactEmail       string   `json:"contact_email"`
	NotificationEmails []string `json:"notification_emails"`
}

func (r InvoiceRequest) ToCommand() usecase.PipelineCommand {
	return usecase.PipelineCommand{
		ContactID:          r.ContactID,
		AccountID:          r.AccountID,
		NumUsers:           r.NumUsers,
		LicenseType:        r.LicenseType,
		LicenseYears:       r.LicenseYears,
		RecipientEmail:     r.ContactEmail,
		NotificationEmails: r.NotificationEmails,
	}
}
