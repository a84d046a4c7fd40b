package response

import "github.com/railflow/salesops/internal/usecase"

type SignupResponse struct {
	Message   string `json:"message"`
	ContactID int64  `json:"contact_id"`
	AccountID int64  `json:"account_id,omitempty"`
	Company   string `json:"company_name,omitempty"`
}

func FromSignupResult(res usecase.SignupResult) SignupResponse {
	message := "contact created"
	if res.Outcome == usecase.SignupDuplicate {
		message = "Duplicate Registration"
	}
	return SignupResponse{
		Message:   message,
		ContactID: res.ContactID,
		AccountID: res.AccountID,
		Company:   res.Company,
	}
}
