package request

import "github.com/railflow/salesops/internal/usecase"

// SignupRequest is the lead-registration payload. The camelCase keys match
// the signup form integration that posts it.
type SignupRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	JobTitle  string `json:"jobTitle"`
	Company   string `json:"company"`
	Notify    *bool  `json:"notify"`
}

func (r SignupRequest) ToCommand() usecase.SignupCommand {
	return usecase.SignupCommand{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Phone:     r.Phone,
		JobTitle:  r.JobTitle,
		Company:   r.Company,
		Notify:    r.Notify,
	}
}
