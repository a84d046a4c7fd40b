package usecase

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/railflow/salesops/internal/domain/entities"
	mock_interfaces "github.com/railflow/salesops/internal/usecase/interfaces/mocks"
)

func validSignupCommand() SignupCommand {
	return SignupCommand{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@acme.com",
		Company:   "Acme",
	}
}

func TestContactSignup_Validations(t *testing.T) {
	s := NewContactSignup(nil, nil, zap.NewNop(), "")

	t.Run("missing email", func(t *testing.T) {
		cmd := validSignupCommand()
		cmd.Email = ""
		_, err := s.Signup(context.Background(), cmd)
		if !errors.Is(err, ErrMissingEmail) {
			t.Fatalf("expected ErrMissingEmail, got %v", err)
		}
	})

	t.Run("missing company", func(t *testing.T) {
		cmd := validSignupCommand()
		cmd.Company = ""
		_, err := s.Signup(context.Background(), cmd)
		if !errors.Is(err, ErrMissingCompany) {
			t.Fatalf("expected ErrMissingCompany, got %v", err)
		}
	})
}

func TestContactSignup_DuplicateShortCircuits(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	crm := mock_interfaces.NewMockICRMGateway(ctrl)
	notifier := mock_interfaces.NewMockINotifier(ctrl)
	s := NewContactSignup(crm, notifier, zap.NewNop(), "https://crm.example.com")

	crm.EXPECT().FindContactByEmail(gomock.Any(), "ada@acme.com").
		Return(entities.Contact{ID: 11, CustomField: entities.ContactCustomField{Company: "Acme", AccountID: "42"}}, nil)

	// No account lookup, no contact creation, no notification.
	res, err := s.Signup(context.Background(), validSignupCommand())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Outcome != SignupDuplicate {
		t.Fatalf("expected duplicate outcome, got %s", res.Outcome)
	}
	if res.ContactID != 11 || res.Company != "Acme" {
		t.Fatalf("unexpected result: %+v", res)
	}
	if res.AccountID != 42 {
		t.Fatalf("expected stored account id echoed back, got %d", res.AccountID)
	}
}

func TestContactSignup_DuplicateWithBlankAccountField(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	crm := mock_interfaces.NewMockICRMGateway(ctrl)
	notifier := mock_interfaces.NewMockINotifier(ctrl)
	s := NewContactSignup(crm, notifier, zap.NewNop(), "https://crm.example.com")

	crm.EXPECT().FindContactByEmail(gomock.Any(), "ada@acme.com").
		Return(entities.Contact{ID: 11, CustomField: entities.ContactCustomField{Company: "Acme"}}, nil)

	res, err := s.Signup(context.Background(), validSignupCommand())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.AccountID != 0 {
		t.Fatalf("blank custom field must echo as zero, got %d", res.AccountID)
	}
}

func TestContactSignup_CreatesAccountAndContact(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	crm := mock_interfaces.NewMockICRMGateway(ctrl)
	notifier := mock_interfaces.NewMockINotifier(ctrl)
	s := NewContactSignup(crm, notifier, zap.NewNop(), "https://crm.example.com")

	crm.EXPECT().FindContactByEmail(gomock.Any(), "ada@acme.com").Return(entities.Contact{}, nil)
	crm.EXPECT().FindAccountByName(gomock.Any(), "Acme").Return(entities.Account{}, nil)
	crm.EXPECT().CreateAccount(gomock.Any(), "Acme").Return(entities.Account{ID: 42, Name: "Acme"}, nil)
	crm.EXPECT().CreateContact(gomock.Any(), gomock.Any(), int64(42)).
		DoAndReturn(func(_ context.Context, contact entities.Contact, _ int64) (entities.Contact, error) {
			if contact.Email != "ada@acme.com" || contact.CustomField.Company != "Acme" {
				t.Fatalf("unexpected contact draft: %+v", contact)
			}
			if contact.CustomField.AccountID != "42" {
				t.Fatalf("account id custom field not set: %+v", contact.CustomField)
			}
			contact.ID = 11
			return contact, nil
		})
	notifier.EXPECT().PostMessage(gomock.Any(),
		"New lead sign up: Acme: https://crm.example.com/crm/sales/contacts/11").Return(nil)

	res, err := s.Signup(context.Background(), validSignupCommand())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Outcome != SignupCreated {
		t.Fatalf("expected created outcome, got %s", res.Outcome)
	}
	if res.ContactID != 11 || res.AccountID != 42 {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestContactSignup_ExistingAccountReused(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	crm := mock_interfaces.NewMockICRMGateway(ctrl)
	notifier := mock_interfaces.NewMockINotifier(ctrl)
	s := NewContactSignup(crm, notifier, zap.NewNop(), "https://crm.example.com")

	crm.EXPECT().FindContactByEmail(gomock.Any(), "ada@acme.com").Return(entities.Contact{}, nil)
	crm.EXPECT().FindAccountByName(gomock.Any(), "Acme").Return(entities.Account{ID: 42, Name: "Acme"}, nil)
	crm.EXPECT().CreateContact(gomock.Any(), gomock.Any(), int64(42)).
		Return(entities.Contact{ID: 12}, nil)
	notifier.EXPECT().PostMessage(gomock.Any(), gomock.Any()).Return(nil)

	res, err := s.Signup(context.Background(), validSignupCommand())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.AccountID != 42 {
		t.Fatalf("expected reuse of account 42, got %d", res.AccountID)
	}
}

func TestContactSignup_NotifyOptOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	crm := mock_interfaces.NewMockICRMGateway(ctrl)
	notifier := mock_interfaces.NewMockINotifier(ctrl)
	s := NewContactSignup(crm, notifier, zap.NewNop(), "https://crm.example.com")

	crm.EXPECT().FindContactByEmail(gomock.Any(), "ada@acme.com").Return(entities.Contact{}, nil)
	crm.EXPECT().FindAccountByName(gomock.Any(), "Acme").Return(entities.Account{ID: 42}, nil)
	crm.EXPECT().CreateContact(gomock.Any(), gomock.Any(), int64(42)).
		Return(entities.Contact{ID: 13}, nil)
	// PostMessage must not be called.

	notify := false
	cmd := validSignupCommand()
	cmd.Notify = &notify

	if _, err := s.Signup(context.Background(), cmd); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestContactSignup_NotifierFailureIsNonFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	crm := mock_interfaces.NewMockICRMGateway(ctrl)
	notifier := mock_interfaces.NewMockINotifier(ctrl)
	s := NewContactSignup(crm, notifier, zap.NewNop(), "https://crm.example.com")

	crm.EXPECT().FindContactByEmail(gomock.Any(), "ada@acme.com").Return(entities.Contact{}, nil)
	crm.EXPECT().FindAccountByName(gomock.Any(), "Acme").Return(entities.Account{ID: 42}, nil)
	crm.EXPECT().CreateContact(gomock.Any(), gomock.Any(), int64(42)).
		Return(entities.Contact{ID: 14}, nil)
	notifier.EXPECT().PostMessage(gomock.Any(), gomock.Any()).Return(errors.New("webhook gone"))

	res, err := s.Signup(context.Background(), validSignupCommand())
	if err != nil {
		t.Fatalf("notifier failure must not fail the signup: %v", err)
	}
	if res.Outcome != SignupCreated {
		t.Fatalf("expected created outcome, got %s", res.Outcome)
	}
}
