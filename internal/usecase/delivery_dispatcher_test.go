package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/railflow/salesops/internal/domain/entities"
	mock_interfaces "github.com/railflow/salesops/internal/usecase/interfaces/mocks"
)

func dispatchFixtures() (entities.StatementRef, entities.PriceQuote, entities.Contact) {
	ref := entities.StatementRef{ID: 500, StatementNo: "INV-77", HashKey: "abc123",
		BilledTotal: decimal.NewFromInt(4980)}
	quote := entities.PriceQuote{Tier: 1, TypeLabel: "Enterprise", TermLabel: "3 Years", UserBand: "20-40"}
	contact := entities.Contact{ID: 11, DisplayName: "Ada Lovelace", Email: "ada@acme.com"}
	return ref, quote, contact
}

func TestDeliveryDispatcher_DefaultChannel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	billing := mock_interfaces.NewMockIBillingGateway(ctrl)
	d := NewDeliveryDispatcher(billing, "https://railflow.hiveage.com", zap.NewNop())

	ref, quote, contact := dispatchFixtures()

	billing.EXPECT().DeliverInvoice(gomock.Any(), "abc123", nil).Return(nil)

	res, err := d.Dispatch(context.Background(), ref, quote, contact, "", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Mode != entities.DeliveryModeDefault {
		t.Fatalf("expected default delivery mode, got %s", res.Mode)
	}
}

func TestDeliveryDispatcher_CustomEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	billing := mock_interfaces.NewMockIBillingGateway(ctrl)
	d := NewDeliveryDispatcher(billing, "https://railflow.hiveage.com", zap.NewNop())

	ref, quote, contact := dispatchFixtures()

	var payload *entities.DeliveryPayload
	billing.EXPECT().DeliverInvoice(gomock.Any(), "abc123", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, p *entities.DeliveryPayload) error {
			payload = p
			return nil
		})

	res, err := d.Dispatch(context.Background(), ref, quote, contact, "ada@acme.com", []string{"sales@railflow.io"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Mode != entities.DeliveryModeCustom {
		t.Fatalf("expected custom delivery mode, got %s", res.Mode)
	}
	if payload == nil {
		t.Fatalf("expected a custom payload")
	}
	if payload.Recipients != "ada@acme.com" {
		t.Fatalf("wrong recipients: %q", payload.Recipients)
	}
	if len(payload.BlindCopies) != 1 || payload.BlindCopies[0] != "sales@railflow.io" {
		t.Fatalf("wrong blind copies: %v", payload.BlindCopies)
	}
	if payload.Subject != "Invoice INV-77 Railflow Enterprise 3 Years License Quote 20 - 40 Users" {
		t.Fatalf("wrong subject: %q", payload.Subject)
	}
	if !strings.Contains(payload.Message, "Hi Ada Lovelace,") {
		t.Fatalf("message should greet the contact: %q", payload.Message)
	}
	if !strings.Contains(payload.Message, "Invoice total: USD 4,980") {
		t.Fatalf("message should carry the separator-formatted total: %q", payload.Message)
	}
	if !strings.Contains(payload.Message, "https://railflow.hiveage.com/invs/abc123") {
		t.Fatalf("message should link the hosted PDF: %q", payload.Message)
	}
	if !payload.Attachment {
		t.Fatalf("custom delivery attaches the PDF")
	}
}

func TestDeliveryDispatcher_CustomFailurePropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	billing := mock_interfaces.NewMockIBillingGateway(ctrl)
	d := NewDeliveryDispatcher(billing, "https://railflow.hiveage.com", zap.NewNop())

	ref, quote, contact := dispatchFixtures()

	billing.EXPECT().DeliverInvoice(gomock.Any(), "abc123", gomock.Any()).
		Return(errors.New("smtp rejected"))

	_, err := d.Dispatch(context.Background(), ref, quote, contact, "ada@acme.com", nil)
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestFormatUSD(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "0"},
		{"990", "990"},
		{"4980", "4,980"},
		{"5610", "5,610"},
		{"1234567.5", "1,234,567.5"},
		{"-990", "-990"},
		{"-4980", "-4,980"},
	}
	for _, tc := range cases {
		got := formatUSD(decimal.RequireFromString(tc.in))
		if got != tc.want {
			t.Fatalf("formatUSD(%s) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
