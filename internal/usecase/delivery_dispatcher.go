package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/railflow/salesops/internal/domain/entities"
	"github.com/railflow/salesops/internal/usecase/interfaces"
)

// DeliveryDispatcher decides how a created invoice reaches the customer:
// the provider's default channel when no explicit recipient was supplied, or
// a custom email otherwise. The switch is binary: a failed custom delivery
// propagates, there is no fallback to the default channel.
type DeliveryDispatcher struct {
	billing   interfaces.IBillingGateway
	portalURL string
	logger    *zap.Logger
}

func NewDeliveryDispatcher(billing interfaces.IBillingGateway, portalURL string, logger *zap.Logger) *DeliveryDispatcher {
	return &DeliveryDispatcher{billing: billing, portalURL: strings.TrimRight(portalURL, "/"), logger: logger}
}

// Dispatch delivers the invoice identified by ref. recipient empty means
// default delivery; blindCopies are independent of the primary recipient.
func (d *DeliveryDispatcher) Dispatch(
	ctx context.Context,
	ref entities.StatementRef,
	quote entities.PriceQuote,
	contact entities.Contact,
	recipient string,
	blindCopies []string,
) (entities.DeliveryResult, error) {
	if recipient == "" {
		if err := d.billing.DeliverInvoice(ctx, ref.HashKey, nil); err != nil {
			return entities.DeliveryResult{}, fmt.Errorf("deliver invoice %s: %w", ref.StatementNo, err)
		}
		d.logger.Info("invoice sent - default format", zap.String("statement_no", ref.StatementNo))
		return entities.DeliveryResult{Mode: entities.DeliveryModeDefault}, nil
	}

	band := fmt.Sprintf("%d - %d", 20*quote.Tier, 20*(quote.Tier+1))
	payload := &entities.DeliveryPayload{
		Recipients:  recipient,
		BlindCopies: blindCopies,
		Subject: fmt.Sprintf("Invoice %s Railflow %s %s License Quote %s Users",
			ref.StatementNo, quote.TypeLabel, quote.TermLabel, band),
		Message: fmt.Sprintf("\nHi %s,"+
			"\nA new invoice has been generated for you by Railflow Customer Support Team. Here's a quick summary:"+
			"\nInvoice details: %s - Railflow %s Quote: %s License: %s Users"+
			"\nInvoice total: USD %s"+
			"\n\nYou can view or download a PDF by going to: %s/invs/%s"+
			"\n\nBest regards,"+
			"\nRailflow Customer Support Team.",
			contact.DisplayName, ref.StatementNo, quote.TypeLabel, quote.TermLabel, band,
			formatUSD(ref.BilledTotal), d.portalURL, ref.HashKey),
		Attachment: true,
	}

	if err := d.billing.DeliverInvoice(ctx, ref.HashKey, payload); err != nil {
		return entities.DeliveryResult{}, fmt.Errorf("deliver invoice %s to %s: %w", ref.StatementNo, recipient, err)
	}
	d.logger.Info("invoice sent - custom format",
		zap.String("statement_no", ref.StatementNo), zap.String("recipients", recipient))
	return entities.DeliveryResult{Mode: entities.DeliveryModeCustom, Recipients: recipient}, nil
}

// formatUSD renders an amount with thousands separators, e.g. "4,980" or
// "1,234.50".
func formatUSD(amount decimal.Decimal) string {
	s := amount.String()
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, fracPart, hasFrac := strings.Cut(s, ".")
	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	out := b.String()
	if hasFrac {
		out += "." + fracPart
	}
	if neg {
		out = "-" + out
	}
	return out
}
