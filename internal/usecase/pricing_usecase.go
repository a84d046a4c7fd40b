package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/railflow/salesops/internal/domain/entities"
)

// Pricing tables. Tier is the user-count band floor(numUsers/20); each tier
// raises the base price by a fixed step.
var (
	standardBase   = decimal.NewFromInt(1500)
	standardStep   = decimal.NewFromInt(300)
	enterpriseBase = decimal.NewFromInt(1800)
	enterpriseStep = decimal.NewFromInt(400)

	// Perpetual licenses are priced as four years of base at a fixed
	// multiplier. This is policy, not a derivation of the discount table.
	perpetualMultiplier = decimal.RequireFromString("0.83")

	discountThreeYears = decimal.RequireFromString("0.15")
	discountTwoYears   = decimal.RequireFromString("0.10")
)

const perpetualTermLabel = "Perpetual (never expiring)"

// ComputePrice derives the tiered, discount-adjusted price for a quote or
// invoice. Pure: no I/O, no mutation of the request. An unrecognized license
// type yields a *entities.PricingError value; the ranges of NumUsers and
// LicenseYears are the orchestrators' responsibility.
func ComputePrice(req entities.PricingRequest, now time.Time) (entities.PriceQuote, error) {
	tier := req.NumUsers / 20

	var base decimal.Decimal
	switch strings.ToLower(req.LicenseType) {
	case string(entities.LicenseTypeStandard):
		base = standardBase.Add(standardStep.Mul(decimal.NewFromInt(int64(tier))))
	case string(entities.LicenseTypeEnterprise):
		base = enterpriseBase.Add(enterpriseStep.Mul(decimal.NewFromInt(int64(tier))))
	default:
		return entities.PriceQuote{}, &entities.PricingError{
			Kind:    entities.PricingErrorInvalidLicenseType,
			Message: "Incorrect value for license_type",
		}
	}

	quote := entities.PriceQuote{
		BasePrice:    base,
		DiscountRate: decimal.Zero,
		Tier:         tier,
		LicenseYears: req.LicenseYears,
		Perpetual:    req.LicenseYears == entities.PerpetualYears,
		TypeLabel:    capitalize(req.LicenseType),
		UserBand:     fmt.Sprintf("%d-%d", 20*tier, 20*(tier+1)),
	}

	if quote.Perpetual {
		quote.TermLabel = perpetualTermLabel
		quote.LineItems = []entities.LineItem{{
			Date:        now,
			Description: mainItemDescription(quote),
			Price:       base.Mul(decimal.NewFromInt(entities.PerpetualYears)).Mul(perpetualMultiplier),
			Quantity:    1,
		}}
		return quote, nil
	}

	quote.TermLabel = fmt.Sprintf("%d Years", req.LicenseYears)
	switch req.LicenseYears {
	case 3:
		quote.DiscountRate = discountThreeYears
	case 2:
		quote.DiscountRate = discountTwoYears
	}

	var items []entities.LineItem
	if quote.DiscountRate.IsPositive() {
		years := decimal.NewFromInt(int64(req.LicenseYears))
		gross := base.Mul(years)
		amount := gross.Mul(quote.DiscountRate)
		pct := quote.DiscountRate.Mul(decimal.NewFromInt(100))
		items = append(items, entities.LineItem{
			Date: now,
			Description: fmt.Sprintf("Multi-Year Discount\n%d Years = %s%% Discount\n%s%% of $%s = $%s",
				req.LicenseYears, pct, pct, gross, amount),
			Price:    amount.Neg(),
			Quantity: 1,
		})
	}
	items = append(items, entities.LineItem{
		Date:        now,
		Description: mainItemDescription(quote),
		Price:       base,
		Quantity:    req.LicenseYears,
		Unit:        "Year",
	})
	quote.LineItems = items

	return quote, nil
}

func mainItemDescription(q entities.PriceQuote) string {
	return fmt.Sprintf("Railflow %s License \n %s TestRail Users \n License Term: %s",
		q.TypeLabel, q.UserBand, q.TermLabel)
}

// capitalize upper-cases the first rune and lower-cases the rest, matching
// the labels used on hosted statements ("Standard", "Enterprise").
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
