package models

import "github.com/shopspring/decimal"

// CostComponent is one line item in a trek's price
type CostComponent struct {
	Label       string          `json:"label"`
	Amount      decimal.Decimal `json:"amount"`
	Allocation  string          `json:"allocation"`
	PerDuration bool            `json:"perDuration"`
}

// QuoteLine is a component's contribution to one participant's price
type QuoteLine struct {
	Label          string          `json:"label"`
	Allocation     string          `json:"allocation"`
	EffectiveTotal decimal.Decimal `json:"effectiveTotal"`
	PerPerson      decimal.Decimal `json:"perPerson"`
}

// GroupCostQuote is the computed price for one candidate group size
type GroupCostQuote struct {
	GroupSize      int             `json:"groupSize"`
	PerPersonTotal decimal.Decimal `json:"perPersonTotal"`
	ReferencePrice decimal.Decimal `json:"referencePrice"`
	Savings        decimal.Decimal `json:"savings"`
	Lines          []QuoteLine     `json:"lines"`
}

// TrekPricing holds the rates the booking pages split across a group.
// Daily rates are shared by the group; the rest is charged to everyone.
type TrekPricing struct {
	GuideDailyRate         decimal.Decimal `json:"guideDailyRate"`
	AccommodationDailyRate decimal.Decimal `json:"accommodationDailyRate"`
	MealsDailyRate         decimal.Decimal `json:"mealsDailyRate"`
	Insurance              decimal.Decimal `json:"insurance"`
	Transport              decimal.Decimal `json:"transport"`
	VAT                    decimal.Decimal `json:"vat"`
	Permits                decimal.Decimal `json:"permits"`
	PlatformFee            decimal.Decimal `json:"platformFee"`
}

// QuoteTable lists quotes for a range of group sizes
type QuoteTable struct {
	TrekID       string           `json:"trekId"`
	DurationDays int              `json:"durationDays"`
	Currency     string           `json:"currency"`
	Quotes       []GroupCostQuote `json:"quotes"`
}

// CalculateQuoteRequest request model for ad hoc quotes
type CalculateQuoteRequest struct {
	DurationDays   int             `json:"durationDays"`
	Components     []CostComponent `json:"components"`
	Pricing        *TrekPricing    `json:"pricing,omitempty"`
	GroupSize      int             `json:"groupSize"`
	ReferencePrice decimal.Decimal `json:"referencePrice"`
}
