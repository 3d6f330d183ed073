package services

import (
	"context"
	"fmt"

	"github.com/fadhlanhapp/trekshare-backend/models"
	"github.com/fadhlanhapp/trekshare-backend/utils"
	"github.com/shopspring/decimal"
)

// MaxQuoteTableRows caps how many group sizes a single table request may cover
const MaxQuoteTableRows = 50

// RoundingMode controls where per-person amounts are rounded to cents
type RoundingMode int

const (
	// RoundLineItems rounds each line's share, so the total equals the sum of the displayed lines
	RoundLineItems RoundingMode = iota
	// RoundTotal accumulates unrounded shares and rounds only the total
	RoundTotal
)

// QuoteCalculator splits a trek's cost components across a group.
// It holds no mutable state and is safe for concurrent use.
type QuoteCalculator struct {
	Rounding RoundingMode
}

// NewQuoteCalculator creates a calculator with the given rounding mode
func NewQuoteCalculator(mode RoundingMode) *QuoteCalculator {
	return &QuoteCalculator{Rounding: mode}
}

var defaultCalculator = NewQuoteCalculator(RoundLineItems)

// ComputeQuote prices a trek for one group size using line-item rounding
func ComputeQuote(durationDays int, components []models.CostComponent, groupSize int, referencePrice decimal.Decimal) (*models.GroupCostQuote, error) {
	return defaultCalculator.Compute(durationDays, components, groupSize, referencePrice)
}

// Compute prices a trek for one group size
func (c *QuoteCalculator) Compute(durationDays int, components []models.CostComponent, groupSize int, referencePrice decimal.Decimal) (*models.GroupCostQuote, error) {
	if err := validateQuoteInput(durationDays, components, groupSize, referencePrice); err != nil {
		return nil, err
	}

	days := decimal.NewFromInt(int64(durationDays))
	size := decimal.NewFromInt(int64(groupSize))

	total := decimal.Zero
	lines := make([]models.QuoteLine, 0, len(components))
	for _, component := range components {
		effective := component.Amount
		if component.PerDuration {
			effective = effective.Mul(days)
		}

		share := effective
		if component.Allocation == utils.AllocationGroupShared {
			share = effective.Div(size)
		}
		if c.Rounding == RoundLineItems {
			share = utils.RoundMoney(share)
		}
		total = total.Add(share)

		lines = append(lines, models.QuoteLine{
			Label:          component.Label,
			Allocation:     component.Allocation,
			EffectiveTotal: utils.RoundMoney(effective),
			PerPerson:      utils.RoundMoney(share),
		})
	}

	total = utils.RoundMoney(total)

	return &models.GroupCostQuote{
		GroupSize:      groupSize,
		PerPersonTotal: total,
		ReferencePrice: utils.RoundMoney(referencePrice),
		Savings:        utils.RoundMoney(utils.MaxZero(referencePrice.Sub(total))),
		Lines:          lines,
	}, nil
}

// validateQuoteInput rejects anything that would make the quote meaningless
func validateQuoteInput(durationDays int, components []models.CostComponent, groupSize int, referencePrice decimal.Decimal) error {
	if err := utils.ValidatePositiveInt(durationDays, "duration days"); err != nil {
		return err
	}
	if err := utils.ValidatePositiveInt(groupSize, "group size"); err != nil {
		return err
	}
	if err := utils.ValidateNonNegativeDecimal(referencePrice, "reference price"); err != nil {
		return err
	}
	return ValidateCostComponents(components)
}

// ValidateCostComponents checks amounts and allocation kinds
func ValidateCostComponents(components []models.CostComponent) error {
	for i, component := range components {
		if err := utils.ValidateNonNegativeDecimal(component.Amount, "amount"); err != nil {
			return utils.NewValidationError(fmt.Sprintf("Component %d (%s): %s", i+1, component.Label, err.Error()))
		}
		if err := utils.ValidateOneOf(component.Allocation, "allocation",
			utils.AllocationPerPersonFixed, utils.AllocationGroupShared); err != nil {
			return utils.NewValidationError(fmt.Sprintf("Component %d (%s): %s", i+1, component.Label, err.Error()))
		}
	}
	return nil
}

// StandardCostSheet turns the usual trek rates into cost components.
// Zero-valued items are left out, so trips without VAT use the same sheet.
func StandardCostSheet(p models.TrekPricing) []models.CostComponent {
	type entry struct {
		label       string
		amount      decimal.Decimal
		allocation  string
		perDuration bool
	}
	entries := []entry{
		{"Guide", p.GuideDailyRate, utils.AllocationGroupShared, true},
		{"Insurance", p.Insurance, utils.AllocationPerPersonFixed, false},
		{"Transport", p.Transport, utils.AllocationPerPersonFixed, false},
		{"VAT", p.VAT, utils.AllocationPerPersonFixed, false},
		{"Permits", p.Permits, utils.AllocationPerPersonFixed, false},
		{"Accommodation", p.AccommodationDailyRate, utils.AllocationGroupShared, true},
		{"Meals", p.MealsDailyRate, utils.AllocationGroupShared, true},
		{"Platform fee", p.PlatformFee, utils.AllocationPerPersonFixed, false},
	}

	components := make([]models.CostComponent, 0, len(entries))
	for _, e := range entries {
		if e.amount.IsZero() {
			continue
		}
		components = append(components, models.CostComponent{
			Label:       e.label,
			Amount:      e.amount,
			Allocation:  e.allocation,
			PerDuration: e.perDuration,
		})
	}
	return components
}

// BuildQuoteTable quotes a trek for every group size in [from, to]
func BuildQuoteTable(trek *models.TrekRoute, from, to int) (*models.QuoteTable, error) {
	if err := utils.ValidatePositiveInt(from, "from group size"); err != nil {
		return nil, err
	}
	if to < from {
		return nil, utils.NewValidationError("to group size must not be below from group size")
	}
	if to-from+1 > MaxQuoteTableRows {
		return nil, utils.NewValidationError(fmt.Sprintf("at most %d group sizes per table", MaxQuoteTableRows))
	}

	quotes := make([]models.GroupCostQuote, 0, to-from+1)
	for size := from; size <= to; size++ {
		quote, err := ComputeQuote(trek.DurationDays, trek.CostComponents, size, trek.ReferencePrice)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, *quote)
	}

	return &models.QuoteTable{
		TrekID:       trek.ID,
		DurationDays: trek.DurationDays,
		Currency:     trek.Currency,
		Quotes:       quotes,
	}, nil
}

// TrekReader loads a single trek
type TrekReader interface {
	GetTrekByID(ctx context.Context, id string) (*models.TrekRoute, error)
}

// QuoteService prices stored treks
type QuoteService struct {
	treks TrekReader
}

// NewQuoteService creates a new quote service
func NewQuoteService(treks TrekReader) *QuoteService {
	return &QuoteService{treks: treks}
}

// QuoteForTrek prices a stored trek for one group size
func (s *QuoteService) QuoteForTrek(ctx context.Context, trekID string, groupSize int) (*models.GroupCostQuote, error) {
	trek, err := s.treks.GetTrekByID(ctx, trekID)
	if err != nil {
		return nil, err
	}
	return ComputeQuote(trek.DurationDays, trek.CostComponents, groupSize, trek.ReferencePrice)
}

// QuoteTable prices a stored trek across a range of group sizes.
// Zero bounds fall back to the trek's own group size limits.
func (s *QuoteService) QuoteTable(ctx context.Context, trekID string, from, to int) (*models.QuoteTable, error) {
	trek, err := s.treks.GetTrekByID(ctx, trekID)
	if err != nil {
		return nil, err
	}
	from, to = groupSizeRange(trek, from, to)
	return BuildQuoteTable(trek, from, to)
}

// Calculate prices an ad hoc set of components or a standard rate sheet
func (s *QuoteService) Calculate(request *models.CalculateQuoteRequest) (*models.GroupCostQuote, error) {
	components := request.Components
	if request.Pricing != nil {
		components = append(StandardCostSheet(*request.Pricing), components...)
	}
	return ComputeQuote(request.DurationDays, components, request.GroupSize, request.ReferencePrice)
}

func groupSizeRange(trek *models.TrekRoute, from, to int) (int, int) {
	if from <= 0 {
		from = trek.MinGroupSize
		if from <= 0 {
			from = 1
		}
	}
	if to <= 0 {
		to = trek.MaxGroupSize
		if to < from {
			to = from
		}
	}
	return from, to
}
