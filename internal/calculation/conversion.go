package calculation

import (
	"github.com/retireplan/drawdown-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// maxConversionRounds bounds the fixed-point search. Brackets and the SS
// provisional rule are piecewise, so the step-toward-target iteration is used
// instead of a closed-form solve; the cap guarantees termination.
const maxConversionRounds = 8

// conversionTolerance is the dollar gap below which the search stops.
var conversionTolerance = decimal.NewFromInt(1)

// ConversionRequest describes one year's Roth conversion opportunity.
type ConversionRequest struct {
	TargetMAGI   decimal.Decimal // zero or negative disables conversion
	Eligible     bool            // owner alive and under the policy age cutoff
	IRAAvailable decimal.Decimal // IRA balance after RMD and ordinary draws
	IRAOrdinary  decimal.Decimal // RMD + traditional draws already taken
	SSTotal      decimal.Decimal
	StdDeduction decimal.Decimal
	Filing       domain.FilingStatus
}

// SolveConversion raises a conversion amount toward the MAGI target, never
// past the IRA headroom. It returns the final conversion, already clamped to
// the available balance, together with the tax evaluation at that amount.
func (tc *TaxCalculator) SolveConversion(req ConversionRequest) (decimal.Decimal, TaxResult) {
	conversion := decimal.Zero
	headroom := decimal.Max(decimal.Zero, req.IRAAvailable)

	for round := 0; round < maxConversionRounds; round++ {
		result := tc.ComputeTaxMAGI(req.IRAOrdinary, conversion, req.SSTotal, req.StdDeduction, req.Filing)

		if !req.Eligible || req.TargetMAGI.LessThanOrEqual(decimal.Zero) {
			break
		}
		gap := req.TargetMAGI.Sub(result.MAGI)
		if gap.LessThanOrEqual(conversionTolerance) {
			break
		}
		step := decimal.Min(gap, headroom.Sub(conversion))
		if step.LessThanOrEqual(conversionTolerance) {
			break
		}
		conversion = conversion.Add(step)
	}

	conversion = decimal.Min(conversion, headroom)
	final := tc.ComputeTaxMAGI(req.IRAOrdinary, conversion, req.SSTotal, req.StdDeduction, req.Filing)
	return conversion, final
}
