package calculation

import (
	"github.com/shopspring/decimal"
)

// BenefitForYear returns one person's annual Social Security benefit for the
// year in which they are age `age`. The benefit is zero until the start age
// and compounds with COLA from the first payable year. A start age of zero
// means no benefit is scheduled.
func BenefitForYear(age, startAge int, annualAtStart, cola decimal.Decimal) decimal.Decimal {
	if startAge <= 0 || annualAtStart.IsZero() {
		return decimal.Zero
	}
	if age < startAge {
		return decimal.Zero
	}
	yearsPayable := age - startAge
	return annualAtStart.Mul(InflationFactor(cola, yearsPayable))
}

// CombinedBenefit merges the two scheduled benefits for the household. Both
// alive sums them; a sole survivor keeps the larger of the two schedules (the
// survivor step-up); no survivors means no benefit.
func CombinedBenefit(primary, spouse decimal.Decimal, primaryAlive, spouseAlive bool) decimal.Decimal {
	switch {
	case primaryAlive && spouseAlive:
		return primary.Add(spouse)
	case primaryAlive || spouseAlive:
		return decimal.Max(primary, spouse)
	default:
		return decimal.Zero
	}
}
