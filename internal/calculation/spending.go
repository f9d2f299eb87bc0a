package calculation

import (
	"github.com/retireplan/drawdown-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// InflationFactor returns (1+rate)^yearIndex, the compounding factor that
// maps a start-year dollar amount into year yearIndex.
func InflationFactor(rate decimal.Decimal, yearIndex int) decimal.Decimal {
	one := decimal.NewFromInt(1)
	if yearIndex <= 0 {
		return one
	}
	return one.Add(rate).Pow(decimal.NewFromInt(int64(yearIndex)))
}

// SpendingTarget computes the gross spending budget for one plan year: the
// base target scaled by the phase percentage, inflated to the year, then cut
// to the survivor percentage when only one person remains. Taxes and cash
// events are paid out of this budget, not added to it.
func SpendingTarget(
	phase LifePhase,
	yearIndex int,
	inflation decimal.Decimal,
	spending domain.SpendingInputs,
	primaryAlive, spouseAlive bool,
) decimal.Decimal {
	if !primaryAlive && !spouseAlive {
		return decimal.Zero
	}

	pct := spending.GoGoPercent
	switch phase {
	case PhaseSlow:
		pct = spending.SlowPercent
	case PhaseNoGo:
		pct = spending.NoGoPercent
	}

	amount := spending.TargetSpend.Mul(pct).Div(hundred)
	amount = amount.Mul(InflationFactor(inflation, yearIndex))

	if primaryAlive != spouseAlive {
		amount = amount.Mul(spending.SurvivorPercent).Div(hundred)
	}
	return amount
}
