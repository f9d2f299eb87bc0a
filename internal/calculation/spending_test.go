package calculation

import (
	"testing"

	"github.com/retireplan/drawdown-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func spendingModel() domain.SpendingInputs {
	return domain.SpendingInputs{
		TargetSpend:     decimal.NewFromInt(100000),
		GoGoPercent:     decimal.NewFromInt(100),
		SlowPercent:     decimal.NewFromInt(80),
		NoGoPercent:     decimal.NewFromInt(70),
		SurvivorPercent: decimal.NewFromInt(75),
	}
}

func TestSpendingTargetPhasePercentages(t *testing.T) {
	noInflation := decimal.Zero

	tests := []struct {
		name     string
		phase    LifePhase
		expected decimal.Decimal
	}{
		{"gogo full target", PhaseGoGo, decimal.NewFromInt(100000)},
		{"slow at 80 percent", PhaseSlow, decimal.NewFromInt(80000)},
		{"nogo at 70 percent", PhaseNoGo, decimal.NewFromInt(70000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount := SpendingTarget(tt.phase, 0, noInflation, spendingModel(), true, true)
			assert.True(t, amount.Equal(tt.expected), "expected %s, got %s", tt.expected, amount)
		})
	}
}

func TestSpendingTargetInflationCompounds(t *testing.T) {
	infl := decimal.RequireFromString("0.03")

	year0 := SpendingTarget(PhaseGoGo, 0, infl, spendingModel(), true, true)
	year1 := SpendingTarget(PhaseGoGo, 1, infl, spendingModel(), true, true)
	year10 := SpendingTarget(PhaseGoGo, 10, infl, spendingModel(), true, true)

	assert.True(t, year0.Equal(decimal.NewFromInt(100000)))
	assert.True(t, year1.Equal(decimal.NewFromInt(103000)))

	expected10 := decimal.NewFromInt(100000).Mul(InflationFactor(infl, 10))
	assert.True(t, year10.Equal(expected10))
	assert.True(t, year10.GreaterThan(decimal.NewFromInt(134000)),
		"ten years at 3%% compounds past 134k, got %s", year10)
}

func TestSpendingTargetSurvivorAdjustment(t *testing.T) {
	noInflation := decimal.Zero

	bothAlive := SpendingTarget(PhaseSlow, 0, noInflation, spendingModel(), true, true)
	primaryOnly := SpendingTarget(PhaseSlow, 0, noInflation, spendingModel(), true, false)
	spouseOnly := SpendingTarget(PhaseSlow, 0, noInflation, spendingModel(), false, true)
	neither := SpendingTarget(PhaseSlow, 0, noInflation, spendingModel(), false, false)

	assert.True(t, bothAlive.Equal(decimal.NewFromInt(80000)))
	assert.True(t, primaryOnly.Equal(decimal.NewFromInt(60000)), "75%% of 80000")
	assert.True(t, spouseOnly.Equal(primaryOnly), "survivor reduction does not depend on who survives")
	assert.True(t, neither.IsZero())
}
