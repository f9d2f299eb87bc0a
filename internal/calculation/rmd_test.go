package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRMDFactorBoundary(t *testing.T) {
	table := NewUniformLifetimeTable(73)

	_, ok := table.Factor(72)
	assert.False(t, ok, "no requirement the year before the start age")

	factor, ok := table.Factor(73)
	assert.True(t, ok)
	assert.True(t, factor.Equal(decimal.RequireFromString("26.5")))

	factor, ok = table.Factor(80)
	assert.True(t, ok)
	assert.True(t, factor.Equal(decimal.RequireFromString("20.2")))
}

func TestRMDFactorUsesGreatestTabulatedAge(t *testing.T) {
	table := NewUniformLifetimeTable(73)

	// Ages past the table end keep the last factor.
	factor, ok := table.Factor(120)
	assert.True(t, ok)
	assert.True(t, factor.Equal(decimal.RequireFromString("2.9")))
}

func TestRMDFactorsMonotonicallyDecrease(t *testing.T) {
	table := NewUniformLifetimeTable(73)
	prev, _ := table.Factor(73)
	for age := 74; age <= 115; age++ {
		factor, ok := table.Factor(age)
		assert.True(t, ok, "age %d", age)
		assert.True(t, factor.LessThanOrEqual(prev),
			"factor at %d (%s) must not exceed factor at %d (%s)", age, factor, age-1, prev)
		prev = factor
	}
}

func TestRMDRequired(t *testing.T) {
	table := NewUniformLifetimeTable(73)

	tests := []struct {
		name     string
		age      int
		balance  decimal.Decimal
		expected decimal.Decimal
	}{
		{
			name:     "below start age",
			age:      72,
			balance:  decimal.NewFromInt(500000),
			expected: decimal.Zero,
		},
		{
			name:     "at start age",
			age:      73,
			balance:  decimal.NewFromInt(265000),
			expected: decimal.NewFromInt(10000), // 265000 / 26.5
		},
		{
			name:     "empty balance",
			age:      80,
			balance:  decimal.Zero,
			expected: decimal.Zero,
		},
		{
			name:     "negative balance treated as empty",
			age:      80,
			balance:  decimal.NewFromInt(-100),
			expected: decimal.Zero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rmd := table.Required(tt.age, tt.balance)
			assert.True(t, rmd.Equal(tt.expected), "expected %s, got %s", tt.expected, rmd)
		})
	}
}

func TestRMDEarlyStartAgeWaitsForTable(t *testing.T) {
	// A configured start age below the first tabulated age produces no
	// requirement until the table begins.
	table := NewUniformLifetimeTable(70)
	_, ok := table.Factor(71)
	assert.False(t, ok)
	factor, ok := table.Factor(73)
	assert.True(t, ok)
	assert.True(t, factor.Equal(decimal.RequireFromString("26.5")))
}
