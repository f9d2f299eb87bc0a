package calculation

import (
	"testing"

	"github.com/retireplan/drawdown-calculator/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func coupleInputs() *domain.PlanInputs {
	return &domain.PlanInputs{
		StartYear:    2025,
		FilingStatus: domain.FilingMFJ,
		Primary:      domain.PersonInputs{BirthYear: 1960, FinalAge: 90},
		Spouse:       &domain.PersonInputs{BirthYear: 1963, FinalAge: 95},
		Spending:     domain.SpendingInputs{GoGoYears: 5, SlowYears: 10},
	}
}

func TestMakeTimelineSpansToLaterFinalYear(t *testing.T) {
	in := coupleInputs()
	years := MakeTimeline(in)

	require.NotEmpty(t, years)
	assert.Equal(t, 2025, years[0].Year)
	// Spouse's last year: 1963 + 95 = 2058, later than primary's 2050.
	assert.Equal(t, 2058, years[len(years)-1].Year)
	assert.Len(t, years, 34)
}

func TestMakeTimelinePhaseTransitions(t *testing.T) {
	in := coupleInputs()
	years := MakeTimeline(in)

	assert.Equal(t, PhaseGoGo, years[0].Phase)
	assert.Equal(t, PhaseGoGo, years[4].Phase)
	assert.Equal(t, PhaseSlow, years[5].Phase)
	assert.Equal(t, PhaseSlow, years[14].Phase)
	assert.Equal(t, PhaseNoGo, years[15].Phase)
	assert.Equal(t, PhaseNoGo, years[len(years)-1].Phase)
}

func TestMakeTimelineAliveFlags(t *testing.T) {
	in := coupleInputs()
	years := MakeTimeline(in)

	for _, yc := range years {
		assert.Equal(t, yc.PrimaryAge <= 90, yc.PrimaryAlive, "year %d", yc.Year)
		assert.Equal(t, yc.SpouseAge <= 95, yc.SpouseAlive, "year %d", yc.Year)
	}

	// Primary dies after age 90 (calendar 2050); 2051 on, only the spouse.
	var y2051 YearContext
	for _, yc := range years {
		if yc.Year == 2051 {
			y2051 = yc
		}
	}
	assert.False(t, y2051.PrimaryAlive)
	assert.True(t, y2051.SpouseAlive)
}

func TestMakeTimelineSinglePerson(t *testing.T) {
	in := coupleInputs()
	in.Spouse = nil
	years := MakeTimeline(in)

	assert.Equal(t, 2050, years[len(years)-1].Year)
	for _, yc := range years {
		assert.Zero(t, yc.SpouseAge)
		assert.False(t, yc.SpouseAlive, "single plans never mark the spouse alive")
	}
}

func TestMakeTimelineDegenerateStart(t *testing.T) {
	in := coupleInputs()
	in.StartYear = 2070 // past both final years
	years := MakeTimeline(in)

	require.Len(t, years, 1)
	assert.Equal(t, 2070, years[0].Year)
	assert.False(t, years[0].PrimaryAlive)
	assert.False(t, years[0].SpouseAlive)
}

func TestLifePhaseString(t *testing.T) {
	assert.Equal(t, "GoGo", PhaseGoGo.String())
	assert.Equal(t, "Slow", PhaseSlow.String())
	assert.Equal(t, "NoGo", PhaseNoGo.String())
}
