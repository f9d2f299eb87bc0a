package calculation

import (
	"fmt"

	"github.com/retireplan/drawdown-calculator/internal/domain"
)

// LifePhase is the spending phase a plan year falls into.
type LifePhase int

const (
	PhaseGoGo LifePhase = iota
	PhaseSlow
	PhaseNoGo
)

// String returns the phase label used in output rows.
func (p LifePhase) String() string {
	switch p {
	case PhaseGoGo:
		return "GoGo"
	case PhaseSlow:
		return "Slow"
	case PhaseNoGo:
		return "NoGo"
	}
	return fmt.Sprintf("LifePhase(%d)", int(p))
}

// YearContext carries the per-year facts the engine needs before any money
// moves: calendar year, ages, spending phase, and who is still alive. Ages
// are calendar-year ages (year minus birth year); a person is alive through
// the year they reach their final age. SpouseAge is zero for single plans.
type YearContext struct {
	Year         int
	PrimaryAge   int
	SpouseAge    int
	Phase        LifePhase
	PrimaryAlive bool
	SpouseAlive  bool
}

// MakeTimeline builds one YearContext per calendar year from the start year
// through the later of the two final ages. A start year past both final
// years still yields a single row so a run always produces output.
func MakeTimeline(in *domain.PlanInputs) []YearContext {
	lastYear := in.Primary.BirthYear + in.Primary.FinalAge
	if in.HasSpouse() {
		if spouseLast := in.Spouse.BirthYear + in.Spouse.FinalAge; spouseLast > lastYear {
			lastYear = spouseLast
		}
	}
	if lastYear < in.StartYear {
		lastYear = in.StartYear
	}

	phaseEndSlow := in.Spending.GoGoYears + in.Spending.SlowYears

	years := make([]YearContext, 0, lastYear-in.StartYear+1)
	for year := in.StartYear; year <= lastYear; year++ {
		idx := year - in.StartYear

		phase := PhaseNoGo
		switch {
		case idx < in.Spending.GoGoYears:
			phase = PhaseGoGo
		case idx < phaseEndSlow:
			phase = PhaseSlow
		}

		yc := YearContext{
			Year:         year,
			PrimaryAge:   year - in.Primary.BirthYear,
			Phase:        phase,
			PrimaryAlive: year-in.Primary.BirthYear <= in.Primary.FinalAge,
		}
		if in.HasSpouse() {
			yc.SpouseAge = year - in.Spouse.BirthYear
			yc.SpouseAlive = yc.SpouseAge <= in.Spouse.FinalAge
		}
		years = append(years, yc)
	}
	return years
}
