package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// FilingStatus is the federal filing status used for bracket selection.
type FilingStatus string

const (
	FilingMFJ    FilingStatus = "MFJ"
	FilingSingle FilingStatus = "Single"
)

// PersonInputs describes one member of the household. SSStartAge of zero
// means no Social Security benefit is scheduled for this person.
type PersonInputs struct {
	BirthYear       int             `yaml:"birth_year"`
	FinalAge        int             `yaml:"final_age"`
	SSStartAge      int             `yaml:"ss_start_age"`
	SSAnnualAtStart decimal.Decimal `yaml:"ss_annual_at_start"`
}

// SpendingInputs define the lifecycle spending model: a base annual target in
// start-year dollars scaled by a per-phase percentage, with a survivor
// percentage applied once only one person is alive.
type SpendingInputs struct {
	TargetSpend     decimal.Decimal `yaml:"target_spend"`
	GoGoPercent     decimal.Decimal `yaml:"gogo_percent"`
	SlowPercent     decimal.Decimal `yaml:"slow_percent"`
	NoGoPercent     decimal.Decimal `yaml:"nogo_percent"`
	GoGoYears       int             `yaml:"gogo_years"`
	SlowYears       int             `yaml:"slow_years"`
	SurvivorPercent decimal.Decimal `yaml:"survivor_percent"`
}

// RateInputs are the annual compounding rates.
type RateInputs struct {
	Inflation       decimal.Decimal `yaml:"inflation"`
	BrokerageGrowth decimal.Decimal `yaml:"brokerage_growth"`
	RothGrowth      decimal.Decimal `yaml:"roth_growth"`
	IRAGrowth       decimal.Decimal `yaml:"ira_growth"`
}

// TaxHealthInputs hold the tax and subsidy planning knobs. MAGITargetBase is
// the income ceiling Roth conversions fill toward while the primary person is
// under ACAEndAge; a zero target disables conversions.
type TaxHealthInputs struct {
	MAGITargetBase        decimal.Decimal `yaml:"magi_target_base"`
	StandardDeductionBase decimal.Decimal `yaml:"standard_deduction_base"`
	RMDStartAge           int             `yaml:"rmd_start_age"`
	ACAEndAge             int             `yaml:"aca_end_age"`
}

// CashEvent is a one-off cash flow in a specific year. A positive amount is
// extra spending; a negative amount is an inflow. Events are cash-only and
// carry no tax effect.
type CashEvent struct {
	Year   int             `yaml:"year"`
	Amount decimal.Decimal `yaml:"amount"`
}

// Year1Actuals optionally replaces the first simulated year's computed flows
// with known actuals. Growth is still applied to the resulting balances.
type Year1Actuals struct {
	Spend          decimal.Decimal `yaml:"spend"`
	Income         decimal.Decimal `yaml:"income"`
	BrokerageDraw  decimal.Decimal `yaml:"brokerage_draw"`
	RothDraw       decimal.Decimal `yaml:"roth_draw"`
	IRADraw        decimal.Decimal `yaml:"ira_draw"`
	Taxes          decimal.Decimal `yaml:"taxes"`
	RothConversion decimal.Decimal `yaml:"roth_conversion"`
}

// PlanInputs is the complete validated configuration for one projection run.
// Spouse and Year1 are the only optional blocks; everything else is required.
type PlanInputs struct {
	StartYear    int             `yaml:"start_year"`
	FilingStatus FilingStatus    `yaml:"filing_status"`
	Primary      PersonInputs    `yaml:"primary"`
	Spouse       *PersonInputs   `yaml:"spouse"`
	Balances     AccountBalances `yaml:"balances"`
	Spending     SpendingInputs  `yaml:"spending"`
	Rates        RateInputs      `yaml:"rates"`
	TaxHealth    TaxHealthInputs `yaml:"tax_health"`
	DrawOrder    WithdrawalOrder `yaml:"draw_order"`
	Year1        *Year1Actuals   `yaml:"year1"`
	Events       []CashEvent     `yaml:"events"`
}

// UnmarshalText lets WithdrawalOrder decode directly from a YAML scalar such
// as "Brokerage, Roth, IRA".
func (o *WithdrawalOrder) UnmarshalText(text []byte) error {
	parsed, err := ParseWithdrawalOrder(string(text))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

// MarshalText renders the order back into its config-file form.
func (o WithdrawalOrder) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// HasSpouse reports whether the plan covers a second person.
func (pi *PlanInputs) HasSpouse() bool {
	return pi.Spouse != nil
}

// EventsByYear groups the one-off cash events by calendar year.
func (pi *PlanInputs) EventsByYear() map[int]decimal.Decimal {
	if len(pi.Events) == 0 {
		return nil
	}
	out := make(map[int]decimal.Decimal, len(pi.Events))
	for _, ev := range pi.Events {
		out[ev.Year] = out[ev.Year].Add(ev.Amount)
	}
	return out
}

func (fs FilingStatus) valid() bool {
	return fs == FilingMFJ || fs == FilingSingle
}

// ValidateFilingStatus rejects anything but MFJ or Single.
func ValidateFilingStatus(fs FilingStatus) error {
	if !fs.valid() {
		return fmt.Errorf("filing_status must be MFJ or Single, got %q", string(fs))
	}
	return nil
}
