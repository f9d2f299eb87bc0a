package config

import (
	"fmt"
	"os"

	"github.com/retireplan/drawdown-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of plan configuration files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads and validates a plan configuration from a YAML file.
// Every configuration error is raised here, before any simulation runs.
func (ip *InputParser) LoadFromFile(filename string) (*domain.PlanInputs, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Load(data)
}

// Load parses YAML bytes into a validated PlanInputs.
func (ip *InputParser) Load(data []byte) (*domain.PlanInputs, error) {
	inputs := defaults()
	if err := yaml.Unmarshal(data, inputs); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := ip.Validate(inputs); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return inputs, nil
}

// defaults returns a PlanInputs pre-filled with the values the config file
// may omit: phase percentages, draw order, and the RMD start age.
func defaults() *domain.PlanInputs {
	return &domain.PlanInputs{
		Spending: domain.SpendingInputs{
			GoGoPercent:     decimal.NewFromInt(100),
			SlowPercent:     decimal.NewFromInt(80),
			NoGoPercent:     decimal.NewFromInt(70),
			SurvivorPercent: decimal.NewFromInt(100),
		},
		TaxHealth: domain.TaxHealthInputs{
			RMDStartAge: 73,
		},
		DrawOrder: domain.DefaultWithdrawalOrder,
	}
}

func inRange(name string, val, lo, hi int) error {
	if val < lo || val > hi {
		return fmt.Errorf("%s out of range [%d,%d]: %d", name, lo, hi, val)
	}
	return nil
}

func rateInRange(name string, val decimal.Decimal, lo, hi string) error {
	if val.LessThan(decimal.RequireFromString(lo)) || val.GreaterThan(decimal.RequireFromString(hi)) {
		return fmt.Errorf("%s out of range [%s,%s]: %s", name, lo, hi, val)
	}
	return nil
}

func nonNegative(name string, val decimal.Decimal) error {
	if val.LessThan(decimal.Zero) {
		return fmt.Errorf("%s must be non-negative, got %s", name, val)
	}
	return nil
}

// Validate checks every field range. The engine assumes a validated input and
// has no error paths of its own.
func (ip *InputParser) Validate(in *domain.PlanInputs) error {
	if err := inRange("start_year", in.StartYear, 1900, 2100); err != nil {
		return err
	}
	if err := domain.ValidateFilingStatus(in.FilingStatus); err != nil {
		return err
	}

	if err := ip.validatePerson("primary", &in.Primary); err != nil {
		return err
	}
	if in.Spouse != nil {
		if err := ip.validatePerson("spouse", in.Spouse); err != nil {
			return err
		}
	}

	for _, check := range []struct {
		name string
		val  decimal.Decimal
	}{
		{"balances.brokerage", in.Balances.Brokerage},
		{"balances.roth", in.Balances.Roth},
		{"balances.ira", in.Balances.IRA},
		{"spending.target_spend", in.Spending.TargetSpend},
		{"tax_health.magi_target_base", in.TaxHealth.MAGITargetBase},
		{"tax_health.standard_deduction_base", in.TaxHealth.StandardDeductionBase},
	} {
		if err := nonNegative(check.name, check.val); err != nil {
			return err
		}
	}

	if in.Spending.GoGoYears < 0 || in.Spending.SlowYears < 0 {
		return fmt.Errorf("spending phase years must be non-negative, got gogo=%d slow=%d",
			in.Spending.GoGoYears, in.Spending.SlowYears)
	}
	if err := rateInRange("spending.survivor_percent", in.Spending.SurvivorPercent, "50", "100"); err != nil {
		return err
	}
	for _, pct := range []struct {
		name string
		val  decimal.Decimal
	}{
		{"spending.gogo_percent", in.Spending.GoGoPercent},
		{"spending.slow_percent", in.Spending.SlowPercent},
		{"spending.nogo_percent", in.Spending.NoGoPercent},
	} {
		if err := rateInRange(pct.name, pct.val, "0", "200"); err != nil {
			return err
		}
	}

	for _, rate := range []struct {
		name string
		val  decimal.Decimal
	}{
		{"rates.inflation", in.Rates.Inflation},
		{"rates.brokerage_growth", in.Rates.BrokerageGrowth},
		{"rates.roth_growth", in.Rates.RothGrowth},
		{"rates.ira_growth", in.Rates.IRAGrowth},
	} {
		if err := rateInRange(rate.name, rate.val, "-0.2", "0.2"); err != nil {
			return err
		}
	}

	if err := inRange("tax_health.rmd_start_age", in.TaxHealth.RMDStartAge, 70, 80); err != nil {
		return err
	}
	if in.TaxHealth.ACAEndAge < 0 {
		return fmt.Errorf("tax_health.aca_end_age must be non-negative, got %d", in.TaxHealth.ACAEndAge)
	}

	if in.Year1 != nil {
		if err := ip.validateYear1(in.Year1); err != nil {
			return err
		}
	}
	return nil
}

func (ip *InputParser) validatePerson(name string, p *domain.PersonInputs) error {
	if err := inRange(name+".birth_year", p.BirthYear, 1900, 2100); err != nil {
		return err
	}
	if err := inRange(name+".final_age", p.FinalAge, 60, 105); err != nil {
		return err
	}
	if p.SSStartAge != 0 {
		if err := inRange(name+".ss_start_age", p.SSStartAge, 62, 70); err != nil {
			return err
		}
	}
	if err := nonNegative(name+".ss_annual_at_start", p.SSAnnualAtStart); err != nil {
		return err
	}
	return nil
}

func (ip *InputParser) validateYear1(y1 *domain.Year1Actuals) error {
	for _, check := range []struct {
		name string
		val  decimal.Decimal
	}{
		{"year1.spend", y1.Spend},
		{"year1.income", y1.Income},
		{"year1.brokerage_draw", y1.BrokerageDraw},
		{"year1.roth_draw", y1.RothDraw},
		{"year1.ira_draw", y1.IRADraw},
		{"year1.taxes", y1.Taxes},
		{"year1.roth_conversion", y1.RothConversion},
	} {
		if err := nonNegative(check.name, check.val); err != nil {
			return err
		}
	}
	return nil
}
