package calculation

import (
	"github.com/retireplan/drawdown-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// PlanEngine orchestrates the year-by-year drawdown projection. A run is a
// pure, synchronous function from a validated PlanInputs to an ordered row
// list; the three account balances are the only state carried between years.
type PlanEngine struct {
	TaxCalc *TaxCalculator
	Logger  Logger
}

// NewPlanEngine creates an engine with current tax policy and no logging.
func NewPlanEngine() *PlanEngine {
	return &PlanEngine{
		TaxCalc: NewTaxCalculator2024(),
		Logger:  NopLogger{},
	}
}

// SetLogger sets the engine logger. A nil logger installs the no-op default.
func (pe *PlanEngine) SetLogger(l Logger) {
	if l == nil {
		pe.Logger = NopLogger{}
		return
	}
	pe.Logger = l
}

// RunPlan projects the plan across its full timeline and returns one rounded
// row per calendar year.
func (pe *PlanEngine) RunPlan(in *domain.PlanInputs) []domain.PlanRow {
	timeline := MakeTimeline(in)
	rmdTable := NewUniformLifetimeTable(in.TaxHealth.RMDStartAge)
	eventsByYear := in.EventsByYear()

	balances := in.Balances
	rows := make([]domain.PlanRow, 0, len(timeline))

	pe.Logger.Infof("projecting %d years starting %d, draw order %s",
		len(timeline), in.StartYear, in.DrawOrder)

	for idx, yc := range timeline {
		infl := InflationFactor(in.Rates.Inflation, idx)
		stdDed := in.TaxHealth.StandardDeductionBase.Mul(infl)

		filing := domain.FilingSingle
		if yc.PrimaryAlive && yc.SpouseAlive {
			filing = domain.FilingMFJ
		}

		eventsCash := decimal.Zero
		if amount, ok := eventsByYear[yc.Year]; ok {
			eventsCash = amount
		}

		var row domain.PlanRow
		if idx == 0 && in.Year1 != nil {
			row, balances = pe.actualsYear(in, yc, filing, stdDed, eventsCash, balances)
		} else {
			row, balances = pe.simulatedYear(in, yc, idx, filing, stdDed, eventsCash, rmdTable, infl, balances)
		}

		rows = append(rows, RoundRow(row))
	}
	return rows
}

// simulatedYear runs the normal per-year state machine: need, RMD, ordered
// draws, the tax/conversion equilibrium, surplus sweep, then growth.
func (pe *PlanEngine) simulatedYear(
	in *domain.PlanInputs,
	yc YearContext,
	idx int,
	filing domain.FilingStatus,
	stdDed, eventsCash decimal.Decimal,
	rmdTable *RMDTable,
	infl decimal.Decimal,
	opening domain.AccountBalances,
) (domain.PlanRow, domain.AccountBalances) {
	// Gross budget for the year; taxes and cash events live inside it.
	totalSpend := SpendingTarget(yc.Phase, idx, in.Rates.Inflation, in.Spending, yc.PrimaryAlive, yc.SpouseAlive)

	ssPrimary := BenefitForYear(yc.PrimaryAge, in.Primary.SSStartAge, in.Primary.SSAnnualAtStart, in.Rates.Inflation)
	ssSpouse := decimal.Zero
	if in.HasSpouse() {
		ssSpouse = BenefitForYear(yc.SpouseAge, in.Spouse.SSStartAge, in.Spouse.SSAnnualAtStart, in.Rates.Inflation)
	}
	ssIncome := CombinedBenefit(ssPrimary, ssSpouse, yc.PrimaryAlive, yc.SpouseAlive)

	// RMD comes off the opening pre-tax balance, before any draw ordering.
	rmd := decimal.Zero
	if yc.PrimaryAlive {
		rmd = rmdTable.Required(yc.PrimaryAge, opening.IRA)
	}

	needForBudget := decimal.Max(decimal.Zero, totalSpend.Sub(ssIncome).Sub(rmd))

	postRMD := opening
	postRMD.Debit(domain.AccountIRA, rmd)
	wd := AllocateWithdrawal(postRMD, needForBudget, in.DrawOrder)
	balances := wd.Balances

	providedCash := ssIncome.Add(rmd).
		Add(wd.Draw(domain.AccountBrokerage)).
		Add(wd.Draw(domain.AccountRoth)).
		Add(wd.Draw(domain.AccountIRA))
	shortfall := decimal.Max(decimal.Zero, totalSpend.Sub(providedCash))
	if shortfall.GreaterThan(decimal.Zero) {
		pe.Logger.Debugf("year %d: budget short by %s", yc.Year, shortfall.StringFixed(0))
	}

	// Conversions fill MAGI headroom toward the subsidy target while the
	// primary person is under the cutoff age.
	targetMAGI := decimal.Zero
	eligible := yc.PrimaryAlive && yc.PrimaryAge < in.TaxHealth.ACAEndAge
	if eligible {
		targetMAGI = in.TaxHealth.MAGITargetBase.Mul(infl)
	}
	conversion, taxResult := pe.TaxCalc.SolveConversion(ConversionRequest{
		TargetMAGI:   targetMAGI,
		Eligible:     eligible,
		IRAAvailable: balances.IRA,
		IRAOrdinary:  rmd.Add(wd.Draw(domain.AccountIRA)),
		SSTotal:      ssIncome,
		StdDeduction: stdDed,
		Filing:       filing,
	})
	balances.Debit(domain.AccountIRA, conversion)
	balances.Credit(domain.AccountRoth, conversion)

	// RMD cash not needed for the budget sweeps into brokerage; policy does
	// not allow converting an RMD to Roth.
	needAfterSS := decimal.Max(decimal.Zero, totalSpend.Sub(ssIncome))
	rmdSurplus := decimal.Max(decimal.Zero, rmd.Sub(needAfterSS))
	balances.Credit(domain.AccountBrokerage, rmdSurplus)

	balances = applyGrowth(balances, in.Rates)

	baseSpend := decimal.Max(decimal.Zero, totalSpend.Sub(taxResult.Tax).Sub(eventsCash))

	row := domain.PlanRow{
		Year:             yc.Year,
		PrimaryAge:       yc.PrimaryAge,
		SpouseAge:        yc.SpouseAge,
		Lifestyle:        yc.Phase.String(),
		Filing:           string(filing),
		TotalSpend:       totalSpend,
		TaxesDue:         taxResult.Tax,
		CashEvents:       eventsCash,
		BaseSpend:        baseSpend,
		SocialSecurity:   ssIncome,
		IRADraw:          wd.Draw(domain.AccountIRA),
		BrokerageDraw:    wd.Draw(domain.AccountBrokerage),
		RothDraw:         wd.Draw(domain.AccountRoth),
		RothConversion:   conversion,
		RMD:              rmd,
		MAGI:             taxResult.MAGI,
		StdDeduction:     stdDed,
		IRABalance:       balances.IRA,
		BrokerageBalance: balances.Brokerage,
		RothBalance:      balances.Roth,
		TotalAssets:      balances.Total(),
		Shortfall:        shortfall,
	}
	return row, balances
}

// actualsYear substitutes user-supplied actual cash flows for the first
// simulated year. Spending, draws, taxes, and the conversion come straight
// from the config; growth still applies to the resulting balances.
func (pe *PlanEngine) actualsYear(
	in *domain.PlanInputs,
	yc YearContext,
	filing domain.FilingStatus,
	stdDed, eventsCash decimal.Decimal,
	opening domain.AccountBalances,
) (domain.PlanRow, domain.AccountBalances) {
	y1 := in.Year1
	balances := opening

	drawBrokerage := decimal.Min(y1.BrokerageDraw, decimal.Max(decimal.Zero, balances.Brokerage))
	drawRoth := decimal.Min(y1.RothDraw, decimal.Max(decimal.Zero, balances.Roth))
	drawIRA := decimal.Min(y1.IRADraw, decimal.Max(decimal.Zero, balances.IRA))
	balances.Debit(domain.AccountBrokerage, drawBrokerage)
	balances.Debit(domain.AccountRoth, drawRoth)
	balances.Debit(domain.AccountIRA, drawIRA)

	conversion := decimal.Min(y1.RothConversion, decimal.Max(decimal.Zero, balances.IRA))
	balances.Debit(domain.AccountIRA, conversion)
	balances.Credit(domain.AccountRoth, conversion)

	// MAGI is still reported from actual flows so the row stays comparable
	// with the simulated years; the tax figure itself is the supplied actual.
	taxResult := pe.TaxCalc.ComputeTaxMAGI(drawIRA, conversion, y1.Income, stdDed, filing)

	provided := y1.Income.Add(drawBrokerage).Add(drawRoth).Add(drawIRA)
	shortfall := decimal.Max(decimal.Zero, y1.Spend.Sub(provided))

	balances = applyGrowth(balances, in.Rates)

	baseSpend := decimal.Max(decimal.Zero, y1.Spend.Sub(y1.Taxes).Sub(eventsCash))

	row := domain.PlanRow{
		Year:             yc.Year,
		PrimaryAge:       yc.PrimaryAge,
		SpouseAge:        yc.SpouseAge,
		Lifestyle:        yc.Phase.String(),
		Filing:           string(filing),
		TotalSpend:       y1.Spend,
		TaxesDue:         y1.Taxes,
		CashEvents:       eventsCash,
		BaseSpend:        baseSpend,
		SocialSecurity:   y1.Income,
		IRADraw:          drawIRA,
		BrokerageDraw:    drawBrokerage,
		RothDraw:         drawRoth,
		RothConversion:   conversion,
		RMD:              decimal.Zero,
		MAGI:             taxResult.MAGI,
		StdDeduction:     stdDed,
		IRABalance:       balances.IRA,
		BrokerageBalance: balances.Brokerage,
		RothBalance:      balances.Roth,
		TotalAssets:      balances.Total(),
		Shortfall:        shortfall,
	}
	return row, balances
}

// applyGrowth compounds each bucket by its configured annual rate.
func applyGrowth(b domain.AccountBalances, rates domain.RateInputs) domain.AccountBalances {
	one := decimal.NewFromInt(1)
	b.Brokerage = b.Brokerage.Mul(one.Add(rates.BrokerageGrowth))
	b.Roth = b.Roth.Mul(one.Add(rates.RothGrowth))
	b.IRA = b.IRA.Mul(one.Add(rates.IRAGrowth))
	return b
}
