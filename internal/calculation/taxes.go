package calculation

import (
	"github.com/retireplan/drawdown-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// TaxBracket is one marginal bracket: income up to Upper is taxed at Rate.
// A bracket with Unbounded set captures everything above the previous bound
// and must be last.
type TaxBracket struct {
	Upper     decimal.Decimal
	Rate      decimal.Decimal
	Unbounded bool
}

// TaxResult is the full output of one tax evaluation.
type TaxResult struct {
	Tax           decimal.Decimal
	TaxableSS     decimal.Decimal
	TaxableIncome decimal.Decimal
	MAGI          decimal.Decimal
}

// SSThresholds are the provisional-income breakpoints for the 50%/85%
// Social Security taxation rule.
type SSThresholds struct {
	Base       decimal.Decimal // below: none of SS is taxable
	Additional decimal.Decimal // above: 85% band applies
}

// TaxCalculator evaluates federal tax, taxable Social Security, and MAGI.
// It is a pure function of its inputs and safe to call repeatedly, which the
// conversion solver depends on.
type TaxCalculator struct {
	BracketsMFJ      []TaxBracket
	BracketsSingle   []TaxBracket
	ThresholdsMFJ    SSThresholds
	ThresholdsSingle SSThresholds
}

func bracket(upper int64, rate string) TaxBracket {
	return TaxBracket{Upper: decimal.NewFromInt(upper), Rate: decimal.RequireFromString(rate)}
}

func topBracket(rate string) TaxBracket {
	return TaxBracket{Rate: decimal.RequireFromString(rate), Unbounded: true}
}

// NewTaxCalculator2024 returns a calculator loaded with 2024 federal brackets
// and Social Security provisional-income thresholds.
func NewTaxCalculator2024() *TaxCalculator {
	return &TaxCalculator{
		BracketsMFJ: []TaxBracket{
			bracket(23200, "0.10"),
			bracket(94300, "0.12"),
			bracket(201050, "0.22"),
			bracket(383900, "0.24"),
			bracket(487450, "0.32"),
			bracket(731200, "0.35"),
			topBracket("0.37"),
		},
		BracketsSingle: []TaxBracket{
			bracket(11600, "0.10"),
			bracket(47150, "0.12"),
			bracket(100525, "0.22"),
			bracket(191950, "0.24"),
			bracket(243725, "0.32"),
			bracket(609350, "0.35"),
			topBracket("0.37"),
		},
		ThresholdsMFJ: SSThresholds{
			Base:       decimal.NewFromInt(32000),
			Additional: decimal.NewFromInt(44000),
		},
		ThresholdsSingle: SSThresholds{
			Base:       decimal.NewFromInt(25000),
			Additional: decimal.NewFromInt(34000),
		},
	}
}

func (tc *TaxCalculator) bracketsFor(filing domain.FilingStatus) []TaxBracket {
	if filing == domain.FilingSingle {
		return tc.BracketsSingle
	}
	return tc.BracketsMFJ
}

func (tc *TaxCalculator) thresholdsFor(filing domain.FilingStatus) SSThresholds {
	if filing == domain.FilingSingle {
		return tc.ThresholdsSingle
	}
	return tc.ThresholdsMFJ
}

// ProgressiveTax walks the filing status's bracket list, taxing only the
// income span within each bracket.
func (tc *TaxCalculator) ProgressiveTax(taxableIncome decimal.Decimal, filing domain.FilingStatus) decimal.Decimal {
	if taxableIncome.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	tax := decimal.Zero
	prev := decimal.Zero
	for _, b := range tc.bracketsFor(filing) {
		upper := b.Upper
		if b.Unbounded {
			upper = taxableIncome
		}
		span := decimal.Min(taxableIncome, upper).Sub(prev)
		if span.GreaterThan(decimal.Zero) {
			tax = tax.Add(span.Mul(b.Rate))
			prev = upper
		}
		if taxableIncome.LessThanOrEqual(upper) {
			break
		}
	}
	return tax
}

// TaxableSocialSecurity applies the 50%/85% provisional-income rule.
// otherOrdinary is ordinary income excluding SS (IRA draws, RMD, conversions).
func (tc *TaxCalculator) TaxableSocialSecurity(ssTotal, otherOrdinary decimal.Decimal, filing domain.FilingStatus) decimal.Decimal {
	if ssTotal.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	th := tc.thresholdsFor(filing)
	half := decimal.RequireFromString("0.5")
	provisional := otherOrdinary.Add(ssTotal.Mul(half))

	if provisional.LessThanOrEqual(th.Base) {
		return decimal.Zero
	}

	// Band between the thresholds: up to 50% of SS.
	part1 := decimal.Min(provisional.Sub(th.Base), th.Additional.Sub(th.Base))
	taxable1 := decimal.Zero
	if part1.GreaterThan(decimal.Zero) {
		taxable1 = decimal.Min(ssTotal, part1.Mul(decimal.NewFromInt(2))).Mul(half)
	}

	// Above the second threshold: 85% of the excess, with the grand total
	// capped at 85% of the benefit.
	eightyFive := decimal.RequireFromString("0.85")
	excess := decimal.Max(decimal.Zero, provisional.Sub(th.Additional))
	taxable := taxable1.Add(excess.Mul(eightyFive))

	return decimal.Min(ssTotal.Mul(eightyFive), decimal.Max(decimal.Zero, taxable))
}

// ComputeTaxMAGI evaluates one tax scenario: pre-tax ordinary income (RMD plus
// traditional draws), a proposed Roth conversion, total Social Security, and
// the standard deduction. Brokerage draws are treated as return of basis and
// appear nowhere in the result.
func (tc *TaxCalculator) ComputeTaxMAGI(
	iraOrdinary, conversion, ssTotal, stdDeduction decimal.Decimal,
	filing domain.FilingStatus,
) TaxResult {
	ordinary := decimal.Max(decimal.Zero, iraOrdinary.Add(conversion))
	taxableSS := tc.TaxableSocialSecurity(ssTotal, ordinary, filing)
	taxableIncome := decimal.Max(decimal.Zero,
		ordinary.Add(taxableSS).Sub(decimal.Max(decimal.Zero, stdDeduction)))
	return TaxResult{
		Tax:           tc.ProgressiveTax(taxableIncome, filing),
		TaxableSS:     taxableSS,
		TaxableIncome: taxableIncome,
		MAGI:          ordinary.Add(taxableSS),
	}
}
