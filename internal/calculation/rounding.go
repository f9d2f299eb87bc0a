package calculation

import (
	"github.com/retireplan/drawdown-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// RoundDollar rounds a currency amount to whole dollars, half away from zero.
func RoundDollar(v decimal.Decimal) decimal.Decimal {
	return v.Round(0)
}

// RoundRow applies the output rounding rules to every field of a row:
// currency columns to whole dollars, year and age columns are already whole.
// Internal math stays at full precision; this runs once at the output
// boundary and is idempotent.
func RoundRow(row domain.PlanRow) domain.PlanRow {
	row.TotalSpend = RoundDollar(row.TotalSpend)
	row.TaxesDue = RoundDollar(row.TaxesDue)
	row.CashEvents = RoundDollar(row.CashEvents)
	row.BaseSpend = RoundDollar(row.BaseSpend)
	row.SocialSecurity = RoundDollar(row.SocialSecurity)
	row.IRADraw = RoundDollar(row.IRADraw)
	row.BrokerageDraw = RoundDollar(row.BrokerageDraw)
	row.RothDraw = RoundDollar(row.RothDraw)
	row.RothConversion = RoundDollar(row.RothConversion)
	row.RMD = RoundDollar(row.RMD)
	row.MAGI = RoundDollar(row.MAGI)
	row.StdDeduction = RoundDollar(row.StdDeduction)
	row.IRABalance = RoundDollar(row.IRABalance)
	row.BrokerageBalance = RoundDollar(row.BrokerageBalance)
	row.RothBalance = RoundDollar(row.RothBalance)
	row.TotalAssets = RoundDollar(row.TotalAssets)
	row.Shortfall = RoundDollar(row.Shortfall)
	return row
}
