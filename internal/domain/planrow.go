package domain

import (
	"github.com/shopspring/decimal"
)

// PlanRow is the immutable output record for one simulated year. Currency
// fields are rounded to whole dollars at the output boundary; the engine
// never reads a PlanRow back.
type PlanRow struct {
	// Timeline
	Year       int    `json:"year"`
	PrimaryAge int    `json:"primary_age"`
	SpouseAge  int    `json:"spouse_age"`
	Lifestyle  string `json:"lifestyle"`
	Filing     string `json:"filing"`

	// Budget
	TotalSpend decimal.Decimal `json:"total_spend"`
	TaxesDue   decimal.Decimal `json:"taxes_due"`
	CashEvents decimal.Decimal `json:"cash_events"`
	BaseSpend  decimal.Decimal `json:"base_spend"`

	// Flows
	SocialSecurity decimal.Decimal `json:"social_security"`
	IRADraw        decimal.Decimal `json:"ira_draw"` // excludes RMD
	BrokerageDraw  decimal.Decimal `json:"brokerage_draw"`
	RothDraw       decimal.Decimal `json:"roth_draw"`
	RothConversion decimal.Decimal `json:"roth_conversion"`
	RMD            decimal.Decimal `json:"rmd"`
	MAGI           decimal.Decimal `json:"magi"`
	StdDeduction   decimal.Decimal `json:"std_deduction"`

	// End-of-year balances
	IRABalance       decimal.Decimal `json:"ira_balance"`
	BrokerageBalance decimal.Decimal `json:"brokerage_balance"`
	RothBalance      decimal.Decimal `json:"roth_balance"`
	TotalAssets      decimal.Decimal `json:"total_assets"`

	// Unmet portion of the year's budget, zero when fully funded.
	Shortfall decimal.Decimal `json:"shortfall"`
}
