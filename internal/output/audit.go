package output

import (
	"fmt"

	"github.com/retireplan/drawdown-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// auditTolerance allows each identity to drift by a few dollars of rounding
// across the three independently rounded balances.
var auditTolerance = decimal.NewFromInt(2)

// AuditSummary is the result of checking the row-level identities.
type AuditSummary struct {
	Rows   int
	Issues []string
}

// OK reports whether every identity held.
func (s AuditSummary) OK() bool { return len(s.Issues) == 0 }

// String renders a one-line result in the style of the audit report.
func (s AuditSummary) String() string {
	if s.OK() {
		return fmt.Sprintf("Rows audited: %d  |  Result: OK", s.Rows)
	}
	return fmt.Sprintf("Rows audited: %d  |  Result: %d issues", s.Rows, len(s.Issues))
}

// AuditRows checks the identities every emitted row must satisfy: balances
// and flows non-negative, Total_Assets equal to the sum of the three ending
// balances, and a non-negative shortfall.
func AuditRows(rows []domain.PlanRow) AuditSummary {
	summary := AuditSummary{Rows: len(rows)}
	for _, r := range rows {
		total := r.IRABalance.Add(r.BrokerageBalance).Add(r.RothBalance)
		if total.Sub(r.TotalAssets).Abs().GreaterThan(auditTolerance) {
			summary.Issues = append(summary.Issues,
				fmt.Sprintf("[%d] Total_Assets expected %s got %s", r.Year, total.StringFixed(0), r.TotalAssets.StringFixed(0)))
		}
		for _, check := range []struct {
			name string
			val  decimal.Decimal
		}{
			{"IRA_Balance", r.IRABalance},
			{"Brokerage_Balance", r.BrokerageBalance},
			{"Roth_Balance", r.RothBalance},
			{"IRA_Draw", r.IRADraw},
			{"Brokerage_Draw", r.BrokerageDraw},
			{"Roth_Draw", r.RothDraw},
			{"Roth_Conversion", r.RothConversion},
			{"RMD", r.RMD},
			{"Shortfall", r.Shortfall},
		} {
			if check.val.LessThan(decimal.Zero) {
				summary.Issues = append(summary.Issues,
					fmt.Sprintf("[%d] %s negative: %s", r.Year, check.name, check.val.StringFixed(0)))
			}
		}
	}
	return summary
}
