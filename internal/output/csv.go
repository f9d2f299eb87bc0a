package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/retireplan/drawdown-calculator/internal/domain"
)

// csvHeader is the canonical column order, shared by the CSV and console
// formatters so exports line up across tools.
var csvHeader = []string{
	"Year", "Primary_Age", "Spouse_Age", "Filing", "Lifestyle",
	"Total_Spend", "Taxes_Due", "Cash_Events", "Base_Spend",
	"Social_Security", "IRA_Draw", "Brokerage_Draw", "Roth_Draw",
	"Roth_Conversion", "RMD", "MAGI", "Std_Deduction",
	"IRA_Balance", "Brokerage_Balance", "Roth_Balance", "Total_Assets",
	"Shortfall",
}

func csvRecord(r domain.PlanRow) []string {
	return []string{
		strconv.Itoa(r.Year),
		strconv.Itoa(r.PrimaryAge),
		strconv.Itoa(r.SpouseAge),
		r.Filing,
		r.Lifestyle,
		r.TotalSpend.StringFixed(0),
		r.TaxesDue.StringFixed(0),
		r.CashEvents.StringFixed(0),
		r.BaseSpend.StringFixed(0),
		r.SocialSecurity.StringFixed(0),
		r.IRADraw.StringFixed(0),
		r.BrokerageDraw.StringFixed(0),
		r.RothDraw.StringFixed(0),
		r.RothConversion.StringFixed(0),
		r.RMD.StringFixed(0),
		r.MAGI.StringFixed(0),
		r.StdDeduction.StringFixed(0),
		r.IRABalance.StringFixed(0),
		r.BrokerageBalance.StringFixed(0),
		r.RothBalance.StringFixed(0),
		r.TotalAssets.StringFixed(0),
		r.Shortfall.StringFixed(0),
	}
}

// CSVFormatter writes one row per simulated year in the canonical column
// order.
type CSVFormatter struct{}

func (CSVFormatter) Name() string { return "csv" }

func (CSVFormatter) Format(rows []domain.PlanRow) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, r := range rows {
		if err := w.Write(csvRecord(r)); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
