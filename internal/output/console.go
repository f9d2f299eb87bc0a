package output

import (
	"bytes"
	"fmt"
	"text/tabwriter"

	"github.com/retireplan/drawdown-calculator/internal/domain"
)

// ConsoleFormatter renders a compact table for terminal viewing. Columns are
// the ones a person scanning a plan actually reads; the CSV export carries
// the full schema.
type ConsoleFormatter struct{}

func (ConsoleFormatter) Name() string { return "console" }

func (ConsoleFormatter) Format(rows []domain.PlanRow) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := tabwriter.NewWriter(buf, 0, 4, 2, ' ', 0)

	fmt.Fprintln(w, "Year\tAge\tSpouse\tPhase\tFiling\tSpend\tTaxes\tSS\tIRA\tBrokerage\tRoth\tConv\tRMD\tShortfall\tTotal Assets")
	for _, r := range rows {
		fmt.Fprintf(w, "%d\t%d\t%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.Year, r.PrimaryAge, r.SpouseAge, r.Lifestyle, r.Filing,
			r.TotalSpend.StringFixed(0), r.TaxesDue.StringFixed(0),
			r.SocialSecurity.StringFixed(0), r.IRADraw.StringFixed(0),
			r.BrokerageDraw.StringFixed(0), r.RothDraw.StringFixed(0),
			r.RothConversion.StringFixed(0), r.RMD.StringFixed(0),
			r.Shortfall.StringFixed(0), r.TotalAssets.StringFixed(0))
	}
	if err := w.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
