package output

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/retireplan/drawdown-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRows() []domain.PlanRow {
	d := decimal.NewFromInt
	return []domain.PlanRow{
		{
			Year: 2025, PrimaryAge: 65, SpouseAge: 62,
			Filing: "MFJ", Lifestyle: "GoGo",
			TotalSpend: d(80000), TaxesDue: d(4200), CashEvents: d(0),
			BaseSpend: d(75800), SocialSecurity: d(30000),
			IRADraw: d(50000), BrokerageDraw: d(0), RothDraw: d(0),
			RothConversion: d(12000), RMD: d(0),
			MAGI: d(62000), StdDeduction: d(29200),
			IRABalance: d(538000), BrokerageBalance: d(250000), RothBalance: d(112000),
			TotalAssets: d(900000), Shortfall: d(0),
		},
		{
			Year: 2026, PrimaryAge: 66, SpouseAge: 63,
			Filing: "MFJ", Lifestyle: "GoGo",
			TotalSpend: d(82000), TaxesDue: d(4400), CashEvents: d(25000),
			BaseSpend: d(52600), SocialSecurity: d(30750),
			IRADraw: d(51250), BrokerageDraw: d(0), RothDraw: d(0),
			RothConversion: d(11000), RMD: d(0),
			MAGI: d(63500), StdDeduction: d(29900),
			IRABalance: d(500000), BrokerageBalance: d(262000), RothBalance: d(130000),
			TotalAssets: d(892000), Shortfall: d(0),
		},
	}
}

func TestForName(t *testing.T) {
	for name, want := range map[string]string{
		"csv":     "csv",
		"console": "console",
		"table":   "console",
		"json":    "json",
	} {
		f, err := ForName(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, f.Name())
	}

	_, err := ForName("xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestCSVFormatter(t *testing.T) {
	out, err := CSVFormatter{}.Format(sampleRows())
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(out))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, csvHeader, records[0])
	for _, rec := range records[1:] {
		assert.Len(t, rec, len(csvHeader))
	}

	assert.Equal(t, "2025", records[1][0])
	assert.Equal(t, "MFJ", records[1][3])
	assert.Equal(t, "GoGo", records[1][4])
	assert.Equal(t, "80000", records[1][5])
	assert.Equal(t, "25000", records[2][7], "Cash_Events column")
	assert.Equal(t, "892000", records[2][20], "Total_Assets column")
}

func TestCSVFormatterEmpty(t *testing.T) {
	out, err := CSVFormatter{}.Format(nil)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(out))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1, "header only")
}

func TestJSONFormatter(t *testing.T) {
	out, err := JSONFormatter{}.Format(sampleRows())
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded))
	require.Len(t, decoded, 2)

	assert.EqualValues(t, 2025, decoded[0]["year"])
	assert.Equal(t, "MFJ", decoded[0]["filing"])
	assert.Equal(t, "80000", decoded[0]["total_spend"])
}

func TestConsoleFormatter(t *testing.T) {
	out, err := ConsoleFormatter{}.Format(sampleRows())
	require.NoError(t, err)

	text := string(out)
	assert.Contains(t, text, "Year")
	assert.Contains(t, text, "2025")
	assert.Contains(t, text, "GoGo")

	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	assert.GreaterOrEqual(t, len(lines), 3, "header plus one line per row")
}
