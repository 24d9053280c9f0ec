package output

import (
	"bytes"
	"encoding/csv"

	"github.com/retirmentaudit/retirement-audit-launch/internal/domain"
)

// CSVAccountsExporter writes the per-account breakdown at the target age followed by the
// snapshot totals.
type CSVAccountsExporter struct{}

func (c CSVAccountsExporter) Name() string { return "accounts-csv" }

func (c CSVAccountsExporter) Format(result *domain.ProjectionResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Owner", "Kind", "Years", "AnnualContribution", "ValueAtTarget"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, a := range result.Accounts {
		row := []string{
			string(a.Key.Owner),
			string(a.Key.Kind),
			intToString(a.Years),
			a.Contribution.StringFixed(2),
			a.ValueAtTarget.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	totals := [][]string{
		{"total", "investments", "", "", result.InvestmentsTotalAtTarget.StringFixed(2)},
		{"total", "home_value", "", "", result.HomeValueAtTarget.StringFixed(2)},
		{"total", "home_equity", "", "", result.HomeEquityAtTarget.StringFixed(2)},
		{"total", "net_worth", "", "", result.NetWorthAtTarget.StringFixed(2)},
	}
	for _, row := range totals {
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
