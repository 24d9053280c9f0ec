package output

import (
	"bytes"
	"fmt"

	"github.com/retirmentaudit/retirement-audit-launch/internal/domain"
)

// ConsoleFormatter provides a concise plain-text summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(result *domain.ProjectionResult) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "RETIREMENT PROJECTION SUMMARY")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Target Age: %d\n", result.TargetAge)
	fmt.Fprintf(&buf, "Investments at Target: %s\n", FormatCurrency(result.InvestmentsTotalAtTarget))
	fmt.Fprintf(&buf, "Home Value at Target: %s\n", FormatCurrency(result.HomeValueAtTarget))
	fmt.Fprintf(&buf, "Home Equity at Target: %s\n", FormatCurrency(result.HomeEquityAtTarget))
	fmt.Fprintf(&buf, "Net Worth at Target: %s\n", FormatCurrency(result.NetWorthAtTarget))
	fmt.Fprintln(&buf)
	for _, a := range result.Accounts {
		fmt.Fprintf(&buf, "%s: %s after %d years\n", a.Key.Label(), FormatCurrency(a.ValueAtTarget), a.Years)
	}
	final := result.FinalPoint()
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "Horizon: %d years, ending net worth %s\n", result.HorizonYears, FormatCurrency(final.NetWorth))
	return buf.Bytes(), nil
}
