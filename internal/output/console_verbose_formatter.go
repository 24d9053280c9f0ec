package output

import (
	"bytes"
	"fmt"

	"github.com/retirmentaudit/retirement-audit-launch/internal/domain"
)

// ConsoleVerboseFormatter renders the styled console report: target-age snapshot, per-account
// breakdown, net worth sparkline and a milestone table.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

func (c ConsoleVerboseFormatter) Format(result *domain.ProjectionResult) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, renderTitle(fmt.Sprintf("RETIREMENT PROJECTION AT AGE %d", result.TargetAge)))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, renderTable(table{
		Title:   "Snapshot at Target Age",
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Investments", FormatCurrency(result.InvestmentsTotalAtTarget)},
			{"Home Value", FormatCurrency(result.HomeValueAtTarget)},
			{"Home Equity", FormatCurrency(result.HomeEquityAtTarget)},
			{"---"},
			{"Total Net Worth", FormatCurrency(result.NetWorthAtTarget)},
		},
	}))

	comp := AnalyzeComposition(result)
	if !result.NetWorthAtTarget.IsZero() {
		fmt.Fprintf(&buf, "  %s  %s investments / %s home equity\n\n",
			renderShareBar(comp.InvestmentsPct.InexactFloat64(), 30),
			moneyStyle.Render(FormatPercentage(comp.InvestmentsPct)),
			homeStyle.Render(FormatPercentage(comp.HomeEquityPct)),
		)
	}

	if len(result.Accounts) > 0 {
		rows := make([][]string, 0, len(result.Accounts)+2)
		for _, a := range result.Accounts {
			rows = append(rows, []string{
				a.Key.Label(),
				intToString(a.Years),
				FormatWholeCurrency(a.Contribution),
				FormatCurrency(a.ValueAtTarget),
			})
		}
		rows = append(rows, []string{"---"}, []string{"Total", "", "", FormatCurrency(result.InvestmentsTotalAtTarget)})
		fmt.Fprintln(&buf, renderTable(table{
			Title:   "Accounts",
			Headers: []string{"Account", "Years", "Yearly In", "At Target"},
			Rows:    rows,
		}))
	} else {
		fmt.Fprintln(&buf, warnStyle.Render("  No investment accounts provided."))
		fmt.Fprintln(&buf)
	}

	_, _, netWorth := Series(result)
	fmt.Fprintf(&buf, "  %s\n", headerStyle.Render("Net Worth Trajectory"))
	fmt.Fprintf(&buf, "  %s\n", renderSparkline(netWorth))
	fmt.Fprintf(&buf, "  %s\n\n", mutedStyle.Render(fmt.Sprintf("year 0 to year %d", result.HorizonYears)))

	milestones := Milestones(result, 5)
	rows := make([][]string, 0, len(milestones))
	for _, p := range milestones {
		rows = append(rows, []string{
			fmt.Sprintf("Year %d", p.YearOffset),
			FormatWholeCurrency(p.InvestmentsTotal),
			FormatWholeCurrency(p.HomeEquity),
			FormatWholeCurrency(p.NetWorth),
		})
	}
	fmt.Fprintln(&buf, renderTable(table{
		Title:   "Milestones",
		Headers: []string{"Year", "Investments", "Home Equity", "Net Worth"},
		Rows:    rows,
	}))

	fmt.Fprintf(&buf, "  %s\n", headerStyle.Render("Key Assumptions"))
	for _, a := range GenerateAssumptions(result) {
		fmt.Fprintf(&buf, "  %s %s\n", dimStyle.Render("•"), mutedStyle.Render(a))
	}
	return buf.Bytes(), nil
}
