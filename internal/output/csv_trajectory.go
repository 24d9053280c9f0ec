package output

import (
	"bytes"
	"encoding/csv"

	"github.com/retirmentaudit/retirement-audit-launch/internal/domain"
)

// CSVTrajectoryExporter writes one row per projected year.
type CSVTrajectoryExporter struct{}

func (c CSVTrajectoryExporter) Name() string { return "csv" }

func (c CSVTrajectoryExporter) Format(result *domain.ProjectionResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"YearOffset", "Investments", "HomeEquity", "NetWorth"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, p := range result.Trajectory {
		row := []string{
			intToString(p.YearOffset),
			p.InvestmentsTotal.StringFixed(2),
			p.HomeEquity.StringFixed(2),
			p.NetWorth.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
