package output

import (
	"fmt"

	"github.com/retirmentaudit/retirement-audit-launch/internal/domain"
)

// DefaultAssumptions lists key modeling assumptions rendered in detailed outputs.
var DefaultAssumptions = []string{
	"Growth compounds annually at each account's own rate",
	"Contributions and employer match are added at the end of each year",
	"Snapshot values grow each account for the years until its holder reaches the target age",
	"The chart grows every account by years from today and keeps adding contributions through the horizon",
	"Mortgage balance is held constant; only the home value appreciates",
	"All amounts are nominal dollars (no inflation adjustment)",
}

// GenerateAssumptions adds the result's horizon and target to the default assumptions.
func GenerateAssumptions(result *domain.ProjectionResult) []string {
	out := append([]string(nil), DefaultAssumptions...)
	out = append(out,
		fmt.Sprintf("Snapshot values are taken at target age %d", result.TargetAge),
		fmt.Sprintf("Trajectory covers %d years from today", result.HorizonYears),
	)
	return out
}
