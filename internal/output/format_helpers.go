package output

import (
	"strconv"

	"github.com/retirmentaudit/retirement-audit-launch/pkg/decimal"
	stddec "github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal as USD currency with thousands separators and 2 decimals.
func FormatCurrency(amount stddec.Decimal) string { return decimal.NewMoneyFromDecimal(amount).Format() }

// FormatWholeCurrency formats a decimal as USD currency rounded to whole dollars.
func FormatWholeCurrency(amount stddec.Decimal) string {
	return decimal.NewMoneyFromDecimal(amount).FormatWhole()
}

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount stddec.Decimal) string { return amount.StringFixed(2) + "%" }

func intToString(i int) string { return strconv.Itoa(i) }
