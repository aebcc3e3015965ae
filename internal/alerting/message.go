package alerting

import (
	"fmt"
	"html"
	"strings"

	"github.com/shopspring/decimal"
)

// ExitAlert describes a pair of held legs whose bid sum reached the threshold.
type ExitAlert struct {
	LegA      string
	LegB      string
	Total     decimal.Decimal
	Threshold decimal.Decimal
}

// Render formats the alert as Telegram HTML.
func (a ExitAlert) Render() string {
	builder := strings.Builder{}
	builder.WriteString("💰 <b>EXIT OPPORTUNITY</b>\n\n")
	builder.WriteString(fmt.Sprintf("%s + %s\n", html.EscapeString(a.LegA), html.EscapeString(a.LegB)))
	builder.WriteString(fmt.Sprintf("Bid sum: <b>%s</b>\n", a.Total.StringFixed(4)))
	builder.WriteString(fmt.Sprintf("Threshold: %s\n\n", a.Threshold.StringFixed(2)))
	builder.WriteString("Consider selling both positions.")
	return builder.String()
}

// CrashReport formats a fatal scan error.
func CrashReport(err error) string {
	return "❌ Exit monitor crashed:\n" + html.EscapeString(err.Error())
}
