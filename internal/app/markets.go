package app

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// ListMarkets prints the market catalog and the monitored combinations.
func (a *App) ListMarkets(out io.Writer) error {
	writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)

	fmt.Fprintln(writer, "Market\tYES token\tNO token")
	for _, m := range a.Catalog.Markets() {
		fmt.Fprintf(writer, "%s\t%s\t%s\n", m.Name, abbreviate(m.Yes), abbreviate(m.No))
	}
	fmt.Fprintln(writer)

	fmt.Fprintln(writer, "#\tMonitored combination")
	for i, combo := range a.Combinations {
		fmt.Fprintf(writer, "%d\t%s\n", i, combo)
	}
	fmt.Fprintf(writer, "\nThreshold: %.2f\n", a.Config.Alerting.Threshold)

	return writer.Flush()
}

func abbreviate(token string) string {
	if len(token) <= 16 {
		return token
	}
	return token[:8] + "…" + token[len(token)-6:]
}
