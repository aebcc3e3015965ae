package alerting

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestExitAlertRender(t *testing.T) {
	msg := ExitAlert{
		LegA:      "CUT25 YES",
		LegB:      "CUTCUTPAUSE YES",
		Total:     decimal.RequireFromString("1.02"),
		Threshold: decimal.RequireFromString("1.01"),
	}.Render()

	for _, want := range []string{"EXIT OPPORTUNITY", "CUT25 YES + CUTCUTPAUSE YES", "<b>1.0200</b>", "Threshold: 1.01"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("message missing %q:\n%s", want, msg)
		}
	}
}

func TestCrashReportEscapesHTML(t *testing.T) {
	msg := CrashReport(errors.New(`markets: unknown market "<X>"`))
	if !strings.Contains(msg, "crashed") {
		t.Fatalf("missing crash marker: %s", msg)
	}
	if strings.Contains(msg, "<X>") || !strings.Contains(msg, "&lt;X&gt;") {
		t.Fatalf("error text should be escaped: %s", msg)
	}
}
