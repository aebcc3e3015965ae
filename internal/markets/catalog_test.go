package markets

import (
	"errors"
	"testing"
)

func TestDefaultCombinationsResolve(t *testing.T) {
	catalog := Default()
	if err := catalog.Validate(DefaultCombinations()); err != nil {
		t.Fatalf("built-in combinations should resolve: %v", err)
	}

	token, err := catalog.Resolve("CUT25", LegYes)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if token != "92703761682322480664976766247614127878023988651992837287050266308961660624165" {
		t.Fatalf("unexpected token %s", token)
	}
}

func TestResolveUnknown(t *testing.T) {
	catalog := Default()

	if _, err := catalog.Resolve("HIKE50", LegYes); !errors.Is(err, ErrUnknownMarket) {
		t.Fatalf("expected ErrUnknownMarket, got %v", err)
	}
	if _, err := catalog.Resolve("CUT25", Leg("yes")); !errors.Is(err, ErrUnknownLeg) {
		t.Fatalf("expected ErrUnknownLeg, got %v", err)
	}
}

func TestValidateReportsEveryBadLeg(t *testing.T) {
	catalog, err := NewCatalog(Market{Name: "A", Yes: "1", No: "2"})
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}

	err = catalog.Validate([]Combination{
		{MarketA: "A", LegA: LegYes, MarketB: "A", LegB: LegNo},
		{MarketA: "B", LegA: LegYes, MarketB: "A", LegB: Leg("MAYBE")},
	})
	if !errors.Is(err, ErrUnknownMarket) || !errors.Is(err, ErrUnknownLeg) {
		t.Fatalf("expected both sentinel errors, got %v", err)
	}
}

func TestNewCatalogRejectsDuplicates(t *testing.T) {
	if _, err := NewCatalog(Market{Name: "A"}, Market{Name: " A "}); err == nil {
		t.Fatal("duplicate names should be rejected")
	}
	if _, err := NewCatalog(Market{Name: ""}); err == nil {
		t.Fatal("blank names should be rejected")
	}
}

func TestMarketsPreservesOrder(t *testing.T) {
	got := Default().Markets()
	want := []string{"CUT25", "CUTCUTCUT", "NOCHANGE", "CUTCUTPAUSE"}
	if len(got) != len(want) {
		t.Fatalf("got %d markets, want %d", len(got), len(want))
	}
	for i, name := range want {
		if got[i].Name != name {
			t.Fatalf("market %d = %s, want %s", i, got[i].Name, name)
		}
	}
}

func TestCombinationLabels(t *testing.T) {
	combo := Combination{MarketA: "CUT25", LegA: LegYes, MarketB: "NOCHANGE", LegB: LegNo}
	if combo.String() != "CUT25 YES / NOCHANGE NO" {
		t.Fatalf("unexpected label %q", combo.String())
	}
}
