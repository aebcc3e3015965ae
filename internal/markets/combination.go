package markets

// Combination names two held legs whose best bids are summed.
type Combination struct {
	MarketA string
	LegA    Leg
	MarketB string
	LegB    Leg
}

// LabelA is the display label of the first leg, e.g. "CUT25 YES".
func (c Combination) LabelA() string {
	return c.MarketA + " " + string(c.LegA)
}

// LabelB is the display label of the second leg.
func (c Combination) LabelB() string {
	return c.MarketB + " " + string(c.LegB)
}

func (c Combination) String() string {
	return c.LabelA() + " / " + c.LabelB()
}
