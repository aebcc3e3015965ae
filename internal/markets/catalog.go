package markets

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownMarket is returned when a market name is not in the catalog.
	ErrUnknownMarket = errors.New("markets: unknown market")
	// ErrUnknownLeg is returned when a market has no token for the requested leg.
	ErrUnknownLeg = errors.New("markets: unknown leg")
)

// Leg names one side of a binary market.
type Leg string

const (
	LegYes Leg = "YES"
	LegNo  Leg = "NO"
)

// Market maps the two legs of one binary market to their CLOB token ids.
type Market struct {
	Name string
	Yes  string
	No   string
}

// Token returns the token id for leg.
func (m Market) Token(leg Leg) (string, bool) {
	switch leg {
	case LegYes:
		return m.Yes, m.Yes != ""
	case LegNo:
		return m.No, m.No != ""
	default:
		return "", false
	}
}

// Catalog is an immutable market name -> leg -> token lookup.
type Catalog struct {
	byName map[string]Market
	order  []string
}

// NewCatalog builds a catalog, rejecting blank or duplicate market names.
func NewCatalog(markets ...Market) (*Catalog, error) {
	c := &Catalog{
		byName: make(map[string]Market, len(markets)),
		order:  make([]string, 0, len(markets)),
	}
	for _, m := range markets {
		name := strings.TrimSpace(m.Name)
		if name == "" {
			return nil, errors.New("markets: market name is required")
		}
		if _, dup := c.byName[name]; dup {
			return nil, fmt.Errorf("markets: duplicate market %q", name)
		}
		m.Name = name
		c.byName[name] = m
		c.order = append(c.order, name)
	}
	return c, nil
}

// Resolve returns the token id for market/leg.
func (c *Catalog) Resolve(market string, leg Leg) (string, error) {
	m, ok := c.byName[market]
	if !ok {
		return "", fmt.Errorf("%w %q", ErrUnknownMarket, market)
	}
	token, ok := m.Token(leg)
	if !ok {
		return "", fmt.Errorf("%w %q for market %q", ErrUnknownLeg, leg, market)
	}
	return token, nil
}

// Markets lists the catalog in declaration order.
func (c *Catalog) Markets() []Market {
	out := make([]Market, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.byName[name])
	}
	return out
}

// Validate checks that every leg of every combination resolves.
func (c *Catalog) Validate(combos []Combination) error {
	var errs []error
	for _, combo := range combos {
		if _, err := c.Resolve(combo.MarketA, combo.LegA); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", combo, err))
		}
		if _, err := c.Resolve(combo.MarketB, combo.LegB); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", combo, err))
		}
	}
	return errors.Join(errs...)
}
