package orderbook

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// maxExponent bounds the decimal exponent Coerce accepts. Prices live in
// [0, 1]; anything far outside that range would only bloat fixed-point output.
const maxExponent = 64

// Coerce converts a decoded JSON scalar into a decimal. The boolean is false
// when v is nil, not numeric, a string that does not parse as a finite number
// (including "NaN" and "Infinity"), or a value with an exponent beyond ±64.
func Coerce(v any) (decimal.Decimal, bool) {
	switch x := v.(type) {
	case nil:
		return decimal.Decimal{}, false
	case decimal.Decimal:
		return bounded(x)
	case json.Number:
		return parseDecimal(x.String())
	case string:
		return parseDecimal(x)
	case float64:
		return fromFloat(x)
	case float32:
		return fromFloat(float64(x))
	case int:
		return decimal.NewFromInt(int64(x)), true
	case int32:
		return decimal.NewFromInt32(x), true
	case int64:
		return decimal.NewFromInt(x), true
	default:
		return decimal.Decimal{}, false
	}
}

func parseDecimal(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return bounded(d)
}

func fromFloat(f float64) (decimal.Decimal, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Decimal{}, false
	}
	return bounded(decimal.NewFromFloat(f))
}

func bounded(d decimal.Decimal) (decimal.Decimal, bool) {
	if exp := d.Exponent(); exp < -maxExponent || exp > maxExponent {
		return decimal.Decimal{}, false
	}
	return d, true
}
