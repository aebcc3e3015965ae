package orderbook

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// ErrMalformedBody marks a response body that is not valid JSON.
	ErrMalformedBody = errors.New("orderbook: malformed json body")
	// ErrUnexpectedShape marks valid JSON whose bid list is not a list of objects.
	ErrUnexpectedShape = errors.New("orderbook: unexpected book shape")
)

// Level is one price level of a CLOB book. The API sends price and size as
// strings, but numbers are tolerated; both are left undecoded until needed.
type Level struct {
	Price any `json:"price"`
	Size  any `json:"size"`
}

// Book is a point-in-time order book snapshot for one outcome token.
type Book struct {
	Market  string  `json:"market"`
	AssetID string  `json:"asset_id"`
	Hash    string  `json:"hash"`
	Bids    []Level `json:"bids"`
	Asks    []Level `json:"asks"`
}

// DecodeBook parses a /book response body. A body that is not JSON yields
// ErrMalformedBody. A body that is not an object, or has no "bids" key, is an
// empty book. A "bids" value that is not a list, or holds anything other than
// objects, yields ErrUnexpectedShape. Asks are never consumed, so a malformed
// ask list is ignored instead.
func DecodeBook(payload []byte) (*Book, error) {
	if !json.Valid(payload) {
		return nil, ErrMalformedBody
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(payload, &fields); err != nil {
		return &Book{}, nil
	}

	book := &Book{
		Market:  stringField(fields["market"]),
		AssetID: stringField(fields["asset_id"]),
		Hash:    stringField(fields["hash"]),
	}

	if raw, ok := fields["bids"]; ok {
		bids, err := decodeLevels(raw)
		if err != nil {
			return nil, fmt.Errorf("bids: %w", err)
		}
		book.Bids = bids
	}
	if raw, ok := fields["asks"]; ok {
		if asks, err := decodeLevels(raw); err == nil {
			book.Asks = asks
		}
	}
	return book, nil
}

func decodeLevels(raw json.RawMessage) ([]Level, error) {
	var entries []json.RawMessage
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) || json.Unmarshal(raw, &entries) != nil {
		return nil, fmt.Errorf("%w: expected a list, got %s", ErrUnexpectedShape, preview(raw))
	}

	levels := make([]Level, 0, len(entries))
	for i, entry := range entries {
		var obj map[string]any
		decoder := json.NewDecoder(bytes.NewReader(entry))
		decoder.UseNumber()
		if bytes.Equal(bytes.TrimSpace(entry), []byte("null")) || decoder.Decode(&obj) != nil {
			return levels, fmt.Errorf("%w: entry %d is %s, not an object", ErrUnexpectedShape, i, preview(entry))
		}
		levels = append(levels, Level{Price: obj["price"], Size: obj["size"]})
	}
	return levels, nil
}

func stringField(raw json.RawMessage) string {
	var s string
	if len(raw) == 0 || json.Unmarshal(raw, &s) != nil {
		return ""
	}
	return s
}

func preview(raw json.RawMessage) string {
	const limit = 32
	s := string(bytes.TrimSpace(raw))
	if len(s) > limit {
		return s[:limit] + "..."
	}
	return s
}

// BestBid returns the highest coercible bid price in book. Levels whose price
// cannot be coerced are skipped; the boolean is false when nothing usable remains.
func BestBid(book *Book) (decimal.Decimal, bool) {
	if book == nil {
		return decimal.Decimal{}, false
	}

	var (
		best  decimal.Decimal
		found bool
	)
	for _, level := range book.Bids {
		price, ok := Coerce(level.Price)
		if !ok {
			continue
		}
		if !found || price.GreaterThan(best) {
			best = price
			found = true
		}
	}
	return best, found
}
