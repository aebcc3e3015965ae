package orderbook

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestBestBidAbsent(t *testing.T) {
	cases := map[string]*Book{
		"nil book":       nil,
		"no bid list":    {AssetID: "1"},
		"empty bid list": {Bids: []Level{}},
		"only garbage":   {Bids: []Level{{Price: "abc"}, {Price: nil}, {Size: "10"}}},
	}

	for name, book := range cases {
		if got, ok := BestBid(book); ok {
			t.Fatalf("%s: expected no best bid, got %s", name, got)
		}
	}
}

func TestBestBidPicksMaximum(t *testing.T) {
	book := &Book{Bids: []Level{
		{Price: "0.01", Size: "500"},
		{Price: "abc", Size: "1"},
		{Price: json.Number("0.52"), Size: "20"},
		{Price: nil},
		{Price: "0.47", Size: "3"},
	}}

	got, ok := BestBid(book)
	if !ok {
		t.Fatal("expected a best bid")
	}
	if !got.Equal(decimal.RequireFromString("0.52")) {
		t.Fatalf("best bid = %s, want 0.52", got)
	}
}

func TestBestBidIgnoresAsks(t *testing.T) {
	book := &Book{
		Bids: []Level{{Price: "0.30"}},
		Asks: []Level{{Price: "0.99"}},
	}

	got, ok := BestBid(book)
	if !ok || !got.Equal(decimal.RequireFromString("0.3")) {
		t.Fatalf("best bid = %s (%v), want 0.30", got, ok)
	}
}

func TestDecodeBook(t *testing.T) {
	book, err := DecodeBook([]byte(`{"market":"0xabc","asset_id":"7","bids":[{"price":"0.48","size":"10"},{"price":0.51},{"size":"3"}],"asks":[5]}`))
	if err != nil {
		t.Fatalf("DecodeBook: %v", err)
	}
	if book.Market != "0xabc" || book.AssetID != "7" || len(book.Bids) != 3 {
		t.Fatalf("unexpected book %+v", book)
	}
	if book.Asks != nil {
		t.Fatalf("malformed asks should be ignored, got %+v", book.Asks)
	}
	if _, ok := book.Bids[1].Price.(json.Number); !ok {
		t.Fatalf("numeric prices should decode as json.Number, got %T", book.Bids[1].Price)
	}

	best, ok := BestBid(book)
	if !ok || !best.Equal(decimal.RequireFromString("0.51")) {
		t.Fatalf("best bid = %s (%v), want 0.51", best, ok)
	}
}

func TestDecodeBookWithoutBidList(t *testing.T) {
	for _, body := range []string{`{}`, `null`, `[]`, `"book"`, `{"asks":[]}`} {
		book, err := DecodeBook([]byte(body))
		if err != nil {
			t.Fatalf("%s: lacking a bid list is not an error: %v", body, err)
		}
		if _, ok := BestBid(book); ok {
			t.Fatalf("%s: expected no best bid", body)
		}
	}
}

func TestDecodeBookUnexpectedShape(t *testing.T) {
	for _, body := range []string{`{"bids":[1,2]}`, `{"bids":"abc"}`, `{"bids":[null]}`, `{"bids":null}`, `{"bids":[{"price":"0.5"},["0.4","1"]]}`} {
		if _, err := DecodeBook([]byte(body)); !errors.Is(err, ErrUnexpectedShape) {
			t.Fatalf("%s: expected ErrUnexpectedShape, got %v", body, err)
		}
	}
}

func TestDecodeBookMalformed(t *testing.T) {
	if _, err := DecodeBook([]byte(`{"bids":[`)); !errors.Is(err, ErrMalformedBody) {
		t.Fatalf("expected ErrMalformedBody, got %v", err)
	}
}
