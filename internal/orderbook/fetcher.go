package orderbook

import "context"

// Fetcher retrieves order book snapshots for outcome tokens.
type Fetcher interface {
	FetchBook(ctx context.Context, tokenID string) (*Book, error)
}
