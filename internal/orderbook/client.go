package orderbook

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	// DefaultBookURL is the public Polymarket CLOB order book endpoint.
	DefaultBookURL = "https://clob.polymarket.com/book"

	defaultUserAgent = "exitmon/1.0"
	maxBodyBytes     = 8 << 20
)

var (
	// ErrHTTPStatus marks a book response with a non-2xx status.
	ErrHTTPStatus = errors.New("orderbook: unexpected http status")
	// ErrEmptyToken is returned when FetchBook is called without a token id.
	ErrEmptyToken = errors.New("orderbook: token id is required")
)

// Options parameterise the CLOB book client.
type Options struct {
	BookURL   string
	Timeout   time.Duration
	UserAgent string
}

// Client reads order books from the CLOB REST API.
type Client struct {
	opts    Options
	logger  zerolog.Logger
	client  *http.Client
	bookURL string
}

// NewClient constructs a book client.
func NewClient(opts Options, logger zerolog.Logger) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 6 * time.Second
	}

	bookURL := strings.TrimSpace(opts.BookURL)
	if bookURL == "" {
		bookURL = DefaultBookURL
	}

	return &Client{
		opts:    opts,
		logger:  logger.With().Str("component", "orderbook_client").Logger(),
		client:  &http.Client{Timeout: timeout},
		bookURL: bookURL,
	}
}

// FetchBook issues GET <book_url>?token_id=<tokenID>. Any transport, status or
// decoding failure is returned as an error and the book is nil; errors wrapping
// ErrUnexpectedShape mean the body parsed but its bid list did not.
func (c *Client) FetchBook(ctx context.Context, tokenID string) (*Book, error) {
	tokenID = strings.TrimSpace(tokenID)
	if tokenID == "" {
		return nil, ErrEmptyToken
	}

	endpoint, err := url.Parse(c.bookURL)
	if err != nil {
		return nil, fmt.Errorf("parse book url: %w", err)
	}
	query := endpoint.Query()
	query.Set("token_id", tokenID)
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create book request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if ua := strings.TrimSpace(c.opts.UserAgent); ua != "" {
		req.Header.Set("User-Agent", ua)
	} else {
		req.Header.Set("User-Agent", defaultUserAgent)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send book request: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read book response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, parseHTTPError(resp.StatusCode, payload)
	}

	book, err := DecodeBook(payload)
	if err != nil {
		return nil, fmt.Errorf("decode book for token %s: %w", tokenID, err)
	}

	c.logger.Debug().
		Str("token_id", tokenID).
		Int("bids", len(book.Bids)).
		Int("asks", len(book.Asks)).
		Msg("order book fetched")
	return book, nil
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func parseHTTPError(status int, payload []byte) error {
	var apiErr errorResponse
	if err := json.Unmarshal(payload, &apiErr); err == nil {
		if apiErr.Error != "" {
			return fmt.Errorf("%w (%d): %s", ErrHTTPStatus, status, apiErr.Error)
		}
		if apiErr.Message != "" {
			return fmt.Errorf("%w (%d): %s", ErrHTTPStatus, status, apiErr.Message)
		}
	}
	if text := strings.TrimSpace(string(payload)); text != "" {
		return fmt.Errorf("%w (%d): %s", ErrHTTPStatus, status, text)
	}
	return fmt.Errorf("%w (%d)", ErrHTTPStatus, status)
}

var _ Fetcher = (*Client)(nil)
