package etherscan

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

var ErrUpstream error = errors.New("block explorer unavailable")

const noTransactionsFound = "No transactions found"

type Client struct {
	client  HTTPClient
	baseURL string
	apiKey  string
	timeout time.Duration
}

func NewClient(httpClient HTTPClient, baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		client:  httpClient,
		baseURL: baseURL,
		apiKey:  apiKey,
		timeout: timeout,
	}
}

// ListTransactions fetches the full transaction list for an address, newest
// first, as the explorer reports it. Transport failures, non-2xx responses
// and explorer-level error statuses all surface as ErrUpstream.
func (c *Client) ListTransactions(ctx context.Context, address string) ([]Transaction, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	query := url.Values{}
	query.Set("module", "account")
	query.Set("action", "txlist")
	query.Set("address", address)
	query.Set("startblock", "0")
	query.Set("endblock", "99999999")
	query.Set("sort", "desc")
	query.Set("apikey", c.apiKey)
	req.URL.RawQuery = query.Encode()

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrUpstream, resp.StatusCode)
	}

	var payload txListResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decode response: %s", ErrUpstream, err)
	}

	if payload.Status != "1" {
		// The explorer reports an empty history as an error status.
		if payload.Message == noTransactionsFound {
			return []Transaction{}, nil
		}
		return nil, fmt.Errorf("%w: api status %q (%s)", ErrUpstream, payload.Status, payload.Message)
	}

	transactions := make([]Transaction, 0, len(payload.Result))
	for _, row := range payload.Result {
		transactions = append(transactions, rowToTransaction(row))
	}

	return transactions, nil
}

func rowToTransaction(row txListRow) Transaction {
	method := row.MethodID
	if row.FunctionName != "" {
		method = row.FunctionName
	}

	var ts time.Time
	if unix, err := strconv.ParseInt(row.TimeStamp, 10, 64); err == nil {
		ts = time.Unix(unix, 0).UTC()
	}

	return Transaction{
		Hash:      row.Hash,
		From:      row.From,
		To:        row.To,
		Value:     row.Value,
		Method:    method,
		Timestamp: ts,
		GasUsed:   row.GasUsed,
		GasPrice:  row.GasPrice,
	}
}
