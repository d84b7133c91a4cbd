// Package privat fetches daily exchange-rate archives from the PrivatBank
// public API (https://api.privatbank.ua/#p24/exchangeArchive).
package privat

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"rate_relay/internal/domain"

	"github.com/shopspring/decimal"
)

// archiveResponse represents the bank's per-date archive payload.
type archiveResponse struct {
	Date         string `json:"date"`
	Bank         string `json:"bank"`
	BaseCurrency int    `json:"baseCurrency"`
	ExchangeRate []struct {
		BaseCurrency string  `json:"baseCurrency"`
		Currency     string  `json:"currency"`
		SaleRate     float64 `json:"saleRate"`
		PurchaseRate float64 `json:"purchaseRate"`
	} `json:"exchangeRate"`
}

// Client issues single-date archive requests. One attempt per date, no
// retry: a failed date is the pipeline's problem, not the client's.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

// NewClient creates a rate client for the given archive base URL. The date
// key is appended verbatim to the URL on each request.
func NewClient(baseURL, userAgent string, timeout time.Duration) *Client {
	return &Client{
		baseURL:   baseURL,
		userAgent: userAgent,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Fetch retrieves the rates for one date, filtered to the requested
// currencies. Returns domain.ErrNoData when the response parsed but held
// none of them, or a *domain.FetchError on any transport, status, or
// decode failure.
func (c *Client) Fetch(ctx context.Context, date string, currencies []string) (*domain.DayRates, error) {
	url := c.baseURL + date

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, domain.NewFetchError(url, err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domain.NewFetchError(url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, domain.NewStatusError(url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.NewFetchError(url, err)
	}

	var payload archiveResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, domain.NewFetchError(url, err)
	}

	wanted := make(map[string]bool, len(currencies))
	for _, code := range currencies {
		wanted[code] = true
	}

	rates := make(map[string]domain.RatePair)
	for _, entry := range payload.ExchangeRate {
		if !wanted[entry.Currency] {
			continue
		}
		rates[entry.Currency] = domain.RatePair{
			Sale:     decimal.NewFromFloat(entry.SaleRate),
			Purchase: decimal.NewFromFloat(entry.PurchaseRate),
		}
	}

	if len(rates) == 0 {
		return nil, domain.ErrNoData
	}

	return &domain.DayRates{Date: payload.Date, Rates: rates}, nil
}
