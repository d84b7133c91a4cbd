package privat

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"rate_relay/internal/domain"

	"github.com/shopspring/decimal"
)

const archiveBody = `{
	"date": "10.03.2024",
	"bank": "PB",
	"baseCurrency": 980,
	"exchangeRate": [
		{"baseCurrency": "UAH", "currency": "EUR", "saleRate": 42.5, "purchaseRate": 41.2},
		{"baseCurrency": "UAH", "currency": "USD", "saleRate": 39.1, "purchaseRate": 38.4},
		{"baseCurrency": "UAH", "currency": "PLN", "saleRate": 9.8, "purchaseRate": 9.4}
	]
}`

func newTestClient(serverURL string) *Client {
	return NewClient(serverURL+"?date=", "test-agent", 2*time.Second)
}

func TestClientFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(archiveBody))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	t.Run("Filters To Requested Currencies", func(t *testing.T) {
		day, err := client.Fetch(context.Background(), "10.03.2024", []string{"EUR", "USD"})
		if err != nil {
			t.Fatalf("Fetch failed: %v", err)
		}
		if day.Date != "10.03.2024" {
			t.Errorf("expected date 10.03.2024, got %s", day.Date)
		}
		if len(day.Rates) != 2 {
			t.Fatalf("expected 2 currencies, got %d", len(day.Rates))
		}
		if _, ok := day.Rates["PLN"]; ok {
			t.Error("PLN was not requested and must be filtered out")
		}
		if !day.Rates["EUR"].Sale.Equal(decimal.NewFromFloat(42.5)) {
			t.Errorf("unexpected EUR sale rate: %s", day.Rates["EUR"].Sale)
		}
	})

	t.Run("No Requested Currency Is ErrNoData", func(t *testing.T) {
		_, err := client.Fetch(context.Background(), "10.03.2024", []string{"JPY"})
		if !errors.Is(err, domain.ErrNoData) {
			t.Errorf("expected ErrNoData, got %v", err)
		}
	})
}

func TestClientFetchStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Fetch(context.Background(), "10.03.2024", []string{"EUR"})

	var fe *domain.FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("expected FetchError, got %v", err)
	}
	if fe.Status != http.StatusBadGateway {
		t.Errorf("expected status 502, got %d", fe.Status)
	}
}

func TestClientFetchMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Fetch(context.Background(), "10.03.2024", []string{"EUR"})
	if !domain.IsFetchError(err) {
		t.Errorf("expected FetchError for malformed body, got %v", err)
	}
}

func TestClientFetchConnectionRefused(t *testing.T) {
	// Server closed before the request is made.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := newTestClient(url).Fetch(context.Background(), "10.03.2024", []string{"EUR"})
	if !domain.IsFetchError(err) {
		t.Errorf("expected FetchError for refused connection, got %v", err)
	}
}
