package render

import (
	"strings"
	"testing"

	"rate_relay/internal/domain"

	"github.com/shopspring/decimal"
)

func sampleArchive() domain.Archive {
	return domain.Archive{
		{
			Date: "10.03.2024",
			Rates: map[string]domain.RatePair{
				"USD": {Sale: decimal.NewFromFloat(39.1), Purchase: decimal.NewFromFloat(38.4)},
				"EUR": {Sale: decimal.NewFromFloat(42.5), Purchase: decimal.NewFromFloat(41.2)},
			},
		},
		{
			Date: "09.03.2024",
			Rates: map[string]domain.RatePair{
				"EUR": {Sale: decimal.NewFromFloat(42.3), Purchase: decimal.NewFromFloat(41.0)},
			},
		},
	}
}

func TestHTMLTable(t *testing.T) {
	out := HTMLTable(sampleArchive())

	t.Run("One Heading Per Date", func(t *testing.T) {
		for _, h := range []string{"<h3>10.03.2024:</h3>", "<h3>09.03.2024:</h3>"} {
			if !strings.Contains(out, h) {
				t.Errorf("missing heading %q", h)
			}
		}
	})

	t.Run("Dates In Archive Order", func(t *testing.T) {
		if strings.Index(out, "10.03.2024") > strings.Index(out, "09.03.2024") {
			t.Error("most recent date must render first")
		}
	})

	t.Run("Currencies Sorted", func(t *testing.T) {
		if strings.Index(out, "<td>EUR</td>") > strings.Index(out, "<td>USD</td>") {
			t.Error("EUR row must precede USD row")
		}
	})

	t.Run("Rates Present", func(t *testing.T) {
		if !strings.Contains(out, "<td>39.1</td>") || !strings.Contains(out, "<td>38.4</td>") {
			t.Error("USD sale/purchase rates missing from output")
		}
	})

	t.Run("Deterministic", func(t *testing.T) {
		if out != HTMLTable(sampleArchive()) {
			t.Error("same archive must render identically")
		}
	})
}

func TestHTMLTableEmptyArchive(t *testing.T) {
	if out := HTMLTable(nil); out != "" {
		t.Errorf("empty archive must render empty, got %q", out)
	}
}

func TestTextTable(t *testing.T) {
	out := TextTable(sampleArchive())

	if !strings.Contains(out, "10.03.2024:\n") {
		t.Error("missing date label")
	}
	if !strings.Contains(out, "Currency  Sale  Purchase") {
		t.Error("missing column header")
	}
	if !strings.Contains(out, "USD") || !strings.Contains(out, "39.10") {
		t.Error("missing fixed-width USD row")
	}
}
