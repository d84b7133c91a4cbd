package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// RatePair holds the bank's sale and purchase quotes for one currency.
type RatePair struct {
	Sale     decimal.Decimal `json:"sale"`
	Purchase decimal.Decimal `json:"purchase"`
}

// DayRates is the filtered rate set for a single archive date.
type DayRates struct {
	Date  string              `json:"date"`
	Rates map[string]RatePair `json:"rates"`
}

// Currencies returns the currency codes of the record in sorted order.
// Map iteration order is not stable, rendering needs a fixed one.
func (d *DayRates) Currencies() []string {
	codes := make([]string, 0, len(d.Rates))
	for code := range d.Rates {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Archive is the ordered outcome of one exchange directive: one entry per
// date that yielded data, most recent first. Dates that failed or had no
// data for the requested currencies are simply absent.
type Archive []*DayRates
