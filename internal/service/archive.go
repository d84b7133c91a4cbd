package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"rate_relay/internal/domain"
	"rate_relay/internal/infra"
)

// ArchiveService drives the multi-day retrieval pipeline: it walks the date
// range for a directive and fetches each date through the rate source.
type ArchiveService struct {
	source      domain.RateSource
	concurrency int
	now         func() time.Time
}

// NewArchiveService creates the pipeline over the given rate source.
// Per-date fetches run concurrently up to the given limit.
func NewArchiveService(source domain.RateSource, concurrency int) *ArchiveService {
	if concurrency < 1 {
		concurrency = 1
	}
	return &ArchiveService{
		source:      source,
		concurrency: concurrency,
		now:         time.Now,
	}
}

// Retrieve fetches days+1 dates of rates for the given currencies, most
// recent first. Fetches fan out concurrently but the result order is fixed
// by date position, never by completion order. A failed or empty date is
// skipped, the rest of the range still goes through. The only error out of
// here is context cancellation.
func (s *ArchiveService) Retrieve(ctx context.Context, days int, currencies []string) (domain.Archive, error) {
	dates := domain.DateKeys(s.now(), days)
	results := make([]*domain.DayRates, len(dates))

	sem := make(chan struct{}, s.concurrency)
	var wg sync.WaitGroup

	for i, date := range dates {
		wg.Add(1)
		go func(idx int, date string) {
			defer wg.Done()
			select {
			case <-ctx.Done():
				return
			case sem <- struct{}{}: // Acquire
			}
			defer func() { <-sem }() // Release

			slog.Debug("fetching rates",
				slog.String("date", date),
				slog.Int("position", idx+1),
				slog.Int("total", len(dates)),
			)

			day, err := s.source.Fetch(ctx, date, currencies)
			switch {
			case err == nil:
				results[idx] = day
			case errors.Is(err, domain.ErrNoData):
				slog.Warn("no data for requested currencies",
					slog.String("date", date),
					slog.Any("currencies", currencies),
				)
			default:
				infra.GlobalMetrics.RecordFetchFailure()
				slog.Error("rate fetch failed, skipping date",
					slog.String("date", date),
					slog.Any("error", err),
				)
			}
		}(i, date)
	}

	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	archive := make(domain.Archive, 0, len(dates))
	for _, day := range results {
		if day != nil {
			archive = append(archive, day)
		}
	}
	return archive, nil
}
