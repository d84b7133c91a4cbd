package domain

import "context"

// RateSource fetches the filtered rates for a single archive date.
// Returns ErrNoData when the response held none of the requested
// currencies, or a *FetchError on transport/status/decode failure.
type RateSource interface {
	Fetch(ctx context.Context, date string, currencies []string) (*DayRates, error)
}

// ArchiveProvider runs the multi-day retrieval pipeline.
type ArchiveProvider interface {
	Retrieve(ctx context.Context, days int, currencies []string) (Archive, error)
}

// AuditSink records one line per executed directive. Sink failures are
// non-fatal to the session that triggered them.
type AuditSink interface {
	Append(ctx context.Context, description string) error
	Recent(ctx context.Context, limit int) ([]AuditEntry, error)
}

// Renderer turns an archive into the text broadcast to clients.
type Renderer func(Archive) string
