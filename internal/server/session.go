package server

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"rate_relay/internal/domain"
	"rate_relay/internal/infra"
)

// resultHeading precedes every rendered rate table.
const resultHeading = "<h3>Exchange rates</h3>\n"

// Announcement constructors. The relay's observable output is this closed
// set of message shapes plus the rendered table, nothing free-form.

func chatEcho(name, message string) string {
	return name + ": " + message
}

func directiveAck(name string) string {
	return "Server: executing exchange command from " + name
}

func fetchAnnounce(days int, currencies []string) string {
	return fmt.Sprintf("Server: getting rates from Privat Bank for current day and %d archive days for [%s]",
		days, strings.Join(currencies, " "))
}

func auditLine(name, message string, cmd domain.Command) string {
	return fmt.Sprintf("%s: %s; Request handled for current day and %d archive days and [%s]",
		name, message, cmd.Days, strings.Join(cmd.Currencies, " "))
}

// Relay is the per-message dispatch logic shared by all sessions: echo the
// line, classify it, and run the retrieval pipeline when it is a directive.
type Relay struct {
	hub     *Hub
	archive domain.ArchiveProvider
	audit   domain.AuditSink
	render  domain.Renderer

	maxDays  int
	base     []string
	extended []string
}

// NewRelay wires the dispatch logic. audit may be nil when no sink is
// configured; everything else is required.
func NewRelay(hub *Hub, archive domain.ArchiveProvider, audit domain.AuditSink, render domain.Renderer, maxDays int, base, extended []string) *Relay {
	return &Relay{
		hub:      hub,
		archive:  archive,
		audit:    audit,
		render:   render,
		maxDays:  maxDays,
		base:     base,
		extended: extended,
	}
}

// Dispatch handles one inbound line from a registered client. The line is
// always echoed to everyone first; a recognized directive then produces an
// acknowledgment, a fetch announcement, and finally the rendered table
// under its fixed heading. All broadcasts of one dispatch go out in the
// order issued here.
func (r *Relay) Dispatch(ctx context.Context, c *Client, line string) {
	infra.GlobalMetrics.RecordMessage()

	cmd := domain.ParseCommand(line, r.maxDays, r.base, r.extended)
	r.hub.Broadcast(chatEcho(c.Name(), line))
	if !cmd.Exchange {
		return
	}

	infra.GlobalMetrics.RecordDirective()
	slog.Debug("exchange directive",
		slog.String("from", c.Name()),
		slog.Int("days", cmd.Days),
		slog.Any("currencies", cmd.Currencies),
	)

	if r.audit != nil {
		if err := r.audit.Append(ctx, auditLine(c.Name(), line, cmd)); err != nil {
			// Non-fatal: a broken audit trail does not block the directive.
			slog.Warn("audit append failed", slog.Any("error", err))
		}
	}

	r.hub.Broadcast(directiveAck(c.Name()))
	r.hub.Broadcast(fetchAnnounce(cmd.Days, cmd.Currencies))

	archive, err := r.archive.Retrieve(ctx, cmd.Days, cmd.Currencies)
	if err != nil {
		slog.Warn("retrieval aborted", slog.Any("error", err))
		return
	}

	// An archive with every date skipped still renders; the empty table is
	// the agreed failure surface, not an error message.
	r.hub.Broadcast(resultHeading)
	r.hub.Broadcast(r.render(archive))
}
