package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"rate_relay/internal/domain"
	"rate_relay/internal/infra"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Server exposes the websocket endpoint plus a small HTTP surface for
// health and the audit trail.
type Server struct {
	cfg    *infra.Config
	hub    *Hub
	relay  *Relay
	audit  domain.AuditSink
	engine *gin.Engine
	http   *http.Server

	// baseCtx scopes session work to the server lifetime, not the upgrade
	// request: a disconnecting client must not cancel a pipeline it
	// triggered for everyone else.
	baseCtx context.Context
}

// NewServer builds the gin engine and routes.
func NewServer(cfg *infra.Config, hub *Hub, relay *Relay, audit domain.AuditSink) *Server {
	if cfg.Logging.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		cfg:     cfg,
		hub:     hub,
		relay:   relay,
		audit:   audit,
		baseCtx: context.Background(),
	}

	engine := gin.New()
	engine.Use(gin.Recovery())

	engine.GET("/ws", s.handleWebSocket)
	engine.GET("/api/health", s.getHealth)
	engine.GET("/api/audit", s.getAudit)

	s.engine = engine
	return s
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	s.http = &http.Server{
		Addr:    s.cfg.Addr(),
		Handler: s.engine,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", slog.String("addr", s.cfg.Addr()))
		errCh <- s.http.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) handleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		slog.Warn("websocket upgrade failed", slog.Any("error", err))
		return
	}

	client := newClient(s.relay, conn, c.ClientIP())
	s.hub.Register(client)

	go client.writePump()
	go client.readPump(s.baseCtx)
}

func (s *Server) getHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"clients": s.hub.Names(),
		"metrics": infra.GlobalMetrics.Snapshot(),
	})
}

func (s *Server) getAudit(c *gin.Context) {
	if s.audit == nil {
		c.JSON(http.StatusOK, []domain.AuditEntry{})
		return
	}
	entries, err := s.audit.Recent(c.Request.Context(), 50)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "audit lookup failed"})
		return
	}
	c.JSON(http.StatusOK, entries)
}
