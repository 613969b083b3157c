// Package live serves the search combobox over a websocket: the browser forwards input events and
// renders the snapshots it receives back.
package live

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/a11yref/a11yref/internal/catalog"
	"github.com/a11yref/a11yref/internal/navigate"
	"github.com/a11yref/a11yref/internal/session"
)

// Client message types.
const (
	TypeInput   = "input"
	TypeKey     = "key"
	TypeFocus   = "focus"
	TypeOutside = "outside"
	TypeSelect  = "select"
)

// Server message types.
const (
	TypeSnapshot = "snapshot"
	TypeNavigate = "navigate"
	TypeError    = "error"
)

const (
	defaultReadTimeout  = 60 * time.Second
	defaultWriteTimeout = 10 * time.Second
	defaultRate         = rate.Limit(30)
	defaultBurst        = 10
)

// ClientMessage is an input event sent by the browser.
type ClientMessage struct {
	Type  string `json:"type"`
	Query string `json:"query,omitempty"`
	Key   string `json:"key,omitempty"`
	Index *int   `json:"index,omitempty"`
}

// ServerMessage is a frame sent to the browser.
type ServerMessage struct {
	Type        string            `json:"type"`
	Snapshot    *session.Snapshot `json:"snapshot,omitempty"`
	Destination string            `json:"destination,omitempty"`
	Error       string            `json:"error,omitempty"`
}

// Option configures a Handler.
type Option func(*Handler)

// WithRateLimit sets the per-connection message rate.
func WithRateLimit(limit rate.Limit, burst int) Option {
	return func(h *Handler) {
		h.limit = limit
		h.burst = burst
	}
}

// WithReadTimeout sets how long a connection may stay silent before it is closed.
func WithReadTimeout(d time.Duration) Option {
	return func(h *Handler) {
		h.readTimeout = d
	}
}

// WithOriginPatterns sets the host patterns allowed to open a cross-origin connection.
func WithOriginPatterns(patterns ...string) Option {
	return func(h *Handler) {
		h.originPatterns = patterns
	}
}

// Handler accepts websocket connections and runs one search session per connection.
type Handler struct {
	entries        []catalog.Entry
	logger         *slog.Logger
	limit          rate.Limit
	burst          int
	readTimeout    time.Duration
	originPatterns []string
}

// NewHandler returns a Handler searching entries.
func NewHandler(entries []catalog.Entry, logger *slog.Logger, opts ...Option) *Handler {
	h := &Handler{
		entries:     entries,
		logger:      logger,
		limit:       defaultRate,
		burst:       defaultBurst,
		readTimeout: defaultReadTimeout,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// ServeHTTP upgrades the request and serves the connection until it closes.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns:  h.originPatterns,
		CompressionMode: websocket.CompressionDisabled,
	})
	if err != nil {
		h.logger.Warn("WebSocket upgrade failed",
			slog.String("remote_addr", r.RemoteAddr),
			slog.String("error", err.Error()))
		return
	}

	c := &connection{
		conn:    conn,
		logger:  h.logger.With(slog.String("conn_id", uuid.NewString())),
		limiter: rate.NewLimiter(h.limit, h.burst),
	}
	c.session = session.New(h.entries, navigate.Func(func(destination string) {
		c.pending = append(c.pending, destination)
	}))

	c.logger.Debug("Live session opened", slog.String("remote_addr", r.RemoteAddr))
	status, reason := c.serve(r.Context(), h.readTimeout)
	c.logger.Debug("Live session closed",
		slog.Int("status", int(status)),
		slog.String("reason", reason))

	if err := conn.Close(status, reason); err != nil && websocket.CloseStatus(err) == -1 {
		c.logger.Debug("Failed to close connection", slog.String("error", err.Error()))
	}
}

type connection struct {
	conn    *websocket.Conn
	logger  *slog.Logger
	limiter *rate.Limiter
	session *session.Session
	pending []string
}

func (c *connection) serve(ctx context.Context, readTimeout time.Duration) (websocket.StatusCode, string) {
	if err := c.writeSnapshot(ctx); err != nil {
		return websocket.StatusInternalError, "write failed"
	}

	for {
		readCtx, cancel := context.WithTimeout(ctx, readTimeout)
		_, data, err := c.conn.Read(readCtx)
		cancel()
		if err != nil {
			if status := websocket.CloseStatus(err); status != -1 {
				return status, ""
			}
			if errors.Is(err, context.DeadlineExceeded) {
				return websocket.StatusGoingAway, "idle timeout"
			}
			c.logger.Debug("WebSocket read error", slog.String("error", err.Error()))
			return websocket.StatusInternalError, "read failed"
		}

		if !c.limiter.Allow() {
			c.logger.Warn("WebSocket message rate limit exceeded")
			return websocket.StatusPolicyViolation, "rate limit exceeded"
		}

		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			if err := c.write(ctx, ServerMessage{Type: TypeError, Error: "invalid message: " + err.Error()}); err != nil {
				return websocket.StatusInternalError, "write failed"
			}
			continue
		}

		if err := c.apply(msg); err != nil {
			if err := c.write(ctx, ServerMessage{Type: TypeError, Error: err.Error()}); err != nil {
				return websocket.StatusInternalError, "write failed"
			}
			continue
		}

		if err := c.flush(ctx); err != nil {
			return websocket.StatusInternalError, "write failed"
		}
	}
}

func (c *connection) apply(msg ClientMessage) error {
	switch msg.Type {
	case TypeInput:
		c.session.SetQuery(msg.Query)
	case TypeKey:
		c.session.KeyDown(session.ParseKey(msg.Key))
	case TypeFocus:
		c.session.Focus()
	case TypeOutside:
		c.session.ClickOutside()
	case TypeSelect:
		if msg.Index == nil {
			return errors.New("select requires an index")
		}
		if !c.session.Select(*msg.Index) {
			return fmt.Errorf("no option at index %d", *msg.Index)
		}
	default:
		return fmt.Errorf("unknown message type %q", msg.Type)
	}
	return nil
}

// flush sends pending navigations followed by the current snapshot.
func (c *connection) flush(ctx context.Context) error {
	for _, destination := range c.pending {
		c.logger.Info("Navigating", slog.String("destination", destination))
		if err := c.write(ctx, ServerMessage{Type: TypeNavigate, Destination: destination}); err != nil {
			return err
		}
	}
	c.pending = c.pending[:0]
	return c.writeSnapshot(ctx)
}

func (c *connection) writeSnapshot(ctx context.Context) error {
	snap := c.session.Snapshot()
	return c.write(ctx, ServerMessage{Type: TypeSnapshot, Snapshot: &snap})
}

func (c *connection) write(ctx context.Context, msg ServerMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal %s frame: %w", msg.Type, err)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultWriteTimeout)
	defer cancel()
	if err := c.conn.Write(ctx, websocket.MessageText, data); err != nil {
		c.logger.Debug("WebSocket write error", slog.String("error", err.Error()))
		return err
	}
	return nil
}
