package live

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/require"

	a11yref "github.com/a11yref/a11yref"
	"github.com/a11yref/a11yref/internal/catalog"
	"github.com/a11yref/a11yref/internal/session"
)

func newTestServer(t *testing.T, opts ...Option) *httptest.Server {
	t.Helper()

	c, err := catalog.LoadJSON(a11yref.CatalogJSON)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := httptest.NewServer(NewHandler(c.Entries(), logger, opts...))
	t.Cleanup(srv.Close)
	return srv
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, "ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.CloseNow() })
	return conn
}

func send(t *testing.T, conn *websocket.Conn, msg ClientMessage) {
	t.Helper()

	data, err := json.Marshal(msg)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, conn.Write(ctx, websocket.MessageText, data))
}

func receive(t *testing.T, conn *websocket.Conn) ServerMessage {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, data, err := conn.Read(ctx)
	require.NoError(t, err)

	var msg ServerMessage
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

func receiveSnapshot(t *testing.T, conn *websocket.Conn) session.Snapshot {
	t.Helper()

	msg := receive(t, conn)
	require.Equal(t, TypeSnapshot, msg.Type)
	require.NotNil(t, msg.Snapshot)
	return *msg.Snapshot
}

func index(i int) *int {
	return &i
}

func TestInitialSnapshotIsIdle(t *testing.T) {
	t.Parallel()

	conn := dial(t, newTestServer(t))
	snap := receiveSnapshot(t, conn)
	require.Equal(t, session.StateIdle, snap.State)
	require.Equal(t, -1, snap.FocusedIndex)
	require.False(t, snap.Open)
}

func TestTypeNavigateAndEnter(t *testing.T) {
	t.Parallel()

	conn := dial(t, newTestServer(t))
	receiveSnapshot(t, conn)

	send(t, conn, ClientMessage{Type: TypeInput, Query: "form"})
	snap := receiveSnapshot(t, conn)
	require.Equal(t, session.StateOpen, snap.State)
	require.Equal(t, 6, snap.Total)
	require.Equal(t, "forms", snap.Groups.Chapters[0].ID)

	for i := 0; i < 3; i++ {
		send(t, conn, ClientMessage{Type: TypeKey, Key: "ArrowDown"})
		snap = receiveSnapshot(t, conn)
	}
	require.Equal(t, 2, snap.FocusedIndex)
	require.Equal(t, "result-2", snap.ActiveDescendant)

	send(t, conn, ClientMessage{Type: TypeKey, Key: "Enter"})
	nav := receive(t, conn)
	require.Equal(t, TypeNavigate, nav.Type)
	require.Equal(t, "/section/forms#3.1", nav.Destination)

	snap = receiveSnapshot(t, conn)
	require.Equal(t, session.StateIdle, snap.State)
	require.Empty(t, snap.Query)
}

func TestSelectAndOutside(t *testing.T) {
	t.Parallel()

	conn := dial(t, newTestServer(t))
	receiveSnapshot(t, conn)

	send(t, conn, ClientMessage{Type: TypeInput, Query: "3.2"})
	receiveSnapshot(t, conn)

	send(t, conn, ClientMessage{Type: TypeOutside})
	snap := receiveSnapshot(t, conn)
	require.False(t, snap.Open)
	require.Equal(t, "3.2", snap.Query)

	send(t, conn, ClientMessage{Type: TypeFocus})
	snap = receiveSnapshot(t, conn)
	require.True(t, snap.Open)

	send(t, conn, ClientMessage{Type: TypeSelect, Index: index(0)})
	nav := receive(t, conn)
	require.Equal(t, "/section/forms#3.2", nav.Destination)
	receiveSnapshot(t, conn)
}

func TestInvalidMessagesReportErrors(t *testing.T) {
	t.Parallel()

	conn := dial(t, newTestServer(t))
	receiveSnapshot(t, conn)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, conn.Write(ctx, websocket.MessageText, []byte("{not json")))
	msg := receive(t, conn)
	require.Equal(t, TypeError, msg.Type)
	require.Contains(t, msg.Error, "invalid message")

	send(t, conn, ClientMessage{Type: "hover"})
	msg = receive(t, conn)
	require.Equal(t, TypeError, msg.Type)
	require.Contains(t, msg.Error, `unknown message type "hover"`)

	send(t, conn, ClientMessage{Type: TypeSelect, Index: index(4)})
	msg = receive(t, conn)
	require.Equal(t, TypeError, msg.Type)

	send(t, conn, ClientMessage{Type: TypeInput, Query: "tables"})
	snap := receiveSnapshot(t, conn)
	require.Equal(t, "tables", snap.Query)
}

func TestSelectWithoutIndexIsRejected(t *testing.T) {
	t.Parallel()

	conn := dial(t, newTestServer(t))
	receiveSnapshot(t, conn)

	send(t, conn, ClientMessage{Type: TypeInput, Query: "3.2"})
	snap := receiveSnapshot(t, conn)
	require.True(t, snap.Open)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, conn.Write(ctx, websocket.MessageText, []byte(`{"type":"select"}`)))
	msg := receive(t, conn)
	require.Equal(t, TypeError, msg.Type)
	require.Contains(t, msg.Error, "index")

	send(t, conn, ClientMessage{Type: TypeFocus})
	msg = receive(t, conn)
	require.Equal(t, TypeSnapshot, msg.Type)
	require.Equal(t, "3.2", msg.Snapshot.Query)
	require.True(t, msg.Snapshot.Open)
}

func TestRateLimitClosesConnection(t *testing.T) {
	t.Parallel()

	conn := dial(t, newTestServer(t, WithRateLimit(0, 1)))
	receiveSnapshot(t, conn)

	send(t, conn, ClientMessage{Type: TypeInput, Query: "form"})
	receiveSnapshot(t, conn)

	send(t, conn, ClientMessage{Type: TypeInput, Query: "forms"})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, _, err := conn.Read(ctx)
	require.Error(t, err)
	require.Equal(t, websocket.StatusPolicyViolation, websocket.CloseStatus(err))
}
