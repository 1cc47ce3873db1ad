package web

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fern-ui/fern/pkg/protocol"
	"github.com/fern-ui/fern/pkg/vdom"
)

// testComponent is a minimal live component: a counter driven by one
// button, with a deterministic patch stream.
func testComponent(vdom.Props) *vdom.VNode {
	n, set := vdom.UseState(0)
	return vdom.Div(
		vdom.Span(vdom.Textf("%d", n)),
		vdom.Button(vdom.OnClick(func() {
			set.Update(func(v int) int { return v + 1 })
		}), "+"),
	)
}

func newTestServer(t *testing.T, component vdom.ComponentFunc) *httptest.Server {
	t.Helper()
	// Fresh registry per test; promauto panics on duplicate registration.
	s := NewServer(component, WithMetricsConfig(MetricsConfig{
		Registry: prometheus.NewRegistry(),
	}))
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestIndexServesShell(t *testing.T) {
	ts := newTestServer(t, testComponent)

	code, body := get(t, ts.URL+"/")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, `<div id="app">`)
	assert.Contains(t, body, `<script src="/app.js">`)
	assert.Contains(t, body, "<!DOCTYPE html>")
}

func TestScriptServed(t *testing.T) {
	ts := newTestServer(t, testComponent)

	code, body := get(t, ts.URL+"/app.js")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "WebSocket")
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t, testComponent)

	code, body := get(t, ts.URL+"/healthz")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body)
}

func TestMetricsEndpoint(t *testing.T) {
	ts := newTestServer(t, testComponent)

	code, body := get(t, ts.URL+"/metrics")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "fern_sessions_total")
}

func dialSession(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn) protocol.Frame {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	f, err := protocol.Decode(data)
	require.NoError(t, err)
	return f
}

func sendEvent(t *testing.T, conn *websocket.Conn, e protocol.Event) {
	t.Helper()
	data, err := protocol.Encode(protocol.EventFrame(e))
	require.NoError(t, err)
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, data))
}

func TestSessionLifecycle(t *testing.T) {
	ts := newTestServer(t, testComponent)
	conn := dialSession(t, ts)

	hello := readFrame(t, conn)
	require.Equal(t, protocol.FrameHello, hello.Kind)
	require.NotEmpty(t, hello.Hello.RootID)
	assert.Equal(t, protocol.Version, hello.Hello.Version)

	initial := readFrame(t, conn)
	require.Equal(t, protocol.FramePatch, initial.Kind)

	var buttonID, countTextID string
	sawRootInsert := false
	for _, p := range initial.Patches {
		switch {
		case p.Op == "create-element" && p.Tag == "button":
			buttonID = p.NodeID
		case p.Op == "create-text" && p.Text == "0":
			countTextID = p.NodeID
		case p.Op == "insert" && p.ParentID == hello.Hello.RootID:
			sawRootInsert = true
		}
	}
	require.NotEmpty(t, buttonID, "no button in initial patches: %+v", initial.Patches)
	require.NotEmpty(t, countTextID, "no counter text in initial patches")
	assert.True(t, sawRootInsert, "tree never attached to the session root")

	// Click the button; the server re-renders and patches the text node.
	sendEvent(t, conn, protocol.Event{NodeID: buttonID, Type: "click"})

	patch := readFrame(t, conn)
	require.Equal(t, protocol.FramePatch, patch.Kind)
	require.Len(t, patch.Patches, 1)
	assert.Equal(t, "set-text", patch.Patches[0].Op)
	assert.Equal(t, countTextID, patch.Patches[0].NodeID)
	assert.Equal(t, "1", patch.Patches[0].Text)
}

func TestSessionUnmountsOnDisconnect(t *testing.T) {
	cleaned := make(chan struct{})
	component := func(vdom.Props) *vdom.VNode {
		vdom.UseEffect(func() vdom.Cleanup {
			return func() { close(cleaned) }
		}, vdom.Deps())
		return vdom.Div("live")
	}

	ts := newTestServer(t, component)
	conn := dialSession(t, ts)

	readFrame(t, conn) // hello
	readFrame(t, conn) // initial patches

	// Dropping the connection must tear the tree down and run effect
	// cleanups, exactly as an explicit Unmount would.
	conn.Close()

	select {
	case <-cleaned:
	case <-time.After(5 * time.Second):
		t.Fatal("effect cleanup did not run after disconnect")
	}
}

func TestSessionRejectsBadEvent(t *testing.T) {
	ts := newTestServer(t, testComponent)
	conn := dialSession(t, ts)

	readFrame(t, conn) // hello
	readFrame(t, conn) // initial patches

	sendEvent(t, conn, protocol.Event{NodeID: "n2", Type: "eval"})

	f := readFrame(t, conn)
	require.Equal(t, protocol.FrameError, f.Kind)
	assert.Equal(t, "bad_event", f.Error.Code)
}

func TestSessionIgnoresStaleNode(t *testing.T) {
	ts := newTestServer(t, testComponent)
	conn := dialSession(t, ts)

	readFrame(t, conn) // hello
	initial := readFrame(t, conn)

	var buttonID string
	for _, p := range initial.Patches {
		if p.Op == "create-element" && p.Tag == "button" {
			buttonID = p.NodeID
		}
	}
	require.NotEmpty(t, buttonID)

	// Unknown node: dropped without a reply. The next valid event still
	// works, proving the session survived.
	sendEvent(t, conn, protocol.Event{NodeID: "n999", Type: "click"})
	sendEvent(t, conn, protocol.Event{NodeID: buttonID, Type: "click"})

	f := readFrame(t, conn)
	assert.Equal(t, protocol.FramePatch, f.Kind)
}
