package web

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/fern-ui/fern/pkg/host/memdom"
	"github.com/fern-ui/fern/pkg/protocol"
	"github.com/fern-ui/fern/pkg/vdom"
)

const (
	// writeWait bounds one frame write.
	writeWait = 10 * time.Second

	// pongWait is how long a connection may stay silent.
	pongWait = 60 * time.Second

	// pingPeriod must be shorter than pongWait.
	pingPeriod = (pongWait * 9) / 10
)

// Session is one live connection: a server-side document, a mounted
// component tree, and the WebSocket mirroring mutations to the browser.
//
// All rendering happens on the session's read loop goroutine; the
// document, root, and tree are never touched from anywhere else.
type Session struct {
	id        string
	conn      *websocket.Conn
	component vdom.ComponentFunc

	doc       *memdom.Document
	container *memdom.Node
	root      *vdom.Root

	log     *slog.Logger
	metrics *metrics
	tracer  trace.Tracer

	// writeMu serializes frame writes with keepalive pings.
	writeMu sync.Mutex

	// pending collects patches between flushes, filled by the document
	// observer as the reconciler mutates the tree.
	pending []protocol.Patch
}

// NewSession builds a session around an upgraded connection. Run starts it.
func NewSession(id string, conn *websocket.Conn, component vdom.ComponentFunc, log *slog.Logger, m *metrics, tracer trace.Tracer) *Session {
	doc := memdom.NewDocument()
	container := doc.CreateElement("div").(*memdom.Node)

	s := &Session{
		id:        id,
		conn:      conn,
		component: component,
		doc:       doc,
		container: container,
		log:       log.With("session", id),
		metrics:   m,
		tracer:    tracer,
	}
	doc.Observe(func(mu memdom.Mutation) {
		s.pending = append(s.pending, protocol.FromMutation(mu))
	})
	s.root = vdom.NewRoot(container, vdom.WithLogger(s.log))
	return s
}

// Run drives the session until the connection closes or ctx is canceled:
// hello, initial render streamed as patches, then the event loop. The
// client builds its DOM entirely from the patch stream, so there is no
// separate hydration step.
func (s *Session) Run(ctx context.Context) error {
	s.metrics.sessionsTotal.Inc()
	s.metrics.sessionsActive.Inc()
	defer s.metrics.sessionsActive.Dec()
	defer s.conn.Close()

	stop := context.AfterFunc(ctx, func() {
		s.conn.Close()
	})
	defer stop()

	// Tear the tree down when the connection ends so effect cleanups run.
	// The observer is dropped first: the browser is gone, nobody needs the
	// unmount patches.
	defer func() {
		s.doc.Observe(nil)
		s.root.Unmount()
	}()

	go s.keepalive(ctx)

	if err := s.writeFrame(protocol.HelloFrame(s.id, s.container.ID())); err != nil {
		return err
	}

	s.root.Render(vdom.Component(s.component, nil))
	if err := s.flushPatches(); err != nil {
		return err
	}
	s.log.Info("session started")

	s.conn.SetReadLimit(protocol.MaxFrameSize)
	s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) && ctx.Err() == nil {
				s.log.Warn("session read failed", "error", err)
				return err
			}
			s.log.Info("session closed")
			return nil
		}

		frame, err := protocol.Decode(data)
		if err != nil {
			s.metrics.frameErrors.WithLabelValues("decode").Inc()
			s.log.Warn("bad frame", "error", err)
			s.writeFrame(protocol.ErrorFrame("bad_frame", err.Error()))
			continue
		}
		if frame.Kind != protocol.FrameEvent {
			s.metrics.frameErrors.WithLabelValues("unexpected_kind").Inc()
			continue
		}

		if err := s.handleEvent(ctx, *frame.Event); err != nil {
			return err
		}
	}
}

// handleEvent validates and dispatches one client event, then streams the
// resulting patches.
func (s *Session) handleEvent(ctx context.Context, e protocol.Event) error {
	_, span := s.tracer.Start(ctx, "fern.event", trace.WithAttributes(
		attribute.String("event.type", e.Type),
		attribute.String("event.node", e.NodeID),
		attribute.String("session.id", s.id),
	))
	defer span.End()
	start := time.Now()

	if err := e.Validate(); err != nil {
		span.SetStatus(codes.Error, err.Error())
		s.metrics.eventsTotal.WithLabelValues(e.Type, "rejected").Inc()
		s.log.Warn("event rejected", "type", e.Type, "error", err)
		return s.writeFrame(protocol.ErrorFrame("bad_event", err.Error()))
	}

	node := s.doc.ByID(e.NodeID)
	if node == nil {
		// The node was removed by a render the client had not seen yet.
		s.metrics.eventsTotal.WithLabelValues(e.Type, "stale").Inc()
		span.SetAttributes(attribute.Bool("event.stale", true))
		return nil
	}

	node.Dispatch(strings.ToLower(e.Type), e.Value)

	s.metrics.eventsTotal.WithLabelValues(e.Type, "ok").Inc()
	s.metrics.eventDuration.WithLabelValues(e.Type).Observe(time.Since(start).Seconds())
	return s.flushPatches()
}

// flushPatches sends buffered patches as one frame. No-op when nothing
// changed.
func (s *Session) flushPatches() error {
	if len(s.pending) == 0 {
		return nil
	}
	patches := s.pending
	s.pending = nil
	s.metrics.patchesSent.Add(float64(len(patches)))
	return s.writeFrame(protocol.PatchFrame(patches))
}

func (s *Session) writeFrame(f protocol.Frame) error {
	data, err := protocol.Encode(f)
	if err != nil {
		return err
	}
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return s.conn.WriteMessage(websocket.TextMessage, data)
}

func (s *Session) keepalive(ctx context.Context) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.writeMu.Lock()
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			err := s.conn.WriteMessage(websocket.PingMessage, nil)
			s.writeMu.Unlock()
			if err != nil {
				return
			}
		}
	}
}
