package server

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/loom-ui/loom/pkg/comp"
	"github.com/loom-ui/loom/pkg/dom"
	"github.com/loom-ui/loom/pkg/protocol"
)

// Session is one connected client: a WebSocket connection plus its own
// host tree with the root component mounted into it. All reconciliation
// for a session happens on its read loop goroutine; the engine itself is
// single-threaded by contract.
type Session struct {
	ID string

	server *Server
	conn   *websocket.Conn
	doc    *dom.Document
	scope  *comp.Scope

	writeMu sync.Mutex // Protects conn writes
	sendSeq uint64
	closed  bool

	logger *slog.Logger
}

// newSession creates a session for an upgraded connection.
func (s *Server) newSession(conn *websocket.Conn) *Session {
	id := newSessionID()
	return &Session{
		ID:     id,
		server: s,
		conn:   conn,
		doc:    dom.NewDocument(),
		logger: s.logger.With("session", id),
	}
}

// start mounts the root component and sends the initial tree as a mount
// journal anchored at the root node, so client-side node identities match
// the server's from the first frame on.
func (sess *Session) start() error {
	sess.scope = sess.server.root.MountRoot(sess.doc.Root(), sess.server.rootProps)

	return sess.writeFrame(&protocol.Frame{
		Type:      protocol.FrameInit,
		Root:      sess.doc.Root().ID(),
		Mutations: sess.doc.Flush(),
	})
}

// readLoop reads frames until the connection closes.
func (sess *Session) readLoop() {
	cfg := sess.server.cfg.Session
	sess.conn.SetReadLimit(cfg.MaxMessageSize)

	for {
		sess.conn.SetReadDeadline(time.Now().Add(cfg.ReadTimeout.Std()))

		_, msg, err := sess.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure,
				websocket.CloseNormalClosure) {
				sess.logger.Error("read error", "error", err)
			}
			return
		}

		frame, err := protocol.DecodeFrame(msg)
		if err != nil {
			sess.logger.Error("frame decode error", "error", err)
			continue
		}

		switch frame.Type {
		case protocol.FrameEvent:
			if frame.Event == nil {
				sess.logger.Warn("event frame without event payload")
				continue
			}
			if err := sess.Dispatch(frame.Event); err != nil {
				sess.logger.Error("dispatch failed", "error", err)
				return
			}

		case protocol.FramePing:
			sess.writeFrame(&protocol.Frame{Type: protocol.FramePong})

		default:
			sess.logger.Warn("unexpected frame type", "type", frame.Type.String())
		}
	}
}

// Dispatch routes one client event into the root component's mailbox and
// streams the resulting host mutations back.
//
// A panic during dispatch is an internal-consistency violation in the
// component tree (kind mismatch, callback before activation, host-tree
// divergence). It is not recoverable: the session is torn down and the
// panic surfaces as an error.
func (sess *Session) Dispatch(ev *protocol.Event) (err error) {
	ctx, span := sess.server.tracer.Start(sess.server.baseContext(), "loom.event",
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(
			attribute.String("loom.event_name", ev.Name),
			attribute.String("loom.event_target", ev.Target),
			attribute.String("loom.session_id", sess.ID),
		),
	)
	defer span.End()
	_ = ctx

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("session %s: dispatch panic: %v", sess.ID, r)
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
	}()

	start := time.Now()
	sess.scope.Send(ev)
	elapsed := time.Since(start).Seconds()

	muts := sess.doc.Flush()
	span.SetAttributes(attribute.Int("loom.mutation_count", len(muts)))

	if m := sess.server.metrics; m != nil {
		m.ObserveDispatch(ev.Name, elapsed)
		m.RecordMutations(len(muts))
	}

	if len(muts) == 0 {
		span.SetStatus(codes.Ok, "")
		return nil
	}

	sess.sendSeq++
	if err := sess.writeFrame(&protocol.Frame{
		Type:      protocol.FrameMutations,
		Seq:       sess.sendSeq,
		Mutations: muts,
	}); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	span.SetStatus(codes.Ok, "")
	return nil
}

// Document returns the session's host tree.
func (sess *Session) Document() *dom.Document {
	return sess.doc
}

// writeFrame encodes and sends one frame. A headless session has no
// transport and drops outgoing frames.
func (sess *Session) writeFrame(f *protocol.Frame) error {
	if sess.conn == nil {
		return nil
	}
	data, err := protocol.EncodeFrame(f)
	if err != nil {
		return err
	}

	sess.writeMu.Lock()
	defer sess.writeMu.Unlock()
	if sess.closed {
		return fmt.Errorf("session %s: connection closed", sess.ID)
	}
	sess.conn.SetWriteDeadline(time.Now().Add(sess.server.cfg.Session.WriteTimeout.Std()))
	return sess.conn.WriteMessage(websocket.TextMessage, data)
}

// Close tears down the connection.
func (sess *Session) Close() {
	sess.writeMu.Lock()
	defer sess.writeMu.Unlock()
	if sess.closed {
		return
	}
	sess.closed = true
	if sess.conn != nil {
		sess.conn.Close()
	}
}
