package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/matzehuels/bricklayer/pkg/plan"
	"github.com/matzehuels/bricklayer/pkg/wall"

	apperrors "github.com/matzehuels/bricklayer/pkg/errors"
)

// maxStreamDelay caps the pause a client may request between strides.
const maxStreamDelay = time.Second

// Stream message types.
const (
	MessageLayout = "layout"
	MessageStride = "stride"
	MessageDone   = "done"
	MessageError  = "error"
)

// Envelope wraps every websocket message.
type Envelope struct {
	Type    string          `json:"type"`
	RunID   string          `json:"run_id"`
	Payload json.RawMessage `json:"payload"`
}

// StridePayload lists the bricks placed in one stride.
type StridePayload struct {
	Stride int            `json:"stride"`
	Bricks []wall.BrickID `json:"bricks"`
}

// DonePayload ends a stream.
type DonePayload struct {
	Status  plan.Status `json:"status"`
	Placed  int         `json:"placed"`
	Strides int         `json:"strides"`
}

// handleStream replays a plan over a websocket:
// GET /stream/{strategy}?pattern=&width=&height=&seed=&delay=
//
// The first message carries the layout, then one message per stride (one
// per brick for unstrided plans), then a done message. Failures are sent as
// an error message carrying the usual {code, message} body.
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	opts, err := s.options(r)
	if err != nil {
		writeError(w, err)
		return
	}
	opts.Strategy = chi.URLParam(r, "strategy")
	if err := opts.ValidateForPlan(); err != nil {
		writeError(w, err)
		return
	}
	var delay time.Duration
	if v := r.URL.Query().Get("delay"); v != "" {
		if delay, err = time.ParseDuration(v); err != nil || delay < 0 {
			writeError(w, apperrors.New(apperrors.ErrCodeInvalidInput, "delay must be a non-negative duration (got %q)", v))
			return
		}
		delay = min(delay, maxStreamDelay)
	}

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{OriginPatterns: s.origins})
	if err != nil {
		s.logger.Warn("websocket accept", "err", err)
		return
	}
	defer conn.Close(websocket.StatusNormalClosure, "")

	ctx := conn.CloseRead(r.Context())
	runID := uuid.NewString()
	send := func(typ string, payload any) error {
		data, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		msg, err := json.Marshal(Envelope{Type: typ, RunID: runID, Payload: data})
		if err != nil {
			return err
		}
		wctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		return conn.Write(wctx, websocket.MessageText, msg)
	}

	pctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	l, err := s.runner.Generate(pctx, &opts)
	if err != nil {
		_ = send(MessageError, errorBody(err))
		return
	}
	if err := send(MessageLayout, l); err != nil {
		return
	}

	p, err := s.runner.Plan(pctx, l, opts)
	if err != nil {
		_ = send(MessageError, errorBody(err))
		return
	}

	for i, bricks := range p.ByStride() {
		if err := send(MessageStride, StridePayload{Stride: i, Bricks: bricks}); err != nil {
			s.logger.Debug("stream closed", "run_id", runID, "err", err)
			return
		}
		if delay > 0 {
			select {
			case <-ctx.Done():
				return
			case <-time.After(delay):
			}
		}
	}
	_ = send(MessageDone, DonePayload{Status: p.Status, Placed: len(p.Placements), Strides: p.Steps()})
}
