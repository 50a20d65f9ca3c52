package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/websocket"

	bio "github.com/matzehuels/bricklayer/pkg/io"
	"github.com/matzehuels/bricklayer/pkg/observability"
	"github.com/matzehuels/bricklayer/pkg/pipeline"
	"github.com/matzehuels/bricklayer/pkg/plan"
	"github.com/matzehuels/bricklayer/pkg/wall"
	"github.com/matzehuels/bricklayer/pkg/wall/bond"

	apperrors "github.com/matzehuels/bricklayer/pkg/errors"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	runner := pipeline.NewRunner(log.NewWithOptions(io.Discard, log.Options{}))
	srv := httptest.NewServer(New(runner, pipeline.Options{}, WithTimeout(10*time.Second)))
	t.Cleanup(srv.Close)
	return srv
}

func getJSON(t *testing.T, url string, v any) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if v != nil {
		if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
			t.Fatalf("decode %s: %v", url, err)
		}
	}
	return resp
}

func TestListings(t *testing.T) {
	srv := newTestServer(t)

	var health map[string]string
	if resp := getJSON(t, srv.URL+"/healthz", &health); resp.StatusCode != http.StatusOK || health["status"] != "ok" {
		t.Errorf("healthz = %d %v", resp.StatusCode, health)
	}

	var patterns map[string][]string
	getJSON(t, srv.URL+"/patterns", &patterns)
	if len(patterns["patterns"]) != len(bond.Patterns()) {
		t.Errorf("patterns = %v", patterns)
	}

	var strategies map[string][]string
	getJSON(t, srv.URL+"/strategies", &strategies)
	if strings.Join(strategies["strategies"], ",") != "naive,sweep,greedy" {
		t.Errorf("strategies = %v", strategies)
	}
}

func TestLayout(t *testing.T) {
	srv := newTestServer(t)

	var l wall.Layout
	resp := getJSON(t, srv.URL+"/layouts/english?width=2300&height=2000", &l)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if l.Pattern != "english-cross" || l.TotalBricks != 528 {
		t.Errorf("layout = %s with %d bricks, want english-cross with 528", l.Pattern, l.TotalBricks)
	}
	if err := l.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestWildLayoutReportsSeed(t *testing.T) {
	srv := newTestServer(t)

	var first, second wall.Layout
	resp := getJSON(t, srv.URL+"/layouts/wild?width=1200&height=600&seed=5", &first)
	if got := resp.Header.Get(seedHeader); got != "5" {
		t.Errorf("%s = %q, want 5", seedHeader, got)
	}
	getJSON(t, srv.URL+"/layouts/wild?width=1200&height=600&seed=5", &second)
	if first.TotalBricks != second.TotalBricks || first.Courses[1].Bricks[1].X != second.Courses[1].Bricks[1].X {
		t.Error("same seed should give the same wall")
	}

	resp = getJSON(t, srv.URL+"/layouts/wild?width=1200&height=600", nil)
	if resp.Header.Get(seedHeader) == "0" || resp.Header.Get(seedHeader) == "" {
		t.Errorf("random seed not reported: %q", resp.Header.Get(seedHeader))
	}
}

func TestErrors(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name   string
		path   string
		status int
		code   apperrors.Code
	}{
		{"unknown pattern", "/layouts/herringbone", http.StatusBadRequest, apperrors.ErrCodeInvalidPattern},
		{"bad width", "/layouts/flemish?width=wide", http.StatusBadRequest, apperrors.ErrCodeInvalidDimensions},
		{"negative width", "/layouts/flemish?width=-5", http.StatusBadRequest, apperrors.ErrCodeInvalidDimensions},
		{"bad seed", "/layouts/wild?seed=-1", http.StatusBadRequest, apperrors.ErrCodeInvalidInput},
		{"unknown strategy", "/plans/random", http.StatusBadRequest, apperrors.ErrCodeInvalidStrategy},
		{"no route", "/bricks", http.StatusNotFound, apperrors.ErrCodeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body errorResponse
			resp := getJSON(t, srv.URL+tt.path, &body)
			if resp.StatusCode != tt.status {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.status)
			}
			if body.Code != tt.code || body.Message == "" {
				t.Errorf("body = %+v, want code %s", body, tt.code)
			}
		})
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		code apperrors.Code
		want int
	}{
		{apperrors.ErrCodeInvalidLayout, http.StatusUnprocessableEntity},
		{apperrors.ErrCodeGenerationFailed, http.StatusUnprocessableEntity},
		{apperrors.ErrCodeTimeout, http.StatusGatewayTimeout},
		{apperrors.ErrCodeInternal, http.StatusInternalServerError},
		{"", http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := statusFor(tt.code); got != tt.want {
			t.Errorf("statusFor(%q) = %d, want %d", tt.code, got, tt.want)
		}
	}
}

func TestGeneratePlan(t *testing.T) {
	srv := newTestServer(t)

	var resp planResponse
	getJSON(t, srv.URL+"/plans/sweep?pattern=stretcher", &resp)
	if resp.RunID == "" {
		t.Error("run_id missing")
	}
	if resp.Plan.Status != plan.StatusComplete || resp.Plan.Strides != 29 {
		t.Errorf("plan = %s with %d strides, want complete with 29", resp.Plan.Status, resp.Plan.Strides)
	}
	if err := plan.Verify(resp.Layout, resp.Plan); err != nil {
		t.Errorf("Verify: %v", err)
	}
}

func TestPlanLayout(t *testing.T) {
	srv := newTestServer(t)

	var body bytes.Buffer
	if err := bio.WriteLayout(bond.Flemish(1000, 600), &body); err != nil {
		t.Fatal(err)
	}
	resp, err := http.Post(srv.URL+"/plans/greedy", "application/json", &body)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	p, err := bio.ReadPlan(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	if p.Strategy != plan.StrategyGreedy || p.Status != plan.StatusComplete {
		t.Errorf("plan = %s/%s", p.Strategy, p.Status)
	}

	resp, err = http.Post(srv.URL+"/plans/greedy", "application/json", strings.NewReader("{not json"))
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("malformed body: status = %d, want 400", resp.StatusCode)
	}
}

func TestCompare(t *testing.T) {
	srv := newTestServer(t)

	var resp compareResponse
	getJSON(t, srv.URL+"/compare?pattern=stretcher", &resp)
	if resp.TotalBricks != 352 || len(resp.Results) != 3 {
		t.Fatalf("compare = %+v", resp)
	}
	want := map[string]int{"naive": 0, "sweep": 29, "greedy": 27}
	for _, r := range resp.Results {
		if r.Strides != want[r.Strategy] || r.Placed != 352 {
			t.Errorf("%s: %d strides, %d placed", r.Strategy, r.Strides, r.Placed)
		}
	}
}

func TestStreamOrigin(t *testing.T) {
	runner := pipeline.NewRunner(log.NewWithOptions(io.Discard, log.Options{}))
	tests := []struct {
		name   string
		opts   []Option
		origin string
		ok     bool
	}{
		{"no origin header", nil, "", true},
		{"foreign origin rejected", nil, "http://viewer.example.com", false},
		{"allowed pattern", []Option{WithOriginPatterns("*.example.com")}, "http://viewer.example.com", true},
		{"pattern mismatch", []Option{WithOriginPatterns("*.example.com")}, "http://example.org", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(New(runner, pipeline.Options{}, tt.opts...))
			defer srv.Close()
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			header := http.Header{}
			if tt.origin != "" {
				header.Set("Origin", tt.origin)
			}
			url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/stream/naive?width=1000&height=200"
			conn, resp, err := websocket.Dial(ctx, url, &websocket.DialOptions{HTTPHeader: header})
			if tt.ok {
				if err != nil {
					t.Fatalf("Dial() error = %v", err)
				}
				conn.Close(websocket.StatusNormalClosure, "")
				return
			}
			if err == nil {
				conn.Close(websocket.StatusNormalClosure, "")
				t.Fatal("Dial() succeeded, want origin rejected")
			}
			if resp == nil || resp.StatusCode != http.StatusForbidden {
				t.Errorf("Dial() response = %v, want 403", resp)
			}
		})
	}
}

func TestStream(t *testing.T) {
	srv := newTestServer(t)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/stream/sweep?width=1000&height=200"
	conn, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close(websocket.StatusNormalClosure, "")

	var (
		types  []string
		placed int
		done   DonePayload
	)
	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			t.Fatalf("read after %v: %v", types, err)
		}
		var env Envelope
		if err := json.Unmarshal(data, &env); err != nil {
			t.Fatal(err)
		}
		types = append(types, env.Type)
		if env.Type == MessageStride {
			var sp StridePayload
			if err := json.Unmarshal(env.Payload, &sp); err != nil {
				t.Fatal(err)
			}
			placed += len(sp.Bricks)
		}
		if env.Type == MessageDone {
			if err := json.Unmarshal(env.Payload, &done); err != nil {
				t.Fatal(err)
			}
			break
		}
	}

	if types[0] != MessageLayout {
		t.Errorf("first message = %s, want layout", types[0])
	}
	if done.Status != plan.StatusComplete || placed != done.Placed || placed != 17 {
		t.Errorf("done = %+v, streamed %d bricks, want 17", done, placed)
	}
	if strides := len(types) - 2; strides != done.Strides {
		t.Errorf("streamed %d strides, done says %d", strides, done.Strides)
	}
}

type recordingHTTPHooks struct {
	observability.NoopHTTPHooks
	mu       sync.Mutex
	statuses []int
}

func (h *recordingHTTPHooks) OnResponse(_ context.Context, _, _ string, status int, _ time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.statuses = append(h.statuses, status)
}

func TestHTTPHooks(t *testing.T) {
	hooks := &recordingHTTPHooks{}
	observability.SetHTTPHooks(hooks)
	defer observability.Reset()

	runner := pipeline.NewRunner(log.NewWithOptions(io.Discard, log.Options{}))
	h := New(runner, pipeline.Options{})

	for _, path := range []string{"/healthz", "/layouts/nope"} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	}

	hooks.mu.Lock()
	defer hooks.mu.Unlock()
	if len(hooks.statuses) != 2 || hooks.statuses[0] != http.StatusOK || hooks.statuses[1] != http.StatusBadRequest {
		t.Errorf("statuses = %v, want [200 400]", hooks.statuses)
	}
}
