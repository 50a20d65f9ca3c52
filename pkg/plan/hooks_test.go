package plan

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/matzehuels/bricklayer/pkg/observability"
	"github.com/matzehuels/bricklayer/pkg/wall/bond"
)

type recordingHooks struct {
	mu       sync.Mutex
	starts   int
	strides  []int
	placed   int
	status   string
	complete int
}

func (h *recordingHooks) OnPlanStart(context.Context, string, int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.starts++
}

func (h *recordingHooks) OnStride(_ context.Context, _ string, stride, placed, _ int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.strides = append(h.strides, stride)
	h.placed = placed
}

func (h *recordingHooks) OnPlanComplete(_ context.Context, _ string, _, _ int, status string, _ time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.complete++
	h.status = status
}

func TestPlannersEmitHooks(t *testing.T) {
	l := bond.Stretcher(2300, 2000)

	for _, pl := range []Planner{DefaultSweep(), DefaultGreedy()} {
		t.Run(pl.Name(), func(t *testing.T) {
			h := &recordingHooks{}
			observability.SetPlanningHooks(h)
			t.Cleanup(observability.Reset)

			p, err := pl.Plan(context.Background(), l)
			if err != nil {
				t.Fatalf("Plan() error = %v", err)
			}
			if h.starts != 1 || h.complete != 1 {
				t.Errorf("start/complete events = %d/%d, want 1/1", h.starts, h.complete)
			}
			if h.status != string(p.Status) {
				t.Errorf("status event = %q, want %q", h.status, p.Status)
			}
			if h.placed != l.TotalBricks {
				t.Errorf("last stride event reported %d placed, want %d", h.placed, l.TotalBricks)
			}
			if n := len(h.strides); n == 0 || h.strides[n-1] != p.Strides-1 {
				t.Errorf("stride events = %v, want last %d", h.strides, p.Strides-1)
			}
		})
	}
}
