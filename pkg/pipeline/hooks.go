package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/bricklayer/pkg/observability"
)

// LogHooks turns generation, planning, and render events into debug log
// lines. Failures are logged at warn level.
type LogHooks struct {
	Logger *log.Logger
}

// InstallLogHooks registers a [LogHooks] for logger with the observability
// package. Call it once at startup; it replaces any hooks already set.
func InstallLogHooks(logger *log.Logger) {
	h := LogHooks{Logger: logger}
	observability.SetGenerationHooks(h)
	observability.SetPlanningHooks(h)
	observability.SetPipelineHooks(h)
}

func (h LogHooks) OnGenerateStart(_ context.Context, pattern string, width, height float64) {
	h.Logger.Debug("generating", "pattern", pattern, "width", width, "height", height)
}

func (h LogHooks) OnCourseGenerated(_ context.Context, pattern string, course, bricks int) {
	h.Logger.Debug("course laid", "pattern", pattern, "course", course, "bricks", bricks)
}

func (h LogHooks) OnAttemptFailed(_ context.Context, pattern string, attempt, course int, err error) {
	h.Logger.Debug("attempt discarded", "pattern", pattern, "attempt", attempt, "course", course, "err", err)
}

func (h LogHooks) OnGenerateComplete(_ context.Context, pattern string, bricks int, d time.Duration, err error) {
	if err != nil {
		h.Logger.Warn("generation failed", "pattern", pattern, "duration", d, "err", err)
		return
	}
	h.Logger.Debug("generation done", "pattern", pattern, "bricks", bricks, "duration", d)
}

func (h LogHooks) OnPlanStart(_ context.Context, strategy string, total int) {
	h.Logger.Debug("planning", "strategy", strategy, "bricks", total)
}

func (h LogHooks) OnStride(_ context.Context, strategy string, stride, placed, total int) {
	h.Logger.Debug("stride", "strategy", strategy, "stride", stride, "placed", placed, "total", total)
}

func (h LogHooks) OnPlanComplete(_ context.Context, strategy string, placed, strides int, status string, d time.Duration) {
	h.Logger.Debug("planning done", "strategy", strategy, "placed", placed, "strides", strides, "status", status, "duration", d)
}

func (h LogHooks) OnRenderStart(_ context.Context, formats []string) {
	h.Logger.Debug("rendering", "formats", formats)
}

func (h LogHooks) OnRenderComplete(_ context.Context, formats []string, d time.Duration, err error) {
	if err != nil {
		h.Logger.Warn("render failed", "formats", formats, "err", err)
		return
	}
	h.Logger.Debug("render done", "formats", formats, "duration", d)
}
