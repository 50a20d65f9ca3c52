// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. The wall generators and build planners
// never log; they report progress through the hooks registered here, and the
// application decides what to do with the events (log lines, metrics, a live
// progress display).
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core library dependency-free from observability frameworks
//   - Keeps instrumentation out of the solver and planner hot loops
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetGenerationHooks(&myGenerationHooks{})
//	    observability.SetPlanningHooks(&myPlanningHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Planning().OnPlanStart(ctx, "sweep", layout.TotalBricks)
//	// ... plan ...
//	observability.Planning().OnPlanComplete(ctx, "sweep", placed, strides, "complete", duration)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Generation Hooks
// =============================================================================

// GenerationHooks receives events from the bond layout generators.
type GenerationHooks interface {
	// OnGenerateStart is called once per generator invocation.
	OnGenerateStart(ctx context.Context, pattern string, width, height float64)

	// OnCourseGenerated is called after each course is accepted.
	OnCourseGenerated(ctx context.Context, pattern string, course, bricks int)

	// OnAttemptFailed is called when a randomized search discards a whole
	// wall attempt because a course could not be completed.
	OnAttemptFailed(ctx context.Context, pattern string, attempt, course int, err error)

	// OnGenerateComplete is called when the generator returns.
	OnGenerateComplete(ctx context.Context, pattern string, bricks int, duration time.Duration, err error)
}

// =============================================================================
// Planning Hooks
// =============================================================================

// PlanningHooks receives events from the build planners.
type PlanningHooks interface {
	// OnPlanStart is called once per planner invocation.
	OnPlanStart(ctx context.Context, strategy string, totalBricks int)

	// OnStride is called after each stride is committed.
	OnStride(ctx context.Context, strategy string, stride, placed, total int)

	// OnPlanComplete is called when the planner returns. Status is the
	// plan's completion status ("complete", "budget_exhausted", ...).
	OnPlanComplete(ctx context.Context, strategy string, placed, strides int, status string, duration time.Duration)
}

// =============================================================================
// Pipeline Hooks
// =============================================================================

// PipelineHooks receives events from the render stage of the pipeline.
type PipelineHooks interface {
	OnRenderStart(ctx context.Context, formats []string)
	OnRenderComplete(ctx context.Context, formats []string, duration time.Duration, err error)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from the HTTP API server.
type HTTPHooks interface {
	// OnRequest records an incoming HTTP request.
	OnRequest(ctx context.Context, method, path string)

	// OnResponse records the response status and latency.
	OnResponse(ctx context.Context, method, path string, statusCode int, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopGenerationHooks is a no-op implementation of GenerationHooks.
type NoopGenerationHooks struct{}

func (NoopGenerationHooks) OnGenerateStart(context.Context, string, float64, float64) {}
func (NoopGenerationHooks) OnCourseGenerated(context.Context, string, int, int)       {}
func (NoopGenerationHooks) OnAttemptFailed(context.Context, string, int, int, error)  {}
func (NoopGenerationHooks) OnGenerateComplete(context.Context, string, int, time.Duration, error) {
}

// NoopPlanningHooks is a no-op implementation of PlanningHooks.
type NoopPlanningHooks struct{}

func (NoopPlanningHooks) OnPlanStart(context.Context, string, int)        {}
func (NoopPlanningHooks) OnStride(context.Context, string, int, int, int) {}
func (NoopPlanningHooks) OnPlanComplete(context.Context, string, int, int, string, time.Duration) {
}

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnRenderStart(context.Context, []string)                          {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, []string, time.Duration, error) {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	generationHooks GenerationHooks = NoopGenerationHooks{}
	planningHooks   PlanningHooks   = NoopPlanningHooks{}
	pipelineHooks   PipelineHooks   = NoopPipelineHooks{}
	httpHooks       HTTPHooks       = NoopHTTPHooks{}
	hooksMu         sync.RWMutex
)

// SetGenerationHooks registers custom generation hooks.
// This should be called once at application startup before any generation.
func SetGenerationHooks(h GenerationHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		generationHooks = h
	}
}

// SetPlanningHooks registers custom planning hooks.
// This should be called once at application startup before any planning.
func SetPlanningHooks(h PlanningHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		planningHooks = h
	}
}

// SetPipelineHooks registers custom pipeline hooks.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// SetHTTPHooks registers custom HTTP hooks.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// Generation returns the registered generation hooks.
func Generation() GenerationHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return generationHooks
}

// Planning returns the registered planning hooks.
func Planning() PlanningHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return planningHooks
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	generationHooks = NoopGenerationHooks{}
	planningHooks = NoopPlanningHooks{}
	pipelineHooks = NoopPipelineHooks{}
	httpHooks = NoopHTTPHooks{}
}
