package observability

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Generation hooks
	g := NoopGenerationHooks{}
	g.OnGenerateStart(ctx, "wild", 2300, 2000)
	g.OnCourseGenerated(ctx, "wild", 0, 11)
	g.OnAttemptFailed(ctx, "wild", 1, 4, errors.New("exhausted"))
	g.OnGenerateComplete(ctx, "wild", 352, time.Second, nil)

	// Planning hooks
	p := NoopPlanningHooks{}
	p.OnPlanStart(ctx, "sweep", 352)
	p.OnStride(ctx, "sweep", 0, 40, 352)
	p.OnPlanComplete(ctx, "sweep", 352, 28, "complete", time.Second)

	// Pipeline hooks
	r := NoopPipelineHooks{}
	r.OnRenderStart(ctx, []string{"svg"})
	r.OnRenderComplete(ctx, []string{"svg"}, time.Second, nil)

	// HTTP hooks
	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "GET", "/layouts/wild")
	h.OnResponse(ctx, "GET", "/layouts/wild", 200, time.Second)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Generation().(NoopGenerationHooks); !ok {
		t.Error("Generation() should return NoopGenerationHooks by default")
	}
	if _, ok := Planning().(NoopPlanningHooks); !ok {
		t.Error("Planning() should return NoopPlanningHooks by default")
	}
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Pipeline() should return NoopPipelineHooks by default")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should return NoopHTTPHooks by default")
	}

	customGeneration := &testGenerationHooks{}
	SetGenerationHooks(customGeneration)
	if Generation() != customGeneration {
		t.Error("SetGenerationHooks should set custom hooks")
	}

	customPlanning := &testPlanningHooks{}
	SetPlanningHooks(customPlanning)
	if Planning() != customPlanning {
		t.Error("SetPlanningHooks should set custom hooks")
	}

	customPipeline := &testPipelineHooks{}
	SetPipelineHooks(customPipeline)
	if Pipeline() != customPipeline {
		t.Error("SetPipelineHooks should set custom hooks")
	}

	customHTTP := &testHTTPHooks{}
	SetHTTPHooks(customHTTP)
	if HTTP() != customHTTP {
		t.Error("SetHTTPHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Planning().(NoopPlanningHooks); !ok {
		t.Error("Reset() should restore NoopPlanningHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testPlanningHooks{}
	SetPlanningHooks(custom)

	// Setting nil should be ignored
	SetPlanningHooks(nil)

	if Planning() != custom {
		t.Error("SetPlanningHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testGenerationHooks struct{ NoopGenerationHooks }
type testPlanningHooks struct{ NoopPlanningHooks }
type testPipelineHooks struct{ NoopPipelineHooks }
type testHTTPHooks struct{ NoopHTTPHooks }
