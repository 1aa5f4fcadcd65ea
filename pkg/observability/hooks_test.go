package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	s := NoopSolveHooks{}
	s.OnSolveStart(ctx, 5, 2)
	s.OnSolveComplete(ctx, 5, 2, time.Millisecond, nil)

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "answer")
	c.OnCacheMiss(ctx, "answer")
	c.OnCacheSet(ctx, "answer", 64)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Solve().(NoopSolveHooks); !ok {
		t.Error("Solve() should return NoopSolveHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}

	customSolve := &testSolveHooks{}
	SetSolveHooks(customSolve)
	if Solve() != customSolve {
		t.Error("SetSolveHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	Reset()
	if _, ok := Solve().(NoopSolveHooks); !ok {
		t.Error("Reset() should restore NoopSolveHooks")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Reset() should restore NoopCacheHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()
	defer Reset()

	custom := &testSolveHooks{}
	SetSolveHooks(custom)
	SetSolveHooks(nil)
	if Solve() != custom {
		t.Error("SetSolveHooks(nil) should keep the previous hooks")
	}
}

func TestCustomHooksReceiveEvents(t *testing.T) {
	Reset()
	defer Reset()

	h := &testSolveHooks{}
	SetSolveHooks(h)

	Solve().OnSolveStart(context.Background(), 3, 1)
	Solve().OnSolveComplete(context.Background(), 3, 1, time.Second, nil)

	if h.starts != 1 || h.completes != 1 {
		t.Errorf("events = %d starts, %d completes, want 1 and 1", h.starts, h.completes)
	}
}

type testSolveHooks struct {
	starts, completes int
}

func (h *testSolveHooks) OnSolveStart(context.Context, int, int) { h.starts++ }
func (h *testSolveHooks) OnSolveComplete(context.Context, int, int, time.Duration, error) {
	h.completes++
}

type testCacheHooks struct{}

func (*testCacheHooks) OnCacheHit(context.Context, string)      {}
func (*testCacheHooks) OnCacheMiss(context.Context, string)     {}
func (*testCacheHooks) OnCacheSet(context.Context, string, int) {}
