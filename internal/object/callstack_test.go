package object

import (
	"testing"

	"github.com/utkarsh5026/interpreter-sub002/internal/token"
)

func TestCallStackPushPop(t *testing.T) {
	cs := NewCallStack(10)
	if err := cs.Push("main", &token.Position{Line: 1, Column: 1}); err != nil {
		t.Fatalf("Push: %v", err)
	}
	if cs.Depth() != 1 {
		t.Errorf("Depth() = %d, want 1", cs.Depth())
	}
	cs.Pop()
	if cs.Depth() != 0 {
		t.Errorf("Depth() after Pop = %d, want 0", cs.Depth())
	}
}

func TestCallStackPopOnEmptyIsNoop(t *testing.T) {
	cs := NewCallStack(10)
	cs.Pop()
	if cs.Depth() != 0 {
		t.Errorf("Depth() = %d, want 0", cs.Depth())
	}
}

func TestCallStackOverflow(t *testing.T) {
	cs := NewCallStack(2)
	if err := cs.Push("a", nil); err != nil {
		t.Fatalf("Push a: %v", err)
	}
	if err := cs.Push("b", nil); err != nil {
		t.Fatalf("Push b: %v", err)
	}
	if err := cs.Push("c", nil); err == nil {
		t.Errorf("expected overflow error pushing beyond max depth")
	}
	if cs.Depth() != 2 {
		t.Errorf("a failed push should not increase depth, got %d", cs.Depth())
	}
}

func TestCallStackDefaultMaxDepth(t *testing.T) {
	cs := NewCallStack(0)
	for i := 0; i < defaultMaxCallDepth; i++ {
		if err := cs.Push("f", nil); err != nil {
			t.Fatalf("unexpected overflow at frame %d: %v", i, err)
		}
	}
	if err := cs.Push("f", nil); err == nil {
		t.Errorf("expected overflow after default max depth reached")
	}
}

func TestCallStackTraceIsNewestLastOldestFirst(t *testing.T) {
	cs := NewCallStack(10)
	_ = cs.Push("outer", &token.Position{Line: 1, Column: 1})
	_ = cs.Push("inner", &token.Position{Line: 2, Column: 1})

	trace := cs.Trace()
	if len(trace) != 2 || trace[0].FunctionName != "outer" || trace[1].FunctionName != "inner" {
		t.Errorf("unexpected trace order: %v", trace)
	}
}

func TestCallStackTraceIsACopy(t *testing.T) {
	cs := NewCallStack(10)
	_ = cs.Push("a", nil)

	trace := cs.Trace()
	cs.Pop()
	_ = cs.Push("b", nil)

	if len(trace) != 1 || trace[0].FunctionName != "a" {
		t.Errorf("expected snapshot trace to remain unaffected by later mutation, got %v", trace)
	}
}

func TestCallStackString(t *testing.T) {
	cs := NewCallStack(10)
	_ = cs.Push("main", &token.Position{Line: 5, Column: 2})
	if got := cs.String(); got == "" {
		t.Errorf("expected non-empty stack string")
	}
}
