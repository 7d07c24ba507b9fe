package circuitbreaker

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestCircuitBreaker_OpensAfterMaxFailures(t *testing.T) {
	cb := NewCircuitBreaker(3, time.Minute)
	ctx := context.Background()
	boom := errors.New("boom")

	for i := 0; i < 3; i++ {
		if err := cb.Execute(ctx, func() error { return boom }); !errors.Is(err, boom) {
			t.Fatalf("Expected underlying error, got %v", err)
		}
	}

	if cb.GetState() != StateOpen {
		t.Fatalf("Expected open state, got %v", cb.GetState())
	}
	if err := cb.Execute(ctx, func() error { return nil }); !errors.Is(err, ErrCircuitOpen) {
		t.Errorf("Expected ErrCircuitOpen, got %v", err)
	}
}

func TestCircuitBreaker_HalfOpenRecovery(t *testing.T) {
	cb := NewCircuitBreaker(1, 10*time.Millisecond)
	ctx := context.Background()

	if err := cb.Execute(ctx, func() error { return errors.New("boom") }); err == nil {
		t.Fatal("Expected error")
	}
	if cb.GetState() != StateOpen {
		t.Fatalf("Expected open state, got %v", cb.GetState())
	}

	time.Sleep(20 * time.Millisecond)

	if err := cb.Execute(ctx, func() error { return nil }); err != nil {
		t.Fatalf("Expected probe to pass, got %v", err)
	}
	if cb.GetState() != StateClosed {
		t.Errorf("Expected closed state after successful probe, got %v", cb.GetState())
	}
}

func TestCircuitBreaker_SuccessResetsFailureCount(t *testing.T) {
	cb := NewCircuitBreaker(2, time.Minute)
	ctx := context.Background()

	cb.Execute(ctx, func() error { return errors.New("boom") })
	cb.Execute(ctx, func() error { return nil })
	cb.Execute(ctx, func() error { return errors.New("boom") })

	if cb.GetState() != StateClosed {
		t.Errorf("Expected closed state, got %v", cb.GetState())
	}
}
