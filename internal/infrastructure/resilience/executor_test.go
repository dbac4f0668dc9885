package resilience

import (
	"context"
	"errors"
	"testing"
	"time"
)

func fastConfig() Config {
	return Config{
		MaxAttempts:    3,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     2 * time.Millisecond,
	}
}

func TestExecuteSucceedsAfterTransientFailures(t *testing.T) {
	e := NewExecutor(fastConfig())

	attempts := 0
	err := e.Execute(context.Background(), "nats.publish", func(context.Context) error {
		attempts++
		if attempts < 3 {
			return errors.New("broker hiccup")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Execute() error = %v, want nil", err)
	}
	if attempts != 3 {
		t.Fatalf("attempts = %d, want 3", attempts)
	}
}

func TestExecuteExhaustsAttempts(t *testing.T) {
	e := NewExecutor(fastConfig())

	wantErr := errors.New("broker down")
	attempts := 0
	err := e.Execute(context.Background(), "nats.publish", func(context.Context) error {
		attempts++
		return wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("Execute() error = %v, want %v", err, wantErr)
	}
	if attempts != 3 {
		t.Fatalf("attempts = %d, want 3", attempts)
	}
}

func TestExecuteStopsOnCancelledContext(t *testing.T) {
	e := NewExecutor(fastConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	attempts := 0
	err := e.Execute(ctx, "nats.publish", func(context.Context) error {
		attempts++
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Execute() error = %v, want context.Canceled", err)
	}
	if attempts != 0 {
		t.Fatalf("attempts = %d, want 0 after cancellation", attempts)
	}
}

func TestExecuteNilCallback(t *testing.T) {
	e := NewExecutor(fastConfig())
	if err := e.Execute(context.Background(), "noop", nil); err == nil {
		t.Fatal("Execute(nil) error = nil, want error")
	}
}

func TestBreakerOpensAfterRepeatedFailures(t *testing.T) {
	cfg := fastConfig()
	cfg.MaxAttempts = 1
	cfg.BreakerEnabled = true
	cfg.BreakerMinRequests = 3
	cfg.BreakerFailureRatio = 0.5
	cfg.BreakerOpenTimeout = time.Minute
	e := NewExecutor(cfg)

	failing := func(context.Context) error { return errors.New("broker down") }
	for i := 0; i < 3; i++ {
		if err := e.Execute(context.Background(), "nats.publish", failing); err == nil {
			t.Fatalf("call %d succeeded, want failure", i)
		}
	}

	calls := 0
	err := e.Execute(context.Background(), "nats.publish", func(context.Context) error {
		calls++
		return nil
	})
	if !IsCircuitOpen(err) {
		t.Fatalf("Execute() error = %v, want open circuit", err)
	}
	if calls != 0 {
		t.Fatalf("callback ran %d times through an open circuit", calls)
	}
}

func TestBreakersAreIsolatedPerOperation(t *testing.T) {
	cfg := fastConfig()
	cfg.MaxAttempts = 1
	cfg.BreakerEnabled = true
	cfg.BreakerMinRequests = 3
	cfg.BreakerFailureRatio = 0.5
	cfg.BreakerOpenTimeout = time.Minute
	e := NewExecutor(cfg)

	failing := func(context.Context) error { return errors.New("broker down") }
	for i := 0; i < 3; i++ {
		_ = e.Execute(context.Background(), "nats.publish", failing)
	}

	if err := e.Execute(context.Background(), "other.op", func(context.Context) error { return nil }); err != nil {
		t.Fatalf("unrelated operation error = %v, want nil", err)
	}
}
