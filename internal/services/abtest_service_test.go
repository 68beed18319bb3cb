package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
)

func newTestABTest(delay time.Duration) *ABTestService {
	return NewABTestService(delay, nil, zap.NewNop())
}

func registerBoth(t *testing.T, svc *ABTestService) {
	t.Helper()
	if err := svc.RegisterVariant(VariantA, "hero-a.png", 120_000, "image/png"); err != nil {
		t.Fatalf("register a: %v", err)
	}
	if err := svc.RegisterVariant(VariantB, "hero-b.png", 118_000, "image/png"); err != nil {
		t.Fatalf("register b: %v", err)
	}
}

func waitForResult(t *testing.T, svc *ABTestService) *ABResult {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if r := svc.Result(); r != nil {
			return r
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("simulation never completed")
	return nil
}

func TestRegisterVariant(t *testing.T) {
	svc := newTestABTest(time.Millisecond)

	if err := svc.RegisterVariant("c", "x.png", 1, "image/png"); err == nil {
		t.Error("unknown slot accepted")
	}
	if err := svc.RegisterVariant(VariantA, "", 1, "image/png"); err == nil {
		t.Error("empty file name accepted")
	}

	registerBoth(t, svc)
	variants, running := svc.Status()
	if running {
		t.Error("running before any run")
	}
	if variants[VariantA].Name != "hero-a.png" || variants[VariantB].Name != "hero-b.png" {
		t.Errorf("variants = %+v", variants)
	}
}

func TestRunRequiresBothVariants(t *testing.T) {
	svc := newTestABTest(time.Millisecond)

	var verr *ValidationError
	if err := svc.Run(context.Background()); !errors.As(err, &verr) {
		t.Errorf("run without variants: got %v, want ValidationError", err)
	}

	if err := svc.RegisterVariant(VariantA, "a.png", 1, "image/png"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := svc.Run(context.Background()); !errors.As(err, &verr) {
		t.Errorf("run with one variant: got %v, want ValidationError", err)
	}
}

func TestRunCompletes(t *testing.T) {
	svc := newTestABTest(10 * time.Millisecond)
	registerBoth(t, svc)

	if err := svc.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}

	if _, running := svc.Status(); !running {
		t.Error("not running right after Run")
	}
	if svc.Result() != nil {
		t.Error("result available before the delay elapsed")
	}

	result := waitForResult(t, svc)
	if result.Summary.Winner != "Variant B" {
		t.Errorf("winner = %q", result.Summary.Winner)
	}
	if result.Summary.ConfidenceLevel != 95 || result.Summary.SampleSize != 10000 {
		t.Errorf("summary = %+v", result.Summary)
	}
	if len(result.Metrics) != 4 || len(result.TrafficSplit) != 2 {
		t.Errorf("result shape: %d metrics, %d shares", len(result.Metrics), len(result.TrafficSplit))
	}
	if _, running := svc.Status(); running {
		t.Error("still running after completion")
	}
}

func TestRunWhileRunningRejected(t *testing.T) {
	svc := newTestABTest(50 * time.Millisecond)
	registerBoth(t, svc)

	if err := svc.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	var verr *ValidationError
	if err := svc.Run(context.Background()); !errors.As(err, &verr) {
		t.Errorf("second run: got %v, want ValidationError", err)
	}
}

func TestStaleResultIgnoredAfterReset(t *testing.T) {
	svc := newTestABTest(30 * time.Millisecond)
	registerBoth(t, svc)

	if err := svc.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	// The user walks away before the simulation lands.
	svc.Reset()

	time.Sleep(100 * time.Millisecond)
	if svc.Result() != nil {
		t.Error("stale result applied after reset")
	}
	if _, running := svc.Status(); running {
		t.Error("reset left the test running")
	}
}

func TestStaleResultIgnoredAfterRestart(t *testing.T) {
	svc := newTestABTest(30 * time.Millisecond)
	registerBoth(t, svc)

	if err := svc.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	svc.Reset()
	registerBoth(t, svc)
	if err := svc.Run(context.Background()); err != nil {
		t.Fatalf("second run: %v", err)
	}

	first := waitForResult(t, svc)
	second := svc.Result()
	if second == nil || !first.CompletedAt.Equal(second.CompletedAt) {
		t.Error("result replaced by a stale run")
	}
}

func TestRunCancelledByContext(t *testing.T) {
	svc := newTestABTest(30 * time.Millisecond)
	registerBoth(t, svc)

	ctx, cancel := context.WithCancel(context.Background())
	if err := svc.Run(ctx); err != nil {
		t.Fatalf("run: %v", err)
	}
	cancel()

	time.Sleep(100 * time.Millisecond)
	if svc.Result() != nil {
		t.Error("cancelled run produced a result")
	}
}
