package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"
)

func captureStatus(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	old := statusOut
	statusOut = &buf
	t.Cleanup(func() { statusOut = old })
	return &buf
}

func TestSpinnerStop(t *testing.T) {
	captureStatus(t)
	s := newSpinner(context.Background(), "Rendering...")
	s.Start()
	time.Sleep(100 * time.Millisecond)
	s.Stop()

	if s.Cancelled() {
		t.Error("Cancelled() = true after Stop, want false")
	}
}

func TestSpinnerCancelledByContext(t *testing.T) {
	captureStatus(t)
	ctx, cancel := context.WithCancel(context.Background())

	s := newSpinner(ctx, "Rendering...")
	s.Start()
	cancel()
	time.Sleep(50 * time.Millisecond)

	if !s.Cancelled() {
		t.Error("Cancelled() = false after context cancellation, want true")
	}
	s.Stop()
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	captureStatus(t)
	s := newSpinner(context.Background(), "Rendering...")
	s.Start()

	s.Stop()
	s.Stop()
	s.Stop()
}

func TestSpinnerStopWithMessages(t *testing.T) {
	buf := captureStatus(t)

	s := newSpinner(context.Background(), "Rendering...")
	s.Start()
	s.StopWithSuccess("Rendered %s", "SVG")

	s = newSpinner(context.Background(), "Rendering...")
	s.Start()
	s.StopWithError("Render failed")

	out := buf.String()
	if !strings.Contains(out, "Rendered SVG") || !strings.Contains(out, "Render failed") {
		t.Errorf("status output = %q", out)
	}
}
