package console

import (
	"context"
	"testing"
	"time"
)

func TestCountdown_Run_FirstTickImmediate(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	countdown := NewCountdown()

	ticked := make(chan struct{}, 1)
	go func() {
		countdown.Run(ctx, func(now time.Time) {
			select {
			case ticked <- struct{}{}:
			default:
			}
			cancel()
		})
	}()

	select {
	case <-ticked:
	case <-time.After(time.Second):
		t.Fatal("countdown did not tick immediately")
	}
}

func TestCountdown_Run_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	countdown := NewCountdown()

	done := make(chan struct{})
	go func() {
		countdown.Run(ctx, func(now time.Time) {})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("countdown did not stop after context cancellation")
	}
}
