package security

import (
	"context"
	"testing"
)

func TestRateLimiter_Disabled(t *testing.T) {
	rl := NewRateLimiter(0, 0, nil)
	for i := 0; i < 100; i++ {
		if !rl.Allow() {
			t.Fatal("disabled limiter must always allow")
		}
	}
	if err := rl.Wait(context.Background()); err != nil {
		t.Errorf("Wait() error = %v", err)
	}
}

func TestRateLimiter_BurstExhaustion(t *testing.T) {
	rl := NewRateLimiter(1, 2, nil)

	if !rl.Allow() {
		t.Error("first call within burst should be allowed")
	}
	if !rl.Allow() {
		t.Error("second call within burst should be allowed")
	}
	if rl.Allow() {
		t.Error("call beyond burst should be denied")
	}
}

func TestRateLimiter_WaitCancelled(t *testing.T) {
	rl := NewRateLimiter(1, 1, nil)
	rl.Allow() // drain the bucket

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := rl.Wait(ctx); err == nil {
		t.Error("Wait() expected error for cancelled context")
	}
}

func TestRateLimiter_NilReceiver(t *testing.T) {
	var rl *RateLimiter
	if !rl.Allow() {
		t.Error("nil limiter must allow")
	}
	if err := rl.Wait(context.Background()); err != nil {
		t.Errorf("Wait() error = %v", err)
	}
}
