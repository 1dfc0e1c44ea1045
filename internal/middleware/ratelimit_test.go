package middleware

import (
	"testing"
	"time"
)

func TestRateLimiterBlocksAfterThreshold(t *testing.T) {
	rl := NewRateLimiter(3, time.Minute, time.Minute)

	for i := 0; i < 2; i++ {
		rl.RecordFailure("10.0.0.1")
		if !rl.Allow("10.0.0.1") {
			t.Fatalf("blocked after %d failures, threshold is 3", i+1)
		}
	}
	rl.RecordFailure("10.0.0.1")
	if rl.Allow("10.0.0.1") {
		t.Fatal("still allowed after hitting the threshold")
	}
}

func TestRateLimiterIsolatesIPs(t *testing.T) {
	rl := NewRateLimiter(2, time.Minute, time.Minute)

	rl.RecordFailure("10.0.0.1")
	rl.RecordFailure("10.0.0.1")
	if rl.Allow("10.0.0.1") {
		t.Fatal("first IP should be blocked")
	}
	if !rl.Allow("10.0.0.2") {
		t.Fatal("second IP must be unaffected")
	}
}

func TestRateLimiterResetClearsBlock(t *testing.T) {
	rl := NewRateLimiter(2, time.Minute, time.Minute)

	rl.RecordFailure("10.0.0.1")
	rl.RecordFailure("10.0.0.1")
	if rl.Allow("10.0.0.1") {
		t.Fatal("should be blocked")
	}
	rl.Reset("10.0.0.1")
	if !rl.Allow("10.0.0.1") {
		t.Fatal("reset must clear the block")
	}
}

func TestRateLimiterBlockExpires(t *testing.T) {
	rl := NewRateLimiter(2, time.Minute, 10*time.Millisecond)

	rl.RecordFailure("10.0.0.1")
	rl.RecordFailure("10.0.0.1")
	if rl.Allow("10.0.0.1") {
		t.Fatal("should be blocked")
	}
	time.Sleep(20 * time.Millisecond)
	if !rl.Allow("10.0.0.1") {
		t.Fatal("block must expire")
	}
}

func TestRateLimiterWindowResetsCount(t *testing.T) {
	rl := NewRateLimiter(2, 10*time.Millisecond, time.Minute)

	rl.RecordFailure("10.0.0.1")
	time.Sleep(20 * time.Millisecond)
	rl.RecordFailure("10.0.0.1")
	if !rl.Allow("10.0.0.1") {
		t.Fatal("failures outside the window must not accumulate")
	}
}
