package source

import (
	"testing"
	"time"
)

func TestTokenSource_StrictlyIncreasing(t *testing.T) {
	ts := newTokenSource()
	prev := ts.Next()
	for range 1000 {
		next := ts.Next()
		if next <= prev {
			t.Fatalf("expected %q > %q", next, prev)
		}
		prev = next
	}
}

func TestTokenSource_ClockStepsBack(t *testing.T) {
	clock := time.UnixMilli(1_700_000_000_000)
	ts := newTokenSource()
	ts.now = func() time.Time { return clock }

	a := ts.Next()
	clock = clock.Add(-5 * time.Second)
	b := ts.Next()
	if b <= a {
		t.Fatalf("expected token after clock step back to sort later: %q <= %q", b, a)
	}
}

func TestTokenSource_Length(t *testing.T) {
	tok := newTokenSource().Next()
	if len(tok) != 26 {
		t.Fatalf("expected 26-char token, got %d (%q)", len(tok), tok)
	}
}
