package utils

import (
	"errors"
	"testing"
	"time"
)

func TestBackoffRetriesUntilSuccess(t *testing.T) {
	calls := 0
	err := NewBackoff(time.Microsecond, 5).Do(func(i int) error {
		calls++
		if i < 2 {
			return errors.New("transient")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 3 {
		t.Fatalf("calls = %d, want 3", calls)
	}
}

func TestBackoffReturnsLastError(t *testing.T) {
	last := errors.New("still down")
	calls := 0
	err := NewBackoff(time.Microsecond, 2).Do(func(i int) error {
		calls++
		return last
	})
	if err != last {
		t.Fatalf("err = %v, want the last error", err)
	}
	if calls != 3 {
		t.Fatalf("calls = %d, want maxRetries+1", calls)
	}
}

func TestBackoffDelayIsCapped(t *testing.T) {
	b := NewBackoff(time.Second, 10)
	if d := b.delay(0); d != time.Second {
		t.Fatalf("first delay = %v", d)
	}
	if d := b.delay(10); d != 30*time.Second {
		t.Fatalf("delay must cap at 30s, got %v", d)
	}
}
