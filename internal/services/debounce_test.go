// internal/services/debounce_test.go
package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebouncerDeliversAfterDelay(t *testing.T) {
	d := NewDebouncer(10 * time.Millisecond)
	defer d.Stop()

	delivered := make(chan interface{}, 1)
	d.Submit(
		func() interface{} { return "result" },
		func(v interface{}) { delivered <- v },
	)

	select {
	case v := <-delivered:
		assert.Equal(t, "result", v)
	case <-time.After(time.Second):
		t.Fatal("debounced result never delivered")
	}
}

func TestDebouncerOnlyLatestSubmissionWins(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)
	defer d.Stop()

	delivered := make(chan interface{}, 4)
	for _, query := range []string{"a", "ar", "ard", "ardbeg"} {
		q := query
		d.Submit(
			func() interface{} { return q },
			func(v interface{}) { delivered <- v },
		)
		time.Sleep(2 * time.Millisecond)
	}

	select {
	case v := <-delivered:
		assert.Equal(t, "ardbeg", v)
	case <-time.After(time.Second):
		t.Fatal("debounced result never delivered")
	}

	// The superseded submissions stay cancelled.
	select {
	case v := <-delivered:
		t.Fatalf("stale result delivered: %v", v)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestDebouncerStopCancelsPending(t *testing.T) {
	d := NewDebouncer(10 * time.Millisecond)

	delivered := make(chan interface{}, 1)
	d.Submit(
		func() interface{} { return "late" },
		func(v interface{}) { delivered <- v },
	)
	d.Stop()

	select {
	case v := <-delivered:
		t.Fatalf("cancelled result delivered: %v", v)
	case <-time.After(100 * time.Millisecond):
	}
	require.Empty(t, delivered)
}
