package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePurger struct {
	results []error
	calls   chan struct{}
}

func (f *fakePurger) PurgeExpiredSessions(context.Context) (int64, error) {
	var err error
	if len(f.results) > 0 {
		err, f.results = f.results[0], f.results[1:]
	}
	select {
	case f.calls <- struct{}{}:
	default:
	}
	return 3, err
}

func TestPurgeExpiredSessions(t *testing.T) {
	purger := &fakePurger{
		results: []error{errors.New("redis: connection refused")},
		calls:   make(chan struct{}, 8),
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		purgeExpiredSessions(ctx, purger, 5*time.Millisecond)
		close(done)
	}()

	// a failed run does not stop the loop
	for i := 0; i < 2; i++ {
		select {
		case <-purger.calls:
		case <-time.After(time.Second):
			t.Fatalf("purge %d did not run", i+1)
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		require.FailNow(t, "purge loop did not stop after cancel")
	}
	assert.Empty(t, purger.results)
}
