package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPageStateTransitions(t *testing.T) {
	t.Run("Loading to success", func(t *testing.T) {
		page := NewPageState[[]Product]()

		gen := page.Begin()
		status, _, _ := page.Snapshot()
		assert.Equal(t, StatusLoading, status)

		applied := page.Complete(gen, []Product{{ID: 1}}, nil)
		assert.True(t, applied)

		status, data, errMsg := page.Snapshot()
		assert.Equal(t, StatusSuccess, status)
		assert.Len(t, data, 1)
		assert.Empty(t, errMsg)
	})

	t.Run("Loading to error", func(t *testing.T) {
		page := NewPageState[[]Product]()

		gen := page.Begin()
		applied := page.Complete(gen, nil, errors.New("server error: 500"))
		assert.True(t, applied)

		status, _, errMsg := page.Snapshot()
		assert.Equal(t, StatusError, status)
		assert.Equal(t, "server error: 500", errMsg)
	})
}

func TestPageStateLastTriggeredWins(t *testing.T) {
	page := NewPageState[*Product]()

	// First activation (catalogue 1) is superseded by a second (catalogue 2)
	// before its fetch resolves.
	first := page.Begin()
	second := page.Begin()

	// The slow first fetch resolves after the second: it must be discarded
	// even though it settles last.
	applied := page.Complete(second, &Product{ID: 2}, nil)
	assert.True(t, applied)
	applied = page.Complete(first, &Product{ID: 1}, nil)
	assert.False(t, applied, "stale fetch must not overwrite the active page")

	status, data, _ := page.Snapshot()
	assert.Equal(t, StatusSuccess, status)
	assert.Equal(t, uint(2), data.ID)
}

func TestPageStateStaleErrorDiscarded(t *testing.T) {
	page := NewPageState[*Product]()

	first := page.Begin()
	second := page.Begin()

	assert.False(t, page.Complete(first, nil, errors.New("timeout")))

	status, _, _ := page.Snapshot()
	assert.Equal(t, StatusLoading, status, "only the active fetch may leave loading")

	assert.True(t, page.Complete(second, &Product{ID: 2}, nil))
	status, _, _ = page.Snapshot()
	assert.Equal(t, StatusSuccess, status)
}

func TestPageStateLoad(t *testing.T) {
	page := NewPageState[int]()
	done := make(chan struct{})

	page.Load(context.Background(), func(ctx context.Context) (int, error) {
		defer close(done)
		return 42, nil
	})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("fetch did not run")
	}

	// The goroutine applies the result right after the fetch returns; poll
	// briefly rather than racing it.
	deadline := time.Now().Add(time.Second)
	for {
		status, data, _ := page.Snapshot()
		if status == StatusSuccess {
			assert.Equal(t, 42, data)
			return
		}
		if time.Now().After(deadline) {
			t.Fatal("result was never applied")
		}
		time.Sleep(time.Millisecond)
	}
}
