package client

import (
	"context"
	"sync"
)

// Status is the tri-state of a page: exactly one of loading, error or
// success at any time.
type Status int

const (
	StatusLoading Status = iota
	StatusError
	StatusSuccess
)

// PageState holds the view state one page derives from a single fetch.
//
// Each call to Load starts a new activation: the state returns to loading
// and a generation token is taken. When a fetch resolves, its result is
// applied only if no later activation has started, so rapid navigation is
// last-triggered-wins rather than first-resolved-wins and a superseded
// fetch can never surface stale data.
type PageState[T any] struct {
	mu         sync.Mutex
	generation uint64
	status     Status
	data       T
	errMsg     string
}

func NewPageState[T any]() *PageState[T] {
	return &PageState[T]{}
}

// Begin marks the page loading and returns the token the eventual result
// must present to Complete.
func (p *PageState[T]) Begin() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.generation++
	p.status = StatusLoading
	p.errMsg = ""
	return p.generation
}

// Complete applies a fetch result if gen is still the active activation.
// It reports whether the result was applied.
func (p *PageState[T]) Complete(gen uint64, data T, err error) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if gen != p.generation {
		return false
	}
	if err != nil {
		p.status = StatusError
		p.errMsg = err.Error()
		return true
	}
	p.status = StatusSuccess
	p.data = data
	return true
}

// Load runs fetch in the background for the current activation. A page
// issues exactly one fetch per activation; calling Load again supersedes
// the previous one.
func (p *PageState[T]) Load(ctx context.Context, fetch func(context.Context) (T, error)) {
	gen := p.Begin()
	go func() {
		data, err := fetch(ctx)
		p.Complete(gen, data, err)
	}()
}

// Snapshot returns the current status plus the data or error message that
// goes with it.
func (p *PageState[T]) Snapshot() (Status, T, string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.status, p.data, p.errMsg
}
