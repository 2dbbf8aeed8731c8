// Package tracker implements the user-facing actions: calculating and
// recording estimates, heart-rate zones and goals, and assembling the
// history, insight and dashboard views.
package tracker

import (
	"time"

	"github.com/misterclayt0n/suren/internal/narrator"
	"github.com/misterclayt0n/suren/internal/storage"
)

type Tracker struct {
	st    *storage.Storage
	narr  *narrator.Narrator
	clock func() time.Time
}

type Option func(*Tracker)

// WithClock replaces time.Now, mostly for tests.
func WithClock(clock func() time.Time) Option {
	return func(t *Tracker) {
		t.clock = clock
	}
}

func New(st *storage.Storage, n *narrator.Narrator, opts ...Option) *Tracker {
	if n == nil {
		n = narrator.New(nil)
	}
	t := &Tracker{st: st, narr: n, clock: time.Now}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Tracker) now() time.Time {
	return t.clock().UTC()
}

func (t *Tracker) Storage() *storage.Storage {
	return t.st
}
