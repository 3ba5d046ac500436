package repository

import (
	"math/rand/v2"
	"time"
)

// Option customises a storage backend
type Option func(*options)

type options struct {
	now  func() time.Time
	intn func(n int) int
}

func defaultOptions() options {
	return options{
		now:  time.Now,
		intn: rand.IntN,
	}
}

// WithClock sets the source of server-assigned timestamps
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// WithRandom sets the random source used for generated manifest codes.
// intn must return a value in [0, n).
func WithRandom(intn func(n int) int) Option {
	return func(o *options) {
		o.intn = intn
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
