package replay

import (
	"io"

	"github.com/tutils/lxmseq/counter"
)

// replay options
type Options struct {
	iterations int
	takeLen    int
	gcEvery    int
	allocBytes int
	workers    int
	mode       Mode
	progress   io.Writer
	steps      counter.Counter
}

// replay option
type Option func(*Options)

// default replay options
var (
	DefaultIterations = 1000
	DefaultTakeLen    = 10
	DefaultWorkers    = 1
	DefaultMode       = ModeMemo
)

func newOptions(opts ...Option) *Options {
	opt := &Options{}
	for _, o := range opts {
		o(opt)
	}

	if opt.iterations <= 0 {
		opt.iterations = DefaultIterations
	}
	if opt.takeLen <= 0 {
		opt.takeLen = DefaultTakeLen
	}
	if opt.workers <= 0 {
		opt.workers = DefaultWorkers
	}
	if opt.workers > opt.iterations {
		opt.workers = opt.iterations
	}
	if opt.mode == "" {
		opt.mode = DefaultMode
	}

	return opt
}

// WithIterations sets how many times the prefix is re-read after the golden read.
func WithIterations(n int) Option {
	return func(opts *Options) {
		opts.iterations = n
	}
}

// WithTakeLen sets the prefix length.
func WithTakeLen(n int) Option {
	return func(opts *Options) {
		opts.takeLen = n
	}
}

// WithGCEvery forces a collection every n iterations per worker; 0 disables.
func WithGCEvery(n int) Option {
	return func(opts *Options) {
		opts.gcEvery = n
	}
}

// WithAllocPressure allocates n bytes of short-lived garbage per iteration.
func WithAllocPressure(n int) Option {
	return func(opts *Options) {
		opts.allocBytes = n
	}
}

// WithWorkers re-reads the same handle from n goroutines.
func WithWorkers(n int) Option {
	return func(opts *Options) {
		opts.workers = n
	}
}

// WithMode selects the sequence representation under test.
func WithMode(m Mode) Option {
	return func(opts *Options) {
		opts.mode = m
	}
}

// WithProgress enables periodic progress lines on w.
func WithProgress(w io.Writer) Option {
	return func(opts *Options) {
		opts.progress = w
	}
}

// WithStepCounter counts generator steps into c.
func WithStepCounter(c counter.Counter) Option {
	return func(opts *Options) {
		opts.steps = c
	}
}
