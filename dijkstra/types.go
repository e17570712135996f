package dijkstra

import (
	"errors"
	"log/slog"

	"github.com/katalvlaran/dijkstep/internal/logging"
	"github.com/katalvlaran/dijkstep/steps"
)

// Sentinel errors returned by FindShortestPath.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNegativeWeight indicates a negative edge weight under WithStrictWeights.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")
)

// Options configures a run.
//
// Narrator     – produces step descriptions (default EnglishNarrator).
// Observer     – optional hook receiving a copy of every recorded step.
// StrictWeight – reject negative weights before running.
// Logger       – structured logger (default no-op).
type Options struct {
	Narrator     Narrator
	Observer     func(steps.Step)
	StrictWeight bool
	Logger       *slog.Logger
}

// Option represents a functional option for configuring FindShortestPath.
type Option func(*Options)

// WithNarrator replaces the step descriptions. Panics on a nil narrator.
func WithNarrator(n Narrator) Option {
	if n == nil {
		panic("dijkstra: WithNarrator(nil)")
	}
	return func(o *Options) {
		o.Narrator = n
	}
}

// WithObserver registers fn to be called after every recorded step.
func WithObserver(fn func(steps.Step)) Option {
	return func(o *Options) {
		o.Observer = fn
	}
}

// WithStrictWeights makes FindShortestPath fail with ErrNegativeWeight when
// any edge weight is negative.
func WithStrictWeights() Option {
	return func(o *Options) {
		o.StrictWeight = true
	}
}

// WithLogger sets the structured logger used for run diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns the defaults: English narration, no observer,
// negative weights accepted, no-op logger.
func DefaultOptions() Options {
	return Options{
		Narrator: EnglishNarrator{},
		Logger:   logging.NewNop(),
	}
}
