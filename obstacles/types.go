package obstacles

import (
	"errors"
	"fmt"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/gridroute/cost"
	"github.com/katalvlaran/gridroute/gridgraph"
)

// Sentinel errors returned by drop parsing and the Scanner.
var (
	// ErrBadDrop indicates a drop line that is not "x,y" with integer coordinates.
	ErrBadDrop = errors.New("obstacles: malformed drop")

	// ErrDropOutOfBounds indicates a drop outside the grid.
	ErrDropOutOfBounds = errors.New("obstacles: drop out of bounds")

	// ErrNilGrid indicates that a nil base grid was passed.
	ErrNilGrid = errors.New("obstacles: grid is nil")

	// ErrEndpoint indicates a start or goal cell outside the grid or on a wall.
	ErrEndpoint = errors.New("obstacles: start or goal is not an open cell")

	// ErrUnreachable indicates the goal is cut off before any drop lands.
	ErrUnreachable = errors.New("obstacles: goal unreachable before the first drop")

	// ErrBadPrefix indicates a drop count outside [0, len(drops)].
	ErrBadPrefix = errors.New("obstacles: prefix out of range")

	// ErrBadWorkers indicates a worker count below one.
	ErrBadWorkers = errors.New("obstacles: workers must be at least 1")
)

// Options configures a Scanner.
type Options struct {
	Model   cost.Model  // Transition pricing; cost.Steps() by default
	Workers int         // Concurrent probes in FirstBlocking; 1 means sequential
	Log     logr.Logger // Scanner logger, also handed to every search

	err error
}

// Option represents a functional option for configuring a Scanner.
type Option func(*Options)

// DefaultOptions returns sequential scanning with step-count pricing and a
// discarding logger.
func DefaultOptions() Options {
	return Options{
		Model:   cost.Steps(),
		Workers: 1,
		Log:     logr.Discard(),
	}
}

// WithModel sets the cost model used by CostAfter and the sequential scan.
func WithModel(m cost.Model) Option {
	return func(o *Options) {
		if m == nil {
			o.err = cost.ErrNilModel
			return
		}
		o.Model = m
	}
}

// WithWorkers enables the parallel bisection in FirstBlocking with up to n
// concurrent probes. n == 1 keeps the drop-by-drop scan.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: %d", ErrBadWorkers, n)
			return
		}
		o.Workers = n
	}
}

// WithLogger sets the logger.
func WithLogger(log logr.Logger) Option {
	return func(o *Options) {
		o.Log = log
	}
}

// Blocking identifies the first drop after which the goal is unreachable.
type Blocking struct {
	Index int            // zero-based position in the drop list
	Drop  gridgraph.Cell // the drop itself
}

// String formats b as "#index x,y".
func (b Blocking) String() string {
	return fmt.Sprintf("#%d %s", b.Index, Format(b.Drop))
}
