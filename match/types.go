// Package match: options, defaults, and sentinel errors.
package match

import (
	"errors"

	"github.com/charmbracelet/log"
)

// Defaults for the configuration surface.
const (
	// DefaultLimit caps how many bijections a search collects before the
	// silent abort. Large enough to be invisible for typical queries.
	DefaultLimit = 1 << 20

	// DefaultCheckEvery is the progress-observation interval in matches.
	DefaultCheckEvery = 1000
)

// Sentinel errors for matcher construction.
var (
	// ErrGraphNil is returned by NewMatcher when the query or data graph
	// is nil.
	ErrGraphNil = errors.New("match: graph is nil")

	// ErrOptionViolation is returned by NewMatcher when an option carries
	// a nonsensical value (limit or check interval below 1).
	ErrOptionViolation = errors.New("match: option violation")
)

// Option configures optional behavior of a Matcher.
// Use with NewMatcher(q, g, opts...).
type Option func(*MatchOptions)

// MatchOptions holds the configurable parameters of a search.
type MatchOptions struct {
	// Limit is the hard cap on collected bijections. Once reached, the
	// search aborts mid-loop and the partial set is returned. Must be >= 1.
	Limit int

	// CheckEvery is the progress interval: OnProgress fires after every
	// CheckEvery-th collected match. Must be >= 1.
	CheckEvery int

	// OnProgress, if non-nil, receives the running match count at each
	// interval. Purely observational; it cannot alter the search.
	OnProgress func(found int)
}

// DefaultOptions returns a MatchOptions with:
//   - Limit = DefaultLimit
//   - CheckEvery = DefaultCheckEvery
//   - no progress observer
func DefaultOptions() MatchOptions {
	return MatchOptions{
		Limit:      DefaultLimit,
		CheckEvery: DefaultCheckEvery,
		OnProgress: nil,
	}
}

// WithLimit returns an Option that caps the number of collected
// bijections at n.
func WithLimit(n int) Option {
	return func(o *MatchOptions) { o.Limit = n }
}

// WithCheckEvery returns an Option that sets the progress interval to n
// matches.
func WithCheckEvery(n int) Option {
	return func(o *MatchOptions) { o.CheckEvery = n }
}

// WithOnProgress returns an Option that installs fn as the progress
// observer.
func WithOnProgress(fn func(found int)) Option {
	return func(o *MatchOptions) { o.OnProgress = fn }
}

// WithProgressLogger returns an Option that reports progress through l
// at info level. A nil logger has no effect.
func WithProgressLogger(l *log.Logger) Option {
	return func(o *MatchOptions) {
		if l != nil {
			o.OnProgress = func(found int) {
				l.Info("matching progress", "found", found)
			}
		}
	}
}
