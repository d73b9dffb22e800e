// Package engine turns household inputs into footprint reports.
//
// An Engine binds an emission factor table and a national reference vector. It
// validates each household, runs the four calculators, compares the result with
// the national averages and attaches equivalencies and recommendations. Batches of
// households are estimated concurrently.
package engine

import (
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/rshade/footprint/internal/factors"
	"github.com/rshade/footprint/internal/footprint"
)

// Engine produces footprint reports. It is safe for concurrent use.
type Engine struct {
	table    *factors.Table
	national footprint.Breakdown
	treeKg   float64
	newID    func() string
	now      func() time.Time
	progress ProgressFunc
}

// ProgressFunc is called after each household of a batch completes.
type ProgressFunc func(done, total int)

// Option configures an Engine.
type Option func(*Engine)

// WithTreeAbsorption sets kg CO2 absorbed per tree per year.
func WithTreeAbsorption(kg float64) Option {
	return func(e *Engine) {
		e.treeKg = kg
	}
}

// WithIDGenerator replaces the ULID report ID generator.
func WithIDGenerator(fn func() string) Option {
	return func(e *Engine) {
		if fn != nil {
			e.newID = fn
		}
	}
}

// WithClock replaces time.Now for report timestamps.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// WithProgress registers a batch progress callback. It may be called from
// several goroutines.
func WithProgress(fn ProgressFunc) Option {
	return func(e *Engine) {
		e.progress = fn
	}
}

// New creates an Engine. A nil table selects factors.Default().
func New(table *factors.Table, national footprint.Breakdown, opts ...Option) *Engine {
	if table == nil {
		table = factors.Default()
	}
	e := &Engine{
		table:    table,
		national: national,
		treeKg:   footprint.TreeAbsorptionKgPerYear,
		newID:    func() string { return ulid.Make().String() },
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Table returns the factor table the engine calculates with.
func (e *Engine) Table() *factors.Table {
	return e.table
}

// National returns the monthly national reference vector.
func (e *Engine) National() footprint.Breakdown {
	return e.national
}
