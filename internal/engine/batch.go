package engine

import (
	"context"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rshade/footprint/internal/footprint"
	"github.com/rshade/footprint/internal/logging"
)

// DefaultConcurrency is used when EstimateBatch is given a non-positive limit.
const DefaultConcurrency = 4

// BatchItem is the outcome for one household of a batch. Exactly one of Report
// and Err is set.
type BatchItem struct {
	Index  int     `json:"index"`
	Name   string  `json:"name,omitempty"`
	Report *Report `json:"report,omitempty"`
	Err    error   `json:"-"`
}

// BatchSummary aggregates the successful items of a batch.
type BatchSummary struct {
	Count          int     `json:"count"`
	Failed         int     `json:"failed"`
	TotalAnnual    float64 `json:"total_annual"`
	MeanAnnual     float64 `json:"mean_annual"`
	NationalAnnual float64 `json:"national_annual"`
	AboveNational  int     `json:"above_national"`
}

// EstimateBatch estimates households concurrently, at most concurrency at a time.
//
// Results keep input order. A household that fails validation gets an item with
// Err set and does not stop the others. The returned error is non-nil only when
// ctx is cancelled.
func (e *Engine) EstimateBatch(
	ctx context.Context,
	households []footprint.Household,
	concurrency int,
) ([]BatchItem, error) {
	log := logging.FromContext(ctx)
	start := time.Now()

	if concurrency < 1 {
		concurrency = DefaultConcurrency
	}

	items := make([]BatchItem, len(households))
	var done atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, h := range households {
		i, h := i, h
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			report, err := e.Estimate(gctx, h)
			items[i] = BatchItem{Index: i, Name: h.Name, Report: report, Err: err}
			if e.progress != nil {
				e.progress(int(done.Add(1)), len(households))
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return items, err
	}
	if err := ctx.Err(); err != nil {
		return items, err
	}

	failed := 0
	for _, it := range items {
		if it.Err != nil {
			failed++
		}
	}

	log.Info().
		Ctx(ctx).
		Str("component", "engine").
		Str("operation", "estimate_batch").
		Int("households", len(households)).
		Int("failed", failed).
		Int("concurrency", concurrency).
		Int64("duration_ms", time.Since(start).Milliseconds()).
		Msg("batch estimate complete")

	return items, nil
}

// Summarize aggregates a batch against the engine's national reference.
func (e *Engine) Summarize(items []BatchItem) BatchSummary {
	s := BatchSummary{NationalAnnual: e.national.Annual().Total()}
	for _, it := range items {
		if it.Report == nil {
			s.Failed++
			continue
		}
		s.Count++
		s.TotalAnnual += it.AnnualTotal()
		if it.Report.AnnualTotal > s.NationalAnnual {
			s.AboveNational++
		}
	}
	if s.Count > 0 {
		s.MeanAnnual = s.TotalAnnual / float64(s.Count)
	}
	return s
}

// AnnualTotal returns the item's annual total, or zero for a failed item.
func (b BatchItem) AnnualTotal() float64 {
	if b.Report == nil {
		return 0
	}
	return b.Report.AnnualTotal
}
