package engine

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rshade/footprint/internal/footprint"
	"github.com/rshade/footprint/internal/logging"
)

// FieldChange records one overridden household field.
type FieldChange struct {
	Field         string `json:"field"`
	OriginalValue string `json:"original_value"`
	NewValue      string `json:"new_value"`
}

// CategoryDelta is the monthly change of one category between baseline and modified.
// Positive means an increase.
type CategoryDelta struct {
	Category footprint.Category `json:"category"`
	Baseline float64            `json:"baseline"`
	Modified float64            `json:"modified"`
	Change   float64            `json:"change"`
}

// WhatIfResult compares a household with a copy that has field overrides applied.
type WhatIfResult struct {
	Baseline *Report         `json:"baseline"`
	Modified *Report         `json:"modified"`
	Changes  []FieldChange   `json:"changes"`
	Deltas   []CategoryDelta `json:"deltas"`

	// TotalChange is the monthly kg CO2e difference, modified minus baseline.
	TotalChange float64 `json:"total_change"`
}

// WhatIf estimates base and a modified copy with overrides applied, keyed by
// dotted field path (see footprint.Fields). The base household is not mutated.
func (e *Engine) WhatIf(
	ctx context.Context,
	base footprint.Household,
	overrides map[string]string,
) (*WhatIfResult, error) {
	log := logging.FromContext(ctx)
	start := time.Now()

	log.Debug().
		Ctx(ctx).
		Str("component", "engine").
		Str("operation", "what_if").
		Int("override_count", len(overrides)).
		Msg("starting what-if estimate")

	baseline, err := e.Estimate(ctx, base)
	if err != nil {
		return nil, fmt.Errorf("baseline estimate: %w", err)
	}

	// Household holds only values, so assignment is a full copy.
	modifiedInput := base
	paths := make([]string, 0, len(overrides))
	for p := range overrides {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	changes := make([]FieldChange, 0, len(paths))
	for _, p := range paths {
		field, ok := footprint.LookupField(p)
		if !ok {
			return nil, fmt.Errorf("%w: unknown field %q", footprint.ErrInvalidInput, p)
		}
		original := field.Get(modifiedInput)
		if err = footprint.SetField(&modifiedInput, p, overrides[p]); err != nil {
			return nil, err
		}
		changes = append(changes, FieldChange{
			Field:         field.Path,
			OriginalValue: original,
			NewValue:      field.Get(modifiedInput),
		})
	}

	modified, err := e.Estimate(ctx, modifiedInput)
	if err != nil {
		return nil, fmt.Errorf("modified estimate: %w", err)
	}

	deltas := make([]CategoryDelta, 0, len(footprint.Categories()))
	for _, c := range footprint.Categories() {
		b := baseline.Result.Monthly.Value(c)
		m := modified.Result.Monthly.Value(c)
		deltas = append(deltas, CategoryDelta{Category: c, Baseline: b, Modified: m, Change: m - b})
	}

	result := &WhatIfResult{
		Baseline:    baseline,
		Modified:    modified,
		Changes:     changes,
		Deltas:      deltas,
		TotalChange: modified.MonthlyTotal - baseline.MonthlyTotal,
	}

	log.Info().
		Ctx(ctx).
		Str("component", "engine").
		Str("operation", "what_if").
		Float64("total_change", result.TotalChange).
		Int64("duration_ms", time.Since(start).Milliseconds()).
		Msg("what-if estimate complete")

	return result, nil
}
