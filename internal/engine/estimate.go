package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rshade/footprint/internal/footprint"
	"github.com/rshade/footprint/internal/greenops"
	"github.com/rshade/footprint/internal/logging"
)

// Estimate validates a household and computes its report.
//
// Validation failures wrap footprint.ErrInvalidInput; an unknown diet type
// returns factors.ErrInvalidCategory.
func (e *Engine) Estimate(ctx context.Context, h footprint.Household) (*Report, error) {
	log := logging.FromContext(ctx)
	start := time.Now()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	log.Debug().
		Ctx(ctx).
		Str("component", "engine").
		Str("operation", "estimate").
		Str("household", h.Name).
		Str("region", h.Home.Region).
		Msg("starting footprint estimate")

	if err := footprint.Validate(h); err != nil {
		log.Debug().Ctx(ctx).Str("component", "engine").Err(err).Msg("household rejected")
		return nil, err
	}

	res, err := footprint.Calculate(e.table, h)
	if err != nil {
		return nil, fmt.Errorf("calculating footprint: %w", err)
	}

	cmp := footprint.CompareWithAbsorption(res.Monthly, e.national, e.treeKg)

	eq, err := greenops.CalculateWithTreeRate(
		greenops.CarbonInput{Value: cmp.UserAnnualTotal, Unit: "kg"}, e.treeKg)
	if err != nil && !errors.Is(err, greenops.ErrCalculationOverflow) {
		return nil, fmt.Errorf("calculating equivalencies: %w", err)
	}
	if err != nil {
		log.Warn().Ctx(ctx).Str("component", "engine").Err(err).Msg("equivalencies skipped")
	}

	report := &Report{
		ID:              e.newID(),
		Name:            h.Name,
		GeneratedAt:     e.now().UTC(),
		FactorTable:     e.table.Name(),
		FactorVersion:   e.table.Version(),
		Input:           h,
		Result:          res,
		MonthlyTotal:    res.Monthly.Total(),
		AnnualTotal:     cmp.UserAnnualTotal,
		Comparison:      cmp,
		Equivalencies:   eq,
		Recommendations: footprint.Recommend(res.Monthly, e.national),
	}
	if h.Members > 0 {
		report.PerCapitaAnnual = report.AnnualTotal / float64(h.Members)
	}

	if !e.table.HasRegion(h.Home.Region) && h.Home.Region != "" {
		log.Debug().
			Ctx(ctx).
			Str("component", "engine").
			Str("region", h.Home.Region).
			Msg("region not in factor table, using default grid factor")
	}

	log.Info().
		Ctx(ctx).
		Str("component", "engine").
		Str("operation", "estimate").
		Str("report_id", report.ID).
		Float64("monthly_total", report.MonthlyTotal).
		Float64("annual_total", report.AnnualTotal).
		Int64("duration_ms", time.Since(start).Milliseconds()).
		Msg("footprint estimate complete")

	return report, nil
}
