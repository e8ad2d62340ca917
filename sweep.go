package qecc

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/theapemachine/errnie"
	"golang.org/x/sync/errgroup"
)

// SweepConfig describes a Monte-Carlo estimate of a code's behaviour under
// independent bit flips.
type SweepConfig struct {
	Code      string
	Basis     Basis
	Trials    int
	ErrorRate float64 // probability that any single bit flips
	Seed      uint64
}

// SweepReport tallies the outcomes of a sweep.
type SweepReport struct {
	Code       string  `json:"code" yaml:"code"`
	Basis      string  `json:"basis" yaml:"basis"`
	Trials     int     `json:"trials" yaml:"trials"`
	ErrorRate  float64 `json:"error_rate" yaml:"error_rate"`
	Clean      int     `json:"clean" yaml:"clean"`
	Corrected  int     `json:"corrected" yaml:"corrected"`
	Detected   int     `json:"detected" yaml:"detected"`
	Undetected int     `json:"undetected" yaml:"undetected"`

	// LogicalErrorRate is the share of trials that ended with a block that
	// differs from the original, flagged or not.
	LogicalErrorRate float64 `json:"logical_error_rate" yaml:"logical_error_rate"`
}

func (r *SweepReport) String() string {
	return fmt.Sprintf(
		"%-10s p=%.3f trials=%d clean=%d corrected=%d detected=%d undetected=%d logical=%.4f",
		r.Code, r.ErrorRate, r.Trials, r.Clean, r.Corrected, r.Detected, r.Undetected, r.LogicalErrorRate,
	)
}

// SamplePositions draws the bits that flip in one trial.
func SamplePositions(rng *rand.Rand, blockLen int, rate float64) []int {
	positions := make([]int, 0)
	for i := 0; i < blockLen; i++ {
		if rng.Float64() < rate {
			positions = append(positions, i)
		}
	}
	return positions
}

/*
Sweep schedules cfg.Trials runs on pool, each with error positions drawn from
a generator seeded by cfg.Seed, and tallies their outcomes. The same seed
always produces the same report.
*/
func Sweep(ctx context.Context, pool *Pool, cfg SweepConfig) (*SweepReport, error) {
	code, err := pool.Pipeline().Registry().Lookup(cfg.Code)
	if err != nil {
		return nil, err
	}
	if !cfg.Basis.Valid() {
		return nil, fmt.Errorf("%w: sweep basis %v", ErrInvalidInput, cfg.Basis)
	}
	if cfg.Trials < 0 || cfg.ErrorRate < 0 || cfg.ErrorRate > 1 {
		return nil, fmt.Errorf(
			"%w: sweep needs trials >= 0 and rate in [0, 1], got %d and %v",
			ErrInvalidInput, cfg.Trials, cfg.ErrorRate,
		)
	}

	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))

	pending := make([]chan TrialResult, 0, cfg.Trials)
	for i := 0; i < cfg.Trials; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		positions := SamplePositions(rng, code.BlockLen(), cfg.ErrorRate)
		trial := NewTrial(cfg.Code, cfg.Basis, positions)
		pending = append(pending, pool.Schedule(trial))
	}

	report := &SweepReport{
		Code:      cfg.Code,
		Basis:     cfg.Basis.String(),
		Trials:    cfg.Trials,
		ErrorRate: cfg.ErrorRate,
	}

	for _, ch := range pending {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case tr := <-ch:
			if tr.Err != nil {
				return nil, fmt.Errorf("sweep %s: trial %s: %w", cfg.Code, tr.TrialID, tr.Err)
			}
			switch tr.Result.Outcome() {
			case OutcomeClean:
				report.Clean++
			case OutcomeCorrected:
				report.Corrected++
			case OutcomeDetected:
				report.Detected++
			case OutcomeUndetected:
				report.Undetected++
			}
		}
	}

	if cfg.Trials > 0 {
		report.LogicalErrorRate = float64(report.Detected+report.Undetected) / float64(cfg.Trials)
	}

	errnie.Info("sweep %s finished: %s", cfg.Code, report)
	return report, nil
}

// SweepAll runs one sweep per config concurrently on the same pool. Reports
// come back in the order of configs; the first failure stops the others from
// scheduling further trials.
func SweepAll(ctx context.Context, pool *Pool, configs []SweepConfig) ([]*SweepReport, error) {
	reports := make([]*SweepReport, len(configs))

	g, gctx := errgroup.WithContext(ctx)
	for i, cfg := range configs {
		g.Go(func() error {
			report, err := Sweep(gctx, pool, cfg)
			if err != nil {
				return err
			}
			reports[i] = report
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}
