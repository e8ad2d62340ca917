package qecc

import (
	"time"

	"github.com/theapemachine/errnie"
)

// Worker runs trials handed to it by the pool.
type Worker struct {
	pool   *Pool
	trials chan Trial
}

func (w *Worker) run() {
	ctx := w.pool.ctx

	for {
		// Offer ourselves as available, then wait for the trial.
		select {
		case <-ctx.Done():
			return
		case w.pool.workers <- w.trials:
		}

		select {
		case <-ctx.Done():
			return
		case trial := <-w.trials:
			w.pool.space.Store(trial.ID, w.process(trial))
		}
	}
}

func (w *Worker) process(trial Trial) TrialResult {
	start := trial.StartTime
	if start.IsZero() {
		start = time.Now()
	}

	result, err := w.pool.pipeline.Run(trial.Code, trial.Basis, trial.Positions)
	if err != nil {
		errnie.Error(err)
	}

	out := TrialResult{
		TrialID:     trial.ID,
		Result:      result,
		Err:         err,
		Duration:    time.Since(start),
		CompletedAt: time.Now(),
	}
	w.pool.metrics.recordTrial(out)

	return out
}
