package qecc

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/theapemachine/errnie"
)

/*
Pool runs independent trials on a fixed set of workers. Every trial is a
complete pipeline run with its own blocks and result, so workers share
nothing but the sealed registry behind the pipeline.
*/
type Pool struct {
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
	closeMu  sync.RWMutex
	workers  chan chan Trial
	trials   chan Trial
	space    *ResultSpace
	metrics  *Metrics
	pipeline *Pipeline
	config   *Config
}

// NewPool starts config.Workers workers. A nil pipeline or config falls back
// to the defaults.
func NewPool(ctx context.Context, pipeline *Pipeline, config *Config) *Pool {
	if pipeline == nil {
		pipeline = defaultPipeline
	}
	if config == nil {
		config = NewConfig()
	}

	workers := config.Workers
	if workers < 1 {
		workers = 1
	}

	ctx, cancel := context.WithCancel(ctx)
	p := &Pool{
		ctx:      ctx,
		cancel:   cancel,
		workers:  make(chan chan Trial, workers),
		trials:   make(chan Trial, workers*10),
		space:    newResultSpace(),
		metrics:  NewMetrics(),
		pipeline: pipeline,
		config:   config,
	}

	for i := 0; i < workers; i++ {
		p.startWorker()
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.manage()
	}()

	errnie.Info("started trial pool with %d workers", workers)
	return p
}

func (p *Pool) manage() {
	for {
		select {
		case <-p.ctx.Done():
			return
		case trial := <-p.trials:
			select {
			case <-p.ctx.Done():
				p.abandon(trial)
				return
			case workerChan := <-p.workers:
				select {
				case workerChan <- trial:
				case <-p.ctx.Done():
					p.abandon(trial)
					return
				}
			case <-time.After(p.schedulingTimeout()):
				err := fmt.Errorf("no available workers for trial %s", trial.ID)
				errnie.Error(err)
				p.metrics.recordSchedulingFailure()
				p.space.Store(trial.ID, TrialResult{TrialID: trial.ID, Err: err, CompletedAt: time.Now()})
			}
		}
	}
}

func (p *Pool) startWorker() {
	worker := &Worker{
		pool:   p,
		trials: make(chan Trial),
	}

	p.metrics.mu.Lock()
	p.metrics.WorkerCount++
	p.metrics.mu.Unlock()

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		worker.run()
	}()
}

/*
Schedule queues trial and returns the channel its result arrives on. Trial IDs
must be unique among pending trials; a duplicate fails with ErrInvalidInput.
Every returned channel receives exactly one result, also when the pool closes
before the trial runs.
*/
func (p *Pool) Schedule(trial Trial) chan TrialResult {
	p.closeMu.RLock()
	defer p.closeMu.RUnlock()

	if err := p.ctx.Err(); err != nil {
		return p.failed(trial, fmt.Errorf("trial pool closed: %w", err))
	}

	ch, ok := p.space.claim(trial.ID)
	if !ok {
		return p.failed(trial, fmt.Errorf("%w: trial %s is already pending", ErrInvalidInput, trial.ID))
	}

	ctx, cancel := context.WithTimeout(p.ctx, p.schedulingTimeout())
	defer cancel()

	if trial.StartTime.IsZero() {
		trial.StartTime = time.Now()
	}

	select {
	case p.trials <- trial:
	case <-ctx.Done():
		if p.ctx.Err() != nil {
			p.abandon(trial)
			break
		}
		p.metrics.recordSchedulingFailure()
		p.space.Store(trial.ID, TrialResult{
			TrialID:     trial.ID,
			Err:         fmt.Errorf("trial scheduling timeout: %w", ctx.Err()),
			CompletedAt: time.Now(),
		})
	}
	return ch
}

func (p *Pool) failed(trial Trial, err error) chan TrialResult {
	ch := make(chan TrialResult, 1)
	ch <- TrialResult{TrialID: trial.ID, Err: err, CompletedAt: time.Now()}
	close(ch)
	return ch
}

// abandon settles a trial the pool accepted but will never run.
func (p *Pool) abandon(trial Trial) {
	p.space.Store(trial.ID, TrialResult{
		TrialID:     trial.ID,
		Err:         fmt.Errorf("trial pool closed: %w", context.Canceled),
		CompletedAt: time.Now(),
	})
}

func (p *Pool) Metrics() *Metrics {
	return p.metrics
}

func (p *Pool) Pipeline() *Pipeline {
	return p.pipeline
}

func (p *Pool) schedulingTimeout() time.Duration {
	if p.config != nil && p.config.SchedulingTimeout > 0 {
		return p.config.SchedulingTimeout
	}
	return 5 * time.Second
}

// Close stops the workers and waits for every goroutine to exit. Trials still
// queued are settled with an error wrapping context.Canceled.
func (p *Pool) Close() {
	if p == nil {
		return
	}

	p.cancel()

	// Wait out any Schedule call that is mid-send.
	p.closeMu.Lock()
	defer p.closeMu.Unlock()

	p.wg.Wait()

	for {
		select {
		case trial := <-p.trials:
			p.abandon(trial)
		default:
			errnie.Info("trial pool closed")
			return
		}
	}
}
