package qecc

import (
	"context"
	"errors"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"go.uber.org/goleak"
)

const testTimeout = 5 * time.Second

func TestPool(t *testing.T) {
	defer goleak.VerifyNone(t)

	Convey("Given a trial pool", t, func() {
		cfg := NewConfig()
		cfg.Workers = 3
		pool := NewPool(context.Background(), NewPipeline(), cfg)

		Reset(func() {
			pool.Close()
		})

		Convey("It should run a scheduled trial", func() {
			trial := NewTrial(ShorName, One, []int{0}, WithTrialID("worked-example"))

			select {
			case <-time.After(testTimeout):
				t.Fatal("timed out waiting for trial")
			case tr := <-pool.Schedule(trial):
				So(tr.Err, ShouldBeNil)
				So(tr.TrialID, ShouldEqual, "worked-example")
				So(tr.Result.Success, ShouldBeTrue)
				So(tr.Result.Syndrome.Ints(), ShouldResemble, []int{1, 0, 0})
			}

			So(pool.Metrics().Count(OutcomeCorrected), ShouldEqual, 1)
		})

		Convey("It should report failed runs without stopping", func() {
			bad := <-pool.Schedule(NewTrial("surface", Zero, nil))
			So(errors.Is(bad.Err, ErrUnsupportedCode), ShouldBeTrue)
			So(bad.Result, ShouldBeNil)

			good := <-pool.Schedule(NewTrial(SteaneName, Zero, []int{2}))
			So(good.Err, ShouldBeNil)
			So(good.Result.Success, ShouldBeTrue)

			exported := pool.Metrics().ExportMetrics()
			So(exported["trial_count"], ShouldEqual, int64(2))
			So(exported["failures"], ShouldEqual, int64(1))
			So(exported["worker_count"], ShouldEqual, 3)
		})

		Convey("It should fan out many trials", func() {
			pending := make([]chan TrialResult, 0, 100)
			for i := 0; i < 100; i++ {
				pending = append(pending, pool.Schedule(NewTrial(RepetitionName, Basis(i%2), []int{i % 3})))
			}
			for _, ch := range pending {
				tr := <-ch
				So(tr.Err, ShouldBeNil)
				So(tr.Result.Success, ShouldBeTrue)
			}

			m := pool.Metrics()
			So(m.Count(OutcomeCorrected), ShouldEqual, 100)
			So(m.ExportMetrics()["success_rate"], ShouldEqual, 1.0)
		})

		Convey("It should refuse work once closed", func() {
			pool.Close()
			tr := <-pool.Schedule(NewTrial(ShorName, Zero, nil))
			So(errors.Is(tr.Err, context.Canceled), ShouldBeTrue)
		})
	})
}

// gatedCode holds every Encode call until release is closed.
type gatedCode struct {
	Code
	entered chan struct{}
	release chan struct{}
}

const gatedName = "gated"

func newGatedCode() *gatedCode {
	return &gatedCode{
		Code:    NewRepetitionCode(),
		entered: make(chan struct{}, 1),
		release: make(chan struct{}),
	}
}

func (g *gatedCode) Name() string {
	return gatedName
}

func (g *gatedCode) Encode(basis Basis) (Block, error) {
	select {
	case g.entered <- struct{}{}:
	default:
	}
	<-g.release
	return g.Code.Encode(basis)
}

func newGatedPool(t *testing.T, gate *gatedCode, timeout time.Duration) *Pool {
	registry := NewRegistry()
	if err := registry.Register(gate); err != nil {
		t.Fatal(err)
	}

	cfg := NewConfig()
	cfg.Workers = 1
	cfg.SchedulingTimeout = timeout
	return NewPool(context.Background(), NewPipeline(WithRegistry(registry)), cfg)
}

func waitEntered(t *testing.T, gate *gatedCode) {
	select {
	case <-gate.entered:
	case <-time.After(testTimeout):
		t.Fatal("worker never picked up the gated trial")
	}
}

// newIdlePool builds a pool with no goroutines behind it, so nothing ever
// drains the trial queue.
func newIdlePool(queue int, timeout time.Duration) *Pool {
	ctx, cancel := context.WithCancel(context.Background())
	return &Pool{
		ctx:      ctx,
		cancel:   cancel,
		workers:  make(chan chan Trial),
		trials:   make(chan Trial, queue),
		space:    newResultSpace(),
		metrics:  NewMetrics(),
		pipeline: NewPipeline(),
		config:   &Config{SchedulingTimeout: timeout},
	}
}

func TestPoolScheduling(t *testing.T) {
	defer goleak.VerifyNone(t)

	Convey("Given a pool whose only worker is busy", t, func() {
		gate := newGatedCode()
		pool := newGatedPool(t, gate, 50*time.Millisecond)

		first := pool.Schedule(NewTrial(gatedName, One, []int{1}))
		waitEntered(t, gate)

		Convey("A second trial should fail once the scheduling timeout passes", func() {
			var second TrialResult
			select {
			case second = <-pool.Schedule(NewTrial(gatedName, Zero, nil)):
			case <-time.After(testTimeout):
				t.Fatal("second trial never settled")
			}

			So(second.Err, ShouldNotBeNil)
			So(second.Err.Error(), ShouldContainSubstring, "no available workers")
			So(second.Result, ShouldBeNil)
			So(pool.Metrics().ExportMetrics()["scheduling_failures"], ShouldEqual, int64(1))

			close(gate.release)
			tr := <-first
			So(tr.Err, ShouldBeNil)
			So(tr.Result.Success, ShouldBeTrue)

			pool.Close()
		})
	})

	Convey("Given a pool whose queue never drains", t, func() {
		Convey("Schedule should give up after the scheduling timeout", func() {
			pool := newIdlePool(0, 20*time.Millisecond)
			defer pool.Close()

			tr := <-pool.Schedule(NewTrial(ShorName, Zero, nil))
			So(errors.Is(tr.Err, context.DeadlineExceeded), ShouldBeTrue)
			So(pool.Metrics().ExportMetrics()["scheduling_failures"], ShouldEqual, int64(1))
			So(pool.space.Pending(), ShouldEqual, 0)
		})

		Convey("A pending trial ID should not be scheduled twice", func() {
			pool := newIdlePool(2, time.Second)

			first := pool.Schedule(NewTrial(ShorName, Zero, nil, WithTrialID("dup")))
			dup := <-pool.Schedule(NewTrial(ShorName, One, nil, WithTrialID("dup")))
			So(errors.Is(dup.Err, ErrInvalidInput), ShouldBeTrue)

			Convey("and closing should settle the queued one", func() {
				pool.Close()

				tr := <-first
				So(tr.TrialID, ShouldEqual, "dup")
				So(errors.Is(tr.Err, context.Canceled), ShouldBeTrue)
			})
		})
	})
}

func TestPoolCloseMidSweep(t *testing.T) {
	defer goleak.VerifyNone(t)

	Convey("Given a sweep running on a pool", t, func() {
		gate := newGatedCode()
		pool := newGatedPool(t, gate, testTimeout)

		type outcome struct {
			report *SweepReport
			err    error
		}
		done := make(chan outcome, 1)
		go func() {
			report, err := Sweep(context.Background(), pool, SweepConfig{Code: gatedName, Trials: 50, ErrorRate: 0.1})
			done <- outcome{report, err}
		}()
		waitEntered(t, gate)

		Convey("Closing the pool should end the sweep with an error", func() {
			closed := make(chan struct{})
			go func() {
				pool.Close()
				close(closed)
			}()

			for pool.ctx.Err() == nil {
				time.Sleep(time.Millisecond)
			}
			close(gate.release)

			select {
			case out := <-done:
				So(out.report, ShouldBeNil)
				So(errors.Is(out.err, context.Canceled), ShouldBeTrue)
			case <-time.After(testTimeout):
				t.Fatal("sweep still blocked after the pool closed")
			}

			<-closed
		})
	})
}

func TestResultSpace(t *testing.T) {
	Convey("Given a result space", t, func() {
		space := newResultSpace()

		Convey("A result stored before anyone waits should be delivered once", func() {
			space.Store("a", TrialResult{TrialID: "a"})
			So(space.Pending(), ShouldEqual, 1)

			tr := <-space.Await("a")
			So(tr.TrialID, ShouldEqual, "a")
			So(space.Pending(), ShouldEqual, 0)
		})

		Convey("A waiting channel should receive the result when it lands", func() {
			ch := space.Await("b")
			space.Store("b", TrialResult{TrialID: "b"})

			tr, ok := <-ch
			So(ok, ShouldBeTrue)
			So(tr.TrialID, ShouldEqual, "b")
			So(space.Pending(), ShouldEqual, 0)
		})

		Convey("An id can be claimed only while nothing else holds it", func() {
			ch, ok := space.claim("c")
			So(ok, ShouldBeTrue)

			_, ok = space.claim("c")
			So(ok, ShouldBeFalse)

			space.Store("c", TrialResult{TrialID: "c"})
			So((<-ch).TrialID, ShouldEqual, "c")

			_, ok = space.claim("c")
			So(ok, ShouldBeTrue)
		})
	})
}
