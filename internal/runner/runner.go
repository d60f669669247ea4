// internal/runner/runner.go
package runner

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/tamzrod/washer-controller/internal/cycle"
	"github.com/tamzrod/washer-controller/internal/display"
	"github.com/tamzrod/washer-controller/internal/hal"
	"github.com/tamzrod/washer-controller/internal/input"
	"github.com/tamzrod/washer-controller/internal/metrics"
	"github.com/tamzrod/washer-controller/internal/status"
	"github.com/tamzrod/washer-controller/internal/writer"
)

// Flusher delivers latched outputs to the hardware.
type Flusher interface {
	Flush() error
}

// Config holds loop timing.
type Config struct {
	Tick           time.Duration
	FlushInterval  time.Duration
	StatusInterval time.Duration
}

// Runner owns the control loop: it is the only caller of Tick, Start and
// Reset, so ticks and commands are serialized by construction.
type Runner struct {
	cfg     Config
	ctrl    *cycle.Controller
	sampler *input.Sampler
	out     hal.Output
	metric  *metrics.Metric
	log     *logrus.Entry

	digits display.Multiplexer
	health atomic.Uint32 // status.Health*
}

// New wires a controller to its sampler and output.
// metric may be nil.
func New(cfg Config, sampler *input.Sampler, out hal.Output, metric *metrics.Metric, log *logrus.Entry) (*Runner, error) {
	if cfg.Tick <= 0 {
		return nil, errors.New("runner: tick must be > 0")
	}
	if sampler == nil || out == nil {
		return nil, errors.New("runner: sampler and output required")
	}

	r := &Runner{
		cfg:     cfg,
		sampler: sampler,
		out:     out,
		metric:  metric,
		log:     log,
	}

	obs := fanout{newRunLog(log)}
	if metric != nil {
		obs = append(obs, metric)
	}
	r.ctrl = cycle.New(obs)
	r.health.Store(uint32(status.HealthUnknown))

	return r, nil
}

// Controller exposes the controller for read-only consumers.
func (r *Runner) Controller() *cycle.Controller {
	return r.ctrl
}

// Step performs one tick: sample, advance, drive outputs.
func (r *Runner) Step() {
	res := r.ctrl.Tick(r.sampler.Load())

	r.out.SetLEDs(res.Pattern)
	r.out.SetDuty(res.Duty)
	pos, seg := r.digits.Frame(res.Digits)
	r.out.SetDigit(pos, seg)
}

// Apply executes one operator command against the latest sample.
func (r *Runner) Apply(c input.Command) {
	r.log.WithFields(logrus.Fields{
		"event":   EventCommand,
		"command": c.String(),
	}).Debug("command received")

	switch c {
	case input.CommandStart:
		r.ctrl.Start(r.sampler.Load())
	case input.CommandReset:
		r.ctrl.Reset()
	}
}

// Run is the control loop. Ticks and poll results are handled by this one
// goroutine, in arrival order. Returns when ctx is done.
func (r *Runner) Run(ctx context.Context, polls <-chan input.Result) {
	ticker := time.NewTicker(r.cfg.Tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case res := <-polls:
			if res.Err != nil {
				r.ioError("poll", res.Err)
				continue
			}
			for _, c := range res.Commands {
				r.Apply(c)
			}

		case <-ticker.C:
			r.Step()
		}
	}
}

// FlushLoop delivers latched outputs every FlushInterval.
func (r *Runner) FlushLoop(ctx context.Context, f Flusher) {
	ticker := time.NewTicker(r.cfg.FlushInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := f.Flush(); err != nil {
				r.health.Store(uint32(status.HealthError))
				r.ioError("flush", err)
				continue
			}
			r.health.Store(uint32(status.HealthOK))
		}
	}
}

// StatusLoop publishes the status block every StatusInterval.
// It only reads snapshots; it never mutates the controller.
func (r *Runner) StatusLoop(ctx context.Context, sw writer.StatusWriter) {
	ticker := time.NewTicker(r.cfg.StatusInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			snap := r.Status()
			if r.metric != nil {
				r.metric.Observe(snap.Cycle)
			}
			if sw == nil {
				continue
			}
			if err := sw.WriteStatus(snap); err != nil {
				r.ioError("status", err)
			}
		}
	}
}

// Status assembles the status snapshot from one atomic controller read.
func (r *Runner) Status() status.Snapshot {
	return status.Snapshot{
		Health: uint16(r.health.Load()),
		Cycle:  r.ctrl.Snapshot(),
	}
}

func (r *Runner) ioError(stage string, err error) {
	if r.metric != nil {
		r.metric.IOError(stage)
	}
	r.log.WithFields(logrus.Fields{
		"event": EventIOError,
		"stage": stage,
	}).Errorf("%s", err)
}
