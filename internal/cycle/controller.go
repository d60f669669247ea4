// internal/cycle/controller.go
package cycle

import (
	"sync"

	"github.com/tamzrod/washer-controller/internal/display"
	"github.com/tamzrod/washer-controller/internal/machine"
	"github.com/tamzrod/washer-controller/internal/pattern"
)

// Output is what the hardware layer applies after a tick or command.
type Output struct {
	Pattern machine.Pattern
	Duty    machine.Duty
	Digits  display.Digits
}

// Controller is the wash cycle state machine.
//
// Every mutation happens under mu, so Start, Reset and Tick never
// interleave and Snapshot never observes a half-applied tick.
type Controller struct {
	mu  sync.Mutex
	obs Observer

	phase   machine.Phase
	clock   uint32 // ms elapsed in the current phase
	rinses  uint8
	duty    machine.Duty
	pattern machine.Pattern

	committed machine.Inputs // captured at start
	live      machine.Inputs // latest sample

	cycles uint32 // completed cycles
}

// New returns an idle controller. obs may be nil.
func New(obs Observer) *Controller {
	if obs == nil {
		obs = NopObserver{}
	}
	return &Controller{
		obs:   obs,
		phase: machine.PhaseIdle,
		duty:  machine.DutyIdle,
	}
}

// Start begins a cycle with in as the latest sample. It is a no-op while
// the water level reads Error or while a cycle is already running.
// Reports whether a cycle started.
func (c *Controller) Start(in machine.Inputs) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.live = in

	if c.live.Level == machine.LevelError {
		c.obs.OnBlockedStart(BlockWaterError)
		return false
	}
	if c.phase.Running() {
		c.obs.OnBlockedStart(BlockRunning)
		return false
	}

	c.rinses = 0
	c.committed = c.live
	c.enter(machine.PhaseWashing)

	c.obs.OnStart(c.committed)
	return true
}

// Reset returns to idle from any state. Idempotent.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.reset(CauseCommand)
}

// Tick processes one periodic tick with the latest sampled inputs.
func (c *Controller) Tick(in machine.Inputs) Output {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.live = in

	if c.diverged() {
		c.reset(CauseDivergence)
		return c.output()
	}

	if !c.phase.Running() {
		return c.output()
	}

	c.clock++

	res := pattern.Evaluate(c.phase, c.clock, c.committed.Mode)
	c.pattern = res.Pattern
	c.duty = res.Duty

	if res.Complete {
		c.complete()
	}

	return c.output()
}

// Output returns the current output without advancing time.
func (c *Controller) Output() Output {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.output()
}

// diverged reports whether the operator changed mode or water level
// after the cycle was committed. Checked while running and while the
// finished result is still displayed.
func (c *Controller) diverged() bool {
	if c.phase == machine.PhaseIdle {
		return false
	}
	return c.live != c.committed
}

// complete applies the transition for the phase whose budget ran out.
func (c *Controller) complete() {
	from := c.phase

	switch from {
	case machine.PhaseWashing:
		c.enter(machine.PhaseRinsing)

	case machine.PhaseRinsing:
		c.rinses++
		if c.rinses < c.committed.Mode.RinseTarget() {
			// another pass, same phase
			c.enter(machine.PhaseRinsing)
		} else {
			c.enter(machine.PhaseSpinning)
		}

	case machine.PhaseSpinning:
		c.enter(machine.PhaseFinished)
		c.cycles++
	}

	c.obs.OnTransition(from, c.phase, c.rinses)
}

// enter switches phase and restarts the clock.
func (c *Controller) enter(p machine.Phase) {
	c.phase = p
	c.clock = 0

	res := pattern.Evaluate(p, 0, c.committed.Mode)
	c.pattern = res.Pattern
	c.duty = res.Duty
}

func (c *Controller) reset(cause Cause) {
	from := c.phase

	c.rinses = 0
	c.enter(machine.PhaseIdle)

	if from != machine.PhaseIdle {
		c.obs.OnReset(from, cause)
	}
}

func (c *Controller) output() Output {
	return Output{
		Pattern: c.pattern,
		Duty:    c.duty,
		Digits:  display.Render(c.live.Mode, c.live.Level, c.phase == machine.PhaseFinished),
	}
}
