// internal/pattern/sequencer.go
package pattern

import "github.com/tamzrod/washer-controller/internal/machine"

// Phase schedules. Each covers [0, PhaseLength).
var (
	// Washing: forward sweep twice, then all four LEDs on.
	Washing = join(
		sweep(0, 350, 100, forward),
		sweep(passSpan, 350, 100, forward),
		hold(PhaseLength, machine.PatternAll),
	)

	// Rinsing: reverse sweep twice, then 500 ms blink.
	Rinsing = join(
		sweep(0, 350, 100, reverse),
		sweep(passSpan, 350, 100, reverse),
		blink(2*passSpan, PhaseLength, 500),
	)

	// Spinning: 375 ms sweep out and back, then 250 ms blink.
	Spinning = join(
		sweep(0, 375, 150, reverse),
		sweep(passSpan, 375, 150, forward),
		blink(2*passSpan, PhaseLength, 250),
	)
)

// Result is the sequencer output for one instant.
type Result struct {
	Pattern  machine.Pattern
	Duty     machine.Duty
	Complete bool
}

// Evaluate maps (phase, elapsed, mode) to the output for that instant.
// Elapsed at or beyond PhaseLength yields all LEDs off and Complete.
// Mode does not change the shape; it only matters to the transition
// the controller applies afterwards.
func Evaluate(phase machine.Phase, elapsed uint32, mode machine.Mode) Result {
	s := ScheduleFor(phase)
	if s == nil {
		return Result{Pattern: machine.PatternOff, Duty: machine.DutyFor(phase)}
	}

	p, ok := s.Lookup(elapsed)
	return Result{
		Pattern:  p,
		Duty:     machine.DutyFor(phase),
		Complete: !ok,
	}
}

// ScheduleFor returns the window table of a running phase, nil otherwise.
func ScheduleFor(phase machine.Phase) Schedule {
	switch phase {
	case machine.PhaseWashing:
		return Washing
	case machine.PhaseRinsing:
		return Rinsing
	case machine.PhaseSpinning:
		return Spinning
	default:
		return nil
	}
}
