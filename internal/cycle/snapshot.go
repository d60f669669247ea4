// internal/cycle/snapshot.go
package cycle

import (
	"github.com/tamzrod/washer-controller/internal/display"
	"github.com/tamzrod/washer-controller/internal/machine"
)

// Snapshot is a consistent copy of the controller state.
type Snapshot struct {
	Phase     machine.Phase
	Clock     uint32
	Rinses    uint8
	Duty      machine.Duty
	Pattern   machine.Pattern
	Digits    display.Digits
	Committed machine.Inputs
	Live      machine.Inputs
	Cycles    uint32
}

// Running reports whether a cycle is in progress.
func (s Snapshot) Running() bool { return s.Phase.Running() }

// Finished reports whether the last cycle completed and has not been cleared.
func (s Snapshot) Finished() bool { return s.Phase == machine.PhaseFinished }

// Snapshot copies every field under the controller lock.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Snapshot{
		Phase:     c.phase,
		Clock:     c.clock,
		Rinses:    c.rinses,
		Duty:      c.duty,
		Pattern:   c.pattern,
		Digits:    c.output().Digits,
		Committed: c.committed,
		Live:      c.live,
		Cycles:    c.cycles,
	}
}
