// internal/cycle/observer.go
package cycle

import "github.com/tamzrod/washer-controller/internal/machine"

// Cause says why the controller returned to idle.
type Cause uint8

const (
	CauseCommand    Cause = iota // explicit reset command
	CauseDivergence              // live mode/level drifted from the committed snapshot
)

func (c Cause) String() string {
	switch c {
	case CauseCommand:
		return "command"
	case CauseDivergence:
		return "divergence"
	default:
		return "unknown"
	}
}

// BlockReason says why a start command was ignored.
type BlockReason uint8

const (
	BlockWaterError BlockReason = iota
	BlockRunning
)

func (b BlockReason) String() string {
	switch b {
	case BlockWaterError:
		return "water_level_error"
	case BlockRunning:
		return "already_running"
	default:
		return "unknown"
	}
}

// Observer receives controller events.
// Calls are made while the controller holds its lock: implementations
// MUST NOT call back into the controller.
type Observer interface {
	OnStart(committed machine.Inputs)
	OnBlockedStart(reason BlockReason)
	OnTransition(from, to machine.Phase, rinses uint8)
	OnReset(from machine.Phase, cause Cause)
}

// NopObserver ignores every event.
type NopObserver struct{}

func (NopObserver) OnStart(machine.Inputs) {}
func (NopObserver) OnBlockedStart(BlockReason) {}
func (NopObserver) OnTransition(machine.Phase, machine.Phase, uint8) {}
func (NopObserver) OnReset(machine.Phase, Cause) {}
