// internal/machine/types.go
package machine

import "fmt"

// Mode selects the cycle variant.
// Normal:   Wash > Rinse > Spin
// Extended: Wash > Rinse > Rinse > Spin
type Mode uint8

const (
	ModeNormal   Mode = 0
	ModeExtended Mode = 1
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeExtended:
		return "extended"
	default:
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
}

// RinseTarget is the number of rinse passes the mode requires.
func (m Mode) RinseTarget() uint8 {
	if m == ModeExtended {
		return 2
	}
	return 1
}

// WaterLevel is the fill-level selector.
// Values follow the raw switch encoding: S0 | S1<<1.
type WaterLevel uint8

const (
	LevelLow    WaterLevel = 0
	LevelHigh   WaterLevel = 1
	LevelMedium WaterLevel = 2
	LevelError  WaterLevel = 3
)

func (l WaterLevel) String() string {
	switch l {
	case LevelLow:
		return "low"
	case LevelHigh:
		return "high"
	case LevelMedium:
		return "medium"
	case LevelError:
		return "error"
	default:
		return fmt.Sprintf("level(%d)", uint8(l))
	}
}

// Phase is the macro-state of the cycle.
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseWashing
	PhaseRinsing
	PhaseSpinning
	PhaseFinished
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseWashing:
		return "washing"
	case PhaseRinsing:
		return "rinsing"
	case PhaseSpinning:
		return "spinning"
	case PhaseFinished:
		return "finished"
	default:
		return fmt.Sprintf("phase(%d)", uint8(p))
	}
}

// Running reports whether the phase advances the clock.
func (p Phase) Running() bool {
	return p == PhaseWashing || p == PhaseRinsing || p == PhaseSpinning
}

// Inputs is one sample of the operator-facing selectors.
type Inputs struct {
	Mode  Mode
	Level WaterLevel
}
