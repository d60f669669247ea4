// internal/hal/hal.go
package hal

import (
	"github.com/tamzrod/washer-controller/internal/display"
	"github.com/tamzrod/washer-controller/internal/machine"
)

// Output is the hardware capability the control loop drives every tick.
// Implementations MUST NOT block: a tick has a one millisecond budget.
// Delivery failures stay behind this interface.
type Output interface {
	// SetLEDs drives L0..L3.
	SetLEDs(p machine.Pattern)

	// SetDuty sets the motor PWM duty (inverted convention, see machine.Duty).
	SetDuty(d machine.Duty)

	// SetDigit refreshes one display digit with a panel segment byte
	// (segments in bits 0..6, digit select in bit 7).
	SetDigit(pos display.Position, segments byte)
}
