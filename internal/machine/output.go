// internal/machine/output.go
package machine

// Pattern is the LED bit mask. Bit n drives LED Ln.
type Pattern uint8

// Single progress LEDs, L0 leftmost.
const (
	LED0 Pattern = 1 << 0
	LED1 Pattern = 1 << 1
	LED2 Pattern = 1 << 2
	LED3 Pattern = 1 << 3
)

// Whole-bar patterns.
const (
	PatternOff Pattern = 0x0
	PatternAll Pattern = 0xF
)

// Bits expands the mask into LED0..LED3 order.
func (p Pattern) Bits() []bool {
	out := make([]bool, 4)
	for i := range out {
		out[i] = p&(1<<uint(i)) != 0
	}
	return out
}

// Duty is the commanded drive strength in percent, stored INVERTED:
// the PWM output runs in inverting mode, so the value is the fraction of
// the period the pin is held low. 100 means minimum drive.
type Duty uint8

// Stored duty per phase. Idle and Finished share DutyIdle.
const (
	DutyIdle     Duty = 100 // 0% drive
	DutyWashing  Duty = 90  // 10% drive
	DutyRinsing  Duty = 50  // 50% drive
	DutySpinning Duty = 10  // 90% drive
)

// DutyFor returns the stored duty for a phase.
func DutyFor(p Phase) Duty {
	switch p {
	case PhaseWashing:
		return DutyWashing
	case PhaseRinsing:
		return DutyRinsing
	case PhaseSpinning:
		return DutySpinning
	default:
		return DutyIdle
	}
}

// Drive is the effective motor drive in percent.
func (d Duty) Drive() uint8 {
	if d > 100 {
		return 0
	}
	return 100 - uint8(d)
}

// Compare is the 8-bit PWM compare value for an inverting-mode timer.
func (d Duty) Compare() uint8 {
	if d >= 100 {
		return 255
	}
	return uint8(uint16(d) * 255 / 100)
}
