// internal/display/render.go
package display

import "github.com/tamzrod/washer-controller/internal/machine"

// Position selects one physical digit.
type Position uint8

const (
	Right Position = 0
	Left  Position = 1
)

func (p Position) String() string {
	if p == Left {
		return "left"
	}
	return "right"
}

// selectBit is the common-cathode select line carried in the segment byte.
const selectBit = 1 << 7

// Digits is the content of both digits for one instant.
type Digits struct {
	Left  Code
	Right Code
}

// At returns the code shown at a position.
func (d Digits) At(p Position) Code {
	if p == Left {
		return d.Left
	}
	return d.Right
}

// Render is stateless: mode on the left, water level on the right,
// "0" on both once the cycle has finished.
func Render(mode machine.Mode, level machine.WaterLevel, finished bool) Digits {
	if finished {
		return Digits{Left: CodeFinished, Right: CodeFinished}
	}
	return Digits{
		Left:  ModeCode(mode),
		Right: LevelCode(level),
	}
}

// Segments encodes the byte driven onto the panel port for one digit:
// segments in bits 0..6, select line in bit 7 (1 = left).
func Segments(p Position, c Code) byte {
	b := byte(c) &^ selectBit
	if p == Left {
		b |= selectBit
	}
	return b
}

// Multiplexer owns the digit-select toggle.
// Zero value starts on the right digit; the first Next selects the left one.
type Multiplexer struct {
	sel Position
}

// Next flips the selected digit. Call exactly once per tick.
func (m *Multiplexer) Next() Position {
	m.sel ^= 1
	return m.sel
}

// Selected returns the digit currently being refreshed.
func (m *Multiplexer) Selected() Position {
	return m.sel
}

// Frame advances the toggle and returns the position and segment byte
// to refresh this tick.
func (m *Multiplexer) Frame(d Digits) (Position, byte) {
	p := m.Next()
	return p, Segments(p, d.At(p))
}
