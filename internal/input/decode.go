// internal/input/decode.go
package input

import (
	"errors"

	"github.com/tamzrod/washer-controller/internal/machine"
)

// Discrete input layout of the switch/button block, one bit each.
const (
	BitS0 = 0 // water level, low bit
	BitS1 = 1 // water level, high bit
	BitB0 = 2 // start button
	BitB1 = 3 // reset button
	BitS2 = 4 // operational mode

	// BlockSize is the number of discrete inputs read per poll.
	BlockSize = 5
)

// Levels is one decoded poll of the panel.
type Levels struct {
	Inputs machine.Inputs
	Start  bool // raw button line level
	Reset  bool // raw button line level
}

// Decode unpacks a discrete-input block.
func Decode(bits []bool) (Levels, error) {
	if len(bits) < BlockSize {
		return Levels{}, errors.New("input: short discrete input block")
	}

	var lvl machine.WaterLevel
	if bits[BitS0] {
		lvl |= 1
	}
	if bits[BitS1] {
		lvl |= 2
	}

	mode := machine.ModeNormal
	if bits[BitS2] {
		mode = machine.ModeExtended
	}

	return Levels{
		Inputs: machine.Inputs{Mode: mode, Level: lvl},
		Start:  bits[BitB0],
		Reset:  bits[BitB1],
	}, nil
}
