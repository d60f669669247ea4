// internal/display/codes.go
package display

import "github.com/tamzrod/washer-controller/internal/machine"

// Code is a 7-segment pattern. Bit layout: bit0=A .. bit6=G.
type Code uint8

// Segment codes. These values are wired to the panel and MUST NOT change.
//
//	                 G F E D C B A
//	Low              0 0 0 1 0 0 0 = 8
//	Medium           1 0 0 0 0 0 0 = 64
//	High             0 0 0 0 0 0 1 = 1
//	Error            1 1 1 1 0 0 1 = 121
//	Normal   "n"     1 0 1 0 1 0 0 = 84
//	Extended "E"     1 1 1 1 0 0 1 = 121
//	Finished "0"     0 1 1 1 1 1 1 = 63
const (
	CodeLow      Code = 8
	CodeHigh     Code = 1
	CodeMedium   Code = 64
	CodeError    Code = 121
	CodeNormal   Code = 84
	CodeExtended Code = 121
	CodeFinished Code = 63
)

// LevelCode maps a water level to its segment code.
func LevelCode(l machine.WaterLevel) Code {
	switch l {
	case machine.LevelLow:
		return CodeLow
	case machine.LevelHigh:
		return CodeHigh
	case machine.LevelMedium:
		return CodeMedium
	default:
		return CodeError
	}
}

// ModeCode maps an operational mode to its segment code.
func ModeCode(m machine.Mode) Code {
	if m == machine.ModeExtended {
		return CodeExtended
	}
	return CodeNormal
}
