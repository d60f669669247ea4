// internal/status/snapshot.go
package status

import "github.com/tamzrod/washer-controller/internal/cycle"

// Snapshot represents exactly what the status writer is allowed to deliver.
// It contains no logic and no memory of the past beyond current state.
type Snapshot struct {
	Health uint16
	Cycle  cycle.Snapshot
}

// Encode converts a Snapshot into the live part of the status block
// (SlotLiveCount registers). Layout is protocol-locked.
// No IO. No side effects.
func Encode(s Snapshot) []uint16 {
	regs := make([]uint16, SlotLiveCount)
	c := s.Cycle

	regs[SlotHealthCode] = s.Health
	regs[SlotPhase] = uint16(c.Phase)
	regs[SlotPhaseClock] = saturate(c.Clock)
	regs[SlotRinses] = uint16(c.Rinses)
	regs[SlotDuty] = uint16(c.Duty)
	regs[SlotLEDs] = uint16(c.Pattern)
	regs[SlotLeftDigit] = uint16(c.Digits.Left)
	regs[SlotRightDigit] = uint16(c.Digits.Right)
	regs[SlotCommittedMode] = uint16(c.Committed.Mode)
	regs[SlotCommittedLevel] = uint16(c.Committed.Level)
	regs[SlotLiveInputs] = uint16(c.Live.Mode)<<8 | uint16(c.Live.Level)
	regs[SlotCycles] = saturate(c.Cycles)

	return regs
}

// HARD INVARIANT: counters MUST NOT wrap.
func saturate(v uint32) uint16 {
	if v > 65535 {
		return 65535
	}
	return uint16(v)
}
