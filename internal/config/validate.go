// internal/config/validate.go
package config

import (
	"fmt"

	"github.com/tamzrod/washer-controller/internal/status"
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
// Zero values of optional fields are accepted; Normalize fills them.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config: nil")
	}

	// ------------------------------------------------------------
	// CONTROLLER
	// ------------------------------------------------------------

	c := cfg.Controller
	if c.TickMs < 0 || c.TickMs > 1000 {
		return fmt.Errorf("controller.tick_ms must be within 1..1000, got %d", c.TickMs)
	}
	switch c.ButtonEdge {
	case "", EdgeFalling, EdgeRising:
	default:
		return fmt.Errorf("controller.button_edge %q: want %q or %q", c.ButtonEdge, EdgeFalling, EdgeRising)
	}

	// ------------------------------------------------------------
	// PANEL I/O
	// ------------------------------------------------------------

	io := cfg.IO
	if io.Endpoint == "" {
		return fmt.Errorf("io.endpoint is required")
	}
	for name, v := range map[string]int{
		"io.timeout_ms":        io.TimeoutMs,
		"io.poll_interval_ms":  io.PollIntervalMs,
		"io.flush_interval_ms": io.FlushIntervalMs,
	} {
		if v < 0 {
			return fmt.Errorf("%s must be > 0, got %d", name, v)
		}
	}

	// holding register spans on the panel unit
	type span struct {
		start uint32
		end   uint32 // inclusive
		owner string
	}
	regs := []span{
		{uint32(io.Outputs.DutyAddress), uint32(io.Outputs.DutyAddress) + DutyRegs - 1, "io.outputs.duty_address"},
		{uint32(io.Outputs.DigitsAddress), uint32(io.Outputs.DigitsAddress) + DigitRegs - 1, "io.outputs.digits_address"},
	}

	// ------------------------------------------------------------
	// STATUS BLOCK (OPT-IN)
	// ------------------------------------------------------------

	if s := cfg.Status; s != nil {
		switch s.Protocol {
		case "", ProtocolModbus, ProtocolIngest:
		default:
			return fmt.Errorf("status.protocol %q: want %q or %q", s.Protocol, ProtocolModbus, ProtocolIngest)
		}
		if s.Endpoint == "" {
			return fmt.Errorf("status.endpoint is required when status is set")
		}
		if s.IntervalMs < 0 {
			return fmt.Errorf("status.interval_ms must be > 0, got %d", s.IntervalMs)
		}
		for i := 0; i < len(s.DeviceName); i++ {
			if s.DeviceName[i] > 0x7F {
				return fmt.Errorf("status.device_name must contain ASCII characters only")
			}
		}

		// the status block shares memory with the panel only on the same unit
		if s.Endpoint == io.Endpoint && s.UnitID == io.UnitID {
			base := uint32(s.Slot) * status.SlotsPerDevice
			regs = append(regs, span{base, base + status.SlotsPerDevice - 1, "status.slot"})
		}
	}

	for _, r := range regs {
		if r.end > 0xFFFF {
			return fmt.Errorf("%s: register range %d-%d exceeds address space", r.owner, r.start, r.end)
		}
	}

	// overlap check (inclusive)
	for i := 0; i < len(regs); i++ {
		for j := i + 1; j < len(regs); j++ {
			a, b := regs[i], regs[j]
			if !(a.end < b.start || a.start > b.end) {
				return fmt.Errorf(
					"register overlap: %s range=%d-%d overlaps %s range=%d-%d",
					a.owner, a.start, a.end,
					b.owner, b.start, b.end,
				)
			}
		}
	}

	return nil
}
