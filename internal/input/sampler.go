// internal/input/sampler.go
package input

import (
	"sync/atomic"

	"github.com/tamzrod/washer-controller/internal/machine"
)

// Sampler holds the latest sampled selectors.
// Writers are the input poller; readers are the tick loop.
type Sampler struct {
	v atomic.Uint32
}

// Store publishes a new sample.
func (s *Sampler) Store(in machine.Inputs) {
	s.v.Store(uint32(in.Mode)<<8 | uint32(in.Level))
}

// Load returns the latest sample. Zero value reads as normal/low.
func (s *Sampler) Load() machine.Inputs {
	v := s.v.Load()
	return machine.Inputs{
		Mode:  machine.Mode(v >> 8),
		Level: machine.WaterLevel(v & 0xFF),
	}
}
