// internal/config/normalize.go
package config

import "github.com/tamzrod/washer-controller/internal/status"

// Defaults applied by Normalize.
const (
	DefaultTickMs          = 1
	DefaultLogLevel        = "info"
	DefaultTimeoutMs       = 500
	DefaultPollIntervalMs  = 10
	DefaultFlushIntervalMs = 20
	DefaultStatusInterval  = 1000
)

// Normalize applies post-validation normalization.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	c := &cfg.Controller
	if c.TickMs == 0 {
		c.TickMs = DefaultTickMs
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.ButtonEdge == "" {
		c.ButtonEdge = EdgeFalling
	}

	io := &cfg.IO
	if io.TimeoutMs == 0 {
		io.TimeoutMs = DefaultTimeoutMs
	}
	if io.PollIntervalMs == 0 {
		io.PollIntervalMs = DefaultPollIntervalMs
	}
	if io.FlushIntervalMs == 0 {
		io.FlushIntervalMs = DefaultFlushIntervalMs
	}

	// ------------------------------------------------------------
	// STATUS BLOCK NORMALIZATION (OPT-IN)
	// ------------------------------------------------------------

	s := cfg.Status
	if s == nil {
		return
	}
	if s.Protocol == "" {
		s.Protocol = ProtocolModbus
	}
	if s.IntervalMs == 0 {
		s.IntervalMs = DefaultStatusInterval
	}

	// Truncate device_name (ASCII already validated)
	if len(s.DeviceName) > status.DeviceNameMaxChars {
		s.DeviceName = s.DeviceName[:status.DeviceNameMaxChars]
	}
}
