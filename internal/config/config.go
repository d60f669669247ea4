// internal/config/config.go
package config

type Config struct {
	Controller ControllerConfig `yaml:"controller"`
	IO         IOConfig         `yaml:"io"`
	Status     *StatusConfig    `yaml:"status"` // optional
	HTTP       HTTPConfig       `yaml:"http"`
}

// ---- CONTROLLER ----

type ControllerConfig struct {
	TickMs     int    `yaml:"tick_ms"`
	LogLevel   string `yaml:"log_level"`
	ButtonEdge string `yaml:"button_edge"` // falling | rising
}

// ---- PANEL I/O ----

type IOConfig struct {
	Endpoint        string `yaml:"endpoint"`
	UnitID          uint8  `yaml:"unit_id"`
	TimeoutMs       int    `yaml:"timeout_ms"`
	PollIntervalMs  int    `yaml:"poll_interval_ms"`
	FlushIntervalMs int    `yaml:"flush_interval_ms"`

	Inputs  InputsConfig  `yaml:"inputs"`
	Outputs OutputsConfig `yaml:"outputs"`
}

// InputsConfig locates the 5-bit switch/button block (FC 2).
type InputsConfig struct {
	Address uint16 `yaml:"address"`
}

// OutputsConfig locates the panel outputs.
type OutputsConfig struct {
	LEDsAddress   uint16 `yaml:"leds_address"`   // 4 coils
	DutyAddress   uint16 `yaml:"duty_address"`   // 2 holding registers
	DigitsAddress uint16 `yaml:"digits_address"` // 2 holding registers
}

// ---- STATUS BLOCK ----

type StatusConfig struct {
	Protocol   string `yaml:"protocol"` // modbus | ingest
	Endpoint   string `yaml:"endpoint"`
	UnitID     uint8  `yaml:"unit_id"`
	Slot       uint16 `yaml:"slot"`
	IntervalMs int    `yaml:"interval_ms"`
	DeviceName string `yaml:"device_name"`
}

// ---- HTTP ----

type HTTPConfig struct {
	Listen string `yaml:"listen"` // empty => disabled
}

// Button edges.
const (
	EdgeFalling = "falling"
	EdgeRising  = "rising"
)

// Status protocols.
const (
	ProtocolModbus = "modbus"
	ProtocolIngest = "ingest"
)

// Register span sizes used by validation.
const (
	DutyRegs  = 2
	DigitRegs = 2
)
