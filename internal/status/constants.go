// internal/status/constants.go
package status

// Controller Status Block layout constants.
// These values define the protocol and MUST NOT be configurable.

// ---- BLOCK GEOMETRY ----

// SlotsPerDevice is the fixed number of holding registers per controller.
const SlotsPerDevice = 20

// ---- SLOT INDICES ----

const (
	SlotHealthCode     = 0  // output delivery health
	SlotPhase          = 1  // machine.Phase
	SlotPhaseClock     = 2  // ms elapsed in phase
	SlotRinses         = 3  // rinse passes completed
	SlotDuty           = 4  // stored (inverted) duty percent
	SlotLEDs           = 5  // LED mask L0..L3
	SlotLeftDigit      = 6  // segment code
	SlotRightDigit     = 7  // segment code
	SlotCommittedMode  = 8  // mode captured at start
	SlotCommittedLevel = 9  // water level captured at start
	SlotLiveInputs     = 10 // live mode<<8 | live level
	SlotCycles         = 11 // completed cycles, saturating
)

// SlotLiveCount is the number of slots carrying live state (0..SlotCycles).
const SlotLiveCount = SlotCycles + 1

// ---- DEVICE NAME ----

// SlotDeviceNameStart is the first slot used for the device name.
// Device name is always placed at the END of the status block.
const SlotDeviceNameStart = 12

// SlotDeviceNameSlots is the number of slots reserved for the device name.
const SlotDeviceNameSlots = 8

// SlotDeviceNameEnd is the last slot used for the device name (inclusive).
const SlotDeviceNameEnd = SlotDeviceNameStart + SlotDeviceNameSlots - 1

// ---- LIMITS ----

// DeviceNameMaxChars is the maximum number of ASCII characters stored for device name.
const DeviceNameMaxChars = 16

// ---- HEALTH CODES ----

// HealthUnknown represents an unknown or boot state.
const HealthUnknown uint16 = 0

// HealthOK means the last output flush succeeded.
const HealthOK uint16 = 1

// HealthError means the last output flush failed.
const HealthError uint16 = 2
