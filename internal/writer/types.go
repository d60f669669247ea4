// internal/writer/types.go
package writer

// endpointClient is the exact contract the writers use.
// IMPORTANT: There must be NO other version of this interface anywhere.
type endpointClient interface {
	WriteBits(area byte, unitID uint8, addr uint16, bits []bool) error
	WriteRegisters(area byte, unitID uint8, addr uint16, regs []uint16) error
}

// Memory areas, numbered after the Modbus read function that serves them.
const (
	areaCoils            byte = 1
	areaHoldingRegisters byte = 3
)

// Output register geometry (relative to the configured base addresses).
const (
	ledCoils = 4 // L0..L3

	dutyRegs       = 2 // [stored duty %, PWM compare]
	dutyRegPercent = 0
	dutyRegCompare = 1
	digitRegs      = 2 // [right, left] panel bytes
)

// OutputPlan is where the panel outputs live on the I/O endpoint.
type OutputPlan struct {
	Endpoint      string
	UnitID        uint8
	LEDAddress    uint16 // coils
	DutyAddress   uint16 // holding registers
	DigitsAddress uint16 // holding registers
}

// StatusPlan is where the controller status block is delivered.
type StatusPlan struct {
	Endpoint   string
	UnitID     uint8
	BaseSlot   uint16
	DeviceName string
}

// Plan is the fully-built write plan for one controller.
type Plan struct {
	Output OutputPlan
	Status *StatusPlan // nil => status disabled
}
