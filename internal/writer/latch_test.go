// internal/writer/latch_test.go
package writer

import (
	"errors"
	"testing"

	"github.com/tamzrod/washer-controller/internal/display"
	"github.com/tamzrod/washer-controller/internal/machine"
)

// ---- fake endpoint client ----

type writeCall struct {
	area   byte
	unitID uint8
	addr   uint16
	bits   []bool
	regs   []uint16
}

type fakeEndpointClient struct {
	writes []writeCall
	fail   bool
}

func (f *fakeEndpointClient) WriteBits(area byte, unitID uint8, addr uint16, bits []bool) error {
	if f.fail {
		return errors.New("fake bits failure")
	}
	f.writes = append(f.writes, writeCall{area: area, unitID: unitID, addr: addr, bits: bits})
	return nil
}

func (f *fakeEndpointClient) WriteRegisters(area byte, unitID uint8, addr uint16, regs []uint16) error {
	if f.fail {
		return errors.New("fake regs failure")
	}
	f.writes = append(f.writes, writeCall{area: area, unitID: unitID, addr: addr, regs: regs})
	return nil
}

func (f *fakeEndpointClient) last() writeCall { return f.writes[len(f.writes)-1] }

// ---- helpers ----

func newTestLatch(t *testing.T, cli *fakeEndpointClient) *Latch {
	t.Helper()
	plan := OutputPlan{
		Endpoint:      "panel",
		UnitID:        4,
		LEDAddress:    10,
		DutyAddress:   20,
		DigitsAddress: 30,
	}
	l, err := NewLatch(plan, map[string]endpointClient{"panel": cli})
	if err != nil {
		t.Fatalf("NewLatch err=%v", err)
	}
	return l
}

// ---- tests ----

func TestLatchFirstFlushIsFull(t *testing.T) {
	cli := &fakeEndpointClient{}
	l := newTestLatch(t, cli)

	if err := l.Flush(); err != nil {
		t.Fatalf("Flush err=%v", err)
	}
	if len(cli.writes) != 3 {
		t.Fatalf("expected 3 writes on full assert, got %d", len(cli.writes))
	}

	duty := cli.writes[1]
	if duty.addr != 20 || duty.regs[0] != 100 || duty.regs[1] != 255 {
		t.Fatalf("idle duty write: %+v", duty)
	}
}

func TestLatchWritesOnlyChanges(t *testing.T) {
	cli := &fakeEndpointClient{}
	l := newTestLatch(t, cli)
	_ = l.Flush()
	cli.writes = nil

	// nothing changed
	if err := l.Flush(); err != nil {
		t.Fatalf("Flush err=%v", err)
	}
	if len(cli.writes) != 0 {
		t.Fatalf("expected no writes, got %d", len(cli.writes))
	}

	l.SetLEDs(machine.LED2)
	if err := l.Flush(); err != nil {
		t.Fatalf("Flush err=%v", err)
	}
	if len(cli.writes) != 1 {
		t.Fatalf("expected 1 write, got %d", len(cli.writes))
	}
	w := cli.last()
	if w.area != areaCoils || w.unitID != 4 || w.addr != 10 {
		t.Fatalf("led write geometry: %+v", w)
	}
	if len(w.bits) != 4 || !w.bits[2] || w.bits[0] || w.bits[1] || w.bits[3] {
		t.Fatalf("led bits: %v", w.bits)
	}

	l.SetDuty(machine.DutyWashing)
	_ = l.Flush()
	w = cli.last()
	if w.addr != 20 || w.regs[0] != 90 || w.regs[1] != 229 {
		t.Fatalf("duty write: %+v", w)
	}

	l.SetDigit(display.Left, display.Segments(display.Left, display.CodeExtended))
	_ = l.Flush()
	w = cli.last()
	if w.addr != 30 || w.regs[0] != 0 || w.regs[1] != 121|0x80 {
		t.Fatalf("digit write: %+v", w)
	}
}

func TestLatchReassertsAfterFailure(t *testing.T) {
	cli := &fakeEndpointClient{}
	l := newTestLatch(t, cli)
	_ = l.Flush()

	cli.fail = true
	l.SetLEDs(machine.PatternAll)
	if err := l.Flush(); err == nil {
		t.Fatalf("expected error, got nil")
	}

	cli.fail = false
	cli.writes = nil
	if err := l.Flush(); err != nil {
		t.Fatalf("Flush err=%v", err)
	}
	if len(cli.writes) != 3 {
		t.Fatalf("expected full re-assert (3 writes), got %d", len(cli.writes))
	}
}

func TestNewLatchMissingClient(t *testing.T) {
	if _, err := NewLatch(OutputPlan{Endpoint: "x"}, map[string]endpointClient{}); err == nil {
		t.Fatalf("expected error, got nil")
	}
}
