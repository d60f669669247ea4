// internal/writer/modbus/client_test.go
package modbus

import (
	"errors"
	"strings"
	"testing"
)

type pduCall struct {
	fc    string
	addr  uint16
	qty   uint16
	value []byte
}

type fakePDU struct {
	calls []pduCall
	fail  error
}

func (f *fakePDU) WriteMultipleCoils(address, quantity uint16, value []byte) ([]byte, error) {
	f.calls = append(f.calls, pduCall{"fc15", address, quantity, value})
	return nil, f.fail
}

func (f *fakePDU) WriteMultipleRegisters(address, quantity uint16, value []byte) ([]byte, error) {
	f.calls = append(f.calls, pduCall{"fc16", address, quantity, value})
	return nil, f.fail
}

func newFakeClient(f *fakePDU) *Client {
	return &Client{endpoint: "panel:502", pdu: f}
}

func TestPackBits(t *testing.T) {
	got := packBits([]bool{true, false, true, true, false, false, false, false, true})
	if len(got) != 2 || got[0] != 0x0D || got[1] != 0x01 {
		t.Fatalf("got %#v", got)
	}
}

func TestPackRegistersBigEndian(t *testing.T) {
	got := packRegisters([]uint16{0x1234, 0x00FF})
	want := []byte{0x12, 0x34, 0x00, 0xFF}
	if len(got) != len(want) {
		t.Fatalf("len: got=%d want=%d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("byte %d: got=%#x want=%#x", i, got[i], want[i])
		}
	}
}

func TestWriteBits_LEDCoils(t *testing.T) {
	f := &fakePDU{}
	c := newFakeClient(f)

	if err := c.WriteBits(areaCoils, 1, 8, []bool{true, false, false, true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(f.calls) != 1 {
		t.Fatalf("calls: %d", len(f.calls))
	}
	got := f.calls[0]
	if got.fc != "fc15" || got.addr != 8 || got.qty != 4 || got.value[0] != 0x09 {
		t.Fatalf("call: %+v", got)
	}
}

func TestWriteRegisters_Duty(t *testing.T) {
	f := &fakePDU{}
	c := newFakeClient(f)

	if err := c.WriteRegisters(areaHoldingRegisters, 1, 0, []uint16{90, 229}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := f.calls[0]
	if got.fc != "fc16" || got.qty != 2 || got.value[1] != 90 || got.value[3] != 229 {
		t.Fatalf("call: %+v", got)
	}
}

func TestWrite_RejectsReadOnlyAreas(t *testing.T) {
	f := &fakePDU{}
	c := newFakeClient(f)

	if err := c.WriteBits(2, 1, 0, []bool{true}); err == nil {
		t.Fatalf("expected error for discrete inputs")
	}
	if err := c.WriteRegisters(4, 1, 0, []uint16{1}); err == nil {
		t.Fatalf("expected error for input registers")
	}
	if len(f.calls) != 0 {
		t.Fatalf("nothing should reach the wire: %+v", f.calls)
	}
}

func TestWrite_QuantityLimits(t *testing.T) {
	f := &fakePDU{}
	c := newFakeClient(f)

	if err := c.WriteRegisters(areaHoldingRegisters, 1, 0, make([]uint16, maxRegsPerWrite+1)); err == nil {
		t.Fatalf("expected register limit error")
	}
	if err := c.WriteBits(areaCoils, 1, 0, make([]bool, maxCoilsPerWrite+1)); err == nil {
		t.Fatalf("expected coil limit error")
	}
	if err := c.WriteRegisters(areaHoldingRegisters, 1, 0, nil); err != nil {
		t.Fatalf("empty write: %v", err)
	}
	if len(f.calls) != 0 {
		t.Fatalf("nothing should reach the wire: %+v", f.calls)
	}
}

func TestWrite_ErrorCarriesContext(t *testing.T) {
	f := &fakePDU{fail: errors.New("i/o timeout")}
	c := newFakeClient(f)

	err := c.WriteRegisters(areaHoldingRegisters, 7, 40, []uint16{1})
	if err == nil {
		t.Fatalf("expected error")
	}
	msg := err.Error()
	for _, want := range []string{"fc16", "panel:502", "unit=7", "addr=40", "i/o timeout"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("error %q missing %q", msg, want)
		}
	}
}
