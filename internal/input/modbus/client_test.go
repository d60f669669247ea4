// internal/input/modbus/client_test.go
package modbus

import "testing"

func TestUnpackBitsLSBFirst(t *testing.T) {
	// 0b0001_0101 -> bits 0,2,4 set
	got := unpackBits([]byte{0x15}, 5)
	want := []bool{true, false, true, false, true}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("bit %d: got=%v want=%v", i, got[i], want[i])
		}
	}
}

func TestUnpackBitsShortData(t *testing.T) {
	got := unpackBits([]byte{0xFF}, 10)
	if !got[7] || got[8] || got[9] {
		t.Fatalf("got %v", got)
	}
}

func TestNewRequiresEndpoint(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Fatalf("expected error for empty endpoint")
	}
}
