// internal/writer/ingest/client_test.go
package ingest

import (
	"bytes"
	"io"
	"net"
	"testing"
	"time"
)

// serveOnce accepts one connection, captures the packet and answers verdict.
func serveOnce(t *testing.T, verdict byte, wantLen int) (string, <-chan []byte) {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	got := make(chan []byte, 1)

	go func() {
		defer ln.Close()
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()

		buf := make([]byte, wantLen)
		if _, err := io.ReadFull(conn, buf); err != nil {
			got <- nil
			return
		}
		got <- buf
		_, _ = conn.Write([]byte{verdict})
	}()

	return ln.Addr().String(), got
}

func TestWriteRegistersFraming(t *testing.T) {
	addr, got := serveOnce(t, respOK, headerLen+4)

	c, err := NewEndpointClient(Config{Endpoint: addr, Timeout: time.Second})
	if err != nil {
		t.Fatalf("NewEndpointClient err=%v", err)
	}

	if err := c.WriteRegisters(3, 7, 40, []uint16{0x0102, 0xA0B0}); err != nil {
		t.Fatalf("WriteRegisters err=%v", err)
	}

	want := []byte{
		'R', 'I', 0x01, 3,
		0x00, 0x07,
		0x00, 40,
		0x00, 0x02,
		0x01, 0x02, 0xA0, 0xB0,
	}
	if pkt := <-got; !bytes.Equal(pkt, want) {
		t.Fatalf("packet: got=% x want=% x", pkt, want)
	}
}

func TestRejectedVerdict(t *testing.T) {
	addr, _ := serveOnce(t, respRejected, headerLen+1)

	c, err := NewEndpointClient(Config{Endpoint: addr, Timeout: time.Second})
	if err != nil {
		t.Fatalf("NewEndpointClient err=%v", err)
	}

	if err := c.WriteBits(1, 1, 0, []bool{true, true}); err == nil {
		t.Fatalf("expected rejection error")
	}
}

func TestNewRequiresEndpoint(t *testing.T) {
	if _, err := NewEndpointClient(Config{}); err == nil {
		t.Fatalf("expected error")
	}
}
