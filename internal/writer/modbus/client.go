// internal/writer/modbus/client.go
package modbus

import (
	"fmt"
	"sync"
	"time"

	"github.com/goburrow/modbus"
	"github.com/pkg/errors"
)

// Writable areas, numbered as in the writer plan.
const (
	areaCoils            byte = 1
	areaHoldingRegisters byte = 3
)

// PDU limits for FC 15 and FC 16.
const (
	maxCoilsPerWrite = 1968
	maxRegsPerWrite  = 123
)

// pduWriter is the part of modbus.Client the panel needs.
type pduWriter interface {
	WriteMultipleCoils(address, quantity uint16, value []byte) ([]byte, error)
	WriteMultipleRegisters(address, quantity uint16, value []byte) ([]byte, error)
}

// Client drives panel outputs and status memory on one Modbus TCP endpoint.
//
// Requests are serialized: the unit id lives on the shared handler.
// A failed request drops the connection and the next request redials,
// so a write after a fault always goes out on a fresh socket.
type Client struct {
	mu       sync.Mutex
	endpoint string
	handler  *modbus.TCPClientHandler
	pdu      pduWriter
}

type Config struct {
	Endpoint string
	Timeout  time.Duration
}

// New connects to the endpoint once; later reconnects are lazy.
func New(cfg Config) (*Client, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("panel modbus: endpoint required")
	}

	h := modbus.NewTCPClientHandler(cfg.Endpoint)
	h.Timeout = cfg.Timeout

	if err := h.Connect(); err != nil {
		return nil, errors.Wrapf(err, "panel modbus: connect %s", cfg.Endpoint)
	}

	return &Client{
		endpoint: cfg.Endpoint,
		handler:  h,
		pdu:      modbus.NewClient(h),
	}, nil
}

func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.handler == nil {
		return nil
	}
	return c.handler.Close()
}

// WriteBits sets coils (FC 15). LEDs are the only bit outputs.
func (c *Client) WriteBits(area byte, unitID uint8, addr uint16, bits []bool) error {
	if area != areaCoils {
		return fmt.Errorf("panel modbus: area %d is not writable as bits", area)
	}
	if len(bits) == 0 {
		return nil
	}
	if len(bits) > maxCoilsPerWrite {
		return fmt.Errorf("panel modbus: %d coils exceeds %d per write", len(bits), maxCoilsPerWrite)
	}

	return c.send(unitID, "fc15", addr, func(w pduWriter) error {
		_, err := w.WriteMultipleCoils(addr, uint16(len(bits)), packBits(bits))
		return err
	})
}

// WriteRegisters sets holding registers (FC 16): duty, digits, status block.
func (c *Client) WriteRegisters(area byte, unitID uint8, addr uint16, regs []uint16) error {
	if area != areaHoldingRegisters {
		return fmt.Errorf("panel modbus: area %d is not writable as registers", area)
	}
	if len(regs) == 0 {
		return nil
	}
	if len(regs) > maxRegsPerWrite {
		return fmt.Errorf("panel modbus: %d registers exceeds %d per write", len(regs), maxRegsPerWrite)
	}

	return c.send(unitID, "fc16", addr, func(w pduWriter) error {
		_, err := w.WriteMultipleRegisters(addr, uint16(len(regs)), packRegisters(regs))
		return err
	})
}

func (c *Client) send(unitID uint8, op string, addr uint16, do func(pduWriter) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.handler != nil {
		c.handler.SlaveId = unitID
	}

	if err := do(c.pdu); err != nil {
		if c.handler != nil {
			// goburrow redials on the next send
			_ = c.handler.Close()
		}
		return errors.Wrapf(err, "panel modbus: %s %s unit=%d addr=%d", op, c.endpoint, unitID, addr)
	}
	return nil
}

// packBits packs LSB-first, coil 0 in bit 0 of the first byte.
func packBits(bits []bool) []byte {
	out := make([]byte, (len(bits)+7)/8)
	for i, on := range bits {
		if on {
			out[i/8] |= 1 << uint(i%8)
		}
	}
	return out
}

// packRegisters renders big-endian register words.
func packRegisters(regs []uint16) []byte {
	out := make([]byte, 0, 2*len(regs))
	for _, r := range regs {
		out = append(out, byte(r>>8), byte(r))
	}
	return out
}
