// internal/input/modbus/client.go
package modbus

import (
	"time"

	"github.com/goburrow/modbus"
	"github.com/pkg/errors"
)

// Client implements input.Client over Modbus TCP.
// Geometry only: it reads a bit block and unpacks it.
type Client struct {
	handler *modbus.TCPClientHandler
	client  modbus.Client
}

// Config is minimal transport config.
type Config struct {
	Endpoint string
	UnitID   uint8
	Timeout  time.Duration
}

// New creates a connected Modbus TCP client.
func New(cfg Config) (*Client, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("input modbus: endpoint required")
	}

	h := modbus.NewTCPClientHandler(cfg.Endpoint)
	h.Timeout = cfg.Timeout
	h.SlaveId = cfg.UnitID

	if err := h.Connect(); err != nil {
		return nil, errors.Wrapf(err, "input modbus: connect %s", cfg.Endpoint)
	}

	return &Client{
		handler: h,
		client:  modbus.NewClient(h),
	}, nil
}

// Close closes the TCP connection.
func (c *Client) Close() error {
	if c == nil || c.handler == nil {
		return nil
	}
	return c.handler.Close()
}

// ReadDiscreteInputs implements input.Client (FC 2).
func (c *Client) ReadDiscreteInputs(addr, qty uint16) ([]bool, error) {
	if qty == 0 {
		return nil, nil
	}
	raw, err := c.client.ReadDiscreteInputs(addr, qty)
	if err != nil {
		return nil, errors.Wrapf(err, "input modbus: fc2 addr=%d qty=%d", addr, qty)
	}
	if len(raw) < (int(qty)+7)/8 {
		return nil, errors.New("input modbus: read-bits payload shorter than quantity")
	}
	return unpackBits(raw, int(qty)), nil
}

// unpackBits expands LSB-first packed coils/inputs.
func unpackBits(data []byte, count int) []bool {
	out := make([]bool, count)
	for i := 0; i < count; i++ {
		byteIdx := i / 8
		bitIdx := i % 8
		if byteIdx >= len(data) {
			continue
		}
		out[i] = data[byteIdx]&(1<<bitIdx) != 0
	}
	return out
}
