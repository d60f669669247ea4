// internal/writer/ingest/client.go
package ingest

import (
	"encoding/binary"
	"fmt"
	"io"
	"net"
	"time"

	"github.com/pkg/errors"
)

// Raw Ingest v1 framing (LOCKED).
//
//	0-1  Magic "RI"
//	2    Version (0x01)
//	3    Area
//	4-5  UnitID
//	6-7  Address
//	8-9  Count
//	10+  Payload
const (
	magic     uint16 = 0x5249 // "RI"
	versionV1 byte   = 0x01
	headerLen        = 10

	respOK       byte = 0x00
	respRejected byte = 0x01
)

// Packet is one Raw Ingest v1 write.
type Packet struct {
	Area    byte
	UnitID  uint8
	Address uint16
	Count   uint16
	Payload []byte
}

// MarshalBinary renders the wire form of p.
func (p Packet) MarshalBinary() ([]byte, error) {
	out := make([]byte, headerLen, headerLen+len(p.Payload))
	binary.BigEndian.PutUint16(out[0:2], magic)
	out[2] = versionV1
	out[3] = p.Area
	binary.BigEndian.PutUint16(out[4:6], uint16(p.UnitID))
	binary.BigEndian.PutUint16(out[6:8], p.Address)
	binary.BigEndian.PutUint16(out[8:10], p.Count)
	return append(out, p.Payload...), nil
}

// EndpointClient pushes status memory over Raw Ingest v1.
// Stateless: one packet = one connection.
type EndpointClient struct {
	endpoint string
	timeout  time.Duration
}

type Config struct {
	Endpoint string
	Timeout  time.Duration
}

func NewEndpointClient(cfg Config) (*EndpointClient, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("writer ingest: endpoint required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 2 * time.Second
	}
	return &EndpointClient{endpoint: cfg.Endpoint, timeout: cfg.Timeout}, nil
}

func (c *EndpointClient) Close() error { return nil }

// WriteBits implements the writer endpoint contract for bit areas.
func (c *EndpointClient) WriteBits(area byte, unitID uint8, addr uint16, bits []bool) error {
	return c.Push(Packet{
		Area:    area,
		UnitID:  unitID,
		Address: addr,
		Count:   uint16(len(bits)),
		Payload: packBits(bits),
	})
}

// WriteRegisters implements the writer endpoint contract for register areas.
func (c *EndpointClient) WriteRegisters(area byte, unitID uint8, addr uint16, regs []uint16) error {
	payload := make([]byte, 2*len(regs))
	for i, r := range regs {
		binary.BigEndian.PutUint16(payload[2*i:], r)
	}
	return c.Push(Packet{
		Area:    area,
		UnitID:  unitID,
		Address: addr,
		Count:   uint16(len(regs)),
		Payload: payload,
	})
}

// Push sends one packet and waits for the one-byte verdict.
func (c *EndpointClient) Push(p Packet) error {
	pkt, err := p.MarshalBinary()
	if err != nil {
		return err
	}

	conn, err := net.DialTimeout("tcp", c.endpoint, c.timeout)
	if err != nil {
		return errors.Wrap(err, "writer ingest: dial")
	}
	defer conn.Close()

	_ = conn.SetDeadline(time.Now().Add(c.timeout))

	// net.Conn.Write returns an error on any short write
	if _, err := conn.Write(pkt); err != nil {
		return errors.Wrap(err, "writer ingest: write")
	}

	var resp [1]byte
	if _, err := io.ReadFull(conn, resp[:]); err != nil {
		return errors.Wrap(err, "writer ingest: read status")
	}

	switch resp[0] {
	case respOK:
		return nil
	case respRejected:
		return errors.New("writer ingest: rejected")
	default:
		return fmt.Errorf("writer ingest: unknown status 0x%02x", resp[0])
	}
}

// packBits packs LSB-first, Modbus coil order.
func packBits(bits []bool) []byte {
	out := make([]byte, (len(bits)+7)/8)
	for i, v := range bits {
		if v {
			out[i/8] |= 1 << uint(i%8)
		}
	}
	return out
}
