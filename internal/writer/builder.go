// internal/writer/builder.go
package writer

import (
	"fmt"
	"time"

	cfg "github.com/tamzrod/washer-controller/internal/config"
	"github.com/tamzrod/washer-controller/internal/writer/ingest"
	wmodbus "github.com/tamzrod/washer-controller/internal/writer/modbus"
)

// BuildPlan converts config into a write Plan.
// Assumes config has already passed validation and normalization.
func BuildPlan(c *cfg.Config) Plan {
	plan := Plan{
		Output: OutputPlan{
			Endpoint:      c.IO.Endpoint,
			UnitID:        c.IO.UnitID,
			LEDAddress:    c.IO.Outputs.LEDsAddress,
			DutyAddress:   c.IO.Outputs.DutyAddress,
			DigitsAddress: c.IO.Outputs.DigitsAddress,
		},
	}

	if s := c.Status; s != nil {
		plan.Status = &StatusPlan{
			Endpoint:   s.Endpoint,
			UnitID:     s.UnitID,
			BaseSlot:   s.Slot,
			DeviceName: s.DeviceName,
		}
	}

	return plan
}

// BuildEndpointClients creates one client per unique endpoint.
// The panel endpoint is always Modbus; the status endpoint follows
// status.protocol and shares the panel connection when it can.
func BuildEndpointClients(c *cfg.Config) (map[string]endpointClient, func() error, error) {
	timeout := time.Duration(c.IO.TimeoutMs) * time.Millisecond

	clients := make(map[string]endpointClient)
	var closers []func() error

	closeAll := func() error {
		var last error
		for _, fn := range closers {
			if err := fn(); err != nil {
				last = err
			}
		}
		return last
	}

	panel, err := wmodbus.New(wmodbus.Config{
		Endpoint: c.IO.Endpoint,
		Timeout:  timeout,
	})
	if err != nil {
		return nil, nil, err
	}
	clients[c.IO.Endpoint] = panel
	closers = append(closers, panel.Close)

	s := c.Status
	if s == nil {
		return clients, closeAll, nil
	}

	switch s.Protocol {
	case cfg.ProtocolIngest:
		if _, taken := clients[s.Endpoint]; taken {
			_ = closeAll()
			return nil, nil, fmt.Errorf("writer: endpoint %s cannot serve both modbus and ingest", s.Endpoint)
		}
		ic, err := ingest.NewEndpointClient(ingest.Config{Endpoint: s.Endpoint, Timeout: timeout})
		if err != nil {
			_ = closeAll()
			return nil, nil, err
		}
		clients[s.Endpoint] = ic
		closers = append(closers, ic.Close)

	default:
		if _, ok := clients[s.Endpoint]; ok {
			break
		}
		mc, err := wmodbus.New(wmodbus.Config{Endpoint: s.Endpoint, Timeout: timeout})
		if err != nil {
			_ = closeAll()
			return nil, nil, err
		}
		clients[s.Endpoint] = mc
		closers = append(closers, mc.Close)
	}

	return clients, closeAll, nil
}
