// internal/config/normalize_test.go
package config

import "testing"

func TestNormalize_Defaults(t *testing.T) {
	cfg := base()
	cfg.Status = &StatusConfig{Endpoint: "status:502", DeviceName: "WASHER-CONTROLLER-01"}
	Normalize(cfg)

	if cfg.Controller.TickMs != DefaultTickMs {
		t.Fatalf("tick_ms: got=%d", cfg.Controller.TickMs)
	}
	if cfg.Controller.ButtonEdge != EdgeFalling {
		t.Fatalf("button_edge: got=%q", cfg.Controller.ButtonEdge)
	}
	if cfg.Controller.LogLevel != DefaultLogLevel {
		t.Fatalf("log_level: got=%q", cfg.Controller.LogLevel)
	}
	if cfg.IO.PollIntervalMs != DefaultPollIntervalMs || cfg.IO.FlushIntervalMs != DefaultFlushIntervalMs {
		t.Fatalf("intervals: %+v", cfg.IO)
	}
	if cfg.Status.Protocol != ProtocolModbus || cfg.Status.IntervalMs != DefaultStatusInterval {
		t.Fatalf("status: %+v", cfg.Status)
	}
	if cfg.Status.DeviceName != "WASHER-CONTROLLE" {
		t.Fatalf("device_name: got=%q", cfg.Status.DeviceName)
	}
}

func TestParse_FullDocument(t *testing.T) {
	doc := []byte(`
controller:
  tick_ms: 1
  log_level: debug
  button_edge: rising
io:
  endpoint: 10.0.0.5:502
  unit_id: 3
  poll_interval_ms: 5
  inputs:
    address: 100
  outputs:
    leds_address: 8
    duty_address: 20
    digits_address: 22
status:
  protocol: ingest
  endpoint: 10.0.0.9:9000
  slot: 2
  device_name: WASHER-01
http:
  listen: ":9108"
`)
	cfg, err := Parse(doc)
	if err != nil {
		t.Fatalf("Parse err=%v", err)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("Validate err=%v", err)
	}

	if cfg.IO.UnitID != 3 || cfg.IO.Inputs.Address != 100 || cfg.IO.Outputs.DigitsAddress != 22 {
		t.Fatalf("io: %+v", cfg.IO)
	}
	if cfg.Status == nil || cfg.Status.Protocol != ProtocolIngest || cfg.Status.Slot != 2 {
		t.Fatalf("status: %+v", cfg.Status)
	}
	if cfg.HTTP.Listen != ":9108" {
		t.Fatalf("http: %+v", cfg.HTTP)
	}
}

func TestParse_UnknownKeyRejected(t *testing.T) {
	if _, err := Parse([]byte("io:\n  endpoint: x\n  bogus: 1\n")); err == nil {
		t.Fatalf("expected error for unknown key")
	}
}
