// internal/config/validate_test.go
package config

import "testing"

// helper to build a minimal valid config quickly
func base() *Config {
	return &Config{
		IO: IOConfig{
			Endpoint: "io:502",
			UnitID:   1,
			Outputs: OutputsConfig{
				LEDsAddress:   0,
				DutyAddress:   0,
				DigitsAddress: 2,
			},
		},
	}
}

// ---- tests ----

func TestValidate_Minimal(t *testing.T) {
	if err := Validate(base()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_EndpointRequired(t *testing.T) {
	cfg := base()
	cfg.IO.Endpoint = ""
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestValidate_TickRange(t *testing.T) {
	for _, v := range []int{-1, 1001} {
		cfg := base()
		cfg.Controller.TickMs = v
		if err := Validate(cfg); err == nil {
			t.Fatalf("tick_ms=%d: expected error, got nil", v)
		}
	}
}

func TestValidate_UnknownEdge(t *testing.T) {
	cfg := base()
	cfg.Controller.ButtonEdge = "both"
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestValidate_DutyDigitsOverlap(t *testing.T) {
	cfg := base()
	cfg.IO.Outputs.DigitsAddress = 1 // duty is 0-1
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected overlap error, got nil")
	}
}

func TestValidate_TouchingRangesAllowed(t *testing.T) {
	cfg := base()
	cfg.IO.Outputs.DutyAddress = 10   // 10-11
	cfg.IO.Outputs.DigitsAddress = 12 // 12-13
	if err := Validate(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_StatusOverlapSameUnit(t *testing.T) {
	cfg := base()
	cfg.Status = &StatusConfig{Endpoint: "io:502", UnitID: 1, Slot: 0} // 0-19
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected overlap error, got nil")
	}
}

func TestValidate_StatusOtherUnitNoOverlap(t *testing.T) {
	cfg := base()
	cfg.Status = &StatusConfig{Endpoint: "io:502", UnitID: 2, Slot: 0}
	if err := Validate(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_StatusNonASCIIName(t *testing.T) {
	cfg := base()
	cfg.Status = &StatusConfig{Endpoint: "status:502", DeviceName: "wäscher"}
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestValidate_StatusUnknownProtocol(t *testing.T) {
	cfg := base()
	cfg.Status = &StatusConfig{Endpoint: "status:502", Protocol: "mqtt"}
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestValidate_StatusSlotOutOfRange(t *testing.T) {
	cfg := base()
	cfg.Status = &StatusConfig{Endpoint: "io:502", UnitID: 1, Slot: 4000}
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected range error, got nil")
	}
}
