// internal/metrics/metrics_test.go
package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tamzrod/washer-controller/internal/cycle"
	"github.com/tamzrod/washer-controller/internal/machine"
)

func TestObserverCounters(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.OnStart(machine.Inputs{})
	m.OnBlockedStart(cycle.BlockWaterError)
	m.OnBlockedStart(cycle.BlockWaterError)
	m.OnTransition(machine.PhaseSpinning, machine.PhaseFinished, 1)
	m.OnReset(machine.PhaseWashing, cycle.CauseDivergence)

	if got := testutil.ToFloat64(m.starts); got != 1 {
		t.Fatalf("starts: got=%v", got)
	}
	if got := testutil.ToFloat64(m.blocked.WithLabelValues("water_level_error")); got != 2 {
		t.Fatalf("blocked: got=%v", got)
	}
	if got := testutil.ToFloat64(m.finished); got != 1 {
		t.Fatalf("finished: got=%v", got)
	}
	if got := testutil.ToFloat64(m.resets.WithLabelValues("divergence")); got != 1 {
		t.Fatalf("resets: got=%v", got)
	}
}

func TestObserveGauges(t *testing.T) {
	m := New(prometheus.NewRegistry())
	m.Observe(cycle.Snapshot{Phase: machine.PhaseSpinning, Duty: machine.DutySpinning, Rinses: 2})

	if got := testutil.ToFloat64(m.phase); got != float64(machine.PhaseSpinning) {
		t.Fatalf("phase: got=%v", got)
	}
	if got := testutil.ToFloat64(m.duty); got != 90 {
		t.Fatalf("drive: got=%v", got)
	}
	if got := testutil.ToFloat64(m.rinses); got != 2 {
		t.Fatalf("rinses: got=%v", got)
	}
}
