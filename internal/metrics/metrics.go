// internal/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tamzrod/washer-controller/internal/cycle"
	"github.com/tamzrod/washer-controller/internal/machine"
)

const namespace = "washer"

// Metric holds the controller collectors.
type Metric struct {
	phase       prometheus.Gauge
	duty        prometheus.Gauge
	rinses      prometheus.Gauge
	starts      prometheus.Counter
	blocked     *prometheus.CounterVec
	transitions *prometheus.CounterVec
	resets      *prometheus.CounterVec
	finished    prometheus.Counter
	ioErrors    *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metric {
	m := &Metric{
		phase: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "phase",
			Help:      "Current cycle phase (0 idle, 1 washing, 2 rinsing, 3 spinning, 4 finished).",
		}),
		duty: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "motor_drive_percent",
			Help:      "Effective motor drive in percent.",
		}),
		rinses: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "rinse_passes",
			Help:      "Rinse passes completed in the current cycle.",
		}),
		starts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cycles_started_total",
			Help:      "Cycles started.",
		}),
		blocked: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "starts_blocked_total",
			Help:      "Start commands ignored, by reason.",
		}, []string{"reason"}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "phase_transitions_total",
			Help:      "Phase transitions, by target phase.",
		}, []string{"to"}),
		resets: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "resets_total",
			Help:      "Returns to idle from a non-idle phase, by cause.",
		}, []string{"cause"}),
		finished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cycles_finished_total",
			Help:      "Cycles run to completion.",
		}),
		ioErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "io_errors_total",
			Help:      "Panel I/O failures, by stage.",
		}, []string{"stage"}),
	}

	reg.MustRegister(
		m.phase, m.duty, m.rinses,
		m.starts, m.blocked, m.transitions, m.resets, m.finished,
		m.ioErrors,
	)

	m.Observe(cycle.Snapshot{Phase: machine.PhaseIdle, Duty: machine.DutyIdle})
	return m
}

// Observe updates the gauges from a snapshot.
func (m *Metric) Observe(s cycle.Snapshot) {
	m.phase.Set(float64(s.Phase))
	m.duty.Set(float64(s.Duty.Drive()))
	m.rinses.Set(float64(s.Rinses))
}

// IOError counts a failed poll, flush or status write.
func (m *Metric) IOError(stage string) {
	m.ioErrors.WithLabelValues(stage).Inc()
}

// ---- cycle.Observer ----

func (m *Metric) OnStart(machine.Inputs) {
	m.starts.Inc()
}

func (m *Metric) OnBlockedStart(reason cycle.BlockReason) {
	m.blocked.WithLabelValues(reason.String()).Inc()
}

func (m *Metric) OnTransition(from, to machine.Phase, rinses uint8) {
	m.transitions.WithLabelValues(to.String()).Inc()
	if to == machine.PhaseFinished {
		m.finished.Inc()
	}
}

func (m *Metric) OnReset(from machine.Phase, cause cycle.Cause) {
	m.resets.WithLabelValues(cause.String()).Inc()
}
