// internal/runner/observer.go
package runner

import (
	uuid "github.com/satori/go.uuid"
	"github.com/sirupsen/logrus"

	"github.com/tamzrod/washer-controller/internal/cycle"
	"github.com/tamzrod/washer-controller/internal/machine"
)

// fanout forwards controller events to every observer in order.
type fanout []cycle.Observer

func (f fanout) OnStart(in machine.Inputs) {
	for _, o := range f {
		o.OnStart(in)
	}
}

func (f fanout) OnBlockedStart(reason cycle.BlockReason) {
	for _, o := range f {
		o.OnBlockedStart(reason)
	}
}

func (f fanout) OnTransition(from, to machine.Phase, rinses uint8) {
	for _, o := range f {
		o.OnTransition(from, to, rinses)
	}
}

func (f fanout) OnReset(from machine.Phase, cause cycle.Cause) {
	for _, o := range f {
		o.OnReset(from, cause)
	}
}

// runLog logs controller events. Every started cycle gets a run id.
// Only touched from inside controller calls, which are serialized.
type runLog struct {
	log *logrus.Entry
	run string
}

func newRunLog(log *logrus.Entry) *runLog {
	return &runLog{log: log}
}

func (l *runLog) entry() *logrus.Entry {
	if l.run == "" {
		return l.log
	}
	return l.log.WithFields(logrus.Fields{"run": l.run})
}

func (l *runLog) OnStart(in machine.Inputs) {
	l.run = uuid.NewV4().String()
	l.entry().WithFields(logrus.Fields{
		"event":       EventCycleStarted,
		"mode":        in.Mode.String(),
		"water_level": in.Level.String(),
	}).Info("cycle started")
}

func (l *runLog) OnBlockedStart(reason cycle.BlockReason) {
	l.entry().WithFields(logrus.Fields{
		"event":  EventStartBlocked,
		"reason": reason.String(),
	}).Info("start ignored")
}

func (l *runLog) OnTransition(from, to machine.Phase, rinses uint8) {
	l.entry().WithFields(logrus.Fields{
		"event":  EventPhaseChanged,
		"from":   from.String(),
		"to":     to.String(),
		"rinses": rinses,
	}).Info("phase complete")

	if to == machine.PhaseFinished {
		l.entry().WithFields(logrus.Fields{"event": EventCycleFinished}).Info("cycle finished")
	}
}

func (l *runLog) OnReset(from machine.Phase, cause cycle.Cause) {
	e := l.entry().WithFields(logrus.Fields{
		"event": EventCycleReset,
		"from":  from.String(),
		"cause": cause.String(),
	})
	if cause == cycle.CauseDivergence {
		e.Warn("mode or water level changed, cycle reset")
	} else {
		e.Info("cycle reset")
	}
	l.run = ""
}
