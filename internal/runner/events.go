// internal/runner/events.go
package runner

// Log event names.
const (
	EventSVCStarted    = "svc_started"
	EventSVCShutdown   = "svc_shutdown"
	EventCycleStarted  = "cycle_started"
	EventStartBlocked  = "start_blocked"
	EventPhaseChanged  = "phase_changed"
	EventCycleFinished = "cycle_finished"
	EventCycleReset    = "cycle_reset"
	EventCommand       = "command"
	EventIOError       = "io_error"
)
