// internal/input/edge.go
package input

// Command is a discrete operator event.
type Command uint8

const (
	CommandStart Command = iota + 1
	CommandReset
)

func (c Command) String() string {
	switch c {
	case CommandStart:
		return "start"
	case CommandReset:
		return "reset"
	default:
		return "none"
	}
}

// Edge selects which line transition counts as a press.
type Edge uint8

const (
	EdgeFalling Edge = iota // high -> low, buttons pull the line down
	EdgeRising
)

// EdgeDetector turns button line levels into press events.
// It does not debounce; clean edges are assumed.
type EdgeDetector struct {
	edge   Edge
	primed bool
	start  bool
	reset  bool
}

func NewEdgeDetector(e Edge) *EdgeDetector {
	return &EdgeDetector{edge: e}
}

// Feed consumes one sample and returns the commands whose edge occurred.
// The first sample only primes the detector.
func (d *EdgeDetector) Feed(l Levels) []Command {
	if !d.primed {
		d.primed = true
		d.start, d.reset = l.Start, l.Reset
		return nil
	}

	var out []Command
	if d.fired(d.start, l.Start) {
		out = append(out, CommandStart)
	}
	if d.fired(d.reset, l.Reset) {
		out = append(out, CommandReset)
	}

	d.start, d.reset = l.Start, l.Reset
	return out
}

func (d *EdgeDetector) fired(prev, cur bool) bool {
	if d.edge == EdgeRising {
		return !prev && cur
	}
	return prev && !cur
}
