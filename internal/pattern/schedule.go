// internal/pattern/schedule.go
package pattern

import (
	"sort"

	"github.com/tamzrod/washer-controller/internal/machine"
)

// PhaseLength is the time budget of every running phase, in milliseconds.
const PhaseLength uint32 = 6000

// passSpan is the length of one single-LED sweep pass including its blank tail.
const passSpan uint32 = 1500

// Window is one half-open interval [previous End, End) with a constant pattern.
type Window struct {
	End     uint32
	Pattern machine.Pattern
}

// Schedule is an ordered window table. Ends are strictly increasing.
type Schedule []Window

// Lookup resolves elapsed time to the pattern of the first window whose End
// exceeds it. ok is false once elapsed is past the last window.
func (s Schedule) Lookup(elapsed uint32) (machine.Pattern, bool) {
	i := sort.Search(len(s), func(i int) bool { return s[i].End > elapsed })
	if i == len(s) {
		return machine.PatternOff, false
	}
	return s[i].Pattern, true
}

// End is the end of the last window.
func (s Schedule) End() uint32 {
	if len(s) == 0 {
		return 0
	}
	return s[len(s)-1].End
}

var (
	forward = []machine.Pattern{machine.LED0, machine.LED1, machine.LED2, machine.LED3}
	reverse = []machine.Pattern{machine.LED3, machine.LED2, machine.LED1, machine.LED0}
)

// sweep lights one LED at a time for width ms each, starting at start.
// The last blank ms of the pass are dark; LED windows are clipped to that.
func sweep(start, width, blank uint32, order []machine.Pattern) Schedule {
	lit := start + passSpan - blank
	out := make(Schedule, 0, len(order)+1)
	for i, p := range order {
		end := start + width*uint32(i+1)
		if end > lit {
			end = lit
		}
		out = append(out, Window{End: end, Pattern: p})
	}
	return append(out, Window{End: start + passSpan, Pattern: machine.PatternOff})
}

// blink alternates all-on and all-off every half ms from start until end.
func blink(start, end, half uint32) Schedule {
	var out Schedule
	on := true
	for t := start + half; t <= end; t += half {
		p := machine.PatternOff
		if on {
			p = machine.PatternAll
		}
		out = append(out, Window{End: t, Pattern: p})
		on = !on
	}
	return out
}

func hold(end uint32, p machine.Pattern) Schedule {
	return Schedule{{End: end, Pattern: p}}
}

func join(parts ...Schedule) Schedule {
	var out Schedule
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
