// internal/writer/latch.go
package writer

import (
	"fmt"
	"strings"
	"sync"

	"github.com/pkg/errors"

	"github.com/tamzrod/washer-controller/internal/display"
	"github.com/tamzrod/washer-controller/internal/hal"
	"github.com/tamzrod/washer-controller/internal/machine"
)

var _ hal.Output = (*Latch)(nil)

// image is the full output state of the panel.
type image struct {
	leds   machine.Pattern
	duty   machine.Duty
	digits [digitRegs]byte // indexed by display.Position
}

func idleImage() image {
	return image{leds: machine.PatternOff, duty: machine.DutyIdle}
}

// Latch implements hal.Output by recording the latest requested outputs in
// memory. Flush delivers what changed to the I/O endpoint.
//
// Set* calls come from the tick loop and never do IO.
// Flush is called from ONE goroutine only.
type Latch struct {
	mu  sync.Mutex
	cur image

	plan OutputPlan
	cli  endpointClient

	// owned by the flushing goroutine
	last     image
	needFull bool
}

// NewLatch builds the output latch for a plan.
func NewLatch(plan OutputPlan, clients map[string]endpointClient) (*Latch, error) {
	cli := clients[plan.Endpoint]
	if cli == nil {
		return nil, fmt.Errorf("output latch: missing client for endpoint %s", plan.Endpoint)
	}
	return &Latch{
		cur:      idleImage(),
		plan:     plan,
		cli:      cli,
		needFull: true, // full assert on first flush
	}, nil
}

// ---- hal.Output ----

func (l *Latch) SetLEDs(p machine.Pattern) {
	l.mu.Lock()
	l.cur.leds = p & machine.PatternAll
	l.mu.Unlock()
}

func (l *Latch) SetDuty(d machine.Duty) {
	l.mu.Lock()
	l.cur.duty = d
	l.mu.Unlock()
}

func (l *Latch) SetDigit(pos display.Position, segments byte) {
	if int(pos) >= digitRegs {
		return
	}
	l.mu.Lock()
	l.cur.digits[pos] = segments
	l.mu.Unlock()
}

// ---- delivery ----

func (l *Latch) current() image {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cur
}

// Flush writes every output that differs from the last delivered state.
// On any write failure, the next call re-asserts the full image.
func (l *Latch) Flush() error {
	want := l.current()

	if l.needFull {
		if err := l.writeAll(want); err != nil {
			return errors.Wrap(err, "output latch: full assert failed")
		}
		l.needFull = false
		l.last = want
		return nil
	}

	var errs []string

	if want.leds != l.last.leds {
		if err := l.writeLEDs(want.leds); err != nil {
			errs = append(errs, fmt.Sprintf("leds write failed: %v", err))
		} else {
			l.last.leds = want.leds
		}
	}

	if want.duty != l.last.duty {
		if err := l.writeDuty(want.duty); err != nil {
			errs = append(errs, fmt.Sprintf("duty write failed: %v", err))
		} else {
			l.last.duty = want.duty
		}
	}

	if want.digits != l.last.digits {
		if err := l.writeDigits(want.digits); err != nil {
			errs = append(errs, fmt.Sprintf("digits write failed: %v", err))
		} else {
			l.last.digits = want.digits
		}
	}

	if len(errs) > 0 {
		// Any partial failure introduces doubt; re-assert on next flush.
		l.needFull = true
		return errors.New("output latch: " + strings.Join(errs, " | "))
	}

	return nil
}

func (l *Latch) writeAll(img image) error {
	if err := l.writeLEDs(img.leds); err != nil {
		return err
	}
	if err := l.writeDuty(img.duty); err != nil {
		return err
	}
	return l.writeDigits(img.digits)
}

func (l *Latch) writeLEDs(p machine.Pattern) error {
	return l.cli.WriteBits(areaCoils, l.plan.UnitID, l.plan.LEDAddress, p.Bits()[:ledCoils])
}

func (l *Latch) writeDuty(d machine.Duty) error {
	regs := make([]uint16, dutyRegs)
	regs[dutyRegPercent] = uint16(d)
	regs[dutyRegCompare] = uint16(d.Compare())
	return l.cli.WriteRegisters(areaHoldingRegisters, l.plan.UnitID, l.plan.DutyAddress, regs)
}

func (l *Latch) writeDigits(d [digitRegs]byte) error {
	regs := []uint16{uint16(d[display.Right]), uint16(d[display.Left])}
	return l.cli.WriteRegisters(areaHoldingRegisters, l.plan.UnitID, l.plan.DigitsAddress, regs)
}
