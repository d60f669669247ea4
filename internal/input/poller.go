// internal/input/poller.go
package input

import (
	"errors"
	"time"

	"github.com/tamzrod/washer-controller/internal/machine"
)

// Client abstracts the one read the poller needs.
type Client interface {
	ReadDiscreteInputs(addr, qty uint16) ([]bool, error) // FC 2
}

// ClientFactory dials a fresh client. ONE attempt per call.
type ClientFactory func() (Client, error)

// Config is the minimal runtime config the poller needs.
type Config struct {
	Interval time.Duration
	Address  uint16
	Edge     Edge
}

// Result is produced by one poll cycle.
type Result struct {
	At       time.Time
	Inputs   machine.Inputs
	Commands []Command
	Err      error // non-nil means nothing was sampled
}

// Poller is a dumb, clock-driven reader of the operator panel.
type Poller struct {
	cfg     Config
	client  Client
	factory ClientFactory
	sampler *Sampler
	edges   *EdgeDetector
}

// New creates a poller with immutable config.
// factory may be nil; the poller then never replaces a dead client.
func New(cfg Config, client Client, factory ClientFactory, sampler *Sampler) (*Poller, error) {
	if cfg.Interval <= 0 {
		return nil, errors.New("input poller: interval must be > 0")
	}
	if sampler == nil {
		return nil, errors.New("input poller: sampler required")
	}
	if client == nil && factory == nil {
		return nil, errors.New("input poller: client or factory required")
	}
	return &Poller{
		cfg:     cfg,
		client:  client,
		factory: factory,
		sampler: sampler,
		edges:   NewEdgeDetector(cfg.Edge),
	}, nil
}

// PollOnce performs exactly one poll cycle.
// All-or-nothing: on failure the sampler keeps its previous value and the
// edge detector does not advance.
func (p *Poller) PollOnce() Result {
	res := Result{At: time.Now()}

	if p.client == nil {
		c, err := p.factory()
		if err != nil {
			res.Err = err
			return res
		}
		p.client = c
	}

	bits, err := p.client.ReadDiscreteInputs(p.cfg.Address, BlockSize)
	if err != nil {
		// transport is in doubt; redial on a future cycle
		if p.factory != nil {
			if c, ok := p.client.(interface{ Close() error }); ok {
				_ = c.Close()
			}
			p.client = nil
		}
		res.Err = err
		return res
	}

	lv, err := Decode(bits)
	if err != nil {
		res.Err = err
		return res
	}

	p.sampler.Store(lv.Inputs)
	res.Inputs = lv.Inputs
	res.Commands = p.edges.Feed(lv)
	return res
}
