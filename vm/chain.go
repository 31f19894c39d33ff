package vm

import (
	"sync"
)

// ---------------------------------------------------------------------------
// Chain: machines wired output-to-input
// ---------------------------------------------------------------------------

// Chain is a set of machines running the same program, wired output-to-input
// through shared channels. Machines[i] reads from Channels[i]; where its
// output lands depends on the topology (see Pipeline and FeedbackLoop).
type Chain struct {
	Machines []*Machine
	Channels []*Channel
}

// Pipeline wires n machines in series: machine i reads Channels[i] and
// writes Channels[i+1], so there are n+1 channels and the last one is the
// terminal output.
func Pipeline(p Program, n int) *Chain {
	c := &Chain{
		Machines: make([]*Machine, n),
		Channels: make([]*Channel, n+1),
	}
	for i := range c.Channels {
		c.Channels[i] = NewChannel()
	}
	for i := range c.Machines {
		c.Machines[i] = p.NewMachine(c.Channels[i], c.Channels[i+1])
	}
	return c
}

// FeedbackLoop wires n machines in a cycle: machine i reads Channels[i] and
// writes Channels[(i+1) mod n], so the last machine's output feeds the first
// machine's input. The final value lands in Channels[0] once every machine
// has halted.
func FeedbackLoop(p Program, n int) *Chain {
	c := &Chain{
		Machines: make([]*Machine, n),
		Channels: make([]*Channel, n),
	}
	for i := range c.Channels {
		c.Channels[i] = NewChannel()
	}
	for i := range c.Machines {
		c.Machines[i] = p.NewMachine(c.Channels[i], c.Channels[(i+1)%n])
	}
	return c
}

// In returns the first machine's input channel.
func (c *Chain) In() *Channel {
	return c.Channels[0]
}

// Out returns the terminal channel: the extra tail channel of a pipeline, or
// the loop-back channel of a feedback loop.
func (c *Chain) Out() *Channel {
	if len(c.Channels) > len(c.Machines) {
		return c.Channels[len(c.Channels)-1]
	}
	return c.Channels[0]
}

// Run starts every machine on its own goroutine and waits for all of them.
// It returns the first fault by machine order, or nil when every machine
// halted cleanly. The caller is responsible for seeding enough input that
// every machine can reach HALT; a starved chain blocks forever.
func (c *Chain) Run() error {
	var wg sync.WaitGroup
	errs := make([]error, len(c.Machines))
	for i, m := range c.Machines {
		i, m := i, m
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = m.Run()
		}()
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
