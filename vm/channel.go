package vm

import (
	"context"
	"sync"
)

// ---------------------------------------------------------------------------
// Channel: unbounded blocking FIFO
// ---------------------------------------------------------------------------

// Channel is an unbounded FIFO of integers connecting machines to each other
// and to the outside world. Put never blocks and never fails; Take blocks
// until a value is available. There is no close: values a producer leaves
// behind after halting stay takeable.
//
// A Channel is safe for any number of concurrent producers and consumers.
// Delivery is FIFO in arrival order; arrival order across producers is
// whatever order their Put calls land.
type Channel struct {
	mu     sync.Mutex
	filled sync.Cond
	values []int64
}

// NewChannel creates a channel pre-loaded with the given values in order.
func NewChannel(values ...int64) *Channel {
	c := &Channel{}
	c.filled.L = &c.mu
	c.values = append(c.values, values...)
	return c
}

// Put appends value to the tail of the queue.
func (c *Channel) Put(value int64) {
	c.mu.Lock()
	c.values = append(c.values, value)
	c.mu.Unlock()
	c.filled.Signal()
}

// Take removes and returns the oldest value, blocking until one is
// available. A Take with no producer ever supplying a value blocks forever;
// wiring a producer is the caller's responsibility (see TakeContext for
// orchestration-layer deadlines).
func (c *Channel) Take() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	for len(c.values) == 0 {
		c.filled.Wait()
	}
	return c.pop()
}

// TryTake removes and returns the oldest value without blocking. The second
// result is false if the channel is currently empty.
func (c *Channel) TryTake() (int64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.values) == 0 {
		return 0, false
	}
	return c.pop(), true
}

// TakeContext is Take bounded by ctx. It exists for orchestration layers
// racing a machine against an external deadline; the engine itself never
// imposes one.
func (c *Channel) TakeContext(ctx context.Context) (int64, error) {
	if ctx.Done() == nil {
		return c.Take(), nil
	}
	stop := context.AfterFunc(ctx, func() {
		c.mu.Lock()
		c.filled.Broadcast()
		c.mu.Unlock()
	})
	defer stop()

	c.mu.Lock()
	defer c.mu.Unlock()
	for len(c.values) == 0 {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		c.filled.Wait()
	}
	return c.pop(), nil
}

// Drain removes and returns every currently buffered value, oldest first.
// It never blocks; an empty channel drains to nil.
func (c *Channel) Drain() []int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.values) == 0 {
		return nil
	}
	out := make([]int64, len(c.values))
	copy(out, c.values)
	c.values = c.values[:0]
	return out
}

// Len returns the number of buffered values.
func (c *Channel) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.values)
}

// pop removes the head. Caller holds c.mu and has checked non-empty.
func (c *Channel) pop() int64 {
	v := c.values[0]
	n := copy(c.values, c.values[1:])
	c.values = c.values[:n]
	return v
}
