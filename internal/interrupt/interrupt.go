package interrupt

import (
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
)

// Controller turns SIGINT/SIGTERM into a cooperatively polled flag. The
// handler goroutine only flips an atomic bool and returns; observers
// call Signaled between units of work, never inside one, so an
// in-flight conversion is always either fully applied or not started.
type Controller struct {
	flag atomic.Bool
	ch   chan os.Signal
}

// New registers the signal handler and arms the flag.
func New() *Controller {
	c := &Controller{ch: make(chan os.Signal, 1)}
	signal.Notify(c.ch, os.Interrupt, syscall.SIGTERM)
	go func() {
		for range c.ch {
			c.flag.Store(true)
		}
	}()
	return c
}

// Signaled reports whether an interrupt has been delivered.
func (c *Controller) Signaled() bool {
	return c.flag.Load()
}

// Stop unregisters the handler and restores the default signal
// disposition.
func (c *Controller) Stop() {
	signal.Stop(c.ch)
	close(c.ch)
}
