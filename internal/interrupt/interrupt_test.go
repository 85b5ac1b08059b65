package interrupt

import (
	"syscall"
	"testing"
	"time"
)

func TestControllerSignaled(t *testing.T) {
	c := New()
	defer c.Stop()

	if c.Signaled() {
		t.Fatal("fresh controller already signaled")
	}

	// The handler is registered, so the signal is consumed by the
	// controller instead of killing the test process.
	if err := syscall.Kill(syscall.Getpid(), syscall.SIGTERM); err != nil {
		t.Fatalf("failed to send signal: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for !c.Signaled() {
		if time.Now().After(deadline) {
			t.Fatal("flag not set after signal delivery")
		}
		time.Sleep(time.Millisecond)
	}
}

func TestControllerStaysSignaled(t *testing.T) {
	c := New()
	defer c.Stop()

	c.flag.Store(true)
	if !c.Signaled() {
		t.Error("Signaled = false after flag set")
	}
	if !c.Signaled() {
		t.Error("flag did not stay set on repeated polls")
	}
}
