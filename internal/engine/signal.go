package engine

import (
	"os"
	"os/signal"
	"syscall"
)

// StopOnSignal requests a stop on c when the process receives SIGINT or
// SIGTERM. The returned function uninstalls the handler.
func StopOnSignal(c *Controller) (release func()) {
	sigs := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case <-sigs:
			c.RequestStop()
		case <-done:
		}
	}()

	return func() {
		signal.Stop(sigs)
		close(done)
	}
}
