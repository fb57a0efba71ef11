package main

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/term"
)

const keyHelp = "p/P persona  d/D delay  e/E entropy  r/R refinement  c/C coupling  l/L lag  w/W wavetable  -/+ root  space pause  s save  q quit"

// readKeys puts the terminal in raw mode and sends each byte typed on stdin
// to keys until ctx is done.  It does nothing when stdin is not a terminal.
// The returned func restores the terminal.
func readKeys(ctx context.Context, keys chan<- rune) (restore func(), err error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		logger.Debug("stdin is not a terminal; keys disabled")
		return func() {}, nil
	}
	old, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("raw terminal: %w", err)
	}
	fmt.Fprintf(os.Stderr, "%s\r\n", keyHelp)

	go func() {
		buf := make([]byte, 1)
		for {
			n, err := os.Stdin.Read(buf)
			if err != nil {
				return
			}
			if n == 0 {
				continue
			}
			select {
			case keys <- rune(buf[0]):
			case <-ctx.Done():
				return
			}
		}
	}()
	return func() { _ = term.Restore(fd, old) }, nil
}
