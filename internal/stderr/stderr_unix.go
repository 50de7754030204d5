//go:build unix

package stderr

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"sync"

	"golang.org/x/sys/unix"
)

// Start redirects fd 2 into a pipe. Lines that arrive while the channel is
// full are dropped.
func Start(buffer int) (*Capture, error) {
	r, w, err := os.Pipe()
	if err != nil {
		return nil, fmt.Errorf("pipe: %w", err)
	}
	orig, err := unix.Dup(unix.Stderr)
	if err != nil {
		r.Close()
		w.Close()
		return nil, fmt.Errorf("dup stderr: %w", err)
	}
	if err := unix.Dup2(int(w.Fd()), unix.Stderr); err != nil {
		unix.Close(orig)
		r.Close()
		w.Close()
		return nil, fmt.Errorf("redirect stderr: %w", err)
	}

	c := &Capture{lines: make(chan string, max(buffer, 1))}
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer close(c.lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			select {
			case c.lines <- line:
			default:
			}
		}
	}()

	c.stop = func() {
		_ = unix.Dup2(orig, unix.Stderr)
		_ = unix.Close(orig)
		// fd 2 no longer points at the pipe, so closing w ends the scanner.
		w.Close()
		wg.Wait()
		r.Close()
	}
	return c, nil
}
