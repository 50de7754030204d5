//go:build !unix

package stderr

// Start returns an inert capture. Only unix audio backends write to fd 2.
func Start(int) (*Capture, error) {
	return &Capture{}, nil
}
