//go:build !linux

package mpris

import (
	"errors"
	"fmt"

	"github.com/llehouerou/wavesq/internal/playback"
)

// Adapter is never constructed outside Linux.
type Adapter struct{}

// New fails outside Linux; callers run without media controls.
func New(playback.Service) (*Adapter, error) {
	return nil, fmt.Errorf("mpris: %w", errors.ErrUnsupported)
}

func (a *Adapter) Close() error { return nil }
