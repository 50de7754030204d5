//go:build !linux

package notify

import (
	"errors"
	"fmt"
)

// New fails outside Linux; callers run without notifications.
func New() (Notifier, error) {
	return nil, fmt.Errorf("desktop notifications: %w", errors.ErrUnsupported)
}
