package timer

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrInvalidCommand       = errors.New("invalid command")
)

// ParseSeconds converts raw duration input into seconds.
func ParseSeconds(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("%w: duration empty", ErrInvalidConfiguration)
	}

	seconds, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: duration [%s] is not a number", ErrInvalidConfiguration, raw)
	}
	if seconds < 0 {
		return 0, fmt.Errorf("%w: negative duration %d", ErrInvalidConfiguration, seconds)
	}

	return seconds, nil
}
