package convert

import (
	"fmt"
	"strings"

	"qimgshrink/internal/config"
)

// Constructor builds a backend from configuration.
type Constructor func(config.Config) (Converter, error)

// The constructors are variables so tests can simulate per-backend
// unavailability.
var (
	newNative Constructor = func(cfg config.Config) (Converter, error) { return NewNative(cfg) }
	newMagick Constructor = func(cfg config.Config) (Converter, error) { return NewMagick(cfg) }
)

// Select constructs the first usable backend, exactly once per run. The
// native backend is preferred (no subprocess overhead); PreferMagick
// reverses the order. When no variant can be constructed the error
// lists the specific reason for each one.
func Select(cfg config.Config) (Converter, error) {
	candidates := []struct {
		name  string
		build Constructor
	}{
		{"native", newNative},
		{"imagemagick", newMagick},
	}
	if cfg.PreferMagick {
		candidates[0], candidates[1] = candidates[1], candidates[0]
	}

	var reasons []string
	for _, c := range candidates {
		conv, err := c.build(cfg)
		if err == nil {
			return conv, nil
		}
		reasons = append(reasons, fmt.Sprintf("%s: %v", c.name, err))
	}

	return nil, fmt.Errorf("no usable conversion backend:\n  - %s", strings.Join(reasons, "\n  - "))
}
