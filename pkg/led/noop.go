package led

import (
	"log/slog"

	"github.com/wamphlett/rgb-pi-controller/pkg/controller"
)

// Noop implements the LED driver as a no-op for development on
// machines without GPIO.
type Noop struct {
	logger *slog.Logger
}

// NewNoop creates a new no-op LED driver
func NewNoop(logger *slog.Logger) *Noop {
	return &Noop{
		logger: logger,
	}
}

// Apply logs the request but performs no actual LED control
func (n *Noop) Apply(c controller.Colour) {
	n.logger.Debug("LED control not available (no-op)", "colour", c.String())
}

var _ controller.LEDDriver = (*Noop)(nil)
