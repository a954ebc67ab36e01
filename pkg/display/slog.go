package display

import (
	"log/slog"

	"github.com/wamphlett/rgb-pi-controller/pkg/controller"
)

// Slog mirrors the status fields to a structured logger for headless
// runs or when no display is attached.
type Slog struct {
	logger *slog.Logger
}

// NewSlog creates a new logging presenter
func NewSlog(logger *slog.Logger) *Slog {
	return &Slog{
		logger: logger,
	}
}

// Render logs the current state.
func (p *Slog) Render(state controller.State) {
	p.logger.Info("status",
		"mode", state.Mode.String(),
		"colour", state.Colour.String(),
		"button_pressed", state.ButtonPressed)
}

var _ controller.Presenter = (*Slog)(nil)
