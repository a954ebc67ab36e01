package display

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wamphlett/rgb-pi-controller/pkg/controller"
)

func TestSlogPresenterRendersFields(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	presenter := NewSlog(logger)

	presenter.Render(controller.State{
		Mode:          controller.ModeManual,
		Colour:        controller.ColourCyan,
		ButtonPressed: true,
	})

	out := buf.String()
	assert.Contains(t, out, "MANUAL")
	assert.Contains(t, out, "CYAN")
	assert.Contains(t, out, "button_pressed=true")
}
