package display

import (
	"fmt"
	"image"
	"log/slog"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/devices/v3/ssd1306"
	"periph.io/x/devices/v3/ssd1306/image1bit"
	"periph.io/x/host/v3"

	"github.com/wamphlett/rgb-pi-controller/config"
	"github.com/wamphlett/rgb-pi-controller/pkg/controller"
)

const lineHeight = 20

// OLED renders the status fields on an SSD1306 over I2C.
type OLED struct {
	bus    i2c.BusCloser
	dev    *ssd1306.Dev
	logger *slog.Logger
}

// NewOLED initialises the host, opens the configured I2C bus and draws
// the initial frame.
func NewOLED(cfg *config.Display, logger *slog.Logger) (*OLED, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialise periph host: %w", err)
	}

	bus, err := i2creg.Open(cfg.I2CBus)
	if err != nil {
		return nil, fmt.Errorf("failed to open I2C bus: %w", err)
	}

	opts := ssd1306.DefaultOpts
	opts.Rotated = cfg.Rotated
	dev, err := ssd1306.NewI2C(bus, &opts)
	if err != nil {
		bus.Close()
		return nil, fmt.Errorf("failed to initialise display: %w", err)
	}

	o := &OLED{
		bus:    bus,
		dev:    dev,
		logger: logger,
	}

	return o, nil
}

// Render draws a full frame with the three status fields.
func (o *OLED) Render(state controller.State) {
	img := image1bit.NewVerticalLSB(o.dev.Bounds())

	o.line(img, 0, fmt.Sprintf("MODE    %s", state.Mode))
	o.line(img, 1, fmt.Sprintf("COLOUR  %s", state.Colour))
	o.line(img, 2, fmt.Sprintf("BUTTON  %s", buttonLabel(state.ButtonPressed)))

	if err := o.dev.Draw(o.dev.Bounds(), img, image.Point{}); err != nil {
		o.logger.Warn("failed to draw display frame", "error", err)
	}
}

// Close halts the display and releases the bus.
func (o *OLED) Close() {
	if err := o.dev.Halt(); err != nil {
		o.logger.Warn("failed to halt display", "error", err)
	}
	if err := o.bus.Close(); err != nil {
		o.logger.Warn("failed to close I2C bus", "error", err)
	}
}

func (o *OLED) line(img *image1bit.VerticalLSB, n int, text string) {
	drawer := font.Drawer{
		Dst:  img,
		Src:  &image.Uniform{image1bit.On},
		Face: basicfont.Face7x13,
		Dot:  fixed.P(0, basicfont.Face7x13.Ascent+n*lineHeight),
	}
	drawer.DrawString(text)
}

func buttonLabel(pressed bool) string {
	if pressed {
		return "PRESSED"
	}
	return "RELEASED"
}

var _ controller.Presenter = (*OLED)(nil)
