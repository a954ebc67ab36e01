package led

import (
	"github.com/stianeikeland/go-rpio/v4"

	"github.com/wamphlett/rgb-pi-controller/pkg/controller"
)

// RGB drives a three-wire RGB LED through GPIO pins.
type RGB struct {
	red   rpio.Pin
	green rpio.Pin
	blue  rpio.Pin
}

// NewRGB configures the three pins as outputs. rpio.Open must have
// been called first.
func NewRGB(redPin, greenPin, bluePin int) *RGB {
	l := &RGB{
		red:   rpio.Pin(redPin),
		green: rpio.Pin(greenPin),
		blue:  rpio.Pin(bluePin),
	}
	l.red.Output()
	l.green.Output()
	l.blue.Output()
	return l
}

// Apply drives the three pins to produce the given colour.
func (l *RGB) Apply(c controller.Colour) {
	red, green, blue := c.Levels()
	write(l.red, red)
	write(l.green, green)
	write(l.blue, blue)
}

func write(pin rpio.Pin, on bool) {
	if on {
		pin.High()
		return
	}
	pin.Low()
}

// Backlight drives the display backlight enable line.
type Backlight struct {
	pin rpio.Pin
}

// NewBacklight configures the backlight pin as an output.
func NewBacklight(pin int) *Backlight {
	p := rpio.Pin(pin)
	p.Output()
	return &Backlight{pin: p}
}

// On enables the backlight. It is driven once at startup and never
// changed.
func (b *Backlight) On() {
	b.pin.High()
}

var _ controller.LEDDriver = (*RGB)(nil)
