package button

import (
	"github.com/stianeikeland/go-rpio/v4"
)

// DigitalSource reads the key from a GPIO line with the pull-up
// enabled. The line is active-low: pressed reads electrically low.
type DigitalSource struct {
	pin rpio.Pin
}

// NewDigitalSource configures the pin as a pulled-up input. rpio.Open
// must have been called first.
func NewDigitalSource(pin int) *DigitalSource {
	p := rpio.Pin(pin)
	p.Input()
	p.PullUp()
	return &DigitalSource{pin: p}
}

func (s *DigitalSource) Pressed() bool {
	return s.pin.Read() == rpio.Low
}
