package controller

// Colour is one of the seven colours the RGB LED can produce by
// combining its red, green and blue elements.
type Colour int

const (
	ColourRed Colour = iota
	ColourGreen
	ColourBlue
	ColourYellow
	ColourMagenta
	ColourCyan
	ColourWhite

	colourCount = 7
)

// Next returns the next colour in the cycle, wrapping back to red
// after white. Out of range values restart the cycle at red.
func (c Colour) Next() Colour {
	if c < ColourRed || c >= colourCount {
		return ColourRed
	}
	return (c + 1) % colourCount
}

// Levels returns the on/off level for each of the three LED elements.
// Unknown colours fall back to red.
func (c Colour) Levels() (red, green, blue bool) {
	switch c {
	case ColourRed:
		return true, false, false
	case ColourGreen:
		return false, true, false
	case ColourBlue:
		return false, false, true
	case ColourYellow:
		return true, true, false
	case ColourMagenta:
		return true, false, true
	case ColourCyan:
		return false, true, true
	case ColourWhite:
		return true, true, true
	default:
		return true, false, false
	}
}

func (c Colour) String() string {
	switch c {
	case ColourRed:
		return "RED"
	case ColourGreen:
		return "GREEN"
	case ColourBlue:
		return "BLUE"
	case ColourYellow:
		return "YELLOW"
	case ColourMagenta:
		return "MAGENTA"
	case ColourCyan:
		return "CYAN"
	case ColourWhite:
		return "WHITE"
	}
	return "UNKNOWN"
}

// Mode determines how the colour advances: automatically on a timer or
// manually on button presses.
type Mode int

const (
	ModeAuto Mode = iota
	ModeManual
)

// Toggle switches between auto and manual. Anything which is not auto,
// including an out of range value, toggles back to auto.
func (m Mode) Toggle() Mode {
	if m == ModeAuto {
		return ModeManual
	}
	return ModeAuto
}

func (m Mode) String() string {
	switch m {
	case ModeAuto:
		return "AUTO"
	case ModeManual:
		return "MANUAL"
	}
	return "UNKNOWN"
}

// State defines the state of the controller and is used when rendering
// the display and publishing events
type State struct {
	Mode          Mode
	Colour        Colour
	ButtonPressed bool
}
