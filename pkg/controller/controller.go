package controller

import (
	"time"

	"github.com/wamphlett/rgb-pi-controller/config"
	"github.com/wamphlett/rgb-pi-controller/pkg/button"
)

type Event string

const (
	EventStart        Event = "START"
	EventButtonPress  Event = "BUTTON_PRESS"
	EventButtonHold   Event = "BUTTON_HOLD"
	EventModeChange   Event = "MODE_CHANGE"
	EventColourChange Event = "COLOUR_CHANGE"
)

// Button supplies classified button events and the raw key level.
type Button interface {
	Tick(now time.Time) button.Event
	Pressed() bool
}

// LEDDriver sets the physical LED to a colour.
type LEDDriver interface {
	Apply(c Colour)
}

// Presenter renders the current state. It is only invoked when the
// state has changed since the last render.
type Presenter interface {
	Render(state State)
}

// Publisher defines the publisher methods
type Publisher interface {
	Publish(event Event, state State)
}

// Controller owns the mode state machine: the current colour and mode,
// the raw button level and the dirty flag which gates redraws. All
// state is mutated from the single poll goroutine.
type Controller struct {
	button     Button
	led        LEDDriver
	presenter  Presenter
	publishers []Publisher

	pollRate     time.Duration
	autoInterval time.Duration
	now          func() time.Time

	mode          Mode
	colour        Colour
	buttonPressed bool
	dirty         bool
	lastAdvance   time.Time

	close chan (struct{})
}

// New returns a configured Controller. The LED is driven to the
// starting colour immediately.
func New(cfg *config.Controller, btn Button, led LEDDriver, presenter Presenter, opts ...Opt) *Controller {
	c := &Controller{
		button:       btn,
		led:          led,
		presenter:    presenter,
		pollRate:     cfg.PollRate,
		autoInterval: cfg.AutoInterval,
		now:          time.Now,
		mode:         ModeAuto,
		colour:       ColourRed,
		dirty:        true,
		close:        make(chan struct{}),
	}

	for _, opt := range opts {
		opt(c)
	}

	c.lastAdvance = c.now()
	c.applyColour()

	c.publish(EventStart)

	return c
}

// Start begins polling in a background goroutine.
func (c *Controller) Start() {
	ticker := time.NewTicker(c.pollRate)
	go func() {
		for {
			select {
			case <-ticker.C:
				c.poll()
			case <-c.close:
				ticker.Stop()
				return
			}
		}
	}()
}

// Shutdown stops the poll loop.
func (c *Controller) Shutdown() {
	c.close <- struct{}{}
}

// State returns a snapshot of the current state.
func (c *Controller) State() State {
	return State{
		Mode:          c.mode,
		Colour:        c.colour,
		ButtonPressed: c.buttonPressed,
	}
}

func (c *Controller) poll() {
	now := c.now()

	switch c.button.Tick(now) {
	case button.EventPress:
		c.handlePress()
	case button.EventHold:
		c.handleHold()
	}

	// the raw key level is mirrored on the display independently of the
	// press/hold classification
	if pressed := c.button.Pressed(); pressed != c.buttonPressed {
		c.buttonPressed = pressed
		c.dirty = true
	}

	switch c.mode {
	case ModeAuto:
		if now.Sub(c.lastAdvance) >= c.autoInterval {
			c.lastAdvance = now
			c.advanceColour()
			c.publish(EventColourChange)
		}
	case ModeManual:
		// colour only advances on button events
	default: // should not happen - reset to auto
		c.mode = ModeAuto
		c.dirty = true
	}

	if c.dirty {
		c.presenter.Render(c.State())
		c.dirty = false
	}
}

func (c *Controller) handlePress() {
	if c.mode == ModeManual {
		c.advanceColour()
	}
	c.dirty = true
	c.publish(EventButtonPress)
}

func (c *Controller) handleHold() {
	c.mode = c.mode.Toggle()
	c.dirty = true
	c.publish(EventModeChange)
	c.publish(EventButtonHold)
}

func (c *Controller) advanceColour() {
	c.colour = c.colour.Next()
	c.applyColour()
}

// applyColour drives the LED and marks the display stale.
func (c *Controller) applyColour() {
	c.led.Apply(c.colour)
	c.dirty = true
}

func (c *Controller) publish(event Event) {
	for _, p := range c.publishers {
		p.Publish(event, c.State())
	}
}
