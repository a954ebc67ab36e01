package button

import (
	"time"
)

// Event identifies a classified button action.
type Event int

const (
	// EventNone means nothing qualifying happened this tick.
	EventNone Event = iota
	// EventPress fires once when the key is released before the hold
	// threshold is reached.
	EventPress
	// EventHold fires once when the key has been held for the hold
	// threshold, not on release.
	EventHold
)

// Source provides the raw pressed level of the key.
type Source interface {
	Pressed() bool
}

// Button debounces a Source and classifies presses and holds. It is
// driven by calling Tick once per poll cycle; events are returned to
// the caller rather than dispatched through callbacks.
type Button struct {
	source        Source
	holdThreshold time.Duration
	debounceTicks int

	raw            bool
	candidate      bool
	candidateTicks int

	pressed   bool
	pressedAt time.Time
	holdFired bool
}

// New returns a Button reading the given source. A level change must be
// observed on debounceTicks consecutive ticks before it registers.
func New(source Source, holdThreshold time.Duration, debounceTicks int) *Button {
	if debounceTicks < 1 {
		debounceTicks = 1
	}
	return &Button{
		source:        source,
		holdThreshold: holdThreshold,
		debounceTicks: debounceTicks,
	}
}

// Tick samples the source and returns at most one event. It must be
// called from a single goroutine.
func (b *Button) Tick(now time.Time) Event {
	level := b.source.Pressed()
	b.raw = level

	if level != b.pressed {
		if level != b.candidate {
			b.candidate = level
			b.candidateTicks = 0
		}
		b.candidateTicks++
		if b.candidateTicks < b.debounceTicks {
			return EventNone
		}

		b.pressed = level
		b.candidateTicks = 0
		if level {
			b.pressedAt = now
			b.holdFired = false
			return EventNone
		}
		if !b.holdFired {
			return EventPress
		}
		return EventNone
	}
	b.candidateTicks = 0

	if b.pressed && !b.holdFired && now.Sub(b.pressedAt) >= b.holdThreshold {
		b.holdFired = true
		return EventHold
	}
	return EventNone
}

// Pressed returns the raw level from the last tick, independent of the
// press/hold classification.
func (b *Button) Pressed() bool {
	return b.raw
}
