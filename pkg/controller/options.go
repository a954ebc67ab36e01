package controller

import "time"

// Opt defines a controller option
type Opt func(*Controller)

// WithPublisher configures a publisher for the controller
func WithPublisher(p Publisher) Opt {
	return func(c *Controller) {
		c.publishers = append(c.publishers, p)
	}
}

// WithClock overrides the clock used for the auto-advance interval.
func WithClock(now func() time.Time) Opt {
	return func(c *Controller) {
		c.now = now
	}
}
