package config

import (
	"context"
	"time"

	"github.com/sethvargo/go-envconfig"
)

func New() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic("failed to extract default config: %s" + err.Error())
	}
	return &cfg
}

func DefaultControllerConfig() *Controller {
	var cfg Controller
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic("failed to extract default config: %s" + err.Error())
	}
	return &cfg
}

type Config struct {
	Controller *Controller
	Button     *Button
	LED        *LED
	Display    *Display
	MQTT       *MQTT
}

type Controller struct {
	AutoInterval time.Duration `env:"CONTROLLER_AUTO_INTERVAL,default=1s"`
	PollRate     time.Duration `env:"CONTROLLER_POLL_RATE,default=5ms"`
}

type Button struct {
	Pin           int           `env:"BUTTON_PIN,default=14"`
	HoldDuration  time.Duration `env:"BUTTON_HOLD_DURATION,default=1s"`
	DebounceTicks int           `env:"BUTTON_DEBOUNCE_TICKS,default=2"`

	// Analog settings only apply when the key is wired through a resistor
	// ladder to an ADS1015 instead of a GPIO line.
	Analog          bool `env:"BUTTON_ANALOG,default=false"`
	AnalogTarget    int  `env:"BUTTON_ANALOG_TARGET,default=500"`
	AnalogTolerance int  `env:"BUTTON_ANALOG_TOLERANCE,default=150"`
}

type LED struct {
	RedPin       int `env:"LED_RED_PIN,default=1"`
	GreenPin     int `env:"LED_GREEN_PIN,default=2"`
	BluePin      int `env:"LED_BLUE_PIN,default=3"`
	BacklightPin int `env:"LED_BACKLIGHT_PIN,default=15"`
}

type Display struct {
	Enabled bool   `env:"DISPLAY_ENABLED,default=true"`
	I2CBus  string `env:"DISPLAY_I2C_BUS,default="`
	Rotated bool   `env:"DISPLAY_ROTATED,default=false"`
}

type MQTT struct {
	Enabled bool   `env:"MQTT_ENABLED,default=false"`
	Scheme  string `env:"MQTT_SCHEME,default=tcp"`
	Host    string `env:"MQTT_HOST,default=localhost:1883"`
}
