package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/stianeikeland/go-rpio/v4"

	"github.com/wamphlett/rgb-pi-controller/config"
	"github.com/wamphlett/rgb-pi-controller/pkg/button"
	"github.com/wamphlett/rgb-pi-controller/pkg/controller"
	"github.com/wamphlett/rgb-pi-controller/pkg/display"
	"github.com/wamphlett/rgb-pi-controller/pkg/led"
	"github.com/wamphlett/rgb-pi-controller/pkg/mqtt"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGTERM, syscall.SIGINT)

	cfg := config.New()

	if err := rpio.Open(); err != nil {
		logger.Error("failed to open GPIO", "error", err)
		os.Exit(1)
	}
	defer rpio.Close()

	rgb := led.NewRGB(cfg.LED.RedPin, cfg.LED.GreenPin, cfg.LED.BluePin)
	led.NewBacklight(cfg.LED.BacklightPin).On()

	var source button.Source
	if cfg.Button.Analog {
		analog, err := button.NewAnalogSource(cfg.Button.AnalogTarget, cfg.Button.AnalogTolerance, logger)
		if err != nil {
			logger.Error("failed to initialise analog button", "error", err)
			os.Exit(1)
		}
		analog.Start()
		defer analog.Stop()
		source = analog
	} else {
		source = button.NewDigitalSource(cfg.Button.Pin)
	}
	btn := button.New(source, cfg.Button.HoldDuration, cfg.Button.DebounceTicks)

	var presenter controller.Presenter = display.NewSlog(logger)
	if cfg.Display.Enabled {
		oled, err := display.NewOLED(cfg.Display, logger)
		if err != nil {
			logger.Warn("display unavailable, logging status instead", "error", err)
		} else {
			defer oled.Close()
			presenter = oled
		}
	}

	opts := []controller.Opt{}
	if cfg.MQTT.Enabled {
		publisher, err := mqtt.New(cfg.MQTT, logger)
		if err != nil {
			logger.Error("failed to connect publisher", "error", err)
			os.Exit(1)
		}
		opts = append(opts, controller.WithPublisher(publisher))
	}

	c := controller.New(cfg.Controller, btn, rgb, presenter, opts...)
	c.Start()

	// wait for shutdown
	<-signals

	c.Shutdown()
}
