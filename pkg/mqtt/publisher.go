package mqtt

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/wamphlett/rgb-pi-controller/config"
	"github.com/wamphlett/rgb-pi-controller/pkg/controller"
)

// payload represents the JSON payload which is published
type payload struct {
	Mode          string
	Colour        string
	ButtonPressed bool
}

// Publisher defines the publisher methods
type Publisher struct {
	client mqtt.Client
	logger *slog.Logger
}

// New creates a new MQTT Publisher
func New(cfg *config.MQTT, logger *slog.Logger) (*Publisher, error) {
	// connect to the MQTT broker
	options := mqtt.NewClientOptions()
	options.Servers = []*url.URL{
		{
			Scheme: cfg.Scheme,
			Host:   cfg.Host,
		},
	}
	client := mqtt.NewClient(options)
	t := client.Connect()
	_ = t.Wait()
	if t.Error() != nil {
		return nil, fmt.Errorf("failed to connect to MQTT broker: %w", t.Error())
	}

	return &Publisher{
		client: client,
		logger: logger,
	}, nil
}

// Publish publishes a JSON payload to the configured MQTT broker
func (p *Publisher) Publish(event controller.Event, state controller.State) {
	marshaledPayload, err := json.Marshal(payload{
		Mode:          state.Mode.String(),
		Colour:        state.Colour.String(),
		ButtonPressed: state.ButtonPressed,
	})
	if err != nil {
		p.logger.Warn("failed to marshal payload", "error", err)
		return
	}

	// publish a message to the MQTT broker
	topic := fmt.Sprintf("RGB/CONTROLLER/%s", event)
	t := p.client.Publish(topic, 1, true, marshaledPayload)

	// Check for errors asynchronously
	go func() {
		_ = t.Wait()
		if t.Error() != nil {
			p.logger.Warn("failed to publish event", "error", t.Error())
		}
	}()
}

var _ controller.Publisher = (*Publisher)(nil)
