package button

import (
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/grant-carpenter/go-ads"
)

const (
	adsBus     = "I2C1"
	adsAddress = 0x48
)

// sample records the current sample readings
type sample struct {
	sum   int
	count int
}

// Result returns the averaged reading from the ADS since the last read
func (s *sample) Result() float64 {
	if s.count == 0 || s.sum == 0 {
		return 0
	}
	return float64(s.sum / s.count)
}

// AnalogSource reads the key through an ADS1015 for boards where the
// button is wired into a resistor ladder rather than a GPIO line. The
// key counts as pressed while the averaged reading sits inside the
// configured target range.
type AnalogSource struct {
	sync.Mutex
	currentSample *sample
	ads           *ads.ADS
	stopSignal    chan bool
	pollRate      time.Duration
	logger        *slog.Logger

	lower   int
	upper   int
	pressed bool
}

// NewAnalogSource initialises the ADS and returns a configured source.
// Start must be called before the source produces readings.
func NewAnalogSource(target, tolerance int, logger *slog.Logger) (*AnalogSource, error) {
	s := &AnalogSource{
		currentSample: &sample{},
		stopSignal:    make(chan bool),
		pollRate:      time.Millisecond * 2,
		logger:        logger,
		lower:         target - tolerance,
		upper:         target + tolerance,
	}

	// initialise the ADS
	if err := ads.HostInit(); err != nil {
		return nil, fmt.Errorf("failed to initialise ADS host: %w", err)
	}

	var err error
	s.ads, err = ads.NewADS(adsBus, adsAddress, "")
	if err != nil {
		return nil, fmt.Errorf("failed to open ADS: %w", err)
	}

	s.ads.SetConfigGain(ads.ConfigGain2_3)

	return s, nil
}

// Start starts the source sampling the ADS
func (s *AnalogSource) Start() {
	ticker := time.NewTicker(s.pollRate)
	go func() {
		for {
			select {
			case <-ticker.C:
				s.sample()
			case <-s.stopSignal:
				ticker.Stop()
				return
			}
		}
	}()
}

// Stop stops the source reading the ADS
func (s *AnalogSource) Stop() {
	s.stopSignal <- true
}

// sample reads the ADS value and adds it to the sample data
func (s *AnalogSource) sample() {
	s.Lock()
	defer s.Unlock()
	// read retry from ads chip
	keyResult, err := s.ads.ReadRetry(5)
	if err != nil {
		s.logger.Warn("failed to read ADS", "error", err)
		return
	}

	s.currentSample.sum += int(math.Round(float64(keyResult) / 32767.0 * 1000.0))
	s.currentSample.count++
}

// Pressed reports whether the averaged reading since the last call
// falls inside the target range. With no new samples it reports the
// last known level.
func (s *AnalogSource) Pressed() bool {
	s.Lock()
	defer s.Unlock()

	if s.currentSample.count == 0 {
		return s.pressed
	}
	result := int(s.currentSample.Result())
	s.currentSample = &sample{}
	s.pressed = result >= s.lower && result <= s.upper
	return s.pressed
}
