package main

import (
	"fmt"
	"strings"
	"time"
)

const (
	adapterWhatsApp  = "whatsapp"
	adapterSimulator = "simulator"
)

type Config struct {
	Host                 string        `env:"HOST,default=0.0.0.0"`
	Port                 int           `env:"PORT,default=3000"`
	LogLevel             string        `env:"LOG_LEVEL,default=INFO"`
	Adapter              string        `env:"ADAPTER,default=whatsapp"`
	SessionDir           string        `env:"SESSION_DIR,default=./whatsapp_session"`
	BadgerFilepath       string        `env:"BADGER_FILEPATH,default=./data/journal"`
	AdapterTimeout       time.Duration `env:"ADAPTER_TIMEOUT,default=30s"`
	RestartInterval      time.Duration `env:"RESTART_INTERVAL,default=5s"`
	ShutdownTimeout      time.Duration `env:"SHUTDOWN_TIMEOUT,default=10s"`
	SinkTimeout          time.Duration `env:"SINK_TIMEOUT,default=2s"`
	EventBufferSize      int           `env:"EVENT_BUFFER_SIZE,default=64"`
	EventsLimit          int           `env:"EVENTS_LIMIT,default=50"`
	QRSize               int           `env:"QR_SIZE,default=256"`
	HeartbeatInterval    time.Duration `env:"HEARTBEAT_INTERVAL,default=1m"`
	AllowedOrigins       string        `env:"ALLOWED_ORIGINS,default=*"`
	SimulatorPairDelay   time.Duration `env:"SIMULATOR_PAIR_DELAY,default=3s"`
	SimulatorSendLatency time.Duration `env:"SIMULATOR_SEND_LATENCY,default=200ms"`
}

func (c Config) Validate() error {
	switch c.Adapter {
	case adapterWhatsApp, adapterSimulator:
	default:
		return fmt.Errorf("ADAPTER must be %q or %q, got %q", adapterWhatsApp, adapterSimulator, c.Adapter)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("PORT out of range: %d", c.Port)
	}
	return nil
}

func (c Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Origins splits ALLOWED_ORIGINS on commas.
func (c Config) Origins() []string {
	var origins []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
