package e2e

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// E2E_GATEWAY_URL points at a running gateway, the suite is skipped when empty
	GatewayURL string `envconfig:"E2E_GATEWAY_URL"`
	// E2E_PHONE receives the test messages, sending steps are skipped when empty
	Phone     string `envconfig:"E2E_PHONE"`
	MediaPath string `envconfig:"E2E_MEDIA_PATH"`
	// E2E_READY_TIMEOUT bounds the wait for the session, long enough to scan a QR code
	ReadyTimeout time.Duration `envconfig:"E2E_READY_TIMEOUT" default:"2m"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
