package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"wa-gateway/client"

	"github.com/gookit/color"
	"github.com/stretchr/testify/suite"
)

type BaseHTTPSuite struct {
	suite.Suite
	Config Config
}

// SetupSuite loads the environment configuration before running tests
func (s *BaseHTTPSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
	if s.Config.GatewayURL == "" {
		s.T().Skip("E2E_GATEWAY_URL not set, skipping live gateway suite")
	}
}

// WithGateway runs one step against the gateway with a colorized header in the logs.
func (s *BaseHTTPSuite) WithGateway(name string, fn func(ctx context.Context, c *client.Client)) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	fn(ctx, client.New(s.Config.GatewayURL, slog.Default(), client.WithRetries(1)))
}
