// Package commands implements wactl, a command line client for the gateway.
package commands

import (
	"fmt"
	"time"

	"wa-gateway/client"

	"github.com/Netflix/go-env"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/spf13/cobra"
)

type Config struct {
	GatewayURL string        `env:"WA_GATEWAY_URL,default=http://localhost:3000"`
	MediaRoot  string        `env:"WA_MEDIA_ROOT"`
	LogLevel   string        `env:"LOG_LEVEL,default=WARN"`
	Timeout    time.Duration `env:"WA_TIMEOUT,default=45s"`
}

type app struct {
	gatewayURL string
	noColor    bool
	client     *client.Client
	timeout    time.Duration
}

func Execute() error {
	return NewRoot().Execute()
}

// NewRoot builds the command tree. Flags take precedence over the environment.
func NewRoot() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "wactl",
		Short:         "Control a running WhatsApp gateway",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			_ = godotenv.Load()
			var config Config
			if _, err := env.UnmarshalFromEnviron(&config); err != nil {
				return fmt.Errorf("config error: %w", err)
			}
			if a.gatewayURL == "" {
				a.gatewayURL = config.GatewayURL
			}
			if a.noColor {
				color.Disable()
			}
			a.timeout = config.Timeout
			a.client = client.New(a.gatewayURL, logs.GetLoggerFromString(config.LogLevel),
				client.WithMediaRoot(config.MediaRoot))
			return nil
		},
	}

	root.PersistentFlags().StringVar(&a.gatewayURL, "url", "", "gateway base URL (default $WA_GATEWAY_URL)")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable colored output")

	root.AddCommand(
		statusCmd(a),
		qrCmd(a),
		sendCmd(a),
		sendMediaCmd(a),
		checkCmd(a),
		infoCmd(a),
		logoutCmd(a),
		eventsCmd(a),
	)
	return root
}
