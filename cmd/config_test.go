package main

import (
	"testing"

	"github.com/Netflix/go-env"
	"github.com/stretchr/testify/require"
)

func TestConfig_Defaults(t *testing.T) {
	req := require.New(t)
	var config Config

	err := env.Unmarshal(env.EnvSet{}, &config)

	req.NoError(err)
	req.Equal(3000, config.Port)
	req.Equal(adapterWhatsApp, config.Adapter)
	req.NoError(config.Validate())
	req.Equal([]string{"*"}, config.Origins())
}

func TestConfig_Validate(t *testing.T) {
	req := require.New(t)
	var config Config
	err := env.Unmarshal(env.EnvSet{"ADAPTER": "telegram", "ALLOWED_ORIGINS": "https://a.io, http://b.io"}, &config)
	req.NoError(err)

	req.Error(config.Validate())
	req.Equal([]string{"https://a.io", "http://b.io"}, config.Origins())
}
