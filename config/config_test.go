package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 8080, cfg.Server.Port)
	require.Equal(t, "sqlite", cfg.Database.Driver)
	require.Equal(t, 5*time.Second, cfg.GatewayTimeout())
	require.Equal(t, 10*time.Minute, cfg.CacheTTL())
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("PENTA_SERVER_PORT", "9090")
	t.Setenv("PENTA_GATEWAY_TIMEOUT_SECONDS", "3")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 9090, cfg.Server.Port)
	require.Equal(t, 3*time.Second, cfg.GatewayTimeout())
}
