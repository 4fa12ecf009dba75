package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
[logs]
level = "debug"

[database]
host = "db"
user = "fleet"
password = "secret"
dbname = "fleet_booking"

[server]
http_port = 8090

[branch_service]
url = "http://branch-service:8080"
timeout = 3

[redis]
addr = "redis:6379"
session_ttl = 30

[events]
enabled = true
brokers = ["kafka:9092"]
`

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.Equal(t, 8090, cfg.Server.HTTPPort)
	assert.Equal(t, 5432, cfg.Database.Port, "default port is kept")
	assert.Equal(t, "fleet.booking.events", cfg.Events.Topic, "default topic is kept")
	assert.Equal(t, []string{"kafka:9092"}, cfg.Events.Brokers)
	assert.Equal(t, "host=db port=5432 user=fleet password=secret dbname=fleet_booking sslmode=disable", cfg.Database.DSN())
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Events.Enabled = true

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database.dbname is required")
	assert.Contains(t, err.Error(), "branch_service.url is required")
	assert.Contains(t, err.Error(), "events.brokers is required")
}
