package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validYAML = `
server:
  host: "0.0.0.0"
  port: 8080
  public_base_url: "https://app.samedayramps.com"
  staff_key: "dev-staff-key"
database:
  host: "localhost"
  port: 5432
  user: "postgres"
  database: "samedayramps"
token:
  secret: "0123456789abcdef0123456789abcdef"
pricing:
  url: "http://localhost:9001"
payments:
  url: "http://localhost:9002"
esign:
  url: "http://localhost:9003"
calendar:
  url: "http://localhost:9004"
`

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("AppliesDefaults", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, validYAML))
		require.NoError(t, err)

		assert.Equal(t, 500, cfg.Pricing.DebounceMillis)
		assert.Equal(t, 30, cfg.Token.ExpiryDays)
		assert.Equal(t, "/metrics", cfg.Metrics.Path)
		assert.Equal(t, "0 */5 * * * *", cfg.Scheduler.SyncPaymentStatuses)
		assert.Equal(t, "0 */10 * * * *", cfg.Scheduler.SyncAgreementStatuses)
		assert.Equal(t, "http://localhost:9003/sign", cfg.Esign.SigningBaseURL)
	})

	t.Run("InServerSchedulerOffByDefault", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, validYAML))
		require.NoError(t, err)

		assert.False(t, cfg.Scheduler.InServer, "the cronjob binary owns the sync jobs unless opted in")
	})

	t.Run("InServerSchedulerOptIn", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, validYAML+`
scheduler:
  in_server: true
`))
		require.NoError(t, err)

		assert.True(t, cfg.Scheduler.InServer)
	})

	t.Run("RejectsShortTokenSecret", func(t *testing.T) {
		yaml := `
server:
  port: 8080
  public_base_url: "https://app.samedayramps.com"
database:
  host: "localhost"
  user: "postgres"
  database: "samedayramps"
token:
  secret: "too-short"
pricing:
  url: "http://localhost:9001"
payments:
  url: "http://localhost:9002"
esign:
  url: "http://localhost:9003"
calendar:
  url: "http://localhost:9004"
`
		t.Setenv("ACCEPTANCE_TOKEN_SECRET", "")
		_, err := Load(writeConfig(t, yaml))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least 32 characters")
	})
}
