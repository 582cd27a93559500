package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_ValoresPorDefecto(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, "analyzed_supply_chain_data.csv", cfg.Data.AnalyzedCSV)
	assert.Equal(t, "inventory_status.csv", cfg.Data.SnapshotCSV)
	assert.Equal(t, "1000", cfg.Inventory.DefaultWarehouseSize.String())
	assert.Empty(t, cfg.Notifier.WebhookURL)
	assert.Equal(t, 5*time.Second, cfg.Notifier.Timeout)
	assert.Equal(t, 1.0, cfg.Notifier.RatePerSecond)
	assert.Equal(t, 1, cfg.Notifier.Burst)
	assert.Equal(t, 30*time.Second, cfg.Notifier.BreakerOpenPeriod)
	assert.False(t, cfg.DB.SnapshotEnabled)
}

func TestFromViper_Sobrescrituras(t *testing.T) {
	v := viper.New()
	v.Set("HTTP_PORT", "9090")
	v.Set("INVENTORY_DEFAULT_WAREHOUSE_SIZE", "2500.5")
	v.Set("NOTIFIER_WEBHOOK_URL", "https://hooks.slack.com/services/x")
	v.Set("DB_SNAPSHOT_ENABLED", "true")
	v.Set("NOTIFIER_BREAKER_OPEN_SECONDS", "120")
	v.Set("NOTIFIER_BURST", "3")

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "2500.5", cfg.Inventory.DefaultWarehouseSize.String())
	assert.Equal(t, "https://hooks.slack.com/services/x", cfg.Notifier.WebhookURL)
	assert.True(t, cfg.DB.SnapshotEnabled)
	assert.Equal(t, 2*time.Minute, cfg.Notifier.BreakerOpenPeriod)
	assert.Equal(t, 3, cfg.Notifier.Burst)
}

func TestFromViper_TamanoInvalido(t *testing.T) {
	for _, val := range []string{"abc", "0", "-10"} {
		v := viper.New()
		v.Set("INVENTORY_DEFAULT_WAREHOUSE_SIZE", val)
		_, err := fromViper(v)
		assert.Error(t, err, "valor %q debe ser rechazado", val)
	}
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss/word", DBName: "inv", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%2Fword@db:5432/inv?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgresql://u:p@h:1/d"
	assert.Equal(t, "postgresql://u:p@h:1/d", c.ConnectionString())
}
