package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, DriverMemory, cfg.DBDriver)
	assert.Equal(t, "8000", cfg.ServerPort)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, "@every 10m", cfg.StatusWorkerSchedule)
	assert.True(t, cfg.StatusWorkerEnabled)
	assert.Empty(t, cfg.KafkaBrokers)
}

func TestLoadConfig_PrefixedOverrides(t *testing.T) {
	t.Setenv("AIRJUSTICE_DB_DRIVER", "sqlite")
	t.Setenv("AIRJUSTICE_KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("AIRJUSTICE_TIMEZONE", "Asia/Kolkata")
	t.Setenv("AIRJUSTICE_RANDOM_SEED", "42")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, int64(42), cfg.RandomSeed)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "Asia/Kolkata", loc.String())
}

func TestLoadConfig_RejectsUnknownDriver(t *testing.T) {
	t.Setenv("AIRJUSTICE_DB_DRIVER", "oracle")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported DB_DRIVER")
}

func TestMySQLDSN(t *testing.T) {
	cfg := &Config{DBUser: "aj", DBPassword: "pw", DBHost: "db", DBPort: "3306", DBName: "airjustice"}
	assert.Equal(t, "aj:pw@tcp(db:3306)/airjustice?parseTime=true&charset=utf8mb4&loc=UTC", cfg.MySQLDSN())
}
