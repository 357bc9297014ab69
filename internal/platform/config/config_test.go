package config

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "file://migrations", cfg.MigrationsPath)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSAllowedOrigins)
	assert.True(t, decimal.NewFromInt(10000).Equal(cfg.RedFlag.LargeCash))
	assert.True(t, decimal.NewFromInt(250000).Equal(cfg.RedFlag.MissingGSTIN))
	assert.Equal(t, 3, cfg.RedFlag.MinSequenceLength)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("REDFLAG_LARGE_CASH", "20000.50")
	t.Setenv("REDFLAG_CASH_CEILING", "not-a-number")
	t.Setenv("REDFLAG_MIN_SEQUENCE_LENGTH", "1")
	t.Setenv("RULES_FILE", "/etc/eagleeye/rules.yaml")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.True(t, decimal.RequireFromString("20000.50").Equal(cfg.RedFlag.LargeCash))
	assert.True(t, decimal.NewFromInt(200000).Equal(cfg.RedFlag.CashCeiling), "malformed value falls back")
	assert.Equal(t, 3, cfg.RedFlag.MinSequenceLength)
	assert.Equal(t, "/etc/eagleeye/rules.yaml", cfg.RulesFile)
}
