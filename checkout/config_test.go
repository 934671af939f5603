package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Zero(t, cfg.TaxRatePercent)
	assert.Zero(t, cfg.DiscountAmount)
	assert.Zero(t, cfg.DiscountPercent)
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("MESA_TAX_RATE_PERCENT", "7.5")
	t.Setenv("MESA_DISCOUNT_PERCENT", "10")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.InDelta(t, 7.5, cfg.TaxRatePercent, 1e-9)
	assert.InDelta(t, 10.0, cfg.DiscountPercent, 1e-9)
}
