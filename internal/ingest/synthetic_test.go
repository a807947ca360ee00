package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Udaynanda/backtester/internal/bookcore"
)

func TestGenerateSyntheticDeterministic(t *testing.T) {
	cfg := NewSyntheticConfig()
	cfg.Count = 100

	a := GenerateSynthetic(cfg)
	b := GenerateSynthetic(cfg)

	require.Equal(t, len(a), len(b))
	for i := range a {
		assert.Equal(t, a[i], b[i])
	}
}

func TestGenerateSyntheticShape(t *testing.T) {
	cfg := NewSyntheticConfig()
	cfg.Count = 50

	ticks := GenerateSynthetic(cfg)
	require.Len(t, ticks, 50)

	for i, tk := range ticks {
		assert.Equal(t, cfg.Symbol, tk.Symbol)
		assert.Greater(t, tk.Price, bookcore.Price(0))
		assert.GreaterOrEqual(t, tk.Volume, bookcore.Quantity(100))
		assert.LessOrEqual(t, tk.Volume, bookcore.Quantity(1000))
		if i > 0 {
			assert.Greater(t, tk.Timestamp, ticks[i-1].Timestamp)
		}
	}
}

func TestGenerateSyntheticDifferentSeedsDiverge(t *testing.T) {
	cfg1 := NewSyntheticConfig()
	cfg1.Count = 20
	cfg2 := cfg1
	cfg2.Seed = 43

	a := GenerateSynthetic(cfg1)
	b := GenerateSynthetic(cfg2)

	diff := false
	for i := range a {
		if a[i].Price != b[i].Price {
			diff = true
			break
		}
	}
	assert.True(t, diff, "expected different seeds to diverge")
}
