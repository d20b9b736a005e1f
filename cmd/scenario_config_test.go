package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sim "github.com/rich-aroma/opening-sim/sim"
)

func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadScenario_AppliesOverDefaults(t *testing.T) {
	path := writeScenario(t, `
days: 7
closing_hour: 15
staff:
  barista_speed: 1.2
loyalty:
  membership_bonus: 750
traffic:
  - {from_hour: 7, to_hour: 12, chance: 0.5}
default_traffic_chance: 0.05
`)

	s, err := LoadScenario(path)
	require.NoError(t, err)

	cfg := sim.DefaultConfig()
	s.ApplyTo(&cfg)

	assert.Equal(t, 7, cfg.Days)
	assert.Equal(t, 15, cfg.ClosingHour)
	assert.Equal(t, 1.2, cfg.Staff.Barista)
	assert.Equal(t, int64(750), cfg.Loyalty.MembershipBonus)
	assert.Equal(t, 0.5, cfg.Arrivals.ChanceAt(9))
	assert.Equal(t, 0.05, cfg.Arrivals.ChanceAt(14))

	// Untouched fields keep their defaults.
	assert.Equal(t, 7, cfg.OpeningHour)
	assert.Equal(t, 1.5, cfg.Staff.Cashier)
	assert.Equal(t, int64(500), cfg.Loyalty.MembershipPrice)

	// The overlaid config is still valid.
	require.NoError(t, cfg.Validate())
}

func TestLoadScenario_UnknownKeyRejected(t *testing.T) {
	path := writeScenario(t, "dyas: 7\n")
	_, err := LoadScenario(path)
	assert.Error(t, err)
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadScenario_EmptyFileChangesNothing(t *testing.T) {
	path := writeScenario(t, "{}\n")
	s, err := LoadScenario(path)
	require.NoError(t, err)

	cfg := sim.DefaultConfig()
	s.ApplyTo(&cfg)
	assert.Equal(t, sim.DefaultConfig(), cfg)
}
