package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "input.txt", cfg.Grid)
	assert.Equal(t, "wordlist.txt", cfg.Dictionary)
	assert.Equal(t, ValidatorTrie, cfg.Validator)
	assert.Equal(t, 1, cfg.Workers)
	assert.False(t, cfg.AntiDiagonals)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wordgrid.yaml")
	data := `
grid: board.txt
validator: index
workers: 4
anti_diagonals: true
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "board.txt", cfg.Grid)
	assert.Equal(t, "wordlist.txt", cfg.Dictionary, "unset fields keep defaults")
	assert.Equal(t, ValidatorIndex, cfg.Validator)
	assert.Equal(t, 4, cfg.Workers)
	assert.True(t, cfg.AntiDiagonals)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"UnknownValidator": "validator: regex\n",
		"NegativeWorkers":  "workers: -2\n",
		"BadLevel":         "logging:\n  level: loud\n",
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "wordgrid.yaml")
			require.NoError(t, os.WriteFile(path, []byte(data), 0644))

			_, err := Load(path)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfig), "got %v", err)
		})
	}
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wordgrid.yaml")
	require.NoError(t, os.WriteFile(path, []byte("grid: [unterminated\n"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrInvalidConfig))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Validator = ValidatorSet
	cfg.Workers = 3

	path := filepath.Join(t.TempDir(), "nested", "wordgrid.yaml")
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
