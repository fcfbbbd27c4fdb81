package shardassign

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/birchmd/bp-shard-assign-poc/internal/logger"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.Equal(t, 4, cfg.NumShards)
	require.Equal(t, "greedy", cfg.Strategy)
	require.Equal(t, 1, cfg.MinSeatsPerShard)
	require.Equal(t, "shardassign", cfg.Metrics.Namespace)
	require.NoError(t, cfg.Validate())
}

func TestSetDefaults(t *testing.T) {
	t.Run("applies defaults to empty config", func(t *testing.T) {
		cfg := Config{}
		SetDefaults(&cfg)

		require.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("preserves custom values", func(t *testing.T) {
		cfg := Config{
			NumShards:        16,
			Strategy:         "seat-filling",
			MinSeatsPerShard: 4,
			Metrics:          MetricsConfig{Namespace: "chain"},
		}
		SetDefaults(&cfg)

		require.Equal(t, 16, cfg.NumShards)
		require.Equal(t, "seat-filling", cfg.Strategy)
		require.Equal(t, 4, cfg.MinSeatsPerShard)
		require.Equal(t, "chain", cfg.Metrics.Namespace)
	})

	t.Run("applies partial defaults", func(t *testing.T) {
		cfg := Config{NumShards: 8}
		SetDefaults(&cfg)

		require.Equal(t, 8, cfg.NumShards)
		require.Equal(t, "greedy", cfg.Strategy)
		require.Equal(t, 1, cfg.MinSeatsPerShard)
	})
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "round-robin", mutate: func(c *Config) { c.Strategy = "round-robin" }},
		{name: "negative shards", mutate: func(c *Config) { c.NumShards = -1 }, wantErr: ErrInvalidConfig},
		{name: "zero seats", mutate: func(c *Config) { c.MinSeatsPerShard = 0 }, wantErr: ErrInvalidConfig},
		{name: "unknown strategy", mutate: func(c *Config) { c.Strategy = "random" }, wantErr: ErrUnknownStrategy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
			require.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestConfig_ValidateWithWarnings(t *testing.T) {
	rec := &recordingLogger{}

	cfg := DefaultConfig()
	cfg.ValidateWithWarnings(rec)
	require.Empty(t, rec.warns)

	cfg.MinSeatsPerShard = 3
	cfg.NumShards = 4096
	cfg.ValidateWithWarnings(rec)
	require.Len(t, rec.warns, 2)

	rec.warns = nil
	cfg.Strategy = StrategySeatFilling
	cfg.NumShards = 8
	cfg.ValidateWithWarnings(rec)
	require.Empty(t, rec.warns)
}

// TestConfig_YAML verifies YAML field names.
func TestConfig_YAML(t *testing.T) {
	yamlConfig := `
numShards: 8
strategy: seat-filling
minSeatsPerShard: 3
metrics:
  namespace: chain
`

	var cfg Config
	err := yaml.Unmarshal([]byte(yamlConfig), &cfg)
	require.NoError(t, err)

	require.Equal(t, 8, cfg.NumShards)
	require.Equal(t, "seat-filling", cfg.Strategy)
	require.Equal(t, 3, cfg.MinSeatsPerShard)
	require.Equal(t, "chain", cfg.Metrics.Namespace)
}

func TestParseConfig(t *testing.T) {
	t.Run("partial document gets defaults", func(t *testing.T) {
		cfg, err := ParseConfig(strings.NewReader("numShards: 2\n"))
		require.NoError(t, err)

		require.Equal(t, 2, cfg.NumShards)
		require.Equal(t, "greedy", cfg.Strategy)
		require.Equal(t, "shardassign", cfg.Metrics.Namespace)
	})

	t.Run("empty document yields defaults", func(t *testing.T) {
		cfg, err := ParseConfig(strings.NewReader(""))
		require.NoError(t, err)
		require.Equal(t, DefaultConfig(), *cfg)
	})

	t.Run("unknown key rejected", func(t *testing.T) {
		_, err := ParseConfig(strings.NewReader("numShard: 2\n"))
		require.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("invalid value rejected", func(t *testing.T) {
		_, err := ParseConfig(strings.NewReader("strategy: random\n"))
		require.ErrorIs(t, err, ErrUnknownStrategy)
	})
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shardassign.yaml")
	require.NoError(t, os.WriteFile(path, []byte("numShards: 6\nstrategy: round-robin\n"), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, 6, cfg.NumShards)
	require.Equal(t, "round-robin", cfg.Strategy)

	_, err = LoadConfig(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestTestConfig(t *testing.T) {
	cfg := TestConfig()

	require.Equal(t, 2, cfg.NumShards)
	require.NoError(t, cfg.Validate())
}

type recordingLogger struct {
	logger.NopLogger
	warns  []string
	errors []string
}

func (r *recordingLogger) Warn(msg string, _ ...any) {
	r.warns = append(r.warns, msg)
}

func (r *recordingLogger) Error(msg string, _ ...any) {
	r.errors = append(r.errors, msg)
}
