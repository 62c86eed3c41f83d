package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/pj"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "pj.yaml", "indent: 4\nstrict_keys: true\ndriver: go-json\nlog_level: \"*:DEBUG\"\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Indent)
	assert.True(t, cfg.StrictKeys)
	assert.Equal(t, DriverGoJSON, cfg.Driver)
	assert.Equal(t, "*:DEBUG", cfg.LogLevel)
	assert.Equal(t, pj.DefaultMaxDepth, cfg.MaxDepth)
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "pj.toml", "compact = true\nmax_depth = 64\nmax_bytes = 1024\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Compact)
	assert.Equal(t, 64, cfg.MaxDepth)
	assert.Equal(t, int64(1024), cfg.MaxBytes)
	assert.Equal(t, DriverNative, cfg.Driver)
}

func TestLoadEmptyYAMLKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeFile(t, "empty.yml", ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFailures(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "pj.json", "{}"))
	assert.True(t, errors.Is(err, ErrUnknownFormat))

	_, err = Load(writeFile(t, "pj.yaml", "indnet: 2\n"))
	assert.Error(t, err, "unknown yaml field")

	_, err = Load(writeFile(t, "pj.toml", "indnet = 2\n"))
	assert.Error(t, err, "unknown toml field")

	_, err = Load(writeFile(t, "pj.yaml", "driver: simdjson\n"))
	assert.True(t, errors.Is(err, ErrInvalidConfig))

	_, err = Load(writeFile(t, "pj.toml", "indent = 40\n"))
	assert.True(t, errors.Is(err, ErrInvalidConfig))

	_, err = Load(writeFile(t, "pj.yaml", "indent: 0\n"))
	assert.True(t, errors.Is(err, ErrInvalidConfig), "zero indent is rejected, not replaced by the default")

	_, err = Load(writeFile(t, "pj.toml", "indent = -1\n"))
	assert.True(t, errors.Is(err, ErrInvalidConfig))
}

func TestCodecRejectsZeroIndent(t *testing.T) {
	cfg := Default()
	cfg.Indent = 0
	_, err := cfg.Codec()
	assert.True(t, errors.Is(err, ErrInvalidConfig))

	cfg.Indent = 1
	codec, err := cfg.Codec()
	require.NoError(t, err)
	assert.Equal(t, " ", codec.Encoding.Indent)
}

func TestCodec(t *testing.T) {
	cfg := Default()
	cfg.Indent = 4
	cfg.StrictKeys = true
	cfg.MaxBytes = 100
	codec, err := cfg.Codec()
	require.NoError(t, err)
	assert.Equal(t, "    ", codec.Encoding.Indent)
	assert.Equal(t, pj.Reject, codec.Decoding.Strictness.OnDuplicateKey)
	assert.Equal(t, int64(100), codec.Decoding.MaxBytes)
	assert.Equal(t, "native", codec.Driver.Name())

	out, err := codec.Format([]byte(`[1]`))
	require.NoError(t, err)
	assert.Equal(t, "[\n    1\n]\n", string(out))

	_, err = codec.Format([]byte(`{"a":1,"a":2}`))
	assert.True(t, pj.IsCode(err, pj.CodeDuplicateKey))

	cfg.StrictKeys = false
	cfg.WarnKeys = true
	codec, err = cfg.Codec()
	require.NoError(t, err)
	assert.Equal(t, pj.Warn, codec.Decoding.Strictness.OnDuplicateKey)

	cfg.Driver = DriverGoJSON
	codec, err = cfg.Codec()
	require.NoError(t, err)
	assert.Equal(t, "go-json", codec.Driver.Name())

	cfg.MaxDepth = -1
	_, err = cfg.Codec()
	assert.True(t, errors.Is(err, ErrInvalidConfig))
}
