package config

import (
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/cloudlagoon/lagoon/lib/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	assert := require.New(t)
	fs := afero.NewMemMapFs()

	cfg, err := LoadConfig(slog.Default(), fs)
	assert.NoError(err)
	assert.Equal(Listen, cfg.Listen)
	assert.True(cfg.Download.Cache)
	assert.True(cfg.Download.Image.Decode)
	assert.Equal(".jpg", cfg.Download.Image.Suffix)
	assert.Equal(30, cfg.Download.Threading.Image)
	assert.True(filepath.IsAbs(cfg.Download.Root))
	assert.Equal(filepath.Join(cfg.Download.Root, "logs"), cfg.Logging.Dir)
}

func TestLoadConfigFile(t *testing.T) {
	assert := require.New(t)
	fs := afero.NewMemMapFs()
	blob := []byte(`
listen: ":9999"
download:
  root: /srv/lagoon
  cache: false
  image:
    decode: false
    suffix: png
  threading:
    image: 4
remote:
  base_url: http://upstream.local:9080
  timeout: 5s
`)
	assert.NoError(afero.WriteFile(fs, ConfigFileName, blob, 0644))

	cfg, err := LoadConfig(slog.Default(), fs)
	assert.NoError(err)
	assert.Equal(":9999", cfg.Listen)
	assert.Equal("/srv/lagoon", cfg.Download.Root)
	assert.False(cfg.Download.Cache)
	assert.False(cfg.Download.Image.Decode)
	assert.Equal(".png", cfg.Download.Image.Suffix)
	assert.Equal(4, cfg.Download.Threading.Image)
	assert.Equal("http://upstream.local:9080", cfg.Remote.BaseURL)
	assert.Equal(types.Duration(5*time.Second), cfg.Remote.Timeout)
}

func TestProcessConfig(t *testing.T) {
	testCases := []struct {
		desc    string
		in      *Config
		suffix  string
		workers int
	}{
		{
			desc: "suffix gets dot prefixed",
			in: &Config{Download: Download{
				Root:  "/data",
				Image: Image{Suffix: "webp"},
			}},
			suffix:  ".webp",
			workers: 1,
		},
		{
			desc: "dotted suffix kept as is",
			in: &Config{Download: Download{
				Root:      "/data",
				Image:     Image{Suffix: ".jpg"},
				Threading: Threading{Image: 12},
			}},
			suffix:  ".jpg",
			workers: 12,
		},
		{
			desc: "workers clamped to one",
			in: &Config{Download: Download{
				Root:      "/data",
				Image:     Image{Suffix: ".jpg"},
				Threading: Threading{Image: -5},
			}},
			suffix:  ".jpg",
			workers: 1,
		},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			assert := require.New(t)
			cfg := ProcessConfig(tC.in)
			assert.Equal(tC.suffix, cfg.Download.Image.Suffix)
			assert.Equal(tC.workers, cfg.Download.Threading.Image)
		})
	}
}

func TestLoadConfigBadRemote(t *testing.T) {
	assert := require.New(t)
	fs := afero.NewMemMapFs()
	blob := []byte(`
remote:
  base_url: "not a url"
`)
	assert.NoError(afero.WriteFile(fs, ConfigFileName, blob, 0644))

	_, err := LoadConfig(slog.Default(), fs)
	assert.Error(err)
}
