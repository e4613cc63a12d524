package config

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	tpl "github.com/cloudcopper/misc/env/template"
	"github.com/cloudlagoon/lagoon/lib"
	"github.com/cloudlagoon/lagoon/lib/types"
	"github.com/cloudlagoon/lagoon/ports"
	"github.com/spf13/afero"

	"gopkg.in/yaml.v3"
)

var (
	Listen         = ":8080"
	ConfigFileName = "lagoon.yml"
)

type Image struct {
	Decode bool   `yaml:"decode"`
	Suffix string `yaml:"suffix" validate:"required"`
}

type Threading struct {
	Image int `yaml:"image" validate:"min=1"`
}

type Download struct {
	Root      string    `yaml:"root" validate:"required,abspath"`
	Cache     bool      `yaml:"cache"`
	Image     Image     `yaml:"image"`
	Threading Threading `yaml:"threading"`
}

type Remote struct {
	BaseURL string         `yaml:"base_url" validate:"required,url"`
	Timeout types.Duration `yaml:"timeout"`
}

type Logging struct {
	Dir string `yaml:"dir"`
}

type Config struct {
	Listen   string   `yaml:"listen" validate:"required"`
	Download Download `yaml:"download"`
	Remote   Remote   `yaml:"remote"`
	Logging  Logging  `yaml:"logging"`
}

func (c *Config) String() string {
	s := ""
	s += fmt.Sprintf("listen: %v\n", c.Listen)
	s += fmt.Sprintf("download.root: %v\n", c.Download.Root)
	s += fmt.Sprintf("download.cache: %v\n", c.Download.Cache)
	s += fmt.Sprintf("download.image.decode: %v\n", c.Download.Image.Decode)
	s += fmt.Sprintf("download.image.suffix: %v\n", c.Download.Image.Suffix)
	s += fmt.Sprintf("download.threading.image: %v\n", c.Download.Threading.Image)
	s += fmt.Sprintf("remote.base_url: %v\n", c.Remote.BaseURL)
	s += fmt.Sprintf("remote.timeout: %v\n", c.Remote.Timeout)
	s += fmt.Sprintf("logging.dir: %v", c.Logging.Dir)
	return s
}

func DefaultConfig() *Config {
	return &Config{
		Listen: Listen,
		Download: Download{
			Root:  "./data",
			Cache: true,
			Image: Image{
				Decode: true,
				Suffix: ".jpg",
			},
			Threading: Threading{
				Image: 30,
			},
		},
		Remote: Remote{
			BaseURL: "http://127.0.0.1:9080",
			Timeout: types.Duration(30 * time.Second),
		},
	}
}

func LoadConfig(log ports.Logger, f ports.FS) (*Config, error) {
	cfg, err := loadConfigFile(log, f, ConfigFileName)
	if err != nil {
		return cfg, err
	}
	cfg = ProcessConfig(cfg)

	if err := lib.Validate.Struct(cfg); err != nil {
		return cfg, err
	}

	// dump effective config
	dump := strings.Split(cfg.String(), "\n")
	for _, s := range dump {
		log.Debug(s)
	}
	return cfg, nil
}

// The loadConfigFile reads named config from given fs,
// execute file as env template,
// and unmarshal result over the compiled defaults
func loadConfigFile(log ports.Logger, f ports.FS, fileName string) (*Config, error) {
	cfg := DefaultConfig()

	exist, _ := afero.Exists(f, fileName)
	if !exist {
		log.Warn("config file not found - using defaults", slog.String("fileName", fileName))
		return cfg, nil
	}

	log.Info("loading config", slog.String("fileName", fileName))
	blob, err := afero.ReadFile(f, fileName)
	if err != nil {
		return nil, err
	}

	// parse config as template
	t, err := tpl.Parse(string(blob))
	if err != nil {
		return nil, err
	}
	// execute template
	s, err := t.Execute()
	if err != nil {
		return nil, err
	}

	// unmarshal config
	err = yaml.Unmarshal([]byte(s), cfg)
	return cfg, err
}

// ProcessConfig normalizes the loaded values: the canonical suffix is
// always dot prefixed, the image concurrency at least one, the download
// root absolute and the log dir defaulted under it.
func ProcessConfig(cfg *Config) *Config {
	suffix := cfg.Download.Image.Suffix
	if suffix != "" && !strings.HasPrefix(suffix, ".") {
		cfg.Download.Image.Suffix = "." + suffix
	}

	if cfg.Download.Threading.Image < 1 {
		cfg.Download.Threading.Image = 1
	}

	if root, err := filepath.Abs(cfg.Download.Root); err == nil {
		cfg.Download.Root = root
	}

	if cfg.Logging.Dir == "" {
		cfg.Logging.Dir = filepath.Join(cfg.Download.Root, "logs")
	}

	return cfg
}
