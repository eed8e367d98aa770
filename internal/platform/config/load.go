package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "APP_"

// Option adjusts Load.
type Option func(*loadOptions)

type loadOptions struct {
	configDir string
}

// WithConfigDir points Load at dir instead of ./configs.
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) { o.configDir = dir }
}

// Load merges, later layers winning: built-in defaults, configs/base.yaml,
// configs/<profile>.yaml, then APP_* environment variables. Variable names
// are matched against the known keys first, so APP_SERVER_READ_TIMEOUT
// sets server.read_timeout rather than server.read.timeout; unknown names
// fall back to one dot per underscore.
func Load(profile string, opts ...Option) (*Config, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	o := loadOptions{configDir: "configs"}
	for _, opt := range opts {
		opt(&o)
	}

	k, err := withDefaults()
	if err != nil {
		return nil, err
	}
	for _, name := range []string{"base", profile} {
		path := filepath.Join(o.configDir, name+".yaml")
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading %s config %s: %w", name, path, err)
		}
	}
	return finish(k)
}

// Defaults is Load without any YAML files. The CLI uses it so it runs
// outside a checkout of the repository.
func Defaults() (*Config, error) {
	k, err := withDefaults()
	if err != nil {
		return nil, err
	}
	return finish(k)
}

func withDefaults() (*koanf.Koanf, error) {
	k := koanf.New(".")
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}
	return k, nil
}

// finish applies the environment, decodes and validates.
func finish(k *koanf.Koanf) (*Config, error) {
	known := make(map[string]string)
	for _, key := range k.Keys() {
		known[strings.ReplaceAll(key, ".", "_")] = key
	}

	err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(name, value string) (string, any) {
			name = strings.ToLower(strings.TrimPrefix(name, envPrefix))
			if key, ok := known[name]; ok {
				return key, value
			}
			return strings.ReplaceAll(name, "_", "."), value
		},
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}

// validateProfile keeps the profile a bare file name.
func validateProfile(profile string) error {
	switch {
	case strings.TrimSpace(profile) == "":
		return errors.New("profile must not be empty")
	case strings.ContainsAny(profile, `/\`), strings.Contains(profile, ".."):
		return fmt.Errorf("profile must be a plain name, got %q", profile)
	}
	return nil
}
