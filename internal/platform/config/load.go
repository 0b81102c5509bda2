package config

import (
	"errors"
	"fmt"
	iofs "io/fs"
	"os"
	"path"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/fs"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix        = "APP_"
	defaultConfigDir = "configs"
)

// Option configures Load.
type Option func(*loadOptions)

type loadOptions struct {
	files     iofs.FS
	extra     []string
	overrides map[string]any
}

// WithConfigDir reads the YAML files from dir on disk. The default is
// "configs" relative to the working directory.
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) {
		o.files = os.DirFS(dir)
	}
}

// WithFS reads the YAML files from fsys, for example an embedded copy of
// the configs directory.
func WithFS(fsys iofs.FS) Option {
	return func(o *loadOptions) {
		o.files = fsys
	}
}

// WithFile layers the YAML file at name over the profile, before the
// environment. It may be given more than once; later files win.
func WithFile(name string) Option {
	return func(o *loadOptions) {
		o.extra = append(o.extra, name)
	}
}

// WithOverrides sets dotted keys after every other layer, so explicit
// command-line choices beat both the profile and the environment. The
// result is still validated.
func WithOverrides(values map[string]any) Option {
	return func(o *loadOptions) {
		if o.overrides == nil {
			o.overrides = make(map[string]any, len(values))
		}
		for k, v := range values {
			o.overrides[k] = v
		}
	}
}

// Load builds the configuration for profile from these layers, later ones
// winning:
//
//  1. compiled-in defaults
//  2. base.yaml
//  3. {profile}.yaml
//  4. WithFile files
//  5. APP_ environment variables
//  6. WithOverrides values
//
// Environment names are matched against the keys already loaded so that
// underscores inside a field name survive:
//
//	APP_SERVER_READ_TIMEOUT              -> server.read_timeout
//	APP_STORE_DRIVER                     -> store.driver
//	APP_NOTIFY_CLIENT_RETRY_MAX_ATTEMPTS -> notify.client.retry.max_attempts
func Load(profile string, opts ...Option) (*Config, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	o := &loadOptions{files: os.DirFS(defaultConfigDir)}
	for _, opt := range opts {
		opt(o)
	}

	k := koanf.New(".")
	if err := setAll(k, defaults()); err != nil {
		return nil, fmt.Errorf("setting defaults: %w", err)
	}

	for _, name := range []string{"base.yaml", profile + ".yaml"} {
		if err := k.Load(fs.Provider(o.files, name), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config %s: %w", name, err)
		}
	}
	for _, p := range o.extra {
		if err := k.Load(file.Provider(p), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config %s: %w", p, err)
		}
	}

	lookup := buildEnvLookup(k.Keys())
	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
			if dotted, ok := lookup[key]; ok {
				return dotted, value
			}
			return strings.ReplaceAll(key, "_", "."), value
		},
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	if err := setAll(k, o.overrides); err != nil {
		return nil, fmt.Errorf("applying overrides: %w", err)
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

func setAll(k *koanf.Koanf, values map[string]any) error {
	for key, val := range values {
		if err := k.Set(key, val); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}
	return nil
}

// validateProfile rejects names that could escape the config directory.
func validateProfile(profile string) error {
	if strings.TrimSpace(profile) == "" {
		return errors.New("profile must not be empty")
	}
	if strings.ContainsAny(profile, `/\`) || path.Clean(profile) != profile || strings.Contains(profile, "..") {
		return fmt.Errorf("profile must be a plain file name, got %q", profile)
	}
	return nil
}

// buildEnvLookup maps the underscore form of every known key back to its
// dotted form, e.g. "server_read_timeout" to "server.read_timeout".
func buildEnvLookup(keys []string) map[string]string {
	lookup := make(map[string]string, len(keys))
	for _, key := range keys {
		lookup[strings.ReplaceAll(key, ".", "_")] = key
	}
	return lookup
}
