// Package config provides the configuration loader for outfit.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/outfit/internal/core/domain"
	"go.trai.ch/outfit/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Environment variables consulted by the loader.
const (
	EnvConfigPath     = "OUTFIT_CONFIG"
	EnvHubEndpoint    = "HF_ENDPOINT"
	EnvHubToken       = "HF_TOKEN"
	EnvHubTokenLegacy = "HUGGING_FACE_HUB_TOKEN"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
	// Getenv reads environment variables. Nil means os.Getenv.
	Getenv func(string) string
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger, Getenv: os.Getenv}
}

// Load reads the configuration for cwd.
// The file is OUTFIT_CONFIG when set, otherwise outfit.yaml in cwd.
// A missing default file yields the defaults; a missing explicit file is an error.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	cfg := domain.DefaultConfig()

	configPath, explicit := l.configPath(cwd)

	file, err := readFile(configPath)
	switch {
	case err == nil:
		if applyErr := l.apply(cfg, file, configPath); applyErr != nil {
			return nil, applyErr
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
		// Defaults only.
	case errors.Is(err, os.ErrNotExist):
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", configPath)
	default:
		return nil, zerr.With(err, "path", configPath)
	}

	l.applyEnv(cfg)
	return cfg, nil
}

func (l *Loader) getenv(key string) string {
	if l.Getenv == nil {
		return os.Getenv(key)
	}
	return l.Getenv(key)
}

func (l *Loader) configPath(cwd string) (path string, explicit bool) {
	if p := l.getenv(EnvConfigPath); p != "" {
		if !filepath.IsAbs(p) {
			p = filepath.Join(cwd, p)
		}
		return p, true
	}
	return filepath.Join(cwd, domain.ConfigFileName), false
}

func (l *Loader) apply(cfg *domain.Config, file *File, configPath string) error {
	if file.ModelsDir != "" {
		dir := file.ModelsDir
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(filepath.Dir(configPath), dir)
		}
		cfg.ModelsDir = filepath.Clean(dir)
	}

	if hub := file.Hub; hub != nil {
		if hub.Endpoint != "" {
			cfg.Hub.Endpoint = hub.Endpoint
		}
		if hub.Revision != "" {
			cfg.Hub.Revision = hub.Revision
		}
		if hub.Token != "" {
			cfg.Hub.Token = hub.Token
			l.warnIfShared(configPath)
		}
		if hub.Timeout != "" {
			d, err := time.ParseDuration(hub.Timeout)
			if err == nil && d < 0 {
				err = errors.New("negative duration")
			}
			if err != nil {
				return zerr.With(zerr.Wrap(err, domain.ErrInvalidTimeout.Error()), "timeout", hub.Timeout)
			}
			cfg.Hub.Timeout = d
		}
	}

	if b := file.Bootstrap; b != nil {
		if b.Skip != nil {
			cfg.Bootstrap.Skip = *b.Skip
		}
		if b.System != nil {
			cfg.Bootstrap.System = *b.System
		}
		if b.Python != "" {
			cfg.Bootstrap.Python = b.Python
		}
	}

	return nil
}

// applyEnv lets the hub's standard variables override the file.
func (l *Loader) applyEnv(cfg *domain.Config) {
	if v := l.getenv(EnvHubEndpoint); v != "" {
		cfg.Hub.Endpoint = v
	}
	for _, key := range []string{EnvHubToken, EnvHubTokenLegacy} {
		if v := l.getenv(key); v != "" {
			cfg.Hub.Token = v
			break
		}
	}
}

func (l *Loader) warnIfShared(configPath string) {
	if l.Logger == nil {
		return
	}
	info, err := os.Stat(configPath)
	if err != nil {
		return
	}
	if info.Mode().Perm()&0o044 != 0 {
		l.Logger.Warn(fmt.Sprintf("%s holds a hub token and is readable by other users", configPath))
	}
}

func readFile(configPath string) (*File, error) {
	// #nosec G304 -- configPath comes from cwd or OUTFIT_CONFIG
	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		return nil, zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	var file File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}

	return &file, nil
}
