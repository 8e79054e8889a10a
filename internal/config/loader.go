package config

import (
	"io/fs"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var ErrConfigNotFound = errors.New("configuration file not found")

// DefaultConfigName is the file name the loader looks for.
const DefaultConfigName = "quill.yaml"

// Loader reads the configuration file from a file system root.
type Loader struct {
	rootPath   fs.FS
	configName string
	logger     *zap.Logger
}

type LoaderOption func(*Loader)

func WithLogger(logger *zap.Logger) LoaderOption {
	return func(l *Loader) { l.logger = logger }
}

func WithConfigName(name string) LoaderOption {
	return func(l *Loader) { l.configName = name }
}

func NewLoader(rootPath fs.FS, opts ...LoaderOption) *Loader {
	l := &Loader{
		rootPath:   rootPath,
		configName: DefaultConfigName,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load parses the config file, or returns defaults when none exists.
func (l *Loader) Load() (*Config, error) {
	data, err := l.read()
	if errors.Is(err, ErrConfigNotFound) {
		l.logger.Debug("no configuration file, using defaults", zap.String("name", l.configName))
		return Default(), nil
	}
	if err != nil {
		return nil, err
	}

	cfg, err := ParseYAML(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", l.configName)
	}
	l.logger.Debug("configuration loaded", zap.String("name", l.configName))
	return cfg, nil
}

func (l *Loader) read() ([]byte, error) {
	data, err := fs.ReadFile(l.rootPath, l.configName)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", l.configName)
	}
	return data, nil
}
