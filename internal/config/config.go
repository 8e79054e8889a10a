package config

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config is the editor's runtime configuration. Storage keys are part of it
// so that documents and users can be isolated within one backing store
// instead of colliding on hardcoded constants.
type Config struct {
	// Storage fields.
	DataDir          string
	ArticleDataKey   string
	ArticleStateKey  string
	LastSavedKey     string

	// Autosave fields.
	AutosaveInterval time.Duration

	// SEO fields.
	SEOStrategy string
	MaxKeywords int

	// Collaborator fields.
	APIBaseURL  string
	APITokenEnv string
	UploadURL   string

	// Log fields.
	LogEnabled bool
	LogPath    string
	LogVerbose bool
}

func Default() *Config {
	return &Config{
		DataDir:          ".",
		ArticleDataKey:   "article_data",
		ArticleStateKey:  "article_state",
		LastSavedKey:     "last_saved",
		AutosaveInterval: time.Second,
		SEOStrategy:      "editorial",
		MaxKeywords:      10,
		APITokenEnv:      "QUILL_API_TOKEN",
	}
}

// ParseYAML reads a versioned config document. Unknown versions are
// rejected rather than guessed at.
func ParseYAML(data []byte) (*Config, error) {
	version, err := parseVersionFromYAML(data)
	if err != nil {
		return nil, err
	}
	switch version {
	case "v1":
		cfg, err := parseYAMLv1(data)
		if err != nil {
			return nil, err
		}
		if err := validateConfig(cfg); err != nil {
			return nil, errors.Wrap(err, "failed to validate config")
		}
		return cfg, nil
	default:
		return nil, errors.Errorf("unknown config version: %q", version)
	}
}

type versionOnly struct {
	Version string `yaml:"version"`
}

func parseVersionFromYAML(data []byte) (string, error) {
	var result versionOnly
	if err := yaml.Unmarshal(data, &result); err != nil {
		return "", errors.Wrap(err, "failed to unmarshal version")
	}
	return result.Version, nil
}

type configV1 struct {
	Version string `yaml:"version"`

	Storage struct {
		DataDir string `yaml:"dataDir"`
		Keys    struct {
			ArticleData  string `yaml:"articleData"`
			ArticleState string `yaml:"articleState"`
			LastSaved    string `yaml:"lastSaved"`
		} `yaml:"keys"`
	} `yaml:"storage"`

	Autosave struct {
		Interval string `yaml:"interval"`
	} `yaml:"autosave"`

	SEO struct {
		Strategy    string `yaml:"strategy"`
		MaxKeywords int    `yaml:"maxKeywords"`
	} `yaml:"seo"`

	API struct {
		BaseURL  string `yaml:"baseUrl"`
		TokenEnv string `yaml:"tokenEnv"`
	} `yaml:"api"`

	Upload struct {
		BaseURL string `yaml:"baseUrl"`
	} `yaml:"upload"`

	Log struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
		Verbose bool   `yaml:"verbose"`
	} `yaml:"log"`
}

func parseYAMLv1(data []byte) (*Config, error) {
	var raw configV1
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	cfg := Default()

	if raw.Storage.DataDir != "" {
		cfg.DataDir = raw.Storage.DataDir
	}
	if raw.Storage.Keys.ArticleData != "" {
		cfg.ArticleDataKey = raw.Storage.Keys.ArticleData
	}
	if raw.Storage.Keys.ArticleState != "" {
		cfg.ArticleStateKey = raw.Storage.Keys.ArticleState
	}
	if raw.Storage.Keys.LastSaved != "" {
		cfg.LastSavedKey = raw.Storage.Keys.LastSaved
	}
	if raw.Autosave.Interval != "" {
		interval, err := time.ParseDuration(raw.Autosave.Interval)
		if err != nil {
			return nil, errors.Wrap(err, "invalid autosave interval")
		}
		cfg.AutosaveInterval = interval
	}
	if raw.SEO.Strategy != "" {
		cfg.SEOStrategy = raw.SEO.Strategy
	}
	if raw.SEO.MaxKeywords > 0 {
		cfg.MaxKeywords = raw.SEO.MaxKeywords
	}
	if raw.API.BaseURL != "" {
		cfg.APIBaseURL = raw.API.BaseURL
	}
	if raw.API.TokenEnv != "" {
		cfg.APITokenEnv = raw.API.TokenEnv
	}
	cfg.UploadURL = raw.Upload.BaseURL
	cfg.LogEnabled = raw.Log.Enabled
	cfg.LogPath = raw.Log.Path
	cfg.LogVerbose = raw.Log.Verbose

	return cfg, nil
}

type validatableConfig struct {
	ArticleDataKey   string        `validate:"required"`
	ArticleStateKey  string        `validate:"required,nefield=ArticleDataKey"`
	LastSavedKey     string        `validate:"required"`
	AutosaveInterval time.Duration `validate:"gt=0"`
	SEOStrategy      string        `validate:"oneof=editorial structural"`
	MaxKeywords      int           `validate:"gt=0"`
	APIBaseURL       string        `validate:"omitempty,url"`
	UploadURL        string        `validate:"omitempty,url"`
}

func validateConfig(cfg *Config) error {
	v := validator.New()
	return errors.WithStack(v.Struct(validatableConfig{
		ArticleDataKey:   cfg.ArticleDataKey,
		ArticleStateKey:  cfg.ArticleStateKey,
		LastSavedKey:     cfg.LastSavedKey,
		AutosaveInterval: cfg.AutosaveInterval,
		SEOStrategy:      cfg.SEOStrategy,
		MaxKeywords:      cfg.MaxKeywords,
		APIBaseURL:       cfg.APIBaseURL,
		UploadURL:        cfg.UploadURL,
	}))
}
