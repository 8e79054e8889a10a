package config

import (
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseYAML_Full(t *testing.T) {
	data := []byte(`version: v1
storage:
  dataDir: /var/lib/quill
  keys:
    articleData: doc_data
    articleState: doc_state
    lastSaved: doc_saved_at
autosave:
  interval: 2s
seo:
  strategy: structural
  maxKeywords: 5
api:
  baseUrl: https://api.example.com
  tokenEnv: MY_TOKEN
upload:
  baseUrl: https://uploads.example.com
log:
  enabled: true
  verbose: true
`)

	cfg, err := ParseYAML(data)
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/quill", cfg.DataDir)
	assert.Equal(t, "doc_data", cfg.ArticleDataKey)
	assert.Equal(t, "doc_state", cfg.ArticleStateKey)
	assert.Equal(t, "doc_saved_at", cfg.LastSavedKey)
	assert.Equal(t, 2*time.Second, cfg.AutosaveInterval)
	assert.Equal(t, "structural", cfg.SEOStrategy)
	assert.Equal(t, 5, cfg.MaxKeywords)
	assert.Equal(t, "https://api.example.com", cfg.APIBaseURL)
	assert.Equal(t, "MY_TOKEN", cfg.APITokenEnv)
	assert.Equal(t, "https://uploads.example.com", cfg.UploadURL)
	assert.True(t, cfg.LogEnabled)
	assert.True(t, cfg.LogVerbose)
}

func TestParseYAML_MinimalAppliesDefaults(t *testing.T) {
	cfg, err := ParseYAML([]byte("version: v1\n"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParseYAML_UnknownVersion(t *testing.T) {
	_, err := ParseYAML([]byte("version: v9\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown config version")
}

func TestParseYAML_InvalidStrategy(t *testing.T) {
	_, err := ParseYAML([]byte("version: v1\nseo:\n  strategy: vibes\n"))
	require.Error(t, err)
}

func TestParseYAML_InvalidInterval(t *testing.T) {
	_, err := ParseYAML([]byte("version: v1\nautosave:\n  interval: soon\n"))
	require.Error(t, err)
}

func TestParseYAML_InvalidURL(t *testing.T) {
	_, err := ParseYAML([]byte("version: v1\napi:\n  baseUrl: not a url\n"))
	require.Error(t, err)
}

func TestLoader_MissingFileUsesDefaults(t *testing.T) {
	l := NewLoader(fstest.MapFS{})
	cfg, err := l.Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoader_ReadsFile(t *testing.T) {
	fsys := fstest.MapFS{
		"quill.yaml": &fstest.MapFile{Data: []byte("version: v1\nseo:\n  maxKeywords: 3\n")},
	}
	cfg, err := NewLoader(fsys).Load()
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.MaxKeywords)
}

func TestLoader_CustomName(t *testing.T) {
	fsys := fstest.MapFS{
		"other.yaml": &fstest.MapFile{Data: []byte("version: v1\n")},
	}
	_, err := NewLoader(fsys).Load()
	require.NoError(t, err) // falls back to defaults

	cfg, err := NewLoader(fsys, WithConfigName("other.yaml")).Load()
	require.NoError(t, err)
	assert.NotNil(t, cfg)
}

func TestLoader_BadYAMLSurfaces(t *testing.T) {
	fsys := fstest.MapFS{
		"quill.yaml": &fstest.MapFile{Data: []byte("version: v1\nseo: [broken\n")},
	}
	_, err := NewLoader(fsys).Load()
	require.Error(t, err)
}
