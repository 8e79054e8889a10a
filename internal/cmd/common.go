package cmd

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/quillhq/quill/internal/config"
	"github.com/quillhq/quill/internal/log"
	"github.com/quillhq/quill/internal/storage"
	"github.com/quillhq/quill/pkg/article"
	"github.com/quillhq/quill/pkg/article/autosave"
	"github.com/quillhq/quill/pkg/seo"
)

const databaseFileName = "quill.db"

// app bundles the wired-up editor components a command operates on.
type app struct {
	cfg      *config.Config
	logger   *zap.Logger
	kv       storage.Store
	articles *storage.ArticleStore
	store    *article.Store
	coord    *autosave.Coordinator
}

func newApp() (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	if cfg.LogEnabled || fVerbose {
		log.Set(cfg.LogPath, cfg.LogVerbose || fVerbose)
	}
	logger := log.Get()

	dataDir := cfg.DataDir
	if !filepath.IsAbs(dataDir) {
		dataDir = filepath.Join(fChdir, dataDir)
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, errors.Wrap(err, "failed to create data directory")
	}

	kv, err := storage.OpenSQLite(filepath.Join(dataDir, databaseFileName))
	if err != nil {
		return nil, err
	}

	articles := storage.NewArticleStore(
		kv,
		fDocument,
		storage.WithKeys(storage.Keys{
			ArticleData:  cfg.ArticleDataKey,
			ArticleState: cfg.ArticleStateKey,
			LastSaved:    cfg.LastSavedKey,
		}),
		storage.WithLogger(logger.Named("storage")),
	)

	strategy := seo.Strategy(cfg.SEOStrategy)
	store := article.NewStore(
		articles.LoadArticleState(),
		article.WithSaver(articles),
		article.WithLogger(logger.Named("article")),
		article.WithScorer(func(st article.State) (int, []string) {
			return seo.Score(strategy, st), seo.Keywords(st.Content, cfg.MaxKeywords)
		}),
	)

	coord := autosave.New(
		store,
		autosave.WithInterval(cfg.AutosaveInterval),
		autosave.WithLogger(logger.Named("autosave")),
	)

	return &app{
		cfg:      cfg,
		logger:   logger,
		kv:       kv,
		articles: articles,
		store:    store,
		coord:    coord,
	}, nil
}

func loadConfig() (*config.Config, error) {
	loader := config.NewLoader(os.DirFS(fChdir), config.WithLogger(log.Get()))
	return loader.Load()
}

// finish persists any outstanding mutation and releases resources. Commands
// defer it so every mutation survives the process.
func (a *app) finish() error {
	saveErr := a.coord.ForceSave()
	_ = a.coord.Close()
	closeErr := a.kv.Close()
	log.Flush()
	if saveErr != nil {
		return saveErr
	}
	return closeErr
}

// closeOnly releases resources without forcing a save; used by read-only
// commands and clear.
func (a *app) closeOnly() {
	_ = a.coord.Close()
	_ = a.kv.Close()
	log.Flush()
}

func (a *app) apiToken() string {
	return os.Getenv(a.cfg.APITokenEnv)
}
