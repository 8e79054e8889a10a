package storage

import (
	"time"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/quillhq/quill/pkg/article"
)

// SchemaVersion is written into every persisted envelope. Envelopes with a
// different version are treated like corrupt data: defaults win.
const SchemaVersion = 1

// Keys names the storage keys an ArticleStore owns. Injecting them keeps
// multiple documents or users isolated within one backing store.
type Keys struct {
	ArticleData  string
	ArticleState string
	LastSaved    string
}

func DefaultKeys() Keys {
	return Keys{
		ArticleData:  "article_data",
		ArticleState: "article_state",
		LastSaved:    "last_saved",
	}
}

func (k Keys) all() []string {
	return []string{k.ArticleData, k.ArticleState, k.LastSaved}
}

type envelope struct {
	Version int            `json:"v"`
	State   *article.State `json:"state,omitempty"`
	Data    *article.Data  `json:"data,omitempty"`
}

// ArticleStore binds a namespace of a Store to the article keys. Reads
// recover locally: a missing or corrupt value falls back to defaults with a
// logged diagnostic, never an error to the caller. Writes are best-effort;
// the error is returned for status surfacing but the caller's state is
// never blocked on it.
type ArticleStore struct {
	store  Store
	ns     string
	keys   Keys
	logger *zap.Logger
	now    func() time.Time
}

type ArticleStoreOption func(*ArticleStore)

func WithKeys(k Keys) ArticleStoreOption {
	return func(a *ArticleStore) { a.keys = k }
}

func WithLogger(l *zap.Logger) ArticleStoreOption {
	return func(a *ArticleStore) { a.logger = l }
}

func WithNowFunc(now func() time.Time) ArticleStoreOption {
	return func(a *ArticleStore) { a.now = now }
}

func NewArticleStore(store Store, namespace string, opts ...ArticleStoreOption) *ArticleStore {
	a := &ArticleStore{
		store:  store,
		ns:     namespace,
		keys:   DefaultKeys(),
		logger: zap.NewNop(),
		now:    time.Now,
	}
	for _, o := range opts {
		o(a)
	}
	return a
}

// LoadArticleState restores the persisted state, substituting defaults for
// anything absent or unreadable.
func (a *ArticleStore) LoadArticleState() article.State {
	var env envelope
	err := a.store.Load(a.ns, a.keys.ArticleState, &env)
	switch {
	case errors.Is(err, ErrNotFound):
		return article.DefaultState()
	case err != nil:
		a.logger.Warn("failed to load article state, using defaults", zap.Error(err))
		return article.DefaultState()
	case env.Version != SchemaVersion || env.State == nil:
		a.logger.Warn("unexpected article state schema, using defaults",
			zap.Int("version", env.Version))
		return article.DefaultState()
	}

	state := *env.State
	if ls := a.LastSaved(); ls != nil {
		state.LastSaved = ls
	}
	return state
}

// SaveArticleState writes the data, state and last-saved keys.
func (a *ArticleStore) SaveArticleState(st article.State) error {
	data := st.Data
	err := multierr.Combine(
		a.store.Save(a.ns, a.keys.ArticleData, envelope{Version: SchemaVersion, Data: &data}),
		a.store.Save(a.ns, a.keys.ArticleState, envelope{Version: SchemaVersion, State: &st}),
		a.store.Save(a.ns, a.keys.LastSaved, a.now().Format(time.RFC3339Nano)),
	)
	if err != nil {
		a.logger.Warn("failed to persist article state", zap.Error(err))
		return errors.Wrap(err, "failed to persist article state")
	}
	return nil
}

// ClearArticleState removes all owned keys unconditionally.
func (a *ArticleStore) ClearArticleState() error {
	var err error
	for _, key := range a.keys.all() {
		err = multierr.Append(err, a.store.Delete(a.ns, key))
	}
	if err != nil {
		a.logger.Warn("failed to clear article state", zap.Error(err))
		return errors.Wrap(err, "failed to clear article state")
	}
	return nil
}

// LastSaved returns the persisted save timestamp, nil when absent or
// unreadable.
func (a *ArticleStore) LastSaved() *time.Time {
	var raw string
	if err := a.store.Load(a.ns, a.keys.LastSaved, &raw); err != nil {
		if !errors.Is(err, ErrNotFound) {
			a.logger.Debug("failed to load last-saved timestamp", zap.Error(err))
		}
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		a.logger.Debug("invalid last-saved timestamp", zap.String("value", raw), zap.Error(err))
		return nil
	}
	return &t
}

// SaveState and ClearState adapt ArticleStore to article.Saver.
func (a *ArticleStore) SaveState(st article.State) error { return a.SaveArticleState(st) }

func (a *ArticleStore) ClearState() error { return a.ClearArticleState() }
