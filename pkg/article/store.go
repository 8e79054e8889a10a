package article

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Saver persists article state. Implementations are best-effort; the Store
// logs failures from ForceSave but continues operating on its in-memory
// state either way.
type Saver interface {
	SaveState(State) error
	ClearState() error
}

// Scorer recomputes the SEO score and keywords from the current state. It is
// invoked synchronously after every Data mutation.
type Scorer func(State) (score int, keywords []string)

// Store owns the article's state. It is the only writer to State; all
// mutations go through its methods under a single mutex, which stands in for
// the one-logical-writer guarantee of the event loop this engine replaces.
type Store struct {
	mu        sync.RWMutex
	state     State
	saver     Saver
	scorer    Scorer
	listeners []func()
	now       func() time.Time
	logger    *zap.Logger
}

type StoreOption func(*Store)

func WithSaver(s Saver) StoreOption {
	return func(st *Store) { st.saver = s }
}

func WithScorer(s Scorer) StoreOption {
	return func(st *Store) { st.scorer = s }
}

func WithLogger(l *zap.Logger) StoreOption {
	return func(st *Store) { st.logger = l }
}

func WithNowFunc(now func() time.Time) StoreOption {
	return func(st *Store) { st.now = now }
}

// NewStore creates a Store seeded with initial. Passing a zero State is not
// supported; use DefaultState or a state restored from storage.
func NewStore(initial State, opts ...StoreOption) *Store {
	s := &Store{
		state:  initial,
		now:    time.Now,
		logger: zap.NewNop(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Subscribe registers fn to run after every Data mutation. Derived-field
// updates (SEO metrics, lastSaved) do not fire listeners, otherwise the
// autosave loop would retrigger itself.
func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	s.mu.Unlock()
}

func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.clone()
}

// UpdateData applies a shallow merge of p into the current Data and
// recomputes every derived field.
func (s *Store) UpdateData(p Patch) {
	s.mutate(func(st *State) {
		p.apply(&st.Data)
	})
}

// SetContent is the single entry point for body edits. Word count and
// reading time are recomputed immediately so they can never diverge from
// the content.
func (s *Store) SetContent(content string) {
	s.mutate(func(st *State) {
		st.Content = content
	})
}

func (s *Store) SetTitle(title string) {
	s.mutate(func(st *State) {
		st.Title = title
	})
}

// UpdateSEOMetrics overrides the derived SEO fields. Callers normally rely
// on the injected Scorer instead; this exists for callers that compute
// scores out of band. Does not fire listeners.
func (s *Store) UpdateSEOMetrics(score int, keywords []string) {
	s.mu.Lock()
	s.state.SEOScore = score
	s.state.SEOKeywords = append([]string(nil), keywords...)
	s.mu.Unlock()
}

// Publish marks the article published. Forward-only: there is no unpublish.
func (s *Store) Publish() {
	s.mutate(func(st *State) {
		st.Status = StatusPublished
		st.ScheduledAt = nil
	})
}

// Schedule marks the article scheduled for at.
func (s *Store) Schedule(at time.Time) {
	s.mutate(func(st *State) {
		st.Status = StatusScheduled
		st.ScheduledAt = &at
	})
}

// SetLastSaved stamps the save timestamp. Reserved for the autosave
// coordinator and ForceSave; user code must not call it.
func (s *Store) SetLastSaved(t time.Time) {
	s.mu.Lock()
	s.state.LastSaved = &t
	s.mu.Unlock()
}

// ForceSave writes the current state through the Saver immediately,
// bypassing any debounce. The save is best-effort: an error is returned for
// surfacing but the in-memory state is untouched by failure.
func (s *Store) ForceSave() error {
	if s.saver == nil {
		s.logger.Debug("force save skipped, no saver configured")
		return nil
	}

	snap := s.Snapshot()
	if err := s.saver.SaveState(snap); err != nil {
		s.logger.Warn("force save failed", zap.Error(err))
		return err
	}
	s.SetLastSaved(s.now())
	return nil
}

// ClearAll resets the state to defaults and purges persisted storage. It is
// idempotent and does not fire listeners; a clear should not be followed by
// an autosave of the defaults it just wrote.
func (s *Store) ClearAll() {
	s.mu.Lock()
	s.state = DefaultState()
	s.mu.Unlock()

	if s.saver == nil {
		return
	}
	if err := s.saver.ClearState(); err != nil {
		s.logger.Warn("failed to purge persisted article state", zap.Error(err))
	}
}

func (s *Store) mutate(fn func(*State)) {
	s.mu.Lock()
	fn(&s.state)
	s.state.WordCount = WordCount(s.state.Content)
	s.state.ReadingTime = ReadingTime(s.state.WordCount)
	if s.scorer != nil {
		score, keywords := s.scorer(s.state.clone())
		s.state.SEOScore = score
		s.state.SEOKeywords = keywords
	}
	listeners := append([]func(){}, s.listeners...)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}

func (st State) clone() State {
	out := st
	if st.Tags != nil {
		out.Tags = append(make([]string, 0, len(st.Tags)), st.Tags...)
	}
	if st.SEOKeywords != nil {
		out.SEOKeywords = append(make([]string, 0, len(st.SEOKeywords)), st.SEOKeywords...)
	}
	if st.LastSaved != nil {
		t := *st.LastSaved
		out.LastSaved = &t
	}
	if st.ScheduledAt != nil {
		t := *st.ScheduledAt
		out.ScheduledAt = &t
	}
	return out
}
