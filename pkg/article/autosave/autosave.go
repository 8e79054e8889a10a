// Package autosave debounces article mutations into best-effort persisted
// saves. Only the trailing state of a quiet window is ever written;
// intermediate states are never separately persisted.
package autosave

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/quillhq/quill/pkg/article"
)

// DefaultInterval is the inactivity window after which a pending change is
// persisted.
const DefaultInterval = time.Second

// Status is the coordinator's externally visible state.
type Status int

const (
	StatusIdle Status = iota
	StatusPending
	StatusSaving
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusPending:
		return "pending"
	case StatusSaving:
		return "saving"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Clock abstracts timer creation so the debounce window can be driven by a
// fake clock in tests.
type Clock interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

type Timer interface {
	Stop() bool
}

type systemClock struct{}

func (systemClock) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}

// SystemClock returns a Clock backed by the runtime's timers.
func SystemClock() Clock { return systemClock{} }

// Coordinator watches a Store and persists its state after a quiet window.
// State machine: Idle -> Pending -> Saving -> Idle. A mutation arriving
// while a save is in flight queues exactly one follow-up Pending cycle; the
// in-flight save is never merged into or canceled.
type Coordinator struct {
	mu       sync.Mutex
	store    *article.Store
	interval time.Duration
	clock    Clock
	logger   *zap.Logger

	timer     Timer
	status    Status
	lastErr   error
	saving    bool
	dirty     bool
	closed    bool
}

type Option func(*Coordinator)

func WithInterval(d time.Duration) Option {
	return func(c *Coordinator) { c.interval = d }
}

func WithClock(clock Clock) Option {
	return func(c *Coordinator) { c.clock = clock }
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Coordinator) { c.logger = l }
}

// New wires a Coordinator to store. It subscribes to the store's mutation
// events; callers only interact with ForceSave, Status and Close.
func New(store *article.Store, opts ...Option) *Coordinator {
	c := &Coordinator{
		store:    store,
		interval: DefaultInterval,
		clock:    SystemClock(),
		logger:   zap.NewNop(),
	}
	for _, o := range opts {
		o(c)
	}
	store.Subscribe(c.Notify)
	return c
}

// Notify records a mutation. It (re)starts the inactivity timer: a burst of
// mutations within the window results in a single write of the final state.
func (c *Coordinator) Notify() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	if c.saving {
		c.dirty = true
		return
	}
	c.restartTimerLocked()
}

// ForceSave cancels any pending timer and writes immediately.
func (c *Coordinator) ForceSave() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.stopTimerLocked()
	c.mu.Unlock()

	return c.save()
}

// Status reports the coordinator's current state and, when it is
// StatusFailed, the error from the last attempted save.
func (c *Coordinator) Status() (Status, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status, c.lastErr
}

// Close cancels any pending save without writing. Call ForceSave first if
// the trailing state must be persisted.
func (c *Coordinator) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.stopTimerLocked()
	c.status = StatusIdle
	return nil
}

func (c *Coordinator) restartTimerLocked() {
	c.stopTimerLocked()
	c.status = StatusPending
	c.timer = c.clock.AfterFunc(c.interval, c.fire)
}

func (c *Coordinator) stopTimerLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *Coordinator) fire() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.timer = nil
	c.mu.Unlock()

	if err := c.save(); err != nil {
		c.logger.Warn("autosave failed", zap.Error(err))
	}
}

// save performs the actual write. Saving is atomic relative to further
// mutations: anything arriving mid-save becomes the next Pending cycle.
func (c *Coordinator) save() error {
	c.mu.Lock()
	if c.saving {
		// Another save is already in flight; fold into its follow-up.
		c.dirty = true
		c.mu.Unlock()
		return nil
	}
	c.saving = true
	c.status = StatusSaving
	c.mu.Unlock()

	err := c.store.ForceSave()

	c.mu.Lock()
	c.saving = false
	if err != nil {
		c.status = StatusFailed
		c.lastErr = err
	} else {
		c.status = StatusIdle
		c.lastErr = nil
	}
	if c.dirty && !c.closed {
		c.dirty = false
		c.restartTimerLocked()
	}
	c.mu.Unlock()

	return err
}
