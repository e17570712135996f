package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/dijkstep/config"
	"github.com/katalvlaran/dijkstep/internal/logging"
	"github.com/katalvlaran/dijkstep/metrics"
	"github.com/katalvlaran/dijkstep/steps"
	"github.com/katalvlaran/dijkstep/workspace"
)

var (
	// ErrInvalidGraph wraps every reason a definition cannot be run.
	ErrInvalidGraph = errors.New("session: invalid graph")

	// ErrNoMoreSteps is returned by Next on the final step.
	ErrNoMoreSteps = errors.New("session: no more steps")

	// ErrAtBeginning is returned by Previous on the first step.
	ErrAtBeginning = errors.New("session: already at the first step")
)

// Manager drives replays stored in a Store.
type Manager struct {
	store   Store
	logger  *slog.Logger
	metrics *metrics.Metrics
	now     func() time.Time

	mu     sync.Mutex                 // guards states and serializes navigation
	states map[uuid.UUID]*steps.State // rebuilt histories, keyed by session
}

// Option configures the Manager.
type Option func(*Manager)

// WithLogger configures a logger for the Manager.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithMetrics enables instrumentation.
func WithMetrics(mt *metrics.Metrics) Option {
	return func(m *Manager) {
		m.metrics = mt
	}
}

// WithClock overrides time.Now for CreatedAt.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		if now != nil {
			m.now = now
		}
	}
}

// NewManager creates a Manager over store.
func NewManager(store Store, opts ...Option) *Manager {
	m := &Manager{
		store:  store,
		logger: logging.NewNop(),
		now:    time.Now,
		states: make(map[uuid.UUID]*steps.State),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// analyze runs the engine over def and returns the history rewound to init.
func (m *Manager) analyze(def config.Definition) (*steps.State, error) {
	ws, err := workspace.FromDefinition(def, workspace.WithLogger(m.logger))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidGraph, err)
	}
	st, err := ws.Analyze(def.Start)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidGraph, err)
	}
	m.metrics.ObserveRun(st.Len())
	return st, nil
}

// Create runs def, stores a new session positioned on the init step and
// returns it with that step.
func (m *Manager) Create(ctx context.Context, def config.Definition) (Record, steps.Step, error) {
	st, err := m.analyze(def)
	if err != nil {
		return Record{}, steps.Step{}, err
	}

	rec := Record{
		ID:         uuid.New(),
		Definition: def,
		Start:      def.Start,
		Cursor:     st.Cursor(),
		CreatedAt:  m.now().UTC(),
	}
	if err := m.store.Save(ctx, rec); err != nil {
		return Record{}, steps.Step{}, fmt.Errorf("failed to save session: %w", err)
	}

	m.mu.Lock()
	m.states[rec.ID] = st
	m.mu.Unlock()

	m.metrics.Navigated(metrics.OpCreate)
	m.metrics.SessionOpened()
	m.logger.Info("session created", "session", rec.ID, "nodes", def.Nodes, "steps", st.Len())

	cur, _ := st.Current()
	return rec, cur, nil
}

// Get returns the stored record for id.
func (m *Manager) Get(ctx context.Context, id uuid.UUID) (Record, error) {
	return m.store.Load(ctx, id)
}

// List returns the ids of all stored sessions.
func (m *Manager) List(ctx context.Context) ([]uuid.UUID, error) {
	return m.store.List(ctx)
}

// load returns the history of id positioned on the stored cursor.
// The caller holds m.mu.
func (m *Manager) load(ctx context.Context, id uuid.UUID) (*steps.State, Record, error) {
	rec, err := m.store.Load(ctx, id)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			delete(m.states, id)
		}
		return nil, Record{}, err
	}

	st, ok := m.states[id]
	if !ok {
		st, err = m.analyze(rec.Definition)
		if err != nil {
			return nil, Record{}, err
		}
		m.states[id] = st
		m.logger.Debug("session rebuilt", "session", id, "steps", st.Len())
	}
	if !st.Seek(rec.Cursor) {
		m.logger.Warn("stored cursor out of range, rewinding", "session", id, "cursor", rec.Cursor)
		st.Reset()
	}
	return st, rec, nil
}

// navigate applies move to the history of id and persists the new cursor.
// absent is returned when move reports no step.
func (m *Manager) navigate(ctx context.Context, id uuid.UUID, op string, move func(*steps.State) (steps.Step, bool), absent error) (steps.Step, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	st, rec, err := m.load(ctx, id)
	if err != nil {
		return steps.Step{}, err
	}

	step, ok := move(st)
	if !ok {
		return steps.Step{}, absent
	}

	if rec.Cursor != st.Cursor() {
		rec.Cursor = st.Cursor()
		if err := m.store.Save(ctx, rec); err != nil {
			return steps.Step{}, fmt.Errorf("failed to save cursor: %w", err)
		}
	}
	m.metrics.Navigated(op)
	return step, nil
}

// Current returns the step under the cursor.
func (m *Manager) Current(ctx context.Context, id uuid.UUID) (steps.Step, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	st, _, err := m.load(ctx, id)
	if err != nil {
		return steps.Step{}, err
	}
	cur, _ := st.Current()
	return cur, nil
}

// Next advances the cursor. ErrNoMoreSteps on the final step.
func (m *Manager) Next(ctx context.Context, id uuid.UUID) (steps.Step, error) {
	return m.navigate(ctx, id, metrics.OpNext, (*steps.State).Next, ErrNoMoreSteps)
}

// Previous moves the cursor back. ErrAtBeginning on the first step.
func (m *Manager) Previous(ctx context.Context, id uuid.UUID) (steps.Step, error) {
	return m.navigate(ctx, id, metrics.OpPrevious, (*steps.State).Previous, ErrAtBeginning)
}

// Reset rewinds to the init step.
func (m *Manager) Reset(ctx context.Context, id uuid.UUID) (steps.Step, error) {
	return m.navigate(ctx, id, metrics.OpReset, func(st *steps.State) (steps.Step, bool) {
		st.Reset()
		return st.Current()
	}, ErrNoMoreSteps)
}

// Steps returns the whole history of id.
func (m *Manager) Steps(ctx context.Context, id uuid.UUID) ([]steps.Step, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	st, _, err := m.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return st.Steps(), nil
}

// Delete removes the session from the store and the cache.
func (m *Manager) Delete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, err := m.store.Load(ctx, id); err != nil {
		return err
	}
	if err := m.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	delete(m.states, id)

	m.metrics.Navigated(metrics.OpDelete)
	m.metrics.SessionClosed()
	m.logger.Info("session deleted", "session", id)
	return nil
}
