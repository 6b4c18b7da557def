package consulta

import "sync"

// Factory is the slug-keyed strategy registry. The built-in strategies are
// registered once on first lookup; registration is idempotent and last
// write wins, so tests can swap a slug for a stub.
type Factory struct {
	once       sync.Once
	mu         sync.RWMutex
	strategies map[string]Strategy
}

// NewFactory creates an empty Factory. Built-in strategies are registered
// lazily on first use.
func NewFactory() *Factory {
	return &Factory{strategies: make(map[string]Strategy)}
}

func (f *Factory) init() {
	f.once.Do(func() {
		f.Register(NewStandardCPF())
		f.Register(NewPremium())
		f.Register(NewCorporate())
	})
}

// Register adds or replaces a strategy under its slug.
func (f *Factory) Register(s Strategy) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.strategies[s.Slug()] = s
}

// Create returns the strategy for slug, or false when none is registered.
func (f *Factory) Create(slug string) (Strategy, bool) {
	f.init()
	f.mu.RLock()
	defer f.mu.RUnlock()
	s, ok := f.strategies[slug]
	return s, ok
}

// Has reports whether a strategy exists for slug.
func (f *Factory) Has(slug string) bool {
	_, ok := f.Create(slug)
	return ok
}

// All returns every registered strategy.
func (f *Factory) All() []Strategy {
	f.init()
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]Strategy, 0, len(f.strategies))
	for _, s := range f.strategies {
		out = append(out, s)
	}
	return out
}

// Slugs returns every registered slug.
func (f *Factory) Slugs() []string {
	f.init()
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]string, 0, len(f.strategies))
	for slug := range f.strategies {
		out = append(out, slug)
	}
	return out
}
