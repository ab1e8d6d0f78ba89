package bot

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
)

var (
	ErrUnknownStrategy   = errors.New("unknown strategy")
	ErrDuplicateStrategy = errors.New("strategy already registered")
	ErrNilStrategy       = errors.New("nil strategy")
)

// Factory builds a fresh strategy. rng may be nil.
type Factory func(rng *rand.Rand) Strategy

// Roster maps strategy names to factories. Every lookup builds a new instance, so two
// robots (or two games) never share strategy state.
type Roster struct {
	factories map[string]Factory
}

func NewRoster() *Roster {
	return &Roster{factories: make(map[string]Factory)}
}

// DefaultRoster registers the built-in strategies.
func DefaultRoster() *Roster {
	r := NewRoster()
	lazy := func(rng *rand.Rand) Strategy { return NewLazy(rng) }
	random := func(rng *rand.Rand) Strategy { return NewRandom(rng) }
	anti := func(rng *rand.Rand) Strategy { return NewAntiRandom(rng) }
	for name, f := range map[string]Factory{
		"LazyRobot":   lazy,
		"RandomRobot": random,
		"AntiRandom":  anti,
		"BeatRandom":  anti,
	} {
		// Names are unique literals; Register cannot fail here.
		_ = r.Register(name, f)
	}
	return r
}

func (r *Roster) Register(name string, f Factory) error {
	if f == nil {
		return fmt.Errorf("register %q: %w", name, ErrNilStrategy)
	}
	if _, ok := r.factories[name]; ok {
		return fmt.Errorf("register %q: %w", name, ErrDuplicateStrategy)
	}
	r.factories[name] = f
	return nil
}

// New builds the strategy registered under name.
func (r *Roster) New(name string, rng *rand.Rand) (Strategy, error) {
	f, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (have %v)", ErrUnknownStrategy, name, r.Names())
	}
	return f(rng), nil
}

// Names lists registered names in sorted order.
func (r *Roster) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Roster) Len() int { return len(r.factories) }
