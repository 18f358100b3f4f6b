package driver

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"
	"sort"
	"sync"
)

// DefaultWeight is the weight providers use when they have no reason
// to rank themselves above or below their peers.
const DefaultWeight = 50

// Provider constructs a driver of type T when it is compatible with
// the current environment. Higher effective weight wins; weights can
// be overridden per provider ID via SetWeight (set from config).
type Provider[T any] interface {
	ID() string
	Name() string
	DefaultWeight() int
	CheckCompatibility(ctx context.Context) error
	New(ctx context.Context) (T, error)
}

// Info describes a registered provider for introspection.
type Info struct {
	ID     string
	Name   string
	Kind   string
	Weight int
}

type entry struct {
	id     string
	name   string
	weight func() int
	check  func(ctx context.Context) error
	build  func(ctx context.Context) (any, error)
}

var (
	mu        sync.Mutex
	providers = map[reflect.Type][]entry{}
	overrides = map[string]int{}
	instances = map[reflect.Type]any{}
)

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Register adds a provider for driver type T. Meant to be called from
// the provider package's init().
func Register[T any](p Provider[T]) {
	mu.Lock()
	defer mu.Unlock()
	t := typeOf[T]()
	providers[t] = append(providers[t], entry{
		id:     p.ID(),
		name:   p.Name(),
		weight: p.DefaultWeight,
		check:  p.CheckCompatibility,
		build: func(ctx context.Context) (any, error) {
			return p.New(ctx)
		},
	})
}

// SetWeight overrides a provider's weight by ID. Cached instances are
// dropped so the next Get re-evaluates the ranking.
func SetWeight(id string, weight int) {
	mu.Lock()
	defer mu.Unlock()
	overrides[id] = weight
	for t := range instances {
		delete(instances, t)
	}
}

// Get returns the best compatible driver of type T. The winning
// instance is cached per type; later calls reuse it.
func Get[T any](ctx context.Context) (T, error) {
	var zero T
	t := typeOf[T]()

	mu.Lock()
	if inst, ok := instances[t]; ok {
		mu.Unlock()
		return inst.(T), nil
	}
	candidates := make([]entry, len(providers[t]))
	copy(candidates, providers[t])
	weightOf := func(e entry) int {
		if w, ok := overrides[e.id]; ok {
			return w
		}
		return e.weight()
	}
	mu.Unlock()

	if len(candidates) == 0 {
		return zero, fmt.Errorf("no providers registered for %s", t)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return weightOf(candidates[i]) > weightOf(candidates[j])
	})

	for _, c := range candidates {
		if err := c.check(ctx); err != nil {
			slog.Debug("provider not compatible", "id", c.id, "err", err)
			continue
		}
		inst, err := c.build(ctx)
		if err != nil {
			slog.Debug("provider failed to construct", "id", c.id, "err", err)
			continue
		}
		mu.Lock()
		instances[t] = inst
		mu.Unlock()
		return inst.(T), nil
	}

	return zero, fmt.Errorf("no compatible provider for %s", t)
}

// Infos lists every registered provider across driver types.
func Infos() []Info {
	mu.Lock()
	defer mu.Unlock()

	var out []Info
	for t, entries := range providers {
		for _, e := range entries {
			w := e.weight()
			if o, ok := overrides[e.id]; ok {
				w = o
			}
			out = append(out, Info{
				ID:     e.id,
				Name:   e.name,
				Kind:   t.String(),
				Weight: w,
			})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
