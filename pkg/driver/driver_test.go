package driver

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

type testDriver interface {
	Who() string
}

type staticDriver string

func (d staticDriver) Who() string { return string(d) }

type testProvider struct {
	id     string
	weight int
	err    error
}

func (p *testProvider) ID() string         { return p.id }
func (p *testProvider) Name() string       { return p.id }
func (p *testProvider) DefaultWeight() int { return p.weight }
func (p *testProvider) CheckCompatibility(ctx context.Context) error {
	return p.err
}
func (p *testProvider) New(ctx context.Context) (testDriver, error) {
	return staticDriver(p.id), nil
}

func reset() {
	mu.Lock()
	defer mu.Unlock()
	providers = map[reflect.Type][]entry{}
	overrides = map[string]int{}
	instances = map[reflect.Type]any{}
}

func TestGetPicksHighestWeight(t *testing.T) {
	reset()
	Register[testDriver](&testProvider{id: "low", weight: 10})
	Register[testDriver](&testProvider{id: "high", weight: 90})

	d, err := Get[testDriver](context.Background())
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if d.Who() != "high" {
		t.Errorf("Get() picked %q, want high", d.Who())
	}
}

func TestGetSkipsIncompatible(t *testing.T) {
	reset()
	Register[testDriver](&testProvider{id: "fallback", weight: 10})
	Register[testDriver](&testProvider{id: "broken", weight: 90, err: errors.New("not here")})

	d, err := Get[testDriver](context.Background())
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if d.Who() != "fallback" {
		t.Errorf("Get() picked %q, want fallback", d.Who())
	}
}

func TestGetCachesInstance(t *testing.T) {
	reset()
	Register[testDriver](&testProvider{id: "only", weight: 10})

	a, err := Get[testDriver](context.Background())
	if err != nil {
		t.Fatal(err)
	}
	b, err := Get[testDriver](context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Error("Get() should reuse the cached instance")
	}
}

func TestSetWeightReranks(t *testing.T) {
	reset()
	Register[testDriver](&testProvider{id: "a", weight: 90})
	Register[testDriver](&testProvider{id: "b", weight: 10})

	d, err := Get[testDriver](context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if d.Who() != "a" {
		t.Fatalf("Get() picked %q, want a", d.Who())
	}

	SetWeight("b", 100)
	d, err = Get[testDriver](context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if d.Who() != "b" {
		t.Errorf("after SetWeight, Get() picked %q, want b", d.Who())
	}
}

func TestGetNoProviders(t *testing.T) {
	reset()
	if _, err := Get[testDriver](context.Background()); err == nil {
		t.Error("Get() with no providers should fail")
	}
}
