package naming

import (
	"context"
	"errors"
	"testing"

	"github.com/dcazrael/color-sentence/core"
)

// fakeClient returns a scripted answer for every lookup
type fakeClient struct {
	info  Info
	err   error
	calls int
}

func (f *fakeClient) Lookup(_ context.Context, _ core.RGB) (Info, error) {
	f.calls++
	return f.info, f.err
}

// TestResolverAcceptsCloseMatch verifies the service stage wins within bounds
func TestResolverAcceptsCloseMatch(t *testing.T) {
	client := &fakeClient{info: Info{Name: "Cobalt", Distance: 4.2}}
	r := NewResolver(client)

	name, source := r.Name(context.Background(), core.RGB{R: 0, G: 0, B: 255}, DefaultConfig(), core.DefaultHeuristicConfig())
	if name != "Cobalt" {
		t.Errorf("Expected service name %q, got %q", "Cobalt", name)
	}
	if source != core.NameFromService {
		t.Errorf("Expected service source, got %v", source)
	}
	if client.calls != 1 {
		t.Errorf("Expected exactly 1 lookup, got %d", client.calls)
	}
}

// TestResolverBoundaryDistance verifies the inclusive acceptance threshold
func TestResolverBoundaryDistance(t *testing.T) {
	cfg := DefaultConfig()
	heur := core.DefaultHeuristicConfig()

	client := &fakeClient{info: Info{Name: "Edge", Distance: cfg.MaxDistance}}
	r := NewResolver(client)
	if name, source := r.Name(context.Background(), core.RGB{R: 0, G: 0, B: 255}, cfg, heur); name != "Edge" || source != core.NameFromService {
		t.Errorf("Expected boundary distance accepted, got %q from %v", name, source)
	}

	client = &fakeClient{info: Info{Name: "Beyond", Distance: cfg.MaxDistance + 0.1}}
	r = NewResolver(client)
	if _, source := r.Name(context.Background(), core.RGB{R: 0, G: 0, B: 255}, cfg, heur); source != core.NameFromHeuristic {
		t.Errorf("Expected fallback past the threshold, got %v", source)
	}
}

// TestResolverFallsBackOnError verifies service failures never propagate
func TestResolverFallsBackOnError(t *testing.T) {
	client := &fakeClient{err: errors.New("connection refused")}
	r := NewResolver(client)

	name, source := r.Name(context.Background(), core.RGB{R: 49, G: 24, B: 255}, DefaultConfig(), core.DefaultHeuristicConfig())
	if source != core.NameFromHeuristic {
		t.Errorf("Expected heuristic source on error, got %v", source)
	}
	if name != "light blue" {
		t.Errorf("Expected heuristic name %q, got %q", "light blue", name)
	}
}

// TestResolverEmptyName verifies an empty service name is treated as a miss
func TestResolverEmptyName(t *testing.T) {
	client := &fakeClient{info: Info{Name: "", Distance: 0}}
	r := NewResolver(client)

	if _, source := r.Name(context.Background(), core.RGB{R: 128, G: 128, B: 128}, DefaultConfig(), core.DefaultHeuristicConfig()); source != core.NameFromHeuristic {
		t.Errorf("Expected heuristic fallback for empty name, got %v", source)
	}
}

// TestResolverWithoutClient verifies the pure heuristic path
func TestResolverWithoutClient(t *testing.T) {
	r := NewResolver(nil)

	name, source := r.Name(context.Background(), core.RGB{R: 128, G: 128, B: 128}, DefaultConfig(), core.DefaultHeuristicConfig())
	if name != "gray" {
		t.Errorf("Expected %q, got %q", "gray", name)
	}
	if source != core.NameFromHeuristic {
		t.Errorf("Expected heuristic source, got %v", source)
	}
}
