package speech

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// fakeSynth records successful synthesis order and fails on demand
type fakeSynth struct {
	mu    sync.Mutex
	texts []string
	fail  map[string]bool
}

func (f *fakeSynth) Synthesize(_ context.Context, text string) (*beep.Buffer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail[text] {
		return nil, errors.New("synth down")
	}
	f.texts = append(f.texts, text)
	buf := beep.NewBuffer(beep.Format{SampleRate: 44100, NumChannels: 2, Precision: 2})
	buf.Append(beep.Silence(8))
	return buf, nil
}

func (f *fakeSynth) calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.texts...)
}

// fakePlayer counts plays, can block until released, and tracks Close
type fakePlayer struct {
	mu      sync.Mutex
	plays   int
	closed  bool
	started chan struct{}
	release chan struct{}
}

func (f *fakePlayer) Play(_ *beep.Buffer) error {
	f.mu.Lock()
	f.plays++
	f.mu.Unlock()
	if f.started != nil {
		f.started <- struct{}{}
	}
	if f.release != nil {
		<-f.release
	}
	return nil
}

func (f *fakePlayer) Close() {
	f.mu.Lock()
	f.closed = true
	f.mu.Unlock()
}

func (f *fakePlayer) playCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.plays
}

func (f *fakePlayer) isClosed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}

func testRunnerConfig() Config {
	cfg := DefaultConfig()
	cfg.QueueSize = 8
	cfg.ShutdownWait = 2 * time.Second
	return cfg
}

// waitFor polls cond with a bounded deadline
func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("Expected %s within 2s", what)
}

// TestRunnerSpeaksInOrder verifies FIFO processing by the single worker
func TestRunnerSpeaksInOrder(t *testing.T) {
	synth := &fakeSynth{}
	player := &fakePlayer{}
	r, err := NewRunner(testRunnerConfig(), synth, player)
	if err != nil {
		t.Fatalf("Expected runner, got error %v", err)
	}
	defer r.Shutdown()

	r.Enqueue("a")
	r.Enqueue("b")
	r.Enqueue("c")
	waitFor(t, "3 plays", func() bool { return player.playCount() == 3 })

	got := synth.calls()
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("Expected %d synthesized texts, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Expected %q at position %d, got %q", want[i], i, got[i])
		}
	}
}

// TestRunnerEvictsOldestWhenFull verifies the drop-oldest queue policy
func TestRunnerEvictsOldestWhenFull(t *testing.T) {
	cfg := testRunnerConfig()
	cfg.QueueSize = 2

	synth := &fakeSynth{}
	player := &fakePlayer{
		started: make(chan struct{}, 8),
		release: make(chan struct{}),
	}
	r, err := NewRunner(cfg, synth, player)
	if err != nil {
		t.Fatalf("Expected runner, got error %v", err)
	}
	defer r.Shutdown()

	// Occupy the worker so queued entries pile up.
	r.Enqueue("first")
	<-player.started

	r.Enqueue("a")
	r.Enqueue("b")
	// Queue is full now; the oldest pending entry must give way.
	r.Enqueue("c")

	close(player.release)
	waitFor(t, "3 plays", func() bool { return player.playCount() == 3 })

	got := synth.calls()
	want := []string{"first", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("Expected texts %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Expected %q at position %d, got %q", want[i], i, got[i])
		}
	}

	if _, evicted, _ := r.Stats(); evicted != 1 {
		t.Errorf("Expected 1 eviction, got %d", evicted)
	}
}

// TestRunnerSurvivesSynthesisFailure verifies failures are swallowed
func TestRunnerSurvivesSynthesisFailure(t *testing.T) {
	synth := &fakeSynth{fail: map[string]bool{"bad": true}}
	player := &fakePlayer{}
	r, err := NewRunner(testRunnerConfig(), synth, player)
	if err != nil {
		t.Fatalf("Expected runner, got error %v", err)
	}
	defer r.Shutdown()

	r.Enqueue("bad")
	waitFor(t, "recorded failure", func() bool {
		_, _, failed := r.Stats()
		return failed == 1
	})

	r.Enqueue("good")
	waitFor(t, "1 play", func() bool { return player.playCount() == 1 })

	got := synth.calls()
	if len(got) != 1 || got[0] != "good" {
		t.Errorf("Expected only %q synthesized, got %v", "good", got)
	}
	spoken, _, failed := r.Stats()
	if spoken != 1 || failed != 1 {
		t.Errorf("Expected spoken=1 failed=1, got spoken=%d failed=%d", spoken, failed)
	}
}

// TestRunnerReusesCachedClips verifies repeat utterances skip synthesis
func TestRunnerReusesCachedClips(t *testing.T) {
	synth := &fakeSynth{}
	player := &fakePlayer{}
	r, err := NewRunner(testRunnerConfig(), synth, player)
	if err != nil {
		t.Fatalf("Expected runner, got error %v", err)
	}
	defer r.Shutdown()

	r.Enqueue("hallo")
	waitFor(t, "1 play", func() bool { return player.playCount() == 1 })
	r.Enqueue("hallo")
	waitFor(t, "2 plays", func() bool { return player.playCount() == 2 })

	if got := synth.calls(); len(got) != 1 {
		t.Errorf("Expected 1 synthesis for repeated text, got %d", len(got))
	}
}

// TestRunnerShutdown verifies the worker stops and the player closes
func TestRunnerShutdown(t *testing.T) {
	synth := &fakeSynth{}
	player := &fakePlayer{}
	r, err := NewRunner(testRunnerConfig(), synth, player)
	if err != nil {
		t.Fatalf("Expected runner, got error %v", err)
	}

	r.Enqueue("a")
	waitFor(t, "1 play", func() bool { return player.playCount() == 1 })
	r.Shutdown()

	if !player.isClosed() {
		t.Error("Expected player closed after shutdown")
	}

	// Late enqueues are silent no-ops.
	r.Enqueue("late")
	time.Sleep(50 * time.Millisecond)
	if got := synth.calls(); len(got) != 1 {
		t.Errorf("Expected no synthesis after shutdown, got %v", got)
	}
}

// TestRunnerIgnoresEmptyText verifies empty utterances never start work
func TestRunnerIgnoresEmptyText(t *testing.T) {
	synth := &fakeSynth{}
	player := &fakePlayer{}
	r, err := NewRunner(testRunnerConfig(), synth, player)
	if err != nil {
		t.Fatalf("Expected runner, got error %v", err)
	}
	defer r.Shutdown()

	r.Enqueue("")
	time.Sleep(50 * time.Millisecond)
	if got := synth.calls(); len(got) != 0 {
		t.Errorf("Expected no synthesis for empty text, got %v", got)
	}
}

// TestNewRunnerRejectsBadCacheSize verifies construction fails fast
func TestNewRunnerRejectsBadCacheSize(t *testing.T) {
	cfg := testRunnerConfig()
	cfg.ClipCacheSize = 0
	if _, err := NewRunner(cfg, &fakeSynth{}, &fakePlayer{}); err == nil {
		t.Error("Expected error for non-positive clip cache size")
	}
}
