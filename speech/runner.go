package speech

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/dcazrael/color-sentence/logging"
)

// Runner owns the speech pipeline: a bounded FIFO queue drained by one
// worker goroutine. Enqueue never blocks; when the queue is full the
// oldest pending utterance is evicted to make room for the newest.
type Runner struct {
	cfg    Config
	synth  Synthesizer
	player Player
	log    *log.Logger

	queue    chan string
	stopChan chan struct{}
	done     chan struct{}
	stopped  atomic.Bool
	started  atomic.Bool

	clips *lru.Cache[string, *beep.Buffer]

	statsMu sync.Mutex
	spoken  uint64
	evicted uint64
	failed  uint64
}

// NewRunner wires a runner around a synthesizer and a player
func NewRunner(cfg Config, synth Synthesizer, player Player) (*Runner, error) {
	clips, err := lru.New[string, *beep.Buffer](cfg.ClipCacheSize)
	if err != nil {
		return nil, fmt.Errorf("clip cache: %w", err)
	}
	return &Runner{
		cfg:      cfg,
		synth:    synth,
		player:   player,
		log:      logging.New("speech"),
		queue:    make(chan string, cfg.QueueSize),
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
		clips:    clips,
	}, nil
}

// EnsureStarted launches the worker exactly once
func (r *Runner) EnsureStarted() {
	if r.stopped.Load() {
		return
	}
	if r.started.CompareAndSwap(false, true) {
		go r.loop()
	}
}

// Enqueue hands one utterance to the worker without blocking. A full
// queue evicts its oldest pending entry.
func (r *Runner) Enqueue(text string) {
	if text == "" || r.stopped.Load() {
		return
	}
	r.EnsureStarted()

	for {
		select {
		case r.queue <- text:
			return
		default:
		}
		// Queue full: drop the oldest entry, then retry the send.
		select {
		case <-r.queue:
			r.statsMu.Lock()
			r.evicted++
			r.statsMu.Unlock()
		default:
		}
	}
}

// Shutdown stops the worker and waits up to ShutdownWait for queued
// utterances to drain. Whatever is still pending after that is cut off
// by the player close.
func (r *Runner) Shutdown() {
	if r.stopped.CompareAndSwap(false, true) {
		close(r.stopChan)
	}
	if r.started.Load() {
		select {
		case <-r.done:
		case <-time.After(r.cfg.ShutdownWait):
		}
	}
	r.player.Close()
}

// Stats returns spoken, evicted and failed counts
func (r *Runner) Stats() (spoken, evicted, failed uint64) {
	r.statsMu.Lock()
	defer r.statsMu.Unlock()
	return r.spoken, r.evicted, r.failed
}

// loop is the single worker goroutine
func (r *Runner) loop() {
	defer close(r.done)
	for {
		select {
		case <-r.stopChan:
			// Speak what is already queued so an enqueue right before
			// shutdown still gets out. Shutdown bounds the wait.
			for {
				select {
				case text := <-r.queue:
					r.speak(text)
				default:
					return
				}
			}
		case text := <-r.queue:
			r.speak(text)
		}
	}
}

// speak renders and plays one utterance, caching the rendered clip
func (r *Runner) speak(text string) {
	clip, ok := r.clips.Get(text)
	if !ok {
		ctx, cancel := context.WithTimeout(context.Background(), r.cfg.SynthTimeout)
		var err error
		clip, err = r.synth.Synthesize(ctx, text)
		cancel()
		if err != nil {
			r.log.Warn("synthesis failed", "error", err)
			r.countFailure()
			return
		}
		r.clips.Add(text, clip)
	}

	if err := r.player.Play(clip); err != nil {
		r.log.Warn("playback failed", "error", err)
		r.countFailure()
		return
	}

	r.statsMu.Lock()
	r.spoken++
	r.statsMu.Unlock()
}

func (r *Runner) countFailure() {
	r.statsMu.Lock()
	r.failed++
	r.statsMu.Unlock()
}
