package speech

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const resampleQuality = 4

// BeepPlayer feeds clips to the system speaker. The device initializes
// lazily on the first clip so silent runs never touch audio hardware.
type BeepPlayer struct {
	rate   beep.SampleRate
	volume float64

	mu     sync.Mutex
	inited bool
	closed chan struct{}
}

// NewBeepPlayer prepares a player without opening the device yet
func NewBeepPlayer(cfg Config) *BeepPlayer {
	return &BeepPlayer{
		rate:   beep.SampleRate(cfg.SampleRate),
		volume: cfg.Volume,
		closed: make(chan struct{}),
	}
}

// Play blocks until the clip finished or the player closed
func (p *BeepPlayer) Play(clip *beep.Buffer) error {
	if err := p.ensureInit(); err != nil {
		return err
	}
	select {
	case <-p.closed:
		return ErrPlayerClosed
	default:
	}

	st := clip.Streamer(0, clip.Len())
	var s beep.Streamer = st
	if f := clip.Format(); f.SampleRate != p.rate {
		s = beep.Resample(resampleQuality, f.SampleRate, p.rate, st)
	}
	if p.volume != 1.0 {
		s = &effects.Volume{
			Streamer: s,
			Base:     2,
			Volume:   math.Log2(math.Max(p.volume, 0.001)),
			Silent:   p.volume == 0,
		}
	}

	done := make(chan struct{})
	speaker.Play(beep.Seq(s, beep.Callback(func() { close(done) })))

	select {
	case <-done:
		return nil
	case <-p.closed:
		return ErrPlayerClosed
	}
}

func (p *BeepPlayer) ensureInit() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.inited {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("speaker: %w", err)
	}
	p.inited = true
	return nil
}

// Close releases the audio device. Safe to call more than once.
func (p *BeepPlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	select {
	case <-p.closed:
		return
	default:
	}
	close(p.closed)
	if p.inited {
		speaker.Close()
		p.inited = false
	}
}
