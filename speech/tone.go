package speech

import (
	"context"
	"fmt"
	"hash/fnv"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
)

// ToneSynthesizer renders a short sine cue instead of a voice. It keeps
// the narrator usable without network access.
type ToneSynthesizer struct {
	SampleRate beep.SampleRate // 44100 when zero
	Duration   time.Duration   // 300ms when zero
}

// Synthesize maps text onto a stable pitch and renders it
func (t *ToneSynthesizer) Synthesize(_ context.Context, text string) (*beep.Buffer, error) {
	if text == "" {
		return nil, ErrEmptyUtterance
	}

	sr := t.SampleRate
	if sr == 0 {
		sr = beep.SampleRate(44100)
	}
	dur := t.Duration
	if dur == 0 {
		dur = 300 * time.Millisecond
	}

	tone, err := generators.SineTone(sr, toneFor(text))
	if err != nil {
		return nil, fmt.Errorf("tone: %w", err)
	}

	buf := beep.NewBuffer(beep.Format{SampleRate: sr, NumChannels: 2, Precision: 2})
	buf.Append(beep.Take(sr.N(dur), tone))
	return buf, nil
}

// toneFor hashes text onto a frequency between 220 and 880 Hz
func toneFor(text string) float64 {
	h := fnv.New32a()
	h.Write([]byte(text))
	return 220.0 + float64(h.Sum32()%661)
}
