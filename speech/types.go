// Package speech turns results into spoken utterances: a single worker
// drains a bounded queue, synthesizes clips and plays them. Failures are
// logged and swallowed so speech can never break color derivation.
package speech

import (
	"context"
	"errors"

	"github.com/gopxl/beep"
)

// Narrator is the enqueue-only view callers depend on
type Narrator interface {
	Enqueue(text string)
	Shutdown()
}

// Synthesizer renders an utterance into a playable clip
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) (*beep.Buffer, error)
}

// Player plays one clip and blocks until it finished or the player closed
type Player interface {
	Play(clip *beep.Buffer) error
	Close()
}

// Sentinel errors
var (
	ErrEmptyUtterance = errors.New("empty utterance")
	ErrPlayerClosed   = errors.New("player closed")
)
