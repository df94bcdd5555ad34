package speech

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/go-resty/resty/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/mp3"

	"github.com/dcazrael/color-sentence/logging"
)

// HTTPSynthesizer fetches MP3 speech from a translate-style TTS endpoint,
// with an optional disk cache in front of the network
type HTTPSynthesizer struct {
	http  *resty.Client
	lang  string
	slow  bool
	cache *DiskCache
	log   *log.Logger
}

// NewHTTPSynthesizer builds a synthesizer from the speech settings.
// cache may be nil to disable the disk layer.
func NewHTTPSynthesizer(cfg Config, cache *DiskCache) *HTTPSynthesizer {
	return &HTTPSynthesizer{
		http: resty.New().
			SetBaseURL(cfg.SynthURL).
			SetTimeout(cfg.SynthTimeout).
			// The endpoint rejects library user agents.
			SetHeader("User-Agent", "Mozilla/5.0"),
		lang:  cfg.Language,
		slow:  cfg.Slow,
		cache: cache,
		log:   logging.New("speech"),
	}
}

// Synthesize renders text into a decoded clip
func (s *HTTPSynthesizer) Synthesize(ctx context.Context, text string) (*beep.Buffer, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyUtterance
	}

	if s.cache != nil {
		key := s.cache.Key(s.lang, s.slow, text)
		if data, ok := s.cache.Load(key); ok {
			return decodeMP3(data)
		}
	}

	data, err := s.fetch(ctx, text)
	if err != nil {
		return nil, err
	}
	clip, err := decodeMP3(data)
	if err != nil {
		return nil, err
	}

	// Cache only payloads that decoded, so bad answers never stick.
	if s.cache != nil {
		key := s.cache.Key(s.lang, s.slow, text)
		if err := s.cache.Store(key, data); err != nil {
			s.log.Warn("clip cache write failed", "error", err)
		}
	}
	return clip, nil
}

func (s *HTTPSynthesizer) fetch(ctx context.Context, text string) ([]byte, error) {
	speed := "1"
	if s.slow {
		speed = "0.3"
	}
	resp, err := s.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"ie":       "UTF-8",
			"client":   "tw-ob",
			"tl":       s.lang,
			"ttsspeed": speed,
			"q":        text,
		}).
		Get("")
	if err != nil {
		return nil, fmt.Errorf("synthesize: %w", err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("synthesize: unexpected status %s", resp.Status())
	}
	return resp.Body(), nil
}

// decodeMP3 expands an MP3 payload into a seekable PCM clip
func decodeMP3(data []byte) (*beep.Buffer, error) {
	streamer, format, err := mp3.Decode(io.NopCloser(bytes.NewReader(data)))
	if err != nil {
		return nil, fmt.Errorf("decode clip: %w", err)
	}
	defer streamer.Close()

	buf := beep.NewBuffer(format)
	buf.Append(streamer)
	return buf, nil
}
