package speech

import "time"

// Config controls queueing, synthesis and playback
type Config struct {
	Enabled       bool          `koanf:"enabled"`
	QueueSize     int           `koanf:"queue_size" validate:"gt=0"`
	ClipCacheSize int           `koanf:"clip_cache_size" validate:"gt=0"`
	SampleRate    int           `koanf:"sample_rate" validate:"gt=0"`
	Volume        float64       `koanf:"volume" validate:"gte=0,lte=2"`
	Language      string        `koanf:"language" validate:"required"`
	Slow          bool          `koanf:"slow"`
	SynthURL      string        `koanf:"synth_url" validate:"required,url"`
	SynthTimeout  time.Duration `koanf:"synth_timeout" validate:"gt=0"`
	ShutdownWait  time.Duration `koanf:"shutdown_wait" validate:"gt=0"`
	CacheDir      string        `koanf:"cache_dir"` // empty selects the user cache dir
}

// Options shapes the spoken sentence
type Options struct {
	Locale     string `koanf:"locale"` // BCP 47 tag, German phrasing for de-*
	IncludeHex bool   `koanf:"include_hex"`
}

// DefaultConfig returns the stock speech settings. Speech stays disabled
// until a caller opts in.
func DefaultConfig() Config {
	return Config{
		Enabled:       false,
		QueueSize:     32,
		ClipCacheSize: 16,
		SampleRate:    44100,
		Volume:        1.0,
		Language:      "de",
		Slow:          false,
		SynthURL:      "https://translate.google.com/translate_tts",
		SynthTimeout:  10 * time.Second,
		ShutdownWait:  2 * time.Second,
	}
}

// DefaultOptions returns the stock utterance phrasing
func DefaultOptions() Options {
	return Options{
		Locale:     "de-DE",
		IncludeHex: false,
	}
}
