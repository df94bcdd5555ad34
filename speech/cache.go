package speech

import (
	"crypto/sha1"
	"fmt"
	"os"
	"path/filepath"
)

// DiskCache stores synthesized MP3 payloads so repeated utterances never
// hit the network twice across runs
type DiskCache struct {
	dir string
}

// NewDiskCache opens (and creates) the cache directory. An empty dir
// selects <user cache dir>/color-sentence/tts.
func NewDiskCache(dir string) (*DiskCache, error) {
	if dir == "" {
		base, err := os.UserCacheDir()
		if err != nil {
			return nil, fmt.Errorf("cache dir: %w", err)
		}
		dir = filepath.Join(base, "color-sentence", "tts")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cache dir: %w", err)
	}
	return &DiskCache{dir: dir}, nil
}

// Key derives the stable cache identity of one synthesis request
func (d *DiskCache) Key(lang string, slow bool, text string) string {
	sum := sha1.Sum([]byte(fmt.Sprintf("%s|%t|%s", lang, slow, text)))
	return fmt.Sprintf("%x", sum)
}

// Load returns the cached payload for key, if present
func (d *DiskCache) Load(key string) ([]byte, bool) {
	data, err := os.ReadFile(d.path(key))
	if err != nil {
		return nil, false
	}
	return data, true
}

// Store writes the payload via a temp file and rename, so readers never
// observe a partial clip
func (d *DiskCache) Store(key string, data []byte) error {
	tmp, err := os.CreateTemp(d.dir, "clip-*.tmp")
	if err != nil {
		return fmt.Errorf("cache store: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("cache store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("cache store: %w", err)
	}
	if err := os.Rename(tmp.Name(), d.path(key)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("cache store: %w", err)
	}
	return nil
}

func (d *DiskCache) path(key string) string {
	return filepath.Join(d.dir, key+".mp3")
}
