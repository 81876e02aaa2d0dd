// Package asset provides a load-once cache for files used by a running
// app: text content and decoded audio samples.
package asset

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
)

// ErrUnsupported reports sound data that does not decode as WAV
var ErrUnsupported = errors.New("unsupported audio format")

// Server caches loaded assets keyed by path. Every Load method returns
// the cached value on repeat calls; a failed load is not cached so a
// fixed file can be retried.
type Server struct {
	mu     sync.Mutex
	texts  map[string]string
	sounds map[string]*Sound
}

// Sound is a fully decoded, replayable audio sample
type Sound struct {
	Buffer *beep.Buffer
	Format beep.Format
}

// Streamer returns a fresh streamer over the whole sample
func (s *Sound) Streamer() beep.StreamSeeker {
	return s.Buffer.Streamer(0, s.Buffer.Len())
}

// NewServer creates an empty asset server
func NewServer() *Server {
	return &Server{
		texts:  make(map[string]string),
		sounds: make(map[string]*Sound),
	}
}

// LoadText reads a UTF-8 text file, caching the content by path
func (s *Server) LoadText(path string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if content, ok := s.texts[path]; ok {
		return content, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("load text %s: %w", path, err)
	}
	content := string(data)
	s.texts[path] = content
	return content, nil
}

// LoadSound reads and fully decodes a WAV file, caching the decoded
// sample by path. Decoding up front keeps playback allocation-free.
func (s *Server) LoadSound(path string) (*Sound, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if snd, ok := s.sounds[path]; ok {
		return snd, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load sound %s: %w", path, err)
	}
	defer f.Close()

	streamer, format, err := wav.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode sound %s: %w: %v", path, ErrUnsupported, err)
	}
	defer streamer.Close()

	buf := beep.NewBuffer(format)
	buf.Append(streamer)

	snd := &Sound{Buffer: buf, Format: format}
	s.sounds[path] = snd
	return snd, nil
}

// CachedCount returns the number of cached assets across all kinds
func (s *Server) CachedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.texts) + len(s.sounds)
}
