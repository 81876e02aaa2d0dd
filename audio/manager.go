// Package audio plays decoded samples and synthesized tones through a
// shared speaker mixer.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/bella-project/bella/asset"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// Manager owns the speaker and the master mixer. All playback methods
// are safe no-ops before Initialize succeeds, so an app runs fine on a
// machine with no audio device.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      *muteCtrl
	initialized bool
}

// muteCtrl silences the mixer without tearing streams down
type muteCtrl struct {
	streamer beep.Streamer
	muted    bool
}

func (m *muteCtrl) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = m.streamer.Stream(samples)
	if m.muted {
		for i := range samples[:n] {
			samples[i][0] = 0
			samples[i][1] = 0
		}
	}
	return n, ok
}

func (m *muteCtrl) Err() error {
	return nil
}

// NewManager creates an uninitialized audio manager
func NewManager() *Manager {
	mixer := &beep.Mixer{}
	return &Manager{
		mixer:  mixer,
		volume: &muteCtrl{streamer: mixer},
	}
}

// Initialize opens the speaker and starts the mixer. Safe to call more
// than once.
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(m.volume)
	m.initialized = true
	return nil
}

// Cleanup stops all playback. The speaker itself has no close; clearing
// the mixer ends every active stream.
func (m *Manager) Cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}

	speaker.Lock()
	m.mixer.Clear()
	speaker.Unlock()
	m.initialized = false
}

// Play mixes in one playthrough of a decoded sample. Samples decoded at
// a different rate are resampled to the speaker rate.
func (m *Manager) Play(sound *asset.Sound) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized || sound == nil {
		return
	}

	var streamer beep.Streamer = sound.Streamer()
	if sound.Format.SampleRate != sampleRate {
		streamer = beep.Resample(4, sound.Format.SampleRate, sampleRate, streamer)
	}

	speaker.Lock()
	m.mixer.Add(streamer)
	speaker.Unlock()
}

// PlayTone plays a synthesized sine tone at the given frequency for the
// given duration
func (m *Manager) PlayTone(freq float64, d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}

	streamer := beep.Take(sampleRate.N(d), NewToneGenerator(sampleRate, freq))

	speaker.Lock()
	m.mixer.Add(streamer)
	speaker.Unlock()
}

// ToggleMute flips the mute state and reports the new state
func (m *Manager) ToggleMute() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	speaker.Lock()
	m.volume.muted = !m.volume.muted
	muted := m.volume.muted
	speaker.Unlock()
	return muted
}

// IsMuted reports whether output is muted
func (m *Manager) IsMuted() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	speaker.Lock()
	muted := m.volume.muted
	speaker.Unlock()
	return muted
}
