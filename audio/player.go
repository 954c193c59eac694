package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/origin-shift/maze"
)

// Player plays step tones live through the system speaker
// Safe for concurrent use; a Player that failed to initialize stays silent
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewPlayer creates an uninitialized Player
func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play queues the tone of one step
func (p *Player) Play(d maze.Direction, moved bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || !moved {
		return
	}
	tone, err := Tone(d, moved)
	if err != nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(tone)
	speaker.Unlock()
}

// Cleanup drops queued tones and closes the speaker
func (p *Player) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}
