package audio

import (
	"fmt"
	"io"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"

	"github.com/lixenwraith/origin-shift/maze"
)

type note struct {
	dir   maze.Direction
	moved bool
}

// Score records a walk for offline rendering
// Record matches the maze.Walk observer signature
type Score struct {
	notes []note
}

// NewScore creates a Score with room for n steps
func NewScore(n int) *Score {
	if n < 0 {
		n = 0
	}
	return &Score{notes: make([]note, 0, n)}
}

// Record appends one step
func (s *Score) Record(d maze.Direction, moved bool) {
	s.notes = append(s.notes, note{dir: d, moved: moved})
}

// Len returns the number of recorded steps
func (s *Score) Len() int { return len(s.notes) }

// Streamer returns the whole walk as one streamer
func (s *Score) Streamer() (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(s.notes))
	for i, n := range s.notes {
		tone, err := Tone(n.dir, n.moved)
		if err != nil {
			return nil, fmt.Errorf("tone %d: %w", i, err)
		}
		parts = append(parts, tone)
	}
	return beep.Seq(parts...), nil
}

// WriteWAV encodes the walk as a 16-bit stereo WAV
func (s *Score) WriteWAV(w io.WriteSeeker) error {
	streamer, err := s.Streamer()
	if err != nil {
		return err
	}
	if err := wav.Encode(w, streamer, Format); err != nil {
		return fmt.Errorf("encode wav: %w", err)
	}
	return nil
}
