package audio

import (
	"math"
	"testing"

	"github.com/gopxl/beep"

	"cathouse/pkg/game/floor"
)

func drain(t *testing.T, s beep.Streamer, samples int) []float64 {
	t.Helper()

	buf := make([][2]float64, samples)
	n, ok := s.Stream(buf)
	if !ok || n != samples {
		t.Fatalf("Stream returned (%d, %v), want (%d, true)", n, ok, samples)
	}

	out := make([]float64, 0, samples)
	for _, frame := range buf[:n] {
		out = append(out, frame[0])
	}
	return out
}

func TestGeneratorsStayInRange(t *testing.T) {
	generators := map[string]beep.Streamer{
		"chime":  newChime(660, 0),
		"thump":  newThump(90),
		"buzz":   newBuzz(120),
		"meow":   newMeow(),
		"melody": newMelody(floorMelodies[floor.Main]),
	}

	for name, gen := range generators {
		t.Run(name, func(t *testing.T) {
			for _, s := range drain(t, gen, 4410) {
				if math.Abs(s) > 1.0 {
					t.Fatalf("sample %f out of range", s)
				}
			}
		})
	}
}

func TestEveryFloorHasMelody(t *testing.T) {
	for _, f := range floor.All() {
		if _, ok := floorMelodies[f.ID]; !ok {
			t.Errorf("floor %s has no music", f.ID)
		}
	}
}

func TestUninitializedManagerIsSilentlyInert(t *testing.T) {
	sm := NewSoundManager()

	// No speaker, no panic.
	sm.PlayCue(CueFootstep)
	sm.StartFloorMusic(floor.Main)
	sm.SetMuted(true)
	sm.Cleanup()
}

func TestUnknownCueIgnored(t *testing.T) {
	sm := NewSoundManager()
	sm.PlayCue("explosion")
}
