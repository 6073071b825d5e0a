// Package audio synthesizes the game's sound effects and background
// music with beep. Everything is generated, there are no asset files.
// A manager that failed to initialize stays usable; every call just
// does nothing.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"cathouse/pkg/game/floor"
)

const sampleRate = beep.SampleRate(44100)

// Cue names, matching what the gameplay layer emits
const (
	CueFootstep   = "footstep"
	CueInteract   = "interact"
	CueItemPickup = "item_pickup"
	CueDoorUnlock = "door_unlock"
	CueCatMeow    = "cat_meow"
	CueCatFed     = "cat_fed"
	CueNumpadBeep = "numpad_beep"
	CueError      = "error"
	CueTypewriter = "typewriter"
)

// SoundManager owns the speaker and mixes effects over the music
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	music       *beep.Ctrl
	muted       bool
	initialized bool
}

// NewSoundManager creates an uninitialized sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker. Failing here leaves the manager in
// silent mode rather than failing the game.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	if sm.music != nil {
		sm.music.Paused = true
	}
	sm.mixer.Clear()
	sm.initialized = false
}

// SetMuted silences effects and pauses the music
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = muted
	if sm.music != nil {
		sm.music.Paused = muted
	}
}

// PlayCue plays a named one-shot effect. Unknown names are ignored.
func (sm *SoundManager) PlayCue(name string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	var s beep.Streamer
	switch name {
	case CueFootstep:
		s = take(40, newThump(90))
	case CueInteract:
		s = take(80, newChime(660, 0))
	case CueItemPickup:
		// Rising two-note chime
		s = beep.Seq(take(90, newChime(523, 0)), take(140, newChime(784, 0)))
	case CueDoorUnlock:
		s = beep.Seq(take(80, newThump(140)), take(200, newChime(392, 0)))
	case CueCatMeow:
		s = take(280, newMeow())
	case CueCatFed:
		s = beep.Seq(take(120, newChime(523, 0)), take(120, newChime(659, 0)), take(200, newChime(784, 0)))
	case CueNumpadBeep:
		s = take(60, newChime(880, 0))
	case CueError:
		s = take(220, newBuzz(120))
	case CueTypewriter:
		s = take(18, newChime(1320, 0))
	default:
		return
	}

	sm.mixer.Add(s)
}

// floorMelodies are short looping note patterns per floor, in Hz.
// Zero is a rest.
var floorMelodies = map[floor.ID][]float64{
	floor.Outside:  {392, 0, 440, 0, 494, 440, 392, 0},
	floor.Main:     {523, 0, 659, 587, 523, 0, 440, 494},
	floor.Basement: {262, 0, 311, 0, 294, 0, 262, 0},
	floor.Upstairs: {587, 659, 0, 523, 587, 0, 494, 523},
}

// StartFloorMusic replaces the background melody with the floor's
// pattern. Restarting the same floor's music restarts the loop.
func (sm *SoundManager) StartFloorMusic(id floor.ID) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	notes, ok := floorMelodies[id]
	if !ok {
		return
	}

	if sm.music != nil {
		sm.music.Paused = true
	}

	sm.music = &beep.Ctrl{
		Streamer: newMelody(notes),
		Paused:   sm.muted,
	}
	sm.mixer.Add(sm.music)
}

func take(ms int, s beep.Streamer) beep.Streamer {
	return beep.Take(sampleRate.N(time.Duration(ms)*time.Millisecond), s)
}

// chime is a soft sine tone with a fast attack and exponential decay
type chime struct {
	freq float64
	pos  int
}

func newChime(freq float64, _ int) *chime {
	return &chime{freq: freq}
}

func (g *chime) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(sampleRate)

		attack := math.Min(t/0.005, 1.0)
		decay := math.Exp(-t * 12)
		sample := 0.18 * attack * decay * math.Sin(2*math.Pi*g.freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *chime) Err() error { return nil }

// thump is a low pitch-dropping sine, used for steps and the door
type thump struct {
	freq float64
	pos  int
}

func newThump(freq float64) *thump {
	return &thump{freq: freq}
}

func (g *thump) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(sampleRate)

		env := math.Exp(-t * 30)
		freq := g.freq * (1 + env)
		sample := 0.25 * env * math.Sin(2*math.Pi*freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *thump) Err() error { return nil }

// buzz layers harmonics over a low square-ish tone for the error cue
type buzz struct {
	freq float64
	pos  int
}

func newBuzz(freq float64) *buzz {
	return &buzz{freq: freq}
}

func (g *buzz) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(sampleRate)

		sample := 0.3 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.15 * math.Sin(2*math.Pi*g.freq*2*t)
		sample += 0.075 * math.Sin(2*math.Pi*g.freq*3*t)

		envelope := math.Min(t/0.02, 1.0)
		sample *= envelope * 0.2

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *buzz) Err() error { return nil }

// meow sweeps a sine upward then down, a rough cat impression
type meow struct {
	pos int
}

func newMeow() *meow {
	return &meow{}
}

func (g *meow) Stream(samples [][2]float64) (n int, ok bool) {
	dur := float64(sampleRate.N(280 * time.Millisecond))
	for i := range samples {
		t := float64(g.pos) / float64(sampleRate)
		progress := float64(g.pos) / dur
		if progress > 1 {
			progress = 1
		}

		// Up then down sweep between 500Hz and 900Hz
		freq := 500 + 400*math.Sin(progress*math.Pi)
		env := math.Sin(progress * math.Pi)
		sample := 0.15 * env * math.Sin(2*math.Pi*freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *meow) Err() error { return nil }

// melody cycles through a note pattern forever
type melody struct {
	notes      []float64
	pos        int
	noteLength int
}

func newMelody(notes []float64) *melody {
	return &melody{
		notes:      notes,
		noteLength: sampleRate.N(300 * time.Millisecond),
	}
}

func (g *melody) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		note := g.notes[(g.pos/g.noteLength)%len(g.notes)]
		notePos := g.pos % g.noteLength
		t := float64(notePos) / float64(sampleRate)

		sample := 0.0
		if note > 0 {
			// Gentle envelope per note so the loop doesn't click
			env := math.Sin(float64(notePos) / float64(g.noteLength) * math.Pi)
			sample = 0.06 * env * math.Sin(2*math.Pi*note*t)
		}

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *melody) Err() error { return nil }
