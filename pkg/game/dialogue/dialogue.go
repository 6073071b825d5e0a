// Package dialogue implements the modal conversation engine. A script
// is a short sequence of speaker-tagged lines revealed with a
// typewriter effect; gameplay is paused while a script is active and
// an optional completion callback fires once the last line is
// dismissed.
package dialogue

// Line is a single message in a script
type Line struct {
	Speaker string
	Text    string
}

// Script is an ordered sequence of lines, typically one to three
type Script []Line

// RevealPerTick is how many runes of the current line appear per
// engine tick.
const RevealPerTick = 2

// Engine runs one script at a time
type Engine struct {
	active     bool
	script     Script
	index      int
	text       []rune
	revealed   int
	onComplete func()
}

// NewEngine returns an idle dialogue engine
func NewEngine() *Engine {
	return &Engine{}
}

// Active reports whether a script is currently showing. While active,
// movement and interactions are suspended.
func (e *Engine) Active() bool {
	return e.active
}

// Start begins the script registered under key. It returns false
// without side effects when the key is unknown, the script is empty,
// or another script is still active. The callback may be nil and runs
// after the final line is dismissed.
func (e *Engine) Start(key string, onComplete func()) bool {
	return e.StartScript(Scripts[key], onComplete)
}

// StartScript begins an explicit script. Same contract as Start.
func (e *Engine) StartScript(s Script, onComplete func()) bool {
	if e.active || len(s) == 0 {
		return false
	}

	e.active = true
	e.script = s
	e.index = 0
	e.onComplete = onComplete
	e.loadLine()
	return true
}

func (e *Engine) loadLine() {
	e.text = []rune(e.script[e.index].Text)
	e.revealed = 0
}

// Tick advances the typewriter reveal by one step. It returns true
// while new characters appeared, which callers use to drive the
// typing sound.
func (e *Engine) Tick() bool {
	if !e.active || e.revealed >= len(e.text) {
		return false
	}

	e.revealed += RevealPerTick
	if e.revealed > len(e.text) {
		e.revealed = len(e.text)
	}
	return true
}

// LineRevealed reports whether the current line is fully visible
func (e *Engine) LineRevealed() bool {
	return e.active && e.revealed >= len(e.text)
}

// Current returns the line being shown. ok is false when idle.
func (e *Engine) Current() (line Line, ok bool) {
	if !e.active {
		return Line{}, false
	}
	return e.script[e.index], true
}

// VisibleText returns the revealed prefix of the current line
func (e *Engine) VisibleText() string {
	if !e.active {
		return ""
	}
	return string(e.text[:e.revealed])
}

// Progress returns the 1-based line number and total line count
func (e *Engine) Progress() (current, total int) {
	if !e.active {
		return 0, 0
	}
	return e.index + 1, len(e.script)
}

// Advance is the single player control over a running script. If the
// current line is still revealing it completes instantly; otherwise
// the next line starts. Dismissing the last line deactivates the
// engine first and then runs the completion callback, so the callback
// is free to start a new script.
func (e *Engine) Advance() {
	if !e.active {
		return
	}

	if !e.LineRevealed() {
		e.revealed = len(e.text)
		return
	}

	if e.index+1 < len(e.script) {
		e.index++
		e.loadLine()
		return
	}

	done := e.onComplete
	e.active = false
	e.script = nil
	e.onComplete = nil

	if done != nil {
		done()
	}
}
