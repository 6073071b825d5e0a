// Command cathouse is a small tile adventure: you are locked out of
// Marice's house with three hungry cats inside, and dinner will not
// serve itself.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/leonelquinteros/gotext"

	engineinput "cathouse/pkg/engine/input"
	"cathouse/pkg/game/audio"
	"cathouse/pkg/game/devtools"
	"cathouse/pkg/game/gameplay"
	"cathouse/pkg/game/menu"
	"cathouse/pkg/game/renderer"
	window "cathouse/pkg/game/renderer/ebiten"
	"cathouse/pkg/game/renderer/tui"
	"cathouse/pkg/game/save"
)

// defaultSavePath puts the save under the OS config directory.
func defaultSavePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "cathouse-save.json"
	}
	return filepath.Join(dir, "cathouse", "save.json")
}

func main() {
	backend := flag.String("renderer", "tui", "renderer backend: tui or window")
	savePath := flag.String("savefile", defaultSavePath(), "path to the save file")
	mute := flag.Bool("mute", false, "disable sound")
	dumpMaps := flag.Bool("dumpmaps", false, "write the floor layouts to maps.txt and exit")
	flag.Parse()

	if *dumpMaps {
		path, err := devtools.DumpFloorsToFile()
		if err != nil {
			fmt.Fprintf(os.Stderr, "map dump failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("floor layouts written to " + path)
		return
	}

	saver := save.NewSaver(save.NewFileStore(*savePath))
	session := gameplay.NewSession(saver)

	sound := audio.NewSoundManager()
	sound.SetMuted(*mute)

	switch *backend {
	case "window":
		runWindow(session, sound)
	case "tui":
		runTerminal(session, sound)
	default:
		fmt.Fprintf(os.Stderr, "unknown renderer %q (want tui or window)\n", *backend)
		os.Exit(1)
	}
}

// runWindow hands the loop to Ebiten, which drives the session from
// its Update callback.
func runWindow(session *gameplay.Session, sound *audio.SoundManager) {
	app := window.New(session, sound)
	renderer.SetRenderer(app)
	app.Init()
	defer app.Close()

	if err := app.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "window error: %v\n", err)
		os.Exit(1)
	}
}

// runTerminal owns the loop itself: draw a frame, block for a key,
// apply it.
func runTerminal(session *gameplay.Session, sound *audio.SoundManager) {
	r := tui.New(sound)
	renderer.SetRenderer(r)
	r.Init()
	defer r.Close()

	if !titleLoop(r, session) {
		return
	}

	for {
		g := session.Game()
		if g == nil {
			return
		}

		r.RenderFrame(g, session.Dialogue())

		intent := r.GetInput()
		switch intent.Action {
		case engineinput.ActionQuit:
			session.Shutdown()
			r.ShowMessage(gotext.Get("The cats will be waiting. Goodbye!"))
			return
		case engineinput.ActionOpenMenu:
			if !titleLoop(r, session) {
				return
			}
		default:
			session.HandleIntent(intent)
			// The terminal blocks on input, so slides settle here
			// instead of over animation frames.
			for session.Game() != nil && session.Game().Moving {
				session.Tick()
			}
		}
	}
}

// titleLoop runs the title menu until the player starts a game or
// quits. It reports false on quit.
func titleLoop(r *tui.TUIRenderer, session *gameplay.Session) bool {
	m := menu.NewTitleMenu(session.HasSave())
	for {
		r.ShowTitleMenu(m)

		switch m.Handle(r.GetInput()) {
		case menu.ChoiceNewGame:
			session.StartNew()
			return true
		case menu.ChoiceContinue:
			if err := session.ContinueFromSave(); err != nil {
				r.ShowToast(gotext.Get("No saved game found."), 3*time.Second)
				continue
			}
			return true
		case menu.ChoiceQuit:
			session.Shutdown()
			return false
		}
	}
}
