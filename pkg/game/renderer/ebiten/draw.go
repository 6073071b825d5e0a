package ebiten

import (
	"fmt"
	"image/color"
	"math/rand"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"cathouse/pkg/engine/grid"
	"cathouse/pkg/game/floor"
	"cathouse/pkg/game/state"
)

var (
	colorBackground = color.RGBA{24, 22, 28, 255}
	colorOverlay    = color.RGBA{0, 0, 0, 200}
	colorPlayer     = color.RGBA{90, 200, 110, 255}
	colorFacing     = color.RGBA{230, 250, 230, 255}
	colorCat        = color.RGBA{235, 120, 200, 255}
	colorToy        = color.RGBA{250, 210, 80, 255}
	colorLocked     = color.RGBA{215, 85, 85, 255}
	colorObject     = color.RGBA{175, 110, 220, 255}
	colorSparkle    = color.RGBA{255, 225, 130, 255}
)

// palette holds the tile colors for one floor, so each floor reads
// differently at a glance: grass outside, wood on the main floor,
// concrete below, carpet above.
type palette struct {
	floor     color.RGBA
	wall      color.RGBA
	furniture color.RGBA
	counter   color.RGBA
	doorway   color.RGBA
	stairs    color.RGBA
}

var palettes = map[floor.ID]palette{
	floor.Outside: {
		floor:     color.RGBA{96, 140, 72, 255},
		wall:      color.RGBA{52, 72, 44, 255},
		furniture: color.RGBA{120, 96, 64, 255},
		counter:   color.RGBA{120, 96, 64, 255},
		doorway:   color.RGBA{168, 120, 72, 255},
		stairs:    color.RGBA{150, 150, 140, 255},
	},
	floor.Main: {
		floor:     color.RGBA{188, 154, 112, 255},
		wall:      color.RGBA{92, 74, 58, 255},
		furniture: color.RGBA{104, 112, 152, 255},
		counter:   color.RGBA{140, 160, 170, 255},
		doorway:   color.RGBA{150, 110, 70, 255},
		stairs:    color.RGBA{212, 184, 126, 255},
	},
	floor.Basement: {
		floor:     color.RGBA{120, 120, 126, 255},
		wall:      color.RGBA{70, 70, 78, 255},
		furniture: color.RGBA{100, 92, 112, 255},
		counter:   color.RGBA{92, 110, 120, 255},
		doorway:   color.RGBA{110, 90, 70, 255},
		stairs:    color.RGBA{162, 152, 132, 255},
	},
	floor.Upstairs: {
		floor:     color.RGBA{172, 142, 152, 255},
		wall:      color.RGBA{96, 70, 80, 255},
		furniture: color.RGBA{122, 102, 142, 255},
		counter:   color.RGBA{132, 152, 162, 255},
		doorway:   color.RGBA{150, 110, 70, 255},
		stairs:    color.RGBA{204, 174, 124, 255},
	},
}

// particle is one fleck of a pickup burst.
type particle struct {
	x, y   float64
	vx, vy float64
	life   int
	clr    color.RGBA
}

func (a *App) spawnParticles(kind string, pos grid.Point) {
	clr := colorSparkle
	if kind == "dust" {
		clr = color.RGBA{180, 180, 180, 255}
	}

	cx := float64(mapX + pos.Col*tileSize + tileSize/2)
	cy := float64(mapY + pos.Row*tileSize + tileSize/2)
	for i := 0; i < 14; i++ {
		a.particles = append(a.particles, particle{
			x:    cx,
			y:    cy,
			vx:   rand.Float64()*2 - 1,
			vy:   -rand.Float64()*2 - 0.5,
			life: 20 + rand.Intn(20),
			clr:  clr,
		})
	}
}

func (a *App) updateParticles() {
	alive := a.particles[:0]
	for _, p := range a.particles {
		p.x += p.vx
		p.y += p.vy
		p.vy += 0.05
		p.life--
		if p.life > 0 {
			alive = append(alive, p)
		}
	}
	a.particles = alive
}

// Draw renders the current screen (Ebiten interface).
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	switch a.mode {
	case modeTitle:
		a.drawTitle(screen)
		a.drawToast(screen)
		return
	case modeEnding:
		a.drawEnding(screen)
		return
	}

	a.drawWorld(screen)
	if a.mode == modeKeypad {
		a.drawKeypad(screen)
	}
	a.drawToast(screen)
}

func (a *App) shakeOffset() (float32, float32) {
	if time.Now().After(a.shakeUntil) {
		return 0, 0
	}
	dx := (rand.Float64()*2 - 1) * a.shakeAmp
	dy := (rand.Float64()*2 - 1) * a.shakeAmp
	return float32(dx), float32(dy)
}

func (a *App) drawWorld(screen *ebiten.Image) {
	g := a.session.Game()
	if g == nil {
		return
	}
	f := g.Floor()
	pal, ok := palettes[f.ID]
	if !ok {
		pal = palettes[floor.Main]
	}

	sx, sy := a.shakeOffset()

	ebitenutil.DebugPrintAt(screen, "Marice's House ~ "+f.Name, mapX, 16)

	for row := 0; row < grid.Rows; row++ {
		for col := 0; col < grid.Cols; col++ {
			p := grid.Point{Row: row, Col: col}
			x := sx + float32(mapX+col*tileSize)
			y := sy + float32(mapY+row*tileSize)
			vector.DrawFilledRect(screen, x, y, tileSize-1, tileSize-1, tileColor(pal, f.Grid.At(p)), false)
		}
	}

	for i := range f.Interactables {
		a.drawInteractable(screen, g, &f.Interactables[i], sx, sy)
	}

	pr, pc := float32(g.PlayerPos.Row), float32(g.PlayerPos.Col)
	if g.Moving {
		// Interpolate along the slide; the discrete tile commits at
		// the end of it.
		t := float32(g.MoveProgress) / float32(state.TileSize)
		pr = float32(g.MoveFrom.Row) + t*float32(g.MoveTo.Row-g.MoveFrom.Row)
		pc = float32(g.MoveFrom.Col) + t*float32(g.MoveTo.Col-g.MoveFrom.Col)
	}
	px := sx + float32(mapX) + pc*tileSize + tileSize/2
	py := sy + float32(mapY) + pr*tileSize + tileSize/2
	vector.DrawFilledCircle(screen, px, py, tileSize/2-3, colorPlayer, true)
	dr, dc := g.PlayerFacing.Delta()
	vector.DrawFilledCircle(screen, px+float32(dc*7), py+float32(dr*7), 2.5, colorFacing, true)

	for _, p := range a.particles {
		vector.DrawFilledRect(screen, sx+float32(p.x), sy+float32(p.y), 2, 2, p.clr, false)
	}

	a.drawStatus(screen, g)
	a.drawDialogue(screen)
}

func tileColor(pal palette, k grid.TileKind) color.RGBA {
	switch k {
	case grid.TileWall:
		return pal.wall
	case grid.TileFurniture:
		return pal.furniture
	case grid.TileCounter:
		return pal.counter
	case grid.TileDoor:
		return pal.doorway
	case grid.TileStairs:
		return pal.stairs
	default:
		return pal.floor
	}
}

func (a *App) drawInteractable(screen *ebiten.Image, g *state.Game, obj *floor.Interactable, sx, sy float32) {
	x := sx + float32(mapX+obj.Pos.Col*tileSize)
	y := sy + float32(mapY+obj.Pos.Row*tileSize)
	cx := x + tileSize/2
	cy := y + tileSize/2

	switch obj.Kind {
	case floor.KindCat:
		vector.DrawFilledCircle(screen, cx, cy, tileSize/2-4, colorCat, true)
		// Ears
		vector.DrawFilledRect(screen, cx-6, y+3, 3, 4, colorCat, false)
		vector.DrawFilledRect(screen, cx+3, y+3, 3, 4, colorCat, false)
	case floor.KindToy:
		if g.Flags.CatToysFound.Has(obj.ToyID) {
			return
		}
		// Collected toys disappear; the rest pulse.
		pulse := float32(3 + time.Now().UnixMilli()/300%3)
		vector.DrawFilledCircle(screen, cx, cy, pulse, colorToy, true)
	case floor.KindFrontDoor, floor.KindBasementDoor:
		vector.DrawFilledRect(screen, x+5, y+3, tileSize-10, tileSize-6, colorLocked, false)
	default:
		vector.DrawFilledRect(screen, x+7, y+7, tileSize-14, tileSize-14, colorObject, false)
	}
}

func (a *App) drawStatus(screen *ebiten.Image, g *state.Game) {
	items := make([]string, 0, len(g.Inventory))
	for _, item := range g.Inventory {
		items = append(items, item.DisplayName())
	}
	carrying := "nothing"
	if len(items) > 0 {
		carrying = strings.Join(items, ", ")
	}

	y := mapY + grid.Rows*tileSize + 8
	ebitenutil.DebugPrintAt(screen, "Carrying: "+carrying, mapX, y)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Cat toys: %d/3", g.ToyCount()), mapX, y+16)
}

func (a *App) drawDialogue(screen *ebiten.Image) {
	d := a.session.Dialogue()
	if d == nil || !d.Active() {
		return
	}
	line, ok := d.Current()
	if !ok {
		return
	}

	boxX, boxW := float32(16), float32(windowWidth-32)
	boxY, boxH := float32(windowHeight-96), float32(84)
	vector.DrawFilledRect(screen, boxX, boxY, boxW, boxH, colorOverlay, false)

	current, total := d.Progress()
	header := fmt.Sprintf("%s  (%d/%d)", line.Speaker, current, total)
	ebitenutil.DebugPrintAt(screen, header, int(boxX)+8, int(boxY)+6)

	for i, row := range wrap(d.VisibleText(), 80) {
		ebitenutil.DebugPrintAt(screen, row, int(boxX)+8, int(boxY)+24+i*14)
	}
	if d.LineRevealed() {
		ebitenutil.DebugPrintAt(screen, "[e]", int(boxX+boxW)-30, int(boxY+boxH)-18)
	}
}

func (a *App) drawKeypad(screen *ebiten.Image) {
	boxW, boxH := float32(220), float32(90)
	boxX := float32(windowWidth)/2 - boxW/2
	boxY := float32(windowHeight)/2 - boxH/2
	vector.DrawFilledRect(screen, boxX, boxY, boxW, boxH, colorOverlay, false)

	display := a.keypadCode + strings.Repeat("_", 4-len(a.keypadCode))
	ebitenutil.DebugPrintAt(screen, "Keypad", int(boxX)+8, int(boxY)+8)
	ebitenutil.DebugPrintAt(screen, "  [ "+strings.Join(strings.Split(display, ""), " ")+" ]", int(boxX)+8, int(boxY)+34)
	ebitenutil.DebugPrintAt(screen, "0-9 type  backspace  esc", int(boxX)+8, int(boxY)+62)
}

func (a *App) drawTitle(screen *ebiten.Image) {
	cx := windowWidth/2 - 70
	ebitenutil.DebugPrintAt(screen, "M A R I C E ' S   C A T   H O U S E", cx-40, 120)
	ebitenutil.DebugPrintAt(screen, "/\\_/\\   three hungry cats await   /\\_/\\", cx-40, 150)

	for i, item := range a.title.Items() {
		label := "   " + item.Label
		if i == a.title.Selected() {
			label = " > " + item.Label
		}
		if !item.Selectable {
			label += "  (no save)"
		}
		ebitenutil.DebugPrintAt(screen, label, cx, 210+i*20)
	}

	ebitenutil.DebugPrintAt(screen, "arrows move  e select  q quit", cx-20, 300)
}

func (a *App) drawEnding(screen *ebiten.Image) {
	g := a.endingGame
	cx := windowWidth/2 - 110

	ebitenutil.DebugPrintAt(screen, "      /\\_/\\     /\\_/\\     /\\_/\\", cx, 140)
	ebitenutil.DebugPrintAt(screen, "     ( ^.^ )   ( -.- )   ( o.o )", cx, 156)
	ebitenutil.DebugPrintAt(screen, "      Alice     Olive    Beatrice", cx, 172)
	ebitenutil.DebugPrintAt(screen, "All three cats are fed and purring.", cx, 210)
	ebitenutil.DebugPrintAt(screen, "Marice's house is at peace.", cx+20, 226)
	if g != nil {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Cat toys found: %d/3", g.ToyCount()), cx+40, 254)
		if g.ToyCount() == 3 {
			ebitenutil.DebugPrintAt(screen, "A perfect toy collection!", cx+30, 270)
		}
	}
	ebitenutil.DebugPrintAt(screen, "[e] keep exploring", cx+50, 310)
}

func (a *App) drawToast(screen *ebiten.Image) {
	if a.toastText == "" || time.Now().After(a.toastUntil) {
		return
	}
	w := float32(len(a.toastText)*6 + 16)
	x := float32(windowWidth)/2 - w/2
	vector.DrawFilledRect(screen, x, 26, w, 20, colorOverlay, false)
	ebitenutil.DebugPrintAt(screen, a.toastText, int(x)+8, 29)
}

// wrap splits s into rows no wider than width characters.
func wrap(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}

	var rows []string
	row := words[0]
	for _, word := range words[1:] {
		if len(row)+1+len(word) > width {
			rows = append(rows, row)
			row = word
			continue
		}
		row += " " + word
	}
	return append(rows, row)
}
