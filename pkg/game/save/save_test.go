package save

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cathouse/pkg/engine/grid"
	"cathouse/pkg/game/floor"
	"cathouse/pkg/game/state"
)

func midGame(t *testing.T) *state.Game {
	t.Helper()

	g := state.NewGame()
	g.CurrentFloor = floor.Basement
	g.PlayerPos = grid.Point{Row: 4, Col: 5}
	g.PlayerFacing = grid.Left
	g.AddItem(state.ItemLaundryBasket)
	g.Flags.FrontDoorUnlocked = true
	g.Flags.AliceFed = true
	g.Flags.HasBasementKey = true
	g.Flags.BasementUnlocked = true
	g.Flags.SofaSearched = true
	g.MarkToyFound("feather_wand")
	return g
}

func TestCaptureRestoreRoundTrip(t *testing.T) {
	g := midGame(t)

	restored, err := Restore(Capture(g))
	require.NoError(t, err)

	assert.Equal(t, g.CurrentFloor, restored.CurrentFloor)
	assert.Equal(t, g.PlayerPos, restored.PlayerPos)
	assert.Equal(t, g.PlayerFacing, restored.PlayerFacing)
	assert.Equal(t, g.Inventory, restored.Inventory)
	assert.True(t, restored.Flags.AliceFed)
	assert.True(t, restored.Flags.BasementUnlocked)
	assert.False(t, restored.Flags.OliveFed)
	assert.True(t, restored.Flags.CatToysFound.Has("feather_wand"))
	assert.Equal(t, 1, restored.ToyCount())
}

func TestRestoreUnknownFloor(t *testing.T) {
	snap := Capture(state.NewGame())
	snap.CurrentFloor = "attic"

	_, err := Restore(snap)
	assert.Error(t, err)
}

func TestRestoreUnwalkablePositionFallsBackToSpawn(t *testing.T) {
	snap := Capture(state.NewGame())
	snap.Player = PlayerSnapshot{Row: 0, Col: 0, Facing: "left"} // a wall

	g, err := Restore(snap)
	require.NoError(t, err)

	f := floor.Get(floor.Outside)
	assert.Equal(t, f.Start, g.PlayerPos)
	assert.Equal(t, f.StartFacing, g.PlayerFacing)
}

func TestUnmarshalCorruptData(t *testing.T) {
	_, err := Unmarshal([]byte("{not json"))
	assert.Error(t, err)
}

func TestSnapshotFieldNames(t *testing.T) {
	data, err := Marshal(Capture(midGame(t)))
	require.NoError(t, err)

	for _, field := range []string{
		`"current_floor"`, `"player"`, `"facing"`, `"inventory"`,
		`"flags"`, `"alice_fed"`, `"cat_toys_found"`,
	} {
		assert.Contains(t, string(data), field)
	}
}

func TestFileStoreLifecycle(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "saves", "game.json"))

	_, err := store.Read()
	assert.ErrorIs(t, err, ErrNoSave)

	require.NoError(t, store.Write([]byte(`{"current_floor":"main"}`)))
	data, err := store.Read()
	require.NoError(t, err)
	assert.Contains(t, string(data), "main")

	require.NoError(t, store.Delete())
	_, err = store.Read()
	assert.ErrorIs(t, err, ErrNoSave)

	// Deleting twice is fine
	assert.NoError(t, store.Delete())
}

func TestSaverImmediate(t *testing.T) {
	store := &MemStore{}
	saver := NewSaver(store)

	require.NoError(t, saver.CheckpointNow(midGame(t)))

	g, err := saver.Load()
	require.NoError(t, err)
	assert.Equal(t, floor.Basement, g.CurrentFloor)
}

func TestSaverDebounceCollapsesWrites(t *testing.T) {
	store := &MemStore{}
	saver := NewSaverWithDebounce(store, 20*time.Millisecond)

	g := midGame(t)
	saver.Checkpoint(g)
	g.AddItem(state.ItemPurrpops)
	saver.Checkpoint(g)

	// Nothing written yet
	_, err := store.Read()
	assert.ErrorIs(t, err, ErrNoSave)

	assert.Eventually(t, func() bool {
		loaded, err := saver.Load()
		return err == nil && loaded.HasItem(state.ItemPurrpops)
	}, time.Second, 5*time.Millisecond)
}

func TestSaverFlushWritesPending(t *testing.T) {
	store := &MemStore{}
	saver := NewSaverWithDebounce(store, time.Hour)

	saver.Checkpoint(midGame(t))
	saver.Flush()

	_, err := saver.Load()
	assert.NoError(t, err)
}

func TestSaverClearDropsPending(t *testing.T) {
	store := &MemStore{}
	saver := NewSaverWithDebounce(store, time.Hour)

	saver.Checkpoint(midGame(t))
	require.NoError(t, saver.Clear())
	saver.Flush()

	_, err := saver.Load()
	assert.ErrorIs(t, err, ErrNoSave)
}

func TestCheckpointSnapshotsAtCallTime(t *testing.T) {
	store := &MemStore{}
	saver := NewSaverWithDebounce(store, 10*time.Millisecond)

	g := midGame(t)
	saver.Checkpoint(g)
	g.Flags.GameComplete = true // after the checkpoint

	assert.Eventually(t, func() bool {
		loaded, err := saver.Load()
		return err == nil && !loaded.Flags.GameComplete
	}, time.Second, 5*time.Millisecond)
}
