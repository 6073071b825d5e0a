package dialogue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cathouse/pkg/game/floor"
)

func TestStartUnknownKey(t *testing.T) {
	e := NewEngine()
	assert.False(t, e.Start("nonexistent", nil))
	assert.False(t, e.Active())
}

func TestStartWhileActiveIsRejected(t *testing.T) {
	e := NewEngine()
	require.True(t, e.Start("fridge", nil))
	assert.False(t, e.Start("stove", nil), "second Start while active should be a no-op")

	line, ok := e.Current()
	require.True(t, ok)
	assert.Equal(t, Scripts["fridge"][0].Text, line.Text)
}

func TestTypewriterReveal(t *testing.T) {
	e := NewEngine()
	require.True(t, e.StartScript(Script{{Marice, "Hello"}}, nil))

	assert.Equal(t, "", e.VisibleText())
	assert.False(t, e.LineRevealed())

	for e.Tick() {
	}

	assert.Equal(t, "Hello", e.VisibleText())
	assert.True(t, e.LineRevealed())
}

func TestAdvanceFinishesRevealFirst(t *testing.T) {
	e := NewEngine()
	require.True(t, e.StartScript(Script{{Marice, "One"}, {Marice, "Two"}}, nil))

	// First advance completes the reveal, second moves on.
	e.Advance()
	assert.True(t, e.LineRevealed())
	line, _ := e.Current()
	assert.Equal(t, "One", line.Text)

	e.Advance()
	line, _ = e.Current()
	assert.Equal(t, "Two", line.Text)
}

func TestCompletionCallbackRunsAfterDeactivation(t *testing.T) {
	e := NewEngine()

	var activeDuringCallback bool
	var chained bool

	require.True(t, e.StartScript(Script{{Marice, "Hi"}}, func() {
		activeDuringCallback = e.Active()
		// The callback must be able to start a follow-up script.
		chained = e.StartScript(Script{{Marice, "Next"}}, nil)
	}))

	e.Advance() // finish reveal
	e.Advance() // dismiss last line, fires callback

	assert.False(t, activeDuringCallback, "engine should be idle when the callback runs")
	assert.True(t, chained)
	assert.True(t, e.Active())
}

func TestCallbackFiresExactlyOnce(t *testing.T) {
	e := NewEngine()

	calls := 0
	require.True(t, e.StartScript(Script{{Marice, "Hi"}}, func() { calls++ }))

	e.Advance()
	e.Advance()
	e.Advance() // extra advances while idle do nothing

	assert.Equal(t, 1, calls)
}

func TestProgress(t *testing.T) {
	e := NewEngine()

	cur, total := e.Progress()
	assert.Zero(t, cur)
	assert.Zero(t, total)

	require.True(t, e.Start("alice_before", nil))
	cur, total = e.Progress()
	assert.Equal(t, 1, cur)
	assert.Equal(t, 3, total)
}

func TestScriptLengths(t *testing.T) {
	for key, script := range Scripts {
		assert.NotEmpty(t, script, "script %s is empty", key)
		assert.LessOrEqual(t, len(script), 3, "script %s has more than three lines", key)
		for i, line := range script {
			assert.NotEmpty(t, line.Speaker, "script %s line %d has no speaker", key, i)
			assert.NotEmpty(t, line.Text, "script %s line %d has no text", key, i)
		}
	}
}

func TestEveryFloorScriptExists(t *testing.T) {
	for _, f := range floor.All() {
		for _, it := range f.Interactables {
			if it.Script != "" {
				assert.Contains(t, Scripts, it.Script,
					"floor %s interactable %q references missing script", f.ID, it.Label)
			}
			if it.Kind == floor.KindToy {
				assert.Contains(t, Scripts, "cat_toy_"+it.ToyID,
					"floor %s toy %q has no pickup script", f.ID, it.ToyID)
			}
			if it.Kind == floor.KindCat {
				for _, phase := range []string{"before", "after", "wrong_item"} {
					assert.Contains(t, Scripts, CatScript(string(it.Cat), phase),
						"cat %s missing %s script", it.Cat, phase)
				}
			}
		}
		for _, route := range f.Stairs {
			if route.BlockedScript != "" {
				assert.Contains(t, Scripts, route.BlockedScript)
			}
			if route.ClearScript != "" {
				assert.Contains(t, Scripts, route.ClearScript)
			}
		}
	}
}
