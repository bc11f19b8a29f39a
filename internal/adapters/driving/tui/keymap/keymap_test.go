package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	assert.True(t, Matches("q", km.Quit))
	assert.True(t, Matches("ctrl+c", km.Quit))
	assert.True(t, Matches("r", km.Reroll))
	assert.True(t, Matches("tab", km.Focus))
	assert.True(t, Matches("k", km.Up))
	assert.True(t, Matches("down", km.Down))
	assert.False(t, Matches("x", km.Quit))
}

func TestKeyMap_Help(t *testing.T) {
	km := DefaultKeyMap()

	assert.Len(t, km.ShortHelp(), 3)
	assert.Equal(t, "re-roll", km.RecommendHelp()[0].Help().Desc)
	assert.Len(t, km.FullHelp(), 3)
}
