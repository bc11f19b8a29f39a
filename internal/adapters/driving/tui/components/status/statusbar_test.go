package status

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBar_Defaults(t *testing.T) {
	bar := NewBar(nil, nil)

	assert.Equal(t, StateLoading, bar.State())
	assert.Equal(t, 80, bar.Width())
	assert.Contains(t, bar.View(), "Loading corpus...")
}

func TestBar_Ready(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetDocumentCount(12)
	bar.SetState(StateReady)

	view := bar.View()

	assert.Contains(t, view, "12 documents")
	assert.Contains(t, view, "quit")
}

func TestBar_Recommended(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetDocumentCount(3)
	bar.SetRequestID("0123456789abcdef")
	bar.SetState(StateRecommended)

	view := bar.View()

	assert.Contains(t, view, "request 01234567")
	assert.Contains(t, view, "re-roll")
}

func TestBar_SetErrorAndClear(t *testing.T) {
	bar := NewBar(nil, nil)

	bar.SetError(errors.New("boom"))
	assert.Equal(t, StateError, bar.State())
	assert.Contains(t, bar.View(), "Error: boom")

	bar.Clear()
	assert.Equal(t, StateReady, bar.State())
	assert.Empty(t, bar.Message())
}

func TestBar_SetWidth(t *testing.T) {
	bar := NewBar(nil, nil)

	bar.SetWidth(120)

	assert.Equal(t, 120, bar.Width())
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "abc", shortID("abc"))
	assert.Equal(t, "abcdefgh", shortID("abcdefghij"))
}
