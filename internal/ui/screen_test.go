package ui

import (
	"testing"

	tcell "github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"
)

// NewTestScreen builds an initialized w-by-h simulation screen that is torn
// down when the test finishes.
func NewTestScreen(t testing.TB, w, h int) tcell.SimulationScreen {
	t.Helper()

	scr := tcell.NewSimulationScreen("")
	require.NoError(t, scr.Init())
	t.Cleanup(scr.Fini)
	scr.SetSize(w, h)
	return scr
}
