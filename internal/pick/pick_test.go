package pick

import (
	"testing"

	tcell "github.com/gdamore/tcell/v2"
	gomock "github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func sampleStyle() Style {
	return Style{
		Normal:         tcell.StyleDefault,
		SkippedName:    tcell.StyleDefault.Foreground(tcell.ColorGray),
		HintLabel:      tcell.StyleDefault.Foreground(tcell.ColorRed),
		HintLabelInput: tcell.StyleDefault.Foreground(tcell.ColorYellow),
	}
}

func TestWidget(t *testing.T) {
	t.Parallel()

	mockCtrl := gomock.NewController(t)
	handler := NewMockHandler(mockCtrl)

	targets := []Target{
		{ID: "$1", Name: "work"},
		{ID: "$2", Name: "scratch"},
		{ID: "@3", Name: "scratch:1 vim"},
		{ID: "@4", Name: "scratch:2 logs"},
	}

	//  0 [aa] work
	//  8 [bb] scratch
	// 19 [ba] scratch:1 vim
	// 36 [ab] scratch:2 logs
	w := (&WidgetConfig{
		Targets:      targets,
		HintAlphabet: []rune("ab"),
		Handler:      handler,
		Style:        sampleStyle(),
		generateHints: func([]rune, []Target) ([]hint, string) {
			return []hint{
				{Label: "aa", Target: targets[0], Offset: 0, NameOffset: 3},
				{Label: "bb", Target: targets[1], Offset: 8, NameOffset: 11},
				{Label: "ba", Target: targets[2], Offset: 19, NameOffset: 22},
				{Label: "ab", Target: targets[3], Offset: 36, NameOffset: 39},
			}, "   work\n   scratch\n   scratch:1 vim\n   scratch:2 logs"
		},
	}).Build()

	screen := tcell.NewSimulationScreen("")
	screen.SetSize(20, 5)
	screen.Clear()
	w.Draw(screen)

	t.Run("mouse event", func(t *testing.T) {
		ev := tcell.NewEventMouse(1, 1, tcell.Button1, 0)
		assert.False(t, w.HandleEvent(ev),
			"widget cannot handle mouse events yet")
	})

	t.Run("partial input", func(t *testing.T) {
		assert.True(t,
			w.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'a', 0)),
			"widget must handle key event")

		assert.Equal(t, "a", w.Input())

		assert.True(t,
			w.HandleEvent(tcell.NewEventKey(tcell.KeyBackspace, 0, 0)),
			"widget must handle backspace event")

		assert.Empty(t, w.Input())
	})

	t.Run("select", func(t *testing.T) {
		handler.EXPECT().
			HandleSelection(Selection{Target: targets[2]})

		assert.True(t,
			w.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'b', 0)))
		assert.True(t,
			w.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'a', 0)))

		assert.Empty(t, w.Input(),
			"input must reset after a selection")
	})

	t.Run("select with shift", func(t *testing.T) {
		handler.EXPECT().
			HandleSelection(Selection{Target: targets[3], Shift: true})

		assert.True(t,
			w.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'a', 0)))
		assert.True(t,
			w.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'B', 0)))
	})
}

func TestWidgetMultibyteAlphabet(t *testing.T) {
	t.Parallel()

	mockCtrl := gomock.NewController(t)
	handler := NewMockHandler(mockCtrl)

	targets := []Target{
		{ID: "$1", Name: "work"},
		{ID: "$2", Name: "scratch"},
	}

	//  0 [ää] work
	//  8 [öä] scratch
	w := (&WidgetConfig{
		Targets:      targets,
		HintAlphabet: []rune("äö"),
		Handler:      handler,
		Style:        sampleStyle(),
		generateHints: func([]rune, []Target) ([]hint, string) {
			return []hint{
				{Label: "ää", Target: targets[0], Offset: 0, NameOffset: 3},
				{Label: "öä", Target: targets[1], Offset: 8, NameOffset: 11},
			}, "   work\n   scratch"
		},
	}).Build()

	t.Run("backspace removes a whole rune", func(t *testing.T) {
		assert.True(t,
			w.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'ö', 0)))
		assert.Equal(t, "ö", w.Input())

		assert.True(t,
			w.HandleEvent(tcell.NewEventKey(tcell.KeyBackspace, 0, 0)))
		assert.Empty(t, w.Input())
	})

	t.Run("select after backspace", func(t *testing.T) {
		handler.EXPECT().
			HandleSelection(Selection{Target: targets[0]})

		assert.True(t,
			w.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'ä', 0)))
		assert.True(t,
			w.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'ä', 0)))

		assert.Empty(t, w.Input(),
			"input must reset after a selection")
	})
}
