package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/gdamore/tcell/v2/views"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// DrawText renders s on the view starting at pos, wrapping on newlines and
// at the right edge, and reports the position following the last cell drawn
// so that successive calls continue where the previous one stopped.
//
//	pos = DrawText("foo\nb", style, view, pos)
//	pos = DrawText("ar", style, view, pos)
//
// Anything falling outside the view's bounds is dropped. The text is walked
// by grapheme cluster so that combining characters stay attached to their
// base rune, and wide clusters advance the position by their full width.
func DrawText(s string, style tcell.Style, view views.View, pos Pos) Pos {
	if len(s) == 0 {
		return pos
	}

	w, h := view.Size()
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		cluster := g.Str()
		if pos.X >= w || cluster == "\n" {
			pos.X, pos.Y = 0, pos.Y+1
		}
		if pos.Y >= h {
			break
		}
		if cluster == "\n" {
			continue
		}

		runes := g.Runes()
		var comb []rune
		if len(runes) > 1 {
			comb = runes[1:]
		}
		view.SetContent(pos.X, pos.Y, runes[0], comb, style)
		pos.X += runewidth.StringWidth(cluster)
	}

	return pos
}
