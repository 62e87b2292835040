package ui

import (
	"fmt"
	"sort"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/gdamore/tcell/v2/views"
)

// TextAnnotation alters how a section of an AnnotatedText renders.
type TextAnnotation interface {
	offset() int
	length() int
}

// StyleTextAnnotation renders a section of the text with a different style.
type StyleTextAnnotation struct {
	Style tcell.Style

	// Section of the text this style applies to.
	Offset, Length int
}

func (sa StyleTextAnnotation) offset() int { return sa.Offset }
func (sa StyleTextAnnotation) length() int { return sa.Length }

// OverlayTextAnnotation draws a different string over a section of the text,
// hiding as many bytes of the original as the overlay is long.
type OverlayTextAnnotation struct {
	Overlay string
	Style   tcell.Style

	// Offset in the text at which to draw the overlay.
	Offset int
}

func (oa OverlayTextAnnotation) offset() int { return oa.Offset }
func (oa OverlayTextAnnotation) length() int { return len(oa.Overlay) }

// AnnotatedText is a widget displaying a block of text, possibly multi-line,
// with annotations applied on top. Annotations may be replaced while another
// goroutine renders the widget.
type AnnotatedText struct {
	Text  string
	Style tcell.Style // style for unannotated sections

	mu   sync.RWMutex
	anns []TextAnnotation // sorted by offset
}

var _ Widget = (*AnnotatedText)(nil)

// SetAnnotations replaces the widget's annotations. Annotations must not
// overlap.
func (at *AnnotatedText) SetAnnotations(anns ...TextAnnotation) {
	anns = append(make([]TextAnnotation, 0, len(anns)), anns...)
	sort.Slice(anns, func(i, j int) bool {
		return anns[i].offset() < anns[j].offset()
	})

	at.mu.Lock()
	at.anns = anns
	at.mu.Unlock()
}

// Draw renders the text with its annotations onto the view.
func (at *AnnotatedText) Draw(view views.View) {
	at.mu.RLock()
	defer at.mu.RUnlock()

	var (
		next int // index of the first byte not yet drawn
		pos  Pos
	)
	for _, ann := range at.anns {
		if ann.length() == 0 {
			continue
		}
		if ann.offset() < next {
			// Overlaps the previous annotation. Skip.
			continue
		}

		pos = DrawText(at.Text[next:ann.offset()], at.Style, view, pos)

		var (
			style tcell.Style
			text  string
		)
		switch ann := ann.(type) {
		case StyleTextAnnotation:
			style = ann.Style
			text = at.Text[ann.Offset : ann.Offset+ann.Length]

		case OverlayTextAnnotation:
			style = ann.Style
			text = ann.Overlay

		default:
			panic(fmt.Sprintf("unknown annotation %#v", ann))
		}

		pos = DrawText(text, style, view, pos)
		next = ann.offset() + ann.length()
	}

	DrawText(at.Text[next:], at.Style, view, pos)
}

// HandleEvent reports false; the widget is display-only.
func (at *AnnotatedText) HandleEvent(tcell.Event) bool {
	return false
}
