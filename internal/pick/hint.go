package pick

import (
	"strings"

	tcell "github.com/gdamore/tcell/v2"
	"go.abhg.dev/algorithm/huffman"
	"go.abhg.dev/tmux/internal/ui"
)

type hint struct {
	// Label to select this hint.
	Label string

	// Target that will be picked if this hint is selected.
	Target Target

	// Offset of this hint's label in the rendered text.
	Offset int

	// Offset of the target name in the rendered text.
	NameOffset int
}

// generateHints builds one hint per target and the text block the widget
// renders: one line per target with a gutter wide enough for the longest
// label, the name following it. It uses alphabet to generate unique
// prefix-free labels.
func generateHints(alphabet []rune, targets []Target) ([]hint, string) {
	if len(targets) == 0 {
		return nil, ""
	}

	labelFrom := func(indexes []int) string {
		label := make([]rune, len(indexes))
		for i, idx := range indexes {
			label[i] = alphabet[idx]
		}
		return string(label)
	}

	// All targets are equally likely, so weigh them equally and the
	// labeling degenerates to the shortest uniform prefix-free code.
	freqs := make([]int, len(targets))
	for i := range freqs {
		freqs[i] = 1
	}

	labels := make([]string, len(targets))
	var width int
	for i, indexes := range huffman.Label(len(alphabet), freqs) {
		labels[i] = labelFrom(indexes)
		if n := len(labels[i]); n > width {
			width = n
		}
	}

	var text strings.Builder
	hints := make([]hint, len(targets))
	for i, target := range targets {
		if i > 0 {
			text.WriteByte('\n')
		}

		hints[i] = hint{
			Label:      labels[i],
			Target:     target,
			Offset:     text.Len(),
			NameOffset: text.Len() + width + 1,
		}

		text.WriteString(strings.Repeat(" ", width))
		text.WriteByte(' ')
		text.WriteString(target.Name)
	}

	return hints, text.String()
}

// annotationStyle is the style of annotations for hint labels and target
// names.
type annotationStyle struct {
	// Target name that is still a candidate for selection.
	Name tcell.Style

	// Target name that is no longer a candidate for selection.
	SkippedName tcell.Style

	// Label that the user must type to select the hint.
	Label tcell.Style

	// Part of a multi-character label that the user has already typed.
	LabelTyped tcell.Style
}

func (h *hint) Annotations(input string, style annotationStyle) (anns []ui.TextAnnotation) {
	matched := strings.HasPrefix(h.Label, input)

	// If the hint matches the input, overlay the label (both, typed and
	// non-typed portions) over the gutter. Otherwise, grey out the name.
	nameStyle := style.SkippedName
	if matched {
		nameStyle = style.Name
	}

	if matched {
		// Highlight the portion of the label already typed by the
		// user.
		if len(input) > 0 {
			anns = append(anns, ui.OverlayTextAnnotation{
				Offset:  h.Offset,
				Overlay: input,
				Style:   style.LabelTyped,
			})
		}

		// Highlight the portion of the label yet to be typed.
		if len(input) < len(h.Label) {
			anns = append(anns, ui.OverlayTextAnnotation{
				Offset:  h.Offset + len(input),
				Overlay: h.Label[len(input):],
				Style:   style.Label,
			})
		}
	}

	if len(h.Target.Name) > 0 {
		anns = append(anns, ui.StyleTextAnnotation{
			Offset: h.NameOffset,
			Length: len(h.Target.Name),
			Style:  nameStyle,
		})
	}

	return anns
}
