// Package pick implements the target picker behind tmux-pick. It renders a
// list of tmux targets, tags each with a unique prefix-free hint label, and
// reports the target whose label the user types.
package pick

import (
	"sync"
	"unicode"
	"unicode/utf8"

	tcell "github.com/gdamore/tcell/v2"
	"github.com/gdamore/tcell/v2/views"
	"go.abhg.dev/tmux/internal/ui"
)

// Target is a single selectable entry in the picker: a tmux session or
// window the user may jump to.
type Target struct {
	// ID is the tmux identifier for this target ("$1", "@3").
	ID string

	// Name is the human-readable line displayed for this target.
	Name string
}

// Style configures the display style of the widget.
type Style struct {
	Normal tcell.Style // target names

	SkippedName    tcell.Style // names no longer selectable
	HintLabel      tcell.Style // labels for hints
	HintLabelInput tcell.Style // typed portion of hints
}

// Selection is a choice made by the user in the picker UI.
type Selection struct {
	// Target is the selected entry.
	Target Target

	// Shift reports whether shift was pressed when this target was
	// selected.
	Shift bool
}

// Handler handles events from the widget.
type Handler interface {
	// HandleSelection reports the target picked by the user.
	HandleSelection(Selection)
}

//go:generate mockgen -destination mock_handler_test.go -package pick go.abhg.dev/tmux/internal/pick Handler

// WidgetConfig configures the picker widget.
type WidgetConfig struct {
	// Targets to display, in order.
	Targets []Target

	// Alphabet we'll use to generate labels.
	HintAlphabet []rune

	// Handler handles events from the widget. This includes hint
	// selection.
	Handler Handler

	// Style configures the look of the widget.
	Style Style

	// Internal override for generateHints.
	generateHints func([]rune, []Target) ([]hint, string)
}

// Widget is the main picker widget. It displays one line per target with a
// unique prefix-free label next to each, and reports the target whose label
// is typed.
type Widget struct {
	style   Style
	handler Handler
	textw   *ui.AnnotatedText

	hints        []hint
	hintsByLabel map[string]int // label -> hints[i]

	// Mutable attributes:

	mu        sync.RWMutex
	input     string // text input so far
	shiftDown bool   // whether shift was pressed
}

// Build builds a new picker widget using the provided configuration.
func (cfg *WidgetConfig) Build() *Widget {
	generateHints := generateHints
	if cfg.generateHints != nil {
		generateHints = cfg.generateHints
	}

	hints, text := generateHints(cfg.HintAlphabet, cfg.Targets)
	byLabel := make(map[string]int, len(hints))
	for i, hint := range hints {
		byLabel[hint.Label] = i
	}

	w := &Widget{
		textw: &ui.AnnotatedText{
			Text:  text,
			Style: cfg.Style.Normal,
		},
		style:        cfg.Style,
		handler:      cfg.Handler,
		hints:        hints,
		hintsByLabel: byLabel,
	}
	w.annotateText()
	return w
}

// Draw draws the widget onto the provided view.
func (w *Widget) Draw(view views.View) {
	w.textw.Draw(view)
}

// Input reports the text input into the label so far to partially select a
// label.
func (w *Widget) Input() string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.input
}

// HandleEvent handles input for the widget. This only responds to text input,
// and delegates everything else to the caller.
func (w *Widget) HandleEvent(ev tcell.Event) (handled bool) {
	ek, ok := ev.(*tcell.EventKey)
	if !ok {
		return false
	}

	switch ek.Key() {
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		handled = true
		w.mu.Lock()
		if len(w.input) > 0 {
			// The alphabet may contain multi-byte runes.
			_, size := utf8.DecodeLastRuneInString(w.input)
			w.input = w.input[:len(w.input)-size]
			defer w.inputChanged()
		}
		w.mu.Unlock()

	case tcell.KeyRune:
		handled = true
		w.mu.Lock()

		r := ek.Rune()
		// Per the documentation of EventKey, it may report the rune
		// 'A' without the ModShift modifier set.
		if unicode.IsUpper(r) {
			r = unicode.ToLower(r)
			w.shiftDown = true
		} else {
			w.shiftDown = ek.Modifiers()&tcell.ModShift != 0
		}

		w.input += string(r)
		defer w.inputChanged()
		w.mu.Unlock()
	}

	return handled
}

func (w *Widget) inputChanged() {
	// Labels are prefix-free, so an exact match on the input is
	// unambiguous.
	defer w.annotateText()

	w.mu.Lock()
	idx, ok := w.hintsByLabel[w.input]
	var sel Selection
	if ok {
		sel = Selection{
			Target: w.hints[idx].Target,
			Shift:  w.shiftDown,
		}
		w.input = ""
	}
	w.mu.Unlock()

	if ok {
		w.handler.HandleSelection(sel)
	}
}

func (w *Widget) annotateText() {
	w.mu.Lock()
	defer w.mu.Unlock()

	style := annotationStyle{
		Name:        w.textw.Style,
		SkippedName: w.style.SkippedName,
		Label:       w.style.HintLabel,
		LabelTyped:  w.style.HintLabelInput,
	}

	var anns []ui.TextAnnotation
	for _, hint := range w.hints {
		anns = append(anns, hint.Annotations(w.input, style)...)
	}

	w.textw.SetAnnotations(anns...)
}
