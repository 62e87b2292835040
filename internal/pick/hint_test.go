package pick

import (
	"strings"
	"testing"

	tcell "github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.abhg.dev/tmux/internal/ui"
)

func TestGenerateHints(t *testing.T) {
	t.Parallel()

	alphabet := []rune("abc")

	t.Run("no targets", func(t *testing.T) {
		t.Parallel()

		hints, text := generateHints(alphabet, nil)
		assert.Empty(t, hints)
		assert.Empty(t, text)
	})

	t.Run("single target", func(t *testing.T) {
		t.Parallel()

		hints, text := generateHints(alphabet, []Target{
			{ID: "$1", Name: "work"},
		})

		assert.Equal(t, []hint{
			{
				Label:      "a",
				Target:     Target{ID: "$1", Name: "work"},
				Offset:     0,
				NameOffset: 2,
			},
		}, hints)
		assert.Equal(t, "  work", text)
	})

	t.Run("two targets", func(t *testing.T) {
		t.Parallel()

		hints, text := generateHints(alphabet, []Target{
			{ID: "$1", Name: "work"},
			{ID: "$2", Name: "scratch"},
		})

		assert.Equal(t, []hint{
			{
				Label:      "a",
				Target:     Target{ID: "$1", Name: "work"},
				Offset:     0,
				NameOffset: 2,
			},
			{
				Label:      "b",
				Target:     Target{ID: "$2", Name: "scratch"},
				Offset:     7,
				NameOffset: 9,
			},
		}, hints)
		assert.Equal(t, "  work\n  scratch", text)
	})

	t.Run("many targets", func(t *testing.T) {
		t.Parallel()

		targets := make([]Target, 10)
		for i := range targets {
			targets[i] = Target{
				ID:   "$" + string(rune('0'+i)),
				Name: "session-" + string(rune('0'+i)),
			}
		}

		hints, text := generateHints(alphabet, targets)
		require.Len(t, hints, len(targets))

		lines := strings.Split(text, "\n")
		require.Len(t, lines, len(targets))

		seen := make(map[string]struct{}, len(hints))
		for i, h := range hints {
			assert.Equal(t, targets[i], h.Target)
			assert.NotEmpty(t, h.Label)

			_, dupe := seen[h.Label]
			assert.False(t, dupe, "label %q assigned twice", h.Label)
			seen[h.Label] = struct{}{}

			// The name must sit at the recorded offset.
			end := h.NameOffset + len(h.Target.Name)
			assert.Equal(t, h.Target.Name, text[h.NameOffset:end])
		}

		// Prefix-free: no label is a prefix of another.
		for x := range seen {
			for y := range seen {
				if x == y {
					continue
				}
				assert.False(t, strings.HasPrefix(y, x),
					"%q is a prefix of %q", x, y)
			}
		}
	})
}

func TestHintAnnotations(t *testing.T) {
	t.Parallel()

	style := annotationStyle{
		Name:        tcell.StyleDefault,
		SkippedName: tcell.StyleDefault.Foreground(tcell.ColorGray),
		Label:       tcell.StyleDefault.Foreground(tcell.ColorRed),
		LabelTyped:  tcell.StyleDefault.Foreground(tcell.ColorYellow),
	}

	tests := []struct {
		desc  string
		give  hint
		input string
		want  []ui.TextAnnotation
	}{
		{
			desc: "no input",
			give: hint{
				Label:      "a",
				Target:     Target{ID: "$1", Name: "work"},
				Offset:     0,
				NameOffset: 2,
			},
			want: []ui.TextAnnotation{
				ui.OverlayTextAnnotation{
					Offset:  0,
					Overlay: "a",
					Style:   style.Label,
				},
				ui.StyleTextAnnotation{
					Offset: 2,
					Length: 4,
					Style:  style.Name,
				},
			},
		},
		{
			desc: "multi character label/partial input",
			give: hint{
				Label:      "ab",
				Target:     Target{ID: "@3", Name: "vim"},
				Offset:     7,
				NameOffset: 10,
			},
			input: "a",
			want: []ui.TextAnnotation{
				ui.OverlayTextAnnotation{
					Offset:  7,
					Overlay: "a",
					Style:   style.LabelTyped,
				},
				ui.OverlayTextAnnotation{
					Offset:  8,
					Overlay: "b",
					Style:   style.Label,
				},
				ui.StyleTextAnnotation{
					Offset: 10,
					Length: 3,
					Style:  style.Name,
				},
			},
		},
		{
			desc: "input mismatch",
			give: hint{
				Label:      "ab",
				Target:     Target{ID: "@3", Name: "vim"},
				Offset:     7,
				NameOffset: 10,
			},
			input: "x",
			want: []ui.TextAnnotation{
				ui.StyleTextAnnotation{
					Offset: 10,
					Length: 3,
					Style:  style.SkippedName,
				},
			},
		},
		{
			desc: "empty name",
			give: hint{
				Label:      "a",
				Target:     Target{ID: "$1"},
				Offset:     0,
				NameOffset: 2,
			},
			want: []ui.TextAnnotation{
				ui.OverlayTextAnnotation{
					Offset:  0,
					Overlay: "a",
					Style:   style.Label,
				},
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			got := tt.give.Annotations(tt.input, style)
			assert.Equal(t, tt.want, got)
		})
	}
}
