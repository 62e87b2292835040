package main

import (
	"errors"
	"fmt"
	"log/slog"

	tcell "github.com/gdamore/tcell/v2"
	"go.abhg.dev/tmux"
	"go.abhg.dev/tmux/internal/pick"
	"go.abhg.dev/tmux/internal/ui"
	"go.abhg.dev/tmux/tmuxfmt"
)

// app implements the main tmux-pick application logic. It assumes that it's
// running inside a tmux window that it has full control over. (wrapper takes
// care of ensuring that.)
type app struct {
	Log       *slog.Logger
	Tmux      tmux.Driver
	NewAction func(string) (action, error)

	NewScreen func() (tcell.Screen, error) // == tcell.NewScreen
}

// Run runs the application with the provided configuration.
func (app *app) Run(cfg *config) error {
	cfg.FillFrom(&_defaultConfig)

	targetPane, err := tmux.InspectPane(app.Tmux, cfg.Pane)
	if err != nil {
		return fmt.Errorf("inspect pane %q: %v", cfg.Pane, err)
	}

	// Size specification in new-session doesn't always take and causes
	// flickers when swapping panes around. Make sure that the window is
	// right-sized.
	myPane, err := tmux.InspectPane(app.Tmux, "")
	if err != nil {
		return err
	}

	if myPane.Width != targetPane.Width || myPane.Height != targetPane.Height {
		resizeReq := tmux.ResizeWindowRequest{
			Window: myPane.WindowID,
			Width:  targetPane.Width,
			Height: targetPane.Height,
		}
		if err := app.Tmux.ResizeWindow(resizeReq); err != nil {
			app.Log.Error("unable to resize",
				"window", myPane.WindowID, "error", err)
			// Not the end of the world. Keep going.
		}
	}

	targets, err := app.listTargets(cfg)
	if err != nil {
		return fmt.Errorf("list targets: %v", err)
	}
	if len(targets) == 0 {
		return errors.New("no sessions to pick from")
	}

	screen, err := app.NewScreen()
	if err != nil {
		return err
	}

	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	ctrl := ctrl{
		Screen:   screen,
		Log:      app.Log,
		Targets:  targets,
		Alphabet: []rune(cfg.Alphabet),
	}
	ctrl.Init()

	if err := app.Tmux.SwapPane(tmux.SwapPaneRequest{
		Source:       targetPane.ID,
		Destination:  myPane.ID,
		MaintainZoom: true,
	}); err != nil {
		return err
	}
	defer func() {
		swapErr := app.Tmux.SwapPane(tmux.SwapPaneRequest{
			Destination:  targetPane.ID,
			Source:       myPane.ID,
			MaintainZoom: true,
		})
		if swapErr != nil {
			app.Log.Error("unable to swap panes back",
				"pane", targetPane.ID, "error", swapErr)
		}
	}()

	selection, picked, err := ctrl.Wait()
	if err != nil || !picked {
		// Aborting the picker isn't an error.
		return err
	}

	if len(cfg.Action) == 0 {
		return app.Tmux.SwitchClient(tmux.SwitchClientRequest{
			Target: selection.Target.ID,
		})
	}

	action, err := app.NewAction(cfg.Action)
	if err != nil {
		return fmt.Errorf("load action %q: %v", cfg.Action, err)
	}

	return action.Run(selection)
}

// listTargets builds the list of pickable targets: every session except the
// throwaway one the picker itself runs in, plus their windows if configured.
func (app *app) listTargets(cfg *config) ([]pick.Target, error) {
	srv := &tmux.Server{Driver: app.Tmux}

	selfSession, err := currentSessionID(app.Tmux)
	if err != nil {
		return nil, err
	}

	sessions, err := srv.Sessions()
	if err != nil {
		return nil, err
	}

	var targets []pick.Target
	for _, sess := range sessions {
		if sess.ID() == selfSession {
			continue
		}
		targets = append(targets, pick.Target{
			ID:   sess.ID(),
			Name: sess.Name(),
		})
	}

	if cfg.Windows {
		windows, err := srv.Windows()
		if err != nil {
			return nil, err
		}
		for _, w := range windows {
			if w.SessionID() == selfSession {
				continue
			}
			targets = append(targets, pick.Target{
				ID:   w.ID(),
				Name: fmt.Sprintf("%v:%v %v", w.SessionName(), w.Index(), w.Name()),
			})
		}
	}

	return targets, nil
}

// currentSessionID reports the session that the current pane belongs to.
func currentSessionID(driver tmux.Driver) (string, error) {
	var (
		id string
		fc tmuxfmt.Capturer
	)
	fc.StringVar(&id, tmuxfmt.Var("session_id"))

	msg, parse := fc.Prepare()
	out, err := driver.DisplayMessage(tmux.DisplayMessageRequest{Message: msg})
	if err == nil {
		err = parse(out)
	}
	return id, err
}

type ctrl struct {
	Screen   tcell.Screen
	Log      *slog.Logger
	Targets  []pick.Target
	Alphabet []rune

	w      *pick.Widget
	ui     *ui.App
	sel    pick.Selection
	picked bool
}

func (c *ctrl) Init() {
	base := tcell.StyleDefault.
		Background(tcell.ColorBlack).
		Foreground(tcell.ColorWhite)

	c.w = (&pick.WidgetConfig{
		Targets:      c.Targets,
		Handler:      c,
		HintAlphabet: c.Alphabet,
		Style: pick.Style{
			Normal:         base,
			SkippedName:    base.Foreground(tcell.ColorGray),
			HintLabel:      base.Foreground(tcell.ColorRed),
			HintLabelInput: base.Foreground(tcell.ColorYellow),
		},
	}).Build()

	c.ui = &ui.App{
		Root:   c.w,
		Screen: c.Screen,
		Log:    c.Log,
	}

	c.ui.Start()
}

func (c *ctrl) Wait() (pick.Selection, bool, error) {
	err := c.ui.Wait()
	return c.sel, c.picked, err
}

func (c *ctrl) HandleSelection(sel pick.Selection) {
	c.sel = sel
	c.picked = true
	c.ui.Stop()
}
