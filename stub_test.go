package tmux

import (
	"strings"

	"go.abhg.dev/tmux/tmuxfmt"
)

// driverStub is a Driver whose methods panic unless a test overrides them.
type driverStub struct {
	Driver

	version         func() ([]byte, error)
	listSessions    func(ListSessionsRequest) ([]byte, error)
	listWindows     func(ListWindowsRequest) ([]byte, error)
	listPanes       func(ListPanesRequest) ([]byte, error)
	hasSession      func(HasSessionRequest) error
	newSession      func(NewSessionRequest) ([]byte, error)
	killSession     func(KillSessionRequest) error
	renameSession   func(RenameSessionRequest) error
	attachSession   func(AttachSessionRequest) error
	switchClient    func(SwitchClientRequest) error
	newWindow       func(NewWindowRequest) ([]byte, error)
	killWindow      func(KillWindowRequest) error
	selectWindow    func(SelectWindowRequest) error
	moveWindow      func(MoveWindowRequest) error
	renameWindow    func(RenameWindowRequest) error
	selectLayout    func(SelectLayoutRequest) error
	splitWindow     func(SplitWindowRequest) ([]byte, error)
	resizeWindow    func(ResizeWindowRequest) error
	selectPane      func(SelectPaneRequest) error
	killPane        func(KillPaneRequest) error
	swapPane        func(SwapPaneRequest) error
	resizePane      func(ResizePaneRequest) error
	capturePane     func(CapturePaneRequest) ([]byte, error)
	sendKeys        func(SendKeysRequest) error
	clearHistory    func(ClearHistoryRequest) error
	pipePane        func(PipePaneRequest) error
	displayMessage  func(DisplayMessageRequest) ([]byte, error)
	showOptions     func(ShowOptionsRequest) ([]byte, error)
	setOption       func(SetOptionRequest) error
	showEnvironment func(ShowEnvironmentRequest) ([]byte, error)
	setEnvironment  func(SetEnvironmentRequest) error
	killServer      func() error
}

func (d *driverStub) Version() ([]byte, error) { return d.version() }

func (d *driverStub) ListSessions(req ListSessionsRequest) ([]byte, error) {
	return d.listSessions(req)
}

func (d *driverStub) ListWindows(req ListWindowsRequest) ([]byte, error) {
	return d.listWindows(req)
}

func (d *driverStub) ListPanes(req ListPanesRequest) ([]byte, error) {
	return d.listPanes(req)
}

func (d *driverStub) HasSession(req HasSessionRequest) error { return d.hasSession(req) }

func (d *driverStub) NewSession(req NewSessionRequest) ([]byte, error) {
	return d.newSession(req)
}

func (d *driverStub) KillSession(req KillSessionRequest) error { return d.killSession(req) }

func (d *driverStub) RenameSession(req RenameSessionRequest) error { return d.renameSession(req) }

func (d *driverStub) AttachSession(req AttachSessionRequest) error { return d.attachSession(req) }

func (d *driverStub) SwitchClient(req SwitchClientRequest) error { return d.switchClient(req) }

func (d *driverStub) NewWindow(req NewWindowRequest) ([]byte, error) { return d.newWindow(req) }

func (d *driverStub) KillWindow(req KillWindowRequest) error { return d.killWindow(req) }

func (d *driverStub) SelectWindow(req SelectWindowRequest) error { return d.selectWindow(req) }

func (d *driverStub) MoveWindow(req MoveWindowRequest) error { return d.moveWindow(req) }

func (d *driverStub) RenameWindow(req RenameWindowRequest) error { return d.renameWindow(req) }

func (d *driverStub) SelectLayout(req SelectLayoutRequest) error { return d.selectLayout(req) }

func (d *driverStub) SplitWindow(req SplitWindowRequest) ([]byte, error) {
	return d.splitWindow(req)
}

func (d *driverStub) ResizeWindow(req ResizeWindowRequest) error { return d.resizeWindow(req) }

func (d *driverStub) SelectPane(req SelectPaneRequest) error { return d.selectPane(req) }

func (d *driverStub) KillPane(req KillPaneRequest) error { return d.killPane(req) }

func (d *driverStub) SwapPane(req SwapPaneRequest) error { return d.swapPane(req) }

func (d *driverStub) ResizePane(req ResizePaneRequest) error { return d.resizePane(req) }

func (d *driverStub) CapturePane(req CapturePaneRequest) ([]byte, error) {
	return d.capturePane(req)
}

func (d *driverStub) SendKeys(req SendKeysRequest) error { return d.sendKeys(req) }

func (d *driverStub) ClearHistory(req ClearHistoryRequest) error { return d.clearHistory(req) }

func (d *driverStub) PipePane(req PipePaneRequest) error { return d.pipePane(req) }

func (d *driverStub) DisplayMessage(req DisplayMessageRequest) ([]byte, error) {
	return d.displayMessage(req)
}

func (d *driverStub) ShowOptions(req ShowOptionsRequest) ([]byte, error) {
	return d.showOptions(req)
}

func (d *driverStub) SetOption(req SetOptionRequest) error { return d.setOption(req) }

func (d *driverStub) ShowEnvironment(req ShowEnvironmentRequest) ([]byte, error) {
	return d.showEnvironment(req)
}

func (d *driverStub) SetEnvironment(req SetEnvironmentRequest) error { return d.setEnvironment(req) }

func (d *driverStub) KillServer() error { return d.killServer() }

// versionStub reports a fixed tmux version.
func versionStub(v string) func() ([]byte, error) {
	return func() ([]byte, error) {
		return []byte("tmux " + v + "\n"), nil
	}
}

// record renders values for the named format variables into a single output
// record in the order tmux would report them.
func record(names []string, vals map[string]string) string {
	fields := make([]string, len(names))
	for i, n := range names {
		fields[i] = vals[n]
	}
	return strings.Join(fields, tmuxfmt.Separator)
}

// records renders a full listing, one record per line, with a trailing
// newline as tmux produces.
func records(names []string, vals ...map[string]string) []byte {
	var sb strings.Builder
	for _, v := range vals {
		sb.WriteString(record(names, v))
		sb.WriteString("\n")
	}
	return []byte(sb.String())
}
