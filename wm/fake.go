package wm

// FakeWindow is a settable Window for tests and the demo harness.
type FakeWindow struct {
	Kind      WindowType
	Visible   bool
	Workspace string
	Iconified bool
	Name      string
}

func (w *FakeWindow) Type() WindowType { return w.Kind }
func (w *FakeWindow) UserVisible() bool {
	return w.Visible
}
func (w *FakeWindow) OnWorkspace(ws string) bool { return w.Workspace == ws }
func (w *FakeWindow) Minimized() bool            { return w.Iconified }
func (w *FakeWindow) Title() string              { return w.Name }

// FakeApp is a settable App.
type FakeApp struct {
	Running bool
	Wins    []*FakeWindow
}

func (a *FakeApp) IsRunning() bool { return a.Running }

func (a *FakeApp) Windows() []Window {
	out := make([]Window, len(a.Wins))
	for i, w := range a.Wins {
		out[i] = w
	}
	return out
}

// NewFakeApp builds a running app with n visible normal windows.
func NewFakeApp(n int) *FakeApp {
	a := &FakeApp{Running: n > 0}
	for i := 0; i < n; i++ {
		a.Wins = append(a.Wins, &FakeWindow{Kind: WindowNormal, Visible: true})
	}
	return a
}
