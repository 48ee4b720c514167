//go:build gui

package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"

	"dockbar/appicon"
	"dockbar/log"
	"dockbar/render"
)

// App hosts the dock in a Fyne window: one IconWidget per docked app, laid
// out along the panel axis, refreshed through fyne.Do so every compositor
// mutation stays on the UI loop.
type App struct {
	fyneApp fyne.App
	window  fyne.Window
	dock    *appicon.Dock
	orient  render.Orientation
	widgets map[string]*IconWidget
	box     *fyne.Container
}

func NewApp(dock *appicon.Dock, orient render.Orientation) *App {
	return &App{
		dock:    dock,
		orient:  orient,
		widgets: make(map[string]*IconWidget),
	}
}

// Invoke dispatches f onto the UI loop; hand this to the dock as its
// animation invoker.
func (a *App) Invoke(f func()) {
	fyne.Do(f)
}

// QueueRedraw is the compositor redraw request: refresh the widget showing
// that app on the next frame.
func (a *App) QueueRedraw(id string) {
	w := a.widgets[id]
	if w == nil {
		return
	}
	fyne.Do(func() {
		w.Refresh()
	})
}

// AddIcon places a widget for an already-docked app.
func (a *App) AddIcon(id string, onTap func()) {
	c := a.dock.Get(id)
	if c == nil {
		return
	}
	w := NewIconWidget(c, onTap)
	a.widgets[id] = w
	if a.box != nil {
		a.box.Add(w)
	}
}

func Run(a *App) error {
	a.fyneApp = app.NewWithID("io.dockbar.panel")
	a.fyneApp.Settings().SetTheme(&panelTheme{})

	if a.orient.Vertical() {
		a.box = container.NewVBox()
	} else {
		a.box = container.NewHBox()
	}
	for _, id := range a.dock.Order() {
		if w := a.widgets[id]; w != nil {
			a.box.Add(w)
		}
	}

	a.window = a.fyneApp.NewWindow("dockbar")
	a.window.SetContent(a.box)
	a.window.SetPadded(false)
	a.window.SetFixedSize(true)
	a.window.Show()

	log.Info("gui event loop starting")
	a.fyneApp.Run()
	return nil
}

func (a *App) Quit() {
	if a.fyneApp != nil {
		a.fyneApp.Quit()
	}
}

// HighlightRGB resolves the theme highlight colour for indicator drawing,
// the render.HighlightSource used by every compositor in GUI builds.
func (a *App) HighlightRGB() (render.RGB, bool) {
	col := theme.Color(theme.ColorNamePrimary)
	if col == nil {
		return render.RGB{}, false
	}
	r, g, b, _ := col.RGBA()
	return render.RGB{
		R: float64(r) / 0xffff,
		G: float64(g) / 0xffff,
		B: float64(b) / 0xffff,
	}, true
}
