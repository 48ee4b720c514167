//go:build gui

package main

import (
	"image/color"
	"runtime"

	"dockbar/appicon"
	"dockbar/gui"
	"dockbar/launch"
	"dockbar/render"
	"dockbar/wm"
)

var guiApp *gui.App

// guiHighlight defers theme lookup until the Fyne app exists.
type guiHighlight struct{}

func (guiHighlight) HighlightRGB() (render.RGB, bool) {
	if guiApp == nil {
		return render.RGB{}, false
	}
	return guiApp.HighlightRGB()
}

func initGUI(opts appicon.Options, launcher *launch.Service) {
	// Fyne/GLFW needs the main OS thread
	runtime.LockOSThread()

	opts.Highlight = guiHighlight{}
	dock := appicon.NewDock(opts, func(f func()) {
		guiApp.Invoke(f)
	}, launcher, func(id string) {
		guiApp.QueueRedraw(id)
	})
	dockForShutdown = dock

	guiApp = gui.NewApp(dock, opts.Orient)

	tints := []color.NRGBA{
		{R: 200, G: 60, B: 40, A: 255},
		{R: 40, G: 160, B: 70, A: 255},
		{R: 50, G: 90, B: 200, A: 255},
	}
	for i, e := range demoEntries() {
		app := appicon.FromEntry(e)
		m := appicon.NewModel(app, wm.NewFakeApp(i+1))
		c := dock.Add(m)
		c.SetIcon(demoIcon(tints[i%len(tints)]))
		id := app.ID
		guiApp.AddIcon(id, func() {
			if !c.Model().IsRunning() {
				if err := dock.Launch(id); err != nil {
					dock.StartPulse(id, true, "")
				}
				return
			}
			dock.SetActive(id)
		})
	}

	if err := gui.Run(guiApp); err != nil {
		panic(err)
	}
}
