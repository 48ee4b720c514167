// Package wm defines the window/process introspection surface the icon
// engine consumes. The real implementation lives with the panel host; the
// engine only ever sees these interfaces, and tests use the fake in this
// package.
package wm

// WindowType classifies a toplevel for indicator-count purposes.
type WindowType int

const (
	WindowNormal WindowType = iota
	WindowDialog
	WindowOther
)

// Window is one toplevel belonging to an app.
type Window interface {
	Type() WindowType
	UserVisible() bool
	OnWorkspace(ws string) bool
	Minimized() bool
	Title() string
}

// App is the running-state view of one application.
type App interface {
	IsRunning() bool
	Windows() []Window
}
