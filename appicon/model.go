package appicon

import (
	"strings"

	"dockbar/desktopentry"
	"dockbar/wm"
)

// Application is the identity of a docked app: what it is called, how it is
// launched and which descriptor it came from. Running-state queries go
// through the Model wrapping it.
type Application struct {
	ID          string // stable handle, normally the normalised class name
	Name        string
	IconID      string
	Exec        string
	DesktopFile string
	Pinned      bool
	Actions     []desktopentry.Action
}

// FromEntry builds an Application from a desktop descriptor. A nil entry
// yields a usable zero Application so a malformed descriptor never blocks
// the dock from creating the entry (introspected name fills in later).
func FromEntry(e *desktopentry.Entry) Application {
	if e == nil {
		return Application{IconID: "application-x-executable"}
	}
	icon := e.Icon
	if icon == "" {
		icon = "application-x-executable"
	}
	return Application{
		ID:          NormalizeClass(e.Name),
		Name:        e.Name,
		IconID:      icon,
		Exec:        e.Exec,
		DesktopFile: e.Path,
		Actions:     e.Actions,
	}
}

// Model binds an Application to its window introspection. It performs no
// drawing; the compositor queries it on each redraw.
type Model struct {
	App Application
	Win wm.App // nil while the app is not running
}

func NewModel(app Application, win wm.App) *Model {
	return &Model{App: app, Win: win}
}

func (m *Model) IsRunning() bool {
	return m.Win != nil && m.Win.IsRunning()
}

// WindowCount is the number of user-visible normal or dialog windows,
// optionally restricted to one workspace (empty string means all).
func (m *Model) WindowCount(workspace string) int {
	if m.Win == nil {
		return 0
	}
	n := 0
	for _, w := range m.Win.Windows() {
		if !countableWindow(w) {
			continue
		}
		if workspace != "" && !w.OnWorkspace(workspace) {
			continue
		}
		n++
	}
	return n
}

// FirstNormalWindow returns the first user-visible normal window, or nil.
func (m *Model) FirstNormalWindow() wm.Window {
	if m.Win == nil {
		return nil
	}
	for _, w := range m.Win.Windows() {
		if w.Type() == wm.WindowNormal && w.UserVisible() {
			return w
		}
	}
	return nil
}

func countableWindow(w wm.Window) bool {
	if !w.UserVisible() {
		return false
	}
	t := w.Type()
	return t == wm.WindowNormal || t == wm.WindowDialog
}

// NormalizeClass folds a window class or app name into the form used for
// matching windows to dock entries: lower case with separators removed, so
// "Gnome-Terminal" matches "gnome terminal".
func NormalizeClass(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch r {
		case ' ', '-', '_', '.':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// MatchClass reports whether two class/app names identify the same app
// after normalisation. Either side containing the other also matches, which
// covers vendor-prefixed window classes.
func MatchClass(a, b string) bool {
	na, nb := NormalizeClass(a), NormalizeClass(b)
	if na == "" || nb == "" {
		return false
	}
	return na == nb || strings.Contains(na, nb) || strings.Contains(nb, na)
}
