package appicon

import (
	"testing"

	"dockbar/desktopentry"
	"dockbar/wm"
)

func TestNormalizeClass(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Gnome-Terminal", "gnometerminal"},
		{"gnome terminal", "gnometerminal"},
		{"org.gnome.Nautilus", "orggnomenautilus"},
		{"code", "code"},
	}
	for _, tt := range tests {
		if got := NormalizeClass(tt.in); got != tt.want {
			t.Errorf("NormalizeClass(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMatchClass(t *testing.T) {
	if !MatchClass("Gnome-Terminal", "gnome terminal") {
		t.Error("separator variants should match")
	}
	if !MatchClass("org.gnome.Nautilus", "nautilus") {
		t.Error("vendor-prefixed class should match its suffix")
	}
	if MatchClass("editor", "terminal") {
		t.Error("unrelated names matched")
	}
	if MatchClass("", "terminal") {
		t.Error("empty class matched")
	}
}

func TestFromEntry(t *testing.T) {
	app := FromEntry(&desktopentry.Entry{
		Path: "/usr/share/applications/term.desktop",
		Name: "My Term",
		Exec: "myterm %U",
	})
	if app.ID != "myterm" {
		t.Errorf("ID = %q, want myterm", app.ID)
	}
	if app.IconID != "application-x-executable" {
		t.Errorf("missing icon should fall back, got %q", app.IconID)
	}

	placeholder := FromEntry(nil)
	if placeholder.IconID == "" {
		t.Error("nil entry should still carry a placeholder icon id")
	}
}

func TestWindowCountFiltersTypes(t *testing.T) {
	app := &wm.FakeApp{Running: true, Wins: []*wm.FakeWindow{
		{Kind: wm.WindowNormal, Visible: true},
		{Kind: wm.WindowDialog, Visible: true},
		{Kind: wm.WindowOther, Visible: true},   // not countable
		{Kind: wm.WindowNormal, Visible: false}, // hidden
	}}
	m := NewModel(Application{ID: "a"}, app)

	if got := m.WindowCount(""); got != 2 {
		t.Errorf("WindowCount = %d, want 2", got)
	}
}

func TestWindowCountWorkspaceFilter(t *testing.T) {
	app := &wm.FakeApp{Running: true, Wins: []*wm.FakeWindow{
		{Kind: wm.WindowNormal, Visible: true, Workspace: "one"},
		{Kind: wm.WindowNormal, Visible: true, Workspace: "two"},
		{Kind: wm.WindowNormal, Visible: true, Workspace: "one"},
	}}
	m := NewModel(Application{ID: "a"}, app)

	if got := m.WindowCount("one"); got != 2 {
		t.Errorf("WindowCount(one) = %d, want 2", got)
	}
	if got := m.WindowCount(""); got != 3 {
		t.Errorf("WindowCount() = %d, want 3", got)
	}
}

func TestWindowCountNotRunning(t *testing.T) {
	m := NewModel(Application{ID: "a"}, nil)
	if got := m.WindowCount(""); got != 0 {
		t.Errorf("WindowCount with no introspection = %d, want 0", got)
	}
}

func TestFirstNormalWindow(t *testing.T) {
	dialog := &wm.FakeWindow{Kind: wm.WindowDialog, Visible: true, Name: "prefs"}
	normal := &wm.FakeWindow{Kind: wm.WindowNormal, Visible: true, Name: "main"}
	app := &wm.FakeApp{Running: true, Wins: []*wm.FakeWindow{dialog, normal}}
	m := NewModel(Application{ID: "a"}, app)

	got := m.FirstNormalWindow()
	if got == nil || got.Title() != "main" {
		t.Errorf("FirstNormalWindow = %v, want the main window", got)
	}
}
