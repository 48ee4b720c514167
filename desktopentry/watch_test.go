package desktopentry

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReportsDesktopFiles(t *testing.T) {
	dir := t.TempDir()
	w, err := Watch([]string{dir, filepath.Join(dir, "missing")})
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	// non-descriptor files must not surface
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	target := filepath.Join(dir, "term.desktop")
	if err := os.WriteFile(target, []byte("[Desktop Entry]\nName=T\nExec=t\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	deadline := time.After(5 * time.Second)
	for {
		select {
		case got := <-w.Changed:
			if got == target {
				return
			}
			// writes to other .desktop files may interleave; keep draining
		case <-deadline:
			t.Fatal("no change notification for the new .desktop file")
		}
	}
}
