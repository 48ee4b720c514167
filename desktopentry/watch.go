package desktopentry

import (
	"strings"

	"github.com/fsnotify/fsnotify"

	"dockbar/log"
)

// Watcher notifies the dock when .desktop files appear, change or vanish,
// so pinned entries pick up edits without a restart.
type Watcher struct {
	fsw     *fsnotify.Watcher
	Changed chan string // path of the affected .desktop file
	done    chan struct{}
}

// Watch starts watching dirs for desktop-entry changes. Directories that do
// not exist are skipped with a log line.
func Watch(dirs []string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			log.Debugf("desktopentry: not watching %s: %v", dir, err)
		}
	}
	w := &Watcher{
		fsw:     fsw,
		Changed: make(chan string, 16),
		done:    make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !strings.HasSuffix(ev.Name, ".desktop") {
				continue
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			select {
			case w.Changed <- ev.Name:
			default: // dock is behind; it rescans on the next event anyway
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.Debugf("desktopentry: watch error: %v", err)
		}
	}
}

// Close stops the watcher. Safe to call once.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fsw.Close()
}
