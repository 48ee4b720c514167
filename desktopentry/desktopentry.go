// Package desktopentry reads .desktop launch descriptors: display name,
// icon id, exec command and any extra launch actions. Only the handful of
// keys the dock needs are parsed.
package desktopentry

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Action is an extra launch action ([Desktop Action ...] section).
type Action struct {
	Name string
	Exec string
}

// Entry is a parsed .desktop descriptor.
type Entry struct {
	Path    string
	Name    string
	Icon    string
	Exec    string
	NoShow  bool // NoDisplay or Hidden
	Actions []Action
}

// Parse reads one .desktop file. Missing keys are left empty; callers are
// expected to fall back to introspected data, so the dock can still create
// an app entry from a sparse descriptor.
func Parse(path string) (*Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read desktop entry: %w", err)
	}

	e := &Entry{Path: path}
	var section string
	var action *Action

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || line[0] == '#' {
			continue
		}
		if line[0] == '[' && line[len(line)-1] == ']' {
			if action != nil {
				e.Actions = append(e.Actions, *action)
				action = nil
			}
			section = line[1 : len(line)-1]
			if name, ok := strings.CutPrefix(section, "Desktop Action "); ok {
				action = &Action{Name: name}
			}
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		if action != nil {
			switch key {
			case "Name":
				action.Name = value
			case "Exec":
				action.Exec = value
			}
			continue
		}
		if section != "Desktop Entry" {
			continue
		}
		switch key {
		case "Name":
			if e.Name == "" {
				e.Name = value
			}
		case "Icon":
			if e.Icon == "" {
				e.Icon = value
			}
		case "Exec":
			if e.Exec == "" {
				e.Exec = value
			}
		case "NoDisplay", "Hidden":
			if value == "true" {
				e.NoShow = true
			}
		}
	}
	if action != nil {
		e.Actions = append(e.Actions, *action)
	}
	if e.Name == "" && e.Exec == "" {
		return nil, fmt.Errorf("desktop entry %s has no Name or Exec", path)
	}
	return e, nil
}

// Scan walks dirs for .desktop files and parses each. Unparseable files are
// skipped, not fatal.
func Scan(dirs []string) []*Entry {
	var out []*Entry
	for _, dir := range dirs {
		filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
			if err != nil || info.IsDir() || !strings.HasSuffix(path, ".desktop") {
				return nil
			}
			if e, perr := Parse(path); perr == nil && !e.NoShow {
				out = append(out, e)
			}
			return nil
		})
	}
	return out
}

// DefaultDirs returns the usual application-entry directories.
func DefaultDirs() []string {
	dirs := []string{"/usr/share/applications", "/usr/local/share/applications"}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".local/share/applications"))
	}
	return dirs
}
