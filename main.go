package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"dockbar/appicon"
	"dockbar/desktopentry"
	"dockbar/launch"
	"dockbar/log"
	"dockbar/prefs"
)

var version = "dev"

func main() {
	prefsPath := flag.String("prefs", "", "path to prefs.toml (default: XDG config)")
	logPath := flag.String("logpath", "", "log directory (default: OS-specific)")
	useGUI := flag.Bool("gui", false, "run the panel window (requires a gui build)")
	frames := flag.Int("frames", 120, "headless mode: number of demo frames to render")
	outDir := flag.String("out", "", "headless mode: write composited frames as PNGs here")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("dockbar", version)
		return
	}

	dir, err := log.ResolveDir(*logPath)
	if err == nil {
		log.SetDir(dir)
		err = log.Init()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not init logging: %v\n", err)
	}
	defer log.Close()

	pp, err := prefs.ResolvePath(*prefsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving prefs path: %v\n", err)
		os.Exit(1)
	}
	p, err := prefs.Load(pp)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading prefs: %v\n", err)
		os.Exit(1)
	}
	log.SessionStart(p.Indicator, p.Background, p.MultiInd)

	opts := appicon.Options{
		Indicator:      p.IndicatorStyle(),
		Background:     p.BackgroundStyle(),
		AttentionBadge: p.AttentionMode() == prefs.AttentionBadge,
		MultiInd:       p.MultiInd,
		Size:           p.IconSize,
		Orient:         p.Orient(),
		Scale:          p.ScaleFactor,
	}
	if p.WorkspaceOnly {
		// the host panel reports the current workspace; headless runs use
		// a fixed name so the filter still exercises
		opts.Workspace = currentWorkspace()
	}
	launcher := launch.NewService()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		gracefulShutdown()
	}()

	if *useGUI {
		initGUI(opts, launcher)
		return
	}
	runHeadless(opts, launcher, *frames, *outDir)
}

// currentWorkspace names the workspace the panel sits on: the host-provided
// environment value, or the fixed name the demo's fake windows share.
func currentWorkspace() string {
	if ws := os.Getenv("DOCKBAR_WORKSPACE"); ws != "" {
		return ws
	}
	return "workspace-1"
}

var dockForShutdown *appicon.Dock

func gracefulShutdown() {
	n := 0
	if dockForShutdown != nil {
		n = dockForShutdown.Len()
	}
	log.SessionEnd(n)
	log.Close()
	os.Exit(0)
}

// demoEntries are the applications the demo docks: real desktop entries
// when the system has any, otherwise a built-in trio.
func demoEntries() []*desktopentry.Entry {
	entries := desktopentry.Scan(desktopentry.DefaultDirs())
	if len(entries) > 3 {
		entries = entries[:3]
	}
	if len(entries) > 0 {
		return entries
	}
	return []*desktopentry.Entry{
		{Name: "Terminal", Icon: "utilities-terminal", Exec: "xterm"},
		{Name: "Editor", Icon: "accessories-text-editor", Exec: "xedit"},
		{Name: "Files", Icon: "system-file-manager", Exec: "xdg-open ."},
	}
}
