//go:build !gui

package main

import (
	"fmt"
	"os"

	"dockbar/appicon"
	"dockbar/launch"
)

func initGUI(appicon.Options, *launch.Service) {
	fmt.Fprintln(os.Stderr, "dockbar: built without GUI support (rebuild with -tags gui)")
	os.Exit(1)
}
