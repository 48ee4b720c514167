package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"dockbar/appicon"
	"dockbar/launch"
	"dockbar/log"
	"dockbar/render"
	"dockbar/wm"
)

// runHeadless drives the full draw pipeline without a window: three docked
// apps cycle through launch pulse, attention blink, hover and progress
// states while composited frames are optionally written out as PNGs.
func runHeadless(opts appicon.Options, launcher *launch.Service, frames int, outDir string) {
	if opts.Highlight == nil {
		opts.Highlight = render.Fixed(render.RGB{R: 0.2, G: 0.5, B: 0.9})
	}

	// animation timers dispatch through uiCh so all state mutation happens
	// on this goroutine, the headless stand-in for the UI loop
	uiCh := make(chan func(), 64)
	invoker := func(f func()) {
		done := make(chan struct{})
		uiCh <- func() {
			f()
			close(done)
		}
		<-done
	}

	dirty := map[string]bool{}
	dock := appicon.NewDock(opts, invoker, launcher, func(id string) {
		dirty[id] = true
	})
	dockForShutdown = dock

	entries := demoEntries()
	tints := []color.NRGBA{
		{R: 200, G: 60, B: 40, A: 255},
		{R: 40, G: 160, B: 70, A: 255},
		{R: 50, G: 90, B: 200, A: 255},
	}
	for i, e := range entries {
		app := appicon.FromEntry(e)
		win := wm.NewFakeApp(i + 1)
		for _, w := range win.Wins {
			w.Workspace = opts.Workspace
		}
		m := appicon.NewModel(app, win)
		c := dock.Add(m)
		c.SetIcon(demoIcon(tints[i%len(tints)]))
	}

	ids := dock.Order()
	dock.SetActive(ids[0])
	if len(ids) > 1 {
		dock.StartPulse(ids[1], false, "")
	}
	if len(ids) > 2 {
		dock.SetNeedsAttention(ids[2], true)
		c := dock.Get(ids[2])
		c.SetProgressVisible(true)
		c.SetCounterVisible(true)
		c.SetCounterValue(3)
	}

	if outDir != "" {
		if err := os.MkdirAll(outDir, 0755); err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", outDir, err)
			os.Exit(1)
		}
	}

	tick := time.NewTicker(40 * time.Millisecond)
	defer tick.Stop()
	for frame := 0; frame < frames; {
		select {
		case f := <-uiCh:
			f()
			continue
		case <-tick.C:
		}
		if len(ids) > 2 {
			dock.Get(ids[2]).SetProgressValue(float64(frame) / float64(frames))
		}
		for _, id := range ids {
			if !dirty[id] {
				continue
			}
			dirty[id] = false
			img := dock.Get(id).Redraw()
			if outDir != "" {
				writeFrame(outDir, id, frame, img)
			}
		}
		frame++
	}
	log.SessionEnd(dock.Len())
	fmt.Printf("rendered %d frames for %d apps\n", frames, dock.Len())
}

func writeFrame(dir, id string, frame int, img *image.NRGBA) {
	path := filepath.Join(dir, fmt.Sprintf("%s-%04d.png", id, frame))
	f, err := os.Create(path)
	if err != nil {
		log.Errorf("write frame: %v", err)
		return
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		log.Errorf("encode frame: %v", err)
	}
}

// demoIcon paints a simple tinted icon so the demo does not depend on an
// icon theme being installed.
func demoIcon(tint color.NRGBA) *image.NRGBA {
	const s = 64
	img := image.NewNRGBA(image.Rect(0, 0, s, s))
	for y := 0; y < s; y++ {
		for x := 0; x < s; x++ {
			dx, dy := x-s/2, y-s/2
			if dx*dx+dy*dy > (s/2-2)*(s/2-2) {
				continue
			}
			c := tint
			if y < s/3 {
				c = color.NRGBA{
					R: uint8(min(int(tint.R)+60, 255)),
					G: uint8(min(int(tint.G)+60, 255)),
					B: uint8(min(int(tint.B)+60, 255)),
					A: 255,
				}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}
