package appicon

import (
	"fmt"

	"dockbar/animate"
	"dockbar/launch"
	"dockbar/log"
)

// Dock owns the per-app compositors and is the registry the animation
// timers resolve their app ids through. Because timers only ever hold an
// id, removing an app from the dock is enough to stop its animations on
// their next tick.
type Dock struct {
	opts     Options
	invoker  animate.Invoker
	launcher *launch.Service

	apps  map[string]*Compositor
	order []string

	pulseTimers map[string]*animate.Timer
	attnTimers  map[string]*animate.Timer

	queueRedraw func(id string)
}

// NewDock builds an empty dock. queueRedraw is called with an app id every
// time that app wants repainting; invoker dispatches timer ticks onto the
// UI loop.
func NewDock(opts Options, invoker animate.Invoker, launcher *launch.Service, queueRedraw func(id string)) *Dock {
	if invoker == nil {
		invoker = animate.Direct
	}
	return &Dock{
		opts:        opts,
		invoker:     invoker,
		launcher:    launcher,
		apps:        make(map[string]*Compositor),
		pulseTimers: make(map[string]*animate.Timer),
		attnTimers:  make(map[string]*animate.Timer),
		queueRedraw: queueRedraw,
	}
}

// Add creates a compositor for the model and registers it under its app id.
func (d *Dock) Add(m *Model) *Compositor {
	id := m.App.ID
	c := NewCompositor(m, d.opts, func() {
		if d.queueRedraw != nil {
			d.queueRedraw(id)
		}
	})
	if d.launcher != nil {
		c.startupPending = d.launcher.Pending
		c.cancelStartup = d.launcher.CancelStartupNotification
	}
	d.apps[id] = c
	d.order = append(d.order, id)
	log.AppAdded(m.App.Name, m.App.Pinned)
	return c
}

// Remove drops an app. Its timers observe the missing id on their next
// tick and stop themselves.
func (d *Dock) Remove(id string) {
	c, ok := d.apps[id]
	if !ok {
		return
	}
	delete(d.apps, id)
	for i, o := range d.order {
		if o == id {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
	if t := d.pulseTimers[id]; t != nil {
		t.Stop()
		delete(d.pulseTimers, id)
	}
	if t := d.attnTimers[id]; t != nil {
		t.Stop()
		delete(d.attnTimers, id)
	}
	log.AppRemoved(c.model.App.Name)
}

// Get returns the compositor for an app id, or nil.
func (d *Dock) Get(id string) *Compositor { return d.apps[id] }

// Order returns app ids in dock order.
func (d *Dock) Order() []string { return d.order }

// Len returns the number of docked apps.
func (d *Dock) Len() int { return len(d.apps) }

// SetActive marks one app as owning the focused window and clears the flag
// everywhere else.
func (d *Dock) SetActive(id string) {
	for appID, c := range d.apps {
		c.SetActive(appID == id)
	}
}

// FindByClass locates the docked app matching a window class name.
func (d *Dock) FindByClass(class string) *Compositor {
	if c, ok := d.apps[NormalizeClass(class)]; ok {
		return c
	}
	for _, c := range d.apps {
		if MatchClass(c.model.App.ID, class) || MatchClass(c.model.App.Name, class) {
			return c
		}
	}
	return nil
}

// Launch starts the app's exec command and runs the launch pulse until its
// startup notification resolves. A launch failure reverts the indicator
// state instead of surfacing a dialog.
func (d *Dock) Launch(id string) error {
	c := d.apps[id]
	if c == nil {
		return fmt.Errorf("no docked app %q", id)
	}
	if d.launcher == nil {
		return fmt.Errorf("no launch service")
	}
	startupID, err := d.launcher.Launch(c.model.App.Exec)
	if err != nil {
		c.finishPulse()
		return err
	}
	d.StartPulse(id, false, startupID)
	return nil
}

// StartPulse arms the pulse animation for an app. An already-running pulse
// is restarted from step zero rather than doubled up.
func (d *Dock) StartPulse(id string, oneShot bool, startupID string) {
	c := d.apps[id]
	if c == nil {
		return
	}
	if t := d.pulseTimers[id]; t != nil {
		t.Stop()
	}
	c.beginPulse(oneShot, startupID)
	d.pulseTimers[id] = animate.StartPulse(d.invoker, d, id)
}

// SetNeedsAttention arms or clears urgency for an app, starting the blink
// timer in blink mode. Badge mode needs no timer; the badge is drawn
// statically.
func (d *Dock) SetNeedsAttention(id string, v bool) {
	c := d.apps[id]
	if c == nil {
		return
	}
	c.setNeedsAttention(v)
	if v && !d.opts.AttentionBadge {
		if t := d.attnTimers[id]; t == nil || t.Stopped() {
			d.attnTimers[id] = animate.StartAttention(d.invoker, d, id)
		}
	}
	// on clear the running timer notices on its next tick
}

// animate.Registry implementation; unknown ids report done so orphaned
// timers wind down.

func (d *Dock) StepPulse(id string) bool {
	if c := d.apps[id]; c != nil {
		return c.stepPulse()
	}
	return false
}

func (d *Dock) FinishPulse(id string) {
	if c := d.apps[id]; c != nil {
		c.finishPulse()
	}
}

func (d *Dock) BlinkAttention(id string) bool {
	if c := d.apps[id]; c != nil {
		return c.blinkAttention()
	}
	return false
}

func (d *Dock) FinishAttention(id string) {
	if c := d.apps[id]; c != nil {
		c.finishAttention()
	}
}

// HitTest returns the app whose allocated bounds contain the point, for
// drag-and-drop reordering by the host.
func (d *Dock) HitTest(x, y int) *Compositor {
	for _, id := range d.order {
		c := d.apps[id]
		bx, by, bw, bh := c.AllocatedBounds()
		if x >= bx && x < bx+bw && y >= by && y < by+bh {
			return c
		}
	}
	return nil
}

var _ animate.Registry = (*Dock)(nil)
