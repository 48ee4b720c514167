// Package animate runs the periodic state machines behind the launch pulse
// and the attention blink. A timer never holds the animated state itself:
// it carries only an app id and looks the state up through a Registry on
// every tick, so a timer can never keep a removed app alive. All state
// mutation happens inside the Invoker, which the host points at its UI
// loop dispatcher (fyne.Do in the GUI build).
package animate

import (
	"sync"
	"time"
)

const (
	// PulseInterval is the tick period of the launch pulse.
	PulseInterval = 40 * time.Millisecond
	// PulseSteps is the length of one triangular alpha cycle.
	PulseSteps = 20
	// PulseMaxDuration force-stops a pulse that is still waiting on a
	// startup handshake that never completes.
	PulseMaxDuration = 45 * time.Second
	// BlinkInterval is the attention on/off toggle period.
	BlinkInterval = 330 * time.Millisecond
)

// pulseMaxTicks derives the forced-stop tick count from the interval.
const pulseMaxTicks = int(PulseMaxDuration / PulseInterval)

// Invoker dispatches a closure onto the single UI/event-loop thread and
// returns after it has run.
type Invoker func(func())

// Direct runs closures inline, for tests and the headless demo where the
// caller's goroutine is the loop.
func Direct(f func()) { f() }

// Registry is how a timer reaches the state it animates, keyed by app id.
// Each Step/Blink call advances the state and requests a redraw; returning
// false stops the timer, after which the matching Finish hook runs exactly
// once for cleanup (e.g. cancelling a pending startup notification).
// An id unknown to the registry must return false rather than error.
type Registry interface {
	StepPulse(id string) bool
	FinishPulse(id string)
	BlinkAttention(id string) bool
	FinishAttention(id string)
}

// Timer is a handle to a running animation. Stop is idempotent and safe to
// call on a timer that has already stopped itself, including from another
// goroutine racing the timer's own shutdown.
type Timer struct {
	stop     chan struct{}
	stopOnce sync.Once
}

func newTimer() *Timer {
	return &Timer{stop: make(chan struct{})}
}

func (t *Timer) Stop() {
	t.stopOnce.Do(func() { close(t.stop) })
}

// Stopped reports whether the timer has finished or been cancelled.
func (t *Timer) Stopped() bool {
	select {
	case <-t.stop:
		return true
	default:
		return false
	}
}

// run drives tick on the invoker every interval until tick reports done or
// the timer is stopped externally. finish runs on the invoker when ticking
// ends from the inside; an external Stop skips it (the stopper cleans up).
func run(t *Timer, interval time.Duration, do Invoker, tick func(n int) bool, finish func()) {
	go func() {
		tk := time.NewTicker(interval)
		defer tk.Stop()
		n := 0
		for {
			select {
			case <-t.stop:
				return
			case <-tk.C:
				n++
				keep := make(chan bool, 1)
				do(func() {
					k := tick(n)
					if !k {
						finish()
					}
					keep <- k
				})
				if !<-keep {
					t.Stop()
					return
				}
			}
		}
	}()
}

// StartPulse begins the launch-pulse animation for the app with the given
// id. The pulse runs until the registry reports it is done or the 45 second
// ceiling is hit, whichever comes first.
func StartPulse(do Invoker, reg Registry, id string) *Timer {
	t := newTimer()
	run(t, PulseInterval, do, func(n int) bool {
		if n >= pulseMaxTicks {
			return false
		}
		return reg.StepPulse(id)
	}, func() {
		reg.FinishPulse(id)
	})
	return t
}

// StartAttention begins the attention blink for the app with the given id.
// It stops on the first tick after the registry observes that attention is
// no longer wanted.
func StartAttention(do Invoker, reg Registry, id string) *Timer {
	t := newTimer()
	run(t, BlinkInterval, do, func(int) bool {
		return reg.BlinkAttention(id)
	}, func() {
		reg.FinishAttention(id)
	})
	return t
}

// PulseAlpha is the icon opacity at a pulse step in [0, PulseSteps]: a
// triangular wave that fades out over the first half of the cycle and back
// in over the second.
func PulseAlpha(step int) float64 {
	if step < 0 {
		step = 0
	}
	if step > PulseSteps {
		step %= PulseSteps
	}
	if step <= PulseSteps/2 {
		return 1 - float64(step)/float64(PulseSteps/2)
	}
	return float64(step-PulseSteps/2) / float64(PulseSteps/2)
}
