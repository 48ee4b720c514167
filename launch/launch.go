// Package launch starts applications from their desktop-entry Exec lines
// and tracks the startup-notification handshake the pulse animation waits
// on.
package launch

import (
	"fmt"
	"os/exec"
	"strings"
	"sync"

	"github.com/google/uuid"

	"dockbar/log"
)

// Service launches commands and hands out startup-notification ids. The id
// stays pending until the windowing layer reports the app mapped a window
// (CancelStartupNotification), or the launch pulse gives up.
type Service struct {
	mu      sync.Mutex
	pending map[string]string // startup id -> command
}

func NewService() *Service {
	return &Service{pending: make(map[string]string)}
}

// BuildArgs turns a desktop-entry Exec line into an argv, dropping the
// field codes (%f, %U, ...) that only make sense for file/URL launches and
// unescaping %% to a literal percent. An argument reduced to a bare option
// stub like "--file=" by code removal is dropped whole.
func BuildArgs(execLine string) ([]string, error) {
	fields := strings.Fields(execLine)
	args := make([]string, 0, len(fields))
	for _, f := range fields {
		arg, hadCode := stripFieldCodes(f)
		if arg == "" || (hadCode && strings.HasSuffix(arg, "=")) {
			continue
		}
		args = append(args, arg)
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("empty exec line %q", execLine)
	}
	return args, nil
}

// stripFieldCodes removes every %X field code from one argument and turns
// %% into %. hadCode reports whether a code was removed.
func stripFieldCodes(s string) (arg string, hadCode bool) {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '%' || i+1 >= len(s) {
			b.WriteByte(s[i])
			continue
		}
		i++
		if s[i] == '%' {
			b.WriteByte('%')
			continue
		}
		hadCode = true
	}
	return b.String(), hadCode
}

// Launch starts the command and returns a startup-notification id. On any
// failure no id is retained and the error is returned for the caller to
// surface by reverting indicator state.
func (s *Service) Launch(execLine string) (string, error) {
	args, err := BuildArgs(execLine)
	if err != nil {
		return "", err
	}
	cmd := exec.Command(args[0], args[1:]...)
	if err := cmd.Start(); err != nil {
		return "", fmt.Errorf("launch %s: %w", args[0], err)
	}
	// reap without blocking the loop
	go func() { _ = cmd.Wait() }()

	id := uuid.NewString()
	s.mu.Lock()
	s.pending[id] = args[0]
	s.mu.Unlock()
	log.Infof("launched %s (startup id %s)", args[0], id)
	return id, nil
}

// CancelStartupNotification drops a pending startup id. Cancelling an id
// that was already cancelled, or never issued, is a no-op.
func (s *Service) CancelStartupNotification(id string) {
	if id == "" {
		return
	}
	s.mu.Lock()
	_, ok := s.pending[id]
	delete(s.pending, id)
	s.mu.Unlock()
	if ok {
		log.Debugf("startup notification %s cancelled", id)
	}
}

// Pending reports whether a startup id is still awaited.
func (s *Service) Pending(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.pending[id]
	return ok
}
