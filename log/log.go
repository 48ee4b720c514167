package log

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
)

var (
	diagLog  zerolog.Logger
	diagFile *os.File
	logMu    sync.Mutex
	logReady bool
	pid      int
	dir      string
)

func ResolveDir(flagPath string) (string, error) {
	// Priority 1: -logpath flag
	if flagPath != "" {
		if !filepath.IsAbs(flagPath) {
			wd, err := os.Getwd()
			if err != nil {
				return "", err
			}
			return filepath.Join(wd, flagPath), nil
		}
		return flagPath, nil
	}

	// Priority 2: DOCKBAR_LOG_PATH environment variable
	envPath := os.Getenv("DOCKBAR_LOG_PATH")
	if envPath != "" {
		if !filepath.IsAbs(envPath) {
			wd, err := os.Getwd()
			if err != nil {
				return "", err
			}
			return filepath.Join(wd, envPath), nil
		}
		return envPath, nil
	}

	// Priority 3: Default OS-specific location
	return getDefaultDir()
}

func SetDir(d string) {
	dir = d
}

func Dir() string {
	return dir
}

func EnsureDir() error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	return nil
}

func Init() error {
	logMu.Lock()
	defer logMu.Unlock()

	if err := EnsureDir(); err != nil {
		return err
	}

	pid = os.Getpid()

	var err error

	diagPath := filepath.Join(dir, "diagnostics_log.txt")
	diagFile, err = os.OpenFile(diagPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}

	consoleWriter := zerolog.ConsoleWriter{
		Out:        diagFile,
		TimeFormat: "2006-01-02 15:04:05",
		NoColor:    true,
	}
	diagLog = zerolog.New(consoleWriter).With().Timestamp().Int("pid", pid).Logger()

	logReady = true
	return nil
}

func Close() {
	logMu.Lock()
	defer logMu.Unlock()
	if diagFile != nil {
		diagFile.Close()
		diagFile = nil
	}
	logReady = false
}

func Info(msg string) {
	if logReady {
		diagLog.Info().Msg(msg)
	}
}

func Infof(format string, args ...any) {
	if logReady {
		diagLog.Info().Msg(fmt.Sprintf(format, args...))
	}
}

func Error(msg string) {
	if logReady {
		diagLog.Error().Msg(msg)
	}
}

func Errorf(format string, args ...any) {
	if logReady {
		diagLog.Error().Msg(fmt.Sprintf(format, args...))
	}
}

func Warnf(format string, args ...any) {
	if logReady {
		diagLog.Warn().Msg(fmt.Sprintf(format, args...))
	}
}

func Debugf(format string, args ...any) {
	if logReady {
		diagLog.Debug().Msg(fmt.Sprintf(format, args...))
	}
}

// AppAdded records an application joining the dock.
func AppAdded(name string, pinned bool) {
	if !logReady {
		return
	}
	diagLog.Info().
		Str("app", name).
		Bool("pinned", pinned).
		Msg("app_added")
}

// AppRemoved records an application leaving the dock.
func AppRemoved(name string) {
	if !logReady {
		return
	}
	diagLog.Info().
		Str("app", name).
		Msg("app_removed")
}

// IconFallback records a failed icon load that degraded to a placeholder.
func IconFallback(app string, err error) {
	if !logReady {
		return
	}
	diagLog.Warn().
		Str("app", app).
		Err(err).
		Msg("icon_fallback")
}

// SessionStart records dock startup with the active rendering options.
func SessionStart(indicator, background string, multiInd bool) {
	if !logReady {
		return
	}
	diagLog.Info().
		Str("indicator", indicator).
		Str("background", background).
		Bool("multi_indicator", multiInd).
		Msg("session_start")
}

// SessionEnd records shutdown with the number of apps still docked.
func SessionEnd(apps int) {
	if !logReady {
		return
	}
	diagLog.Info().
		Int("apps", apps).
		Msg("session_end")
}
