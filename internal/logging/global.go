package logging

import (
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	mu            sync.RWMutex
	globalLogrus  = logrus.New()
	globalAdapter = NewLogrusAdapterFromLogger(globalLogrus)
)

// GetLogger returns the process-wide logger. Packages grab it once at
// initialization; the level and format can be adjusted later through
// SetAllLogLevels without re-wiring.
func GetLogger() Logger {
	mu.RLock()
	defer mu.RUnlock()
	return globalAdapter
}

// SetAllLogLevels sets the level on the shared logrus instance so that every
// adapter derived from it picks up the change.
func SetAllLogLevels(level logrus.Level) {
	mu.Lock()
	defer mu.Unlock()
	globalLogrus.SetLevel(level)
	logrus.SetLevel(level)
}

// SetGlobalLogger replaces the process-wide logger. Intended for tests and
// for the CLI entry point after configuration is loaded.
func SetGlobalLogger(logger *logrus.Logger) {
	if logger == nil {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	globalLogrus = logger
	globalAdapter = NewLogrusAdapterFromLogger(logger)
}
