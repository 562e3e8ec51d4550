package vango

import (
	"log/slog"
	"sync"
)

// DebugMode enables hook order validation.
// This should be set at startup and not changed during runtime.
var DebugMode bool

// DebugConfig controls debug logging for memoized hooks.
type DebugConfig struct {
	// LogRecompute logs every memo computation at debug level, with the
	// index of the dependency that changed.
	LogRecompute bool

	// Logger receives debug records.
	// If nil, slog.Default() is used.
	Logger *slog.Logger
}

// Debug is the package debug configuration.
var Debug DebugConfig

func debugLogger() *slog.Logger {
	if Debug.Logger != nil {
		return Debug.Logger
	}
	return slog.Default()
}

// MemoObserver is notified of every memo lookup.
// Implementations must be safe for concurrent use.
type MemoObserver interface {
	ObserveMemo(kind string, recomputed bool)
}

var (
	memoObserver   MemoObserver
	memoObserverMu sync.RWMutex
)

// SetMemoObserver installs o as the package observer. Pass nil to remove it.
func SetMemoObserver(o MemoObserver) {
	memoObserverMu.Lock()
	memoObserver = o
	memoObserverMu.Unlock()
}

func notifyMemo(kind string, recomputed bool) {
	memoObserverMu.RLock()
	o := memoObserver
	memoObserverMu.RUnlock()
	if o != nil {
		o.ObserveMemo(kind, recomputed)
	}
}
