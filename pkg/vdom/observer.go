package vdom

import "sync"

// UpdatesObserver is notified after every child-list comparison.
// Implementations must be safe for concurrent use.
type UpdatesObserver interface {
	ObserveChildUpdates(added, removed int)
}

var (
	updatesObserver   UpdatesObserver
	updatesObserverMu sync.RWMutex
)

// SetUpdatesObserver installs o as the package observer. Pass nil to remove it.
func SetUpdatesObserver(o UpdatesObserver) {
	updatesObserverMu.Lock()
	updatesObserver = o
	updatesObserverMu.Unlock()
}

func notifyUpdates(added, removed int) {
	updatesObserverMu.RLock()
	o := updatesObserver
	updatesObserverMu.RUnlock()
	if o != nil {
		o.ObserveChildUpdates(added, removed)
	}
}
