// Package vango provides the per-component hook runtime used by rendering
// components: owners, hook slots and memoized hooks.
//
// An Owner stands for one component instance. Hooks called while the owner
// renders keep their state in the owner's slots, so the same hook returns
// the same state on every render of that instance.
//
//	owner := vango.NewOwner(nil)
//	owner.Render(func() {
//	    opts := vango.UseOptions(props, defaults)
//	    total := vango.UseMemo(func() int { return sum(items) }, items)
//	    ...
//	})
//
// # Memoization
//
// DepsMemo caches a value keyed by a tuple of dependency values and only
// recomputes when that tuple changes. UseMemo and UseOnce are its hook
// forms.
//
// # Options
//
// MergeOptions fills a sparse Options map from a defaults map. OptionsMemo
// and its hook form UseOptions capture the defaults once, then return the
// same merged map until one of the recognized option values changes.
//
// # Debugging
//
// Set DebugMode to validate hook order across renders, and Debug.LogRecompute
// to log memo recomputations through log/slog.
package vango
