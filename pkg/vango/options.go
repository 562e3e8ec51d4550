package vango

import (
	"slices"

	"github.com/vango-dev/reconcile/internal/errors"
)

// Options maps option names to values.
type Options map[string]any

// absentOption stands in for an option name missing from the caller's
// Options, so that "missing" and "explicitly nil" are different deps.
type absentOption struct{}

// MergeOptions returns a new Options holding every key of defaults, with the
// value taken from options when options has the key (even if nil) and from
// defaults otherwise. Keys of options unknown to defaults are dropped.
//
// options may be nil. defaults may not: it panics with E010.
func MergeOptions(options, defaults Options) Options {
	if defaults == nil {
		panic(errors.New("E010"))
	}

	merged := make(Options, len(defaults))
	for key, def := range defaults {
		if v, ok := options[key]; ok {
			merged[key] = v
		} else {
			merged[key] = def
		}
	}
	return merged
}

// OptionsMemo resolves sparse options against defaults captured once.
//
// The recognized keys and their default values are read from the defaults
// passed to NewOptionsMemo and never again. Resolve returns the same Options
// map for as long as the values of the recognized keys stay the same.
type OptionsMemo struct {
	keys     []string
	defaults []any
	memo     DepsMemo[Options]
}

// NewOptionsMemo captures the keys and values of defaults.
// It panics with E010 when defaults is nil.
func NewOptionsMemo(defaults Options) *OptionsMemo {
	if defaults == nil {
		panic(errors.New("E010"))
	}

	keys := make([]string, 0, len(defaults))
	for key := range defaults {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	values := make([]any, len(keys))
	for i, key := range keys {
		values[i] = defaults[key]
	}

	return &OptionsMemo{
		keys:     keys,
		defaults: values,
		memo:     DepsMemo[Options]{kind: MemoKindOptions},
	}
}

// Resolve merges options over the captured defaults.
// The returned map is shared with later calls and must not be modified.
func (m *OptionsMemo) Resolve(options Options) Options {
	deps := make([]any, len(m.keys))
	for i, key := range m.keys {
		if v, ok := options[key]; ok {
			deps[i] = v
		} else {
			deps[i] = absentOption{}
		}
	}

	return m.memo.Get(deps, func() Options {
		merged := make(Options, len(m.keys))
		for i, key := range m.keys {
			if _, missing := deps[i].(absentOption); missing {
				merged[key] = m.defaults[i]
			} else {
				merged[key] = deps[i]
			}
		}
		return merged
	})
}

// UseOptions is the hook form of OptionsMemo. The defaults are captured on
// the first render of the current component; later renders only look at
// options.
//
//	opts := vango.UseOptions(props, vango.Options{"duration": 300, "easing": "ease"})
func UseOptions(options, defaults Options) Options {
	memo := useSlot(HookOptions, func() *OptionsMemo {
		return NewOptionsMemo(defaults)
	})
	return memo.Resolve(options)
}
