package vdom

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Key identifies a node among its siblings during reconciliation.
//
// Strings and numbers are valid keys. The zero Key means the node is
// unkeyed, and an unkeyed node never matches any other node, not even
// another unkeyed one.
type Key struct {
	v any // string, int64 or float64; nil when unkeyed
}

// NoKey is the zero Key.
var NoKey = Key{}

// StringKey returns a string key. The empty string is a valid key.
func StringKey(s string) Key {
	return Key{v: s}
}

// IntKey returns a numeric key.
func IntKey(n int64) Key {
	return Key{v: n}
}

// FloatKey returns a numeric key. Integral values are stored as integers
// so that FloatKey(1) matches IntKey(1).
func FloatKey(f float64) Key {
	if f == math.Trunc(f) && f >= math.MinInt64 && f < math.MaxInt64 {
		return Key{v: int64(f)}
	}
	return Key{v: f}
}

// KeyOf converts a key-like value to a Key.
// Unsupported types, including nil, yield NoKey.
func KeyOf(v any) Key {
	switch k := v.(type) {
	case Key:
		return k
	case string:
		return StringKey(k)
	case int:
		return IntKey(int64(k))
	case int8:
		return IntKey(int64(k))
	case int16:
		return IntKey(int64(k))
	case int32:
		return IntKey(int64(k))
	case int64:
		return IntKey(k)
	case uint:
		return KeyOf(uint64(k))
	case uint8:
		return IntKey(int64(k))
	case uint16:
		return IntKey(int64(k))
	case uint32:
		return IntKey(int64(k))
	case uint64:
		if k <= math.MaxInt64 {
			return IntKey(int64(k))
		}
		return FloatKey(float64(k))
	case float32:
		return FloatKey(float64(k))
	case float64:
		return FloatKey(k)
	case json.Number:
		if n, err := k.Int64(); err == nil {
			return IntKey(n)
		}
		if f, err := k.Float64(); err == nil {
			return FloatKey(f)
		}
		return NoKey
	default:
		return NoKey
	}
}

// IsZero reports whether k is unkeyed.
func (k Key) IsZero() bool {
	return k.v == nil
}

// Matches reports whether k and other identify the same node.
// Both keys must be set and strictly equal; NaN never matches.
func (k Key) Matches(other Key) bool {
	if k.v == nil || other.v == nil {
		return false
	}
	return k.v == other.v
}

// Value returns the underlying string or number, or nil when unkeyed.
func (k Key) Value() any {
	return k.v
}

// String returns the key for display.
func (k Key) String() string {
	switch v := k.v.(type) {
	case nil:
		return ""
	case string:
		return strconv.Quote(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

// indexable reports whether k can be used as a map key for lookups.
// NaN keys cannot, since they never equal themselves.
func (k Key) indexable() bool {
	if k.v == nil {
		return false
	}
	if f, ok := k.v.(float64); ok && math.IsNaN(f) {
		return false
	}
	return true
}
