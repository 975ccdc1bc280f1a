package workshop

import (
	"cmp"
	"maps"
	"slices"
)

// resolve picks the key of m that serves a request: the requested code
// when present in m, else the workshop default, else the smallest key.
// The last case is a real fallback, not an error: a workshop that only
// ships French content still answers a German request, with French.
// ok is false only when m is empty.
//
// Resolution runs on every call; only the content loads behind the
// resolved key are cached.
func resolve[K cmp.Ordered, V any](m map[K]V, requested *K, def K) (key K, ok bool) {
	if len(m) == 0 {
		return key, false
	}
	candidate := def
	if requested != nil {
		candidate = *requested
	}
	if _, ok := m[candidate]; ok {
		return candidate, true
	}
	return slices.Min(slices.Collect(maps.Keys(m))), true
}
