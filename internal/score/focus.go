package score

import "github.com/ronesse/volley-score-v2/internal/feed"

// Focus tracks the zero-or-one match the user has singled out. The zero
// value is "nothing focused".
type Focus struct {
	key feed.Key
	set bool
}

// Select applies the selection rules: selecting the focused key again clears
// it, selecting a different key replaces the focus.
func (f *Focus) Select(key feed.Key) {
	if f.set && f.key == key {
		f.Clear()
		return
	}
	f.key = key
	f.set = true
}

// Clear drops any focus.
func (f *Focus) Clear() {
	f.key = ""
	f.set = false
}

// Key returns the focused match key; ok is false when nothing is focused.
func (f Focus) Key() (feed.Key, bool) {
	return f.key, f.set
}

// Is reports whether the given key is the focused one.
func (f Focus) Is(key feed.Key) bool {
	return f.set && f.key == key
}
