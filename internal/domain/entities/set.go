package entities

import "slices"

// Set is an insertion-ordered set of identifiers (logins or community names).
type Set []string

// Has reports whether v is in the set.
func (s Set) Has(v string) bool {
	return slices.Contains(s, v)
}

// Add appends v if absent. It returns false when v was already present.
func (s *Set) Add(v string) bool {
	if s.Has(v) {
		return false
	}
	*s = append(*s, v)
	return true
}

// Remove deletes v from the set. It returns false when v was absent.
func (s *Set) Remove(v string) bool {
	i := slices.Index(*s, v)
	if i < 0 {
		return false
	}
	*s = slices.Delete(*s, i, i+1)
	return true
}

// Values returns a copy of the set contents, never nil.
func (s Set) Values() []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}
