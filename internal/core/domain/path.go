package domain

import "unique"

// InternedPath is an interned file path. A build mentions the same
// handful of paths over and over (inputs, record keys, job primaries);
// interning makes those values cheap to compare and to key maps with.
type InternedPath struct {
	h unique.Handle[string]
}

// InternPath interns a path string.
func InternPath(path string) InternedPath {
	return InternedPath{h: unique.Make(path)}
}

// String returns the underlying path.
func (p InternedPath) String() string {
	return p.h.Value()
}
