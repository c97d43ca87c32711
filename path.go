package addr

import (
	"strconv"
	"strings"
)

type stepKind uint8

const (
	stepKey stepKind = iota
	stepIndex
)

// Step is a single hop in a walk through nested maps and slices: either a map
// key or an array index. Steps are comparable value records; a key step never
// equals an index step, even when textually identical (Key("1") != Index(1)).
type Step struct {
	kind  stepKind
	key   string
	index int
}

// Key builds a map-key step.
func Key(name string) Step {
	return Step{kind: stepKey, key: name}
}

// Index builds an array-index step.
func Index(i int) Step {
	return Step{kind: stepIndex, index: i}
}

// IsKey reports whether the step is a map key.
func (s Step) IsKey() bool {
	return s.kind == stepKey
}

// IsIndex reports whether the step is an array index.
func (s Step) IsIndex() bool {
	return s.kind == stepIndex
}

// Key returns the map key for a key step.
func (s Step) Key() (string, bool) {
	return s.key, s.kind == stepKey
}

// Index returns the array index for an index step.
func (s Step) Index() (int, bool) {
	return s.index, s.kind == stepIndex
}

// Value returns the step as a plain string or int.
func (s Step) Value() any {
	if s.kind == stepIndex {
		return s.index
	}
	return s.key
}

func (s Step) String() string {
	if s.kind == stepIndex {
		return "[" + strconv.Itoa(s.index) + "]"
	}
	return "." + s.key
}

// Path is an ordered walk from the root of a value tree down to a nested
// property. The empty path denotes the root value itself. Paths are immutable
// by convention; operations that derive a path return a fresh slice.
type Path []Step

// Clone returns a copy detached from the receiver's backing array.
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	out := make(Path, len(p))
	copy(out, p)
	return out
}

func (p Path) String() string {
	var b strings.Builder
	for _, s := range p {
		b.WriteString(s.String())
	}
	return b.String()
}

// values returns the steps as plain strings and ints.
func (p Path) values() []any {
	out := make([]any, len(p))
	for i, s := range p {
		out[i] = s.Value()
	}
	return out
}

// PathsEqual reports whether both paths have the same length and every
// corresponding step is strictly equal.
func PathsEqual(a, b Path) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// HasPrefix reports whether every step of prefix strictly equals the step at
// the same position in path. The empty prefix is a prefix of every path; a
// prefix longer than path never matches.
func HasPrefix(path, prefix Path) bool {
	if len(prefix) > len(path) {
		return false
	}
	for i := range prefix {
		if path[i] != prefix[i] {
			return false
		}
	}
	return true
}

// CommonRoot returns the longest path that is a prefix of every input path.
// The scan is bounded by the first path's length: a mismatch or exhaustion on
// any other path halts growth, so the first path being the shortest is not
// required for correctness. No paths yields the empty path.
func CommonRoot(paths ...Path) Path {
	var root Path
	if len(paths) == 0 {
		return root
	}
	first := paths[0]
	for i := 0; i < len(first); i++ {
		candidate := first[i]
		for _, p := range paths[1:] {
			if i >= len(p) || p[i] != candidate {
				return root
			}
		}
		root = append(root, candidate)
	}
	return root
}
