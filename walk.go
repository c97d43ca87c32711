package addr

import "sort"

// Match pairs a path with the value resolved at that path.
type Match struct {
	Path  Path
	Value any
}

// Walk visits every node of root depth-first, starting with the root itself
// under the empty path. Map children are visited in sorted key order so the
// traversal is deterministic. fn returns false to stop the walk early. The
// Path handed to fn is only valid for the duration of the call; Clone it to
// retain.
func Walk(root any, fn func(path Path, value any) bool) {
	walkValue(nil, root, fn)
}

func walkValue(path Path, value any, fn func(Path, any) bool) bool {
	if !fn(path, value) {
		return false
	}
	switch v := value.(type) {
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			child := append(path[:len(path):len(path)], Key(k))
			if !walkValue(child, v[k], fn) {
				return false
			}
		}
	case []any:
		for i, item := range v {
			child := append(path[:len(path):len(path)], Index(i))
			if !walkValue(child, item, fn) {
				return false
			}
		}
	}
	return true
}
