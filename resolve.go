package addr

import "reflect"

// ValueAtPath walks root step by step and returns the value the path points
// at. Resolution is total: every failure mode (wrong step kind for the
// container, missing key, index out of range, hitting a non-container with
// steps remaining) reports ok=false instead of panicking. The empty path
// returns root unchanged.
//
// root must belong to the serializable-value universe: string-keyed maps,
// slices/arrays, and primitive leaves. Map containers accept only key steps,
// sequence containers only index steps; a key step against a slice fails even
// when the key spells a valid index.
func ValueAtPath(path Path, root any) (any, bool) {
	current := root
	for _, step := range path {
		next, ok := resolveStep(step, current)
		if !ok {
			return nil, false
		}
		current = next
	}
	return current, true
}

func resolveStep(step Step, value any) (any, bool) {
	switch v := value.(type) {
	case nil:
		return nil, false
	case map[string]any:
		if step.kind != stepKey {
			return nil, false
		}
		out, ok := v[step.key]
		if !ok {
			return nil, false
		}
		return out, true
	case []any:
		if step.kind != stepIndex {
			return nil, false
		}
		if step.index < 0 || step.index >= len(v) {
			return nil, false
		}
		return v[step.index], true
	}
	return resolveStepReflect(step, value)
}

// resolveStepReflect handles string-keyed maps and sequences of concrete
// element types, the shapes JSON-adjacent producers hand over without
// normalizing to map[string]any / []any first.
func resolveStepReflect(step Step, value any) (any, bool) {
	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Map:
		if step.kind != stepKey || rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		key := reflect.ValueOf(step.key).Convert(rv.Type().Key())
		out := rv.MapIndex(key)
		if !out.IsValid() {
			return nil, false
		}
		return out.Interface(), true
	case reflect.Slice, reflect.Array:
		if step.kind != stepIndex {
			return nil, false
		}
		if step.index < 0 || step.index >= rv.Len() {
			return nil, false
		}
		return rv.Index(step.index).Interface(), true
	default:
		return nil, false
	}
}
