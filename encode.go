package addr

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// EncodedPath is the canonical string form of a Path: a JSON array with key
// steps as strings and index steps as integers. The encoding is deterministic
// and injective over the key/index step universe, which makes encoded paths
// safe to use as map keys and to compare across processes. Treat the value as
// opaque; recover the path only through DecodePath.
type EncodedPath string

// EncodePath produces the canonical encoding of a path. The empty path
// encodes as "[]".
func EncodePath(p Path) EncodedPath {
	var b strings.Builder
	b.WriteByte('[')
	for i, s := range p {
		if i > 0 {
			b.WriteByte(',')
		}
		if s.kind == stepIndex {
			b.WriteString(strconv.Itoa(s.index))
			continue
		}
		// json.Marshal of a string cannot fail.
		raw, _ := json.Marshal(s.key)
		b.Write(raw)
	}
	b.WriteByte(']')
	return EncodedPath(b.String())
}

// DecodePath recovers the path from its canonical encoding. It is the exact
// inverse of EncodePath for any value the encoder produced; for anything else
// it returns an error.
func DecodePath(encoded EncodedPath) (Path, error) {
	dec := json.NewDecoder(strings.NewReader(string(encoded)))
	dec.UseNumber()
	var raw []any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("addr: decode path: %w", err)
	}
	if dec.More() {
		return nil, fmt.Errorf("addr: decode path: trailing data after %q", encoded)
	}
	path := make(Path, 0, len(raw))
	for i, item := range raw {
		step, err := stepFromJSONValue(item)
		if err != nil {
			return nil, fmt.Errorf("addr: decode path: step %d: %w", i, err)
		}
		path = append(path, step)
	}
	return path, nil
}

func stepFromJSONValue(item any) (Step, error) {
	switch v := item.(type) {
	case string:
		return Key(v), nil
	case json.Number:
		idx, err := strconv.Atoi(v.String())
		if err != nil {
			return Step{}, fmt.Errorf("non-integer index %q", v.String())
		}
		return Index(idx), nil
	default:
		return Step{}, fmt.Errorf("unsupported step of type %T", item)
	}
}

// MarshalJSON renders the step as its plain JSON value: a string for key
// steps, an integer for index steps.
func (s Step) MarshalJSON() ([]byte, error) {
	if s.kind == stepIndex {
		return []byte(strconv.Itoa(s.index)), nil
	}
	return json.Marshal(s.key)
}

// UnmarshalJSON accepts the representation produced by MarshalJSON.
func (s *Step) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return fmt.Errorf("addr: unmarshal step: %w", err)
	}
	step, err := stepFromJSONValue(raw)
	if err != nil {
		return fmt.Errorf("addr: unmarshal step: %w", err)
	}
	*s = step
	return nil
}
