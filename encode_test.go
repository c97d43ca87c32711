package addr

import (
	"strconv"
	"testing"
)

func TestEncodePathCanonicalForm(t *testing.T) {
	cases := []struct {
		name string
		path Path
		want EncodedPath
	}{
		{"empty", nil, "[]"},
		{"single key", Path{Key("a")}, `["a"]`},
		{"single index", Path{Index(7)}, "[7]"},
		{"mixed", Path{Key("a"), Index(1), Key("b")}, `["a",1,"b"]`},
		{"numeric-looking key stays a string", Path{Key("1")}, `["1"]`},
		{"negative index", Path{Index(-1)}, "[-1]"},
		{"key needing escapes", Path{Key(`he said "hi"`)}, `["he said \"hi\""]`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := EncodePath(tc.path); got != tc.want {
				t.Fatalf("EncodePath(%v) = %s, want %s", tc.path, got, tc.want)
			}
		})
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	paths := []Path{
		nil,
		{},
		{Key("a")},
		{Index(0)},
		{Key("a"), Index(1), Key("b")},
		{Key(""), Index(42), Key("nested.key"), Key("with spaces")},
		{Key("1"), Index(1)},
		{Key("üñïçödé"), Key("\t\n")},
	}
	for _, p := range paths {
		decoded, err := DecodePath(EncodePath(p))
		if err != nil {
			t.Fatalf("round trip of %v failed: %v", p, err)
		}
		if !PathsEqual(decoded, p) {
			t.Fatalf("round trip of %v produced %v", p, decoded)
		}
	}
}

func TestEncodePathInjective(t *testing.T) {
	// Key("1") and Index(1) are distinct steps and must encode distinctly.
	a := EncodePath(Path{Key("1")})
	b := EncodePath(Path{Index(1)})
	if a == b {
		t.Fatalf("encoding conflates key and index steps: %s", a)
	}
}

func TestDecodePathRejectsForeignInput(t *testing.T) {
	inputs := []EncodedPath{
		"",
		"not json",
		`{"a":1}`,
		`"a"`,
		`[1.5]`,
		`[true]`,
		`[["a"]]`,
		`[null]`,
		`["a"] trailing`,
	}
	for _, in := range inputs {
		if _, err := DecodePath(in); err == nil {
			t.Fatalf("DecodePath(%q) succeeded, want error", in)
		}
	}
}

func TestEncoderMemoizesPerInstance(t *testing.T) {
	recorder := &recordingEncodeCache{entries: map[*Path]EncodedPath{}}
	encoder := NewEncoder(WithEncodeCache(recorder))

	path := Path{Key("a"), Index(1)}
	first := encoder.Encode(&path)
	second := encoder.Encode(&path)
	if first != second {
		t.Fatalf("repeated encodes of the same instance differ: %s vs %s", first, second)
	}
	if recorder.sets != 1 {
		t.Fatalf("expected a single cache fill, got %d", recorder.sets)
	}

	// A structurally equal but distinct instance gets its own entry.
	other := Path{Key("a"), Index(1)}
	if got := encoder.Encode(&other); got != first {
		t.Fatalf("equal paths must share the encoded form: %s vs %s", got, first)
	}
	if recorder.sets != 2 {
		t.Fatalf("distinct instances must not share cache entries, got %d fills", recorder.sets)
	}
}

func TestPackageEncodeIsIdempotentPerInstance(t *testing.T) {
	path := Path{Key("pos"), Key("x")}
	first := Encode(&path)
	second := Encode(&path)
	if first != second {
		t.Fatalf("default encoder returned differing values: %s vs %s", first, second)
	}
	if first != `["pos","x"]` {
		t.Fatalf("unexpected canonical form: %s", first)
	}
}

func TestEncoderNilPath(t *testing.T) {
	encoder := NewEncoder()
	if got := encoder.Encode(nil); got != "[]" {
		t.Fatalf("nil path should encode as the empty path, got %s", got)
	}
}

func TestBoundedEncodeCacheResetsAtCapacity(t *testing.T) {
	encoder := NewEncoder(WithCacheCapacity(2))

	paths := make([]Path, 3)
	for i := range paths {
		paths[i] = Path{Index(i)}
		encoder.Encode(&paths[i])
	}
	// The third insert clears the full cache first; encoding still works and
	// stays correct for every instance.
	for i := range paths {
		want := EncodedPath("[" + strconv.Itoa(i) + "]")
		if got := encoder.Encode(&paths[i]); got != want {
			t.Fatalf("post-reset encode of %v = %s, want %s", paths[i], got, want)
		}
	}
}

func TestStepJSONRoundTrip(t *testing.T) {
	original := Path{Key("a"), Index(2), Key("1")}
	encoded := EncodePath(original)

	var steps []Step
	for i, raw := range []string{`"a"`, `2`, `"1"`} {
		var s Step
		if err := s.UnmarshalJSON([]byte(raw)); err != nil {
			t.Fatalf("unmarshal step %d: %v", i, err)
		}
		steps = append(steps, s)
	}
	if !PathsEqual(Path(steps), original) {
		t.Fatalf("unmarshalled steps %v differ from %v", steps, original)
	}
	if got := EncodePath(steps); got != encoded {
		t.Fatalf("re-encoded steps produced %s, want %s", got, encoded)
	}

	var bad Step
	if err := bad.UnmarshalJSON([]byte("2.5")); err == nil {
		t.Fatal("fractional step must not unmarshal")
	}
}

type recordingEncodeCache struct {
	entries map[*Path]EncodedPath
	sets    int
}

func (c *recordingEncodeCache) Get(p *Path) (EncodedPath, bool) {
	encoded, ok := c.entries[p]
	return encoded, ok
}

func (c *recordingEncodeCache) Set(p *Path, encoded EncodedPath) {
	c.sets++
	c.entries[p] = encoded
}
