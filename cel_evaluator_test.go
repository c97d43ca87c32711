package addr

import (
	"reflect"
	"testing"
)

func TestCELEvaluatorEvaluate(t *testing.T) {
	evaluator := NewCELEvaluator()
	ctx := MatchContext{
		Path:  Path{Key("volume")},
		Value: 150,
	}

	result, err := evaluator.Evaluate(ctx, "value > 100 && depth == 1")
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if result != true {
		t.Fatalf("expected true, got %#v", result)
	}

	if _, err := evaluator.Evaluate(ctx, ""); err == nil {
		t.Fatal("empty expression must fail")
	}
	if _, err := evaluator.Evaluate(ctx, "value >"); err == nil {
		t.Fatal("malformed expression must fail")
	}
}

func TestCELEvaluatorUsesProgramCache(t *testing.T) {
	cache := &countingProgramCache{entries: map[string]any{}}
	evaluator := NewCELEvaluator(CELWithProgramCache(cache))

	ctx := MatchContext{Path: Path{Key("a")}, Value: 1}
	for i := 0; i < 3; i++ {
		if _, err := evaluator.Evaluate(ctx, "depth == 1"); err != nil {
			t.Fatalf("Evaluate failed: %v", err)
		}
	}
	if cache.sets != 1 {
		t.Fatalf("expected one compilation, cache filled %d times", cache.sets)
	}
	if cache.hits < 2 {
		t.Fatalf("expected cache hits on repeat evaluations, got %d", cache.hits)
	}
}

func TestSelectWithCELPredicate(t *testing.T) {
	root := map[string]any{
		"tracks": []any{"audio", "video"},
		"name":   "scene",
	}

	matches, err := Select(root, NewCELEvaluator(), `path.startsWith('["tracks"') && depth == 2`)
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}

	var values []any
	for _, m := range matches {
		values = append(values, m.Value)
	}
	want := []any{"audio", "video"}
	if !reflect.DeepEqual(values, want) {
		t.Fatalf("unexpected matches: want %v got %v", want, values)
	}
}
