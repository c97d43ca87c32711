package addr

import (
	"errors"
	"testing"
)

func TestExprEvaluatorEvaluate(t *testing.T) {
	evaluator := NewExprEvaluator()
	ctx := MatchContext{
		Path:  Path{Key("volume")},
		Value: 150,
	}

	result, err := evaluator.Evaluate(ctx, "value > 100")
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if result != true {
		t.Fatalf("expected true, got %#v", result)
	}

	if _, err := evaluator.Evaluate(ctx, ""); err == nil {
		t.Fatal("empty expression must fail")
	}
}

func TestExprEvaluatorUsesProgramCache(t *testing.T) {
	cache := &countingProgramCache{entries: map[string]any{}}
	evaluator := NewExprEvaluator(ExprWithProgramCache(cache))

	ctx := MatchContext{Path: Path{Key("a")}, Value: 1}
	for i := 0; i < 3; i++ {
		if _, err := evaluator.Evaluate(ctx, "value == 1"); err != nil {
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

func TestExprEvaluatorCompileError(t *testing.T) {
	evaluator := NewExprEvaluator()
	_, err := evaluator.Compile("value >")
	if err == nil {
		t.Fatal("malformed expression must not compile")
	}
	var evalErr *EvaluationError
	if !errors.As(err, &evalErr) {
		t.Fatalf("expected *EvaluationError, got %T: %v", err, err)
	}
	if evalErr.Engine != "expr" {
		t.Fatalf("error attributed to engine %q", evalErr.Engine)
	}
}

func TestExprCompiledPredicateReusesProgram(t *testing.T) {
	evaluator := NewExprEvaluator()
	predicate, err := evaluator.Compile(`steps[0] == "a"`)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	matched, err := predicate.Evaluate(MatchContext{Path: Path{Key("a")}, Value: 1})
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if matched != true {
		t.Fatalf("expected true, got %#v", matched)
	}

	matched, err = predicate.Evaluate(MatchContext{Path: Path{Key("b")}, Value: 1})
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if matched != false {
		t.Fatalf("expected false, got %#v", matched)
	}
}

func TestNewProgramCacheStoresPrograms(t *testing.T) {
	cache := NewProgramCache()
	evaluator := NewExprEvaluator(ExprWithProgramCache(cache))

	if _, err := evaluator.Evaluate(MatchContext{Value: 1}, "value == 1"); err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if _, ok := cache.Get("value == 1"); !ok {
		t.Fatal("expected compiled program in cache")
	}
}

type countingProgramCache struct {
	entries map[string]any
	hits    int
	sets    int
}

func (c *countingProgramCache) Get(key string) (any, bool) {
	value, ok := c.entries[key]
	if ok {
		c.hits++
	}
	return value, ok
}

func (c *countingProgramCache) Set(key string, value any) {
	c.sets++
	c.entries[key] = value
}
