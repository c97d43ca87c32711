//go:build !js_eval

package addr

import "testing"

func TestJSEvaluatorUnavailableWithoutTag(t *testing.T) {
	if jsEvaluatorAvailable() {
		t.Fatal("js evaluator must report unavailable without the js_eval tag")
	}
	if evaluator := NewJSEvaluator(); evaluator != nil {
		t.Fatalf("expected nil evaluator, got %T", evaluator)
	}
}
