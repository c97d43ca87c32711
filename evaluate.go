package addr

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrNoEvaluator indicates Select was called without an evaluator.
	ErrNoEvaluator = errors.New("addr: evaluator not configured")
	// ErrEmptyExpression indicates an empty predicate expression.
	ErrEmptyExpression = errors.New("addr: expression must not be empty")
)

// MatchContext carries the node under test when a predicate runs. Expressions
// see the bindings built by environment: path (canonical encoded string),
// steps (plain strings and ints), depth, value, and root.
type MatchContext struct {
	Path  Path
	Value any
	Root  any
}

func (ctx MatchContext) environment() map[string]any {
	return map[string]any{
		"path":  string(EncodePath(ctx.Path)),
		"steps": ctx.Path.values(),
		"depth": len(ctx.Path),
		"value": ctx.Value,
		"root":  ctx.Root,
	}
}

// Evaluator executes predicate expressions against a MatchContext.
type Evaluator interface {
	Evaluate(ctx MatchContext, expression string) (any, error)
	Compile(expression string) (CompiledPredicate, error)
}

// CompiledPredicate is a predicate compiled once and evaluated per node.
type CompiledPredicate interface {
	Evaluate(ctx MatchContext) (any, error)
}

type selectConfig struct {
	logger EvaluatorLogger
}

// SelectOption configures a Select call.
type SelectOption func(*selectConfig)

// SelectWithLogger attaches a logger that observes every predicate
// evaluation.
func SelectWithLogger(logger EvaluatorLogger) SelectOption {
	return func(cfg *selectConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

func applySelectOptions(opts []SelectOption) selectConfig {
	cfg := selectConfig{logger: noopEvaluatorLogger{}}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Select walks root depth-first and returns the nodes whose predicate
// evaluates to boolean true. The expression is compiled once; non-boolean
// results count as no match. The walk stops on the first evaluation error.
func Select(root any, evaluator Evaluator, expression string, opts ...SelectOption) ([]Match, error) {
	if evaluator == nil {
		return nil, ErrNoEvaluator
	}
	if expression == "" {
		return nil, ErrEmptyExpression
	}
	cfg := applySelectOptions(opts)
	predicate, err := evaluator.Compile(expression)
	if err != nil {
		return nil, err
	}
	engine := evaluatorEngineName(evaluator)

	var matches []Match
	var failure error
	Walk(root, func(path Path, value any) bool {
		ctx := MatchContext{Path: path, Value: value, Root: root}
		start := time.Now()
		result, evalErr := predicate.Evaluate(ctx)
		evalErr = wrapEvaluationError(engine, expression, path.String(), evalErr)
		cfg.logger.LogEvaluation(EvaluatorLogEvent{
			Engine:   engine,
			Expr:     expression,
			Path:     path.String(),
			Duration: time.Since(start),
			Err:      evalErr,
		})
		if evalErr != nil {
			failure = evalErr
			return false
		}
		if matched, ok := result.(bool); ok && matched {
			matches = append(matches, Match{Path: path.Clone(), Value: value})
		}
		return true
	})
	if failure != nil {
		return nil, failure
	}
	return matches, nil
}

func evaluatorEngineName(e Evaluator) string {
	if e == nil {
		return "unknown"
	}
	switch fmt.Sprintf("%T", e) {
	case "*addr.exprEvaluator":
		return "expr"
	case "*addr.celEvaluator":
		return "cel"
	case "*addr.jsEvaluator":
		return "js"
	default:
		return "custom"
	}
}
