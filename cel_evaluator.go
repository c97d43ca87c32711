package addr

import (
	celgo "github.com/google/cel-go/cel"
)

// CELEvaluatorOption configures the CEL evaluator.
type CELEvaluatorOption func(*celEvaluator)

// CELWithProgramCache wires a ProgramCache into the CEL evaluator.
func CELWithProgramCache(cache ProgramCache) CELEvaluatorOption {
	return func(e *celEvaluator) {
		e.cache = cache
	}
}

type celProgram struct {
	env     *celgo.Env
	program celgo.Program
}

type celEvaluator struct {
	cache ProgramCache
}

// NewCELEvaluator constructs an Evaluator backed by cel-go.
func NewCELEvaluator(opts ...CELEvaluatorOption) Evaluator {
	e := &celEvaluator{}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	return e
}

func (e *celEvaluator) Evaluate(ctx MatchContext, expression string) (any, error) {
	if expression == "" {
		return nil, wrapEvaluatorError("cel", ErrEmptyExpression)
	}
	program, err := e.loadOrCompile(expression)
	if err != nil {
		return nil, err
	}
	out, _, err := program.program.Eval(ctx.environment())
	if err != nil {
		return nil, wrapEvaluationError("cel", expression, ctx.Path.String(), err)
	}
	return out.Value(), nil
}

func (e *celEvaluator) Compile(expression string) (CompiledPredicate, error) {
	if expression == "" {
		return nil, wrapEvaluatorError("cel", ErrEmptyExpression)
	}
	program, err := e.loadOrCompile(expression)
	if err != nil {
		return nil, err
	}
	return &celCompiledPredicate{
		evaluator:  e,
		program:    program,
		expression: expression,
	}, nil
}

func (e *celEvaluator) loadOrCompile(expression string) (*celProgram, error) {
	if e.cache != nil {
		if cached, ok := e.cache.Get(expression); ok {
			if program, ok := cached.(*celProgram); ok {
				return program, nil
			}
		}
	}

	env, err := buildCELEnv()
	if err != nil {
		return nil, wrapEvaluatorError("cel", err)
	}
	ast, issues := env.Parse(expression)
	if issues != nil && issues.Err() != nil {
		return nil, wrapEvaluationError("cel", expression, "", issues.Err())
	}
	checked, issues := env.Check(ast)
	if issues != nil && issues.Err() != nil {
		return nil, wrapEvaluationError("cel", expression, "", issues.Err())
	}
	prg, err := env.Program(checked)
	if err != nil {
		return nil, wrapEvaluationError("cel", expression, "", err)
	}

	bundle := &celProgram{
		env:     env,
		program: prg,
	}
	if e.cache != nil {
		e.cache.Set(expression, bundle)
	}
	return bundle, nil
}

// buildCELEnv declares the fixed predicate bindings. The binding set never
// varies per node, so compiled programs are reusable across the whole walk.
func buildCELEnv() (*celgo.Env, error) {
	return celgo.NewEnv(
		celgo.Variable("path", celgo.StringType),
		celgo.Variable("steps", celgo.ListType(celgo.DynType)),
		celgo.Variable("depth", celgo.IntType),
		celgo.Variable("value", celgo.DynType),
		celgo.Variable("root", celgo.DynType),
	)
}

type celCompiledPredicate struct {
	evaluator  *celEvaluator
	program    *celProgram
	expression string
}

func (p *celCompiledPredicate) Evaluate(ctx MatchContext) (any, error) {
	if p.evaluator == nil {
		return nil, wrapEvaluatorError("cel", ErrNoEvaluator)
	}
	program := p.program
	if program == nil {
		var err error
		program, err = p.evaluator.loadOrCompile(p.expression)
		if err != nil {
			return nil, err
		}
	}
	out, _, err := program.program.Eval(ctx.environment())
	if err != nil {
		return nil, wrapEvaluationError("cel", p.expression, ctx.Path.String(), err)
	}
	return out.Value(), nil
}
