package formdef

import (
	"fmt"
	"maps"
	"slices"

	"github.com/spf13/cast"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

// RuleFactory builds a validator from the rule's value argument.
type RuleFactory func(arg any) (validator.Validator, error)

// Registry maps rule names to factories.
type Registry struct {
	rules map[string]RuleFactory
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{rules: make(map[string]RuleFactory)}
}

// DefaultRegistry returns a registry holding the built-in rules.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register("required", noArg(validator.Required))
	r.Register("requiredTrue", noArg(validator.RequiredTrue))
	r.Register("email", noArg(validator.Email))
	r.Register("minLength", intArg(validator.MinLength))
	r.Register("maxLength", intArg(validator.MaxLength))
	r.Register("min", floatArg(validator.Min[float64]))
	r.Register("max", floatArg(validator.Max[float64]))
	r.Register("pattern", func(arg any) (validator.Validator, error) {
		expr, err := cast.ToStringE(arg)
		if err != nil || expr == "" {
			return nil, fmt.Errorf("%w: pattern needs a regular expression", ErrInvalidRuleValue)
		}
		v, err := validator.CompilePattern(expr)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidRuleValue, err)
		}
		return v, nil
	})
	return r
}

// Register adds or replaces the factory for name.
func (r *Registry) Register(name string, factory RuleFactory) {
	if name == "" || factory == nil {
		return
	}
	r.rules[name] = factory
}

// Names returns the registered rule names in sorted order.
func (r *Registry) Names() []string {
	return slices.Sorted(maps.Keys(r.rules))
}

// Build resolves a single rule.
func (r *Registry) Build(rule Rule) (validator.Validator, error) {
	factory, ok := r.rules[rule.Rule]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRule, rule.Rule)
	}
	v, err := factory(rule.Value)
	if err != nil {
		return nil, fmt.Errorf("rule %q: %w", rule.Rule, err)
	}
	return v, nil
}

func noArg(fn func() validator.Validator) RuleFactory {
	return func(any) (validator.Validator, error) { return fn(), nil }
}

func intArg(fn func(int) validator.Validator) RuleFactory {
	return func(arg any) (validator.Validator, error) {
		if arg == nil {
			return nil, fmt.Errorf("%w: value is required", ErrInvalidRuleValue)
		}
		n, err := cast.ToIntE(arg)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: %v is not a non-negative integer", ErrInvalidRuleValue, arg)
		}
		return fn(n), nil
	}
}

func floatArg(fn func(float64) validator.Validator) RuleFactory {
	return func(arg any) (validator.Validator, error) {
		if arg == nil {
			return nil, fmt.Errorf("%w: value is required", ErrInvalidRuleValue)
		}
		n, err := cast.ToFloat64E(arg)
		if err != nil {
			return nil, fmt.Errorf("%w: %v is not a number", ErrInvalidRuleValue, arg)
		}
		return fn(n), nil
	}
}
