// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides declarative, reflection-free validation of
// request parameters.
//
// Core concepts:
//   - Rule: a named check over a single value (Length, Range, Pattern,
//     Predicate, OneOf).
//   - Value / Nested: field specs binding a name, a possibly-absent value
//     and its rules. Absent values skip their rules unless marked Required.
//   - Check: evaluates every field spec eagerly and returns all
//     [Violations] in declaration order.
//   - Params: typed access to path segments and query strings used by
//     request types that implement [ParamsBinder].
//
// Usage pattern:
//
//	func (p LoginParams) Validate() validators.Violations {
//	    return validators.Check(
//	        validators.Value("account", p.Account, validators.Length(1, 16)).Required(),
//	        validators.Value("password", p.Password, validators.Length(6, 16)).Required(),
//	    )
//	}
package validators

// Validatable is implemented by types that carry their own rule set.
// An empty result means the value is valid.
type Validatable interface {
	Validate() Violations
}

// ParamsBinder is implemented by types decoded from path segments or query
// strings. BindParams returns an error wrapping [ErrMalformedParam] when a
// present value cannot be parsed into its Go type.
type ParamsBinder interface {
	BindParams(Params) error
}

// Rule checks a single value of type T.
type Rule[T any] interface {
	// Name identifies the rule in violations (e.g. "length", "range").
	Name() string
	// Check returns ok == false and a human-readable message on failure.
	Check(value T) (message string, ok bool)
}
