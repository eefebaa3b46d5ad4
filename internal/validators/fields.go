// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

// FieldCheck is a field spec ready for evaluation by [Check].
type FieldCheck interface {
	check() Violations
}

// Check evaluates every field spec and concatenates their violations in
// order. It never stops at the first failure.
func Check(fields ...FieldCheck) Violations {
	var violations Violations
	for _, f := range fields {
		violations = append(violations, f.check()...)
	}
	return violations
}

// ValueSpec binds a field name to a possibly-absent value and its rules.
type ValueSpec[T any] struct {
	name     string
	value    *T
	rules    []Rule[T]
	required bool
}

// Value declares a field. A nil value is absent: its rules are skipped
// unless the spec is marked [ValueSpec.Required].
func Value[T any](name string, value *T, rules ...Rule[T]) *ValueSpec[T] {
	return &ValueSpec[T]{name: name, value: value, rules: rules}
}

// Required makes an absent value a violation.
func (s *ValueSpec[T]) Required() *ValueSpec[T] {
	s.required = true
	return s
}

func (s *ValueSpec[T]) check() Violations {
	if s.value == nil {
		if s.required {
			return Violations{{Field: s.name, Rule: RuleRequired, Message: "is required"}}
		}
		return nil
	}

	var violations Violations
	for _, rule := range s.rules {
		if message, ok := rule.Check(*s.value); !ok {
			violations = append(violations, Violation{Field: s.name, Rule: rule.Name(), Message: message})
		}
	}
	return violations
}

// NestedSpec validates a field whose type has its own rule set.
type NestedSpec[T Validatable] struct {
	name     string
	value    *T
	required bool
}

// Nested declares a nested field. Violations of the nested value are
// reported with "name." prefixed to their field paths.
func Nested[T Validatable](name string, value *T) *NestedSpec[T] {
	return &NestedSpec[T]{name: name, value: value}
}

// Required makes an absent nested value a violation.
func (s *NestedSpec[T]) Required() *NestedSpec[T] {
	s.required = true
	return s
}

func (s *NestedSpec[T]) check() Violations {
	if s.value == nil {
		if s.required {
			return Violations{{Field: s.name, Rule: RuleRequired, Message: "is required"}}
		}
		return nil
	}
	return (*s.value).Validate().WithPrefix(s.name)
}
