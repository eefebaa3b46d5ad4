// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"cmp"
	"fmt"
	"regexp"
	"slices"
	"unicode/utf8"
)

// LengthRule bounds the length of a string in runes, inclusive.
type LengthRule struct {
	Min, Max int
	Message  string
}

// Length returns a [LengthRule] with a default message.
func Length(minLen, maxLen int) LengthRule {
	return LengthRule{
		Min:     minLen,
		Max:     maxLen,
		Message: fmt.Sprintf("must be between %d and %d characters long", minLen, maxLen),
	}
}

// WithMessage overrides the violation message.
func (r LengthRule) WithMessage(message string) LengthRule {
	r.Message = message
	return r
}

func (r LengthRule) Name() string { return "length" }

func (r LengthRule) Check(value string) (string, bool) {
	n := utf8.RuneCountInString(value)
	if n < r.Min || n > r.Max {
		return r.Message, false
	}
	return "", true
}

// RangeRule bounds an ordered value, inclusive.
type RangeRule[N cmp.Ordered] struct {
	Min, Max N
	Message  string
}

// Range returns a [RangeRule] with a default message.
func Range[N cmp.Ordered](minValue, maxValue N) RangeRule[N] {
	return RangeRule[N]{
		Min:     minValue,
		Max:     maxValue,
		Message: fmt.Sprintf("must be between %v and %v", minValue, maxValue),
	}
}

// WithMessage overrides the violation message.
func (r RangeRule[N]) WithMessage(message string) RangeRule[N] {
	r.Message = message
	return r
}

func (r RangeRule[N]) Name() string { return "range" }

func (r RangeRule[N]) Check(value N) (string, bool) {
	if value < r.Min || value > r.Max {
		return r.Message, false
	}
	return "", true
}

// PredicateRule is a named custom check.
type PredicateRule[T any] struct {
	name    string
	fn      func(T) bool
	message string
}

// Predicate wraps fn as a rule named name.
func Predicate[T any](name string, fn func(T) bool, message string) PredicateRule[T] {
	return PredicateRule[T]{name: name, fn: fn, message: message}
}

func (r PredicateRule[T]) Name() string { return r.name }

func (r PredicateRule[T]) Check(value T) (string, bool) {
	if !r.fn(value) {
		return r.message, false
	}
	return "", true
}

// PatternRule matches a string against a regular expression.
type PatternRule = PredicateRule[string]

// Pattern returns a rule requiring value to match re.
func Pattern(name string, re *regexp.Regexp, message string) PatternRule {
	return Predicate(name, re.MatchString, message)
}

// OneOf returns a rule requiring value to be one of allowed.
func OneOf[T comparable](allowed ...T) PredicateRule[T] {
	return Predicate("one_of", func(value T) bool {
		return slices.Contains(allowed, value)
	}, fmt.Sprintf("must be one of %v", allowed))
}
