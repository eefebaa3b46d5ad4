// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "strings"

// RuleRequired is the rule name reported for missing required fields.
const RuleRequired = "required"

// Violation is a single failed rule on a field.
type Violation struct {
	// Field is the dotted path of the field, e.g. "profile.phone".
	Field string
	// Rule is the name of the failed rule.
	Rule string
	// Message is the client-facing description.
	Message string
}

// Violations is an ordered list of failed rules. A nil or empty list
// means the value is valid.
type Violations []Violation

// Error implements error so that a non-empty Violations can travel through
// error returns.
func (v Violations) Error() string {
	parts := make([]string, 0, len(v))
	for _, violation := range v {
		parts = append(parts, violation.Field+": "+violation.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Err returns v as an error, or nil when v is empty.
func (v Violations) Err() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

// WithPrefix returns a copy of v with every field path prefixed by
// "prefix.".
func (v Violations) WithPrefix(prefix string) Violations {
	if len(v) == 0 {
		return nil
	}
	out := make(Violations, len(v))
	for i, violation := range v {
		violation.Field = prefix + "." + violation.Field
		out[i] = violation
	}
	return out
}
