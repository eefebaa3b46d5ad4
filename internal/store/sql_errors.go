// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

// ErrorClassification is the result of [ErrorClassifier.Classify]. It tells
// repositories how to translate a failed database operation.
type ErrorClassification int

const (
	// Unclassified is the default for unrecognised errors.
	Unclassified ErrorClassification = iota

	// UniqueViolation means a unique or primary-key constraint rejected the
	// write.
	UniqueViolation

	// Retryable means the operation may succeed if attempted again
	// (connection loss, deadlock, busy database).
	Retryable
)

// String returns a log-friendly name.
func (c ErrorClassification) String() string {
	switch c {
	case UniqueViolation:
		return "unique_violation"
	case Retryable:
		return "retryable"
	default:
		return "unclassified"
	}
}

// ErrorClassifier maps driver-specific errors onto [ErrorClassification].
type ErrorClassifier interface {
	Classify(err error) ErrorClassification
}
