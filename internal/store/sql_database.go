// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/migrations"
)

// Dialect describes the SQL flavour behind a [DB].
type Dialect struct {
	// Name is the migrations dialect ("postgres" or "sqlite").
	Name string
	// Placeholder is the bind-variable format used by query builders.
	Placeholder sq.PlaceholderFormat
	// Classifier translates driver errors.
	Classifier ErrorClassifier
}

// DB is a *sql.DB bound to a dialect.
type DB struct {
	*sql.DB
	dialect Dialect
	logger  *logger.Logger
}

// NewDB wraps an open connection.
func NewDB(conn *sql.DB, dialect Dialect, log *logger.Logger) *DB {
	return &DB{DB: conn, dialect: dialect, logger: log}
}

// Builder returns a squirrel statement builder using the dialect's
// placeholder format.
func (db *DB) Builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(db.dialect.Placeholder)
}

// Classify translates err with the dialect's classifier.
func (db *DB) Classify(err error) ErrorClassification {
	if db.dialect.Classifier == nil {
		return Unclassified
	}
	return db.dialect.Classifier.Classify(err)
}

// Migrate applies the embedded schema migrations for the dialect.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB, db.dialect.Name)
}
