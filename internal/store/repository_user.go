// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/models"
)

const usersTable = "users"

var userColumns = []string{
	"user_id",
	"account",
	"name",
	"password_hash",
	"phone",
	"age",
	"gender",
	"created_at",
}

// userRepository is the SQL implementation of [UserRepository]. Queries are
// built with squirrel so the same code serves every [Dialect].
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by db.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Str("dialect", db.dialect.Name).Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser implements [UserRepository].
//
// Error handling:
//   - unique violation on account or user_id → [ErrAccountAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	var gender *string
	if user.Gender != nil {
		g := string(*user.Gender)
		gender = &g
	}

	query, args, err := r.db.Builder().
		Insert(usersTable).
		Columns(userColumns...).
		Values(user.UserID, user.Account, user.Name, user.PasswordHash, user.Phone, user.Age, gender, user.CreatedAt).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		class := r.db.Classify(err)
		if class == UniqueViolation {
			log.Debug().Str("func", "*userRepository.CreateUser").Msg("account already exists")
			return models.User{}, ErrAccountAlreadyExists
		}

		log.Err(err).Str("func", "*userRepository.CreateUser").Stringer("class", class).Msg("error inserting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

// FindCredentialByAccount implements [UserRepository].
func (r *userRepository) FindCredentialByAccount(ctx context.Context, account string) (models.Credential, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Select("user_id", "name", "password_hash").
		From(usersTable).
		Where(sq.Eq{"account": account}).
		ToSql()
	if err != nil {
		return models.Credential{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var credential models.Credential
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&credential.UserID, &credential.Name, &credential.PasswordHash)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Credential{}, ErrNoUserWasFound
	case err != nil:
		log.Err(err).Str("func", "*userRepository.FindCredentialByAccount").Msg("error scanning credential")
		return models.Credential{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return credential, nil
}

// FindUserByID implements [UserRepository].
func (r *userRepository) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrNoUserWasFound
	case err != nil:
		log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error scanning user")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

// ListUsers implements [UserRepository].
func (r *userRepository) ListUsers(ctx context.Context, limit, offset uint64) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Select(userColumns...).
		From(usersTable).
		OrderBy("created_at", "user_id").
		Limit(limit).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error querying users")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error scanning user")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		users = append(users, user)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

// CountUsers implements [UserRepository].
func (r *userRepository) CountUsers(ctx context.Context) (uint64, error) {
	query, args, err := r.db.Builder().
		Select("COUNT(*)").
		From(usersTable).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count uint64
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.CountUsers").Msg("error counting users")
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return count, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var (
		user   models.User
		phone  sql.NullString
		age    sql.NullInt64
		gender sql.NullString
	)

	err := row.Scan(&user.UserID, &user.Account, &user.Name, &user.PasswordHash, &phone, &age, &gender, &user.CreatedAt)
	if err != nil {
		return models.User{}, err
	}

	if phone.Valid {
		user.Phone = &phone.String
	}
	if age.Valid {
		user.Age = &age.Int64
	}
	if gender.Valid {
		g := models.Gender(gender.String)
		user.Gender = &g
	}

	return user, nil
}
