// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/models"
)

func newTestUserRepo(t *testing.T, dialect Dialect) (*userRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	l := logger.Nop()
	repo := &userRepository{
		db:     NewDB(db, dialect, l),
		logger: l,
	}
	return repo, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func ptr[T any](v T) *T { return &v }

func testUser() models.User {
	gender := models.GenderFemale
	return models.User{
		UserID:       "0190b8a2-7c1e-7000-8000-000000000001",
		Account:      "alice",
		Name:         "Alice",
		PasswordHash: "$argon2id$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA",
		Phone:        ptr("13800138000"),
		Age:          ptr(int64(30)),
		Gender:       &gender,
		CreatedAt:    time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

// ── CreateUser ────────────────────────────────────────────────────────────────

func TestCreateUser_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t, PostgresDialect)
	user := testUser()

	mock.ExpectExec(regexp.QuoteMeta(
		"INSERT INTO users (user_id,account,name,password_hash,phone,age,gender,created_at) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)")).
		WithArgs(user.UserID, user.Account, user.Name, user.PasswordHash, "13800138000", int64(30), "female", user.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	created, err := repo.CreateUser(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, user, created)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_SQLitePlaceholders(t *testing.T) {
	repo, mock := newTestUserRepo(t, SQLiteDialect)
	user := testUser()
	user.Phone, user.Age, user.Gender = nil, nil, nil

	mock.ExpectExec(regexp.QuoteMeta("VALUES (?,?,?,?,?,?,?,?)")).
		WithArgs(user.UserID, user.Account, user.Name, user.PasswordHash, nil, nil, nil, user.CreatedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	_, err := repo.CreateUser(context.Background(), user)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	tests := []struct {
		name    string
		dialect Dialect
		err     error
	}{
		{"postgres", PostgresDialect, pgError(pgerrcode.UniqueViolation)},
		{"sqlite", SQLiteDialect, sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestUserRepo(t, tt.dialect)
			mock.ExpectExec("INSERT INTO users").WillReturnError(tt.err)

			_, err := repo.CreateUser(context.Background(), testUser())
			assert.ErrorIs(t, err, ErrAccountAlreadyExists)
		})
	}
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock := newTestUserRepo(t, PostgresDialect)
	mock.ExpectExec("INSERT INTO users").WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(context.Background(), testUser())
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NotErrorIs(t, err, ErrAccountAlreadyExists)
}

// ── FindCredentialByAccount ──────────────────────────────────────────────────

func TestFindCredentialByAccount_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t, PostgresDialect)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT user_id, name, password_hash FROM users WHERE account = $1")).
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "name", "password_hash"}).AddRow("1", "Alice", "hash"))

	cred, err := repo.FindCredentialByAccount(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, models.Credential{UserID: "1", Name: "Alice", PasswordHash: "hash"}, cred)
}

func TestFindCredentialByAccount_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t, PostgresDialect)
	mock.ExpectQuery("SELECT user_id, name, password_hash FROM users").WillReturnError(sql.ErrNoRows)

	_, err := repo.FindCredentialByAccount(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

func TestFindCredentialByAccount_DBError(t *testing.T) {
	repo, mock := newTestUserRepo(t, PostgresDialect)
	mock.ExpectQuery("SELECT user_id, name, password_hash FROM users").WillReturnError(errors.New("boom"))

	_, err := repo.FindCredentialByAccount(context.Background(), "alice")
	assert.ErrorIs(t, err, ErrScanningRow)
}

// ── FindUserByID ─────────────────────────────────────────────────────────────

func userRows(users ...models.User) *sqlmock.Rows {
	rows := sqlmock.NewRows(userColumns)
	for _, u := range users {
		var gender any
		if u.Gender != nil {
			gender = string(*u.Gender)
		}
		var phone, age any
		if u.Phone != nil {
			phone = *u.Phone
		}
		if u.Age != nil {
			age = *u.Age
		}
		rows.AddRow(u.UserID, u.Account, u.Name, u.PasswordHash, phone, age, gender, u.CreatedAt)
	}
	return rows
}

func TestFindUserByID_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t, PostgresDialect)
	user := testUser()

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE user_id = $1")).
		WithArgs(user.UserID).
		WillReturnRows(userRows(user))

	found, err := repo.FindUserByID(context.Background(), user.UserID)
	require.NoError(t, err)
	assert.Equal(t, user, found)
}

func TestFindUserByID_NullableColumns(t *testing.T) {
	repo, mock := newTestUserRepo(t, PostgresDialect)
	user := testUser()
	user.Phone, user.Age, user.Gender = nil, nil, nil

	mock.ExpectQuery("FROM users").WillReturnRows(userRows(user))

	found, err := repo.FindUserByID(context.Background(), user.UserID)
	require.NoError(t, err)
	assert.Nil(t, found.Phone)
	assert.Nil(t, found.Age)
	assert.Nil(t, found.Gender)
}

func TestFindUserByID_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t, PostgresDialect)
	mock.ExpectQuery("FROM users").WillReturnRows(sqlmock.NewRows(userColumns))

	_, err := repo.FindUserByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

// ── ListUsers / CountUsers ───────────────────────────────────────────────────

func TestListUsers_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t, PostgresDialect)
	a := testUser()
	b := testUser()
	b.UserID, b.Account = "0190b8a2-7c1e-7000-8000-000000000002", "bob"

	mock.ExpectQuery(regexp.QuoteMeta("FROM users ORDER BY created_at, user_id LIMIT 10 OFFSET 20")).
		WillReturnRows(userRows(a, b))

	users, err := repo.ListUsers(context.Background(), 10, 20)
	require.NoError(t, err)
	assert.Equal(t, []models.User{a, b}, users)
}

func TestListUsers_Empty(t *testing.T) {
	repo, mock := newTestUserRepo(t, PostgresDialect)
	mock.ExpectQuery("FROM users").WillReturnRows(sqlmock.NewRows(userColumns))

	users, err := repo.ListUsers(context.Background(), 10, 0)
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestListUsers_QueryError(t *testing.T) {
	repo, mock := newTestUserRepo(t, PostgresDialect)
	mock.ExpectQuery("FROM users").WillReturnError(errors.New("boom"))

	_, err := repo.ListUsers(context.Background(), 10, 0)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestListUsers_ScanError(t *testing.T) {
	repo, mock := newTestUserRepo(t, PostgresDialect)
	mock.ExpectQuery("FROM users").
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow("1")) // wrong shape

	_, err := repo.ListUsers(context.Background(), 10, 0)
	assert.ErrorIs(t, err, ErrScanningRows)
}

func TestCountUsers(t *testing.T) {
	repo, mock := newTestUserRepo(t, PostgresDialect)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM users")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(3)))

	n, err := repo.CountUsers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(3), n)
}

func TestCountUsers_Error(t *testing.T) {
	repo, mock := newTestUserRepo(t, PostgresDialect)
	mock.ExpectQuery("SELECT COUNT").WillReturnError(errors.New("boom"))

	_, err := repo.CountUsers(context.Background())
	assert.ErrorIs(t, err, ErrScanningRow)
}
