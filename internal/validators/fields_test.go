// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

type testProfile struct {
	Phone *string
	Age   *int64
}

func (p testProfile) Validate() Violations {
	return Check(
		Value("phone", p.Phone, MobilePhone()),
		Value("age", p.Age, Range[int64](0, 150)),
	)
}

type testUser struct {
	Account *string
	Name    *string
	Profile *testProfile
}

func (u testUser) Validate() Violations {
	return Check(
		Value("account", u.Account, Length(1, 16)).Required(),
		Value("name", u.Name, Length(1, 32)),
		Nested("profile", u.Profile),
	)
}

func TestCheck_Valid(t *testing.T) {
	u := testUser{Account: ptr("alice")}
	assert.Empty(t, u.Validate())
	assert.NoError(t, u.Validate().Err())
}

func TestCheck_AggregatesAllViolations(t *testing.T) {
	u := testUser{
		Name: ptr("this display name is definitely far too long"),
	}

	violations := u.Validate()
	require.Len(t, violations, 2)
	assert.Equal(t, Violation{Field: "account", Rule: RuleRequired, Message: "is required"}, violations[0])
	assert.Equal(t, "name", violations[1].Field)
	assert.Equal(t, "length", violations[1].Rule)
}

func TestCheck_OptionalAbsentSkipsRules(t *testing.T) {
	// an absent name would fail Length(1, 32) if it were evaluated
	u := testUser{Account: ptr("alice"), Name: nil}
	assert.Empty(t, u.Validate())
}

func TestCheck_PresentEmptyValueRunsRules(t *testing.T) {
	u := testUser{Account: ptr("")}

	violations := u.Validate()
	require.Len(t, violations, 1)
	assert.Equal(t, "length", violations[0].Rule)
}

func TestCheck_MultipleRulesOnOneField(t *testing.T) {
	violations := Check(Value("code", ptr("x"), Length(2, 4), OneOf("ab", "abc")))
	require.Len(t, violations, 2)
	assert.Equal(t, "length", violations[0].Rule)
	assert.Equal(t, "one_of", violations[1].Rule)
}

func TestNested_PrefixesFieldPaths(t *testing.T) {
	u := testUser{
		Account: ptr("alice"),
		Profile: &testProfile{Phone: ptr("123"), Age: ptr(int64(200))},
	}

	violations := u.Validate()
	require.Len(t, violations, 2)
	assert.Equal(t, "profile.phone", violations[0].Field)
	assert.Equal(t, "mobile_phone", violations[0].Rule)
	assert.Equal(t, "profile.age", violations[1].Field)
}

func TestNested_Required(t *testing.T) {
	violations := Check(Nested[testProfile]("profile", nil).Required())
	require.Len(t, violations, 1)
	assert.Equal(t, "profile", violations[0].Field)
	assert.Equal(t, RuleRequired, violations[0].Rule)

	assert.Empty(t, Check(Nested[testProfile]("profile", nil)))
}

func TestViolations_Error(t *testing.T) {
	v := Violations{
		{Field: "account", Rule: RuleRequired, Message: "is required"},
		{Field: "profile.age", Rule: "range", Message: "must be between 0 and 150"},
	}

	assert.Equal(t, "validation failed: account: is required; profile.age: must be between 0 and 150", v.Error())

	var target Violations
	require.True(t, errors.As(v.Err(), &target))
	assert.Equal(t, v, target)
}

func TestViolations_WithPrefix(t *testing.T) {
	assert.Nil(t, Violations(nil).WithPrefix("x"))

	v := Violations{{Field: "a"}}
	prefixed := v.WithPrefix("outer")
	assert.Equal(t, "outer.a", prefixed[0].Field)
	assert.Equal(t, "a", v[0].Field, "original must not be mutated")
}
