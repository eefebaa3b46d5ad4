// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-auth-gate/internal/validators"
	"github.com/MKhiriev/go-auth-gate/models"
)

func ptr[T any](v T) *T { return &v }

func fields(v validators.Violations) []string {
	out := make([]string, 0, len(v))
	for _, violation := range v {
		out = append(out, violation.Field)
	}
	return out
}

func TestLoginParams_Validate(t *testing.T) {
	tests := []struct {
		name       string
		params     LoginParams
		wantFields []string
	}{
		{"valid", LoginParams{Account: ptr("alice"), Password: ptr("secret1")}, []string{}},
		{"both missing", LoginParams{}, []string{"account", "password"}},
		{"empty account", LoginParams{Account: ptr(""), Password: ptr("secret1")}, []string{"account"}},
		{"short password", LoginParams{Account: ptr("alice"), Password: ptr("12345")}, []string{"password"}},
		{"long account", LoginParams{Account: ptr("abcdefghijklmnopq"), Password: ptr("secret1")}, []string{"account"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantFields, fields(tt.params.Validate()))
		})
	}
}

func TestLoginParams_Messages(t *testing.T) {
	violations := LoginParams{Account: ptr(""), Password: ptr("123")}.Validate()

	require.Len(t, violations, 2)
	assert.Equal(t, "Account must be between 1 and 16 characters long", violations[0].Message)
	assert.Equal(t, "Password must be between 6 and 16 characters long", violations[1].Message)
}

func TestCreateUserParams_NestedProfile(t *testing.T) {
	params := CreateUserParams{
		Account:  ptr("bob"),
		Password: ptr("secret1"),
		Profile: &ProfileParams{
			Phone:  ptr("12345"),
			Age:    ptr(int64(200)),
			Gender: ptr("other"),
		},
	}

	assert.Equal(t, []string{"profile.phone", "profile.age", "profile.gender"}, fields(params.Validate()))
}

func TestCreateUserParams_ToRequest(t *testing.T) {
	params := CreateUserParams{
		Account:  ptr("bob"),
		Password: ptr("secret1"),
		Profile: &ProfileParams{
			Phone:  ptr("13800138000"),
			Age:    ptr(int64(30)),
			Gender: ptr("male"),
		},
	}
	require.Empty(t, params.Validate())

	req := params.ToRequest()

	assert.Equal(t, "bob", req.Account)
	assert.Empty(t, req.Name)
	assert.Equal(t, "secret1", req.Password)
	assert.Equal(t, "13800138000", *req.Phone)
	assert.Equal(t, int64(30), *req.Age)
	assert.Equal(t, models.GenderMale, *req.Gender)
}

func TestUserIDParams_BindParams(t *testing.T) {
	var p UserIDParams

	err := p.BindParams(validators.MapParams(map[string]string{}))
	assert.ErrorIs(t, err, validators.ErrMalformedParam)

	require.NoError(t, p.BindParams(validators.MapParams(map[string]string{"id": "x"})))
	assert.Equal(t, "x", p.ID)
}
