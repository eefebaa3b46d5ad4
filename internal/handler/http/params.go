// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"

	"github.com/MKhiriev/go-auth-gate/internal/validators"
	"github.com/MKhiriev/go-auth-gate/models"
)

const (
	defaultPage     uint64 = 1
	defaultPageSize uint64 = 10
	maxPageSize     uint64 = 100
	maxPage         uint64 = 1_000_000
)

// LoginParams is the body of POST /api/auth/login.
type LoginParams struct {
	Account  *string `json:"account"`
	Password *string `json:"password"`
}

func (p LoginParams) Validate() validators.Violations {
	return validators.Check(
		validators.Value("account", p.Account,
			validators.Length(1, 16).WithMessage("Account must be between 1 and 16 characters long")).Required(),
		validators.Value("password", p.Password,
			validators.Length(6, 16).WithMessage("Password must be between 6 and 16 characters long")).Required(),
	)
}

// CreateUserParams is the body of POST /api/users.
type CreateUserParams struct {
	Account  *string        `json:"account"`
	Name     *string        `json:"name"`
	Password *string        `json:"password"`
	Profile  *ProfileParams `json:"profile"`
}

func (p CreateUserParams) Validate() validators.Violations {
	return validators.Check(
		validators.Value("account", p.Account,
			validators.Length(1, 16).WithMessage("Account must be between 1 and 16 characters long")).Required(),
		validators.Value("name", p.Name, validators.Length(1, 32)),
		validators.Value("password", p.Password,
			validators.Length(6, 16).WithMessage("Password must be between 6 and 16 characters long")).Required(),
		validators.Nested("profile", p.Profile),
	)
}

// ToRequest converts validated params into the service input.
func (p CreateUserParams) ToRequest() models.CreateUserRequest {
	req := models.CreateUserRequest{
		Account:  deref(p.Account),
		Name:     deref(p.Name),
		Password: deref(p.Password),
	}
	if p.Profile != nil {
		req.Phone = p.Profile.Phone
		req.Age = p.Profile.Age
		if p.Profile.Gender != nil {
			g := models.Gender(*p.Profile.Gender)
			req.Gender = &g
		}
	}
	return req
}

// ProfileParams is the optional profile section of CreateUserParams.
type ProfileParams struct {
	Phone  *string `json:"phone"`
	Age    *int64  `json:"age"`
	Gender *string `json:"gender"`
}

func (p ProfileParams) Validate() validators.Violations {
	return validators.Check(
		validators.Value("phone", p.Phone, validators.MobilePhone()),
		validators.Value("age", p.Age, validators.Range[int64](0, 150)),
		validators.Value("gender", p.Gender,
			validators.OneOf(string(models.GenderMale), string(models.GenderFemale))),
	)
}

// ListUsersParams is the query of GET /api/users.
type ListUsersParams struct {
	Page     uint64
	PageSize uint64
}

func (p *ListUsersParams) BindParams(params validators.Params) (err error) {
	if p.Page, err = params.UintOr("page", defaultPage); err != nil {
		return err
	}
	p.PageSize, err = params.UintOr("page_size", defaultPageSize)
	return err
}

func (p ListUsersParams) Validate() validators.Violations {
	return validators.Check(
		validators.Value("page", &p.Page, validators.Range(uint64(1), maxPage)),
		validators.Value("page_size", &p.PageSize, validators.Range(uint64(1), maxPageSize)),
	)
}

// UserIDParams is the path of GET /api/users/{id}.
type UserIDParams struct {
	ID string
}

func (p *UserIDParams) BindParams(params validators.Params) error {
	id := params.String("id")
	if id == nil {
		return fmt.Errorf("%w: id is missing", validators.ErrMalformedParam)
	}
	p.ID = *id
	return nil
}

func (p UserIDParams) Validate() validators.Violations {
	return validators.Check(
		validators.Value("id", &p.ID, validators.UUID()),
	)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
