// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/utils"
	"github.com/MKhiriev/go-auth-gate/models"
)

const (
	defaultBaseURL = "http://localhost:8080"
	defaultTimeout = 15 * time.Second
)

// HTTPClientConfig configures [NewHTTPServerAdapter].
type HTTPClientConfig struct {
	// BaseURL of the server. Default: http://localhost:8080.
	BaseURL string
	// Timeout of a single request. Default: 15s.
	Timeout time.Duration
}

type httpServerAdapter struct {
	client *resty.Client
	logger *logger.Logger

	mu    sync.RWMutex
	token string
}

// envelope is the success response wrapper.
type envelope[T any] struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

type profileBody struct {
	Phone  *string `json:"phone,omitempty"`
	Age    *int64  `json:"age,omitempty"`
	Gender *string `json:"gender,omitempty"`
}

type createUserBody struct {
	Account  string       `json:"account"`
	Name     string       `json:"name,omitempty"`
	Password string       `json:"password"`
	Profile  *profileBody `json:"profile,omitempty"`
}

func NewHTTPServerAdapter(cfg HTTPClientConfig, logger *logger.Logger) ServerAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json")

	return &httpServerAdapter{client: cli, logger: logger}
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Login(ctx context.Context, account, password string) (models.Principal, error) {
	var out envelope[string]
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(map[string]string{"account": account, "password": password}).
		SetResult(&out).
		Post("/api/auth/login")
	if err != nil {
		return models.Principal{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Principal{}, err
	}

	token := out.Data
	if token == "" {
		token = parseBearerToken(resp.Header().Get("Authorization"))
	}
	if token == "" {
		return models.Principal{}, ErrNoToken
	}

	principal, err := parsePrincipalFromJWT(token)
	if err != nil {
		return models.Principal{}, fmt.Errorf("login parse principal: %w", err)
	}

	h.SetToken(token)
	h.logger.Debug().Str("principal_id", principal.ID).Msg("logged in")
	return principal, nil
}

func (h *httpServerAdapter) Version(ctx context.Context) (models.VersionInfo, error) {
	return doJSON[models.VersionInfo](h.client.R().SetContext(ctx), http.MethodGet, "/api/version")
}

func (h *httpServerAdapter) Me(ctx context.Context) (models.User, error) {
	return doJSON[models.User](h.authedRequest(ctx), http.MethodGet, "/api/users/me")
}

func (h *httpServerAdapter) ListUsers(ctx context.Context, page, pageSize uint64) (models.Page[models.User], error) {
	req := h.authedRequest(ctx).
		SetQueryParam("page", strconv.FormatUint(page, 10)).
		SetQueryParam("page_size", strconv.FormatUint(pageSize, 10))
	return doJSON[models.Page[models.User]](req, http.MethodGet, "/api/users")
}

func (h *httpServerAdapter) GetUser(ctx context.Context, userID string) (models.User, error) {
	req := h.authedRequest(ctx).SetPathParam("id", userID)
	return doJSON[models.User](req, http.MethodGet, "/api/users/{id}")
}

func (h *httpServerAdapter) CreateUser(ctx context.Context, user models.CreateUserRequest) (models.User, error) {
	body := createUserBody{
		Account:  user.Account,
		Name:     user.Name,
		Password: user.Password,
	}
	if user.Phone != nil || user.Age != nil || user.Gender != nil {
		body.Profile = &profileBody{Phone: user.Phone, Age: user.Age}
		if user.Gender != nil {
			g := string(*user.Gender)
			body.Profile.Gender = &g
		}
	}

	return doJSON[models.User](h.authedRequest(ctx).SetBody(body), http.MethodPost, "/api/users")
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// doJSON executes req and unwraps the success envelope into T.
func doJSON[T any](req *resty.Request, method, url string) (T, error) {
	var out envelope[T]
	resp, err := req.SetResult(&out).Execute(method, url)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("%s %s request: %w", method, url, err)
	}
	if err = mapHTTPError(resp); err != nil {
		var zero T
		return zero, err
	}
	return out.Data, nil
}

func parseBearerToken(value string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(value), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// parsePrincipalFromJWT reads the subject without verifying the signature;
// only the server holds the key.
func parsePrincipalFromJWT(tokenString string) (models.Principal, error) {
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, &claims); err != nil {
		return models.Principal{}, err
	}
	return utils.DecodeSubject(claims.Subject)
}
