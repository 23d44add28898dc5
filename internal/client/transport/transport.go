// Package transport is the request pipeline between the admin screens and the
// AccessFlow API. Every outgoing call gets the bearer token attached; every
// error response is inspected for the structured auth codes before the result
// reaches the calling screen.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/accessflow/accessflow/internal/client/credstore"
	"github.com/accessflow/accessflow/internal/client/guard"
	"github.com/accessflow/accessflow/internal/client/session"
	"github.com/accessflow/accessflow/internal/core/domain"
	"github.com/accessflow/accessflow/internal/core/ports"
)

// APIError is a structured error returned by the API.
type APIError struct {
	Status  int
	Code    string
	Message string
	Fields  map[string]string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (%s)", e.Message, e.Code)
}

type errorEnvelope struct {
	Error  string            `json:"error"`
	Code   string            `json:"code"`
	Fields map[string]string `json:"fields,omitempty"`
}

// Client issues typed API operations through the pipeline.
type Client struct {
	base    string
	http    *http.Client
	store   credstore.Store
	session *session.Manager
	nav     guard.Navigator
}

func NewClient(base string, store credstore.Store, sess *session.Manager, nav guard.Navigator) *Client {
	return &Client{
		base:    base,
		http:    &http.Client{Timeout: 30 * time.Second},
		store:   store,
		session: sess,
		nav:     nav,
	}
}

// do runs one request through the two pipeline stages: bearer attachment on
// the way out, auth-code inspection on the way back. The token is read from
// the credential store at send time, not captured at client construction.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var payload *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		payload = bytes.NewReader(raw)
	} else {
		payload = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, payload)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	if token, _ := c.store.Get(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusMultipleChoices {
		if out == nil || resp.StatusCode == http.StatusNoContent {
			return nil
		}
		return json.NewDecoder(resp.Body).Decode(out)
	}

	var env errorEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		env = errorEnvelope{Error: resp.Status}
	}

	apiErr := &APIError{
		Status:  resp.StatusCode,
		Code:    env.Code,
		Message: env.Error,
		Fields:  env.Fields,
	}

	switch apiErr.Code {
	case "UNAUTHENTICATED":
		// Stale or revoked credentials: drop the session and land on the
		// login screen with history replaced so back-navigation cannot
		// resurface the authenticated state.
		_ = c.session.Remove()
		c.nav.Replace(guard.RouteLogin)
	case "FORBIDDEN":
		// The session is valid but lacks privilege for this operation;
		// keep it and move away from the attempted context.
		c.nav.Replace(guard.RouteHome)
	}

	return apiErr
}

// --- Auth operations ---

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signUpPayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// Login authenticates and starts the session on success.
func (c *Client) Login(ctx context.Context, email, password string) (*domain.User, error) {
	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", loginPayload{Email: email, Password: password}, &resp); err != nil {
		return nil, err
	}
	if resp.User == nil {
		return nil, &APIError{Status: http.StatusBadGateway, Message: "login response missing user"}
	}
	if err := c.session.Start(session.Session{Token: resp.Token, User: *resp.User}); err != nil {
		return nil, err
	}
	return resp.User, nil
}

func (c *Client) SignUp(ctx context.Context, name, email, password string) (*domain.User, error) {
	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/auth/signup", signUpPayload{Name: name, Email: email, Password: password}, &resp); err != nil {
		return nil, err
	}
	return resp.User, nil
}

// Logout revokes the token server-side, then clears the session locally even
// when revocation fails.
func (c *Client) Logout(ctx context.Context) error {
	err := c.do(ctx, http.MethodPost, "/auth/logout", nil, nil)
	if rmErr := c.session.Remove(); err == nil {
		err = rmErr
	}
	return err
}

// --- User operations ---

// UserPayload carries the mutable user fields for create/update calls.
type UserPayload struct {
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Password   string  `json:"password,omitempty"`
	Active     bool    `json:"active"`
	ProfileIDs []int64 `json:"profile_ids"`
}

func (c *Client) GetAllUsers(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := c.do(ctx, http.MethodGet, "/api/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// GetUserByParams resolves a filter to a single user; the server contract
// returns at most one match.
func (c *Client) GetUserByParams(ctx context.Context, filter domain.UserFilter) (*domain.User, error) {
	q := url.Values{}
	if filter.ID != nil {
		q.Set("id", strconv.FormatInt(*filter.ID, 10))
	}
	if filter.Name != "" {
		q.Set("name", filter.Name)
	}
	if filter.Email != "" {
		q.Set("email", filter.Email)
	}

	var user domain.User
	if err := c.do(ctx, http.MethodGet, "/api/users/search?"+q.Encode(), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) CreateUser(ctx context.Context, payload UserPayload) (*domain.User, error) {
	var user domain.User
	if err := c.do(ctx, http.MethodPost, "/api/users", payload, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) UpdateUser(ctx context.Context, id int64, payload UserPayload) (*domain.User, error) {
	var user domain.User
	if err := c.do(ctx, http.MethodPut, "/api/users/"+strconv.FormatInt(id, 10), payload, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/api/users/"+strconv.FormatInt(id, 10), nil, nil)
}

// --- Profile operations ---

// ProfilePayload carries the mutable profile fields for create/update calls.
type ProfilePayload struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (c *Client) GetAllProfiles(ctx context.Context) ([]domain.Profile, error) {
	var profiles []domain.Profile
	if err := c.do(ctx, http.MethodGet, "/api/profiles", nil, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

func (c *Client) GetProfileByParams(ctx context.Context, filter domain.ProfileFilter) (*domain.Profile, error) {
	q := url.Values{}
	if filter.ID != nil {
		q.Set("id", strconv.FormatInt(*filter.ID, 10))
	}
	if filter.Name != "" {
		q.Set("name", filter.Name)
	}

	var profile domain.Profile
	if err := c.do(ctx, http.MethodGet, "/api/profiles/search?"+q.Encode(), nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *Client) CreateProfile(ctx context.Context, payload ProfilePayload) (*domain.Profile, error) {
	var profile domain.Profile
	if err := c.do(ctx, http.MethodPost, "/api/profiles", payload, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *Client) UpdateProfile(ctx context.Context, id int64, payload ProfilePayload) (*domain.Profile, error) {
	var profile domain.Profile
	if err := c.do(ctx, http.MethodPut, "/api/profiles/"+strconv.FormatInt(id, 10), payload, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *Client) DeleteProfile(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/api/profiles/"+strconv.FormatInt(id, 10), nil, nil)
}

// --- Metrics ---

func (c *Client) GetMetrics(ctx context.Context) (*ports.MetricsSnapshot, error) {
	var snap ports.MetricsSnapshot
	if err := c.do(ctx, http.MethodGet, "/api/metrics", nil, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}
