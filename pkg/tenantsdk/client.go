package tenantsdk

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// Client talks to the Causeway tenancy service. It exposes the
// unauthenticated operations and creates authenticated Sessions.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a tenancy service client.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Login authenticates with email and password and returns an
// authenticated Session holding the bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	var out LoginResponse
	err := c.doJSON(ctx, http.MethodPost, "/v1/session",
		LoginRequest{Email: email, Password: password}, &out, http.StatusOK)
	if err != nil {
		return nil, err
	}

	return &Session{
		client:      c,
		accessToken: out.AccessToken,
		identity:    out.Identity,
	}, nil
}

// NewSessionFromToken creates an authenticated session from an
// existing bearer token, e.g. one stored by a previous login.
func (c *Client) NewSessionFromToken(accessToken string) *Session {
	return &Session{client: c, accessToken: accessToken}
}

// Bootstrap provisions the first super-admin principal. It only
// succeeds while the principal table is empty and the token matches
// the service's configured bootstrap token.
func (c *Client) Bootstrap(ctx context.Context, req BootstrapRequest) (*BootstrapResponse, error) {
	var out BootstrapResponse
	err := c.doJSON(ctx, http.MethodPost, "/v1/bootstrap", req, &out, http.StatusCreated)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ValidateInvite checks an invite token without consuming it. It is
// unauthenticated so registration pages can render the invite details.
func (c *Client) ValidateInvite(ctx context.Context, token string) (*InviteValidation, error) {
	var out InviteValidation
	path := "/v1/invites/validate?token=" + queryEscape(token)
	err := c.doJSON(ctx, http.MethodGet, path, nil, &out, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// RegisterFromInvite provisions an account from an invite token and
// accepts the invite in the same call.
func (c *Client) RegisterFromInvite(ctx context.Context, req InviteRegisterRequest) (*InviteRegisterResponse, error) {
	var out InviteRegisterResponse
	err := c.doJSON(ctx, http.MethodPost, "/v1/invites/register", req, &out, http.StatusCreated)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Healthy reports whether the service's readiness probe passes.
func (c *Client) Healthy(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodGet, "/readyz", nil, nil, http.StatusOK)
}
