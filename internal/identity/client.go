// Package identity signs users in against an OAuth 2.0 provider and
// resolves their profile.
package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"
)

var (
	ErrClientIDNotSet = errors.New("the OAuth client ID must be configured")
	ErrTokenURLNotSet = errors.New("the OAuth token URL must be configured")
)

// Config holds the OAuth 2.0 settings of the identity provider.
type Config struct {
	ClientID     string
	ClientSecret string
	AuthURL      string
	TokenURL     string
	RedirectURL  string

	// UserInfoURL returns the signed-in user's profile as JSON.
	UserInfoURL string

	// RevokeURL invalidates an access token. Optional, sign-out is
	// local-only when unset.
	RevokeURL string
}

func (c Config) Validate() error {
	if c.ClientID == "" {
		return ErrClientIDNotSet
	}
	if c.TokenURL == "" {
		return ErrTokenURLNotSet
	}
	return nil
}

// Profile identifies the signed-in user.
type Profile struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Session is an authenticated session with the identity provider.
type Session struct {
	Profile     Profile
	AccessToken string
}

// Service is the part of the identity provider the app uses.
type Service interface {
	// AuthCodeURL returns the URL the user visits to sign in.
	AuthCodeURL(state string) string

	// Login exchanges an authorization code for a session.
	Login(ctx context.Context, code string) (Session, error)

	// SignOut revokes an access token. Providers without a revocation
	// endpoint treat this as a no-op.
	SignOut(ctx context.Context, accessToken string) error
}

// Client implements Service against a real provider.
type Client struct {
	config Config
	oauth  *oauth2.Config

	httpClient *http.Client
}

func NewClient(config Config) (*Client, error) {
	err := config.Validate()
	if err != nil {
		return nil, err
	}

	return &Client{
		config: config,
		oauth: &oauth2.Config{
			ClientID:     config.ClientID,
			ClientSecret: config.ClientSecret,
			RedirectURL:  config.RedirectURL,
			Endpoint: oauth2.Endpoint{
				AuthURL:  config.AuthURL,
				TokenURL: config.TokenURL,
			},
		},
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}, nil
}

func (c *Client) AuthCodeURL(state string) string {
	return c.oauth.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

func (c *Client) Login(ctx context.Context, code string) (Session, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)

	token, err := c.oauth.Exchange(ctx, code)
	if err != nil {
		return Session{}, fmt.Errorf("could not exchange authorization code: %w", err)
	}

	profile, err := c.fetchProfile(ctx, token)
	if err != nil {
		return Session{}, err
	}

	return Session{
		Profile:     profile,
		AccessToken: token.AccessToken,
	}, nil
}

func (c *Client) fetchProfile(ctx context.Context, token *oauth2.Token) (Profile, error) {
	client := c.oauth.Client(ctx, token)

	resp, err := client.Get(c.config.UserInfoURL)
	if err != nil {
		return Profile{}, fmt.Errorf("could not fetch user profile: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Profile{}, fmt.Errorf("could not fetch user profile: unexpected status %d", resp.StatusCode)
	}

	var profile Profile
	err = json.NewDecoder(resp.Body).Decode(&profile)
	if err != nil {
		return Profile{}, fmt.Errorf("could not parse user profile: %w", err)
	}

	return profile, nil
}

func (c *Client) SignOut(ctx context.Context, accessToken string) error {
	if c.config.RevokeURL == "" {
		return nil
	}

	form := url.Values{}
	form.Set("token", accessToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.RevokeURL, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("could not revoke access token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("could not revoke access token: unexpected status %d", resp.StatusCode)
	}

	return nil
}
