// Package powens talks to the Powens API for bank account aggregation.
//
// Connecting a bank account happens in three steps: a Powens user is
// initialized once and yields a permanent auth token, the auth token is
// exchanged for a short-lived code, and the code is put into the URL of
// the hosted webview where the user picks their bank.
package powens

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// WebviewHost is the hosted page where users connect their bank.
const WebviewHost = "https://webview.powens.com"

var (
	ErrDomainNotSet       = errors.New("the Powens domain must be configured")
	ErrClientIDNotSet     = errors.New("the Powens client ID must be configured")
	ErrClientSecretNotSet = errors.New("the Powens client secret must be configured")
)

// Config holds the credentials of a Powens application.
type Config struct {
	// Domain is either the plain domain name, e.g. "demo", or a full
	// "*.biapi.pro" host.
	Domain       string
	ClientID     string
	ClientSecret string
}

func (c Config) Validate() error {
	if c.Domain == "" {
		return ErrDomainNotSet
	}
	if c.ClientID == "" {
		return ErrClientIDNotSet
	}
	if c.ClientSecret == "" {
		return ErrClientSecretNotSet
	}
	return nil
}

// BaseURL returns the API base URL for the configured domain. A plain
// domain name is expanded to its "*.biapi.pro" host.
func (c Config) BaseURL() string {
	if strings.Contains(c.Domain, "biapi.pro") {
		return fmt.Sprintf("https://%s/2.0", c.Domain)
	}

	return fmt.Sprintf("https://%s.biapi.pro/2.0", c.Domain)
}

// AuthInit is the result of initializing a Powens user. The auth token
// is permanent.
type AuthInit struct {
	AuthToken string `json:"auth_token"`
	User      struct {
		ID int64 `json:"id"`
	} `json:"user"`
}

// TempCode is a short-lived code for the webview.
type TempCode struct {
	Code      string `json:"code"`
	ExpiresIn int    `json:"expires_in"`
}

// Connection is everything the app needs to open the webview and keep
// using the Powens user afterwards.
type Connection struct {
	WebviewURL string `json:"webviewUrl"`
	AuthToken  string `json:"authToken"`
	UserID     int64  `json:"userId"`
	ExpiresIn  int    `json:"expiresIn"`
}

// Service is the part of the Powens API the app uses.
type Service interface {
	InitUser(ctx context.Context) (AuthInit, error)
	TempCode(ctx context.Context, authToken string) (TempCode, error)
	WebviewURL(code, redirectURI string) string
	Connect(ctx context.Context, redirectURI string) (Connection, error)
}

// Client implements Service against the real API.
type Client struct {
	config     Config
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

// WithBaseURL overrides the API base URL. Used by tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

func NewClient(config Config, options ...Option) (*Client, error) {
	err := config.Validate()
	if err != nil {
		return nil, err
	}

	client := &Client{
		config:  config,
		baseURL: config.BaseURL(),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}

	for _, option := range options {
		option(client)
	}

	return client, nil
}

// InitUser creates a Powens user and returns its permanent auth token.
func (c *Client) InitUser(ctx context.Context) (AuthInit, error) {
	body, err := json.Marshal(map[string]string{
		"client_id":     c.config.ClientID,
		"client_secret": c.config.ClientSecret,
	})
	if err != nil {
		return AuthInit{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/init", bytes.NewReader(body))
	if err != nil {
		return AuthInit{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	var auth AuthInit
	err = c.do(req, &auth)
	if err != nil {
		return AuthInit{}, fmt.Errorf("could not initialize Powens user: %w", err)
	}

	return auth, nil
}

// TempCode exchanges a permanent auth token for a short-lived webview code.
func (c *Client) TempCode(ctx context.Context, authToken string) (TempCode, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/auth/token/code", nil)
	if err != nil {
		return TempCode{}, err
	}
	req.Header.Set("Authorization", "Bearer "+authToken)

	var code TempCode
	err = c.do(req, &code)
	if err != nil {
		return TempCode{}, fmt.Errorf("could not generate temporary code: %w", err)
	}

	return code, nil
}

// WebviewURL builds the URL of the hosted bank connection page.
func (c *Client) WebviewURL(code, redirectURI string) string {
	params := url.Values{}
	params.Set("domain", c.config.Domain)
	params.Set("client_id", c.config.ClientID)
	params.Set("redirect_uri", redirectURI)
	params.Set("code", code)

	return WebviewHost + "/connect?" + params.Encode()
}

// Connect runs the full flow: initialize a user, generate a code and
// build the webview URL.
func (c *Client) Connect(ctx context.Context, redirectURI string) (Connection, error) {
	auth, err := c.InitUser(ctx)
	if err != nil {
		return Connection{}, err
	}

	code, err := c.TempCode(ctx, auth.AuthToken)
	if err != nil {
		return Connection{}, err
	}

	return Connection{
		WebviewURL: c.WebviewURL(code.Code, redirectURI),
		AuthToken:  auth.AuthToken,
		UserID:     auth.User.ID,
		ExpiresIn:  code.ExpiresIn,
	}, nil
}

func (c *Client) do(req *http.Request, result any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return json.NewDecoder(resp.Body).Decode(result)
}
