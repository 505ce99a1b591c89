package oauth1

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/sgrumley/flickrauth/pkg/logger"
)

// Endpoints are the three OAuth 1.0a service URLs.
type Endpoints struct {
	RequestTokenURL string
	AuthorizeURL    string
	AccessTokenURL  string
}

// FlickrEndpoints returns the production Flickr OAuth endpoints.
func FlickrEndpoints() Endpoints {
	return Endpoints{
		RequestTokenURL: "https://www.flickr.com/services/oauth/request_token",
		AuthorizeURL:    "https://www.flickr.com/services/oauth/authorize",
		AccessTokenURL:  "https://www.flickr.com/services/oauth/access_token",
	}
}

// Token is an OAuth token and its secret.
type Token struct {
	Token  string
	Secret string
}

// User is the identity Flickr reports with the access token.
type User struct {
	Fullname string
	Username string
	NSID     string
}

// Access is the outcome of a completed handshake: the authorized token pair
// and the user it belongs to. The caller is responsible for persisting it.
type Access struct {
	Token Token
	User  User
}

// Client drives the three-legged OAuth 1.0a handshake. The credential fields
// are read-only for the client's lifetime. A Client is safe for concurrent
// Authorize calls: all handshake state lives in a per-call record.
type Client struct {
	ConsumerKey    string
	ConsumerSecret string
	CallbackURL    string
	Endpoints      Endpoints

	client    *http.Client
	presenter Presenter
	now       func() time.Time
}

func NewClient(consumerKey, consumerSecret, callbackURL string, endpoints Endpoints, httpClient *http.Client, presenter Presenter) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		ConsumerKey:    consumerKey,
		ConsumerSecret: consumerSecret,
		CallbackURL:    callbackURL,
		Endpoints:      endpoints,
		client:         httpClient,
		presenter:      presenter,
		now:            time.Now,
	}
}

// handshake is the state of one in-flight Authorize call. Keeping it off the
// Client means a half-finished handshake can never leak into the next one.
type handshake struct {
	client   *Client
	phase    phase
	token    Token
	verifier string
	user     User
}

// Authorize performs the full handshake: request token, user authorization
// through the presenter, access token exchange. The three legs run strictly
// in sequence; the first failure aborts the rest. On success the returned
// pair is the one from the access token response, not the request token.
func (c *Client) Authorize(ctx context.Context, permission Permission) (*Access, error) {
	h := &handshake{client: c, phase: phaseRequestToken}

	if err := h.fetchToken(ctx, c.Endpoints.RequestTokenURL); err != nil {
		return nil, fmt.Errorf("request token: %w", err)
	}
	logger.Debug(ctx, "request token obtained", slog.String("oauth_token", h.token.Token))

	redirectURL, err := c.presenter.Present(ctx, c.authorizationURL(h.token.Token, permission), c.CallbackURL)
	if err != nil {
		return nil, fmt.Errorf("authorization: %w", err)
	}
	verifier, err := verifierFromRedirect(redirectURL)
	if err != nil {
		return nil, fmt.Errorf("authorization: %w", err)
	}
	h.verifier = verifier
	h.phase = phaseAccessToken

	if err := h.fetchToken(ctx, c.Endpoints.AccessTokenURL); err != nil {
		return nil, fmt.Errorf("access token: %w", err)
	}
	logger.Debug(ctx, "access token obtained", slog.String("username", h.user.Username))

	return &Access{Token: h.token, User: h.user}, nil
}

// authorizationURL is the page the user approves the request on. It is
// rendered by the presenter, never fetched and parsed by the client.
func (c *Client) authorizationURL(token string, permission Permission) string {
	return c.Endpoints.AuthorizeURL + "?oauth_token=" + Encode(token) + "&perms=" + string(permission)
}

// fetchToken signs and issues the GET for the current phase and folds the
// response into the handshake state.
func (h *handshake) fetchToken(ctx context.Context, baseURL string) error {
	params := h.oauthParams(h.client.now())
	if h.phase == phaseAccessToken {
		params["oauth_verifier"] = h.verifier
	}

	signature, err := Signature(baseURL, params, h.client.ConsumerSecret, h.token.Secret)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL(baseURL, params, signature), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := h.client.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(body))
	}

	return h.applyResponse(string(body))
}
