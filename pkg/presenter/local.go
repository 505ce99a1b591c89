// Package presenter provides the default authorization surface: the system
// browser plus a loopback HTTP listener that captures the redirect.
package presenter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/sgrumley/flickrauth/pkg/browser"
	"github.com/sgrumley/flickrauth/pkg/logger"
	"github.com/sgrumley/flickrauth/pkg/oauth1"
	"github.com/sgrumley/flickrauth/pkg/redirect"
)

// Local opens the authorization URL in the system browser and waits for the
// service to redirect the user back to a listener on Addr. The registered
// callback URL must resolve to that listener.
type Local struct {
	Addr string

	// OpenBrowser can be replaced in tests; defaults to browser.Open.
	OpenBrowser func(url string) error
}

func New(addr string) *Local {
	return &Local{
		Addr:        addr,
		OpenBrowser: browser.Open,
	}
}

// Present implements oauth1.Presenter. Cancellation of ctx while the browser
// window is still open is reported as the user abandoning the authorization.
func (l *Local) Present(ctx context.Context, authorizationURL, callbackPrefix string) (string, error) {
	token, err := tokenFromAuthorizationURL(authorizationURL)
	if err != nil {
		return "", err
	}

	registry := redirect.New()
	registry.Register(token)
	defer registry.Unregister(token)

	callbackPath := "/"
	if u, err := url.Parse(callbackPrefix); err == nil && u.Path != "" {
		callbackPath = u.Path
	}

	mux := http.NewServeMux()
	mux.HandleFunc(callbackPath, redirect.Handler(registry, callbackPrefix))

	server := &http.Server{Addr: l.Addr, Handler: mux}
	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()
	defer func() {
		_ = server.Shutdown(context.Background())
	}()

	logger.Info(ctx, "opening browser for authorization")
	if err := l.OpenBrowser(authorizationURL); err != nil {
		return "", fmt.Errorf("failed to open browser: %w", err)
	}

	waitErr := make(chan error, 1)
	redirectCh := make(chan string, 1)
	go func() {
		redirectURL, err := registry.Wait(ctx, token)
		if err != nil {
			waitErr <- err
			return
		}
		redirectCh <- redirectURL
	}()

	select {
	case err := <-serverErr:
		return "", fmt.Errorf("callback listener failed: %w", err)
	case <-waitErr:
		return "", oauth1.ErrAuthorizationCancelled
	case redirectURL := <-redirectCh:
		return redirectURL, nil
	}
}

func tokenFromAuthorizationURL(authorizationURL string) (string, error) {
	u, err := url.Parse(authorizationURL)
	if err != nil {
		return "", fmt.Errorf("malformed authorization URL: %w", err)
	}
	token := u.Query().Get("oauth_token")
	if token == "" {
		return "", fmt.Errorf("authorization URL is missing oauth_token")
	}
	return token, nil
}
