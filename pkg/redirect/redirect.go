package redirect

import (
	"context"
	"fmt"
	"net/http"
	"sync"
)

// Registry is a rendezvous between the HTTP handler that receives the
// authorization redirect and the flow goroutine waiting for it, keyed by the
// request token the redirect carries.
type Registry struct {
	requests map[string]chan string
	rwmu     sync.RWMutex
}

func New() *Registry {
	return &Registry{
		requests: make(map[string]chan string),
	}
}

// Register opens a one-shot slot for the redirect belonging to token.
func (r *Registry) Register(token string) chan string {
	ch := make(chan string, 1)
	r.rwmu.Lock()
	defer r.rwmu.Unlock()
	r.requests[token] = ch

	return ch
}

func (r *Registry) Unregister(token string) {
	r.rwmu.Lock()
	defer r.rwmu.Unlock()
	delete(r.requests, token)
}

// Wait blocks until the redirect URL for token arrives or ctx ends.
func (r *Registry) Wait(ctx context.Context, token string) (string, error) {
	r.rwmu.RLock()
	ch, ok := r.requests[token]
	r.rwmu.RUnlock()

	if !ok {
		return "", fmt.Errorf("no channel registered for token: %s", token)
	}

	select {
	case <-ctx.Done():
		return "", fmt.Errorf("gave up waiting for callback: %w", ctx.Err())
	case redirectURL := <-ch:
		return redirectURL, nil
	}
}

// Push delivers the redirect URL to the waiter for token.
func (r *Registry) Push(token, redirectURL string) error {
	r.rwmu.RLock()
	ch, ok := r.requests[token]
	r.rwmu.RUnlock()

	if !ok {
		return fmt.Errorf("no channel registered for token: %s", token)
	}

	ch <- redirectURL
	return nil
}

// Handler receives the authorization redirect. The full redirect URL is
// reconstructed from callbackURL plus the incoming query and pushed to the
// waiter identified by the oauth_token query parameter.
func Handler(registry *Registry, callbackURL string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := r.URL.Query().Get("oauth_token")
		if token == "" {
			http.Error(w, "missing oauth_token", http.StatusBadRequest)
			return
		}

		if err := registry.Push(token, callbackURL+"?"+r.URL.RawQuery); err != nil {
			http.Error(w, "no pending authorization for token", http.StatusConflict)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte("<html><body>Authorized. You can close this window.</body></html>"))
	}
}
