package oauth1

import "context"

// Presenter renders the user-facing authorization step. Given the
// authorization page URL and the callback URL the redirect will be prefixed
// with, it returns the full redirect URL once the user approves, or an error
// if the user cancels or the surface fails. The client treats it as a black
// box; no UI logic lives in this package.
type Presenter interface {
	Present(ctx context.Context, authorizationURL, callbackPrefix string) (string, error)
}

// PresenterFunc adapts a function to the Presenter interface.
type PresenterFunc func(ctx context.Context, authorizationURL, callbackPrefix string) (string, error)

func (f PresenterFunc) Present(ctx context.Context, authorizationURL, callbackPrefix string) (string, error) {
	return f(ctx, authorizationURL, callbackPrefix)
}
