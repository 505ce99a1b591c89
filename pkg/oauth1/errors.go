package oauth1

import "errors"

var (
	// ErrCallbackNotConfirmed is returned when the request token response
	// does not carry a truthy oauth_callback_confirmed field.
	ErrCallbackNotConfirmed = errors.New("request token not confirmed")

	// ErrAccessTokenRejected is returned when the access token response is
	// missing the user identity fields or carries an empty username.
	ErrAccessTokenRejected = errors.New("failed to get an access token")

	// ErrAuthorizationCancelled is returned when the user dismisses the
	// authorization step before approving the request.
	ErrAuthorizationCancelled = errors.New("authorization cancelled by user")
)
