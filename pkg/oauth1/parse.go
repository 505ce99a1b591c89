package oauth1

import (
	"fmt"
	"net/url"
	"strings"
)

// parseBody decodes an ampersand-delimited key=value response body, the
// format OAuth 1.0a token endpoints use instead of JSON. Only the first '='
// in a segment delimits key from value; segments without one are dropped.
// Values are percent-decoded (Flickr escapes the fullname field); a value
// that fails to decode is kept raw rather than rejected.
func parseBody(body string) map[string]string {
	fields := make(map[string]string)
	for _, segment := range strings.Split(body, "&") {
		key, value, ok := strings.Cut(segment, "=")
		if !ok || key == "" {
			continue
		}
		if decoded, err := url.QueryUnescape(value); err == nil {
			value = decoded
		}
		fields[key] = value
	}
	return fields
}

// applyResponse validates the response body for the current phase and stores
// the token pair. The pair is overwritten unconditionally on success: the
// access token response replaces the request token pair.
func (h *handshake) applyResponse(body string) error {
	fields := parseBody(body)

	switch h.phase {
	case phaseRequestToken:
		if fields["oauth_callback_confirmed"] != "true" {
			return fmt.Errorf("%w: %s", ErrCallbackNotConfirmed, body)
		}
	case phaseAccessToken:
		if fields["username"] == "" || fields["user_nsid"] == "" || fields["fullname"] == "" {
			return ErrAccessTokenRejected
		}
		h.user = User{
			Fullname: fields["fullname"],
			Username: fields["username"],
			NSID:     fields["user_nsid"],
		}
	}

	h.token = Token{
		Token:  fields["oauth_token"],
		Secret: fields["oauth_token_secret"],
	}
	return nil
}

// verifierFromRedirect extracts oauth_verifier from the captured redirect
// URL by key lookup, wherever it sits in the query string.
func verifierFromRedirect(redirectURL string) (string, error) {
	u, err := url.Parse(redirectURL)
	if err != nil {
		return "", fmt.Errorf("malformed redirect URL: %w", err)
	}
	verifier := u.Query().Get("oauth_verifier")
	if verifier == "" {
		return "", fmt.Errorf("redirect URL is missing oauth_verifier")
	}
	return verifier, nil
}
