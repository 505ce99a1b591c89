package oauth1

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

const (
	signatureMethod = "HMAC-SHA1"
	oauthVersion    = "1.0"
)

// phase is the handshake state. It only ever moves forward: a request token
// must be held before the access token exchange begins.
type phase int

const (
	phaseRequestToken phase = iota
	phaseAccessToken
)

// Permission is the access scope requested from the user on the
// authorization page. It is passed through to the perms query parameter
// unchanged.
type Permission string

const (
	PermissionRead   Permission = "read"
	PermissionWrite  Permission = "write"
	PermissionDelete Permission = "delete"
)

func nonce() string {
	return uuid.NewString()
}

func timestamp(now time.Time) string {
	return strconv.FormatInt(now.Unix(), 10)
}

// oauthParams builds the protocol parameter set for the current phase. A
// fresh nonce and timestamp are generated on every call; servers treat a
// reused pair as a replay.
//
// Entering the access token phase without a request token is a sequencing bug
// inside this package, not a runtime condition, so it panics.
func (h *handshake) oauthParams(now time.Time) map[string]string {
	params := map[string]string{
		"oauth_nonce":            nonce(),
		"oauth_timestamp":        timestamp(now),
		"oauth_consumer_key":     h.client.ConsumerKey,
		"oauth_signature_method": signatureMethod,
		"oauth_version":          oauthVersion,
	}

	switch h.phase {
	case phaseRequestToken:
		params["oauth_callback"] = h.client.CallbackURL
	case phaseAccessToken:
		if h.token.Token == "" {
			panic("oauth1: access token phase entered without a request token")
		}
		params["oauth_token"] = h.token.Token
	}

	return params
}
