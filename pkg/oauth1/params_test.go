package oauth1

import (
	"testing"
	"time"
)

func TestOauthParamsRequestTokenPhase(t *testing.T) {
	c := &Client{ConsumerKey: "ck", CallbackURL: "http://localhost:8080/callback"}
	h := &handshake{client: c, phase: phaseRequestToken}

	now := time.Unix(1191242096, 500e6)
	params := h.oauthParams(now)

	want := map[string]string{
		"oauth_consumer_key":     "ck",
		"oauth_signature_method": "HMAC-SHA1",
		"oauth_version":          "1.0",
		"oauth_callback":         "http://localhost:8080/callback",
		"oauth_timestamp":        "1191242096", // sub-second part floored away
	}
	for k, v := range want {
		if params[k] != v {
			t.Errorf("params[%q] = %q, want %q", k, params[k], v)
		}
	}
	if params["oauth_nonce"] == "" {
		t.Error("nonce is empty")
	}
	if _, ok := params["oauth_token"]; ok {
		t.Error("request token phase must not carry oauth_token")
	}
}

func TestOauthParamsAccessTokenPhase(t *testing.T) {
	c := &Client{ConsumerKey: "ck", CallbackURL: "http://localhost:8080/callback"}
	h := &handshake{client: c, phase: phaseAccessToken, token: Token{Token: "T1", Secret: "S1"}}

	params := h.oauthParams(time.Unix(100, 0))

	if params["oauth_token"] != "T1" {
		t.Errorf("params[oauth_token] = %q, want %q", params["oauth_token"], "T1")
	}
	if _, ok := params["oauth_callback"]; ok {
		t.Error("access token phase must not carry oauth_callback")
	}
}

func TestOauthParamsFreshPerCall(t *testing.T) {
	c := &Client{ConsumerKey: "ck"}
	h := &handshake{client: c, phase: phaseRequestToken}

	first := h.oauthParams(time.Unix(100, 0))
	second := h.oauthParams(time.Unix(100, 0))

	if first["oauth_nonce"] == second["oauth_nonce"] {
		t.Error("nonce was reused across calls")
	}
}

func TestNonceDistinct(t *testing.T) {
	if nonce() == nonce() {
		t.Error("two immediate nonce() calls produced the same value")
	}
}

func TestOauthParamsPanicsWithoutRequestToken(t *testing.T) {
	c := &Client{ConsumerKey: "ck"}
	h := &handshake{client: c, phase: phaseAccessToken}

	defer func() {
		if recover() == nil {
			t.Error("expected panic entering access token phase with no token")
		}
	}()
	h.oauthParams(time.Unix(100, 0))
}
