package oauth1

import (
	"errors"
	"testing"
)

func TestParseBody(t *testing.T) {
	tests := []struct {
		name string
		body string
		want map[string]string
	}{
		{
			"request token response",
			"oauth_token=abc&oauth_token_secret=xyz&oauth_callback_confirmed=true",
			map[string]string{
				"oauth_token":              "abc",
				"oauth_token_secret":       "xyz",
				"oauth_callback_confirmed": "true",
			},
		},
		{
			"only first equals delimits",
			"a=b=c&d=e",
			map[string]string{"a": "b=c", "d": "e"},
		},
		{
			"segment without equals is dropped",
			"oauth_token=abc&garbage&x=1",
			map[string]string{"oauth_token": "abc", "x": "1"},
		},
		{
			"empty value kept",
			"username=&user_nsid=123",
			map[string]string{"username": "", "user_nsid": "123"},
		},
		{
			"percent-decoded values",
			"fullname=Alice%20A&username=alice",
			map[string]string{"fullname": "Alice A", "username": "alice"},
		},
		{
			"empty body",
			"",
			map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseBody(tt.body)
			if len(got) != len(tt.want) {
				t.Fatalf("parseBody(%q) = %v, want %v", tt.body, got, tt.want)
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Errorf("parseBody(%q)[%q] = %q, want %q", tt.body, k, got[k], v)
				}
			}
		})
	}
}

func TestApplyResponseRequestToken(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{"confirmed", "oauth_token=T1&oauth_token_secret=S1&oauth_callback_confirmed=true", nil},
		{"confirmation absent", "oauth_token=T1&oauth_token_secret=S1", ErrCallbackNotConfirmed},
		{"confirmation false", "oauth_token=T1&oauth_token_secret=S1&oauth_callback_confirmed=false", ErrCallbackNotConfirmed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &handshake{phase: phaseRequestToken}
			err := h.applyResponse(tt.body)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("applyResponse() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil {
				if h.token.Token != "T1" || h.token.Secret != "S1" {
					t.Errorf("token pair = %+v, want T1/S1", h.token)
				}
			}
		})
	}
}

func TestApplyResponseAccessToken(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{"complete identity", "oauth_token=T2&oauth_token_secret=S2&username=alice&user_nsid=123&fullname=Alice%20A", nil},
		{"empty username", "oauth_token=T2&oauth_token_secret=S2&username=&user_nsid=123&fullname=Alice", ErrAccessTokenRejected},
		{"missing nsid", "oauth_token=T2&oauth_token_secret=S2&username=alice&fullname=Alice", ErrAccessTokenRejected},
		{"missing fullname", "oauth_token=T2&oauth_token_secret=S2&username=alice&user_nsid=123", ErrAccessTokenRejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &handshake{phase: phaseAccessToken, token: Token{Token: "T1", Secret: "S1"}}
			err := h.applyResponse(tt.body)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("applyResponse() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}
			if h.token.Token != "T2" || h.token.Secret != "S2" {
				t.Errorf("token pair = %+v, want the access token pair T2/S2", h.token)
			}
			if h.user.Fullname != "Alice A" || h.user.Username != "alice" || h.user.NSID != "123" {
				t.Errorf("user = %+v", h.user)
			}
		})
	}
}

func TestVerifierFromRedirect(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{"verifier last", "http://localhost:8080/callback?oauth_token=T1&oauth_verifier=V1", "V1", false},
		{"verifier first", "http://localhost:8080/callback?oauth_verifier=V1&oauth_token=T1", "V1", false},
		{"verifier only", "http://localhost:8080/callback?oauth_verifier=V1", "V1", false},
		{"verifier absent", "http://localhost:8080/callback?oauth_token=T1", "", true},
		{"no query", "http://localhost:8080/callback", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := verifierFromRedirect(tt.url)
			if (err != nil) != tt.wantErr {
				t.Fatalf("verifierFromRedirect(%q) error = %v, wantErr %v", tt.url, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("verifierFromRedirect(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}
