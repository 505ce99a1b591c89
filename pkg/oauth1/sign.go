package oauth1

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// sortedKeys returns the parameter names in case-insensitive lexicographic
// order. Ties after case folding fall back to the natural byte order so the
// result is a total order for any key set.
func sortedKeys(params map[string]string) []string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := strings.ToLower(keys[i]), strings.ToLower(keys[j])
		if a == b {
			return keys[i] < keys[j]
		}
		return a < b
	})
	return keys
}

// parameterString normalizes params per RFC 5849 Section 3.4.1.3.2: each key
// and value is percent-encoded, pairs are joined as k=v with '&' in sorted
// key order.
func parameterString(params map[string]string) string {
	parts := make([]string, 0, len(params))
	for _, k := range sortedKeys(params) {
		parts = append(parts, Encode(k)+"="+Encode(params[k]))
	}
	return strings.Join(parts, "&")
}

// normalizeBaseURL lowercases the scheme and host and strips the query and
// fragment, the base string URI form required by RFC 5849 Section 3.4.1.2.
func normalizeBaseURL(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("not an absolute URL: %s", rawURL)
	}
	path := u.EscapedPath()
	if path == "" {
		path = "/"
	}
	return strings.ToLower(u.Scheme) + "://" + strings.ToLower(u.Host) + path, nil
}

// signatureBase builds METHOD&enc(baseURL)&enc(parameterString). This exact
// construction is mandated by RFC 5849 Section 3.4.1.1; any deviation and the
// server computes a different signature.
func signatureBase(method, baseURL string, params map[string]string) (string, error) {
	normalized, err := normalizeBaseURL(baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid base URL: %w", err)
	}
	return strings.ToUpper(method) + "&" + Encode(normalized) + "&" + Encode(parameterString(params)), nil
}

// Signature computes the HMAC-SHA1 signature for a GET request against
// baseURL carrying params (which must not already contain oauth_signature).
// The signing key is enc(consumerSecret)&enc(tokenSecret); the ampersand is
// present even while the token secret is still empty. Exported so a server
// verifying a signed request can recompute the value the client produced.
func Signature(baseURL string, params map[string]string, consumerSecret, tokenSecret string) (string, error) {
	base, err := signatureBase("GET", baseURL, params)
	if err != nil {
		return "", err
	}
	key := Encode(consumerSecret) + "&" + Encode(tokenSecret)
	mac := hmac.New(sha1.New, []byte(key))
	mac.Write([]byte(base))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil)), nil
}

// requestURL assembles the wire form: the signature joins the parameter set,
// keys are re-sorted, and each value is escaped exactly once. The base URL
// itself is never escaped here.
func requestURL(baseURL string, params map[string]string, signature string) string {
	merged := make(map[string]string, len(params)+1)
	for k, v := range params {
		merged[k] = v
	}
	merged["oauth_signature"] = signature

	var b strings.Builder
	b.WriteString(baseURL)
	sep := "?"
	for _, k := range sortedKeys(merged) {
		b.WriteString(sep)
		b.WriteString(Encode(k))
		b.WriteString("=")
		b.WriteString(Encode(merged[k]))
		sep = "&"
	}
	return b.String()
}
