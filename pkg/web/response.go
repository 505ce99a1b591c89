package web

import (
	"net/http"
	"strings"

	"github.com/sgrumley/flickrauth/pkg/oauth1"
)

// FormPair is one key=value field of an OAuth 1.0a response body.
type FormPair struct {
	Key   string
	Value string
}

// RespondForm writes an ampersand-delimited key=value body, the encoding
// OAuth 1.0a token endpoints use instead of JSON. Values are percent-encoded
// with the OAuth reserved set; pair order is preserved.
func RespondForm(w http.ResponseWriter, status int, pairs []FormPair) {
	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, p.Key+"="+oauth1.Encode(p.Value))
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(strings.Join(parts, "&")))
}

// RespondProblem reports a protocol failure in Flickr's oauth_problem form.
func RespondProblem(w http.ResponseWriter, status int, problem string) {
	RespondForm(w, status, []FormPair{{Key: "oauth_problem", Value: problem}})
}
