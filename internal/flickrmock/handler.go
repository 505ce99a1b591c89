// Package flickrmock is a local stand-in for Flickr's OAuth 1.0a endpoints:
// request token, authorization page, access token. It verifies client
// signatures for real, so the full handshake can be exercised end to end
// without production credentials.
package flickrmock

import (
	"crypto/hmac"
	"html/template"
	"net/http"
	"net/url"

	"github.com/sgrumley/flickrauth/pkg/logger"
	"github.com/sgrumley/flickrauth/pkg/oauth1"
	"github.com/sgrumley/flickrauth/pkg/web"
)

// Identity is the user every approved handshake resolves to.
type Identity struct {
	Fullname string
	Username string
	NSID     string
}

type Handler struct {
	consumerKey    string
	consumerSecret string
	identity       Identity
	store          *Store
	jwtSecret      []byte
}

func NewHandler(consumerKey, consumerSecret string, identity Identity) (*Handler, error) {
	jwtSecret, err := GenerateRandomString()
	if err != nil {
		return nil, err
	}
	return &Handler{
		consumerKey:    consumerKey,
		consumerSecret: consumerSecret,
		identity:       identity,
		store:          NewStore(),
		jwtSecret:      []byte(jwtSecret),
	}, nil
}

func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /services/oauth/request_token", h.RequestToken)
	mux.HandleFunc("GET /services/oauth/authorize", h.Authorize)
	mux.HandleFunc("GET /services/oauth/access_token", h.AccessToken)
}

// queryParams flattens the request query to the single-valued map the
// signature is computed over, with oauth_signature split out.
func queryParams(r *http.Request) (map[string]string, string) {
	params := make(map[string]string)
	var signature string
	for k, vs := range r.URL.Query() {
		if len(vs) == 0 {
			continue
		}
		if k == "oauth_signature" {
			signature = vs[0]
			continue
		}
		params[k] = vs[0]
	}
	return params, signature
}

// requestBaseURL rebuilds the URL the client signed against.
func requestBaseURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host + r.URL.Path
}

// verifySignature recomputes the HMAC-SHA1 signature the client should have
// produced and compares it against the one it sent.
func (h *Handler) verifySignature(r *http.Request, params map[string]string, signature, tokenSecret string) bool {
	if params["oauth_consumer_key"] != h.consumerKey {
		return false
	}
	expected, err := oauth1.Signature(requestBaseURL(r), params, h.consumerSecret, tokenSecret)
	if err != nil {
		return false
	}
	return hmac.Equal([]byte(expected), []byte(signature))
}

func (h *Handler) RequestToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	params, signature := queryParams(r)

	if !h.verifySignature(r, params, signature, "") {
		logger.Warn(ctx, "request token: signature rejected")
		web.RespondProblem(w, http.StatusUnauthorized, "signature_invalid")
		return
	}

	callback := params["oauth_callback"]
	if callback == "" {
		web.RespondProblem(w, http.StatusBadRequest, "parameter_absent")
		return
	}

	token, secret, err := h.mintRequestToken(callback)
	if err != nil {
		logger.Error(ctx, "request token: minting failed", err)
		web.RespondProblem(w, http.StatusInternalServerError, "token_unavailable")
		return
	}

	logger.Info(ctx, "request token issued")
	web.RespondForm(w, http.StatusOK, []web.FormPair{
		{Key: "oauth_callback_confirmed", Value: "true"},
		{Key: "oauth_token", Value: token},
		{Key: "oauth_token_secret", Value: secret},
	})
}

var authorizePage = template.Must(template.New("authorize").Parse(`<html>
<body>
<p>An application is requesting <b>{{.Perms}}</b> access to your account.</p>
<p><a href="{{.ApproveURL}}">Approve</a></p>
</body>
</html>
`))

// Authorize renders the approval page. Revisiting the URL with approve=1
// stands in for the user clicking through, which is what automated flows do.
func (h *Handler) Authorize(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()
	token := q.Get("oauth_token")
	perms := q.Get("perms")

	claims, err := h.parseRequestToken(token)
	if err != nil {
		web.RespondProblem(w, http.StatusBadRequest, "token_rejected")
		return
	}

	if q.Get("approve") == "" {
		approveURL := r.URL.Path + "?" + url.Values{
			"oauth_token": {token},
			"perms":       {perms},
			"approve":     {"1"},
		}.Encode()
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = authorizePage.Execute(w, map[string]string{
			"Perms":      perms,
			"ApproveURL": approveURL,
		})
		return
	}

	verifier, err := GenerateRandomString()
	if err != nil {
		logger.Error(ctx, "authorize: verifier generation failed", err)
		web.RespondProblem(w, http.StatusInternalServerError, "token_unavailable")
		return
	}
	h.store.SetApproval(token, Approval{Verifier: verifier, Perms: perms})

	redirectURL := claims.Callback + "?" + url.Values{
		"oauth_token":    {token},
		"oauth_verifier": {verifier},
	}.Encode()

	logger.Info(ctx, "authorization approved")
	http.Redirect(w, r, redirectURL, http.StatusFound)
}

func (h *Handler) AccessToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	params, signature := queryParams(r)

	claims, err := h.parseRequestToken(params["oauth_token"])
	if err != nil {
		web.RespondProblem(w, http.StatusUnauthorized, "token_rejected")
		return
	}

	if !h.verifySignature(r, params, signature, claims.Secret) {
		logger.Warn(ctx, "access token: signature rejected")
		web.RespondProblem(w, http.StatusUnauthorized, "signature_invalid")
		return
	}

	approval, err := h.store.GetApproval(params["oauth_token"])
	if err != nil || approval.Verifier != params["oauth_verifier"] {
		web.RespondProblem(w, http.StatusUnauthorized, "verifier_invalid")
		return
	}
	h.store.DeleteApproval(params["oauth_token"])

	accessToken, err := GenerateRandomString()
	if err != nil {
		web.RespondProblem(w, http.StatusInternalServerError, "token_unavailable")
		return
	}
	accessSecret, err := GenerateRandomString()
	if err != nil {
		web.RespondProblem(w, http.StatusInternalServerError, "token_unavailable")
		return
	}

	logger.Info(ctx, "access token issued")
	web.RespondForm(w, http.StatusOK, []web.FormPair{
		{Key: "oauth_token", Value: accessToken},
		{Key: "oauth_token_secret", Value: accessSecret},
		{Key: "fullname", Value: h.identity.Fullname},
		{Key: "username", Value: h.identity.Username},
		{Key: "user_nsid", Value: h.identity.NSID},
	})
}
