package oauth1

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"strings"
	"testing"
)

// Vectors from the OAuth Core 1.0 specification, Appendix A.5.1, plus a
// second case exercising URL normalization and reserved characters.
var baseStringTests = []struct {
	name   string
	method string
	url    string
	params map[string]string
	want   string
}{
	{
		"spec appendix photos example",
		"GeT",
		"hTtp://pHotos.example.net/photos",
		map[string]string{
			"oauth_consumer_key":     "dpf43f3p2l4k3l03",
			"oauth_token":            "nnch734d00sl2jdk",
			"oauth_nonce":            "kllo9940pd9333jh",
			"oauth_timestamp":        "1191242096",
			"oauth_signature_method": "HMAC-SHA1",
			"oauth_version":          "1.0",
			"size":                   "original",
			"file":                   "vacation.jpg",
		},
		"GET&http%3A%2F%2Fphotos.example.net%2Fphotos&file%3Dvacation.jpg%26oauth_consumer_key%3Ddpf43f3p2l4k3l03%26oauth_nonce%3Dkllo9940pd9333jh%26oauth_signature_method%3DHMAC-SHA1%26oauth_timestamp%3D1191242096%26oauth_token%3Dnnch734d00sl2jdk%26oauth_version%3D1.0%26size%3Doriginal",
	},
	{
		"reserved characters and explicit port",
		"GET",
		"http://PHOTOS.example.net:8001/Photos",
		map[string]string{
			"oauth_consumer_key":     "dpf43f3++p+#2l4k3l03",
			"oauth_token":            "nnch734d(0)0sl2jdk",
			"oauth_nonce":            "kllo~9940~pd9333jh",
			"oauth_timestamp":        "1191242096",
			"oauth_signature_method": "HMAC-SHA1",
			"oauth_version":          "1.0",
			"photo size":             "300%",
			"title":                  "Back of $100 Dollars Bill",
		},
		"GET&http%3A%2F%2Fphotos.example.net%3A8001%2FPhotos&oauth_consumer_key%3Ddpf43f3%252B%252Bp%252B%25232l4k3l03%26oauth_nonce%3Dkllo~9940~pd9333jh%26oauth_signature_method%3DHMAC-SHA1%26oauth_timestamp%3D1191242096%26oauth_token%3Dnnch734d%25280%25290sl2jdk%26oauth_version%3D1.0%26photo%2520size%3D300%2525%26title%3DBack%2520of%2520%2524100%2520Dollars%2520Bill",
	},
}

func TestSignatureBase(t *testing.T) {
	for _, tt := range baseStringTests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := signatureBase(tt.method, tt.url, tt.params)
			if err != nil {
				t.Fatalf("signatureBase() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("signatureBase():\ngot  %q\nwant %q", got, tt.want)
			}
		})
	}
}

func TestSignatureKnownAnswer(t *testing.T) {
	// HMAC-SHA1 known-answer vector from OAuth Core 1.0 Appendix A.5.2:
	// consumer secret kd94hf93k423kf44, token secret pfkkdhi9sl3r4s00.
	params := map[string]string{
		"oauth_consumer_key":     "dpf43f3p2l4k3l03",
		"oauth_token":            "nnch734d00sl2jdk",
		"oauth_nonce":            "kllo9940pd9333jh",
		"oauth_timestamp":        "1191242096",
		"oauth_signature_method": "HMAC-SHA1",
		"oauth_version":          "1.0",
		"size":                   "original",
		"file":                   "vacation.jpg",
	}

	got, err := Signature("http://photos.example.net/photos", params, "kd94hf93k423kf44", "pfkkdhi9sl3r4s00")
	if err != nil {
		t.Fatalf("Signature() error: %v", err)
	}
	if want := "tR3+Ty81lMeYAr/Fid0kMTYa/WM="; got != want {
		t.Errorf("Signature() = %q, want %q", got, want)
	}
}

func TestSignatureEmptyTokenSecretKeepsAmpersand(t *testing.T) {
	params := map[string]string{"a": "1"}

	withEmpty, err := Signature("http://example.com/x", params, "S", "")
	if err != nil {
		t.Fatalf("Signature() error: %v", err)
	}
	withSecret, err := Signature("http://example.com/x", params, "S", "ts")
	if err != nil {
		t.Fatalf("Signature() error: %v", err)
	}
	if withEmpty == withSecret {
		t.Error("token secret is not part of the signing key")
	}

	// The key for an absent token secret is "S&", never "S".
	base, err := signatureBase("GET", "http://example.com/x", params)
	if err != nil {
		t.Fatalf("signatureBase() error: %v", err)
	}
	mac := hmac.New(sha1.New, []byte("S&"))
	mac.Write([]byte(base))
	if want := base64.StdEncoding.EncodeToString(mac.Sum(nil)); withEmpty != want {
		t.Errorf("Signature() = %q, want key %q to produce %q", withEmpty, "S&", want)
	}
}

func TestSortedKeys(t *testing.T) {
	tests := []struct {
		name   string
		params map[string]string
		want   []string
	}{
		{
			"case insensitive order",
			map[string]string{"Zebra": "", "apple": "", "Mango": ""},
			[]string{"apple", "Mango", "Zebra"},
		},
		{
			"fold ties broken by natural order",
			map[string]string{"KEY": "", "key": "", "Key": ""},
			[]string{"KEY", "Key", "key"},
		},
		{
			"oauth parameter set",
			map[string]string{"oauth_token": "", "oauth_nonce": "", "perms": "", "oauth_callback": ""},
			[]string{"oauth_callback", "oauth_nonce", "oauth_token", "perms"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sortedKeys(tt.params)
			if len(got) != len(tt.want) {
				t.Fatalf("sortedKeys() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("sortedKeys() = %v, want %v", got, tt.want)
				}
			}

			// The order is stable across calls.
			again := sortedKeys(tt.params)
			for i := range again {
				if again[i] != got[i] {
					t.Fatal("sortedKeys() order is not stable")
				}
			}
		})
	}
}

func TestRequestURL(t *testing.T) {
	params := map[string]string{
		"oauth_nonce": "n1",
		"perms":       "read",
	}
	got := requestURL("http://example.com/services/oauth/request_token", params, "si/g+n=")

	if !strings.HasPrefix(got, "http://example.com/services/oauth/request_token?") {
		t.Fatalf("requestURL() = %q, base URL was altered", got)
	}
	want := "http://example.com/services/oauth/request_token?oauth_nonce=n1&oauth_signature=si%2Fg%2Bn%3D&perms=read"
	if got != want {
		t.Errorf("requestURL() = %q, want %q", got, want)
	}

	if _, ok := params["oauth_signature"]; ok {
		t.Error("requestURL() mutated the caller's parameter map")
	}
}
