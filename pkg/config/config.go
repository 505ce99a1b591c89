package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/sgrumley/flickrauth/pkg/oauth1"
)

// EnvVar holds the consumer credentials and the loopback listener settings.
// The consumer key and secret come from the Flickr app registration; the
// callback URL must match the one registered there.
type EnvVar struct {
	ConsumerKey    string `envconfig:"FLICKR_CONSUMER_KEY" required:"true"`
	ConsumerSecret string `envconfig:"FLICKR_CONSUMER_SECRET" required:"true"`
	CallbackURL    string `envconfig:"FLICKR_CALLBACK_URL" default:"http://localhost:8080/callback"`
	ListenAddr     string `envconfig:"FLICKR_LISTEN_ADDR" default:":8080"`
	EndpointsFile  string `envconfig:"FLICKR_ENDPOINTS_FILE" default:""`
	ServerCert     string `envconfig:"FLICKR_SERVER_CERT" default:""`
}

func LoadEnvVar() (EnvVar, error) {
	var c EnvVar
	if err := envconfig.Process("", &c); err != nil {
		return c, fmt.Errorf("failed to load environment variables: %w", err)
	}
	return c, nil
}

// LoadEnvVarFile reads a dotenv file before processing the environment, so a
// local .env can stand in for exported variables during development.
func LoadEnvVarFile(path string) (EnvVar, error) {
	if err := godotenv.Load(path); err != nil {
		return EnvVar{}, fmt.Errorf("failed to read env file: %w", err)
	}
	return LoadEnvVar()
}

// EndpointsDocument is the YAML override for the three service URLs, used to
// point the client at a non-production service such as the local mock.
type EndpointsDocument struct {
	RequestTokenURL string `yaml:"RequestTokenURL"`
	AuthorizeURL    string `yaml:"AuthorizeURL"`
	AccessTokenURL  string `yaml:"AccessTokenURL"`
}

// Endpoints resolves the service URLs: the YAML document named by the env
// config when present, Flickr production otherwise.
func (c EnvVar) Endpoints() (oauth1.Endpoints, error) {
	if c.EndpointsFile == "" {
		return oauth1.FlickrEndpoints(), nil
	}
	doc, err := LoadYAMLDocument[EndpointsDocument](c.EndpointsFile)
	if err != nil {
		return oauth1.Endpoints{}, err
	}
	return oauth1.Endpoints{
		RequestTokenURL: doc.RequestTokenURL,
		AuthorizeURL:    doc.AuthorizeURL,
		AccessTokenURL:  doc.AccessTokenURL,
	}, nil
}

func LoadYAMLDocument[T any](path string) (*T, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("given filepath does not contain config: %w", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	return GetConfig[T](bytes.NewReader(b))
}

func GetConfig[T any](reader io.Reader) (*T, error) {
	var cfg T
	decoder := yaml.NewDecoder(reader)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("the config content is malformed: %w", err)
	}

	return &cfg, nil
}
