package main

// Local stand-in for Flickr's OAuth service, for exercising the client
// without production credentials.

import (
	"context"
	"fmt"
	"net/http"

	"github.com/kelseyhightower/envconfig"

	"github.com/sgrumley/flickrauth/internal/flickrmock"
	"github.com/sgrumley/flickrauth/pkg/logger"
	"github.com/sgrumley/flickrauth/pkg/middleware"
	"github.com/sgrumley/flickrauth/pkg/web"
)

type MockConfig struct {
	Addr           string `envconfig:"MOCK_ADDR" default:":8443"`
	ConsumerKey    string `envconfig:"MOCK_CONSUMER_KEY" default:"test_consumer"`
	ConsumerSecret string `envconfig:"MOCK_CONSUMER_SECRET" default:"test_secret"`
	Fullname       string `envconfig:"MOCK_FULLNAME" default:"Mock User"`
	Username       string `envconfig:"MOCK_USERNAME" default:"mockuser"`
	NSID           string `envconfig:"MOCK_NSID" default:"99999999@N00"`
}

func main() {
	ctx := context.Background()
	log := logger.NewLogger()
	ctx = logger.AddLoggerContext(ctx, log.Logger)

	var cfg MockConfig
	if err := envconfig.Process("", &cfg); err != nil {
		logger.Fatal(ctx, "failed to load environment variables", err)
	}

	handler, err := flickrmock.NewHandler(cfg.ConsumerKey, cfg.ConsumerSecret, flickrmock.Identity{
		Fullname: cfg.Fullname,
		Username: cfg.Username,
		NSID:     cfg.NSID,
	})
	if err != nil {
		logger.Fatal(ctx, "failed to build handler", err)
	}

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)

	server := &http.Server{
		Addr:    cfg.Addr,
		Handler: middleware.LoggerMiddleware(mux, "flickrmock"),
	}

	fmt.Println("listening on localhost" + cfg.Addr)
	if err := web.ListenAndServe(ctx, server); err != nil {
		logger.Error(ctx, "server error", err)
	}
}
