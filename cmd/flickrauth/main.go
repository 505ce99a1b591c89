package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/sgrumley/flickrauth/pkg/config"
	"github.com/sgrumley/flickrauth/pkg/logger"
	"github.com/sgrumley/flickrauth/pkg/oauth1"
	"github.com/sgrumley/flickrauth/pkg/presenter"
	"github.com/sgrumley/flickrauth/pkg/web"
)

func main() {
	perm := flag.String("perms", "read", "access level to request: read, write or delete")
	envFile := flag.String("env", "", "optional dotenv file with the consumer credentials")
	flag.Parse()

	ctx := context.Background()
	log := logger.NewLogger()
	ctx = logger.AddLoggerContext(ctx, log.Logger)

	permission, ok := parsePermission(*perm)
	if !ok {
		logger.Fatal(ctx, "invalid -perms value", fmt.Errorf("got %q, want read, write or delete", *perm))
	}

	env, err := loadEnv(*envFile)
	if err != nil {
		logger.Fatal(ctx, "failed to load environment config", err)
	}

	endpoints, err := env.Endpoints()
	if err != nil {
		logger.Fatal(ctx, "failed to load endpoints config", err)
	}

	httpClient := &http.Client{Timeout: 30 * time.Second}
	if env.ServerCert != "" {
		httpClient, err = web.NewSSLClient(env.ServerCert)
		if err != nil {
			logger.Fatal(ctx, "failed to build TLS client", err)
		}
	}

	client := oauth1.NewClient(
		env.ConsumerKey,
		env.ConsumerSecret,
		env.CallbackURL,
		endpoints,
		httpClient,
		presenter.New(env.ListenAddr),
	)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()

	access, err := client.Authorize(ctx, permission)
	if err != nil {
		logger.Error(ctx, "authorization failed", err)
		os.Exit(1)
	}

	logger.Info(ctx, "authorized",
		slog.String("fullname", access.User.Fullname),
		slog.String("username", access.User.Username),
		slog.String("user_nsid", access.User.NSID),
		slog.String("oauth_token", access.Token.Token),
		slog.String("oauth_token_secret", access.Token.Secret),
	)
}

func loadEnv(envFile string) (config.EnvVar, error) {
	if envFile != "" {
		return config.LoadEnvVarFile(envFile)
	}
	return config.LoadEnvVar()
}

func parsePermission(s string) (oauth1.Permission, bool) {
	switch oauth1.Permission(s) {
	case oauth1.PermissionRead, oauth1.PermissionWrite, oauth1.PermissionDelete:
		return oauth1.Permission(s), true
	}
	return "", false
}
