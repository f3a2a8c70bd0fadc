package main

import (
	"io"
	"net/url"
	"os"
	"path/filepath"

	v1 "github.com/budgetcopain/backend/internal/controllers/v1"
	"github.com/budgetcopain/backend/internal/identity"
	"github.com/budgetcopain/backend/internal/payment"
	"github.com/budgetcopain/backend/internal/powens"
	"github.com/budgetcopain/backend/internal/router"
	"github.com/budgetcopain/backend/internal/storage"
	"github.com/budgetcopain/backend/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	dbPath, ok := os.LookupEnv("DB_PATH")
	if !ok {
		dbPath = filepath.Join("data", "budgetcopain.db")
	}

	err := os.MkdirAll(filepath.Dir(dbPath), os.ModePerm)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	backend, err := storage.Connect(dbPath)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	s := store.New(backend)
	if err := s.Load(); err != nil {
		log.Fatal().Msg(err.Error())
	}
	defer s.Close()

	co := v1.Controller{
		Store:    s,
		Identity: identityService(),
		Bank:     bankService(),
		Payment:  paymentService(),
	}

	apiURL, ok := os.LookupEnv("API_URL")
	if !ok {
		apiURL = "http://localhost:8080"
	}

	baseURL, err := url.Parse(apiURL)
	if err != nil {
		log.Fatal().Str("API_URL", apiURL).Msg("environment variable API_URL must be a valid URL")
	}

	r, teardown, err := router.Config(baseURL)
	defer teardown()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	router.AttachRoutes(co, backend, r.Group("/"))

	if err := r.Run(); err != nil {
		log.Fatal().Msg(err.Error())
	}
}

// identityService builds the identity provider client from the
// environment. It returns nil when no provider is configured, the
// authentication endpoints then report that.
func identityService() identity.Service {
	config := identity.Config{
		ClientID:     os.Getenv("OAUTH_CLIENT_ID"),
		ClientSecret: os.Getenv("OAUTH_CLIENT_SECRET"),
		AuthURL:      os.Getenv("OAUTH_AUTH_URL"),
		TokenURL:     os.Getenv("OAUTH_TOKEN_URL"),
		RedirectURL:  os.Getenv("OAUTH_REDIRECT_URL"),
		UserInfoURL:  os.Getenv("OAUTH_USERINFO_URL"),
		RevokeURL:    os.Getenv("OAUTH_REVOKE_URL"),
	}

	if config.ClientID == "" && config.TokenURL == "" {
		return nil
	}

	client, err := identity.NewClient(config)
	if err != nil {
		log.Fatal().Err(err).Msg("identity provider configuration is invalid")
	}

	return client
}

// bankService builds the Powens client from the environment. It
// returns nil when Powens is not configured.
func bankService() powens.Service {
	config := powens.Config{
		Domain:       os.Getenv("POWENS_DOMAIN"),
		ClientID:     os.Getenv("POWENS_CLIENT_ID"),
		ClientSecret: os.Getenv("POWENS_CLIENT_SECRET"),
	}

	if config.Domain == "" && config.ClientID == "" {
		return nil
	}

	client, err := powens.NewClient(config)
	if err != nil {
		log.Fatal().Err(err).Msg("Powens configuration is invalid")
	}

	return client
}

// paymentService builds the payment provider client from the
// environment. It returns nil when no provider is configured.
func paymentService() payment.Service {
	config := payment.Config{
		BaseURL: os.Getenv("PAYMENT_BASE_URL"),
		APIKey:  os.Getenv("PAYMENT_API_KEY"),
	}

	if config.BaseURL == "" && config.APIKey == "" {
		return nil
	}

	client, err := payment.NewClient(config)
	if err != nil {
		log.Fatal().Err(err).Msg("payment provider configuration is invalid")
	}

	return client
}
