package router

import (
	"net/http"
	"net/url"
	"os"
	"strings"

	docs "github.com/budgetcopain/backend/api"
	"github.com/budgetcopain/backend/internal/controllers/healthz"
	v1 "github.com/budgetcopain/backend/internal/controllers/v1"
	"github.com/budgetcopain/backend/internal/httputil"
	"github.com/budgetcopain/backend/internal/storage"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// This is set at build time via ldflags.
var version = "0.0.0"

// ContextURL is the key the API base URL is stored under in the gin
// context.
const ContextURL = "budgetcopain-url"

func URLMiddleware(url *url.URL) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ContextURL, url.String())
		c.Next()
	}
}

// Config sets up the router with all middlewares. The returned teardown
// function must be called before the router is discarded, it
// unregisters the Prometheus metrics so that a new router can be set
// up.
func Config(url *url.URL) (*gin.Engine, func(), error) {
	// Set up the router and middlewares
	r := gin.New()

	// Don’t process X-Forwarded-For header as we do not do anything with
	// client IPs
	r.ForwardedByClientIP = false

	// Send a HTTP 405 (Method not allowed) for all paths where there is
	// a handler, but not for the specific method used
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.Use(URLMiddleware(url))
	r.Use(MetricsMiddleware())
	r.Use(logger.SetLogger(
		logger.WithDefaultLevel(zerolog.InfoLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		logger.WithLogger(func(c *gin.Context, l zerolog.Logger) zerolog.Logger {
			return l.With().
				Str("request-id", requestid.Get(c)).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Int("status", c.Writer.Status()).
				Int("size", c.Writer.Size()).
				Str("user-agent", c.Request.UserAgent()).
				Logger()
		})))

	// CORS settings
	allowOrigins, ok := os.LookupEnv("CORS_ALLOW_ORIGINS")
	if ok {
		log.Debug().Str("CORS Allowed Origins", allowOrigins).Msg("Router")

		r.Use(cors.New(cors.Config{
			AllowOrigins:     strings.Fields(allowOrigins),
			AllowMethods:     []string{"OPTIONS", "GET", "POST", "PATCH", "PUT", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
			AllowCredentials: true,
		}))
	}

	// Disable the gin debug route printing as it clutters logs (and test logs)
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, numHandlers int) {}

	// Don’t trust any proxy. We do not process any client IPs,
	// therefore we don’t need to trust anyone here.
	_ = r.SetTrustedProxies([]string{})

	log.Debug().Str("API Base URL", url.String()).Str("Host", url.Host).Str("Path", url.Path).Msg("Router")
	log.Info().Str("version", version).Msg("Router")

	docs.SwaggerInfo.Host = url.Host
	docs.SwaggerInfo.BasePath = url.Path
	docs.SwaggerInfo.Title = "BudgetCopain"
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Description = "The backend for BudgetCopain, a personal budgeting app."

	err := registerPrometheusMetrics()
	if err != nil {
		return nil, func() {}, err
	}

	return r, func() { unregisterPrometheusMetrics() }, nil
}

// AttachRoutes attaches the API routes to the router group that is
// passed in. Separating this from Config() allows attaching the routes
// to different paths for different use cases.
func AttachRoutes(co v1.Controller, backend storage.Backend, group *gin.RouterGroup) {
	group.GET("", GetRoot)
	group.OPTIONS("", OptionsRoot)
	group.GET("/version", GetVersion)
	group.OPTIONS("/version", OptionsVersion)

	// pprof performance profiles
	enablePprof, ok := os.LookupEnv("ENABLE_PPROF")
	if ok && enablePprof == "true" {
		pprof.RouteRegister(group, "debug/pprof")
	}

	group.GET("/metrics", gin.WrapH(promhttp.Handler()))
	group.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	healthz.RegisterRoutes(group.Group("/healthz"), backend)

	// API v1 setup
	v1Group := group.Group("/v1")
	{
		v1Group.GET("", GetV1)
		v1Group.OPTIONS("", OptionsV1)
	}

	co.RegisterUserRoutes(v1Group.Group("/user"))
	co.RegisterTransactionRoutes(v1Group.Group("/transactions"))
	co.RegisterCategoryRoutes(v1Group.Group("/categories"))
	co.RegisterBudgetRoutes(v1Group.Group("/budgets"))
	co.RegisterMonthRoutes(v1Group.Group("/months"))
	co.RegisterAuthRoutes(v1Group.Group("/auth"))
	co.RegisterSessionRoutes(v1Group.Group("/session"))
	co.RegisterBankRoutes(v1Group.Group("/bank"))
	co.RegisterSubscriptionRoutes(v1Group.Group("/subscription"))
}

type RootResponse struct {
	Links RootLinks `json:"links"`
}

type RootLinks struct {
	Docs    string `json:"docs" example:"https://example.com/api/docs/index.html"` // Swagger API documentation
	Healthz string `json:"healthz" example:"https://example.com/api/healthz"`      // Health check endpoint
	Metrics string `json:"metrics" example:"https://example.com/api/metrics"`      // Endpoint returning Prometheus metrics
	Version string `json:"version" example:"https://example.com/api/version"`      // Endpoint returning the version of the backend
	V1      string `json:"v1" example:"https://example.com/api/v1"`                // List endpoint for all v1 endpoints
}

// GetRoot returns the link list for the API root
//
//	@Summary		API root
//	@Description	Entrypoint for the API, listing all endpoints
//	@Tags			General
//	@Success		200	{object}	RootResponse
//	@Router			/ [get]
func GetRoot(c *gin.Context) {
	url := c.GetString(ContextURL)

	c.JSON(http.StatusOK, RootResponse{
		Links: RootLinks{
			Docs:    url + "/docs/index.html",
			Healthz: url + "/healthz",
			Metrics: url + "/metrics",
			Version: url + "/version",
			V1:      url + "/v1",
		},
	})
}

type VersionResponse struct {
	Data VersionObject `json:"data"` // Data object for the version endpoint
}
type VersionObject struct {
	Version string `json:"version" example:"1.1.0"` // the running version of the backend
}

// GetVersion returns the API version object
//
//	@Summary		API version
//	@Description	Returns the software version of the API
//	@Tags			General
//	@Success		200	{object}	VersionResponse
//	@Router			/version [get]
func GetVersion(c *gin.Context) {
	c.JSON(http.StatusOK, VersionResponse{
		Data: VersionObject{
			Version: version,
		},
	})
}

// OptionsRoot returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			General
//	@Success		204
//	@Router			/ [options]
func OptionsRoot(c *gin.Context) {
	httputil.OptionsGet(c)
}

// OptionsVersion returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			General
//	@Success		204
//	@Router			/version [options]
func OptionsVersion(c *gin.Context) {
	httputil.OptionsGet(c)
}

type V1Response struct {
	Links V1Links `json:"links"`
}

type V1Links struct {
	User         string `json:"user" example:"https://example.com/api/v1/user"`                 // The user configuration
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions"` // Transaction endpoints
	Categories   string `json:"categories" example:"https://example.com/api/v1/categories"`     // Category endpoints
	Budgets      string `json:"budgets" example:"https://example.com/api/v1/budgets"`           // Monthly budget endpoints
	Months       string `json:"months" example:"https://example.com/api/v1/months"`             // Monthly aggregate data
	Auth         string `json:"auth" example:"https://example.com/api/v1/auth"`                 // Authentication endpoints
	Session      string `json:"session" example:"https://example.com/api/v1/session"`           // The session
	Bank         string `json:"bank" example:"https://example.com/api/v1/bank"`                 // Bank connection endpoints
	Subscription string `json:"subscription" example:"https://example.com/api/v1/subscription"` // Subscription endpoints
}

// GetV1 returns the list of v1 endpoints
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			General
//	@Success		200	{object}	V1Response
//	@Router			/v1 [get]
func GetV1(c *gin.Context) {
	url := c.GetString(ContextURL) + "/v1"

	c.JSON(http.StatusOK, V1Response{
		Links: V1Links{
			User:         url + "/user",
			Transactions: url + "/transactions",
			Categories:   url + "/categories",
			Budgets:      url + "/budgets",
			Months:       url + "/months",
			Auth:         url + "/auth",
			Session:      url + "/session",
			Bank:         url + "/bank",
			Subscription: url + "/subscription",
		},
	})
}

// OptionsV1 returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			General
//	@Success		204
//	@Router			/v1 [options]
func OptionsV1(c *gin.Context) {
	httputil.OptionsGet(c)
}
