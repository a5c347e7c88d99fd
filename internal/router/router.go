package router

import (
	"net/http"
	"net/url"
	"os"
	"strings"

	docs "github.com/envelope-zero/personal-budget/api"
	"github.com/envelope-zero/personal-budget/internal/controllers"
	"github.com/envelope-zero/personal-budget/internal/httputil"
	"github.com/envelope-zero/personal-budget/internal/models"
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

// This is set at build time
var version = "0.0.0"

// Config sets up the gin engine with all middlewares.
//
// The returned teardown function must be called when the engine is not
// used anymore, it unregisters the Prometheus metrics.
func Config(url *url.URL) (*gin.Engine, func(), error) {
	// Set up the router and middlewares
	r := gin.New()

	// Don’t process X-Forwarded-For header as we do not do anything with
	// client IPs
	r.ForwardedByClientIP = false

	// Send a HTTP 405 (Method not allowed) for all paths where there is
	// a handler, but not for the specific method used
	r.HandleMethodNotAllowed = true

	err := httpMetrics.register()
	if err != nil {
		return nil, func() {}, err
	}

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.Use(URLMiddleware(url))
	r.Use(MetricsMiddleware())
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{
			"error": "this HTTP method is not allowed for the endpoint you called",
		})
	})
	r.Use(accessLogger())

	if origins, ok := os.LookupEnv("CORS_ALLOW_ORIGINS"); ok {
		r.Use(corsMiddleware(strings.Fields(origins)))
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
	docs.SwaggerInfo.Title = "Personal Budget"
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Description = "A budgeting API with envelopes, expenses and transfers between envelopes."

	return r, httpMetrics.unregister, nil
}

// accessLogger logs one line per request. Client errors are logged at info
// level since they are caused by the caller.
func accessLogger() gin.HandlerFunc {
	return logger.SetLogger(
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
				Logger()
		}))
}

// corsMiddleware allows browser clients from the given origins.
func corsMiddleware(origins []string) gin.HandlerFunc {
	log.Debug().Strs("origins", origins).Msg("CORS enabled")

	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{http.MethodOptions, http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type"},
		AllowCredentials: true,
	})
}

// AttachRoutes attaches the API routes to the router group that is passed in
// Separating this from Config() allows us to attach it to different
// paths for different use cases.
func AttachRoutes(co controllers.Controller, group *gin.RouterGroup) {
	group.GET("", GetRoot)
	group.OPTIONS("", OptionsRoot)
	group.GET("/version", GetVersion)
	group.OPTIONS("/version", OptionsVersion)
	group.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// pprof performance profiles
	enablePprof, ok := os.LookupEnv("ENABLE_PPROF")
	if ok && enablePprof == "true" {
		pprof.RouteRegister(group, "debug/pprof")
	}

	group.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	co.RegisterHealthzRoutes(group.Group("/healthz"))
	co.RegisterEnvelopeRoutes(group.Group("/envelopes"))
	co.RegisterExpenseRoutes(group.Group("/envelopes/:id/expenses"))
	co.RegisterAllExpensesRoutes(group.Group("/expenses"))
	co.RegisterTransferRoutes(group.Group("/transfers"))
}

type RootResponse struct {
	Links RootLinks `json:"links"`
}

type RootLinks struct {
	Docs      string `json:"docs" example:"https://example.com/api/docs/index.html"` // Swagger API documentation
	Healthz   string `json:"healthz" example:"https://example.com/api/healthz"`      // Endpoint returning the application health
	Version   string `json:"version" example:"https://example.com/api/version"`      // Endpoint returning the version of the backend
	Envelopes string `json:"envelopes" example:"https://example.com/api/envelopes"`  // URL of the envelope collection endpoint
	Expenses  string `json:"expenses" example:"https://example.com/api/expenses"`    // URL of the collection of all expenses
	Transfers string `json:"transfers" example:"https://example.com/api/transfers"`  // URL of the transfer endpoint
}

// GetRoot returns the link list for the API root
//
//	@Summary		API root
//	@Description	Entrypoint for the API, listing all endpoints
//	@Tags			General
//	@Success		200	{object}	RootResponse
//	@Router			/ [get]
func GetRoot(c *gin.Context) {
	url := c.GetString(string(models.ContextURL))

	c.JSON(http.StatusOK, RootResponse{
		Links: RootLinks{
			Docs:      url + "/docs/index.html",
			Healthz:   url + "/healthz",
			Version:   url + "/version",
			Envelopes: url + "/envelopes",
			Expenses:  url + "/expenses",
			Transfers: url + "/transfers",
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
