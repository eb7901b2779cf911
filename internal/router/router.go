package router

import (
	"errors"
	"net/http"

	docs "github.com/UnimationKorea/finance-church-personal/api"
	"github.com/UnimationKorea/finance-church-personal/internal/auth"
	"github.com/UnimationKorea/finance-church-personal/internal/config"
	"github.com/UnimationKorea/finance-church-personal/internal/controllers"
	"github.com/UnimationKorea/finance-church-personal/internal/httperror"
	"github.com/UnimationKorea/finance-church-personal/internal/httputil"
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

// This is set at build time, see Makefile.
var version = "0.0.0"

var (
	errMethodNotAllowed = errors.New("this HTTP method is not allowed for the endpoint you called")
	errNoRoute          = errors.New("there is no endpoint at this path")
)

// Config creates the router with all middlewares.
//
// The returned teardown function must be called when the router is not used anymore.
func Config(cfg config.Config) (*gin.Engine, func(), error) {
	err := registerMetrics()
	if err != nil {
		return nil, func() {}, err
	}

	teardown := func() {
		if !unregisterMetrics() {
			log.Error().Msg("could not unregister prometheus metrics")
		}
	}

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
	r.Use(URLMiddleware(cfg.APIURL))
	r.Use(MetricsMiddleware())
	r.NoMethod(func(c *gin.Context) {
		httperror.Abort(c, http.StatusMethodNotAllowed, errMethodNotAllowed)
	})
	r.NoRoute(func(c *gin.Context) {
		httperror.Abort(c, http.StatusNotFound, errNoRoute)
	})
	r.Use(logger.SetLogger(
		logger.WithDefaultLevel(zerolog.InfoLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		logger.WithLogger(func(c *gin.Context, logger zerolog.Logger) zerolog.Logger {
			return logger.With().
				Str("request-id", requestid.Get(c)).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Int("status", c.Writer.Status()).
				Int("size", c.Writer.Size()).
				Str("user-agent", c.Request.UserAgent()).
				Logger()
		})))

	// CORS settings
	if len(cfg.CORSAllowOrigins) > 0 {
		log.Debug().Strs("CORS Allowed Origins", cfg.CORSAllowOrigins).Msg("Router")

		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORSAllowOrigins,
			AllowMethods:     []string{"OPTIONS", "GET", "POST", "PUT", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", controllers.IdempotencyHeader},
			ExposeHeaders:    []string{"Content-Disposition"},
			AllowCredentials: true,
		}))
	}

	// pprof performance profiles
	if cfg.EnablePprof {
		pprof.Register(r)
	}

	// Disable the gin debug route printing as it clutters logs (and test logs)
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, numHandlers int) {}

	// Don’t trust any proxy. We do not process any client IPs,
	// therefore we don’t need to trust anyone here.
	_ = r.SetTrustedProxies([]string{})

	log.Debug().Str("API Base URL", cfg.APIURL.String()).Str("Host", cfg.APIURL.Host).Str("Path", cfg.APIURL.Path).Msg("Router")
	log.Info().Str("version", version).Msg("Router")

	docs.SwaggerInfo.Host = cfg.APIURL.Host
	docs.SwaggerInfo.BasePath = cfg.APIURL.Path
	docs.SwaggerInfo.Title = "Department Ledger"
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Description = "The backend for the department ledgers of the church education division. It keeps the transactions, ministry activities and prayer requests of every department."

	return r, teardown, nil
}

// AttachRoutes attaches the API routes to the router group that is passed in.
// Separating this from Config() allows us to attach it to different
// paths for different use cases.
func AttachRoutes(co controllers.Controller, group *gin.RouterGroup) {
	group.GET("", GetRoot)
	group.OPTIONS("", OptionsRoot)
	group.GET("/version", GetVersion)
	group.OPTIONS("/version", OptionsVersion)
	group.GET("/metrics", gin.WrapH(promhttp.Handler()))
	group.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	co.RegisterHealthzRoutes(group.Group("/healthz"))
	co.RegisterLookupRoutes(group)
	co.RegisterAuthRoutes(group.Group("/auth"))

	protected := auth.Middleware(co.Tokens, co.RequireAuth)
	co.RegisterTransactionRoutes(group.Group("/transactions", protected))
	co.RegisterMinistryItemRoutes(group.Group("/ministry-items", protected))
	co.RegisterExportRoutes(group.Group("/export", protected))
	co.RegisterImportRoutes(group.Group("/import", protected))
	co.RegisterAnalyzeRoutes(group.Group("/ai/analyze", protected))
}

type RootResponse struct {
	Links RootLinks `json:"links"`
}

type RootLinks struct {
	Docs          string `json:"docs" example:"https://example.com/api/docs/index.html"`         // Swagger API documentation
	Healthz       string `json:"healthz" example:"https://example.com/api/healthz"`              // Healthz endpoint
	Version       string `json:"version" example:"https://example.com/api/version"`              // Endpoint returning the version of the backend
	Metrics       string `json:"metrics" example:"https://example.com/api/metrics"`              // Endpoint returning Prometheus metrics
	Departments   string `json:"departments" example:"https://example.com/api/departments"`      // All departments
	Categories    string `json:"categories" example:"https://example.com/api/categories"`        // Allowed categories by kind
	Auth          string `json:"auth" example:"https://example.com/api/auth"`                    // Department login, append the department
	Transactions  string `json:"transactions" example:"https://example.com/api/transactions"`    // Transactions, append the department
	MinistryItems string `json:"ministryItems" example:"https://example.com/api/ministry-items"` // Ministry items, append the department
	Export        string `json:"export" example:"https://example.com/api/export"`                // CSV export
	Import        string `json:"import" example:"https://example.com/api/import"`                // CSV import
	Analyze       string `json:"analyze" example:"https://example.com/api/ai/analyze"`           // Commentary on records
}

// GetRoot returns the link list for the API root
//
//	@Summary		API root
//	@Description	Entrypoint for the API, listing all endpoints
//	@Tags			General
//	@Success		200	{object}	RootResponse
//	@Router			/ [get]
func GetRoot(c *gin.Context) {
	url := httputil.BaseURL(c)

	c.JSON(http.StatusOK, RootResponse{
		Links: RootLinks{
			Docs:          url + "/docs/index.html",
			Healthz:       url + "/healthz",
			Version:       url + "/version",
			Metrics:       url + "/metrics",
			Departments:   url + "/departments",
			Categories:    url + "/categories",
			Auth:          url + "/auth",
			Transactions:  url + "/transactions",
			MinistryItems: url + "/ministry-items",
			Export:        url + "/export",
			Import:        url + "/import",
			Analyze:       url + "/ai/analyze",
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
