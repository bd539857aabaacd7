package api

import (
	"fmt"
	"time"

	"github.com/beka-birhanu/vinom-paradox/api/i"
	service_i "github.com/beka-birhanu/vinom-paradox/service/i"
	"github.com/gin-gonic/gin"
)

// Router manages the HTTP server and its controllers.
type Router struct {
	addr        string
	baseURL     string
	controllers []i.Controller
	logger      service_i.Logger
}

// Config holds configuration settings for creating a new Router instance.
type Config struct {
	Addr        string // Address to listen on
	BaseURL     string // Base URL for API routes
	Controllers []i.Controller
	Logger      service_i.Logger // Request logger; nil disables request logging
}

// NewRouter creates a new Router instance with the given configuration.
func NewRouter(config Config) *Router {
	return &Router{
		addr:        config.Addr,
		baseURL:     config.BaseURL,
		controllers: config.Controllers,
		logger:      config.Logger,
	}
}

// Handler builds the gin engine with every controller registered under
// baseURL/v1.
func (r *Router) Handler() *gin.Engine {
	router := gin.New()
	if r.logger != nil {
		router.Use(requestLogger(r.logger))
	}
	router.Use(gin.Recovery())

	api := router.Group(r.baseURL)
	{
		v1 := api.Group("/v1")
		{
			for _, c := range r.controllers {
				c.Register(v1)
			}
		}
	}

	return router
}

// Run starts the HTTP server.
func (r *Router) Run() error {
	return r.Handler().Run(r.addr)
}

func requestLogger(logger service_i.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		msg := fmt.Sprintf("%s %s %d %s", ctx.Request.Method, ctx.Request.URL.Path, ctx.Writer.Status(), time.Since(start))
		if ctx.Writer.Status() >= 500 {
			logger.Error(msg)
			return
		}
		logger.Info(msg)
	}
}
