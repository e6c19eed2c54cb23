package router

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/jwalitptl/clinic-api/internal/handler"
	promhandler "github.com/jwalitptl/clinic-api/internal/handler/prometheus"
	"github.com/jwalitptl/clinic-api/internal/middleware"
	"github.com/jwalitptl/clinic-api/pkg/httputil"
	"github.com/jwalitptl/clinic-api/pkg/metrics"
)

type Handler interface {
	RegisterRoutes(*gin.RouterGroup)
}

type Config struct {
	RateLimitRPS   float64
	RateLimitBurst int
	CORSConfig     middleware.CORSConfig
	ReleaseMode    bool
}

type Router struct {
	engine       *gin.Engine
	authH        Handler
	doctorH      Handler
	appointmentH Handler
	promH        *promhandler.Handler
	h            *handler.Handler
}

// allowedMethods backs the 405 contract: an unsupported method on a
// known path answers with an Allow header listing what the path accepts.
var allowedMethods = map[string][]string{
	"/appointments":          {http.MethodGet, http.MethodPatch, http.MethodPost},
	"/appointments/schedule": {http.MethodGet},
	"/doctors":               {http.MethodGet},
	"/login":                 {http.MethodPost},
	"/healthz":               {http.MethodGet},
	"/metrics":               {http.MethodGet},
}

func NewRouter(
	authH Handler,
	doctorH Handler,
	appointmentH Handler,
	h *handler.Handler,
	registry *prometheus.Registry,
	m *metrics.Metrics,
	config Config,
) *Router {
	if config.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.HandleMethodNotAllowed = true

	engine.Use(
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Recovery(),
		middleware.Metrics(m),
		middleware.CORS(config.CORSConfig),
	)

	rateLimiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
		RPS:   config.RateLimitRPS,
		Burst: config.RateLimitBurst,
	})
	engine.Use(rateLimiter.RateLimit())

	return &Router{
		engine:       engine,
		authH:        authH,
		doctorH:      doctorH,
		appointmentH: appointmentH,
		promH:        promhandler.New(registry),
		h:            h,
	}
}

func (r *Router) Setup() {
	root := r.engine.Group("")
	r.authH.RegisterRoutes(root)
	r.doctorH.RegisterRoutes(root)
	r.appointmentH.RegisterRoutes(root)

	r.engine.GET("/healthz", r.h.LivenessCheck)
	r.engine.GET("/metrics", r.promH.Handler())

	r.engine.NoMethod(func(c *gin.Context) {
		if methods, ok := allowedMethods[c.Request.URL.Path]; ok {
			c.Header("Allow", strings.Join(methods, ", "))
		}
		c.JSON(http.StatusMethodNotAllowed, httputil.ErrorBody{
			Message: fmt.Sprintf("Method %s not allowed", c.Request.Method),
		})
	})

	r.engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, httputil.ErrorBody{Message: "route not found"})
	})
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
