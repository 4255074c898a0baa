package httpserver

import (
	"database/sql"
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"personal-assistant/internal/model"
	"personal-assistant/internal/nlu"
	"personal-assistant/internal/suggest"
	"personal-assistant/pkg/datemath"
	"personal-assistant/pkg/gcalendar"
	"personal-assistant/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment model.Environment

	// Assistant domain
	db         *sql.DB
	processor  *nlu.Processor
	suggestCfg suggest.Config
	calendar   *gcalendar.Client // may be nil
	dates      *datemath.Parser
	cacheSize  int
	timezone   string

	// Cross-cutting
	rateLimitRPS   float64
	rateLimitBurst int

	shutdownTimeout time.Duration
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment model.Environment

	DB         *sql.DB
	Processor  *nlu.Processor
	SuggestCfg suggest.Config
	Calendar   *gcalendar.Client
	Dates      *datemath.Parser
	CacheSize  int
	Timezone   string

	RateLimitRPS   float64
	RateLimitBurst int

	ShutdownTimeout time.Duration
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		db:              cfg.DB,
		processor:       cfg.Processor,
		suggestCfg:      cfg.SuggestCfg,
		calendar:        cfg.Calendar,
		dates:           cfg.Dates,
		cacheSize:       cfg.CacheSize,
		timezone:        cfg.Timezone,
		rateLimitRPS:    cfg.RateLimitRPS,
		rateLimitBurst:  cfg.RateLimitBurst,
		shutdownTimeout: cfg.ShutdownTimeout,
	}
	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = 10 * time.Second
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.db == nil {
		return errors.New("db is required")
	}
	if srv.processor == nil {
		return errors.New("nlu processor is required")
	}
	if srv.dates == nil {
		return errors.New("date parser is required")
	}
	return nil
}
