package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/saulo-duarte/quizgen-lambda/internal/aiquiz"
	"github.com/saulo-duarte/quizgen-lambda/internal/config"
	_ "github.com/saulo-duarte/quizgen-lambda/docs"
)

type RouterConfig struct {
	AIQuizHandler  *aiquiz.Handler
	AllowedOrigins []string
	// RequestTimeout bounds the whole request; it should exceed the provider
	// timeout so the provider error is what the client sees.
	RequestTimeout time.Duration
}

func New(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{
		Logger:  config.Logger(),
		NoColor: true,
	}))
	r.Use(middleware.Recoverer)
	if cfg.RequestTimeout > 0 {
		r.Use(middleware.Timeout(cfg.RequestTimeout))
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		MaxAge:         300,
	}))

	r.Get("/swagger/*", httpSwagger.WrapHandler)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		config.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Mount("/", aiquiz.Routes(cfg.AIQuizHandler))

	return r
}
