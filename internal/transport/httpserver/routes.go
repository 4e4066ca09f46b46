package httpserver

import (
	"net/http"
	"time"

	"kittens-api/internal/config"
	_ "kittens-api/internal/docs"
	"kittens-api/internal/transport/httpserver/handler"
	authmw "kittens-api/internal/transport/httpserver/middleware"
	"kittens-api/pkg/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

func NewRouter(cfg config.Config, handlers *handler.Handlers, users authmw.UserLookup, log logger.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(authmw.RequestLogger(log))
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(authmw.NewCORS(cfg.AllowedOrigins))

	if cfg.SwaggerEnabled {
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Health)

		r.Post("/register", handlers.Register)
		r.Post("/token", handlers.ObtainToken)
		r.Post("/token/refresh", handlers.RefreshToken)

		r.Get("/breeds", handlers.ListBreeds)
		r.Get("/kittens", handlers.ListKittens)
		r.Post("/kittens/by-breed", handlers.KittensByBreed)
		r.Post("/kittens/detail", handlers.KittenDetail)

		auth := authmw.NewBearerAuth(handlers.Tokens, users, log)
		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware)

			r.Post("/kittens", handlers.CreateKitten)
			r.Put("/kittens", handlers.UpdateKitten)
			r.Delete("/kittens", handlers.DeleteKitten)

			r.Post("/ratings", handlers.RateKitten)
		})
	})

	return r
}
