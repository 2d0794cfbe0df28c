package routes

import (
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/racketclub/club-system/handlers"
	"github.com/racketclub/club-system/middleware"
	"github.com/racketclub/club-system/models"
)

type Handlers struct {
	Auth       *handlers.AuthHandler
	Tournament *handlers.TournamentHandler
	Game       *handlers.GameHandler
	WebSocket  *handlers.WebSocketHandler
}

func InitRoutes(h Handlers, jwtSecret []byte) *chi.Mux {
	router := chi.NewRouter()

	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Post("/users/signup", h.Auth.SignUp)
	router.Post("/users/signin", h.Auth.SignIn)

	router.Route("/tournaments", func(r chi.Router) {
		// Публичные маршруты для просмотра турниров
		r.Get("/", h.Tournament.List)
		r.Get("/{id}", h.Tournament.Get)

		// Защищенные маршруты только для организаторов
		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(jwtSecret))
			r.Use(middleware.Authorize(string(models.RoleOrganizer), string(models.RoleAdmin)))

			r.Post("/", h.Tournament.Create)
			r.Delete("/{id}", h.Tournament.Delete)
			r.Put("/{id}/poster", h.Tournament.UploadPoster)
		})

		// Запись результатов доступна всем авторизованным участникам
		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(jwtSecret))
			r.Post("/{id}/games", h.Game.RecordResult)
		})
	})

	router.Get("/ws/tournaments/{id}", h.WebSocket.ServeWs)

	return router
}
