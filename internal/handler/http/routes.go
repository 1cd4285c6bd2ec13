package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, h.withMetrics, middleware.Recoverer)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/health", h.health)
	router.Get("/version", h.getServerVersion)
	router.Method(http.MethodGet, "/metrics", h.metrics.handler())

	router.Route("/cards", func(r chi.Router) {
		r.Get("/", h.getCards)
		r.Get("/{id}", h.getCardByID)
		r.Get("/rarity/{rarity}", h.getCardsByRarity)
		r.Get("/name/{name}", h.getCardByName)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Post("/", h.addCard)
			r.Put("/", h.updateCard)
			r.Delete("/", h.deleteCard)
		})
	})

	router.Route("/users", func(r chi.Router) {
		r.Get("/", h.getUsers)
		r.Get("/{id}", h.getUserByID)
		r.Get("/username/{username}", h.getUserByUsername)
		r.Post("/", h.register)
		r.Post("/auth", h.login)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Put("/", h.updateUser)
			r.Delete("/", h.deleteUser)
		})
	})

	router.Route("/decks", func(r chi.Router) {
		r.Get("/", h.getDecks)
		r.Get("/{id}", h.getDeckByID)
		r.Get("/author/{authorId}", h.getDecksByAuthor)
		r.Get("/name/{name}", h.getDecksByName)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Post("/", h.addDeck)
			r.Put("/", h.updateDeck)
			r.Delete("/", h.deleteDeck)
		})
	})

	router.NotFound(h.notFound)
	router.MethodNotAllowed(CheckHTTPMethod())

	return router
}
