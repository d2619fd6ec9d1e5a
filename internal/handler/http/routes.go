package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.root)
		r.Post("/register", h.register)
		r.Get("/token", h.token)
		r.Get("/users/{id}", h.getUser)
		r.Get("/postcodes", h.listRecords)
		r.Get("/{postcode}", h.getRecord)
	})

	// record mutations require a valid bearer token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/postcode", h.createRecord)
		r.Put("/postcode", h.updateRecord)
		r.Delete("/postcode", h.deleteRecord)
	})

	return router
}
