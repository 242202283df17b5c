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
	router.Use(h.withLocalOrigin)
	router.Use(middleware.Compress(5, "application/json", "text/plain"))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Route("/api", func(r chi.Router) {
		r.Get("/version", h.getVersion)

		r.Route("/session", func(r chi.Router) {
			r.Get("/", h.getSession)
			r.Post("/unlock", h.unlock)
			r.Post("/lock", h.lock)
			r.Post("/edit/{id}", h.beginEdit)
			r.Delete("/edit", h.cancelEdit)
			r.Post("/save", h.save)
		})

		r.Route("/notes", func(r chi.Router) {
			r.Get("/", h.listNotes)
			r.Post("/", h.createNote)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.getNote)
				r.Put("/", h.updateNote)
				r.Delete("/", h.deleteNote)
				r.Get("/export", h.exportNote)
			})
		})

		r.Get("/export", h.exportAll)

		r.Route("/folders", func(r chi.Router) {
			r.Get("/", h.listFolders)
			r.Post("/", h.addFolder)
		})

		r.Route("/theme", func(r chi.Router) {
			r.Get("/", h.getTheme)
			r.Put("/", h.setTheme)
		})
	})

	return router
}
