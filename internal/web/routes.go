package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kozaktomas/photo-gallery/internal/web/handlers"
	"github.com/kozaktomas/photo-gallery/internal/web/static"
)

func (s *Server) setupRoutes() {
	galleryHandler := handlers.NewGalleryHandler(s.sessions, s.config)
	searchHandler := handlers.NewSearchHandler(s.sessions, s.config.Web.PageSize)
	exportHandler := handlers.NewExportHandler(s.sessions)
	shareHandler := handlers.NewShareHandler()

	s.router.Get("/api/v1/health", handlers.HealthCheck)

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Get("/gallery", galleryHandler.Get)
		r.Get("/fields", galleryHandler.Fields)
		r.Get("/search", searchHandler.Search)
		r.Get("/export.csv", exportHandler.Get)
		r.Post("/share", shareHandler.Create)
	})

	s.router.Get("/s/{id}", shareHandler.Redirect)

	// Front-end: the static single page that drives the API.
	s.router.Handle("/*", http.FileServer(static.GetFileSystem()))
}
