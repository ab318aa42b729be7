package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires the public read surface and the admin mutation surface.
// Authentication on /api/admin is delegated to the deployment's admin
// gateway; this service enforces the data invariants either way.
func setupRoutes(r chi.Router, handlers *routeHandlers) {
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		// Public site endpoints
		r.Get("/api/home", handlers.siteHandler.home())
		r.Get("/api/about", handlers.siteHandler.about())
		r.Get("/api/people", handlers.personHandler.listPeople())
		r.Get("/api/people/{personID}", handlers.personHandler.getPerson())
		r.Get("/api/projects", handlers.projectHandler.listProjects())
		r.Get("/api/projects/{slug}", handlers.projectHandler.getProject())
		r.Get("/api/categories", handlers.categoryHandler.listCategories())

		// Admin mutation endpoints
		r.Post("/api/admin/people", handlers.personHandler.createPerson())
		r.Put("/api/admin/people/{personID}", handlers.personHandler.updatePerson())
		r.Delete("/api/admin/people/{personID}", handlers.personHandler.deletePerson())

		r.Post("/api/admin/categories", handlers.categoryHandler.createCategory())
		r.Put("/api/admin/categories/{categoryID}", handlers.categoryHandler.updateCategory())
		r.Delete("/api/admin/categories/{categoryID}", handlers.categoryHandler.deleteCategory())

		r.Post("/api/admin/projects", handlers.projectHandler.createProject())
		r.Put("/api/admin/projects/{projectID}", handlers.projectHandler.updateProject())
		r.Delete("/api/admin/projects/{projectID}", handlers.projectHandler.deleteProject())

		r.Get("/api/admin/slug-suggestion", handlers.projectHandler.suggestSlug())

		r.Get("/api/admin/settings", handlers.settingsHandler.getSettings())
		r.Put("/api/admin/settings", handlers.settingsHandler.updateSettings())
		r.Delete("/api/admin/settings", handlers.settingsHandler.deleteSettings())
	})
}
