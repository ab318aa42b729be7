package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/cavetechlabs/website-backend/database"
	"github.com/cavetechlabs/website-backend/models"
)

type siteHandler struct {
	responder    Responder
	logger       zerolog.Logger
	projectRepo  *database.ProjectRepo
	personRepo   *database.PersonRepo
	settingsRepo *database.SettingsRepo
}

func newSiteHandler(projectRepo *database.ProjectRepo, personRepo *database.PersonRepo, settingsRepo *database.SettingsRepo) siteHandler {
	logger := log.With().Str("handlerName", "siteHandler").Logger()

	return siteHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		projectRepo:  projectRepo,
		personRepo:   personRepo,
		settingsRepo: settingsRepo,
	}
}

// HomeResponse carries the home page content: the newest featured projects
// and the member directory.
type HomeResponse struct {
	FeaturedProjects []*models.Project `json:"featured_projects"`
	People           []*models.Person  `json:"people"`
}

// AboutResponse carries the singleton site settings backing the about page.
type AboutResponse struct {
	Settings *models.SiteSettings `json:"settings"`
}

// home serves the home page content
func (h siteHandler) home() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		featured, err := h.projectRepo.FindFeatured()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find featured projects", "projects", err))
			return
		}

		people, err := h.personRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find people", "people", err))
			return
		}

		h.responder.WriteJSON(w, HomeResponse{
			FeaturedProjects: featured,
			People:           people,
		})
	}
}

// about serves the about page content. The settings row is created with
// defaults on first access, so this endpoint never 404s.
func (h siteHandler) about() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		settings, err := h.settingsRepo.Get()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("load", "site settings", err))
			return
		}

		h.responder.WriteJSON(w, AboutResponse{Settings: settings})
	}
}
