package api

import (
	"github.com/cavetechlabs/website-backend/database"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database) *routeHandlers {
	return &routeHandlers{
		siteHandler:     newSiteHandler(database.ProjectRepo(), database.PersonRepo(), database.SettingsRepo()),
		personHandler:   newPersonHandler(database.PersonRepo(), database.ProjectRepo()),
		projectHandler:  newProjectHandler(database.ProjectRepo(), database.CategoryRepo()),
		categoryHandler: newCategoryHandler(database.CategoryRepo()),
		settingsHandler: newSettingsHandler(database.SettingsRepo()),
	}
}
