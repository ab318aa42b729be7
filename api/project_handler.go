package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/cavetechlabs/website-backend/database"
	"github.com/cavetechlabs/website-backend/errs"
	"github.com/cavetechlabs/website-backend/models"
)

type projectHandler struct {
	responder    Responder
	logger       zerolog.Logger
	projectRepo  *database.ProjectRepo
	categoryRepo *database.CategoryRepo
}

func newProjectHandler(projectRepo *database.ProjectRepo, categoryRepo *database.CategoryRepo) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		projectRepo:  projectRepo,
		categoryRepo: categoryRepo,
	}
}

// ProjectCatalog represents the project listing with the category filter bar
type ProjectCatalog struct {
	Projects         []*models.Project  `json:"projects"`
	Categories       []*models.Category `json:"categories"`
	SelectedCategory string             `json:"selected_category,omitempty"`
	Total            int                `json:"total"`
}

// ProjectDetail represents one project with its related projects
type ProjectDetail struct {
	Project *models.Project   `json:"project"`
	Related []*models.Project `json:"related_projects"`
}

// listProjects retrieves the catalog, optionally filtered by the `category`
// query parameter. An absent or empty parameter means no filter.
func (h projectHandler) listProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categorySlug := r.URL.Query().Get("category")

		projects, err := h.projectRepo.FindByCategorySlug(categorySlug)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find projects", "projects", err))
			return
		}

		categories, err := h.categoryRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find categories", "categories", err))
			return
		}

		h.responder.WriteJSON(w, ProjectCatalog{
			Projects:         projects,
			Categories:       categories,
			SelectedCategory: categorySlug,
			Total:            len(projects),
		})
	}
}

// getProject retrieves one project by slug with up to three related projects
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		if slug == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing project slug"))
			return
		}

		project, err := h.projectRepo.FindBySlug(slug)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find project", "project", err))
			return
		}

		related, err := h.projectRepo.FindRelated(project)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find related projects", "projects", err))
			return
		}

		h.responder.WriteJSON(w, ProjectDetail{Project: project, Related: related})
	}
}

// createProject creates a new project. The slug is derived from the title
// when absent; a colliding slug is rejected, not disambiguated.
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var project models.Project
		if err := json.NewDecoder(r.Body).Decode(&project); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if project.Title == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("title"))
			return
		}
		if project.Description == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("description"))
			return
		}
		if project.CategoryID == uuid.Nil {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("category_id"))
			return
		}

		if err := h.projectRepo.Add(&project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create project", "project", err))
			return
		}

		created, err := h.projectRepo.FindBySlug(project.Slug)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find created project", "project", err))
			return
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, created)
	}
}

// updateProject updates an existing project
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectIDStr := chi.URLParam(r, "projectID")
		projectID, err := uuid.Parse(projectIDStr)
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		existing, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find project", "project", err))
			return
		}

		var project models.Project
		if err := json.NewDecoder(r.Body).Decode(&project); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		// Ensure ID and creation time survive the overwrite; fields the
		// payload omits keep their stored values so the project never loses
		// its slug, description or category.
		project.ID = projectID
		project.CreatedAt = existing.CreatedAt
		if project.Slug == "" {
			project.Slug = existing.Slug
		}
		if project.Title == "" {
			project.Title = existing.Title
		}
		if project.Description == "" {
			project.Description = existing.Description
		}
		if project.CategoryID == uuid.Nil {
			project.CategoryID = existing.CategoryID
		}

		if err := h.projectRepo.Update(&project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update project", "project", err))
			return
		}

		updated, err := h.projectRepo.FindBySlug(project.Slug)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated project", "project", err))
			return
		}

		h.responder.WriteJSON(w, updated)
	}
}

// deleteProject deletes a project by ID
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectIDStr := chi.URLParam(r, "projectID")
		projectID, err := uuid.Parse(projectIDStr)
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		if err := h.projectRepo.Delete(projectID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete project", "project", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "project deleted successfully",
		})
	}
}

// suggestSlug derives a slug from the `title` query parameter. This backs
// the admin form pre-fill only; uniqueness is still enforced at save time.
func (h projectHandler) suggestSlug() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		title := r.URL.Query().Get("title")
		if title == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("title"))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"suggested_slug": models.Slugify(title),
		})
	}
}
