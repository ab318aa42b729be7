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

type personHandler struct {
	responder   Responder
	logger      zerolog.Logger
	personRepo  *database.PersonRepo
	projectRepo *database.ProjectRepo
}

func newPersonHandler(personRepo *database.PersonRepo, projectRepo *database.ProjectRepo) personHandler {
	logger := log.With().Str("handlerName", "personHandler").Logger()

	return personHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		personRepo:  personRepo,
		projectRepo: projectRepo,
	}
}

// PersonProfile represents a person together with the projects they created
type PersonProfile struct {
	Person   *models.Person    `json:"person"`
	Projects []*models.Project `json:"projects"`
}

// PersonCollection represents the member directory
type PersonCollection struct {
	People []*models.Person `json:"people"`
	Total  int              `json:"total"`
}

// listPeople retrieves every member, ordered by name
func (h personHandler) listPeople() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		people, err := h.personRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find people", "people", err))
			return
		}

		h.responder.WriteJSON(w, PersonCollection{People: people, Total: len(people)})
	}
}

// getPerson retrieves one member's profile with their projects, newest first
func (h personHandler) getPerson() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		personID, apiErr := parsePersonID(r)
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		person, err := h.personRepo.FindByID(personID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find person", "person", err))
			return
		}

		projects, err := h.projectRepo.FindByCreator(personID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find person projects", "projects", err))
			return
		}

		h.responder.WriteJSON(w, PersonProfile{Person: person, Projects: projects})
	}
}

// createPerson creates a new member record
func (h personHandler) createPerson() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var person models.Person
		if err := json.NewDecoder(r.Body).Decode(&person); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode person request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if person.Name == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("name"))
			return
		}

		if err := h.personRepo.Add(&person); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create person", "person", err))
			return
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, person)
	}
}

// updatePerson updates an existing member record
func (h personHandler) updatePerson() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		personID, apiErr := parsePersonID(r)
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		existing, err := h.personRepo.FindByID(personID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find person", "person", err))
			return
		}

		var person models.Person
		if err := json.NewDecoder(r.Body).Decode(&person); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode person request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		// Ensure ID and creation time survive the overwrite
		person.ID = personID
		person.CreatedAt = existing.CreatedAt

		if err := h.personRepo.Update(&person); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update person", "person", err))
			return
		}

		h.responder.WriteJSON(w, person)
	}
}

// deletePerson removes a member. Their projects survive with the creator
// reference cleared.
func (h personHandler) deletePerson() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		personID, apiErr := parsePersonID(r)
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		if err := h.personRepo.Delete(personID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete person", "person", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "person deleted successfully",
		})
	}
}

func parsePersonID(r *http.Request) (uuid.UUID, *errs.ApiErr) {
	personIDStr := chi.URLParam(r, "personID")
	if personIDStr == "" {
		return uuid.Nil, errs.NewBadRequestError("missing personID")
	}

	personID, err := uuid.Parse(personIDStr)
	if err != nil {
		return uuid.Nil, errs.NewBadRequestError("invalid personID")
	}
	return personID, nil
}
