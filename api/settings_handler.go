package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/cavetechlabs/website-backend/database"
	"github.com/cavetechlabs/website-backend/errs"
	"github.com/cavetechlabs/website-backend/models"
)

type settingsHandler struct {
	responder    Responder
	logger       zerolog.Logger
	settingsRepo *database.SettingsRepo
}

func newSettingsHandler(settingsRepo *database.SettingsRepo) settingsHandler {
	logger := log.With().Str("handlerName", "settingsHandler").Logger()

	return settingsHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		settingsRepo: settingsRepo,
	}
}

func (h settingsHandler) getSettings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		settings, err := h.settingsRepo.Get()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("load", "site settings", err))
			return
		}

		h.responder.WriteJSON(w, settings)
	}
}

// updateSettings overwrites the singleton row. Whatever id the payload
// carries, the write lands on the one existing record.
func (h settingsHandler) updateSettings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var settings models.SiteSettings
		if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode settings request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := h.settingsRepo.Save(&settings); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("save", "site settings", err))
			return
		}

		h.responder.WriteJSON(w, settings)
	}
}

// deleteSettings acknowledges the request without removing anything: the
// settings row is a permanent singleton.
func (h settingsHandler) deleteSettings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.settingsRepo.Delete(); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "site settings", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "site settings are permanent and were not deleted",
		})
	}
}
