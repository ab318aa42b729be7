package database

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/cavetechlabs/website-backend/models"
)

// Defaults written when the settings row is first created.
const (
	defaultAboutTitle   = "About CaveTech"
	defaultAboutContent = "Welcome to CaveTech - Oslo's premier maker space."
	defaultAddress      = "Oslo, Norway"
	defaultEmail        = "contact@cavetechlabs.com"
)

type SettingsRepo struct {
	db *gorm.DB
}

func NewSettingsRepo(db *gorm.DB) *SettingsRepo {
	return &SettingsRepo{db}
}

// Get returns the singleton settings row, creating it with defaults when it
// does not exist yet. The row always lives under the same fixed primary key,
// so losing a creation race to a concurrent caller is success, not a
// unique-constraint failure.
func (r *SettingsRepo) Get() (*models.SiteSettings, error) {
	var settings models.SiteSettings
	err := r.db.First(&settings, "id = ?", models.SiteSettingsID).Error
	if err == nil {
		return &settings, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	fresh := models.SiteSettings{
		ID:           models.SiteSettingsID,
		AboutTitle:   defaultAboutTitle,
		AboutContent: defaultAboutContent,
		Address:      defaultAddress,
		Email:        defaultEmail,
	}
	err = r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&fresh).Error
	if err != nil {
		return nil, err
	}

	// Reload in case another writer won the race.
	err = r.db.First(&settings, "id = ?", models.SiteSettingsID).Error
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// Save writes the settings under the fixed key regardless of the submitted
// id, so an attempt to create a second row is absorbed into the existing one.
func (r *SettingsRepo) Save(settings *models.SiteSettings) error {
	settings.ID = models.SiteSettingsID
	return r.db.Save(settings).Error
}

// Delete is a guaranteed no-op: the settings row is never removed.
func (r *SettingsRepo) Delete() error {
	return nil
}
