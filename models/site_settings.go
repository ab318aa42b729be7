package models

import (
	"time"

	"gorm.io/datatypes"
)

// SiteSettingsID is the fixed primary key of the singleton settings row.
// Every write goes through this key, which is what keeps the row singular.
const SiteSettingsID uint = 1

// SiteSettings holds the content of the about page and the site's contact
// details. Exactly one row exists for the lifetime of the system.
//
// The *Translations maps hold per-language overrides keyed by language code,
// e.g. {"nb": "...", "en": "...", "zh-hans": "..."}.
type SiteSettings struct {
	ID           uint   `json:"id" db:"id" gorm:"primaryKey"`
	AboutTitle   string `json:"about_title" db:"about_title" gorm:"type:text;not null"`
	AboutContent string `json:"about_content" db:"about_content" gorm:"type:text"`
	History      string `json:"history" db:"history" gorm:"type:text"`
	Address      string `json:"address" db:"address" gorm:"type:text"`
	Email        string `json:"email" db:"email" gorm:"type:text"`
	Instagram    string `json:"instagram" db:"instagram" gorm:"type:text"`
	Phone        string `json:"phone" db:"phone" gorm:"type:text"`
	Image        string `json:"image,omitempty" db:"image" gorm:"type:text"`

	AboutTitleTranslations   datatypes.JSONMap `json:"about_title_translations" db:"about_title_translations"`
	AboutContentTranslations datatypes.JSONMap `json:"about_content_translations" db:"about_content_translations"`
	HistoryTranslations      datatypes.JSONMap `json:"history_translations" db:"history_translations"`

	CreatedAt time.Time `json:"created_at" db:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at" gorm:"autoUpdateTime"`
}

func (SiteSettings) TableName() string {
	return "site_settings"
}
