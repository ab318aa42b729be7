package database

import (
	"gorm.io/gorm"

	"github.com/cavetechlabs/website-backend/models"
)

type Database struct {
	personRepo   *PersonRepo
	categoryRepo *CategoryRepo
	projectRepo  *ProjectRepo
	settingsRepo *SettingsRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		personRepo:   NewPersonRepo(db),
		categoryRepo: NewCategoryRepo(db),
		projectRepo:  NewProjectRepo(db),
		settingsRepo: NewSettingsRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) PersonRepo() *PersonRepo {
	return d.personRepo
}

func (d Database) CategoryRepo() *CategoryRepo {
	return d.categoryRepo
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) SettingsRepo() *SettingsRepo {
	return d.settingsRepo
}

// AutoMigrate creates or updates the schema for every entity. Referenced
// tables migrate first so that foreign keys resolve.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Category{},
		&models.Person{},
		&models.Project{},
		&models.SiteSettings{},
	)
}
