package database

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/cavetechlabs/website-backend/models"
)

// newTestDatabase opens a fresh in-memory sqlite database per test. The pool
// is pinned to one connection because every pooled connection to :memory:
// would otherwise see its own empty database.
func newTestDatabase(t *testing.T) Database {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, AutoMigrate(db))
	return New(db)
}

func createCategory(t *testing.T, d Database, name string) *models.Category {
	t.Helper()
	category := &models.Category{Name: name}
	require.NoError(t, d.CategoryRepo().Add(category))
	return category
}

func createPerson(t *testing.T, d Database, name string) *models.Person {
	t.Helper()
	person := &models.Person{Name: name}
	require.NoError(t, d.PersonRepo().Add(person))
	return person
}

// createProject inserts a project with an explicit creation time so that
// newest-first assertions never depend on timer resolution.
func createProject(t *testing.T, d Database, project *models.Project, createdAt time.Time) *models.Project {
	t.Helper()
	project.CreatedAt = createdAt
	require.NoError(t, d.ProjectRepo().Add(project))
	return project
}

func projectTitles(projects []*models.Project) []string {
	titles := make([]string, 0, len(projects))
	for _, project := range projects {
		titles = append(titles, project.Title)
	}
	return titles
}

func ptrID(id uuid.UUID) *uuid.UUID {
	return &id
}
