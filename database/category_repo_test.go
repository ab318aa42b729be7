package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/cavetechlabs/website-backend/errs"
	"github.com/cavetechlabs/website-backend/models"
)

func TestCategoryRepoSlugDerivedFromName(t *testing.T) {
	d := newTestDatabase(t)

	category := &models.Category{Name: "3D Printing"}
	require.NoError(t, d.CategoryRepo().Add(category))
	assert.Equal(t, "3d-printing", category.Slug)

	found, err := d.CategoryRepo().FindBySlug("3d-printing")
	require.NoError(t, err)
	assert.Equal(t, category.ID, found.ID)
}

func TestCategoryRepoSuppliedSlugKept(t *testing.T) {
	d := newTestDatabase(t)

	category := &models.Category{Name: "Woodworking", Slug: "wood"}
	require.NoError(t, d.CategoryRepo().Add(category))
	assert.Equal(t, "wood", category.Slug)
}

func TestCategoryRepoDuplicateNameRejected(t *testing.T) {
	d := newTestDatabase(t)

	createCategory(t, d, "Robotics")

	err := d.CategoryRepo().Add(&models.Category{Name: "Robotics", Slug: "robotics-2"})
	require.Error(t, err)
	assert.ErrorIs(t, errs.FromDatabase("create", "category", err), errs.ErrAlreadyExists)
}

func TestCategoryRepoDuplicateSlugRejected(t *testing.T) {
	d := newTestDatabase(t)

	createCategory(t, d, "Metal Working")

	// Different name, same derived slug.
	err := d.CategoryRepo().Add(&models.Category{Name: "Metal working"})
	require.Error(t, err)
	assert.ErrorIs(t, errs.FromDatabase("create", "category", err), errs.ErrAlreadyExists)
}

func TestCategoryRepoDeleteRefusedWhileReferenced(t *testing.T) {
	d := newTestDatabase(t)

	electronics := createCategory(t, d, "Electronics")
	createProject(t, d, &models.Project{
		Title:       "LED Cube",
		Description: "8x8x8 cube",
		CategoryID:  electronics.ID,
	}, time.Now())

	err := d.CategoryRepo().Delete(electronics.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrProtectedDelete)

	// Category and project both survive the refused delete.
	found, err := d.CategoryRepo().FindBySlug("electronics")
	require.NoError(t, err)
	assert.Equal(t, electronics.ID, found.ID)

	projects, err := d.ProjectRepo().FindByCategorySlug("electronics")
	require.NoError(t, err)
	assert.Len(t, projects, 1)
}

func TestCategoryRepoDeleteEmptyCategory(t *testing.T) {
	d := newTestDatabase(t)

	art := createCategory(t, d, "Art")
	require.NoError(t, d.CategoryRepo().Delete(art.ID))

	_, err := d.CategoryRepo().FindBySlug("art")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCategoryRepoFindAllOrdersByName(t *testing.T) {
	d := newTestDatabase(t)

	createCategory(t, d, "Woodworking")
	createCategory(t, d, "Art")
	createCategory(t, d, "Electronics")

	categories, err := d.CategoryRepo().FindAll()
	require.NoError(t, err)
	require.Len(t, categories, 3)
	assert.Equal(t, "Art", categories[0].Name)
	assert.Equal(t, "Electronics", categories[1].Name)
	assert.Equal(t, "Woodworking", categories[2].Name)
}
