package database

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/cavetechlabs/website-backend/errs"
	"github.com/cavetechlabs/website-backend/models"
)

func TestProjectRepoSlugDerivedFromTitle(t *testing.T) {
	d := newTestDatabase(t)
	software := createCategory(t, d, "Software")

	project := createProject(t, d, &models.Project{
		Title:       "My Awesome Project",
		Description: "Test",
		CategoryID:  software.ID,
	}, time.Now())

	assert.Equal(t, "my-awesome-project", project.Slug)
}

func TestProjectRepoDuplicateSlugRejected(t *testing.T) {
	d := newTestDatabase(t)
	software := createCategory(t, d, "Software")

	createProject(t, d, &models.Project{
		Title:       "Unique Project",
		Description: "Test",
		CategoryID:  software.ID,
	}, time.Now())

	err := d.ProjectRepo().Add(&models.Project{
		Title:       "Unique Project",
		Description: "Test",
		CategoryID:  software.ID,
	})
	require.Error(t, err)
	assert.ErrorIs(t, errs.FromDatabase("create", "project", err), errs.ErrAlreadyExists)
}

func TestProjectRepoFindFeaturedCapsAtSixNewestFirst(t *testing.T) {
	d := newTestDatabase(t)
	software := createCategory(t, d, "Software")
	base := time.Now().Add(-time.Hour)

	for i := 0; i < 10; i++ {
		createProject(t, d, &models.Project{
			Title:       fmt.Sprintf("Featured %d", i),
			Description: "Test",
			CategoryID:  software.ID,
			Featured:    true,
		}, base.Add(time.Duration(i)*time.Minute))
	}
	// A non-featured project must never appear, however new.
	createProject(t, d, &models.Project{
		Title:       "Plain",
		Description: "Test",
		CategoryID:  software.ID,
	}, base.Add(time.Hour))

	featured, err := d.ProjectRepo().FindFeatured()
	require.NoError(t, err)
	require.Len(t, featured, 6)
	for _, project := range featured {
		assert.True(t, project.Featured)
	}
	assert.Equal(t,
		[]string{"Featured 9", "Featured 8", "Featured 7", "Featured 6", "Featured 5", "Featured 4"},
		projectTitles(featured))
}

func TestProjectRepoFindByCategorySlug(t *testing.T) {
	d := newTestDatabase(t)
	electronics := createCategory(t, d, "Electronics")
	wood := createCategory(t, d, "Woodworking")
	base := time.Now().Add(-time.Hour)

	createProject(t, d, &models.Project{
		Title:       "Synth",
		Description: "Test",
		CategoryID:  electronics.ID,
	}, base)
	createProject(t, d, &models.Project{
		Title:       "Bench",
		Description: "Test",
		CategoryID:  wood.ID,
	}, base.Add(time.Minute))
	createProject(t, d, &models.Project{
		Title:       "Amplifier",
		Description: "Test",
		CategoryID:  electronics.ID,
	}, base.Add(2*time.Minute))

	// Empty slug means no filter, newest first.
	all, err := d.ProjectRepo().FindByCategorySlug("")
	require.NoError(t, err)
	assert.Equal(t, []string{"Amplifier", "Bench", "Synth"}, projectTitles(all))

	filtered, err := d.ProjectRepo().FindByCategorySlug("electronics")
	require.NoError(t, err)
	assert.Equal(t, []string{"Amplifier", "Synth"}, projectTitles(filtered))

	// An unknown category is an empty result, not an error.
	none, err := d.ProjectRepo().FindByCategorySlug("no-such-category")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestProjectRepoFindBySlugNotFound(t *testing.T) {
	d := newTestDatabase(t)

	project, err := d.ProjectRepo().FindBySlug("missing")
	assert.Nil(t, project)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestProjectRepoFindBySlugPreloadsRelations(t *testing.T) {
	d := newTestDatabase(t)
	electronics := createCategory(t, d, "Electronics")
	alice := createPerson(t, d, "Alice")

	createProject(t, d, &models.Project{
		Title:       "Widget",
		Description: "Test",
		CategoryID:  electronics.ID,
		CreatorID:   ptrID(alice.ID),
	}, time.Now())

	project, err := d.ProjectRepo().FindBySlug("widget")
	require.NoError(t, err)
	assert.Equal(t, "Electronics", project.Category.Name)
	require.NotNil(t, project.Creator)
	assert.Equal(t, "Alice", project.Creator.Name)
}

func TestProjectRepoFindRelatedExcludesSelfCapsAtThree(t *testing.T) {
	d := newTestDatabase(t)
	electronics := createCategory(t, d, "Electronics")
	wood := createCategory(t, d, "Woodworking")
	base := time.Now().Add(-time.Hour)

	subject := createProject(t, d, &models.Project{
		Title:       "Subject",
		Description: "Test",
		CategoryID:  electronics.ID,
	}, base)
	for i := 0; i < 6; i++ {
		createProject(t, d, &models.Project{
			Title:       fmt.Sprintf("Sibling %d", i),
			Description: "Test",
			CategoryID:  electronics.ID,
		}, base.Add(time.Duration(i+1)*time.Minute))
	}
	createProject(t, d, &models.Project{
		Title:       "Other Category",
		Description: "Test",
		CategoryID:  wood.ID,
	}, base.Add(time.Hour))

	related, err := d.ProjectRepo().FindRelated(subject)
	require.NoError(t, err)
	require.Len(t, related, 3)
	assert.Equal(t, []string{"Sibling 5", "Sibling 4", "Sibling 3"}, projectTitles(related))
	for _, project := range related {
		assert.NotEqual(t, subject.ID, project.ID)
		assert.Equal(t, electronics.ID, project.CategoryID)
	}
}

func TestProjectRepoFindByCreatorNewestFirst(t *testing.T) {
	d := newTestDatabase(t)
	software := createCategory(t, d, "Software")
	alice := createPerson(t, d, "Alice")
	bob := createPerson(t, d, "Bob")
	base := time.Now().Add(-time.Hour)

	createProject(t, d, &models.Project{
		Title:       "First",
		Description: "Test",
		CategoryID:  software.ID,
		CreatorID:   ptrID(alice.ID),
	}, base)
	createProject(t, d, &models.Project{
		Title:       "Second",
		Description: "Test",
		CategoryID:  software.ID,
		CreatorID:   ptrID(alice.ID),
	}, base.Add(time.Minute))
	createProject(t, d, &models.Project{
		Title:       "Not Hers",
		Description: "Test",
		CategoryID:  software.ID,
		CreatorID:   ptrID(bob.ID),
	}, base.Add(2*time.Minute))

	projects, err := d.ProjectRepo().FindByCreator(alice.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Second", "First"}, projectTitles(projects))
}
