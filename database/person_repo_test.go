package database

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/cavetechlabs/website-backend/models"
)

func TestPersonRepoFindAllOrdersByName(t *testing.T) {
	d := newTestDatabase(t)

	createPerson(t, d, "Zoe Brown")
	createPerson(t, d, "Alice Smith")
	createPerson(t, d, "Mikkel Hansen")

	people, err := d.PersonRepo().FindAll()
	require.NoError(t, err)
	require.Len(t, people, 3)
	assert.Equal(t, "Alice Smith", people[0].Name)
	assert.Equal(t, "Mikkel Hansen", people[1].Name)
	assert.Equal(t, "Zoe Brown", people[2].Name)
}

func TestPersonRepoFindByIDNotFound(t *testing.T) {
	d := newTestDatabase(t)

	person, err := d.PersonRepo().FindByID(uuid.New())
	assert.Nil(t, person)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestPersonRepoDeleteClearsProjectCreators(t *testing.T) {
	d := newTestDatabase(t)

	electronics := createCategory(t, d, "Electronics")
	alice := createPerson(t, d, "Alice")
	now := time.Now()

	widget := createProject(t, d, &models.Project{
		Title:       "Widget",
		Description: "A featured widget",
		CategoryID:  electronics.ID,
		CreatorID:   ptrID(alice.ID),
		Featured:    true,
	}, now)
	createProject(t, d, &models.Project{
		Title:       "Gadget",
		Description: "Another build by Alice",
		CategoryID:  electronics.ID,
		CreatorID:   ptrID(alice.ID),
	}, now.Add(time.Minute))

	byAlice, err := d.ProjectRepo().FindByCreator(alice.ID)
	require.NoError(t, err)
	require.Len(t, byAlice, 2)

	require.NoError(t, d.PersonRepo().Delete(alice.ID))

	// The person is gone, the projects are not.
	_, err = d.PersonRepo().FindByID(alice.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	byAlice, err = d.ProjectRepo().FindByCreator(alice.ID)
	require.NoError(t, err)
	assert.Empty(t, byAlice)

	reloaded, err := d.ProjectRepo().FindBySlug(widget.Slug)
	require.NoError(t, err)
	assert.Nil(t, reloaded.CreatorID)
}

func TestPersonRepoDeleteMissingPerson(t *testing.T) {
	d := newTestDatabase(t)

	err := d.PersonRepo().Delete(uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
