package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cavetechlabs/website-backend/models"
)

type PersonRepo struct {
	db *gorm.DB
}

func NewPersonRepo(db *gorm.DB) *PersonRepo {
	return &PersonRepo{db}
}

// FindAll returns every person ordered by name
func (r *PersonRepo) FindAll() ([]*models.Person, error) {
	var people []*models.Person
	err := r.db.Order("name asc").Find(&people).Error
	return people, err
}

// FindByID returns a person by its ID
func (r *PersonRepo) FindByID(id uuid.UUID) (*models.Person, error) {
	var person models.Person
	err := r.db.First(&person, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &person, nil
}

// Add inserts a new person into the database
func (r *PersonRepo) Add(person *models.Person) error {
	if person.ID == uuid.Nil {
		person.ID = uuid.New()
	}
	return r.db.Create(person).Error
}

// Update updates an existing person in the database
func (r *PersonRepo) Update(person *models.Person) error {
	return r.db.Save(person).Error
}

// Delete removes a person and clears the creator reference on every project
// they own. Both writes run in a single transaction: a crash mid-delete can
// never leave some projects nulled and others dangling.
func (r *PersonRepo) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&models.Project{}).
			Where("creator_id = ?", id).
			Update("creator_id", nil).Error
		if err != nil {
			return err
		}

		result := tx.Delete(&models.Person{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
