package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cavetechlabs/website-backend/models"
)

// Caps applied by the promotional read paths.
const (
	featuredProjectsLimit = 6
	relatedProjectsLimit  = 3
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// FindAll returns every project, newest first
func (r *ProjectRepo) FindAll() ([]*models.Project, error) {
	var projects []*models.Project
	err := r.db.Preload("Category").Preload("Creator").
		Order("created_at desc").
		Find(&projects).Error
	return projects, err
}

// FindFeatured returns the newest projects flagged for the home page,
// capped at six.
func (r *ProjectRepo) FindFeatured() ([]*models.Project, error) {
	var projects []*models.Project
	err := r.db.Preload("Category").
		Where("featured = ?", true).
		Order("created_at desc").
		Limit(featuredProjectsLimit).
		Find(&projects).Error
	return projects, err
}

// FindByCategorySlug returns the projects in the named category, newest
// first. An empty slug means no filter, not a filter on the empty string.
func (r *ProjectRepo) FindByCategorySlug(slug string) ([]*models.Project, error) {
	if slug == "" {
		return r.FindAll()
	}

	var projects []*models.Project
	err := r.db.Preload("Category").Preload("Creator").
		Joins("JOIN categories ON categories.id = projects.category_id").
		Where("categories.slug = ?", slug).
		Order("projects.created_at desc").
		Find(&projects).Error
	return projects, err
}

// FindByID returns a project by its ID
func (r *ProjectRepo) FindByID(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// FindBySlug returns a project by its slug
func (r *ProjectRepo) FindBySlug(slug string) (*models.Project, error) {
	var project models.Project
	err := r.db.Preload("Category").Preload("Creator").
		First(&project, "slug = ?", slug).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// FindByCreator returns the projects created by a person, newest first
func (r *ProjectRepo) FindByCreator(personID uuid.UUID) ([]*models.Project, error) {
	var projects []*models.Project
	err := r.db.Preload("Category").
		Where("creator_id = ?", personID).
		Order("created_at desc").
		Find(&projects).Error
	return projects, err
}

// FindRelated returns up to three other projects sharing the given
// project's category, newest first. The project itself is never included.
func (r *ProjectRepo) FindRelated(project *models.Project) ([]*models.Project, error) {
	var projects []*models.Project
	err := r.db.Preload("Category").
		Where("category_id = ? AND id <> ?", project.CategoryID, project.ID).
		Order("created_at desc").
		Limit(relatedProjectsLimit).
		Find(&projects).Error
	return projects, err
}

// Add inserts a new project, deriving the slug from the title when none is
// supplied. A colliding slug is rejected by the unique constraint; there is
// no automatic disambiguation.
func (r *ProjectRepo) Add(project *models.Project) error {
	if project.ID == uuid.Nil {
		project.ID = uuid.New()
	}
	if project.Slug == "" {
		project.Slug = models.Slugify(project.Title)
	}
	return r.db.Create(project).Error
}

// Update updates an existing project in the database
func (r *ProjectRepo) Update(project *models.Project) error {
	return r.db.Save(project).Error
}

// Delete removes a project from the database by id
func (r *ProjectRepo) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Project{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
