package models

import (
	"time"

	"github.com/google/uuid"
)

// Person represents a member of the Cave Tech Labs maker space.
type Person struct {
	ID    uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Name  string    `json:"name" db:"name" gorm:"type:text;not null"`
	Title string    `json:"title" db:"title" gorm:"type:text"` // e.g. Founder, Lead Instructor
	Bio   string    `json:"bio" db:"bio" gorm:"type:text"`
	Email string    `json:"email" db:"email" gorm:"type:text"`
	// Image is a path reference only; storage itself lives outside this service.
	Image     string    `json:"image,omitempty" db:"image" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at" db:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at" gorm:"autoUpdateTime"`

	// Deleting a person never deletes their projects, only clears the reference.
	Projects []Project `json:"projects,omitempty" gorm:"foreignKey:CreatorID;references:ID;constraint:OnDelete:SET NULL"`
}

func (Person) TableName() string {
	return "people"
}
