package models

import (
	"time"

	"github.com/google/uuid"
)

// Project represents a project created at or by members of Cave Tech Labs.
type Project struct {
	ID          uuid.UUID  `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Title       string     `json:"title" db:"title" gorm:"type:text;not null"`
	Slug        string     `json:"slug" db:"slug" gorm:"type:text;not null;uniqueIndex"`
	Description string     `json:"description" db:"description" gorm:"type:text;not null"`
	CategoryID  uuid.UUID  `json:"category_id" db:"category_id" gorm:"type:uuid;not null;index"`
	CreatorID   *uuid.UUID `json:"creator_id,omitempty" db:"creator_id" gorm:"type:uuid;index"`
	Image       string     `json:"image,omitempty" db:"image" gorm:"type:text"`
	Featured    bool       `json:"featured" db:"featured" gorm:"not null;default:false"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at" gorm:"autoUpdateTime"`

	Category Category `json:"category,omitempty" gorm:"foreignKey:CategoryID;references:ID"`
	Creator  *Person  `json:"creator,omitempty" gorm:"foreignKey:CreatorID;references:ID"`
}

func (Project) TableName() string {
	return "projects"
}
