package models

import (
	"time"

	"github.com/lib/pq"
)

// Student is the profile collected by onboarding. Skills and interests are
// replaced wholesale on update, never merged.
type Student struct {
	ID    string `gorm:"column:id;type:uuid;primaryKey" bson:"_id" json:"id"`
	Name  string `gorm:"column:name;type:text;not null" bson:"name" json:"name"`
	Email string `gorm:"column:email;type:text;uniqueIndex;not null" bson:"email" json:"email"`
	Year  int    `gorm:"column:year;type:smallint" bson:"year" json:"year"`

	Skills    pq.StringArray `gorm:"column:skills;type:text[]" bson:"skills" json:"skills"`
	Interests pq.StringArray `gorm:"column:interests;type:text[]" bson:"interests" json:"interests"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz" bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz" bson:"updated_at" json:"updatedAt"`
}

func (Student) TableName() string { return "students" }
