package models

import (
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
)

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

type Project struct {
	ID           string                      `gorm:"column:id;type:uuid;primaryKey" bson:"_id" json:"id"`
	Title        string                      `gorm:"column:title;type:text" bson:"title" json:"title"`
	Description  string                      `gorm:"column:description;type:text" bson:"description" json:"description"`
	Difficulty   Difficulty                  `gorm:"column:difficulty;type:text" bson:"difficulty" json:"difficulty"`
	Duration     string                      `gorm:"column:duration;type:text" bson:"duration" json:"duration"`
	Technologies pq.StringArray              `gorm:"column:technologies;type:text[]" bson:"technologies" json:"technologies"`
	Features     datatypes.JSONSlice[string] `gorm:"column:features;type:jsonb" bson:"features" json:"features"`
}

func (Project) TableName() string { return "projects" }

// ProjectMatch is a project annotated with its derived relevance score.
type ProjectMatch struct {
	Project
	Score int `json:"score"`
}
