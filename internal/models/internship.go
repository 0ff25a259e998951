package models

import (
	"time"

	"github.com/lib/pq"
)

type Internship struct {
	ID             string         `gorm:"column:id;type:uuid;primaryKey" bson:"_id" json:"id"`
	Title          string         `gorm:"column:title;type:text" bson:"title" json:"title"`
	Company        string         `gorm:"column:company;type:text" bson:"company" json:"company"`
	Location       string         `gorm:"column:location;type:text" bson:"location" json:"location"`
	Stipend        string         `gorm:"column:stipend;type:text" bson:"stipend" json:"stipend"`
	Duration       string         `gorm:"column:duration;type:text" bson:"duration" json:"duration"`
	RequiredSkills pq.StringArray `gorm:"column:required_skills;type:text[]" bson:"required_skills" json:"requiredSkills"`
	Description    string         `gorm:"column:description;type:text" bson:"description" json:"description"`

	// Source and ExternalID identify entries that arrived through the feed;
	// seeded entries use source "seed".
	Source     string    `gorm:"column:source;type:text;uniqueIndex:uniq_internship_source_ext" bson:"source" json:"source,omitempty"`
	ExternalID string    `gorm:"column:external_id;type:text;uniqueIndex:uniq_internship_source_ext" bson:"external_id" json:"externalId,omitempty"`
	PostedAt   time.Time `gorm:"column:posted_at;type:timestamptz;index" bson:"posted_at" json:"postedAt"`
}

func (Internship) TableName() string { return "internships" }

// InternshipMatch is an internship annotated with its derived match score.
type InternshipMatch struct {
	Internship
	MatchScore int `json:"matchScore"`
}
