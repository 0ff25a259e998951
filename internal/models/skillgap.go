package models

type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

type CurrentSkill struct {
	Skill       string `json:"skill"`
	Proficiency int    `json:"proficiency"` // 60..100
	Level       string `json:"level"`
}

type MissingSkill struct {
	Skill       string   `json:"skill"`
	Priority    Priority `json:"priority"`
	TimeToLearn string   `json:"timeToLearn"`
}

type LearningWeek struct {
	Week  int      `json:"week"`
	Focus string   `json:"focus"`
	Tasks []string `json:"tasks"`
}

// SkillGapReport is derived per request and never stored.
type SkillGapReport struct {
	TargetRole    string         `json:"targetRole"`
	ResolvedRole  string         `json:"resolvedRole"`
	CurrentSkills []CurrentSkill `json:"currentSkills"`
	MissingSkills []MissingSkill `json:"missingSkills"`
	LearningPlan  []LearningWeek `json:"learningPlan"`
}
