package matching

import (
	"fmt"

	"github.com/Ruchin-Audichya/Student-Copilot/internal/models"
)

const (
	minProficiency = 60
	maxProficiency = 100
	planWeeks      = 4
)

var timeToLearn = map[models.Priority]string{
	models.PriorityHigh:   "2-3 weeks",
	models.PriorityMedium: "3-4 weeks",
	models.PriorityLow:    "4-6 weeks",
}

var weeklyTasks = []string{
	"Complete an introductory course on %s",
	"Read the official %s documentation and work through its examples",
	"Build a small practice project using %s",
	"Add the %s project to your portfolio and share it for feedback",
}

// AnalyzeSkillGap splits the requirements of role into skills the student
// already has and skills still missing, in the role table's order. Unknown
// roles use the default role's requirements.
func (e *Engine) AnalyzeSkillGap(skills []string, role string) models.SkillGapReport {
	resolved, required := e.roles.Lookup(role)
	have := skillSet(skills)

	report := models.SkillGapReport{
		TargetRole:    role,
		ResolvedRole:  resolved,
		CurrentSkills: []models.CurrentSkill{},
		MissingSkills: []models.MissingSkill{},
		LearningPlan:  []models.LearningWeek{},
	}

	for _, skill := range required {
		if _, ok := have[skill]; ok {
			p := minProficiency + e.rnd.IntN(maxProficiency-minProficiency+1)
			report.CurrentSkills = append(report.CurrentSkills, models.CurrentSkill{
				Skill:       skill,
				Proficiency: p,
				Level:       levelFor(p),
			})
			continue
		}
		pr := priorityAt(len(report.MissingSkills))
		report.MissingSkills = append(report.MissingSkills, models.MissingSkill{
			Skill:       skill,
			Priority:    pr,
			TimeToLearn: timeToLearn[pr],
		})
	}

	for i, m := range report.MissingSkills {
		if i == planWeeks {
			break
		}
		tasks := make([]string, len(weeklyTasks))
		for j, t := range weeklyTasks {
			tasks[j] = fmt.Sprintf(t, m.Skill)
		}
		report.LearningPlan = append(report.LearningPlan, models.LearningWeek{
			Week:  i + 1,
			Focus: m.Skill,
			Tasks: tasks,
		})
	}
	return report
}

func levelFor(proficiency int) string {
	switch {
	case proficiency >= 85:
		return "Advanced"
	case proficiency >= 70:
		return "Intermediate"
	default:
		return "Beginner"
	}
}

func priorityAt(i int) models.Priority {
	switch {
	case i < 2:
		return models.PriorityHigh
	case i < 4:
		return models.PriorityMedium
	default:
		return models.PriorityLow
	}
}
