package services

import "github.com/Ruchin-Audichya/Student-Copilot/internal/models"

func seedInternships() []models.Internship {
	return []models.Internship{
		{
			ExternalID: "frontend-dev", Title: "Frontend Developer Intern", Company: "TechCorp",
			Location: "Bengaluru", Stipend: "₹15,000/month", Duration: "3 months",
			RequiredSkills: []string{"React", "JavaScript", "CSS", "HTML"},
			Description:    "Build responsive user interfaces for the customer dashboard.",
		},
		{
			ExternalID: "backend-dev", Title: "Backend Developer Intern", Company: "DataSoft",
			Location: "Remote", Stipend: "₹12,000/month", Duration: "6 months",
			RequiredSkills: []string{"Node.js", "Express", "MongoDB", "REST APIs"},
			Description:    "Design and maintain REST services backing the mobile app.",
		},
		{
			ExternalID: "data-science", Title: "Data Science Intern", Company: "Analytics Hub",
			Location: "Hyderabad", Stipend: "₹20,000/month", Duration: "4 months",
			RequiredSkills: []string{"Python", "Machine Learning", "SQL", "Pandas"},
			Description:    "Clean datasets and prototype churn prediction models.",
		},
		{
			ExternalID: "full-stack", Title: "Full Stack Intern", Company: "StartupXYZ",
			Location: "Pune", Stipend: "₹18,000/month", Duration: "6 months",
			RequiredSkills: []string{"React", "Node.js", "JavaScript", "MongoDB"},
			Description:    "Ship features end to end on a small product team.",
		},
		{
			ExternalID: "devops", Title: "DevOps Intern", Company: "CloudNine",
			Location: "Remote", Stipend: "₹16,000/month", Duration: "3 months",
			RequiredSkills: []string{"Docker", "Kubernetes", "Linux", "CI/CD"},
			Description:    "Automate build pipelines and container deployments.",
		},
		{
			ExternalID: "mobile", Title: "Mobile App Intern", Company: "AppWorks",
			Location: "Chennai", Stipend: "₹14,000/month", Duration: "4 months",
			RequiredSkills: []string{"Flutter", "Dart", "Firebase"},
			Description:    "Build cross-platform screens for a fitness tracking app.",
		},
		{
			ExternalID: "uiux", Title: "UI/UX Design Intern", Company: "PixelPerfect",
			Location: "Mumbai", Stipend: "Unpaid", Duration: "2 months",
			RequiredSkills: []string{"Figma", "Wireframing", "Prototyping"},
			Description:    "Run user research sessions and turn findings into prototypes.",
		},
	}
}

func seedProjects() []models.Project {
	return []models.Project{
		{
			Title: "Personal Portfolio Website", Difficulty: models.DifficultyBeginner, Duration: "1 week",
			Description:  "A responsive site presenting your projects and resume.",
			Technologies: []string{"HTML", "CSS", "JavaScript"},
			Features:     []string{"Responsive layout", "Project gallery", "Contact form"},
		},
		{
			Title: "Task Manager App", Difficulty: models.DifficultyIntermediate, Duration: "2 weeks",
			Description:  "A full stack to-do application with user accounts.",
			Technologies: []string{"React", "Node.js", "Express", "MongoDB"},
			Features:     []string{"Authentication", "CRUD tasks", "Due date reminders"},
		},
		{
			Title: "Real-time Chat Application", Difficulty: models.DifficultyAdvanced, Duration: "3 weeks",
			Description:  "Group chat with presence indicators and message history.",
			Technologies: []string{"React", "Node.js", "Socket.io", "MongoDB"},
			Features:     []string{"Chat rooms", "Typing indicators", "Message persistence"},
		},
		{
			Title: "Movie Recommendation System", Difficulty: models.DifficultyIntermediate, Duration: "2 weeks",
			Description:  "Collaborative filtering over a public ratings dataset.",
			Technologies: []string{"Python", "Pandas", "Machine Learning"},
			Features:     []string{"Data cleaning", "Model training", "Top-N recommendations"},
		},
		{
			Title: "Containerized Microservice", Difficulty: models.DifficultyAdvanced, Duration: "2 weeks",
			Description:  "A small API deployed to Kubernetes through a CI pipeline.",
			Technologies: []string{"Docker", "Kubernetes", "CI/CD", "Linux"},
			Features:     []string{"Dockerfile", "Helm chart", "Automated deploys"},
		},
		{
			Title: "Weather Dashboard", Difficulty: models.DifficultyBeginner, Duration: "1 week",
			Description:  "Fetch and chart forecasts from a public weather API.",
			Technologies: []string{"JavaScript", "HTML", "CSS", "REST APIs"},
			Features:     []string{"City search", "5-day forecast", "Unit toggle"},
		},
	}
}
