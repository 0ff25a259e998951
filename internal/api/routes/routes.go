package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Ruchin-Audichya/Student-Copilot/internal/api/handlers"
)

type Deps struct {
	Students *handlers.StudentHandler
	Catalog  *handlers.CatalogHandler
	Health   *handlers.HealthHandler
	WS       *handlers.WSHandler // nil disables the live feed
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
	r.GET("/health", d.Health.Health)
	r.GET("/ready", d.Health.Ready)

	students := r.Group("/students")
	students.POST("", d.Students.Create)
	students.GET("", d.Students.FindByEmail)
	students.GET("/:id", d.Students.Get)
	students.PATCH("/:id", d.Students.Update)
	students.GET("/:id/internships", d.Students.Internships)
	students.GET("/:id/projects", d.Students.Projects)
	students.GET("/:id/skill-gap", d.Students.SkillGap)

	r.GET("/internships", d.Catalog.ListInternships)
	r.GET("/internships/search", d.Catalog.SearchInternships)
	r.GET("/internships/:id", d.Catalog.GetInternship)
	r.GET("/projects", d.Catalog.ListProjects)
	r.GET("/projects/:id", d.Catalog.GetProject)
	r.GET("/roles", d.Catalog.Roles)

	if d.WS != nil {
		r.GET("/ws/internships", d.WS.InternshipFeed)
	}
}
