package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ruchin-Audichya/Student-Copilot/internal/services"
)

type StudentHandler struct {
	students services.StudentService
	matching services.MatchingService
}

func NewStudentHandler(students services.StudentService, matching services.MatchingService) *StudentHandler {
	return &StudentHandler{students: students, matching: matching}
}

// Create handles POST /students.
func (h *StudentHandler) Create(c *gin.Context) {
	var req services.OnboardInput
	if !bindJSON(c, "StudentHandler.Create", &req) {
		return
	}

	st, err := h.students.Onboard(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, st)
}

func (h *StudentHandler) Get(c *gin.Context) {
	st, err := h.students.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

// FindByEmail handles GET /students?email=.
func (h *StudentHandler) FindByEmail(c *gin.Context) {
	st, err := h.students.GetByEmail(c.Request.Context(), c.Query("email"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

func (h *StudentHandler) Update(c *gin.Context) {
	var req services.UpdateInput
	if !bindJSON(c, "StudentHandler.Update", &req) {
		return
	}

	st, err := h.students.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

func (h *StudentHandler) Internships(c *gin.Context) {
	c.JSON(http.StatusOK, h.matching.MatchInternships(c.Request.Context(), c.Param("id")))
}

func (h *StudentHandler) Projects(c *gin.Context) {
	c.JSON(http.StatusOK, h.matching.RecommendProjects(c.Request.Context(), c.Param("id")))
}

func (h *StudentHandler) SkillGap(c *gin.Context) {
	report, err := h.matching.AnalyzeSkillGap(c.Request.Context(), c.Param("id"), c.Query("role"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
