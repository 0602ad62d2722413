package learn

import (
	"net/http"
	"time"

	"membership-app/database"
	"membership-app/internal/domain/gate"
	"membership-app/internal/domain/learn"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Engine *gate.Engine
}

func NewHandler(engine *gate.Engine) *Handler {
	return &Handler{Engine: engine}
}

type CourseSummary struct {
	ID            uint   `json:"id"`
	Slug          string `json:"slug"`
	Title         string `json:"title"`
	IsFree        bool   `json:"is_free"`
	RequiredLevel string `json:"required_level,omitempty"`
}

func (h *Handler) ListCourses(c *gin.Context) {
	var courses []learn.Course
	if err := database.DB.Where("published = ?", true).Order("created_at ASC").Find(&courses).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load courses"})
		return
	}

	out := make([]CourseSummary, 0, len(courses))
	for _, course := range courses {
		out = append(out, CourseSummary{
			ID:            course.ID,
			Slug:          course.Slug,
			Title:         course.Title,
			IsFree:        course.IsFree,
			RequiredLevel: course.RequiredLevel,
		})
	}

	c.JSON(http.StatusOK, out)
}

// GetCourse returns the course with its gate decision. Content is only
// included when the gate allows viewing; a denial still returns 200
// with the decision so the client can render the right prompt.
func (h *Handler) GetCourse(c *gin.Context) {
	slug := c.Param("slug")

	var course learn.Course
	if err := database.DB.Where("slug = ? AND published = ?", slug, true).First(&course).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		return
	}

	userID := c.GetUint("user_id")
	decision, err := h.Engine.Evaluate(userID, gate.ResourceCourse, gate.ActionView, &course, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to evaluate access"})
		return
	}

	resp := gin.H{
		"course": CourseSummary{
			ID:            course.ID,
			Slug:          course.Slug,
			Title:         course.Title,
			IsFree:        course.IsFree,
			RequiredLevel: course.RequiredLevel,
		},
		"gate": decision,
	}
	if decision.Allowed {
		resp["description"] = course.Description
	}

	c.JSON(http.StatusOK, resp)
}
