package sprints

import (
	"net/http"
	"time"

	"membership-app/database"
	"membership-app/internal/domain/gate"
	"membership-app/internal/domain/sprint"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Engine *gate.Engine
}

func NewHandler(engine *gate.Engine) *Handler {
	return &Handler{Engine: engine}
}

func (h *Handler) GetSprint(c *gin.Context) {
	slug := c.Param("slug")

	var sp sprint.Sprint
	if err := database.DB.Where("slug = ?", slug).First(&sp).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sprint not found"})
		return
	}

	now := time.Now()
	c.JSON(http.StatusOK, gin.H{
		"sprint":              sp,
		"active":              sp.IsActive(now),
		"accepts_submissions": sp.AcceptsSubmissions(now),
	})
}

// Submit records one sprint submission. The reference time is taken
// once here so the gate decision and the stored timestamp agree.
func (h *Handler) Submit(c *gin.Context) {
	slug := c.Param("slug")

	var sp sprint.Sprint
	if err := database.DB.Where("slug = ?", slug).First(&sp).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sprint not found"})
		return
	}

	now := time.Now()
	userID := c.GetUint("user_id")
	decision, err := h.Engine.Evaluate(userID, gate.ResourceSprint, gate.ActionSubmit, &sp, now)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to evaluate access"})
		return
	}
	if !decision.Allowed {
		c.JSON(http.StatusForbidden, gin.H{"gate": decision})
		return
	}

	var body struct {
		Body string `json:"body" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sub := sprint.Submission{
		SprintID:    sp.ID,
		UserID:      userID,
		Body:        body.Body,
		SubmittedAt: now,
	}
	if err := database.DB.Create(&sub).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store submission"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"submission": sub, "gate": decision})
}
