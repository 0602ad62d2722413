package gateapi

import (
	"errors"
	"net/http"
	"time"

	"gorm.io/gorm"

	"membership-app/database"
	"membership-app/internal/domain/forum"
	"membership-app/internal/domain/gate"
	"membership-app/internal/domain/learn"
	"membership-app/internal/domain/sprint"

	"github.com/gin-gonic/gin"
)

// Handler exposes the gate engine as one endpoint so clients can probe
// a decision without fetching the resource itself.
type Handler struct {
	Engine *gate.Engine
}

func NewHandler(engine *gate.Engine) *Handler {
	return &Handler{Engine: engine}
}

type evaluateRequest struct {
	Resource string `json:"resource" binding:"required"`
	Action   string `json:"action" binding:"required"`
	EntityID uint   `json:"entity_id"`
}

// Evaluate resolves the target entity, then asks the engine. The
// reference time is taken once per request.
func (h *Handler) Evaluate(c *gin.Context) {
	var body evaluateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resource := gate.Resource(body.Resource)
	entity, found, err := loadEntity(resource, body.EntityID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load entity"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Entity not found"})
		return
	}

	userID := c.GetUint("user_id")
	decision, err := h.Engine.Evaluate(userID, resource, gate.Action(body.Action), entity, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to evaluate access"})
		return
	}

	c.JSON(http.StatusOK, decision)
}

// loadEntity fetches the concrete record for resource kinds that gate a
// stored entity. duo_purchase has no entity; unknown kinds fall through
// to the engine, which fails closed with its own reason code.
func loadEntity(resource gate.Resource, id uint) (any, bool, error) {
	switch resource {
	case gate.ResourceCourse:
		var course learn.Course
		if err := database.DB.First(&course, id).Error; err != nil {
			return nil, false, ignoreNotFound(err)
		}
		return &course, true, nil
	case gate.ResourceForumBoard:
		var board forum.Board
		if err := database.DB.First(&board, id).Error; err != nil {
			return nil, false, ignoreNotFound(err)
		}
		return &board, true, nil
	case gate.ResourceSprint:
		var sp sprint.Sprint
		if err := database.DB.First(&sp, id).Error; err != nil {
			return nil, false, ignoreNotFound(err)
		}
		return &sp, true, nil
	default:
		return nil, true, nil
	}
}

func ignoreNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}
