package forum

import (
	"net/http"
	"time"

	"membership-app/database"
	"membership-app/internal/domain/forum"
	"membership-app/internal/domain/gate"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Engine *gate.Engine
}

func NewHandler(engine *gate.Engine) *Handler {
	return &Handler{Engine: engine}
}

func (h *Handler) ListBoards(c *gin.Context) {
	var boards []forum.Board
	if err := database.DB.Order("created_at ASC").Find(&boards).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load boards"})
		return
	}
	c.JSON(http.StatusOK, boards)
}

func (h *Handler) GetBoard(c *gin.Context) {
	slug := c.Param("slug")

	var board forum.Board
	if err := database.DB.Where("slug = ?", slug).First(&board).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Board not found"})
		return
	}

	userID := c.GetUint("user_id")
	decision, err := h.Engine.Evaluate(userID, gate.ResourceForumBoard, gate.ActionView, &board, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to evaluate access"})
		return
	}
	if !decision.Allowed {
		c.JSON(http.StatusForbidden, gin.H{"gate": decision})
		return
	}

	var posts []forum.Post
	if err := database.DB.Where("board_id = ?", board.ID).Order("created_at DESC").Limit(50).Find(&posts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load posts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"board": board, "posts": posts, "gate": decision})
}

func (h *Handler) CreatePost(c *gin.Context) {
	slug := c.Param("slug")

	var board forum.Board
	if err := database.DB.Where("slug = ?", slug).First(&board).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Board not found"})
		return
	}

	userID := c.GetUint("user_id")
	decision, err := h.Engine.Evaluate(userID, gate.ResourceForumBoard, gate.ActionPost, &board, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to evaluate access"})
		return
	}
	if !decision.Allowed {
		c.JSON(http.StatusForbidden, gin.H{"gate": decision})
		return
	}

	var body struct {
		Title string `json:"title" binding:"required"`
		Body  string `json:"body" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post := forum.Post{
		BoardID: board.ID,
		UserID:  userID,
		Title:   body.Title,
		Body:    body.Body,
	}
	if err := database.DB.Create(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		return
	}

	c.JSON(http.StatusCreated, post)
}
