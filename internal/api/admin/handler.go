package admin

import (
	"net/http"
	"time"

	"membership-app/database"
	"membership-app/internal/domain/forum"
	"membership-app/internal/domain/learn"
	"membership-app/internal/domain/membership"
	"membership-app/internal/domain/orders"
	"membership-app/internal/domain/sprint"
	"membership-app/internal/domain/users"

	"github.com/gin-gonic/gin"
)

// Handler carries the repositories the admin screens report over.
type Handler struct {
	Orders      orders.Repository
	Memberships membership.Repository
}

func NewHandler(orderRepo orders.Repository, membershipRepo membership.Repository) *Handler {
	return &Handler{Orders: orderRepo, Memberships: membershipRepo}
}

type AdminUser struct {
	ID                uint       `json:"id"`
	Name              string     `json:"name"`
	Lastname          string     `json:"lastname"`
	Email             string     `json:"email"`
	Role              string     `json:"role"`
	IsVerified        bool       `json:"is_verified"`
	PlanName          *string    `json:"plan_name,omitempty"`
	StripeCustomerID  *string    `json:"stripe_customer_id,omitempty"`
	StripeSubID       *string    `json:"stripe_subscription_id,omitempty"`
	SubscriptionStart *time.Time `json:"subscription_start,omitempty"`
	SubscriptionEnd   *time.Time `json:"subscription_end,omitempty"`
}

type AdminStats struct {
	TotalUsers        int64 `json:"total_users"`
	TotalMemberships  int64 `json:"total_memberships"`
	TotalRevenueCents int64 `json:"total_revenue_cents"`
}

func (h *Handler) AdminDashboard(c *gin.Context) {
	var totalUsers int64
	database.DB.Model(&users.User{}).Count(&totalUsers)

	totalMemberships, err := h.Memberships.Count()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count memberships"})
		return
	}

	totalRevenue, err := h.Orders.GetTotalPaidAmount()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sum revenue"})
		return
	}

	c.JSON(http.StatusOK, AdminStats{
		TotalUsers:        totalUsers,
		TotalMemberships:  totalMemberships,
		TotalRevenueCents: totalRevenue,
	})
}

func (h *Handler) ListAllUsers(c *gin.Context) {
	var list []users.User
	err := database.DB.Preload("Plan").Find(&list).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
		return
	}

	var adminUsers []AdminUser
	for _, u := range list {
		var planName *string
		if u.Plan != nil {
			planName = &u.Plan.Name
		}

		adminUsers = append(adminUsers, AdminUser{
			ID:                u.ID,
			Name:              u.Name,
			Lastname:          u.Lastname,
			Email:             u.Email,
			Role:              u.Role,
			IsVerified:        u.IsVerified,
			PlanName:          planName,
			StripeCustomerID:  u.StripeCustomerID,
			StripeSubID:       u.SubscriptionId,
			SubscriptionStart: u.SubscriptionStart,
			SubscriptionEnd:   u.SubscriptionEnd,
		})
	}

	c.JSON(http.StatusOK, adminUsers)
}

func (h *Handler) GetUserDetails(c *gin.Context) {
	userID := c.Param("id")

	var user users.User
	if err := database.DB.Preload("Plan").First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var history []membership.Record
	if user.ID != 0 {
		history, _ = h.Memberships.FindByUser(user.ID)
	}

	var userOrders []orders.Order
	if user.ID != 0 {
		userOrders, _ = h.Orders.GetOrdersForUser(user.ID)
	}

	c.JSON(http.StatusOK, gin.H{
		"user":        user,
		"memberships": history,
		"orders":      userOrders,
	})
}

func (h *Handler) CreateCourse(c *gin.Context) {
	var body struct {
		Slug          string `json:"slug" binding:"required"`
		Title         string `json:"title" binding:"required"`
		Description   string `json:"description"`
		IsFree        bool   `json:"is_free"`
		RequiredLevel string `json:"required_level"`
		Published     bool   `json:"published"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	course := learn.Course{
		Slug:          body.Slug,
		Title:         body.Title,
		Description:   body.Description,
		IsFree:        body.IsFree,
		RequiredLevel: body.RequiredLevel,
		Published:     body.Published,
	}
	if err := database.DB.Create(&course).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Slug may already exist"})
		return
	}

	c.JSON(http.StatusCreated, course)
}

func (h *Handler) CreateBoard(c *gin.Context) {
	var body struct {
		Slug               string `json:"slug" binding:"required"`
		Name               string `json:"name" binding:"required"`
		Description        string `json:"description"`
		Type               string `json:"type"`
		RequiresMembership bool   `json:"requires_membership"`
		IsLocked           bool   `json:"is_locked"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	boardType := forum.BoardPublic
	if body.Type == string(forum.BoardPrivate) {
		boardType = forum.BoardPrivate
	}

	board := forum.Board{
		Slug:               body.Slug,
		Name:               body.Name,
		Description:        body.Description,
		Type:               boardType,
		RequiresMembership: body.RequiresMembership,
		IsLocked:           body.IsLocked,
	}
	if err := database.DB.Create(&board).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Slug may already exist"})
		return
	}

	c.JSON(http.StatusCreated, board)
}

func (h *Handler) CreateSprint(c *gin.Context) {
	var body struct {
		Slug               string    `json:"slug" binding:"required"`
		Title              string    `json:"title" binding:"required"`
		StartAt            time.Time `json:"start_at" binding:"required"`
		EndAt              time.Time `json:"end_at" binding:"required"`
		SubmissionDeadline time.Time `json:"submission_deadline" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if body.EndAt.Before(body.StartAt) || body.SubmissionDeadline.Before(body.StartAt) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Sprint window is inverted"})
		return
	}

	sp := sprint.Sprint{
		Slug:               body.Slug,
		Title:              body.Title,
		StartAt:            body.StartAt,
		EndAt:              body.EndAt,
		SubmissionDeadline: body.SubmissionDeadline,
	}
	if err := database.DB.Create(&sp).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Slug may already exist"})
		return
	}

	c.JSON(http.StatusCreated, sp)
}
