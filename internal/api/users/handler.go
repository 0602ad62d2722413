package users

import (
	"net/http"
	"time"

	"membership-app/database"
	"membership-app/internal/domain/duo"
	"membership-app/internal/domain/entitlements"
	"membership-app/internal/domain/membership"
	"membership-app/internal/domain/users"

	"github.com/gin-gonic/gin"
)

// Handler serves the user-facing account endpoints. The membership
// service and duo repository are injected so the handler never derives
// tier state on its own.
type Handler struct {
	Memberships  *membership.Service
	Records      membership.Repository
	Entitlements *entitlements.Service
	DuoPasses    duo.Repository
}

func NewHandler(memberships *membership.Service, records membership.Repository, ents *entitlements.Service, duoPasses duo.Repository) *Handler {
	return &Handler{Memberships: memberships, Records: records, Entitlements: ents, DuoPasses: duoPasses}
}

func (h *Handler) GetCurrentUser(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var user users.User
	if err := database.DB.
		Preload("Plan").
		Where("id = ?", userID).
		First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	now := time.Now()

	m, err := h.Memberships.GetMembership(user.ID, now)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve membership"})
		return
	}

	passes, err := h.DuoPasses.GetPassesForUser(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load duo passes"})
		return
	}

	resp := MeResponse{
		User: UserDTO{
			ID:         user.ID,
			Email:      user.Email,
			Name:       user.Name,
			Lastname:   user.Lastname,
			Role:       user.Role,
			IsVerified: user.IsVerified,
		},
		Membership: BuildMembershipDTO(m),
		Billing: BillingDTO{
			Plan:         BuildPlanDTO(user.Plan),
			Subscription: BuildSubscriptionDTO(user),
		},
		Duo: BuildDuoDTO(passes, now),
	}

	c.JSON(http.StatusOK, resp)
}

// GetEntitlement answers whether the caller holds a one-off grant of
// the named type. Absence comes back as active=false, not 404.
func (h *Handler) GetEntitlement(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	status, err := h.Entitlements.GetStatus(userID, c.Param("type"), time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve entitlement"})
		return
	}

	c.JSON(http.StatusOK, status)
}

// GetMembershipHistory lists the caller's granted membership periods.
// Members-only: the route sits behind the active-membership guard.
func (h *Handler) GetMembershipHistory(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	records, err := h.Records.FindByUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load membership history"})
		return
	}

	c.JSON(http.StatusOK, records)
}

func VerifyEmail(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing token"})
		return
	}

	var t users.VerificationToken
	if err := database.DB.Where("token = ?", token).First(&t).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired token"})
		return
	}

	if err := database.DB.Model(&users.User{}).Where("id = ?", t.UserID).Update("is_verified", true).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify user"})
		return
	}

	database.DB.Delete(&t)

	redirectURL := "http://localhost:5173/signin"
	c.Redirect(http.StatusTemporaryRedirect, redirectURL)
}
