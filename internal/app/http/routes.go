package routes

import (
	adminapi "membership-app/internal/api/admin"
	authapi "membership-app/internal/api/auth"
	"membership-app/internal/api/billing"
	duoapi "membership-app/internal/api/duo"
	forumapi "membership-app/internal/api/forum"
	"membership-app/internal/api/gateapi"
	learnapi "membership-app/internal/api/learn"
	"membership-app/internal/api/plans"
	sprintapi "membership-app/internal/api/sprints"
	stripewebhooks "membership-app/internal/api/stripewebhook"
	usersapi "membership-app/internal/api/users"
	"membership-app/internal/app/http/middleware"
	"membership-app/internal/domain/membership"

	"github.com/gin-gonic/gin"
)

// Handlers bundles the constructed handler instances so route
// registration stays a pure wiring step.
type Handlers struct {
	Memberships *membership.Service
	Users       *usersapi.Handler
	Learn       *learnapi.Handler
	Forum       *forumapi.Handler
	Sprints     *sprintapi.Handler
	Duo         *duoapi.Handler
	Gate        *gateapi.Handler
	Admin       *adminapi.Handler
}

func RegisterRoutes(r *gin.Engine, h Handlers) {
	r.POST("/webhook", stripewebhooks.StripeWebhook)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Public routes, anonymous allowed; gate decisions degrade to guest.
	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware(), middleware.OptionalAuth())

	public.POST("/register", authapi.Register)
	public.POST("/login", authapi.Login)
	public.GET("/plans", plans.ListPlans)
	public.GET("/verify", usersapi.VerifyEmail)
	public.POST("/resend-verification", authapi.ResendVerification)
	public.POST("/request-password-reset", authapi.RequestPasswordReset)
	public.POST("/reset-password", authapi.ResetPassword)

	public.GET("/auth/google", authapi.GoogleStart)
	public.GET("/auth/google/callback", authapi.GoogleCallback)

	public.GET("/courses", h.Learn.ListCourses)
	public.GET("/courses/:slug", h.Learn.GetCourse)
	public.GET("/boards", h.Forum.ListBoards)
	public.GET("/boards/:slug", h.Forum.GetBoard)
	public.GET("/sprints/:slug", h.Sprints.GetSprint)
	public.POST("/gate/evaluate", h.Gate.Evaluate)

	// Authenticated
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware())
	auth.GET("/me", h.Users.GetCurrentUser)
	auth.GET("/payments", billing.GetPaymentHistory)
	auth.GET("/orders", billing.GetOrderHistory)
	auth.POST("/create-checkout-session", billing.CreateCheckoutSession)
	auth.POST("/billing-portal", billing.CreateBillingPortal)
	auth.POST("/change-password", authapi.ChangePassword)

	auth.POST("/boards/:slug/posts", h.Forum.CreatePost)
	auth.POST("/sprints/:slug/submissions", h.Sprints.Submit)

	auth.GET("/duo/options", h.Duo.GetOptions)
	auth.POST("/duo/checkout", h.Duo.Checkout)

	auth.GET("/entitlements/:type", h.Users.GetEntitlement)

	// Members only
	members := auth.Group("/")
	members.Use(middleware.RequireActiveMembership(h.Memberships))
	members.GET("/membership/history", h.Users.GetMembershipHistory)

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole("admin"))
	admin.GET("/dashboard", h.Admin.AdminDashboard)
	admin.GET("/users", h.Admin.ListAllUsers)
	admin.GET("/user/:id", h.Admin.GetUserDetails)
	admin.POST("/sync-plans", plans.SyncPlansFromStripe)
	admin.POST("/courses", h.Admin.CreateCourse)
	admin.POST("/boards", h.Admin.CreateBoard)
	admin.POST("/sprints", h.Admin.CreateSprint)
}
