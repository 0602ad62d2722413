package duo

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"membership-app/database"
	"membership-app/internal/domain/duo"
	"membership-app/internal/domain/gate"
	"membership-app/internal/domain/users"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v75"
	checkoutsession "github.com/stripe/stripe-go/v75/checkout/session"
)

type Handler struct {
	Engine   *gate.Engine
	Resolver *duo.Resolver
}

func NewHandler(engine *gate.Engine, resolver *duo.Resolver) *Handler {
	return &Handler{Engine: engine, Resolver: resolver}
}

// GetOptions returns the twelve-month purchase calendar for the
// requested year and tier.
func (h *Handler) GetOptions(c *gin.Context) {
	year, err := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(time.Now().Year())))
	if err != nil || year < 2000 || year > 2100 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid year"})
		return
	}

	tier, err := duo.ParseTier(c.DefaultQuery("tier", "go"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetUint("user_id")
	options, err := h.Resolver.Resolve(userID, year, tier, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve duo options"})
		return
	}

	c.JSON(http.StatusOK, options)
}

// Checkout creates a Stripe one-time payment session for the selected
// months. Each month is re-validated against the resolver so a stale
// client can never buy a past, owned or downgraded month.
func (h *Handler) Checkout(c *gin.Context) {
	var body struct {
		Year   int    `json:"year" binding:"required"`
		Tier   string `json:"tier" binding:"required"`
		Months []int  `json:"months" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(body.Months) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No months selected"})
		return
	}

	tier, err := duo.ParseTier(body.Tier)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	now := time.Now()
	userID := c.GetUint("user_id")

	decision, err := h.Engine.Evaluate(userID, gate.ResourceDuoPurchase, gate.ActionPurchase, nil, now)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to evaluate access"})
		return
	}
	if !decision.Allowed {
		c.JSON(http.StatusForbidden, gin.H{"gate": decision})
		return
	}

	options, err := h.Resolver.Resolve(userID, body.Year, tier, now)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve duo options"})
		return
	}

	byMonth := make(map[int]duo.MonthOption, 12)
	for _, opt := range options.Options {
		byMonth[opt.Month] = opt
	}

	var total int64
	monthStrs := make([]string, 0, len(body.Months))
	for _, m := range body.Months {
		opt, ok := byMonth[m]
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Invalid month %d", m)})
			return
		}
		switch opt.State {
		case duo.StateAvailable, duo.StateUpgrade:
			total += opt.Price
			monthStrs = append(monthStrs, strconv.Itoa(m))
		default:
			c.JSON(http.StatusConflict, gin.H{"error": fmt.Sprintf("Month %d is not purchasable", m), "option": opt})
			return
		}
	}

	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")
	if stripe.Key == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Stripe key not configured"})
		return
	}

	var user users.User
	if err := database.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return
	}

	appURL := os.Getenv("APP_URL")
	if appURL == "" {
		appURL = "http://localhost:5173"
	}

	params := &stripe.CheckoutSessionParams{
		SuccessURL: stripe.String(appURL + "/duo?purchased=1"),
		CancelURL:  stripe.String(appURL + "/duo?canceled=1"),
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),

		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String("eur"),
					UnitAmount: stripe.Int64(total),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(fmt.Sprintf("Duo pass %s, %d month(s) of %d", tier, len(monthStrs), body.Year)),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},

		ClientReferenceID: stripe.String(fmt.Sprint(user.ID)),

		PaymentIntentData: &stripe.CheckoutSessionPaymentIntentDataParams{
			Metadata: map[string]string{
				"kind":    "duo_pass",
				"user_id": fmt.Sprint(user.ID),
				"year":    strconv.Itoa(body.Year),
				"tier":    tier.String(),
				"months":  strings.Join(monthStrs, ","),
			},
		},
	}
	params.AddMetadata("kind", "duo_pass")
	params.AddMetadata("user_id", fmt.Sprint(user.ID))
	params.AddMetadata("year", strconv.Itoa(body.Year))
	params.AddMetadata("tier", tier.String())
	params.AddMetadata("months", strings.Join(monthStrs, ","))

	s, err := checkoutsession.New(params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create checkout session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": s.URL, "total": total})
}
