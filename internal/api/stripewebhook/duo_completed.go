package stripewebhooks

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"membership-app/database"
	"membership-app/internal/domain/duo"
	"membership-app/internal/domain/users"

	"github.com/stripe/stripe-go/v75"
	"gorm.io/gorm/clause"
)

// handleDuoCheckoutCompleted grants (or upgrades) the purchased duo
// months. Granting is an upsert on (user, year, month), so an upgrade
// replaces the old tier row and the one-pass-per-month invariant holds.
func handleDuoCheckoutCompleted(session *stripe.CheckoutSession) error {
	md := session.Metadata
	if md == nil {
		return errors.New("duo checkout session missing metadata")
	}

	userID, err := strconv.ParseUint(md["user_id"], 10, 64)
	if err != nil || userID == 0 {
		return fmt.Errorf("invalid duo user_id %q", md["user_id"])
	}
	year, err := strconv.Atoi(md["year"])
	if err != nil {
		return fmt.Errorf("invalid duo year %q", md["year"])
	}
	tier, err := duo.ParseTier(md["tier"])
	if err != nil {
		return err
	}

	var user users.User
	if err := database.DB.Where("id = ?", uint(userID)).First(&user).Error; err != nil {
		return fmt.Errorf("user not found: %w", err)
	}

	sessionID := session.ID
	for _, raw := range strings.Split(md["months"], ",") {
		month, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil || month < 1 || month > 12 {
			return fmt.Errorf("invalid duo month %q", raw)
		}

		pass := duo.Pass{
			UserID:          user.ID,
			Year:            year,
			Month:           month,
			Tier:            tier.String(),
			StripeSessionID: &sessionID,
		}
		err = database.DB.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "year"}, {Name: "month"}},
			DoUpdates: clause.AssignmentColumns([]string{"tier", "stripe_session_id", "updated_at"}),
		}).Create(&pass).Error
		if err != nil {
			return fmt.Errorf("failed to grant duo pass %d-%02d: %w", year, month, err)
		}
	}

	return nil
}
