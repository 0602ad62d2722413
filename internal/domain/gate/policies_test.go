package gate_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"membership-app/internal/domain/forum"
	"membership-app/internal/domain/gate"
	"membership-app/internal/domain/membership"
	"membership-app/internal/domain/sprint"
)

func activeMembership(tier membership.Tier) membership.Membership {
	since := refTime.AddDate(0, -1, 0)
	until := refTime.AddDate(0, 1, 0)
	return membership.Membership{
		UserID: 7,
		Tier:   tier,
		Status: membership.StatusActive,
		Since:  &since,
		Until:  &until,
	}
}

func TestForumPublicBoardViewableByAnyone(t *testing.T) {
	board := &forum.Board{Type: forum.BoardPublic}

	resp := gate.ForumPolicy{}.CanPerform(gate.Request{
		UserID: 0,
		Action: gate.ActionView,
		Entity: board,
		Now:    refTime,
	})

	assert.True(t, resp.Allowed)
}

func TestForumPrivateBoardHiddenEvenFromMembers(t *testing.T) {
	board := &forum.Board{Type: forum.BoardPrivate}

	resp := gate.ForumPolicy{}.CanPerform(gate.Request{
		UserID:     7,
		Action:     gate.ActionView,
		Entity:     board,
		Membership: activeMembership(membership.TierPro),
		Now:        refTime,
	})

	assert.False(t, resp.Allowed)
	assert.Equal(t, gate.ReasonBoardPrivate, resp.Reason)
}

func TestForumMembersBoardRequiresActiveMembership(t *testing.T) {
	board := &forum.Board{Type: forum.BoardPublic, RequiresMembership: true}

	resp := gate.ForumPolicy{}.CanPerform(gate.Request{
		UserID: 7,
		Action: gate.ActionView,
		Entity: board,
		Membership: membership.Membership{
			UserID: 7,
			Tier:   membership.TierPro,
			Status: membership.StatusExpired,
		},
		Now: refTime,
	})

	assert.False(t, resp.Allowed)
	assert.Equal(t, gate.ReasonMembershipRequired, resp.Reason)
	assert.Equal(t, gate.NextUpgrade, resp.NextAction)
}

func TestForumMembersBoardAnonymousGetsLogin(t *testing.T) {
	board := &forum.Board{Type: forum.BoardPublic, RequiresMembership: true}

	resp := gate.ForumPolicy{}.CanPerform(gate.Request{
		UserID: 0,
		Action: gate.ActionView,
		Entity: board,
		Now:    refTime,
	})

	assert.False(t, resp.Allowed)
	assert.Equal(t, gate.ReasonNotAuthenticated, resp.Reason)
	assert.Equal(t, gate.NextLogin, resp.NextAction)
}

func TestForumLockedBoardReadableButNotPostable(t *testing.T) {
	board := &forum.Board{Type: forum.BoardPublic, IsLocked: true}

	view := gate.ForumPolicy{}.CanPerform(gate.Request{
		UserID:     7,
		Action:     gate.ActionView,
		Entity:     board,
		Membership: activeMembership(membership.TierExplorer),
		Now:        refTime,
	})
	assert.True(t, view.Allowed)

	post := gate.ForumPolicy{}.CanPerform(gate.Request{
		UserID:     7,
		Action:     gate.ActionPost,
		Entity:     board,
		Membership: activeMembership(membership.TierExplorer),
		Now:        refTime,
	})
	assert.False(t, post.Allowed)
	assert.Equal(t, gate.ReasonBoardLocked, post.Reason)
}

func TestForumPostRequiresAuthentication(t *testing.T) {
	board := &forum.Board{Type: forum.BoardPublic}

	resp := gate.ForumPolicy{}.CanPerform(gate.Request{
		UserID: 0,
		Action: gate.ActionPost,
		Entity: board,
		Now:    refTime,
	})

	assert.False(t, resp.Allowed)
	assert.Equal(t, gate.ReasonNotAuthenticated, resp.Reason)
}

func TestSprintViewAlwaysAllowed(t *testing.T) {
	sp := &sprint.Sprint{
		StartAt: refTime.AddDate(0, 1, 0),
		EndAt:   refTime.AddDate(0, 2, 0),
	}

	resp := gate.SprintPolicy{}.CanPerform(gate.Request{
		UserID: 0,
		Action: gate.ActionView,
		Entity: sp,
		Now:    refTime,
	})

	assert.True(t, resp.Allowed)
}

func TestSprintSubmitOutsideWindow(t *testing.T) {
	sp := &sprint.Sprint{
		StartAt:            refTime.AddDate(0, 0, 1),
		EndAt:              refTime.AddDate(0, 0, 10),
		SubmissionDeadline: refTime.AddDate(0, 0, 9),
	}

	resp := gate.SprintPolicy{}.CanPerform(gate.Request{
		UserID: 7,
		Action: gate.ActionSubmit,
		Entity: sp,
		Now:    refTime,
	})

	assert.False(t, resp.Allowed)
	assert.Equal(t, gate.ReasonSprintNotActive, resp.Reason)
}

func TestSprintSubmitDeadlineBoundary(t *testing.T) {
	deadline := time.Date(2025, 6, 20, 23, 59, 59, 0, time.UTC)
	sp := &sprint.Sprint{
		StartAt:            refTime.AddDate(0, 0, -5),
		EndAt:              refTime.AddDate(0, 0, 10),
		SubmissionDeadline: deadline,
	}

	atDeadline := gate.SprintPolicy{}.CanPerform(gate.Request{
		UserID: 7,
		Action: gate.ActionSubmit,
		Entity: sp,
		Now:    deadline,
	})
	assert.True(t, atDeadline.Allowed, "submission exactly at the deadline counts")

	after := gate.SprintPolicy{}.CanPerform(gate.Request{
		UserID: 7,
		Action: gate.ActionSubmit,
		Entity: sp,
		Now:    deadline.Add(time.Second),
	})
	assert.False(t, after.Allowed)
	assert.Equal(t, gate.ReasonSubmissionClosed, after.Reason)
}

func TestSprintSubmitRequiresAuthentication(t *testing.T) {
	sp := &sprint.Sprint{
		StartAt:            refTime.AddDate(0, 0, -1),
		EndAt:              refTime.AddDate(0, 0, 1),
		SubmissionDeadline: refTime.AddDate(0, 0, 1),
	}

	resp := gate.SprintPolicy{}.CanPerform(gate.Request{
		UserID: 0,
		Action: gate.ActionSubmit,
		Entity: sp,
		Now:    refTime,
	})

	assert.False(t, resp.Allowed)
	assert.Equal(t, gate.ReasonNotAuthenticated, resp.Reason)
}

func TestDuoPurchaseRequiresAuthentication(t *testing.T) {
	anon := gate.DuoPolicy{}.CanPerform(gate.Request{
		UserID: 0,
		Action: gate.ActionPurchase,
		Now:    refTime,
	})
	assert.False(t, anon.Allowed)
	assert.Equal(t, gate.ReasonNotAuthenticated, anon.Reason)

	user := gate.DuoPolicy{}.CanPerform(gate.Request{
		UserID: 7,
		Action: gate.ActionPurchase,
		Now:    refTime,
	})
	assert.True(t, user.Allowed)
}

func TestUnknownActionRejected(t *testing.T) {
	board := &forum.Board{Type: forum.BoardPublic}

	resp := gate.ForumPolicy{}.CanPerform(gate.Request{
		UserID: 7,
		Action: gate.Action("archive"),
		Entity: board,
		Now:    refTime,
	})

	assert.False(t, resp.Allowed)
	assert.Equal(t, gate.ReasonUnsupportedAction, resp.Reason)
}
