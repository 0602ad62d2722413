package gate

import (
	"membership-app/internal/domain/learn"
	"membership-app/internal/domain/membership"
)

// LearnPolicy gates course access on membership tier. Free courses are
// visible to everyone, anonymous callers included.
type LearnPolicy struct{}

func (LearnPolicy) CanPerform(req Request) Response {
	course, ok := req.Entity.(*learn.Course)
	if !ok || course == nil {
		return Deny(ReasonUnsupportedResource)
	}

	switch req.Action {
	case ActionView:
		return canViewCourse(req, course)
	default:
		return Deny(ReasonUnsupportedAction)
	}
}

func canViewCourse(req Request, course *learn.Course) Response {
	if course.IsFree {
		return Allow()
	}
	if !req.Authenticated() {
		return Deny(ReasonNotAuthenticated)
	}

	// An inactive membership grants no tier, whatever it once was.
	effective := membership.TierNone
	if req.Membership.Active() {
		effective = req.Membership.Tier
	}

	required := membership.ParseTier(course.RequiredLevel)
	if !effective.AtLeast(required) {
		return Deny(ReasonInsufficientTier)
	}
	return Allow()
}
