package gate

import (
	"membership-app/internal/domain/sprint"
)

// SprintPolicy gates sprint visibility and submission windows. All date
// comparisons run against the request's reference time, never the
// ambient clock.
type SprintPolicy struct{}

func (SprintPolicy) CanPerform(req Request) Response {
	sp, ok := req.Entity.(*sprint.Sprint)
	if !ok || sp == nil {
		return Deny(ReasonUnsupportedResource)
	}

	switch req.Action {
	case ActionView:
		return Allow()
	case ActionSubmit:
		if !req.Authenticated() {
			return Deny(ReasonNotAuthenticated)
		}
		if !sp.IsActive(req.Now) {
			return Deny(ReasonSprintNotActive)
		}
		if !sp.AcceptsSubmissions(req.Now) {
			return Deny(ReasonSubmissionClosed)
		}
		return Allow()
	default:
		return Deny(ReasonUnsupportedAction)
	}
}
