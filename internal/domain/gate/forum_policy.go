package gate

import (
	"membership-app/internal/domain/forum"
)

// ForumPolicy gates board visibility and posting. A locked board stays
// readable but rejects new posts.
type ForumPolicy struct{}

func (ForumPolicy) CanPerform(req Request) Response {
	board, ok := req.Entity.(*forum.Board)
	if !ok || board == nil {
		return Deny(ReasonUnsupportedResource)
	}

	switch req.Action {
	case ActionView:
		return canViewBoard(req, board)
	case ActionPost:
		if board.IsLocked {
			return Deny(ReasonBoardLocked)
		}
		view := canViewBoard(req, board)
		if !view.Allowed {
			return view
		}
		if !req.Authenticated() {
			return Deny(ReasonNotAuthenticated)
		}
		return Allow()
	default:
		return Deny(ReasonUnsupportedAction)
	}
}

func canViewBoard(req Request, board *forum.Board) Response {
	if board.Type != forum.BoardPublic {
		return Deny(ReasonBoardPrivate)
	}
	if !board.RequiresMembership {
		return Allow()
	}

	// Members-only board: any active tier will do.
	if !req.Authenticated() {
		return Deny(ReasonNotAuthenticated)
	}
	if !req.Membership.Active() {
		return Deny(ReasonMembershipRequired)
	}
	return Allow()
}
