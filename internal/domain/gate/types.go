package gate

// Resource is the closed set of resource kinds the engine understands.
// Adding a kind means registering a policy for it; there is no dynamic
// fallback.
type Resource string

const (
	ResourceCourse      Resource = "course"
	ResourceForumBoard  Resource = "forum_board"
	ResourceSprint      Resource = "sprint"
	ResourceDuoPurchase Resource = "duo_purchase"
)

// Action is the closed set of verbs. The legal action set depends on
// the resource kind; policies reject combinations they don't know.
type Action string

const (
	ActionView     Action = "view"
	ActionPost     Action = "post"
	ActionSubmit   Action = "submit"
	ActionPurchase Action = "purchase"
)

// Reason explains a gate decision. Denial reasons are data, not errors.
type Reason string

const (
	ReasonOK                  Reason = "OK"
	ReasonNotAuthenticated    Reason = "NOT_AUTHENTICATED"
	ReasonInsufficientTier    Reason = "INSUFFICIENT_TIER"
	ReasonMembershipRequired  Reason = "MEMBERSHIP_REQUIRED"
	ReasonBoardLocked         Reason = "BOARD_LOCKED"
	ReasonBoardPrivate        Reason = "BOARD_PRIVATE"
	ReasonSprintNotActive     Reason = "SPRINT_NOT_ACTIVE"
	ReasonSubmissionClosed    Reason = "SUBMISSION_CLOSED"
	ReasonUnsupportedAction   Reason = "UNSUPPORTED_ACTION"
	ReasonUnsupportedResource Reason = "UNSUPPORTED_RESOURCE"
)

// NextAction tells the client what would change the outcome.
type NextAction string

const (
	NextLogin   NextAction = "login"
	NextUpgrade NextAction = "upgrade"
	NextNone    NextAction = "none"
)

// Response is the uniform decision value. Immutable, one per
// evaluation, never stored.
type Response struct {
	Allowed    bool       `json:"allowed"`
	Reason     Reason     `json:"reason"`
	NextAction NextAction `json:"next_action"`
}

// Allow is the single success shape so no policy can pair allowed=true
// with a denial reason.
func Allow() Response {
	return Response{Allowed: true, Reason: ReasonOK, NextAction: NextNone}
}

// Deny builds a denial and derives the next action from the reason in
// one place, so policies never pick next actions themselves.
func Deny(reason Reason) Response {
	return Response{Allowed: false, Reason: reason, NextAction: nextActionFor(reason)}
}

func nextActionFor(reason Reason) NextAction {
	switch reason {
	case ReasonNotAuthenticated:
		return NextLogin
	case ReasonInsufficientTier, ReasonMembershipRequired:
		return NextUpgrade
	default:
		return NextNone
	}
}
