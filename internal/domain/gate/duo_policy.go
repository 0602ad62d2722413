package gate

// DuoPolicy gates the duo-pass purchase flow. Pricing and per-month
// availability live in the duo resolver; the gate only answers whether
// the caller may enter the flow at all.
type DuoPolicy struct{}

func (DuoPolicy) CanPerform(req Request) Response {
	switch req.Action {
	case ActionView:
		return Allow()
	case ActionPurchase:
		if !req.Authenticated() {
			return Deny(ReasonNotAuthenticated)
		}
		return Allow()
	default:
		return Deny(ReasonUnsupportedAction)
	}
}
