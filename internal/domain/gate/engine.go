package gate

import (
	"time"

	"membership-app/internal/domain/membership"
)

// Request is everything a policy may look at. Policies are pure over
// this value: no repository access, no clock reads. Now is supplied by
// the boundary so identical requests always produce identical responses.
type Request struct {
	UserID     uint // 0 = anonymous
	Action     Action
	Entity     any
	Membership membership.Membership
	Now        time.Time
}

// Authenticated reports whether a real user is acting.
func (r Request) Authenticated() bool {
	return r.UserID != 0
}

// Policy encapsulates one resource kind's visibility and action rules.
type Policy interface {
	CanPerform(req Request) Response
}

// Engine is the single authorization entry point. It resolves the
// caller's membership once, routes to the policy registered for the
// resource, and fails closed on anything it doesn't recognize.
type Engine struct {
	memberships *membership.Service
	policies    map[Resource]Policy
}

// DefaultPolicies registers every resource kind the platform ships.
func DefaultPolicies() map[Resource]Policy {
	return map[Resource]Policy{
		ResourceCourse:      LearnPolicy{},
		ResourceForumBoard:  ForumPolicy{},
		ResourceSprint:      SprintPolicy{},
		ResourceDuoPurchase: DuoPolicy{},
	}
}

func NewEngine(memberships *membership.Service, policies map[Resource]Policy) *Engine {
	reg := make(map[Resource]Policy, len(policies))
	for res, p := range policies {
		reg[res] = p
	}
	return &Engine{memberships: memberships, policies: reg}
}

// Evaluate decides whether userID may perform action on the entity of
// the given resource kind at the reference time now. An unregistered
// resource kind is a configuration fault, reported with its own reason
// code so it is never mistaken for a user-facing denial.
func (e *Engine) Evaluate(userID uint, resource Resource, action Action, entity any, now time.Time) (Response, error) {
	policy, ok := e.policies[resource]
	if !ok {
		return Deny(ReasonUnsupportedResource), nil
	}

	m, err := e.memberships.GetMembership(userID, now)
	if err != nil {
		return Response{}, err
	}

	return policy.CanPerform(Request{
		UserID:     userID,
		Action:     action,
		Entity:     entity,
		Membership: m,
		Now:        now,
	}), nil
}
