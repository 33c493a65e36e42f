// Package policy holds the pure route-access rule table. It performs no I/O;
// callers resolve the session and profile facts and pass them in.
package policy

import "strings"

// RouteCategory classifies a request path once, at the edge, so the rule table
// below cannot drift from ad hoc per-path string checks.
type RouteCategory int

const (
	// RoutePublic paths are reachable without any checks (age gate itself,
	// the underage block page).
	RoutePublic RouteCategory = iota

	// RouteAuth paths host login/signup/oauth-callback; a signed-in visitor
	// is bounced to the feed.
	RouteAuth

	// RouteOnboarding paths require a session but deliberately not a profile.
	RouteOnboarding

	// RouteProfileGated paths require a session and a completed profile.
	RouteProfileGated

	// RouteOther is everything else: allowed once the age gate passes.
	RouteOther
)

// Redirect targets used by the evaluator.
const (
	TargetAgeGate      = "/age-gate"
	TargetLogin        = "/login"
	TargetSetupProfile = "/setup-profile"
	TargetFeed         = "/feed"
	TargetBlocked      = "/blocked"
)

// CategoryForPath resolves the category for a request path. Matching is on the
// first path segment so nested pages (e.g. /pairings/123) inherit the parent's
// category.
func CategoryForPath(path string) RouteCategory {
	switch firstSegment(path) {
	case "age-gate", "blocked":
		return RoutePublic
	case "login", "signup", "callback":
		return RouteAuth
	case "setup-profile":
		return RouteOnboarding
	case "feed", "profile", "pairings":
		return RouteProfileGated
	default:
		return RouteOther
	}
}

func firstSegment(path string) string {
	trimmed := strings.TrimPrefix(path, "/")
	if idx := strings.IndexByte(trimmed, '/'); idx >= 0 {
		trimmed = trimmed[:idx]
	}

	return trimmed
}

// Facts are the externally resolved inputs to the rule table.
type Facts struct {
	AgeVerified    bool // A valid age token proving legal drinking age.
	SessionPresent bool // An authenticated session exists.
	ProfileExists  bool // A profile row exists for the session's account.
}

// Action is the evaluator's verdict kind.
type Action int

const (
	ActionAllow Action = iota
	ActionRedirect
)

// Decision is the evaluator's verdict.
type Decision struct {
	Action Action
	Target string // Redirect target; empty when Action is ActionAllow.
}

func allow() Decision {
	return Decision{Action: ActionAllow}
}

func redirect(target string) Decision {
	return Decision{Action: ActionRedirect, Target: target}
}

// Evaluate applies the rule table in precedence order:
//  1. public paths are always allowed;
//  2. without age verification everything else redirects to the age gate;
//  3. auth paths bounce signed-in visitors to the feed;
//  4. onboarding paths require a session;
//  5. profile-gated paths require a session and a profile;
//  6. everything else passes through.
func Evaluate(category RouteCategory, facts Facts) Decision {
	if category == RoutePublic {
		return allow()
	}

	if !facts.AgeVerified {
		return redirect(TargetAgeGate)
	}

	switch category {
	case RouteAuth:
		if facts.SessionPresent {
			return redirect(TargetFeed)
		}

		return allow()

	case RouteOnboarding:
		if !facts.SessionPresent {
			return redirect(TargetLogin)
		}

		return allow()

	case RouteProfileGated:
		if !facts.SessionPresent {
			return redirect(TargetLogin)
		}
		if !facts.ProfileExists {
			return redirect(TargetSetupProfile)
		}

		return allow()

	default:
		return allow()
	}
}
