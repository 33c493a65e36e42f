package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryForPath(t *testing.T) {
	tests := []struct {
		path string
		want RouteCategory
	}{
		{"/age-gate", RoutePublic},
		{"/blocked", RoutePublic},
		{"/login", RouteAuth},
		{"/signup", RouteAuth},
		{"/callback", RouteAuth},
		{"/setup-profile", RouteOnboarding},
		{"/feed", RouteProfileGated},
		{"/profile", RouteProfileGated},
		{"/pairings/3f1c", RouteProfileGated},
		{"/about", RouteOther},
		{"/", RouteOther},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, CategoryForPath(tt.path))
		})
	}
}

func TestEvaluate_RuleTable(t *testing.T) {
	verified := Facts{AgeVerified: true}
	session := Facts{AgeVerified: true, SessionPresent: true}
	complete := Facts{AgeVerified: true, SessionPresent: true, ProfileExists: true}

	tests := []struct {
		name     string
		category RouteCategory
		facts    Facts
		want     Decision
	}{
		{"age gate always allowed", RoutePublic, Facts{}, Decision{Action: ActionAllow}},
		{"blocked page allowed without cookie", RoutePublic, Facts{}, Decision{Action: ActionAllow}},
		{"unverified visitor sent to age gate", RouteProfileGated, Facts{}, Decision{Action: ActionRedirect, Target: TargetAgeGate}},
		{"unverified visitor on other path sent to age gate", RouteOther, Facts{}, Decision{Action: ActionRedirect, Target: TargetAgeGate}},
		{"login without session allowed", RouteAuth, verified, Decision{Action: ActionAllow}},
		{"login with session bounced to feed", RouteAuth, session, Decision{Action: ActionRedirect, Target: TargetFeed}},
		{"onboarding without session sent to login", RouteOnboarding, verified, Decision{Action: ActionRedirect, Target: TargetLogin}},
		{"onboarding with session allowed", RouteOnboarding, session, Decision{Action: ActionAllow}},
		{"feed without session sent to login", RouteProfileGated, verified, Decision{Action: ActionRedirect, Target: TargetLogin}},
		{"feed without profile sent to setup", RouteProfileGated, session, Decision{Action: ActionRedirect, Target: TargetSetupProfile}},
		{"feed with profile allowed", RouteProfileGated, complete, Decision{Action: ActionAllow}},
		{"other path passes once verified", RouteOther, verified, Decision{Action: ActionAllow}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Evaluate(tt.category, tt.facts))
		})
	}
}

func TestEvaluate_IsPure(t *testing.T) {
	facts := Facts{AgeVerified: true, SessionPresent: true}

	first := Evaluate(RouteProfileGated, facts)
	second := Evaluate(RouteProfileGated, facts)

	assert.Equal(t, first, second)
}
