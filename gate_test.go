package askademy_test

import (
	"testing"

	"github.com/askademy/client-go"
	"github.com/stretchr/testify/assert"
)

func TestGate_Evaluate(t *testing.T) {
	student := &askademy.Identity{AccountID: 7, Email: "ada@university.edu", Role: askademy.RoleStudent}
	professor := &askademy.Identity{AccountID: 12, Email: "grace@university.edu", Role: askademy.RoleProfessor}
	admin := &askademy.Identity{AccountID: 1, Email: "root@university.edu", Role: askademy.RoleAdmin}

	tests := []struct {
		name     string
		session  *fakeSessionState
		required []askademy.Role
		want     askademy.Decision
	}{
		{
			name:    "restore in flight is pending, never a denial",
			session: &fakeSessionState{loading: true},
			want:    askademy.DecisionPending,
		},
		{
			name:     "restore in flight is pending even for restricted views",
			session:  &fakeSessionState{loading: true},
			required: []askademy.Role{askademy.RoleAdmin},
			want:     askademy.DecisionPending,
		},
		{
			name:    "no identity on an open view",
			session: &fakeSessionState{},
			want:    askademy.DecisionDeniedUnauthenticated,
		},
		{
			name:     "no identity on a restricted view",
			session:  &fakeSessionState{},
			required: []askademy.Role{askademy.RoleAdmin},
			want:     askademy.DecisionDeniedUnauthenticated,
		},
		{
			name:    "any authenticated user passes an unrestricted view",
			session: &fakeSessionState{identity: student},
			want:    askademy.DecisionAllowed,
		},
		{
			name:     "matching role passes",
			session:  &fakeSessionState{identity: admin},
			required: []askademy.Role{askademy.RoleAdmin},
			want:     askademy.DecisionAllowed,
		},
		{
			name:     "any of several required roles passes",
			session:  &fakeSessionState{identity: professor},
			required: []askademy.Role{askademy.RoleProfessor, askademy.RoleAdmin},
			want:     askademy.DecisionAllowed,
		},
		{
			name:     "wrong role is forbidden, not a sign-in redirect",
			session:  &fakeSessionState{identity: student},
			required: []askademy.Role{askademy.RoleAdmin},
			want:     askademy.DecisionDeniedForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gate := askademy.NewGate(tt.session)
			got := gate.Evaluate(tt.required...)
			assert.Equal(t, tt.want, got)

			if tt.want == askademy.DecisionDeniedForbidden {
				assert.False(t, got.RequiresSignIn(),
					"an authenticated but under-privileged user must not be bounced to sign-in")
			}
		})
	}

	t.Run("nil session is pending", func(t *testing.T) {
		gate := askademy.NewGate(nil)
		assert.Equal(t, askademy.DecisionPending, gate.Evaluate())
	})
}

func TestGate_EvaluateView(t *testing.T) {
	adminView := askademy.View{
		Name:     "admin",
		Path:     "/admin",
		Required: []askademy.Role{askademy.RoleAdmin},
	}

	gate := askademy.NewGate(&fakeSessionState{
		identity: &askademy.Identity{AccountID: 7, Role: askademy.RoleStudent},
	})

	assert.Equal(t, askademy.DecisionDeniedForbidden, gate.EvaluateView(adminView))
}

func TestDecision_helpers(t *testing.T) {
	assert.True(t, askademy.DecisionAllowed.Allowed())
	assert.False(t, askademy.DecisionPending.Allowed())
	assert.True(t, askademy.DecisionDeniedUnauthenticated.RequiresSignIn())
	assert.False(t, askademy.DecisionDeniedForbidden.RequiresSignIn())
}
