package askademy

// Decision is the outcome of evaluating a guarded view against the session.
type Decision string

const (
	// DecisionPending means the initial restore has not finished; render a
	// neutral placeholder and do not redirect yet.
	DecisionPending Decision = "pending"
	// DecisionAllowed means the guarded view may render.
	DecisionAllowed Decision = "allowed"
	// DecisionDeniedUnauthenticated means there is no identity; redirect to
	// sign-in.
	DecisionDeniedUnauthenticated Decision = "denied_unauthenticated"
	// DecisionDeniedForbidden means the user is authenticated but their role
	// is not permitted for this view; render an explicit not-permitted
	// outcome, do not redirect.
	DecisionDeniedForbidden Decision = "denied_forbidden"
)

// Allowed reports whether the guarded content may render.
func (d Decision) Allowed() bool { return d == DecisionAllowed }

// RequiresSignIn reports whether the correct reaction is a sign-in redirect.
func (d Decision) RequiresSignIn() bool { return d == DecisionDeniedUnauthenticated }

// View is a declared navigation target with an optional role restriction.
// An empty Required set means any authenticated user may enter.
type View struct {
	Name     string
	Path     string
	Required []Role
}

// Gate decides whether a navigation target may render for the current
// session. Decisions are computed fresh on every call; nothing is cached
// across navigations.
type Gate struct {
	session SessionState
}

func NewGate(session SessionState) *Gate {
	return &Gate{session: session}
}

// Evaluate runs the guard state machine for a view requiring the given
// roles. The loading check comes first so a legitimate restore never flashes
// the sign-in view.
func (g *Gate) Evaluate(required ...Role) Decision {
	if g.session == nil || g.session.Loading() {
		return DecisionPending
	}

	identity, ok := g.session.Identity()
	if !ok {
		return DecisionDeniedUnauthenticated
	}

	if len(required) == 0 {
		return DecisionAllowed
	}

	for _, role := range required {
		if identity.Role == role {
			return DecisionAllowed
		}
	}

	return DecisionDeniedForbidden
}

// EvaluateView evaluates a declared view.
func (g *Gate) EvaluateView(view View) Decision {
	return g.Evaluate(view.Required...)
}
