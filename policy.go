package askademy

// View-action policy: total predicates deciding which destructive or
// privileged controls to offer the current actor. A nil identity means
// unauthenticated and always answers false. These are advisory for the UI
// only; the backend re-enforces every decision, and a denied backend call
// surfaces as a normal user-facing error.

// CanModerate reports whether the actor may moderate course content
// (professors and admins).
func CanModerate(identity *Identity) bool {
	if identity == nil {
		return false
	}
	return identity.Role == RoleProfessor || identity.Role == RoleAdmin
}

// CanDeleteQuestion allows the question's author or a moderator.
func CanDeleteQuestion(identity *Identity, question *Question) bool {
	if identity == nil || question == nil {
		return false
	}
	if question.Author != nil && question.Author.ID == identity.AccountID {
		return true
	}
	return CanModerate(identity)
}

// CanDeleteAnswer allows the answer's author or a moderator.
func CanDeleteAnswer(identity *Identity, answer *Answer) bool {
	if identity == nil || answer == nil {
		return false
	}
	if answer.Author != nil && answer.Author.ID == identity.AccountID {
		return true
	}
	return CanModerate(identity)
}

// CanVerifyAnswer is professor-only regardless of ownership; a professor
// verifies any student's answer, not their own content.
func CanVerifyAnswer(identity *Identity) bool {
	if identity == nil {
		return false
	}
	return identity.Role == RoleProfessor
}

// CanManageCourse gates course deletion and grading-guide edits, which are
// professor-scoped. Admins manage courses through the separate admin-only
// views, not through this predicate.
func CanManageCourse(identity *Identity, course *Course) bool {
	if identity == nil || course == nil {
		return false
	}
	return identity.Role == RoleProfessor
}
