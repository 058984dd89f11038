package askademy

// Identity is the actor derived from the current credential. Exactly one
// Identity is active per session, or none; a credential that fails to decode
// never yields a partially populated Identity.
type Identity struct {
	AccountID int64  `json:"id"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
}

// Is reports whether the identity carries the given role.
func (i Identity) Is(role Role) bool {
	return i.Role == role
}
