package askademy

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/goliatone/go-errors"
)

// LoginInput is the pre-submission shape of a sign-in attempt.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate runs client-side validation before the request is submitted.
func (i LoginInput) Validate() *errors.Error {
	return errors.ValidateWithOzzo(func() error {
		return validation.ValidateStruct(&i,
			validation.Field(&i.Email, validation.Required, is.EmailFormat),
			validation.Field(&i.Password, validation.Required),
		)
	}, "Invalid login payload")
}

// RegisterInput is the pre-submission shape of an account registration.
type RegisterInput struct {
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"`
}

// Validate enforces the same minimums the browser client did: valid email,
// at least six password characters, a known role.
func (i RegisterInput) Validate() *errors.Error {
	return errors.ValidateWithOzzo(func() error {
		return validation.ValidateStruct(&i,
			validation.Field(&i.Email, validation.Required, is.EmailFormat),
			validation.Field(&i.Password, validation.Required, validation.Length(6, 0)),
			validation.Field(&i.Role, validation.Required, validation.By(validRole)),
		)
	}, "Invalid registration payload")
}

func validRole(value any) error {
	s, _ := value.(string)
	if _, ok := ParseRole(s); !ok {
		return validation.NewError("validation_role", "must be one of STUDENT, PROFESSOR, ADMIN")
	}
	return nil
}
