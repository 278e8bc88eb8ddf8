package wizard

import (
	"fmt"
	"strings"

	"gymnexa/services/forms"
	"gymnexa/services/messages"
)

const (
	SignupSteps    = 4
	MinPasswordLen = 6
)

// SignupForm is the data collected across the four signup steps.
type SignupForm struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	forms.Personal
	Address         forms.Address `json:"address"`
	Password        string        `json:"password"`
	ConfirmPassword string        `json:"confirmPassword"`
}

// Signup is the email/password registration wizard.
type Signup struct {
	Controller
	Form SignupForm `json:"form"`
}

func NewSignup() *Signup {
	return &Signup{
		Controller: NewController(SignupSteps),
		Form:       SignupForm{Address: forms.NewAddress()},
	}
}

// Update applies one field edit. Every signup field may be edited at any step.
func (s *Signup) Update(u forms.FieldUpdate) error {
	f := &s.Form
	switch u.Field {
	case forms.FirstName:
		f.FirstName = u.Value
	case forms.LastName:
		f.LastName = u.Value
	case forms.Email:
		f.Email = u.Value
	case forms.Password:
		f.Password = u.Value
	case forms.ConfirmPassword:
		f.ConfirmPassword = u.Value
	default:
		if ok, err := f.Personal.Set(u.Field, u.Value); ok {
			return err
		}
		if !f.Address.Set(u.Field, u.Value) {
			return fmt.Errorf("%w: %s", forms.ErrFieldNotInForm, u.Field)
		}
	}
	return nil
}

// Validate checks one step. hasDocument is only consulted on the last step.
func (s *Signup) Validate(step int, hasDocument bool) error {
	f := s.Form
	switch step {
	case 1:
		if f.FirstName == "" || f.LastName == "" || f.Email == "" {
			return invalid(messages.RequiredFields)
		}
		if !strings.Contains(f.Email, "@") {
			return invalid(messages.InvalidEmail)
		}
	case 2:
		if !f.Personal.Complete() {
			return invalid(messages.RequiredFields)
		}
	case 3:
		if !f.Address.Complete() {
			return invalid(messages.RequiredFields)
		}
	case 4:
		if !hasDocument {
			return invalid(messages.MissingDocument)
		}
		if len(f.Password) < MinPasswordLen {
			return invalid(messages.PasswordTooShort)
		}
		if f.Password != f.ConfirmPassword {
			return invalid(messages.PasswordMismatch)
		}
	}
	return nil
}

func (s *Signup) Next() bool {
	return s.Controller.Next(func(step int) error { return s.Validate(step, false) })
}

// ClearSecrets drops the password fields once they are no longer needed.
func (s *Signup) ClearSecrets() {
	s.Form.Password = ""
	s.Form.ConfirmPassword = ""
}
