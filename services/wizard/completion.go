package wizard

import (
	"fmt"
	"strings"

	"gymnexa/models"
	"gymnexa/services/forms"
	"gymnexa/services/messages"
)

const CompletionSteps = 3

// CompletionForm holds what a social sign-in does not provide.
type CompletionForm struct {
	forms.Personal
	Address forms.Address `json:"address"`
}

// Completion collects the missing profile data after a first Google sign-in.
type Completion struct {
	Controller
	UID         string         `json:"uid"`
	Email       string         `json:"email"`
	DisplayName string         `json:"displayName"`
	Form        CompletionForm `json:"form"`
}

func NewCompletion(id models.Identity) *Completion {
	return &Completion{
		Controller:  NewController(CompletionSteps),
		UID:         id.UID,
		Email:       id.Email,
		DisplayName: id.DisplayName,
		Form:        CompletionForm{Address: forms.NewAddress()},
	}
}

// Names splits the display name: first word, then the rest.
func (c *Completion) Names() (first, last string) {
	parts := strings.Split(c.DisplayName, " ")
	first = parts[0]
	if len(parts) > 1 {
		last = strings.Join(parts[1:], " ")
	}
	return first, last
}

func (c *Completion) Update(u forms.FieldUpdate) error {
	if ok, err := c.Form.Personal.Set(u.Field, u.Value); ok {
		return err
	}
	if !c.Form.Address.Set(u.Field, u.Value) {
		return fmt.Errorf("%w: %s", forms.ErrFieldNotInForm, u.Field)
	}
	return nil
}

func (c *Completion) Validate(step int, hasDocument bool) error {
	switch step {
	case 1:
		if !c.Form.Personal.Complete() {
			return invalid(messages.RequiredFields)
		}
	case 2:
		if !c.Form.Address.Complete() {
			return invalid(messages.RequiredFields)
		}
	case 3:
		if !hasDocument {
			return invalid(messages.MissingDocument)
		}
	}
	return nil
}

func (c *Completion) Next() bool {
	return c.Controller.Next(func(step int) error { return c.Validate(step, false) })
}
