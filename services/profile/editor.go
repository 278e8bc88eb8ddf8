// Package profile implements the profile screen: a view/edit toggle over a
// local form mirror, plus immediate photo and document uploads.
package profile

import (
	"fmt"

	"gymnexa/models"
	"gymnexa/services/forms"
)

type Mode string

const (
	ModeView Mode = "view"
	ModeEdit Mode = "edit"
)

// Form mirrors the editable profile fields.
type Form struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	forms.Personal
	Address forms.Address `json:"address"`
}

// FormFrom seeds a form from p.
func FormFrom(p models.UserProfile) Form {
	return Form{
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Personal: forms.Personal{
			BirthDate:  p.BirthDate,
			Gender:     p.Gender,
			BirthPlace: p.BirthPlace,
			FiscalCode: p.FiscalCode,
			Phone:      p.Phone,
		},
		Address: forms.AddressFrom(p.Address),
	}
}

// Update restricts edits to the editable fields.
func (f Form) Update() models.ProfileUpdate {
	gender := f.Gender
	address := f.Address.Model()
	return models.ProfileUpdate{
		FirstName:  &f.FirstName,
		LastName:   &f.LastName,
		Gender:     &gender,
		BirthDate:  &f.BirthDate,
		BirthPlace: &f.BirthPlace,
		FiscalCode: &f.FiscalCode,
		Phone:      &f.Phone,
		Address:    &address,
	}
}

// Editor is the view/edit state of the profile screen.
type Editor struct {
	Mode  Mode   `json:"mode"`
	Form  *Form  `json:"form,omitempty"`
	Error string `json:"error,omitempty"`
}

func NewEditor() *Editor {
	return &Editor{Mode: ModeView}
}

// Edit seeds the form from the cached profile. Later remote changes are not
// picked up until Edit is entered again.
func (e *Editor) Edit(cached *models.UserProfile) error {
	if cached == nil {
		return ErrNoProfile
	}
	form := FormFrom(*cached)
	e.Form = &form
	e.Mode = ModeEdit
	e.Error = ""
	return nil
}

// Set applies one field edit while in edit mode.
func (e *Editor) Set(u forms.FieldUpdate) error {
	if e.Mode != ModeEdit || e.Form == nil {
		return ErrNotEditing
	}
	switch u.Field {
	case forms.FirstName:
		e.Form.FirstName = u.Value
	case forms.LastName:
		e.Form.LastName = u.Value
	default:
		if ok, err := e.Form.Personal.Set(u.Field, u.Value); ok {
			return err
		}
		if !e.Form.Address.Set(u.Field, u.Value) {
			return fmt.Errorf("%w: %s", forms.ErrFieldNotInForm, u.Field)
		}
	}
	return nil
}

// Cancel discards the form and returns to view mode.
func (e *Editor) Cancel() {
	e.Mode = ModeView
	e.Form = nil
	e.Error = ""
}
