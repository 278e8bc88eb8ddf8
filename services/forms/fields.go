// Package forms holds the member form fields shared by the wizards and the profile editor.
package forms

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gymnexa/models"
)

// Field names a single form input.
type Field string

const (
	FirstName       Field = "firstName"
	LastName        Field = "lastName"
	Email           Field = "email"
	BirthDate       Field = "birthDate"
	Gender          Field = "gender"
	BirthPlace      Field = "birthPlace"
	FiscalCode      Field = "fiscalCode"
	Phone           Field = "phone"
	Street          Field = "street"
	Number          Field = "number"
	Country         Field = "country"
	City            Field = "city"
	PostalCode      Field = "postalCode"
	Password        Field = "password"
	ConfirmPassword Field = "confirmPassword"
)

const (
	DefaultCountry   = "Italia"
	FiscalCodeLength = 16
	PostalCodeLength = 5
)

var (
	ErrUnknownField   = errors.New("unknown form field")
	ErrFieldNotInForm = errors.New("field not part of this form")
	ErrInvalidGender  = errors.New("invalid gender")
)

var knownFields = map[Field]bool{
	FirstName: true, LastName: true, Email: true,
	BirthDate: true, Gender: true, BirthPlace: true, FiscalCode: true, Phone: true,
	Street: true, Number: true, Country: true, City: true, PostalCode: true,
	Password: true, ConfirmPassword: true,
}

// UnmarshalText rejects names outside the closed field set.
func (f *Field) UnmarshalText(text []byte) error {
	name := Field(text)
	if !knownFields[name] {
		return fmt.Errorf("%w: %q", ErrUnknownField, string(text))
	}
	*f = name
	return nil
}

// FieldUpdate sets one field of a form to a new value.
type FieldUpdate struct {
	Field Field  `json:"field"`
	Value string `json:"value"`
}

// ParseUpdates decodes either a single update object or an array of them.
func ParseUpdates(data []byte) ([]FieldUpdate, error) {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "[") {
		var updates []FieldUpdate
		if err := json.Unmarshal(data, &updates); err != nil {
			return nil, err
		}
		return updates, nil
	}
	var u FieldUpdate
	if err := json.Unmarshal(data, &u); err != nil {
		return nil, err
	}
	if u.Field == "" {
		return nil, fmt.Errorf("%w: missing field name", ErrUnknownField)
	}
	return []FieldUpdate{u}, nil
}

// Normalize applies the input-time transformations of a field.
func Normalize(f Field, value string) string {
	switch f {
	case FiscalCode:
		return truncate(strings.ToUpper(value), FiscalCodeLength)
	case PostalCode:
		return truncate(value, PostalCodeLength)
	}
	return value
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) > n {
		return string(r[:n])
	}
	return s
}

func parseGender(value string) (models.Gender, error) {
	g := models.Gender(value)
	if value != "" && !g.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidGender, value)
	}
	return g, nil
}
