package forms

import "gymnexa/models"

// Personal is the registry block common to every member form.
type Personal struct {
	BirthDate  string        `json:"birthDate"`
	Gender     models.Gender `json:"gender"`
	BirthPlace string        `json:"birthPlace"`
	FiscalCode string        `json:"fiscalCode"`
	Phone      string        `json:"phone"`
}

// Set updates f when it belongs to the block. The bool reports ownership.
func (p *Personal) Set(f Field, value string) (bool, error) {
	value = Normalize(f, value)
	switch f {
	case BirthDate:
		p.BirthDate = value
	case Gender:
		g, err := parseGender(value)
		if err != nil {
			return true, err
		}
		p.Gender = g
	case BirthPlace:
		p.BirthPlace = value
	case FiscalCode:
		p.FiscalCode = value
	case Phone:
		p.Phone = value
	default:
		return false, nil
	}
	return true, nil
}

// Complete reports whether every field is filled in.
func (p Personal) Complete() bool {
	return p.BirthDate != "" && p.Gender != "" && p.BirthPlace != "" && p.FiscalCode != "" && p.Phone != ""
}

// Address is the postal address block. Country is not required.
type Address struct {
	Street     string `json:"street"`
	Number     string `json:"number"`
	Country    string `json:"country"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
}

func NewAddress() Address {
	return Address{Country: DefaultCountry}
}

func AddressFrom(a models.Address) Address {
	out := Address(a)
	if out.Country == "" {
		out.Country = DefaultCountry
	}
	return out
}

func (a *Address) Set(f Field, value string) bool {
	value = Normalize(f, value)
	switch f {
	case Street:
		a.Street = value
	case Number:
		a.Number = value
	case Country:
		a.Country = value
	case City:
		a.City = value
	case PostalCode:
		a.PostalCode = value
	default:
		return false
	}
	return true
}

func (a Address) Complete() bool {
	return a.Street != "" && a.Number != "" && a.City != "" && a.PostalCode != ""
}

func (a Address) Model() models.Address {
	return models.Address(a)
}
