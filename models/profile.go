package models

import "time"

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// Valid reports whether g is one of the selectable genders.
func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale || g == GenderOther
}

// Label returns the Italian display name, "-" when unset.
func (g Gender) Label() string {
	switch g {
	case GenderMale:
		return "Maschio"
	case GenderFemale:
		return "Femmina"
	case GenderOther:
		return "Altro"
	default:
		return "-"
	}
}

type Address struct {
	Street     string `bson:"street" json:"street" firestore:"street"`
	Number     string `bson:"number" json:"number" firestore:"number"`
	Country    string `bson:"country" json:"country" firestore:"country"`
	City       string `bson:"city" json:"city" firestore:"city"`
	PostalCode string `bson:"postalCode" json:"postalCode" firestore:"postalCode"`
}

// UserProfile is the member record owned by the document store and keyed by UID.
// UID equals the identity provider subject and never changes.
type UserProfile struct {
	UID                 string    `bson:"uid" json:"uid" firestore:"uid"`
	Email               string    `bson:"email" json:"email" firestore:"email"`
	FirstName           string    `bson:"firstName" json:"firstName" firestore:"firstName"`
	LastName            string    `bson:"lastName" json:"lastName" firestore:"lastName"`
	BirthDate           string    `bson:"birthDate" json:"birthDate" firestore:"birthDate"`
	Gender              Gender    `bson:"gender" json:"gender" firestore:"gender"`
	BirthPlace          string    `bson:"birthPlace" json:"birthPlace" firestore:"birthPlace"`
	FiscalCode          string    `bson:"fiscalCode" json:"fiscalCode" firestore:"fiscalCode"`
	Phone               string    `bson:"phone" json:"phone" firestore:"phone"`
	Address             Address   `bson:"address" json:"address" firestore:"address"`
	AthleticDocumentURL string    `bson:"athleticDocumentUrl,omitempty" json:"athleticDocumentUrl,omitempty" firestore:"athleticDocumentUrl,omitempty"`
	PhotoURL            string    `bson:"photoUrl,omitempty" json:"photoUrl,omitempty" firestore:"photoUrl,omitempty"`
	CreatedAt           time.Time `bson:"createdAt" json:"createdAt" firestore:"createdAt,serverTimestamp"`
	UpdatedAt           time.Time `bson:"updatedAt" json:"updatedAt" firestore:"updatedAt,serverTimestamp"`
}

// Initials returns the first letters of first and last name, used when no photo is set.
func (p UserProfile) Initials() string {
	var out []rune
	if r := []rune(p.FirstName); len(r) > 0 {
		out = append(out, r[0])
	}
	if r := []rune(p.LastName); len(r) > 0 {
		out = append(out, r[0])
	}
	return string(out)
}

// ProfileUpdate is a partial update of a UserProfile. Nil fields are left untouched.
type ProfileUpdate struct {
	FirstName           *string  `json:"firstName,omitempty"`
	LastName            *string  `json:"lastName,omitempty"`
	Gender              *Gender  `json:"gender,omitempty"`
	BirthDate           *string  `json:"birthDate,omitempty"`
	BirthPlace          *string  `json:"birthPlace,omitempty"`
	FiscalCode          *string  `json:"fiscalCode,omitempty"`
	Phone               *string  `json:"phone,omitempty"`
	Address             *Address `json:"address,omitempty"`
	AthleticDocumentURL *string  `json:"athleticDocumentUrl,omitempty"`
	PhotoURL            *string  `json:"photoUrl,omitempty"`
}

// Fields returns the set fields keyed by their stored name.
func (u ProfileUpdate) Fields() map[string]any {
	fields := map[string]any{}
	if u.FirstName != nil {
		fields["firstName"] = *u.FirstName
	}
	if u.LastName != nil {
		fields["lastName"] = *u.LastName
	}
	if u.Gender != nil {
		fields["gender"] = string(*u.Gender)
	}
	if u.BirthDate != nil {
		fields["birthDate"] = *u.BirthDate
	}
	if u.BirthPlace != nil {
		fields["birthPlace"] = *u.BirthPlace
	}
	if u.FiscalCode != nil {
		fields["fiscalCode"] = *u.FiscalCode
	}
	if u.Phone != nil {
		fields["phone"] = *u.Phone
	}
	if u.Address != nil {
		fields["address"] = *u.Address
	}
	if u.AthleticDocumentURL != nil {
		fields["athleticDocumentUrl"] = *u.AthleticDocumentURL
	}
	if u.PhotoURL != nil {
		fields["photoUrl"] = *u.PhotoURL
	}
	return fields
}

// Empty reports whether no field is set.
func (u ProfileUpdate) Empty() bool {
	return len(u.Fields()) == 0
}

// Apply merges the set fields into p. UID, email and creation time are never touched.
func (u ProfileUpdate) Apply(p *UserProfile) {
	if u.FirstName != nil {
		p.FirstName = *u.FirstName
	}
	if u.LastName != nil {
		p.LastName = *u.LastName
	}
	if u.Gender != nil {
		p.Gender = *u.Gender
	}
	if u.BirthDate != nil {
		p.BirthDate = *u.BirthDate
	}
	if u.BirthPlace != nil {
		p.BirthPlace = *u.BirthPlace
	}
	if u.FiscalCode != nil {
		p.FiscalCode = *u.FiscalCode
	}
	if u.Phone != nil {
		p.Phone = *u.Phone
	}
	if u.Address != nil {
		p.Address = *u.Address
	}
	if u.AthleticDocumentURL != nil {
		p.AthleticDocumentURL = *u.AthleticDocumentURL
	}
	if u.PhotoURL != nil {
		p.PhotoURL = *u.PhotoURL
	}
}
