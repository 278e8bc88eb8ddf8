package forms

import (
	"encoding/json"
	"errors"
	"testing"

	"gymnexa/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFiscalCodeTypedCharByChar(t *testing.T) {
	var p Personal
	typed := ""
	for _, r := range "rssmra85m01h501zXYZ" {
		typed += string(r)
		_, err := p.Set(FiscalCode, typed)
		require.NoError(t, err)
		typed = p.FiscalCode
	}
	assert.Equal(t, "RSSMRA85M01H501Z", p.FiscalCode)
}

func TestPostalCodeCapped(t *testing.T) {
	a := NewAddress()
	assert.Equal(t, "Italia", a.Country)
	assert.True(t, a.Set(PostalCode, "001234"))
	assert.Equal(t, "00123", a.PostalCode)
}

func TestGenderRestricted(t *testing.T) {
	var p Personal
	_, err := p.Set(Gender, "female")
	require.NoError(t, err)
	assert.Equal(t, models.GenderFemale, p.Gender)

	_, err = p.Set(Gender, "unicorn")
	assert.True(t, errors.Is(err, ErrInvalidGender))
	assert.Equal(t, models.GenderFemale, p.Gender)

	_, err = p.Set(Gender, "")
	require.NoError(t, err)
	assert.Equal(t, models.Gender(""), p.Gender)
}

func TestFieldDecodingIsClosed(t *testing.T) {
	var u FieldUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"field":"city","value":"Roma"}`), &u))
	assert.Equal(t, City, u.Field)

	err := json.Unmarshal([]byte(`{"field":"isAdmin","value":"true"}`), &u)
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestParseUpdates(t *testing.T) {
	updates, err := ParseUpdates([]byte(`[{"field":"street","value":"Via Roma"},{"field":"number","value":"1"}]`))
	require.NoError(t, err)
	assert.Len(t, updates, 2)

	updates, err = ParseUpdates([]byte(`{"field":"phone","value":"+39 333"}`))
	require.NoError(t, err)
	assert.Equal(t, []FieldUpdate{{Field: Phone, Value: "+39 333"}}, updates)

	_, err = ParseUpdates([]byte(`{"value":"x"}`))
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestCompleteness(t *testing.T) {
	p := Personal{BirthDate: "1985-08-01", Gender: models.GenderMale, BirthPlace: "Roma", FiscalCode: "X", Phone: "1"}
	assert.True(t, p.Complete())
	p.Phone = ""
	assert.False(t, p.Complete())

	a := Address{Street: "Via Roma", Number: "1", City: "Roma", PostalCode: "00100"}
	assert.True(t, a.Complete(), "country is optional")
	a.City = ""
	assert.False(t, a.Complete())
}
