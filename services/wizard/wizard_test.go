package wizard

import (
	"context"
	"errors"
	"strings"
	"testing"

	"gymnexa/backend"
	"gymnexa/backend/backendtest"
	"gymnexa/models"
	"gymnexa/services/forms"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fill(t *testing.T, update func(forms.FieldUpdate) error, values map[forms.Field]string) {
	t.Helper()
	for f, v := range values {
		require.NoError(t, update(forms.FieldUpdate{Field: f, Value: v}))
	}
}

var (
	step1 = map[forms.Field]string{forms.FirstName: "Mario", forms.LastName: "Rossi", forms.Email: "mario@example.it"}
	step2 = map[forms.Field]string{
		forms.BirthDate: "1985-08-01", forms.Gender: "male", forms.BirthPlace: "Roma",
		forms.FiscalCode: "rssmra85m01h501z", forms.Phone: "+39 333 1234567",
	}
	step3 = map[forms.Field]string{forms.Street: "Via Roma", forms.Number: "1", forms.City: "Roma", forms.PostalCode: "00100"}
)

func document() *backend.File {
	return &backend.File{Name: "certificato.pdf", ContentType: "application/pdf", Body: strings.NewReader("%PDF")}
}

func TestControllerNextBlocksOnEmptyRequiredField(t *testing.T) {
	w := NewSignup()
	fill(t, w.Update, map[forms.Field]string{forms.FirstName: "Mario", forms.Email: "mario@example.it"})

	assert.False(t, w.Next())
	assert.Equal(t, 1, w.Step)
	assert.Equal(t, "Compila tutti i campi obbligatori", w.Error)
}

func TestControllerNextRejectsEmailWithoutAt(t *testing.T) {
	w := NewSignup()
	fill(t, w.Update, map[forms.Field]string{forms.FirstName: "Mario", forms.LastName: "Rossi", forms.Email: "mario"})

	assert.False(t, w.Next())
	assert.Equal(t, "Email non valida", w.Error)
}

func TestControllerNextAdvancesAndClearsError(t *testing.T) {
	w := NewSignup()
	assert.False(t, w.Next())
	require.NotEmpty(t, w.Error)

	fill(t, w.Update, step1)
	assert.True(t, w.Next())
	assert.Equal(t, 2, w.Step)
	assert.Empty(t, w.Error)
}

func TestControllerBack(t *testing.T) {
	w := NewSignup()
	fill(t, w.Update, step1)
	require.True(t, w.Next())
	assert.False(t, w.Next())
	require.NotEmpty(t, w.Error)

	w.Back()
	assert.Equal(t, 1, w.Step)
	assert.Empty(t, w.Error)

	w.Back()
	assert.Equal(t, 1, w.Step, "back at step 1 is a no-op")
}

func TestControllerNextOnLastStepDoesNotAdvance(t *testing.T) {
	c := NewController(2)
	c.Step = 2
	called := false
	assert.False(t, c.Next(func(int) error { called = true; return nil }))
	assert.Equal(t, 2, c.Step)
	assert.False(t, called)
}

func signupAtLastStep(t *testing.T) *Signup {
	t.Helper()
	w := NewSignup()
	fill(t, w.Update, step1)
	require.True(t, w.Next())
	fill(t, w.Update, step2)
	require.True(t, w.Next())
	fill(t, w.Update, step3)
	require.True(t, w.Next())
	require.True(t, w.IsLast())
	return w
}

func newSubmitter() (*Submitter, *backendtest.Identity, *backendtest.Profiles, *backendtest.Objects) {
	id := backendtest.NewIdentity()
	profiles := backendtest.NewProfiles()
	objects := backendtest.NewObjects()
	return &Submitter{Identity: id, Profiles: profiles, Objects: objects}, id, profiles, objects
}

func TestSubmitSignupShortPasswordStaysOnLastStep(t *testing.T) {
	w := signupAtLastStep(t)
	fill(t, w.Update, map[forms.Field]string{forms.Password: "abc12", forms.ConfirmPassword: "abc12"})
	s, _, profiles, _ := newSubmitter()

	_, err := s.SubmitSignup(context.Background(), w, document())
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "La password deve essere di almeno 6 caratteri", w.Error)
	assert.Equal(t, 4, w.Step)

	p, _ := profiles.Get(context.Background(), "any")
	assert.Nil(t, p)
}

func TestSubmitSignupStepFourChecks(t *testing.T) {
	w := signupAtLastStep(t)
	s, _, _, _ := newSubmitter()

	_, err := s.SubmitSignup(context.Background(), w, nil)
	require.Error(t, err)
	assert.Equal(t, "Carica il documento atletico", w.Error)

	fill(t, w.Update, map[forms.Field]string{forms.Password: "secret1", forms.ConfirmPassword: "secret2"})
	_, err = s.SubmitSignup(context.Background(), w, document())
	require.Error(t, err)
	assert.Equal(t, "Le password non coincidono", w.Error)
}

func TestSubmitSignupNotFromEarlierStep(t *testing.T) {
	s, _, _, _ := newSubmitter()
	_, err := s.SubmitSignup(context.Background(), NewSignup(), document())
	assert.ErrorIs(t, err, ErrNotLastStep)
}

func TestSubmitSignupWritesProfile(t *testing.T) {
	w := signupAtLastStep(t)
	fill(t, w.Update, map[forms.Field]string{forms.Password: "secret1", forms.ConfirmPassword: "secret1"})
	s, _, profiles, objects := newSubmitter()

	profile, err := s.SubmitSignup(context.Background(), w, document())
	require.NoError(t, err)
	assert.Empty(t, w.Error)
	assert.Empty(t, w.Form.Password)

	stored, err := profiles.Get(context.Background(), profile.UID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "RSSMRA85M01H501Z", stored.FiscalCode)
	assert.Equal(t, models.GenderMale, stored.Gender)
	assert.Equal(t, "Italia", stored.Address.Country)
	assert.Equal(t, "mem://athletic-documents/"+profile.UID+"/certificato.pdf", stored.AthleticDocumentURL)
	assert.Contains(t, objects.Blobs, "athletic-documents/"+profile.UID+"/certificato.pdf")
}

func TestSubmitSignupMapsIdentityErrors(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{&backend.AuthError{Code: backend.CodeEmailAlreadyInUse}, "Email già registrata"},
		{&backend.AuthError{Code: backend.CodeWeakPassword}, "Password troppo debole"},
		{&backend.AuthError{Code: backend.CodeInternal}, "Errore durante la registrazione"},
		{errors.New("network down"), "Errore durante la registrazione"},
	}
	for _, tt := range tests {
		w := signupAtLastStep(t)
		fill(t, w.Update, map[forms.Field]string{forms.Password: "secret1", forms.ConfirmPassword: "secret1"})
		s, id, _, _ := newSubmitter()
		id.CreateErr = tt.err

		_, err := s.SubmitSignup(context.Background(), w, document())
		require.Error(t, err)
		assert.Equal(t, tt.want, w.Error)
		assert.Equal(t, 4, w.Step)
	}
}

func TestSubmitSignupUploadFailureKeepsAccount(t *testing.T) {
	w := signupAtLastStep(t)
	fill(t, w.Update, map[forms.Field]string{forms.Password: "secret1", forms.ConfirmPassword: "secret1"})
	s, id, _, objects := newSubmitter()
	objects.UploadErr = errors.New("bucket gone")

	_, err := s.SubmitSignup(context.Background(), w, document())
	require.Error(t, err)
	assert.Equal(t, "Errore durante la registrazione", w.Error)

	_, err = id.SignInWithPassword(context.Background(), "mario@example.it", "secret1")
	assert.NoError(t, err, "no rollback of the created credential")
}

func TestCompletionNames(t *testing.T) {
	c := NewCompletion(models.Identity{UID: "g1", DisplayName: "Maria Grazia De Luca"})
	first, last := c.Names()
	assert.Equal(t, "Maria", first)
	assert.Equal(t, "Grazia De Luca", last)

	c = NewCompletion(models.Identity{UID: "g1"})
	first, last = c.Names()
	assert.Empty(t, first)
	assert.Empty(t, last)
}

func TestCompletionRejectsSignupOnlyFields(t *testing.T) {
	c := NewCompletion(models.Identity{UID: "g1"})
	err := c.Update(forms.FieldUpdate{Field: forms.Password, Value: "x"})
	assert.ErrorIs(t, err, forms.ErrFieldNotInForm)
}

func TestSubmitCompletion(t *testing.T) {
	c := NewCompletion(models.Identity{UID: "g1", Email: "m@gmail.com", DisplayName: "Mario Rossi"})
	fill(t, c.Update, step2)
	require.True(t, c.Next())
	fill(t, c.Update, step3)
	require.True(t, c.Next())
	require.True(t, c.IsLast())

	s, _, profiles, objects := newSubmitter()

	_, err := s.SubmitCompletion(context.Background(), c, nil)
	require.Error(t, err)
	assert.Equal(t, "Carica il documento atletico", c.Error)

	objects.UploadErr = errors.New("boom")
	_, err = s.SubmitCompletion(context.Background(), c, document())
	require.Error(t, err)
	assert.Equal(t, "Errore durante il salvataggio", c.Error)
	assert.Equal(t, 3, c.Step)

	objects.UploadErr = nil
	_, err = s.SubmitCompletion(context.Background(), c, document())
	require.NoError(t, err)

	stored, _ := profiles.Get(context.Background(), "g1")
	require.NotNil(t, stored)
	assert.Equal(t, "Mario", stored.FirstName)
	assert.Equal(t, "Rossi", stored.LastName)
	assert.Equal(t, "m@gmail.com", stored.Email)
}
