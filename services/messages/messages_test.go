package messages

import (
	"testing"

	"gymnexa/backend"

	"github.com/stretchr/testify/assert"
)

func TestLoginError(t *testing.T) {
	assert.Equal(t, "Utente non trovato", LoginError(backend.CodeUserNotFound))
	assert.Equal(t, "Password errata", LoginError(backend.CodeWrongPassword))
	assert.Equal(t, "Credenziali non valide", LoginError(backend.CodeInvalidCredential))
	assert.Equal(t, "Email non valida", LoginError(backend.CodeInvalidEmail))
	assert.Equal(t, "Errore durante il login", LoginError(backend.CodeEmailAlreadyInUse))
	assert.Equal(t, "Errore durante il login", LoginError(""))
}

func TestSignupError(t *testing.T) {
	assert.Equal(t, "Email già registrata", SignupError(backend.CodeEmailAlreadyInUse))
	assert.Equal(t, "Password troppo debole", SignupError(backend.CodeWeakPassword))
	assert.Equal(t, "Email non valida", SignupError(backend.CodeInvalidEmail))
	assert.Equal(t, "Errore durante la registrazione", SignupError(backend.CodeUserNotFound))
}
