// Package messages holds the Italian user-facing strings.
package messages

import "gymnexa/backend"

const (
	RequiredFields   = "Compila tutti i campi obbligatori"
	InvalidEmail     = "Email non valida"
	MissingDocument  = "Carica il documento atletico"
	PasswordTooShort = "La password deve essere di almeno 6 caratteri"
	PasswordMismatch = "Le password non coincidono"

	SignupFailed    = "Errore durante la registrazione"
	EmailInUse      = "Email già registrata"
	WeakPassword    = "Password troppo debole"
	LoginFailed     = "Errore durante il login"
	UserNotFound    = "Utente non trovato"
	WrongPassword   = "Password errata"
	BadCredentials  = "Credenziali non valide"
	SaveFailed      = "Errore durante il salvataggio"
	UploadFailed    = "Errore durante il caricamento"
	ServiceDisabled = "Servizio non disponibile"

	Greeting        = "Ciao, %s"
	GreetingDefault = "Utente"
	WodTitle        = "Ci stiamo lavorando..."
	WodBody         = "Questa sezione sarà disponibile presto!"
)

var loginErrors = map[string]string{
	backend.CodeInvalidEmail:      InvalidEmail,
	backend.CodeUserNotFound:      UserNotFound,
	backend.CodeWrongPassword:     WrongPassword,
	backend.CodeInvalidCredential: BadCredentials,
}

var signupErrors = map[string]string{
	backend.CodeEmailAlreadyInUse: EmailInUse,
	backend.CodeInvalidEmail:      InvalidEmail,
	backend.CodeWeakPassword:      WeakPassword,
}

// LoginError maps an identity error code to the login screen message.
func LoginError(code string) string {
	if msg, ok := loginErrors[code]; ok {
		return msg
	}
	return LoginFailed
}

// SignupError maps an identity error code to the signup screen message.
func SignupError(code string) string {
	if msg, ok := signupErrors[code]; ok {
		return msg
	}
	return SignupFailed
}
