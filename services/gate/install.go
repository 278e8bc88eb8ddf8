package gate

type InstallStep struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// InstallInstructions is the content of the install-prompt screen.
type InstallInstructions struct {
	Title    string        `json:"title"`
	Subtitle string        `json:"subtitle"`
	Platform string        `json:"platform"`
	Steps    []InstallStep `json:"steps"`
	Note     string        `json:"note"`
}

var (
	iosSteps = []InstallStep{
		{Title: "Passo 1", Text: "Tocca l'icona di condivisione nella barra in basso"},
		{Title: "Passo 2", Text: `Scorri e tocca "Aggiungi a Home"`},
		{Title: "Passo 3", Text: `Tocca "Aggiungi" in alto a destra`},
	}
	androidSteps = []InstallStep{
		{Title: "Passo 1", Text: "Tocca il menu (⋮) in alto a destra"},
		{Title: "Passo 2", Text: `Tocca "Installa app" o "Aggiungi a schermata Home"`},
		{Title: "Passo 3", Text: `Conferma toccando "Installa"`},
	}
)

// Instructions returns the iOS steps for iOS devices and the Android steps otherwise.
func Instructions(d Device) InstallInstructions {
	out := InstallInstructions{
		Title:    "GymNexa",
		Subtitle: "Installa l'app per continuare",
		Note:     "Dopo l'installazione, apri l'app dalla schermata Home",
	}
	if d.IOS {
		out.Platform = "ios"
		out.Steps = iosSteps
	} else {
		out.Platform = "android"
		out.Steps = androidSteps
	}
	return out
}
