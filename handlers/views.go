package handlers

import (
	"time"

	"gymnexa/models"
	"gymnexa/services/booking"
	"gymnexa/services/gate"
	"gymnexa/services/profile"
	"gymnexa/services/session"
	"gymnexa/services/wizard"
)

// SessionView is what the client needs to pick and render the top-level screen.
type SessionView struct {
	Screen    gate.Screen               `json:"screen"`
	Install   *gate.InstallInstructions `json:"install,omitempty"`
	SignedIn  bool                      `json:"signedIn"`
	Demo      bool                      `json:"demo"`
	Identity  *models.Identity          `json:"identity,omitempty"`
	Profile   *models.UserProfile       `json:"profile,omitempty"`
	AuthError string                    `json:"authError,omitempty"`
}

func sessionView(s *session.Session) SessionView {
	v := SessionView{
		Screen:    s.Screen(),
		SignedIn:  s.SignedIn(),
		Demo:      s.Demo,
		Identity:  s.Identity,
		Profile:   s.Profile,
		AuthError: s.AuthError,
	}
	if v.Screen == gate.InstallPrompt {
		ins := gate.Instructions(s.Device)
		v.Install = &ins
	}
	return v
}

// TokenView is returned whenever a new session token is issued.
type TokenView struct {
	Token   string      `json:"token"`
	Session SessionView `json:"session"`
}

type WizardView struct {
	Step  int    `json:"step"`
	Total int    `json:"total"`
	Last  bool   `json:"last"`
	Error string `json:"error,omitempty"`
}

func wizardView(c wizard.Controller) WizardView {
	return WizardView{Step: c.Step, Total: c.Total, Last: c.IsLast(), Error: c.Error}
}

// SignupView never echoes passwords back; it only reports whether they are set.
type SignupView struct {
	WizardView
	Form               wizard.SignupForm `json:"form"`
	HasPassword        bool              `json:"hasPassword"`
	HasConfirmPassword bool              `json:"hasConfirmPassword"`
}

func signupView(w *wizard.Signup) SignupView {
	form := w.Form
	form.Password, form.ConfirmPassword = "", ""
	return SignupView{
		WizardView:         wizardView(w.Controller),
		Form:               form,
		HasPassword:        w.Form.Password != "",
		HasConfirmPassword: w.Form.ConfirmPassword != "",
	}
}

type CompletionView struct {
	WizardView
	Email       string                `json:"email"`
	DisplayName string                `json:"displayName"`
	Form        wizard.CompletionForm `json:"form"`
}

func completionView(w *wizard.Completion) CompletionView {
	return CompletionView{
		WizardView:  wizardView(w.Controller),
		Email:       w.Email,
		DisplayName: w.DisplayName,
		Form:        w.Form,
	}
}

type ProfileView struct {
	Mode        profile.Mode        `json:"mode"`
	Profile     *models.UserProfile `json:"profile"`
	Initials    string              `json:"initials,omitempty"`
	GenderLabel string              `json:"genderLabel,omitempty"`
	Form        *profile.Form       `json:"form,omitempty"`
	Error       string              `json:"error,omitempty"`
}

func profileView(s *session.Session) ProfileView {
	v := ProfileView{Mode: s.Editor.Mode, Profile: s.Profile, Form: s.Editor.Form, Error: s.Editor.Error}
	if s.Profile != nil {
		v.Initials = s.Profile.Initials()
		v.GenderLabel = s.Profile.Gender.Label()
	}
	return v
}

type GridCell struct {
	models.TimeSlot
	Type models.BookingType `json:"type"`
}

type GridView struct {
	Day           string              `json:"day"`
	Title         string              `json:"title"`
	Subtitle      string              `json:"subtitle,omitempty"`
	IsToday       bool                `json:"isToday"`
	Slots         []GridCell          `json:"slots"`
	Selections    []booking.Selection `json:"selections"`
	HasSelections bool                `json:"hasSelections"`
}

func gridView(g *booking.Grid, now time.Time) GridView {
	v := GridView{
		Day:           g.Day,
		Title:         g.Title(),
		IsToday:       g.IsToday(now),
		Selections:    g.Selections(),
		HasSelections: g.HasSelections(),
	}
	// The full date moves under "Oggi" only for today.
	if v.IsToday {
		v.Subtitle = v.Title
		v.Title = "Oggi"
	}
	for _, slot := range models.TimeSlots {
		v.Slots = append(v.Slots, GridCell{TimeSlot: slot, Type: g.Get(slot.ID)})
	}
	return v
}

type HomeView struct {
	Greeting string           `json:"greeting"`
	Bookings []models.Booking `json:"bookings"`
}

type WodView struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}
