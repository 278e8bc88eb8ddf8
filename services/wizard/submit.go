package wizard

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gymnexa/backend"
	"gymnexa/models"
	"gymnexa/services/messages"
	"gymnexa/utils"

	"go.uber.org/zap"
)

// Submitter runs the external write chains of both wizards. The writes are
// sequential and a failure part-way leaves earlier writes in place.
type Submitter struct {
	Identity backend.IdentityProvider
	Profiles backend.ProfileStore
	Objects  backend.ObjectStore
}

// SubmitSignup creates the credential, uploads the document and writes the profile.
func (s *Submitter) SubmitSignup(ctx context.Context, w *Signup, document *backend.File) (*models.UserProfile, error) {
	if !w.IsLast() {
		return nil, ErrNotLastStep
	}
	w.Error = ""
	if err := w.Validate(w.Step, document != nil); err != nil {
		w.fail(err)
		return nil, err
	}

	logger := utils.GetLogger().With(zap.String("email", w.Form.Email))

	id, err := s.Identity.CreateAccount(ctx, w.Form.Email, w.Form.Password)
	if err != nil {
		logger.Warn("signup: account creation failed", zap.Error(err))
		var authErr *backend.AuthError
		if errors.As(err, &authErr) {
			w.Fail(messages.SignupError(authErr.Code))
		} else {
			w.Fail(messages.SignupFailed)
		}
		return nil, err
	}

	url, err := s.Objects.Upload(ctx, backend.ObjectPath(backend.AthleticDocuments, id.UID, document.Name), *document)
	if err != nil {
		logger.Error("signup: document upload failed", zap.String("uid", id.UID), zap.Error(err))
		w.Fail(messages.SignupFailed)
		return nil, fmt.Errorf("upload athletic document: %w", err)
	}

	f := w.Form
	profile := &models.UserProfile{
		UID:                 id.UID,
		Email:               f.Email,
		FirstName:           f.FirstName,
		LastName:            f.LastName,
		BirthDate:           f.BirthDate,
		Gender:              f.Gender,
		BirthPlace:          f.BirthPlace,
		FiscalCode:          strings.ToUpper(f.FiscalCode),
		Phone:               f.Phone,
		Address:             f.Address.Model(),
		AthleticDocumentURL: url,
	}
	if err := s.Profiles.Create(ctx, profile); err != nil {
		logger.Error("signup: profile creation failed", zap.String("uid", id.UID), zap.Error(err))
		w.Fail(messages.SignupFailed)
		return nil, fmt.Errorf("create profile: %w", err)
	}

	w.ClearSecrets()
	logger.Info("signup completed", zap.String("uid", id.UID))
	return profile, nil
}

// SubmitCompletion uploads the document and writes the profile for a social sign-in.
func (s *Submitter) SubmitCompletion(ctx context.Context, w *Completion, document *backend.File) (*models.UserProfile, error) {
	if !w.IsLast() {
		return nil, ErrNotLastStep
	}
	w.Error = ""
	if err := w.Validate(w.Step, document != nil); err != nil {
		w.fail(err)
		return nil, err
	}

	logger := utils.GetLogger().With(zap.String("uid", w.UID))

	url, err := s.Objects.Upload(ctx, backend.ObjectPath(backend.AthleticDocuments, w.UID, document.Name), *document)
	if err != nil {
		logger.Error("completion: document upload failed", zap.Error(err))
		w.Fail(messages.SaveFailed)
		return nil, fmt.Errorf("upload athletic document: %w", err)
	}

	first, last := w.Names()
	f := w.Form
	profile := &models.UserProfile{
		UID:                 w.UID,
		Email:               w.Email,
		FirstName:           first,
		LastName:            last,
		BirthDate:           f.BirthDate,
		Gender:              f.Gender,
		BirthPlace:          f.BirthPlace,
		FiscalCode:          strings.ToUpper(f.FiscalCode),
		Phone:               f.Phone,
		Address:             f.Address.Model(),
		AthleticDocumentURL: url,
	}
	if err := s.Profiles.Create(ctx, profile); err != nil {
		logger.Error("completion: profile creation failed", zap.Error(err))
		w.Fail(messages.SaveFailed)
		return nil, fmt.Errorf("create profile: %w", err)
	}

	logger.Info("profile completion saved")
	return profile, nil
}
