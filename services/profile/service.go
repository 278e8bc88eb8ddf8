package profile

import (
	"context"
	"errors"
	"fmt"

	"gymnexa/backend"
	"gymnexa/models"
	"gymnexa/services/messages"
	"gymnexa/utils"

	"go.uber.org/zap"
)

var (
	ErrNoProfile  = errors.New("profile: no profile loaded")
	ErrNotEditing = errors.New("profile: not in edit mode")
)

// Service performs the profile screen's remote operations.
type Service struct {
	Profiles backend.ProfileStore
	Objects  backend.ObjectStore
}

func NewService(profiles backend.ProfileStore, objects backend.ObjectStore) *Service {
	return &Service{Profiles: profiles, Objects: objects}
}

// Load fetches the current profile, nil if none exists.
func (s *Service) Load(ctx context.Context, uid string) (*models.UserProfile, error) {
	return s.Profiles.Get(ctx, uid)
}

// Save writes the editable fields, reloads and returns to view mode. On
// failure the editor stays in edit mode with a generic message.
func (s *Service) Save(ctx context.Context, uid string, e *Editor) (*models.UserProfile, error) {
	if e.Mode != ModeEdit || e.Form == nil {
		return nil, ErrNotEditing
	}
	if err := s.Profiles.Update(ctx, uid, e.Form.Update()); err != nil {
		utils.GetLogger().Error("profile save failed", zap.String("uid", uid), zap.Error(err))
		e.Error = messages.SaveFailed
		return nil, err
	}
	reloaded, err := s.Profiles.Get(ctx, uid)
	if err != nil {
		utils.GetLogger().Error("profile reload failed", zap.String("uid", uid), zap.Error(err))
		e.Error = messages.SaveFailed
		return nil, err
	}
	e.Cancel()
	return reloaded, nil
}

// UploadPhoto stores a new photo, patches photoUrl and reloads.
func (s *Service) UploadPhoto(ctx context.Context, uid string, file backend.File) (*models.UserProfile, error) {
	return s.upload(ctx, uid, backend.ProfilePhotos, file, func(url string) models.ProfileUpdate {
		return models.ProfileUpdate{PhotoURL: &url}
	})
}

// UploadDocument stores a new athletic document, patches athleticDocumentUrl and reloads.
func (s *Service) UploadDocument(ctx context.Context, uid string, file backend.File) (*models.UserProfile, error) {
	return s.upload(ctx, uid, backend.AthleticDocuments, file, func(url string) models.ProfileUpdate {
		return models.ProfileUpdate{AthleticDocumentURL: &url}
	})
}

func (s *Service) upload(ctx context.Context, uid, namespace string, file backend.File, patch func(string) models.ProfileUpdate) (*models.UserProfile, error) {
	logger := utils.GetLogger().With(zap.String("uid", uid), zap.String("namespace", namespace))

	url, err := s.Objects.Upload(ctx, backend.ObjectPath(namespace, uid, file.Name), file)
	if err != nil {
		logger.Error("upload failed", zap.Error(err))
		return nil, fmt.Errorf("upload %s: %w", namespace, err)
	}
	if err := s.Profiles.Update(ctx, uid, patch(url)); err != nil {
		logger.Error("profile patch after upload failed", zap.Error(err))
		return nil, fmt.Errorf("patch profile: %w", err)
	}
	return s.Profiles.Get(ctx, uid)
}
