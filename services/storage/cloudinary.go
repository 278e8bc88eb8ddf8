package storage

import (
	"context"
	"fmt"
	"path"
	"strings"

	"gymnexa/backend"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryStorageService implements ObjectService on Cloudinary.
type CloudinaryStorageService struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryStorageService(cld *cloudinary.Cloudinary) ObjectService {
	return &CloudinaryStorageService{cld: cld}
}

func (s *CloudinaryStorageService) Configured() bool { return true }

// Upload stores file under the folder of objectPath and returns the secure URL.
func (s *CloudinaryStorageService) Upload(ctx context.Context, objectPath string, file backend.File) (string, error) {
	folder, publicID := cloudinaryIDs(objectPath)
	params := uploader.UploadParams{
		Folder:       folder,
		PublicID:     publicID,
		ResourceType: "auto",
	}
	result, err := s.cld.Upload.Upload(ctx, file.Body, params)
	if err != nil {
		return "", fmt.Errorf("CloudinaryStorageService: failed to upload file: %w", err)
	}
	if result.Error.Message != "" {
		return "", fmt.Errorf("CloudinaryStorageService: upload rejected: %s", result.Error.Message)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("CloudinaryStorageService: no URL returned")
	}
	return result.SecureURL, nil
}

// cloudinaryIDs splits "ns/uid/name.ext" into folder "ns/uid" and public id "name".
func cloudinaryIDs(objectPath string) (folder, publicID string) {
	folder, name := path.Split(objectPath)
	folder = strings.TrimSuffix(folder, "/")
	publicID = strings.TrimSuffix(name, path.Ext(name))
	return folder, publicID
}
