package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"

	"gymnexa/backend"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
)

// FirebaseStorageService implements ObjectService on a Firebase Storage bucket.
// Objects get a download token so the returned URL works without signing.
type FirebaseStorageService struct {
	bucket     *storage.BucketHandle
	bucketName string
	newToken   func() string
}

// NewFirebaseStorageService wraps a bucket handle, usually from the Firebase app's storage client.
func NewFirebaseStorageService(bucket *storage.BucketHandle, bucketName string) ObjectService {
	return &FirebaseStorageService{bucket: bucket, bucketName: bucketName, newToken: uuid.NewString}
}

func (s *FirebaseStorageService) Configured() bool { return true }

// Upload writes file to objectPath and returns its tokenized download URL.
func (s *FirebaseStorageService) Upload(ctx context.Context, objectPath string, file backend.File) (string, error) {
	token := s.newToken()

	w := s.bucket.Object(objectPath).NewWriter(ctx)
	w.ObjectAttrs.ContentType = contentType(file)
	w.ObjectAttrs.Metadata = map[string]string{"firebaseStorageDownloadTokens": token}

	if _, err := io.Copy(w, file.Body); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("failed to copy file to storage: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to close writer: %w", err)
	}
	return downloadURL(s.bucketName, objectPath, token), nil
}

func downloadURL(bucket, objectPath, token string) string {
	return fmt.Sprintf("https://firebasestorage.googleapis.com/v0/b/%s/o/%s?alt=media&token=%s",
		bucket, url.PathEscape(objectPath), token)
}
