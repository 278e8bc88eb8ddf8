package storage

import (
	"mime"
	"path"

	"gymnexa/backend"
)

// ObjectService is the object-store contract for photo and document uploads.
type ObjectService = backend.ObjectStore

// contentType keeps the client-declared type and falls back to the extension.
func contentType(file backend.File) string {
	if file.ContentType != "" && file.ContentType != "application/octet-stream" {
		return file.ContentType
	}
	if ct := mime.TypeByExtension(path.Ext(file.Name)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
