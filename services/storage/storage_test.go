package storage

import (
	"testing"

	"gymnexa/backend"

	"github.com/stretchr/testify/assert"
)

func TestContentType(t *testing.T) {
	assert.Equal(t, "image/png", contentType(backend.File{Name: "a.png", ContentType: "image/png"}))
	assert.Equal(t, "application/pdf", contentType(backend.File{Name: "cert.pdf", ContentType: "application/octet-stream"}))
	assert.Equal(t, "application/octet-stream", contentType(backend.File{Name: "noext"}))
}

func TestDownloadURLEscapesPath(t *testing.T) {
	got := downloadURL("gymnexa.appspot.com", "profile-photos/u1/me.jpg", "tok")
	assert.Equal(t,
		"https://firebasestorage.googleapis.com/v0/b/gymnexa.appspot.com/o/profile-photos%2Fu1%2Fme.jpg?alt=media&token=tok",
		got)
}

func TestCloudinaryIDs(t *testing.T) {
	folder, id := cloudinaryIDs("athletic-documents/u1/cert.medico.pdf")
	assert.Equal(t, "athletic-documents/u1", folder)
	assert.Equal(t, "cert.medico", id)
}
