package backend

import (
	"path"
	"strings"
)

// Object namespaces.
const (
	ProfilePhotos     = "profile-photos"
	AthleticDocuments = "athletic-documents"
)

// ObjectPath builds "{namespace}/{uid}/{filename}". Directory parts of filename are dropped.
func ObjectPath(namespace, uid, filename string) string {
	name := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	if name == "." || name == "/" || name == "" {
		name = "file"
	}
	return namespace + "/" + uid + "/" + name
}
